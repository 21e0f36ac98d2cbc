// Package geodata loads vector geometry files (GeoJSON, WKT, KML, CSV) into
// geographic coordinates for rendering. Coordinates use X for longitude and
// Y for latitude.
package geodata

import (
	"fmt"

	"github.com/ctessum/geom"

	"mapflinger/internal/geo"
)

// Data is a minimal geometry container for rendering
type Data struct {
	Points   []geom.Point
	Lines    []geom.LineString
	Polygons []geom.Polygon // rings: first outer, following holes
	Bounds   *geom.Bounds
}

func (d *Data) extend(b *geom.Bounds) {
	if d.Bounds == nil {
		d.Bounds = geom.NewBounds()
	}
	d.Bounds.Extend(b)
}

func (d *Data) addPoint(p geom.Point) {
	d.Points = append(d.Points, p)
	d.extend(p.Bounds())
}

func (d *Data) addLine(l geom.LineString) {
	if len(l) == 0 {
		return
	}
	d.Lines = append(d.Lines, l)
	d.extend(l.Bounds())
}

func (d *Data) addPolygon(p geom.Polygon) {
	if len(p) == 0 || len(p[0]) == 0 {
		return
	}
	d.Polygons = append(d.Polygons, p)
	d.extend(p.Bounds())
}

// Empty reports whether no geometry was loaded.
func (d Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}

// Box returns the boundary box of all loaded coordinates, or the zero box
// when there are none.
func (d Data) Box() geo.Box {
	if d.Bounds == nil || d.Bounds.Empty() {
		return geo.Box{}
	}
	return geo.BoxFromBounds(d.Bounds)
}

// Counts summarises the dataset for status lines.
func (d Data) Counts() string {
	return fmt.Sprintf("pts=%d ls=%d poly=%d", len(d.Points), len(d.Lines), len(d.Polygons))
}
