package geodata

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlCoords   `xml:"outerBoundaryIs>LinearRing"`
	Inner []kmlCoords `xml:"innerBoundaryIs>LinearRing"`
}

// kmlGeometry matches both Placemark and MultiGeometry contents.
type kmlGeometry struct {
	Points      []kmlCoords   `xml:"Point"`
	LineStrings []kmlCoords   `xml:"LineString"`
	Polygons    []kmlPolygon  `xml:"Polygon"`
	Multi       []kmlGeometry `xml:"MultiGeometry"`
}

// LoadKML extracts Placemark geometry (Point, LineString, Polygon and
// MultiGeometry) from a KML file.
func LoadKML(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return DecodeKML(f)
}

// DecodeKML reads KML from r. Placemarks are found at any depth, so
// Document and Folder nesting is transparent.
func DecodeKML(r io.Reader) (Data, error) {
	dec := xml.NewDecoder(r)
	var d Data
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Data{}, fmt.Errorf("kml: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var g kmlGeometry
		if err := dec.DecodeElement(&g, &se); err != nil {
			return Data{}, fmt.Errorf("kml: %w", err)
		}
		d.addKML(g)
	}
	if d.Empty() {
		return Data{}, errors.New("kml: no geometry found")
	}
	return d, nil
}

func (d *Data) addKML(g kmlGeometry) {
	for _, p := range g.Points {
		for _, pt := range parseKMLCoords(p.Coordinates) {
			d.addPoint(pt)
		}
	}
	for _, l := range g.LineStrings {
		d.addLine(geom.LineString(parseKMLCoords(l.Coordinates)))
	}
	for _, p := range g.Polygons {
		poly := geom.Polygon{parseKMLCoords(p.Outer.Coordinates)}
		for _, in := range p.Inner {
			if ring := parseKMLCoords(in.Coordinates); len(ring) > 0 {
				poly = append(poly, ring)
			}
		}
		d.addPolygon(poly)
	}
	for _, m := range g.Multi {
		d.addKML(m)
	}
}

// parseKMLCoords parses whitespace-separated "lon,lat[,alt]" tuples; altitude
// is ignored.
func parseKMLCoords(s string) []geom.Point {
	var out []geom.Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, geom.Point{X: lon, Y: lat})
	}
	return out
}
