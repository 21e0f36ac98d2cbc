package geodata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
)

// geoJSONObject covers every GeoJSON object type; only the fields that
// apply to Type are set.
type geoJSONObject struct {
	Type        string           `json:"type"`
	Coordinates interface{}      `json:"coordinates"`
	Geometry    *geoJSONObject   `json:"geometry"`
	Geometries  []*geoJSONObject `json:"geometries"`
	Features    []*geoJSONObject `json:"features"`
}

// LoadGeoJSON reads a GeoJSON file: a FeatureCollection, a Feature or a bare
// geometry.
func LoadGeoJSON(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return DecodeGeoJSON(f)
}

// DecodeGeoJSON reads GeoJSON from r. Geometries that cannot be decoded are
// skipped; an input without any usable geometry is an error.
func DecodeGeoJSON(r io.Reader) (Data, error) {
	var raw geoJSONObject
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Data{}, fmt.Errorf("geojson: %w", err)
	}
	if raw.Type == "" {
		return Data{}, errors.New("invalid geojson: missing type")
	}
	var d Data
	d.walk(&raw)
	if d.Empty() {
		return Data{}, errors.New("no geometries found")
	}
	return d, nil
}

func (d *Data) walk(o *geoJSONObject) {
	if o == nil {
		return
	}
	switch o.Type {
	case "FeatureCollection":
		for _, f := range o.Features {
			d.walk(f)
		}
	case "Feature":
		d.walk(o.Geometry)
	case "GeometryCollection":
		for _, g := range o.Geometries {
			d.walk(g)
		}
	case "Point", "LineString", "Polygon":
		d.addGeometry(o.Type, o.Coordinates)
	case "MultiPoint", "MultiLineString", "MultiPolygon":
		parts, ok := o.Coordinates.([]interface{})
		if !ok {
			return
		}
		single := o.Type[len("Multi"):]
		for _, c := range parts {
			d.addGeometry(single, c)
		}
	}
}

func (d *Data) addGeometry(typ string, coordinates interface{}) {
	g, err := geojson.FromGeoJSON(&geojson.Geometry{
		Type:        typ,
		Coordinates: dropAltitude(coordinates),
	})
	if err != nil {
		return
	}
	switch g := g.(type) {
	case geom.Point:
		d.addPoint(g)
	case geom.LineString:
		d.addLine(g)
	case geom.Polygon:
		d.addPolygon(g)
	}
}

// dropAltitude trims positions to their first two values so that 3D input
// decodes as 2D.
func dropAltitude(v interface{}) interface{} {
	arr, ok := v.([]interface{})
	if !ok || len(arr) == 0 {
		return v
	}
	if _, isNum := arr[0].(float64); isNum {
		if len(arr) > 2 {
			return arr[:2]
		}
		return arr
	}
	out := make([]interface{}, len(arr))
	for i, el := range arr {
		out[i] = dropAltitude(el)
	}
	return out
}
