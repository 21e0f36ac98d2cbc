package geodata

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
)

// ParseWKT parses a subset of WKT.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...), POLYGON((x y, ...), ...)
func ParseWKT(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var d Data
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"), strings.HasPrefix(up, "POINT"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt point: invalid")
		}
		for _, p := range parseTuples(s[i+1 : j]) {
			d.addPoint(p)
		}
	case strings.HasPrefix(up, "LINESTRING"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt linestring: invalid")
		}
		d.addLine(geom.LineString(parseTuples(s[i+1 : j])))
	case strings.HasPrefix(up, "POLYGON"):
		i := strings.Index(s, "((")
		j := strings.LastIndex(s, "))")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt polygon: invalid")
		}
		// normalize spaces around ring separators
		rings := strings.ReplaceAll(s[i+2:j], ") , (", "),(")
		rings = strings.ReplaceAll(rings, "), (", "),(")
		var poly geom.Polygon
		for _, rp := range strings.Split(rings, "),(") {
			if pts := parseTuples(rp); len(pts) > 0 {
				poly = append(poly, pts)
			}
		}
		d.addPolygon(poly)
	default:
		return Data{}, errors.New("unsupported wkt type")
	}
	if d.Empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}

// parseTuples splits "x y, x y" (or "(x y), (x y)") into points, skipping
// tuples that do not parse.
func parseTuples(block string) []geom.Point {
	var out []geom.Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.Trim(strings.TrimSpace(tup), "()"))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, geom.Point{X: x, Y: y})
	}
	return out
}
