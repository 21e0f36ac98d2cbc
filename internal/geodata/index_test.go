package geodata

import (
	"testing"

	"github.com/ctessum/geom"

	"mapflinger/internal/geo"
)

func TestVertexIndexNearest(t *testing.T) {
	var d Data
	d.addPoint(geom.Point{X: 37.61, Y: 55.75})
	d.addLine(geom.LineString{{X: 37.62, Y: 55.755}, {X: 37.63, Y: 55.76}})
	d.addPolygon(geom.Polygon{{{X: 30, Y: 50}, {X: 31, Y: 50}, {X: 31, Y: 51}, {X: 30, Y: 50}}})

	idx := NewVertexIndex(d)
	if idx.Len() != 7 {
		t.Fatalf("Expected 7 vertices, got %d", idx.Len())
	}

	tests := []struct {
		query geo.GeoVector
		want  geo.GeoVector
	}{
		{geo.GeoVector{Lat: 55.7501, Lon: 37.6101}, geo.GeoVector{Lat: 55.75, Lon: 37.61}},
		{geo.GeoVector{Lat: 55.76, Lon: 37.64}, geo.GeoVector{Lat: 55.76, Lon: 37.63}},
		{geo.GeoVector{Lat: 51.2, Lon: 31.1}, geo.GeoVector{Lat: 51, Lon: 31}},
	}
	for _, tt := range tests {
		got, ok := idx.Nearest(tt.query)
		if !ok {
			t.Errorf("Expected a vertex near %v", tt.query)
			continue
		}
		if got != tt.want {
			t.Errorf("Nearest(%v): expected %v, got %v", tt.query, tt.want, got)
		}
	}
}

func TestVertexIndexSkipsPole(t *testing.T) {
	var d Data
	d.addPoint(geom.Point{X: 0, Y: -90})
	d.addPoint(geom.Point{X: 0, Y: 120})
	idx := NewVertexIndex(d)
	if idx.Len() != 0 {
		t.Errorf("Expected non-finite vertices to be skipped, got %d", idx.Len())
	}
	if _, ok := idx.Nearest(geo.GeoVector{}); ok {
		t.Error("Expected no result from an empty index")
	}
}
