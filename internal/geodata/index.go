package geodata

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/dhconnelly/rtreego"

	"mapflinger/internal/flinger"
	"mapflinger/internal/geo"
)

// VertexIndex answers nearest-vertex queries over every coordinate of a
// dataset. Vertices are indexed on the pseudo-Mercator plane so that
// distances agree with what the viewer draws.
type VertexIndex struct {
	rtree *rtreego.Rtree
}

// indexedVertex wraps a vertex for R-tree storage.
type indexedVertex struct {
	coord geo.GeoVector
	plane geo.PixelVector
}

// Bounds implements rtreego.Spatial. Points get a tiny extent because the
// R-tree rejects zero-length rectangles.
func (v *indexedVertex) Bounds() rtreego.Rect {
	const epsilon = 1e-9
	rect, _ := rtreego.NewRect(rtreego.Point{v.plane.X, v.plane.Y}, []float64{epsilon, epsilon})
	return rect
}

// NewVertexIndex indexes the points, line vertices and ring vertices of d.
// Vertices whose projection is not finite (at or beyond the poles) are left
// out.
func NewVertexIndex(d Data) *VertexIndex {
	idx := &VertexIndex{rtree: rtreego.NewTree(2, 25, 50)}
	for _, p := range d.Points {
		idx.insert(p)
	}
	for _, l := range d.Lines {
		for _, p := range l {
			idx.insert(p)
		}
	}
	for _, poly := range d.Polygons {
		for _, ring := range poly {
			for _, p := range ring {
				idx.insert(p)
			}
		}
	}
	return idx
}

func (idx *VertexIndex) insert(p geom.Point) {
	c := geo.GeoVector{Lat: p.Y, Lon: p.X}
	plane := flinger.PseudoMercator(c)
	if math.IsNaN(plane.Y) || math.IsInf(plane.Y, 0) || math.IsNaN(plane.X) || math.IsInf(plane.X, 0) {
		return
	}
	idx.rtree.Insert(&indexedVertex{coord: c, plane: plane})
}

// Len returns the number of indexed vertices.
func (idx *VertexIndex) Len() int {
	return idx.rtree.Size()
}

// Nearest returns the indexed vertex closest to c.
func (idx *VertexIndex) Nearest(c geo.GeoVector) (geo.GeoVector, bool) {
	if idx.rtree.Size() == 0 {
		return geo.GeoVector{}, false
	}
	q := flinger.PseudoMercator(c)
	v, ok := idx.rtree.NearestNeighbor(rtreego.Point{q.X, q.Y}).(*indexedVertex)
	if !ok {
		return geo.GeoVector{}, false
	}
	return v.coord, true
}
