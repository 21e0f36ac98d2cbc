// Package flinger converts geographic coordinates into drawing-surface
// positions for a fixed boundary box and zoom level.
//
// A Flinger is immutable once New returns and may be shared between
// goroutines without locking.
package flinger

import (
	"math"

	"mapflinger/internal/geo"
)

// Flinger maps geo coordinates inside (or around) a boundary box onto a
// pixel viewport whose size is fixed at construction.
type Flinger struct {
	boundaries     geo.BoundaryBox
	border         geo.PixelVector
	zoom           float64
	ratio          float64
	pixelsPerMeter float64
	size           geo.PixelVector
}

// New builds a Flinger for box. The box is retained, not copied, and must
// stay valid for the Flinger's lifetime.
func New(box geo.BoundaryBox, opts ...Option) *Flinger {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	f := &Flinger{
		boundaries:     box,
		border:         o.border,
		zoom:           o.zoom,
		pixelsPerMeter: PixelsPerMeter(o.zoom),
	}
	f.ratio = f.pixelsPerMeter * EquatorLength / 360

	extent := PseudoMercator(box.Max()).Sub(PseudoMercator(box.Min()))
	size := o.border.Scale(2).Add(extent.Scale(f.ratio))
	// Truncate toward zero, never round.
	f.size = geo.PixelVector{X: math.Trunc(size.X), Y: math.Trunc(size.Y)}
	return f
}

// Fling returns the viewport position of c. Coordinates outside the boundary
// box are legal and land outside [0, Size()].
func (f *Flinger) Fling(c geo.GeoVector) geo.PixelVector {
	p := PseudoMercator(c).Sub(PseudoMercator(f.boundaries.Min()))
	r := f.border.Add(p.Scale(f.ratio))
	// Plane y grows northward, pixel y grows downward.
	r.Y = f.size.Y - r.Y
	return r
}

// Unfling is the inverse of Fling.
func (f *Flinger) Unfling(p geo.PixelVector) geo.GeoVector {
	p.Y = f.size.Y - p.Y
	plane := p.Sub(f.border).Scale(1 / f.ratio).Add(PseudoMercator(f.boundaries.Min()))
	return InversePseudoMercator(plane)
}

// Scale returns pixels per meter at the latitude of c, correcting for the
// Mercator stretch. It diverges at the poles.
func (f *Flinger) Scale(c geo.GeoVector) float64 {
	return f.pixelsPerMeter / math.Cos(c.Lat*math.Pi/180)
}

// ScaleAtCenter returns Scale for the center of the boundary box.
func (f *Flinger) ScaleAtCenter() float64 {
	return f.Scale(f.boundaries.Center())
}

func (f *Flinger) Size() geo.PixelVector       { return f.size }
func (f *Flinger) Border() geo.PixelVector     { return f.border }
func (f *Flinger) Zoom() float64               { return f.zoom }
func (f *Flinger) Ratio() float64              { return f.ratio }
func (f *Flinger) PixelsPerMeter() float64     { return f.pixelsPerMeter }
func (f *Flinger) Boundaries() geo.BoundaryBox { return f.boundaries }

// FitZoom returns the largest zoom level at which the projected extent of box
// fits into width x height pixels without a border. Axes with no extent are
// ignored; a box with no extent at all gets DefaultZoom.
func FitZoom(box geo.BoundaryBox, width, height float64) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	extent := PseudoMercator(box.Max()).Sub(PseudoMercator(box.Min()))
	ratio0 := PixelsPerMeter(0) * EquatorLength / 360

	zoom := math.Inf(1)
	if extent.X > 0 {
		zoom = math.Min(zoom, math.Log2(width/(ratio0*extent.X)))
	}
	if extent.Y > 0 {
		zoom = math.Min(zoom, math.Log2(height/(ratio0*extent.Y)))
	}
	if math.IsInf(zoom, 1) {
		return DefaultZoom
	}
	return zoom
}
