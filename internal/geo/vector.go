// Package geo holds the geographic and drawing-surface value types shared by
// the projection engine, the geometry loaders and the viewer.
package geo

import "fmt"

// GeoVector is a geographic position in degrees. Values are not range
// checked; out-of-range input propagates through the projection math.
type GeoVector struct {
	Lat float64
	Lon float64
}

func (v GeoVector) String() string {
	return fmt.Sprintf("%.6f,%.6f", v.Lat, v.Lon)
}

// PixelVector is a position on the drawing surface, origin top-left,
// y growing downward.
type PixelVector struct {
	X float64
	Y float64
}

func (v PixelVector) Add(o PixelVector) PixelVector {
	return PixelVector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v PixelVector) Sub(o PixelVector) PixelVector {
	return PixelVector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v PixelVector) Scale(k float64) PixelVector {
	return PixelVector{X: v.X * k, Y: v.Y * k}
}

func (v PixelVector) String() string {
	return fmt.Sprintf("%.3f,%.3f", v.X, v.Y)
}
