package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
)

// ErrInvalidBox is returned when a boundary box description cannot be parsed.
var ErrInvalidBox = errors.New("invalid boundary box")

// BoundaryBox is a rectangular geographic region. Min must not exceed Max on
// either axis; zero-area boxes are allowed.
type BoundaryBox interface {
	Min() GeoVector
	Max() GeoVector
	Center() GeoVector
}

// Box is the plain BoundaryBox implementation.
type Box struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// NewBox returns the box spanned by two corners given in any order.
func NewBox(a, b GeoVector) Box {
	return Box{
		MinLat: math.Min(a.Lat, b.Lat),
		MinLon: math.Min(a.Lon, b.Lon),
		MaxLat: math.Max(a.Lat, b.Lat),
		MaxLon: math.Max(a.Lon, b.Lon),
	}
}

// BoxFromBounds converts planar bounds whose X is longitude and Y is
// latitude.
func BoxFromBounds(b *geom.Bounds) Box {
	return Box{MinLat: b.Min.Y, MinLon: b.Min.X, MaxLat: b.Max.Y, MaxLon: b.Max.X}
}

// ParseBox parses the "left,bottom,right,top" form (longitude, latitude,
// longitude, latitude) used by OpenStreetMap tools.
func ParseBox(s string) (Box, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Box{}, fmt.Errorf("%w: want left,bottom,right,top, got %q", ErrInvalidBox, s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Box{}, fmt.Errorf("%w: %q: %v", ErrInvalidBox, s, err)
		}
		v[i] = f
	}
	b := Box{MinLon: v[0], MinLat: v[1], MaxLon: v[2], MaxLat: v[3]}
	if b.MinLon > b.MaxLon || b.MinLat > b.MaxLat {
		return Box{}, fmt.Errorf("%w: %q: minimum exceeds maximum", ErrInvalidBox, s)
	}
	return b, nil
}

func (b Box) Min() GeoVector { return GeoVector{Lat: b.MinLat, Lon: b.MinLon} }
func (b Box) Max() GeoVector { return GeoVector{Lat: b.MaxLat, Lon: b.MaxLon} }

func (b Box) Center() GeoVector {
	return GeoVector{Lat: (b.MinLat + b.MaxLat) / 2, Lon: (b.MinLon + b.MaxLon) / 2}
}

// Degenerate reports whether the box has zero extent on either axis.
func (b Box) Degenerate() bool {
	return !(b.MaxLon > b.MinLon && b.MaxLat > b.MinLat)
}

// Contains reports whether v lies inside the box, edges included.
func (b Box) Contains(v GeoVector) bool {
	return v.Lon >= b.MinLon && v.Lon <= b.MaxLon &&
		v.Lat >= b.MinLat && v.Lat <= b.MaxLat
}

// String renders the box in the form accepted by ParseBox.
func (b Box) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.MinLon, b.MinLat, b.MaxLon, b.MaxLat)
}
