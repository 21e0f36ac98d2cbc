package flinger

import (
	"math"

	"mapflinger/internal/geo"
)

// EquatorLength is the length of the Equator in meters.
const EquatorLength = 40_075_017

// PseudoMercator projects geo coordinates onto the spherical pseudo-Mercator
// plane. The result is in degree-like plane units, not pixels. The y axis
// grows northward and diverges as |lat| approaches 90; no clamping is done.
func PseudoMercator(c geo.GeoVector) geo.PixelVector {
	y := 180 / math.Pi * math.Log(math.Tan(math.Pi/4+c.Lat*math.Pi/360))
	return geo.PixelVector{X: c.Lon, Y: y}
}

// InversePseudoMercator maps a plane point back to geo coordinates.
func InversePseudoMercator(p geo.PixelVector) geo.GeoVector {
	lat := 360/math.Pi*math.Atan(math.Exp(p.Y*math.Pi/180)) - 90
	return geo.GeoVector{Lat: lat, Lon: p.X}
}

// PixelsPerMeter converts an OpenStreetMap zoom level into pixels per meter
// on the Equator. Any non-negative zoom is accepted, fractional included.
// See https://wiki.openstreetmap.org/wiki/Zoom_levels
func PixelsPerMeter(zoom float64) float64 {
	return math.Pow(2, zoom) / 156415
}
