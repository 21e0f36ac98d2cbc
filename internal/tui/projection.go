package tui

import (
	"math"

	"mapflinger/internal/flinger"
	"mapflinger/internal/geo"
)

// maxMicro bounds projected positions before they are converted to int.
const maxMicro = 1 << 24

// fitViewport returns a Flinger whose viewport is width x height pixels with
// box centered in it. zoom scales the fitted level: 2 shows the box twice as
// large.
func fitViewport(box geo.Box, width, height, zoom float64) (*flinger.Flinger, bool) {
	if width <= 0 || height <= 0 || zoom <= 0 {
		return nil, false
	}
	level := flinger.FitZoom(box, width, height) + math.Log2(zoom)
	if !finite(level) {
		return nil, false
	}
	f := flinger.New(box, flinger.WithZoom(level))
	extent := flinger.PseudoMercator(box.Max()).Sub(flinger.PseudoMercator(box.Min())).Scale(f.Ratio())
	if !finite(extent.X) || !finite(extent.Y) {
		return nil, false
	}
	border := geo.PixelVector{X: (width - extent.X) / 2, Y: (height - extent.Y) / 2}
	return flinger.New(box, flinger.WithZoom(level), flinger.WithBorder(border)), true
}

// viewport maps the dataset onto a w x h cell canvas at braille resolution
// (2x4 dots per cell).
func (m Model) viewport(w, h int) (*flinger.Flinger, bool) {
	if m.data.Empty() || w <= 1 || h <= 1 {
		return nil, false
	}
	return fitViewport(m.data.Box(), float64(w*2-1), float64(h*4-1), m.zoom)
}

// toMicro projects lon/lat onto the braille microgrid, including pan.
func (m Model) toMicro(f *flinger.Flinger, lon, lat float64) (int, int, bool) {
	p := f.Fling(geo.GeoVector{Lat: lat, Lon: lon})
	if !finite(p.X) || !finite(p.Y) || math.Abs(p.X) > maxMicro || math.Abs(p.Y) > maxMicro {
		return 0, 0, false
	}
	return int(p.X) + m.offsetX*2, int(p.Y) + m.offsetY*4, true
}

// fromMicro is the inverse of toMicro.
func (m Model) fromMicro(f *flinger.Flinger, mx, my int) geo.GeoVector {
	return f.Unfling(geo.PixelVector{
		X: float64(mx - m.offsetX*2),
		Y: float64(my - m.offsetY*4),
	})
}

// cellToLonLat converts a map cell back to lon/lat.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	f, ok := m.viewport(w, h)
	if !ok {
		return 0, 0, false
	}
	c := m.fromMicro(f, cx*2, cy*4)
	if !finite(c.Lat) || !finite(c.Lon) {
		return 0, 0, false
	}
	return c.Lon, c.Lat, true
}

// nearestMicro returns the microgrid position of the vertex closest to the
// given microgrid position.
func (m Model) nearestMicro(f *flinger.Flinger, mx, my int) (geo.GeoVector, int, int, bool) {
	if m.index == nil {
		return geo.GeoVector{}, 0, 0, false
	}
	c, ok := m.index.Nearest(m.fromMicro(f, mx, my))
	if !ok {
		return geo.GeoVector{}, 0, 0, false
	}
	x, y, ok := m.toMicro(f, c.Lon, c.Lat)
	return c, x, y, ok
}

// inspectNearest finds the vertex closest to the viewport center.
func (m Model) inspectNearest() (geo.GeoVector, bool) {
	lo := m.layout()
	w, h := lo.mapW, lo.mapH
	f, ok := m.viewport(w, h)
	if !ok || m.index == nil {
		return geo.GeoVector{}, false
	}
	return m.index.Nearest(m.fromMicro(f, w, h*2))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
