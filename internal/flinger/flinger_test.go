package flinger

import (
	"math"
	"testing"

	"mapflinger/internal/geo"
)

const tolerance = 1e-6

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func moscowBox() geo.Box {
	return geo.Box{MinLat: 55.75, MinLon: 37.61, MaxLat: 55.76, MaxLon: 37.63}
}

func TestPixelsPerMeter(t *testing.T) {
	tests := []struct {
		zoom float64
		want float64
	}{
		{0, 1.0 / 156415},
		{1, 2.0 / 156415},
		{18, 262144.0 / 156415},
		{2.5, math.Pow(2, 2.5) / 156415},
	}
	for _, tt := range tests {
		if got := PixelsPerMeter(tt.zoom); !almostEqual(got, tt.want, 1e-12) {
			t.Errorf("PixelsPerMeter(%v): expected %v, got %v", tt.zoom, tt.want, got)
		}
	}
}

func TestNewDefaults(t *testing.T) {
	f := New(moscowBox())
	if f.Boundaries() != geo.BoundaryBox(moscowBox()) {
		t.Errorf("Expected boundaries %v, got %v", moscowBox(), f.Boundaries())
	}
	if f.Zoom() != DefaultZoom {
		t.Errorf("Expected default zoom %v, got %v", DefaultZoom, f.Zoom())
	}
	if f.Border() != (geo.PixelVector{}) {
		t.Errorf("Expected zero border, got %v", f.Border())
	}
	wantRatio := PixelsPerMeter(DefaultZoom) * EquatorLength / 360
	if !almostEqual(f.Ratio(), wantRatio, 1e-9) {
		t.Errorf("Expected ratio %v, got %v", wantRatio, f.Ratio())
	}
}

func TestSizeIsTruncated(t *testing.T) {
	tests := []struct {
		name   string
		box    geo.Box
		zoom   float64
		border geo.PixelVector
		want   geo.PixelVector
	}{
		{
			name:   "city block with border",
			box:    moscowBox(),
			zoom:   18,
			border: geo.PixelVector{X: 10, Y: 20},
			want:   geo.PixelVector{X: 3751, Y: 3355},
		},
		{
			name: "equator strip",
			box:  geo.Box{MinLat: 0, MinLon: 0, MaxLat: 0, MaxLon: 1},
			zoom: 10,
			want: geo.PixelVector{X: 728, Y: 0},
		},
		{
			name:   "negative border shrinks",
			box:    geo.Box{MinLat: 0, MinLon: 0, MaxLat: 0, MaxLon: 1},
			zoom:   10,
			border: geo.PixelVector{X: -100, Y: -5},
			want:   geo.PixelVector{X: 528, Y: -10},
		},
		{
			name:   "zero area box",
			box:    geo.Box{MinLat: 12, MinLon: 34, MaxLat: 12, MaxLon: 34},
			zoom:   18,
			border: geo.PixelVector{X: 3.7, Y: 1.2},
			want:   geo.PixelVector{X: 7, Y: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.box, WithZoom(tt.zoom), WithBorder(tt.border))
			if f.Size() != tt.want {
				t.Errorf("Expected size %v, got %v", tt.want, f.Size())
			}
		})
	}
}

func TestSizeIsReproducible(t *testing.T) {
	border := geo.PixelVector{X: 7, Y: 9}
	a := New(moscowBox(), WithZoom(17.3), WithBorder(border))
	b := New(moscowBox(), WithZoom(17.3), WithBorder(border))
	if a.Size() != b.Size() {
		t.Errorf("Expected identical sizes, got %v and %v", a.Size(), b.Size())
	}
}

func TestFlingMinCorner(t *testing.T) {
	borders := []geo.PixelVector{{}, {X: 10, Y: 20}, {X: -3, Y: 4.5}}
	boxes := []geo.Box{
		moscowBox(),
		{MinLat: -33.9, MinLon: 151.1, MaxLat: -33.8, MaxLon: 151.3},
		{MinLat: 1, MinLon: 1, MaxLat: 1, MaxLon: 1},
	}
	for _, box := range boxes {
		for _, border := range borders {
			f := New(box, WithBorder(border))
			got := f.Fling(box.Min())
			if !almostEqual(got.X, border.X, tolerance) || !almostEqual(got.Y, f.Size().Y-border.Y, tolerance) {
				t.Errorf("box %v border %v: expected (%v, %v), got %v",
					box, border, border.X, f.Size().Y-border.Y, got)
			}
		}
	}
}

func TestFlingInsideBox(t *testing.T) {
	box := moscowBox()
	f := New(box, WithBorder(geo.PixelVector{X: 5, Y: 5}))
	size := f.Size()
	for _, fx := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		for _, fy := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
			c := geo.GeoVector{
				Lat: box.MinLat + fy*(box.MaxLat-box.MinLat),
				Lon: box.MinLon + fx*(box.MaxLon-box.MinLon),
			}
			p := f.Fling(c)
			if p.X < 0 || p.X > size.X || p.Y < 0 || p.Y > size.Y {
				t.Errorf("point %v flung outside viewport %v: %v", c, size, p)
			}
		}
	}
}

func TestFlingMonotonic(t *testing.T) {
	f := New(moscowBox())
	base := f.Fling(geo.GeoVector{Lat: 55.755, Lon: 37.62})
	north := f.Fling(geo.GeoVector{Lat: 55.756, Lon: 37.62})
	east := f.Fling(geo.GeoVector{Lat: 55.755, Lon: 37.621})
	if !(north.Y < base.Y) {
		t.Errorf("Expected larger latitude to map to smaller y: %v vs %v", north.Y, base.Y)
	}
	if north.X != base.X {
		t.Errorf("Expected latitude change to keep x, got %v vs %v", north.X, base.X)
	}
	if !(east.X > base.X) {
		t.Errorf("Expected larger longitude to map to larger x: %v vs %v", east.X, base.X)
	}
}

func TestFlingOutsideBox(t *testing.T) {
	f := New(moscowBox())
	p := f.Fling(geo.GeoVector{Lat: 55.70, Lon: 37.50})
	if p.X >= 0 {
		t.Errorf("Expected negative x west of the box, got %v", p.X)
	}
	if p.Y <= f.Size().Y {
		t.Errorf("Expected y beyond the viewport south of the box, got %v", p.Y)
	}
}

func TestUnflingRoundTrip(t *testing.T) {
	f := New(moscowBox(), WithZoom(16), WithBorder(geo.PixelVector{X: 12, Y: -4}))
	for _, c := range []geo.GeoVector{
		{Lat: 55.75, Lon: 37.61},
		{Lat: 55.7512, Lon: 37.6277},
		{Lat: 56.1, Lon: 36.9},
		{Lat: -10, Lon: 100},
	} {
		got := f.Unfling(f.Fling(c))
		if !almostEqual(got.Lat, c.Lat, 1e-9) || !almostEqual(got.Lon, c.Lon, 1e-9) {
			t.Errorf("round trip of %v gave %v", c, got)
		}
	}
}

func TestScale(t *testing.T) {
	box := moscowBox()
	f := New(box, WithZoom(15))

	if got, want := f.ScaleAtCenter(), f.Scale(box.Center()); got != want {
		t.Errorf("Expected ScaleAtCenter %v to equal Scale(center) %v", got, want)
	}
	if got := f.Scale(geo.GeoVector{}); !almostEqual(got, f.PixelsPerMeter(), 1e-12) {
		t.Errorf("Expected equator scale %v, got %v", f.PixelsPerMeter(), got)
	}
	if got := f.Scale(geo.GeoVector{Lat: 60}); !almostEqual(got, 2*f.PixelsPerMeter(), 1e-9) {
		t.Errorf("Expected scale at 60 degrees to double, got %v", got)
	}

	prev := f.Scale(geo.GeoVector{Lat: 0})
	for lat := 5.0; lat < 90; lat += 5 {
		north := f.Scale(geo.GeoVector{Lat: lat})
		south := f.Scale(geo.GeoVector{Lat: -lat})
		if !(north > prev) {
			t.Errorf("Expected scale to grow toward the pole at %v: %v <= %v", lat, north, prev)
		}
		if !almostEqual(north, south, 1e-9*north) {
			t.Errorf("Expected symmetric scale at +-%v: %v vs %v", lat, north, south)
		}
		prev = north
	}
}

func TestPolarSingularity(t *testing.T) {
	if y := PseudoMercator(geo.GeoVector{Lat: -90}).Y; !math.IsInf(y, -1) {
		t.Errorf("Expected -Inf at the south pole, got %v", y)
	}
	if y := PseudoMercator(geo.GeoVector{Lat: 100}).Y; !math.IsNaN(y) {
		t.Errorf("Expected NaN beyond the pole, got %v", y)
	}

	f := New(geo.Box{MinLat: -90, MinLon: 0, MaxLat: 0, MaxLon: 1})
	if !math.IsInf(f.Size().Y, 1) {
		t.Errorf("Expected infinite viewport height, got %v", f.Size().Y)
	}
	p := f.Fling(geo.GeoVector{Lat: -45, Lon: 0.5})
	if !math.IsNaN(p.Y) {
		t.Errorf("Expected NaN y to propagate, got %v", p.Y)
	}
	if s := f.Scale(geo.GeoVector{Lat: 90}); !(s > 1e15) {
		t.Errorf("Expected scale to diverge at the pole, got %v", s)
	}
}

func TestPseudoMercatorInverse(t *testing.T) {
	for _, lat := range []float64{-85, -45, -1, 0, 1, 30, 60, 85} {
		c := geo.GeoVector{Lat: lat, Lon: lat * 2}
		got := InversePseudoMercator(PseudoMercator(c))
		if !almostEqual(got.Lat, c.Lat, 1e-9) || got.Lon != c.Lon {
			t.Errorf("Expected %v, got %v", c, got)
		}
	}
	if y := PseudoMercator(geo.GeoVector{}).Y; !almostEqual(y, 0, 1e-12) {
		t.Errorf("Expected equator at y=0, got %v", y)
	}
}

func TestFitZoom(t *testing.T) {
	box := moscowBox()
	zoom := FitZoom(box, 800, 600)
	size := New(box, WithZoom(zoom)).Size()
	if size.X > 800 || size.Y > 600 {
		t.Errorf("Expected size within 800x600, got %v", size)
	}
	if size.X < 799 && size.Y < 599 {
		t.Errorf("Expected one axis to fill the target, got %v", size)
	}

	strip := geo.Box{MinLat: 0, MinLon: 0, MaxLat: 0, MaxLon: 1}
	size = New(strip, WithZoom(FitZoom(strip, 400, 10))).Size()
	if size.X < 399 || size.X > 400 {
		t.Errorf("Expected degenerate latitude to be ignored, got %v", size)
	}

	point := geo.Box{MinLat: 3, MinLon: 4, MaxLat: 3, MaxLon: 4}
	if z := FitZoom(point, 100, 100); z != DefaultZoom {
		t.Errorf("Expected default zoom for a point box, got %v", z)
	}
	if z := FitZoom(box, 0, 100); z != 0 {
		t.Errorf("Expected zero zoom for empty target, got %v", z)
	}
}
