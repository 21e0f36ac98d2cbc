package flinger

import "mapflinger/internal/geo"

// DefaultZoom is the zoom level used when WithZoom is not given.
const DefaultZoom = 18.0

type options struct {
	zoom   float64
	border geo.PixelVector
}

func defaultOptions() options {
	return options{zoom: DefaultZoom}
}

// Option configures a Flinger.
type Option func(*options)

// WithZoom sets the OpenStreetMap zoom level.
func WithZoom(zoom float64) Option {
	return func(o *options) {
		o.zoom = zoom
	}
}

// WithBorder sets the padding added on every side of the viewport.
// Negative padding is accepted and shrinks the viewport.
func WithBorder(border geo.PixelVector) Option {
	return func(o *options) {
		o.border = border
	}
}
