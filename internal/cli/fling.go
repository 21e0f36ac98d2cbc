package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mapflinger/internal/flinger"
	"mapflinger/internal/geo"
)

func (a *app) viewport() (*flinger.Flinger, error) {
	box, err := a.cfg.Box()
	if err != nil {
		return nil, err
	}
	if box.Degenerate() {
		a.log.WithField("bbox", box).Warn("bbox has no extent on one axis")
	}
	f := flinger.New(box, flinger.WithZoom(a.cfg.Zoom()), flinger.WithBorder(a.cfg.Border()))
	a.log.WithFields(logrus.Fields{
		"bbox":   f.Boundaries(),
		"zoom":   f.Zoom(),
		"border": f.Border(),
	}).Debug("viewport ready")
	return f, nil
}

func (a *app) runFling(cmd *cobra.Command, args []string) error {
	inverse, err := cmd.Flags().GetBool("inverse")
	if err != nil {
		return err
	}
	f, err := a.viewport()
	if err != nil {
		return err
	}
	size := f.Size()
	cmd.Printf("size\t%gx%g\n", size.X, size.Y)
	for _, arg := range args {
		if inverse {
			p, err := parsePixel(arg)
			if err != nil {
				return err
			}
			cmd.Printf("%s\t%s\n", p, f.Unfling(p))
			continue
		}
		c, err := parseGeo(arg)
		if err != nil {
			return err
		}
		if box, ok := f.Boundaries().(geo.Box); ok && !box.Contains(c) {
			a.log.WithField("coordinate", c).Debug("coordinate outside bbox")
		}
		cmd.Printf("%s\t%s\n", c, f.Fling(c))
	}
	return nil
}

func (a *app) runScale(cmd *cobra.Command, args []string) error {
	f, err := a.viewport()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		cmd.Printf("%g\n", f.ScaleAtCenter())
		return nil
	}
	lat, err := parseFloat(args[0])
	if err != nil {
		return err
	}
	cmd.Printf("%g\n", f.Scale(geo.GeoVector{Lat: lat}))
	return nil
}
