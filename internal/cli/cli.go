// Package cli holds the mapflinger command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mapflinger/internal/config"
	"mapflinger/internal/geo"
)

// Version is the mapflinger release.
const Version = "0.1.0"

type app struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewRoot returns the root command. Running it without a subcommand starts
// the viewer. Output goes to out and log messages to logOut.
func NewRoot(out, logOut io.Writer) *cobra.Command {
	a := &app{cfg: config.New(), log: logrus.New()}
	a.log.Out = logOut

	root := &cobra.Command{
		Use:   "mapflinger [file]",
		Short: "Project geographic data onto a pixel viewport.",
		Long: `mapflinger maps geographic coordinates onto a pixel viewport using the
pseudo-Mercator projection, extracts icon offsets from SVG icon sheets and
shows vector data (GeoJSON, KML, CSV, WKT) in a terminal map viewer.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'MAPFLINGER_var' where 'var'
is the name of the option with dashes replaced by underscores.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setConfig()
		},
		RunE: a.runView,
	}
	root.SetOutput(out)

	mustBind(a.cfg, root.PersistentFlags(), "config", "log-level")
	mustBind(a.cfg, root.Flags(), "icons")

	view := &cobra.Command{
		Use:   "view [file]",
		Short: "Show vector data in the terminal map viewer",
		Long: `view opens the terminal map viewer, optionally preloading file. With
--icons the given SVG icon sheet can be browsed with the g key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runView,
	}
	mustBind(a.cfg, view.Flags(), "icons")

	fling := &cobra.Command{
		Use:   "fling lat,lon...",
		Short: "Print the viewport size and pixel positions of coordinates",
		Long: `fling builds a viewport for --bbox at --zoom with the given border and
prints its size followed by one pixel position per coordinate. With
--inverse the arguments are pixel positions x,y and geographic coordinates
are printed instead. Use -- before arguments that start with a minus sign.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runFling,
	}
	mustBind(a.cfg, fling.Flags(), "bbox", "zoom", "border-x", "border-y")
	fling.Flags().Bool("inverse", false, "treat arguments as pixel positions")

	scale := &cobra.Command{
		Use:   "scale [lat]",
		Short: "Print pixels per meter at a latitude",
		Long: `scale prints the number of pixels per meter at latitude lat, or at the
center of --bbox when lat is omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runScale,
	}
	mustBind(a.cfg, scale.Flags(), "bbox", "zoom")

	icons := &cobra.Command{
		Use:   "icons sheet.svg [id...]",
		Short: "List the icons of an SVG icon sheet",
		Long: `icons prints the grid offset and path data of every icon in sheet.svg,
or only of the given ids. Ids missing from the sheet are reported.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runIcons,
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("mapflinger v%s\n", Version)
		},
	}

	root.AddCommand(view, fling, scale, icons, version)
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	root := NewRoot(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func mustBind(c *config.Config, set *pflag.FlagSet, names ...string) {
	if err := c.Bind(set, names...); err != nil {
		panic(err)
	}
}

// setConfig reads the configuration file, if there is one, and applies the
// log level.
func (a *app) setConfig() error {
	if err := a.cfg.Read(); err != nil {
		return err
	}
	lvl, err := a.cfg.LogLevel()
	if err != nil {
		return fmt.Errorf("mapflinger: %v", err)
	}
	a.log.SetLevel(lvl)
	return nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %v", s, err)
	}
	return v, nil
}

// parsePair parses "a,b" into two numbers.
func parsePair(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q: want two comma-separated numbers", s)
	}
	a, err := parseFloat(parts[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := parseFloat(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parseGeo(s string) (geo.GeoVector, error) {
	lat, lon, err := parsePair(s)
	return geo.GeoVector{Lat: lat, Lon: lon}, err
}

func parsePixel(s string) (geo.PixelVector, error) {
	x, y, err := parsePair(s)
	return geo.PixelVector{X: x, Y: y}, err
}
