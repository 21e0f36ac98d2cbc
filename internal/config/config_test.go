package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"mapflinger/internal/flinger"
	"mapflinger/internal/geo"
)

func newFlagSet(t *testing.T, c *Config, names ...string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(t.Name(), pflag.ContinueOnError)
	if err := c.Bind(fs, names...); err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestDefaults(t *testing.T) {
	c := New()
	newFlagSet(t, c, "zoom", "border-x", "border-y", "log-level", "bbox")
	if c.Zoom() != flinger.DefaultZoom {
		t.Errorf("Expected zoom %v, got %v", flinger.DefaultZoom, c.Zoom())
	}
	if c.Border() != (geo.PixelVector{}) {
		t.Errorf("Expected zero border, got %v", c.Border())
	}
	if lvl, err := c.LogLevel(); err != nil || lvl != logrus.InfoLevel {
		t.Errorf("Expected info level, got %v (%v)", lvl, err)
	}
	if _, err := c.Box(); err == nil {
		t.Error("Expected error for missing bbox")
	}
}

func TestFlags(t *testing.T) {
	c := New()
	fs := newFlagSet(t, c, "zoom", "border-x", "border-y", "bbox")
	if err := fs.Parse([]string{"-z", "12", "--border-x=10", "--bbox", "37.61,55.75,37.63,55.76"}); err != nil {
		t.Fatal(err)
	}
	if c.Zoom() != 12 {
		t.Errorf("Expected zoom 12, got %v", c.Zoom())
	}
	if want := (geo.PixelVector{X: 10}); c.Border() != want {
		t.Errorf("Expected border %v, got %v", want, c.Border())
	}
	box, err := c.Box()
	if err != nil {
		t.Fatal(err)
	}
	if want := (geo.Box{MinLat: 55.75, MinLon: 37.61, MaxLat: 55.76, MaxLon: 37.63}); box != want {
		t.Errorf("Expected box %+v, got %+v", want, box)
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("MAPFLINGER_BORDER_Y", "7.5")
	t.Setenv("MAPFLINGER_ZOOM", "3")
	c := New()
	fs := newFlagSet(t, c, "zoom", "border-y")
	if err := fs.Parse([]string{"--zoom=4"}); err != nil {
		t.Fatal(err)
	}
	if c.Border().Y != 7.5 {
		t.Errorf("Expected border-y from environment, got %v", c.Border().Y)
	}
	if c.Zoom() != 4 {
		t.Errorf("Expected command line to win over environment, got %v", c.Zoom())
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapflinger.toml")
	if err := os.WriteFile(path, []byte("zoom = 9.0\nicons = \"sheet.svg\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := New()
	fs := newFlagSet(t, c, "config", "zoom", "icons")
	if err := fs.Parse([]string{"--config", path}); err != nil {
		t.Fatal(err)
	}
	if err := c.Read(); err != nil {
		t.Fatal(err)
	}
	if c.Zoom() != 9 {
		t.Errorf("Expected zoom from file, got %v", c.Zoom())
	}
	if c.GetString("icons") != "sheet.svg" {
		t.Errorf("Expected icons from file, got %q", c.GetString("icons"))
	}

	c = New()
	fs = newFlagSet(t, c, "config")
	if err := fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}); err != nil {
		t.Fatal(err)
	}
	if err := c.Read(); err == nil {
		t.Error("Expected error for a missing configuration file")
	}
}

func TestBindShared(t *testing.T) {
	c := New()
	a := newFlagSet(t, c, "zoom")
	b := newFlagSet(t, c, "zoom")
	if a.Lookup("zoom") != b.Lookup("zoom") {
		t.Error("Expected both flag sets to share the zoom flag")
	}
	if err := c.Bind(pflag.NewFlagSet("x", pflag.ContinueOnError), "nope"); err == nil {
		t.Error("Expected error for an unknown option")
	}
}
