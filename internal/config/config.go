// Package config merges command-line flags, MAPFLINGER_* environment
// variables and an optional configuration file into a single lookup.
//
// Precedence, highest first: flags set on the command line, environment,
// configuration file, flag defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"mapflinger/internal/flinger"
	"mapflinger/internal/geo"
)

// EnvPrefix prefixes every environment variable. Dashes in option names
// become underscores, so border-x is read from MAPFLINGER_BORDER_X.
const EnvPrefix = "MAPFLINGER"

type option struct {
	name, usage, shorthand string
	defaultVal             interface{}
}

var options = []option{
	{
		name:       "config",
		usage:      "configuration file (TOML, YAML or JSON)",
		defaultVal: "",
	},
	{
		name:       "log-level",
		usage:      "log level: debug, info, warning, error",
		defaultVal: "info",
	},
	{
		name:       "zoom",
		usage:      "OpenStreetMap zoom level",
		shorthand:  "z",
		defaultVal: flinger.DefaultZoom,
	},
	{
		name:       "border-x",
		usage:      "horizontal viewport border in pixels",
		defaultVal: 0.0,
	},
	{
		name:       "border-y",
		usage:      "vertical viewport border in pixels",
		defaultVal: 0.0,
	},
	{
		name:       "bbox",
		usage:      "boundary box as left,bottom,right,top in degrees",
		shorthand:  "b",
		defaultVal: "",
	},
	{
		name:       "icons",
		usage:      "SVG icon sheet to load",
		defaultVal: "",
	},
}

// Config holds configuration information.
type Config struct {
	*viper.Viper
	flags map[string]*pflag.Flag
}

// New returns a Config with environment lookup enabled and no flags bound.
func New() *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{Viper: v, flags: make(map[string]*pflag.Flag)}
}

// Bind adds the named options to set. An option already bound to another
// flag set shares that flag, so it has one value across commands.
func (c *Config) Bind(set *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if f, ok := c.flags[name]; ok {
			if set.Lookup(name) == nil {
				set.AddFlag(f)
			}
			continue
		}
		o, ok := lookup(name)
		if !ok {
			return fmt.Errorf("config: unknown option %q", name)
		}
		switch v := o.defaultVal.(type) {
		case string:
			set.StringP(o.name, o.shorthand, v, o.usage)
		case float64:
			set.Float64P(o.name, o.shorthand, v, o.usage)
		default:
			panic("invalid argument type")
		}
		f := set.Lookup(o.name)
		if err := c.BindPFlag(o.name, f); err != nil {
			return fmt.Errorf("config: binding %s: %v", o.name, err)
		}
		c.flags[name] = f
	}
	return nil
}

func lookup(name string) (option, bool) {
	for _, o := range options {
		if o.name == name {
			return o, true
		}
	}
	return option{}, false
}

// Read loads the configuration file named by the config option, if any.
func (c *Config) Read() error {
	if cfgpath := c.GetString("config"); cfgpath != "" {
		c.SetConfigFile(cfgpath)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("mapflinger: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Zoom returns the zoom option.
func (c *Config) Zoom() float64 { return c.GetFloat64("zoom") }

// Border returns the border-x and border-y options.
func (c *Config) Border() geo.PixelVector {
	return geo.PixelVector{X: c.GetFloat64("border-x"), Y: c.GetFloat64("border-y")}
}

// Box parses the bbox option.
func (c *Config) Box() (geo.Box, error) {
	s := c.GetString("bbox")
	if s == "" {
		return geo.Box{}, fmt.Errorf("config: bbox is required")
	}
	return geo.ParseBox(s)
}

// LogLevel parses the log-level option.
func (c *Config) LogLevel() (logrus.Level, error) {
	return logrus.ParseLevel(c.GetString("log-level"))
}
