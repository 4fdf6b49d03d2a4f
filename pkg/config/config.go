package config

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/osmesa-go/osmesa/pkg/monitoring"
	"github.com/osmesa-go/osmesa/pkg/osmesa"
)

type Config struct {
	Context struct {
		Major   uint   `fig:"major" default:"3"`
		Minor   uint   `fig:"minor" default:"3"`
		Profile string `fig:"profile" default:"core"`
	}
	Buffer struct {
		W uint32 `fig:"w" default:"256"`
		H uint32 `fig:"h" default:"256"`
	}
	Library struct {
		// Path points at an explicit libOSMesa when discovery
		// shouldn't probe the usual sonames.
		Path string
	}
	Monitoring monitoring.Config
	Debug      bool
}

// allows custom config path
var configPath string

func NewConfig() *Config {
	var conf Config
	_ = LoadConfig(&conf, configPath)
	return &conf
}

func (c *Config) WithFlags(fs *pflag.FlagSet) *Config {
	fs.UintVar(&c.Context.Major, "major", c.Context.Major, "GL context major version")
	fs.UintVar(&c.Context.Minor, "minor", c.Context.Minor, "GL context minor version")
	fs.StringVar(&c.Context.Profile, "profile", c.Context.Profile, "GL profile (none, core, compat)")
	fs.Uint32Var(&c.Buffer.W, "width", c.Buffer.W, "Render buffer width")
	fs.Uint32Var(&c.Buffer.H, "height", c.Buffer.H, "Render buffer height")
	fs.StringVar(&c.Library.Path, "library", c.Library.Path, "Explicit libOSMesa path")
	fs.IntVar(&c.Monitoring.Port, "monitoring.port", c.Monitoring.Port, "Monitoring server port")
	fs.BoolVar(&c.Monitoring.MetricEnabled, "monitoring.metrics", c.Monitoring.MetricEnabled, "Serve Prometheus metrics")
	fs.BoolVar(&c.Monitoring.ProfilingEnabled, "monitoring.pprof", c.Monitoring.ProfilingEnabled, "Serve pprof profiles")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging")
	fs.StringVarP(&configPath, "conf", "c", "", "Set custom configuration file path")
	return c
}

// GlProfile maps the textual profile setting onto the context option.
func (c *Config) GlProfile() (osmesa.Profile, error) {
	switch c.Context.Profile {
	case "", "none":
		return osmesa.ProfileNone, nil
	case "core":
		return osmesa.ProfileCore, nil
	case "compat", "compatibility":
		return osmesa.ProfileCompat, nil
	}
	return osmesa.ProfileNone, fmt.Errorf("unknown gl profile: %v", c.Context.Profile)
}
