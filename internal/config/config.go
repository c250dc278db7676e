package config

import (
	"fmt"

	"github.com/Maxime2/interpolation"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Curve   CurveConfig   `mapstructure:"curve"`
	Chart   ChartConfig   `mapstructure:"chart"`
	Methods []string      `mapstructure:"methods"` // active methods; empty means all
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// CurveConfig controls curve sampling
type CurveConfig struct {
	Resolution int     `mapstructure:"resolution"`
	Padding    float64 `mapstructure:"padding"` // fraction of the x range added on each side
	Limit      float64 `mapstructure:"limit"`   // samples with |y| >= limit are dropped

	MaxResolution int `mapstructure:"max_resolution"` // upper bound for a requested resolution
}

// ChartConfig controls PNG output
type ChartConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Resolution int    `mapstructure:"resolution"`
	Title      string `mapstructure:"title"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`      // json or console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr or a file path
	TimeFormat string `mapstructure:"time_format"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Curve.Validate(); err != nil {
		return fmt.Errorf("curve config: %w", err)
	}
	if err := c.Chart.Validate(); err != nil {
		return fmt.Errorf("chart config: %w", err)
	}
	if _, err := interpolation.ParseMethods(c.Methods); err != nil {
		return fmt.Errorf("methods: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	return nil
}

func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

func (c *CurveConfig) Validate() error {
	if c.Resolution < 1 {
		return fmt.Errorf("resolution must be positive, got %d", c.Resolution)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %v", c.Padding)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %v", c.Limit)
	}
	if c.MaxResolution < c.Resolution {
		return fmt.Errorf("max_resolution %d is below resolution %d", c.MaxResolution, c.Resolution)
	}
	return nil
}

func (c *ChartConfig) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("invalid chart size %dx%d", c.Width, c.Height)
	}
	if c.Resolution < 1 {
		return fmt.Errorf("resolution must be positive, got %d", c.Resolution)
	}
	return nil
}

// Validate validates logging configuration
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}
	return nil
}

// CurveOptions converts the curve section for the engine.
func (c *Config) CurveOptions() interpolation.CurveOptions {
	return interpolation.CurveOptions{
		Resolution: c.Curve.Resolution,
		Padding:    c.Curve.Padding,
		Limit:      c.Curve.Limit,
	}
}

// ChartOptions converts the chart section for the PNG renderer.
func (c *Config) ChartOptions() interpolation.ChartOptions {
	return interpolation.ChartOptions{
		Title:      c.Chart.Title,
		Width:      c.Chart.Width,
		Height:     c.Chart.Height,
		Resolution: c.Chart.Resolution,
	}
}

// ActiveMethods returns the configured methods. Config is assumed validated.
func (c *Config) ActiveMethods() []interpolation.Method {
	ms, err := interpolation.ParseMethods(c.Methods)
	if err != nil {
		return interpolation.Methods()
	}
	return ms
}

// Addr is host:port for the HTTP listener.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
