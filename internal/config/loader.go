package config

import (
	"fmt"
	"strings"

	"github.com/Maxime2/interpolation"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. INTERPVIZ_SERVER_PORT.
const EnvPrefix = "INTERPVIZ"

// DefaultMaxResolution caps the curve resolution a client may request.
const DefaultMaxResolution = 10000

var envKeyReplacer = strings.NewReplacer(".", "_")

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("interpviz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/interpviz")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return parseConfig(v)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(v)
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)

	v.SetDefault("curve.resolution", interpolation.DefaultResolution)
	v.SetDefault("curve.padding", interpolation.DefaultPadding)
	v.SetDefault("curve.limit", interpolation.DefaultLimit)
	v.SetDefault("curve.max_resolution", DefaultMaxResolution)

	v.SetDefault("chart.width", 1024)
	v.SetDefault("chart.height", 640)
	v.SetDefault("chart.resolution", interpolation.ChartResolution)
	v.SetDefault("chart.title", "Interpolation")

	v.SetDefault("methods", []string{})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_path", "stderr")
	v.SetDefault("logging.time_format", "RFC3339")
}

// parseConfig parses viper config into Config struct
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Curve: CurveConfig{
			Resolution: interpolation.DefaultResolution,
			Padding:    interpolation.DefaultPadding,
			Limit:      interpolation.DefaultLimit,

			MaxResolution: DefaultMaxResolution,
		},
		Chart: ChartConfig{
			Width:      1024,
			Height:     640,
			Resolution: interpolation.ChartResolution,
			Title:      "Interpolation",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stderr",
			TimeFormat: "RFC3339",
		},
	}
}
