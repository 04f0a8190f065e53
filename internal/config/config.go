// Package config loads the HTTP service configuration from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Generator GeneratorConfig `yaml:"generator"`
	Session   SessionConfig   `yaml:"session"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Plots     PlotsConfig     `yaml:"plots"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

type GeneratorConfig struct {
	DefaultPointsPerSegment int  `yaml:"default_points_per_segment"`
	MaxPointsPerSegment     int  `yaml:"max_points_per_segment"`
	MaxWaypoints            int  `yaml:"max_waypoints"`
	PreviewRows             int  `yaml:"preview_rows"`
	EnableParallel          bool `yaml:"enable_parallel"`
}

type SessionConfig struct {
	CookieName  string        `yaml:"cookie_name"`
	TTL         time.Duration `yaml:"ttl"`
	MaxSessions int           `yaml:"max_sessions"`
}

type MetricsConfig struct {
	Path string `yaml:"path"`
}

// PlotsConfig sizes the rendered charts in inches.
type PlotsConfig struct {
	Disabled bool    `yaml:"disabled"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads, defaults and validates the configuration file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = 1 << 20
	}
	if c.Generator.DefaultPointsPerSegment == 0 {
		c.Generator.DefaultPointsPerSegment = 100
	}
	if c.Generator.MaxPointsPerSegment == 0 {
		c.Generator.MaxPointsPerSegment = 10_000
	}
	if c.Generator.MaxWaypoints == 0 {
		c.Generator.MaxWaypoints = 1_000
	}
	if c.Generator.PreviewRows == 0 {
		c.Generator.PreviewRows = 100
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "camprofile_session"
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = 2 * time.Hour
	}
	if c.Session.MaxSessions == 0 {
		c.Session.MaxSessions = 10_000
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Plots.Width == 0 {
		c.Plots.Width = 7
	}
	if c.Plots.Height == 0 {
		c.Plots.Height = 3
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("server.max_body_bytes must be positive")
	}
	if c.Generator.DefaultPointsPerSegment < 2 {
		return fmt.Errorf("generator.default_points_per_segment must be at least 2")
	}
	if c.Generator.MaxPointsPerSegment < c.Generator.DefaultPointsPerSegment {
		return fmt.Errorf("generator.max_points_per_segment must be >= default_points_per_segment")
	}
	if c.Generator.MaxWaypoints < 0 || c.Generator.PreviewRows < 0 {
		return fmt.Errorf("generator limits must be positive")
	}
	if c.Session.TTL < 0 || c.Session.MaxSessions < 0 {
		return fmt.Errorf("session limits must be positive")
	}
	if c.Metrics.Path == "" || c.Metrics.Path[0] != '/' {
		return fmt.Errorf("metrics.path must start with /")
	}
	if c.Plots.Width < 0 || c.Plots.Height < 0 {
		return fmt.Errorf("plots size must be positive")
	}
	return nil
}
