package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for a benchmark run
type Config struct {
	Endpoints []string      // JSON-RPC endpoint URLs, tested in order
	Duration  time.Duration // observation window per endpoint
	Timeout   time.Duration // bound on a single probe
	Delay     time.Duration // pause between probes
	ReportDir string        // report output directory; empty disables file output
	Chart     bool          // also render a mean latency chart
}

// Default returns the configuration used when no flags or file override it.
func Default() Config {
	return Config{
		Duration: 10 * time.Second,
		Timeout:  5 * time.Second,
		Delay:    100 * time.Millisecond,
	}
}

// fileConfig is the YAML shape of a config file. Durations are integral
// milliseconds so the file needs no unit parsing.
type fileConfig struct {
	Endpoints  []string `yaml:"endpoints"`
	DurationMS int      `yaml:"duration_ms"`
	TimeoutMS  int      `yaml:"timeout_ms"`
	DelayMS    int      `yaml:"delay_ms"`
	ReportDir  string   `yaml:"report_dir"`
	Chart      *bool    `yaml:"chart"`
}

// Load reads a YAML config file on top of the defaults. Fields absent from
// the file keep their default values.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if len(fc.Endpoints) > 0 {
		cfg.Endpoints = fc.Endpoints
	}
	if fc.DurationMS > 0 {
		cfg.Duration = time.Duration(fc.DurationMS) * time.Millisecond
	}
	if fc.TimeoutMS > 0 {
		cfg.Timeout = time.Duration(fc.TimeoutMS) * time.Millisecond
	}
	if fc.DelayMS > 0 {
		cfg.Delay = time.Duration(fc.DelayMS) * time.Millisecond
	}
	if fc.ReportDir != "" {
		cfg.ReportDir = fc.ReportDir
	}
	if fc.Chart != nil {
		cfg.Chart = *fc.Chart
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Endpoints) == 0 {
		return fmt.Errorf("at least one endpoint must be specified")
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay cannot be negative")
	}
	if c.Chart && c.ReportDir == "" {
		return fmt.Errorf("chart output requires a report directory")
	}
	return nil
}
