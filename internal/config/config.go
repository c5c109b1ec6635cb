// Package config loads optional HCL configuration for the pokerhands
// commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete configuration file
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	Workers  int             `hcl:"workers,optional"`
	Server   *ServerSettings `hcl:"server,block"`
	Report   *ReportSettings `hcl:"report,block"`
}

// ServerSettings configures the WebSocket compare service
type ServerSettings struct {
	Address     string `hcl:"address,optional"`
	IdleTimeout string `hcl:"idle_timeout,optional"`
	MaxMessage  int    `hcl:"max_message,optional"`
}

// ReportSettings configures where batch results are saved
type ReportSettings struct {
	Path   string `hcl:"path,optional"`
	Format string `hcl:"format,optional"`
}

const (
	defaultAddress     = ":8080"
	defaultIdleTimeout = 5 * time.Minute
	defaultMaxMessage  = 4096
	defaultFormat      = "text"
)

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Server.Address == "" {
		c.Server.Address = defaultAddress
	}
	if c.Server.IdleTimeout == "" {
		c.Server.IdleTimeout = defaultIdleTimeout.String()
	}
	if c.Server.MaxMessage == 0 {
		c.Server.MaxMessage = defaultMaxMessage
	}
	if c.Report == nil {
		c.Report = &ReportSettings{}
	}
	if c.Report.Format == "" {
		c.Report.Format = defaultFormat
	}
}

// Validate checks values that HCL decoding cannot.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	d, err := time.ParseDuration(c.Server.IdleTimeout)
	if err != nil {
		return fmt.Errorf("server.idle_timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("server.idle_timeout must be positive, got %s", d)
	}
	if c.Server.MaxMessage < 0 {
		return fmt.Errorf("server.max_message must not be negative, got %d", c.Server.MaxMessage)
	}
	switch c.Report.Format {
	case "text", "json":
	default:
		return fmt.Errorf("report.format must be text or json, got %q", c.Report.Format)
	}
	return nil
}

// IdleTimeout returns the parsed server idle timeout.
func (c *Config) IdleTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.IdleTimeout)
	if err != nil || d <= 0 {
		return defaultIdleTimeout
	}
	return d
}
