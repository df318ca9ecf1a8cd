// Package config holds the run configuration of govbench.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultRoot is where the benchmark harness leaves its reports on the board.
const DefaultRoot = "/srv/rcar-root/home/root/base-25u"

// Config selects the report directory and the optional outputs. The
// benchmark matrix itself is fixed and not part of it.
type Config struct {
	Root string `yaml:"root" validate:"required"`

	// Export paths; empty disables the export.
	CSV  string `yaml:"csv" validate:"omitempty,filepath"`
	JSON string `yaml:"json" validate:"omitempty,filepath"`
	YAML string `yaml:"yaml" validate:"omitempty,filepath"`
	HTML string `yaml:"html" validate:"omitempty,filepath"`

	// Summary prints per-governor totals after the table.
	Summary bool `yaml:"summary"`

	Debug     bool   `yaml:"debug"`
	LogFormat string `yaml:"logFormat" validate:"omitempty,oneof=text json"`
}

// Default returns a Config pre-filled with defaults.
func Default() *Config {
	return &Config{
		Root:      DefaultRoot,
		LogFormat: "text",
	}
}

// Load reads a YAML file and merges it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config YAML %s: %w", path, err)
	}

	return Merge(Default(), &file), nil
}

// Merge returns base overridden by the non-zero fields of over.
func Merge(base, over *Config) *Config {
	merged := *base
	if over == nil {
		return &merged
	}
	if over.Root != "" {
		merged.Root = over.Root
	}
	if over.CSV != "" {
		merged.CSV = over.CSV
	}
	if over.JSON != "" {
		merged.JSON = over.JSON
	}
	if over.YAML != "" {
		merged.YAML = over.YAML
	}
	if over.HTML != "" {
		merged.HTML = over.HTML
	}
	if over.LogFormat != "" {
		merged.LogFormat = over.LogFormat
	}
	merged.Summary = merged.Summary || over.Summary
	merged.Debug = merged.Debug || over.Debug
	return &merged
}

var validate = validator.New()

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config: invalid %s (%s)", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Exports reports whether any file export is enabled.
func (c *Config) Exports() bool {
	return c.CSV != "" || c.JSON != "" || c.YAML != "" || c.HTML != ""
}
