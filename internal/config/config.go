/*
PURPOSE:
  Defines the configuration structure and loading logic for max-metric.
  With no config file and no flags the tool behaves exactly like the
  original one-off script.

REQUIREMENTS:
  User-specified:
  - Read a fixed input file and rank by "psnr".

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Metric key, error policy and report format are tunable.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - A missing default config file is not an error (defaults apply).
    One that exists but cannot be read is.
  - Validate() rejects unknown policies/formats.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults must reproduce the original behaviour.

USAGE:
  cfg, err := config.Load("max_metric.yaml")

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new report options.
*/

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/daryltucker/max-metric/internal/model"
	"gopkg.in/yaml.v3"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// DefaultFiles are searched, in order, when no config path is given.
var DefaultFiles = []string{"max_metric.yaml", "max-metric.yaml"}

// Config represents the full configuration for max-metric.
type Config struct {
	Input   string `yaml:"input"`
	Metric  string `yaml:"metric"`
	OnError string `yaml:"on_error"`
	Format  string `yaml:"format"`
	Color   bool   `yaml:"color"`
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input:   "qf_test_log_double.txt",
		Metric:  "psnr",
		OnError: string(model.PolicyFail),
		Format:  FormatText,
		Color:   true,
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", name, err)
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Policy returns the parsed error policy.
func (c *Config) Policy() (model.Policy, error) {
	return model.ParsePolicy(c.OnError)
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("input path must not be empty")
	}
	if strings.TrimSpace(c.Metric) == "" {
		return errors.New("metric key must not be empty")
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatCSV:
	default:
		return fmt.Errorf("unknown report format %q", c.Format)
	}
	return nil
}
