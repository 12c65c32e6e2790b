// SPDX-License-Identifier: EPL-2.0

package soxe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/soxe/effects"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the engine options.
type Config struct {
	BlockSize int        `yaml:"block_size"`
	LogLevel  string     `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
	Trim      TrimConfig `yaml:"trim"`
}

// TrimConfig holds the TrimSilence defaults in their textual notation.
type TrimConfig struct {
	Mode        string `yaml:"mode"`
	MinDuration string `yaml:"min_duration"`
	Threshold   string `yaml:"threshold"`
}

// Load reads the YAML configuration file at path and returns a validated
// Config.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
// Unknown keys are rejected; an empty document yields the zero Config.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.BlockSize < 0 {
		errs = append(errs, fmt.Errorf("block_size %d must not be negative", cfg.BlockSize))
	}
	if cfg.LogLevel != "" {
		if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("log_level %q is invalid: %w", cfg.LogLevel, err))
		}
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format %q is invalid; valid values: text, json", cfg.LogFormat))
	}

	if cfg.Trim.Mode != "" {
		if _, err := effects.ParseMode(cfg.Trim.Mode); err != nil {
			errs = append(errs, fmt.Errorf("trim.mode: %w", err))
		}
	}
	if cfg.Trim.MinDuration != "" {
		if _, err := effects.ParseDuration(cfg.Trim.MinDuration); err != nil {
			errs = append(errs, fmt.Errorf("trim.min_duration: %w", err))
		}
	}
	if cfg.Trim.Threshold != "" {
		if _, err := effects.ParseThreshold(cfg.Trim.Threshold); err != nil {
			errs = append(errs, fmt.Errorf("trim.threshold: %w", err))
		}
	}

	return errors.Join(errs...)
}

// SilenceConfig returns effects.DefaultSilenceConfig overlaid with the
// trim values set in c.
func (c *Config) SilenceConfig() (effects.SilenceConfig, error) {
	sc := effects.DefaultSilenceConfig

	var err error
	if c.Trim.Mode != "" {
		if sc.Mode, err = effects.ParseMode(c.Trim.Mode); err != nil {
			return sc, err
		}
	}
	if c.Trim.MinDuration != "" {
		if sc.MinDuration, err = effects.ParseDuration(c.Trim.MinDuration); err != nil {
			return sc, err
		}
	}
	if c.Trim.Threshold != "" {
		if sc.Threshold, err = effects.ParseThreshold(c.Trim.Threshold); err != nil {
			return sc, err
		}
	}

	return sc, nil
}

// NewLogger builds a logrus logger with the configured level and format.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	l := logrus.New()

	if c.LogLevel != "" {
		lvl, err := logrus.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
		}
		l.SetLevel(lvl)
	}
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	return l, nil
}

// NewFromConfig returns a stopped engine configured from cfg. opts are
// applied after the config and take precedence.
func NewFromConfig(cfg *Config, opts ...Option) (*Engine, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	log, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}
	trim, err := cfg.SilenceConfig()
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithLogger(log),
		WithBlockSize(cfg.BlockSize),
		WithTrimDefaults(trim),
	}

	return New(append(base, opts...)...), nil
}
