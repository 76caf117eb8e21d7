// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of the tern command.
package config

import (
	"os"

	"github.com/calebcase/oops"
	"github.com/db47h/ternary"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the tern command.
type Config struct {
	// Unsigned selects unsigned ternary (digits 0, 1, 2) instead of
	// balanced ternary.
	Unsigned bool `yaml:"unsigned"`

	// Input and Output name the notation of operands and results:
	// "trits" or "decimal".
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the default configuration: balanced ternary, decimal
// operands, trit results.
func Default() *Config {
	return &Config{
		Input:   ternary.DecimalNotation.String(),
		Output:  ternary.TritNotation.String(),
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load loads the configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, oops.Trace(err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, oops.Trace(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return oops.Trace(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return oops.Trace(err)
	}
	return nil
}

// Validate checks the notation names.
func (c *Config) Validate() error {
	if _, err := c.InputNotation(); err != nil {
		return err
	}
	_, err := c.OutputNotation()
	return err
}

// InputNotation returns the parsed Input notation.
func (c *Config) InputNotation() (ternary.Notation, error) {
	return ternary.ParseNotation(c.Input)
}

// OutputNotation returns the parsed Output notation.
func (c *Config) OutputNotation() (ternary.Notation, error) {
	return ternary.ParseNotation(c.Output)
}
