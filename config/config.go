//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package config holds the host configuration for the golil shell.
package config

// Defaults for the interpreter shell.
const (
	DefaultPrompt       = "(lil) "
	DefaultDollarPrefix = "set "
	DefaultLogLevel     = "warning"
)

// Config is a configuration for the interpreter shell.
type Config struct {
	// MaxParseDepth bounds recursive evaluation; zero disables the
	// bound.
	MaxParseDepth int `yaml:"maxParseDepth"`
	// DollarPrefix is prepended to a word during dollar substitution.
	DollarPrefix string `yaml:"dollarPrefix"`
	// LogLevel selects the logrus level for the shell's own logging.
	LogLevel string `yaml:"logLevel"`
	// Prompt is printed before each interactive line.
	Prompt string `yaml:"prompt"`
}

// DefaultConfig constructs a configuration with default values.
func DefaultConfig() Config {
	return Config{
		MaxParseDepth: 0,
		DollarPrefix:  DefaultDollarPrefix,
		LogLevel:      DefaultLogLevel,
		Prompt:        DefaultPrompt,
	}
}

// Apply overrides the base config values with values from another
// configuration.
func (c *Config) Apply(overlay Config) {
	if overlay.MaxParseDepth > 0 {
		c.MaxParseDepth = overlay.MaxParseDepth
	}

	if overlay.DollarPrefix != "" {
		c.DollarPrefix = overlay.DollarPrefix
	}

	if overlay.LogLevel != "" {
		c.LogLevel = overlay.LogLevel
	}

	if overlay.Prompt != "" {
		c.Prompt = overlay.Prompt
	}
}
