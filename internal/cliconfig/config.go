package cliconfig

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bft-labs/normbridge/pkg/log"
)

// Fixed names used when nothing overrides them.
const (
	DefaultInputFile  = "input.txt"
	DefaultOutputFile = "output.m2"
	DefaultSolverPath = "normaliz"
)

// Config holds CLI configuration for normbridge.
type Config struct {
	InputFile  string
	OutputFile string
	WorkDir    string

	SolverPath string
	SolverArgs []string

	LogLevel string

	KeepArtifacts  bool
	KeepDescriptor bool

	Watch    bool
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		InputFile:  DefaultInputFile,
		OutputFile: DefaultOutputFile,
		WorkDir:    ".",
		SolverPath: DefaultSolverPath,
		LogLevel:   "info",
		Debounce:   100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputFile) == "" {
		return fmt.Errorf("input is required")
	}
	// Solver files are named <stem>.in, <stem>.out and so on.
	if name := filepath.Base(c.InputFile); strings.TrimSuffix(name, filepath.Ext(name)) == "" {
		return fmt.Errorf("input %q has an empty file stem", c.InputFile)
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return fmt.Errorf("output is required")
	}
	if strings.TrimSpace(c.SolverPath) == "" {
		return fmt.Errorf("solver is required")
	}

	if c.WorkDir == "" {
		c.WorkDir = "."
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}

	return nil
}

// InputPath returns the descriptor path resolved against WorkDir.
func (c Config) InputPath() string {
	return c.resolve(c.InputFile)
}

// OutputPath returns the result path resolved against WorkDir.
func (c Config) OutputPath() string {
	return c.resolve(c.OutputFile)
}

func (c Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.WorkDir == "" {
		return p
	}
	return filepath.Join(c.WorkDir, p)
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a string slice if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
