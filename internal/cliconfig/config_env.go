package cliconfig

import (
	"os"
	"strings"
)

// ApplyEnvConfig applies configuration from environment variables (NORMBRIDGE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("NORMBRIDGE_INPUT"), &cfg.InputFile)
	s.setString("output", os.Getenv("NORMBRIDGE_OUTPUT"), &cfg.OutputFile)
	s.setString("work-dir", os.Getenv("NORMBRIDGE_WORK_DIR"), &cfg.WorkDir)
	s.setString("solver", os.Getenv("NORMBRIDGE_SOLVER"), &cfg.SolverPath)
	s.setStrings("solver-arg", strings.Fields(os.Getenv("NORMBRIDGE_SOLVER_ARGS")), &cfg.SolverArgs)
	s.setString("log-level", os.Getenv("NORMBRIDGE_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("debounce", os.Getenv("NORMBRIDGE_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("keep-artifacts", os.Getenv("NORMBRIDGE_KEEP_ARTIFACTS"), &cfg.KeepArtifacts)
	s.setBoolFromString("keep-descriptor", os.Getenv("NORMBRIDGE_KEEP_DESCRIPTOR"), &cfg.KeepDescriptor)
	s.setBoolFromString("watch", os.Getenv("NORMBRIDGE_WATCH"), &cfg.Watch)

	return nil
}
