package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Input          string   `toml:"input"`
	Output         string   `toml:"output"`
	WorkDir        string   `toml:"work_dir"`
	Solver         string   `toml:"solver"`
	SolverArgs     []string `toml:"solver_args"`
	LogLevel       string   `toml:"log_level"`
	KeepArtifacts  *bool    `toml:"keep_artifacts"`
	KeepDescriptor *bool    `toml:"keep_descriptor"`
	Watch          *bool    `toml:"watch"`
	Debounce       string   `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.normbridge/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".normbridge", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", fc.Input, &cfg.InputFile)
	s.setString("output", fc.Output, &cfg.OutputFile)
	s.setString("work-dir", fc.WorkDir, &cfg.WorkDir)
	s.setString("solver", fc.Solver, &cfg.SolverPath)
	s.setStrings("solver-arg", fc.SolverArgs, &cfg.SolverArgs)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setBool("keep-artifacts", fc.KeepArtifacts, &cfg.KeepArtifacts)
	s.setBool("keep-descriptor", fc.KeepDescriptor, &cfg.KeepDescriptor)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
