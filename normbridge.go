// Package normbridge bridges Macaulay2 and the Normaliz solver.
//
// It reads a {{i1,...,ik},n} descriptor, writes the matching Normaliz
// input, runs Normaliz, and writes the Hilbert basis of the recession
// monoid back as a Macaulay2 list.
//
// Example usage:
//
//	cfg := normbridge.DefaultConfig()
//	cfg.WorkDir = "/path/to/session"
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := normbridge.Run(context.Background(), cfg, nil); err != nil {
//	    log.Fatal(err)
//	}
package normbridge

import (
	"context"

	"github.com/bft-labs/normbridge/internal/adapters/process"
	"github.com/bft-labs/normbridge/internal/app"
	"github.com/bft-labs/normbridge/internal/cliconfig"
	"github.com/bft-labs/normbridge/pkg/log"
)

// Config holds the configuration for a bridge run.
// Use DefaultConfig() to get a Config with the fixed file names.
type Config = cliconfig.Config

// DefaultConfig returns a Config reading input.txt, writing output.m2 and
// running normaliz from PATH in the current directory.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Run executes the bridge once. A nil logger discards log output.
func Run(ctx context.Context, cfg Config, logger log.Logger) error {
	_, err := newPipeline(cfg, logger).Run(ctx)
	return err
}

// Watch runs the bridge each time a new descriptor appears at the input
// path. It blocks until ctx is cancelled.
func Watch(ctx context.Context, cfg Config, logger log.Logger) error {
	return app.NewWatcher(newPipeline(cfg, logger), cfg.InputPath(), cfg.Debounce, logger).Run(ctx)
}

func newPipeline(cfg Config, logger log.Logger) *app.Pipeline {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	solver := process.NewSolver(cfg.SolverPath, cfg.SolverArgs, logger)
	return app.NewPipeline(app.PipelineConfig{
		InputPath:      cfg.InputPath(),
		OutputPath:     cfg.OutputPath(),
		WorkDir:        cfg.WorkDir,
		KeepArtifacts:  cfg.KeepArtifacts,
		KeepDescriptor: cfg.KeepDescriptor,
	}, solver, logger)
}
