package app

import (
	"context"
	"time"

	"github.com/bft-labs/normbridge/internal/adapters/fs"
	"github.com/bft-labs/normbridge/internal/descriptor"
	"github.com/bft-labs/normbridge/internal/domain"
	"github.com/bft-labs/normbridge/internal/m2"
	"github.com/bft-labs/normbridge/internal/normaliz"
	"github.com/bft-labs/normbridge/internal/ports"
	"github.com/bft-labs/normbridge/pkg/log"
)

// PipelineConfig contains configuration for one bridge run.
type PipelineConfig struct {
	// InputPath is the descriptor file. Its stem names every solver artifact.
	InputPath string

	// OutputPath receives the Macaulay2 list.
	OutputPath string

	// WorkDir is where the solver input is written and the solver runs.
	WorkDir string

	// KeepArtifacts skips removal of <stem>.in, .out and friends.
	KeepArtifacts bool

	// KeepDescriptor leaves the descriptor in place after reading it.
	KeepDescriptor bool
}

// Result summarises a successful run.
type Result struct {
	Descriptor domain.Descriptor
	Basis      domain.BasisSet
	Elapsed    time.Duration
}

// Runner executes a pipeline once.
type Runner interface {
	Run(ctx context.Context) (Result, error)
}

// Pipeline runs descriptor → solver input → solver → report → result,
// strictly in that order. It alone decides to halt: the first failing
// stage ends the run with a *StageError.
type Pipeline struct {
	config PipelineConfig
	reader *descriptor.Reader
	solver ports.Solver
	logger ports.Logger
}

// NewPipeline creates a pipeline with the given dependencies.
func NewPipeline(config PipelineConfig, solver ports.Solver, logger ports.Logger) *Pipeline {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if config.WorkDir == "" {
		config.WorkDir = "."
	}
	return &Pipeline{
		config: config,
		reader: descriptor.New(logger, descriptor.WithKeepSource(config.KeepDescriptor)),
		solver: solver,
		logger: logger,
	}
}

// Artifacts returns the solver files belonging to this pipeline's stem.
func (p *Pipeline) Artifacts() fs.Artifacts {
	return fs.Artifacts{
		Dir:  p.config.WorkDir,
		Stem: fs.Stem(p.config.InputPath),
		Exts: normaliz.ArtifactExts,
	}
}

// Run executes every stage once. Solver artifacts are removed on the way
// out whether or not a stage failed, unless KeepArtifacts is set.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	artifacts := p.Artifacts()
	if !p.config.KeepArtifacts {
		defer artifacts.Remove(p.logger)
	}

	d, err := p.reader.Read(p.config.InputPath)
	if err != nil {
		return Result{}, stageErr(StageDescriptor, err)
	}
	p.logger.Debug("descriptor parsed",
		log.Int("dimension", d.Sequence.Len()),
		log.Int("bound", int(d.Bound)),
	)

	inputPath := artifacts.Path(normaliz.InputExt)
	if err := normaliz.WriteInput(inputPath, d); err != nil {
		return Result{}, stageErr(StageSolverInput, err)
	}

	if err := p.solver.Solve(ctx, p.config.WorkDir, artifacts.Stem+normaliz.InputExt); err != nil {
		return Result{}, stageErr(StageSolver, err)
	}

	basis, err := normaliz.ReadReport(artifacts.Path(normaliz.ReportExt))
	if err != nil {
		return Result{}, stageErr(StageReport, err)
	}
	if basis.Empty() {
		p.logger.Warn("report has no Hilbert basis section or no usable rows",
			log.String("report", artifacts.Path(normaliz.ReportExt)))
	}

	if err := m2.WriteFile(p.config.OutputPath, basis); err != nil {
		return Result{}, stageErr(StageResult, err)
	}

	res := Result{Descriptor: d, Basis: basis, Elapsed: time.Since(start)}
	p.logger.Info("bridge run complete",
		log.String("output", p.config.OutputPath),
		log.Int("vectors", basis.Len()),
		log.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

var _ Runner = (*Pipeline)(nil)
