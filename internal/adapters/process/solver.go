// Package process runs the external solver as a subprocess.
package process

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/bft-labs/normbridge/internal/domain"
	"github.com/bft-labs/normbridge/internal/ports"
	"github.com/bft-labs/normbridge/pkg/log"
)

// DefaultSolverPath is the solver binary looked up on PATH.
const DefaultSolverPath = "normaliz"

// maxStderrBytes bounds the stderr excerpt kept on SolverError.
const maxStderrBytes = 4 << 10

// Solver implements ports.Solver by running a binary.
type Solver struct {
	path   string
	args   []string
	logger ports.Logger
}

// NewSolver creates a Solver that runs path with args followed by the input
// file name. An empty path selects DefaultSolverPath.
func NewSolver(path string, args []string, logger ports.Logger) *Solver {
	if path == "" {
		path = DefaultSolverPath
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Solver{
		path:   path,
		args:   append([]string(nil), args...),
		logger: logger,
	}
}

// Solve runs the solver in dir and waits for it to exit. There is no
// timeout; only ctx cancellation stops a running solver.
func (s *Solver) Solve(ctx context.Context, dir, inputName string) error {
	argv := append(append([]string{s.path}, s.args...), inputName)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	s.logger.Debug("solver: starting", log.Strings("argv", argv), log.String("dir", dir))
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err == nil {
		s.logger.Info("solver: finished", log.Duration("elapsed", elapsed))
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	s.logger.Error("solver: failed",
		log.Int("exit_code", exitCode),
		log.Duration("elapsed", elapsed),
		log.Err(err),
	)
	return &domain.SolverError{
		Command:  argv,
		ExitCode: exitCode,
		Stderr:   tail(stderr.String(), maxStderrBytes),
		Err:      err,
	}
}

// tail returns at most n trailing bytes of s, trimmed of whitespace.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return s
}

var _ ports.Solver = (*Solver)(nil)
