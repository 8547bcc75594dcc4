package domain

import (
	"errors"
	"strconv"
)

// Domain errors represent the failure kinds of a pipeline run.
// Stages wrap them with context; callers check them with errors.Is.
var (
	// ErrMalformedDescriptor is returned when the descriptor line does not
	// have the {{...},n} shape or carries no usable integers.
	ErrMalformedDescriptor = errors.New("normbridge: malformed descriptor")

	// ErrInvalidToken is returned when a list element or the scalar cannot
	// be parsed as an integer after cleanup.
	ErrInvalidToken = errors.New("normbridge: invalid integer token")

	// ErrEmptyToken marks a list element that was empty after cleanup.
	// It is only ever logged; the token is skipped.
	ErrEmptyToken = errors.New("normbridge: empty token")

	// ErrFileOpen is returned when the descriptor or the solver report
	// cannot be opened or read.
	ErrFileOpen = errors.New("normbridge: cannot open file")

	// ErrSolverExecution is returned when the solver subprocess fails to
	// start or exits with a non-zero status.
	ErrSolverExecution = errors.New("normbridge: solver execution failed")
)

// SolverError describes a failed solver run.
type SolverError struct {
	// Command is the argv that was executed.
	Command []string

	// ExitCode is the process exit status, or -1 if it never started.
	ExitCode int

	// Stderr holds the tail of the solver's diagnostic output.
	Stderr string

	// Err is the underlying error from the process API.
	Err error
}

func (e *SolverError) Error() string {
	msg := ErrSolverExecution.Error()
	if len(e.Command) > 0 {
		msg += ": " + e.Command[0]
	}
	if e.ExitCode >= 0 {
		msg += ": exit status " + strconv.Itoa(e.ExitCode)
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap lets errors.Is match both ErrSolverExecution and the cause.
func (e *SolverError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSolverExecution}
	}
	return []error{ErrSolverExecution, e.Err}
}
