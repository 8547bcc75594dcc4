package ports

import "context"

// Solver runs the external solver against an input file.
type Solver interface {
	// Solve runs the solver synchronously on inputName, resolved relative
	// to dir, and blocks until the process exits. The solver is expected
	// to leave its report next to the input as <stem>.out.
	//
	// A non-zero exit status is returned as *domain.SolverError.
	Solve(ctx context.Context, dir, inputName string) error
}
