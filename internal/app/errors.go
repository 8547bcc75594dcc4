package app

// Stage names a pipeline step in errors and logs.
type Stage string

const (
	StageDescriptor  Stage = "descriptor"
	StageSolverInput Stage = "solver-input"
	StageSolver      Stage = "solver"
	StageReport      Stage = "report"
	StageResult      Stage = "result"
)

// StageError records which stage halted a run.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return "stage " + string(e.Stage) + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
