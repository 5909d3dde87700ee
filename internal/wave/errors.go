package wave

import (
	"errors"
	"fmt"
)

// Stage names the phase of a run in which a failure happened.
type Stage string

const (
	StageInit     Stage = "init"
	StageDispatch Stage = "dispatch"
	StageReadback Stage = "readback"
)

// ErrFailed is returned by a Simulation after an earlier failure. The field
// state is no longer meaningful.
var ErrFailed = errors.New("simulation failed")

// ErrComplete is returned by Step once Params.Steps timesteps have run.
var ErrComplete = errors.New("simulation complete")

// StageError is a backend failure tagged with the stage and, for
// dispatches, the timestep.
type StageError struct {
	Stage Stage
	Step  int
	Err   error
}

func (e *StageError) Error() string {
	if e.Stage == StageDispatch {
		return fmt.Sprintf("%s step %d: %v", e.Stage, e.Step, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
