package setup

import (
	"errors"
	"fmt"
)

var (
	ErrPythonTooOld        = errors.New("python version too old")
	ErrRequirementsMissing = errors.New("requirements file not found")
	ErrModelMissing        = errors.New("model file not found")
	ErrModelDeclined       = errors.New("setup aborted: model file missing")
)

// ExitError carries a process exit code. The user-facing message has already
// been printed by the reporter when it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func exitWith(code int, err error) error { return &ExitError{Code: code, Err: err} }

// exitInterrupted is the conventional status for a run stopped by SIGINT.
const exitInterrupted = 130
