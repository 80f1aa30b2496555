package serror

import "fmt"

// StepError is raised in panics for invariants that should be impossible to
// break through normal use of the library.
type StepError struct {
	Err string
}

func New(err string, args ...interface{}) *StepError {
	return &StepError{Err: fmt.Sprintf(err, args...)}
}

func (e *StepError) Error() string {
	return e.Err
}
