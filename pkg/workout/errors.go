package workout

import (
	"errors"
	"fmt"
)

// Errors returned by the dispatcher and the calculators. Callers branch on
// them with errors.Is; the returned errors carry additional context.
var (
	ErrUnknownWorkoutType    = errors.New("unknown workout type")
	ErrInvalidParameterCount = errors.New("invalid parameter count")
	ErrInvalidParameter      = errors.New("invalid parameter")
	ErrInvalidDuration       = errors.New("invalid duration")
	ErrUnimplemented         = errors.New("unimplemented operation")
)

// ParamCountError reports a parameter list whose length does not match the
// arity of the requested workout type. It matches ErrInvalidParameterCount.
type ParamCountError struct {
	Code string
	Want int
	Got  int
}

func (e *ParamCountError) Error() string {
	return fmt.Sprintf("workout: %s expects %d parameters, got %d", e.Code, e.Want, e.Got)
}

func (e *ParamCountError) Unwrap() error {
	return ErrInvalidParameterCount
}
