package workout

import (
	"fmt"
	"math"
	"sort"

	"github.com/fittracker/fittracker/pkg/types"
)

// Type codes accepted by Create.
const (
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
	CodeSwimming = "SWM"
)

// Type describes one registered workout type.
type Type struct {
	Code   string
	Kind   types.Kind
	Params []string // positional parameter names, in order
}

type factory struct {
	Type
	build func(p []float64) (Calculator, error)
}

var factories = map[string]factory{
	CodeRunning: {
		Type: Type{Code: CodeRunning, Kind: types.KindRunning, Params: []string{"action", "duration", "weight"}},
		build: func(p []float64) (Calculator, error) {
			action, err := wholeNumber("action", p[0])
			if err != nil {
				return nil, err
			}
			r, err := NewRunning(action, p[1], p[2])
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	},
	CodeWalking: {
		Type: Type{Code: CodeWalking, Kind: types.KindWalking, Params: []string{"action", "duration", "weight", "height"}},
		build: func(p []float64) (Calculator, error) {
			action, err := wholeNumber("action", p[0])
			if err != nil {
				return nil, err
			}
			w, err := NewWalking(action, p[1], p[2], p[3])
			if err != nil {
				return nil, err
			}
			return w, nil
		},
	},
	CodeSwimming: {
		Type: Type{Code: CodeSwimming, Kind: types.KindSwimming, Params: []string{"action", "duration", "weight", "pool_length", "pool_laps"}},
		build: func(p []float64) (Calculator, error) {
			action, err := wholeNumber("action", p[0])
			if err != nil {
				return nil, err
			}
			laps, err := wholeNumber("pool_laps", p[4])
			if err != nil {
				return nil, err
			}
			s, err := NewSwimming(action, p[1], p[2], p[3], laps)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
	},
}

// Create builds the Calculator registered under code from the positional
// parameter list params. See Types for the parameter order of each code.
//
// Errors: ErrUnknownWorkoutType for an unregistered code, a *ParamCountError
// (matching ErrInvalidParameterCount) when len(params) is wrong,
// ErrInvalidParameter or ErrInvalidDuration for out-of-range values.
func Create(code string, params []float64) (Calculator, error) {
	f, ok := factories[code]
	if !ok {
		return nil, fmt.Errorf("workout: %w %q", ErrUnknownWorkoutType, code)
	}
	if len(params) != len(f.Params) {
		return nil, &ParamCountError{Code: code, Want: len(f.Params), Got: len(params)}
	}
	for i, v := range params {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("workout: %s: %w: %s is not finite", code, ErrInvalidParameter, f.Params[i])
		}
	}
	return f.build(params)
}

// Types returns every registered workout type, sorted by code.
func Types() []Type {
	out := make([]Type, 0, len(factories))
	for _, f := range factories {
		t := f.Type
		t.Params = append([]string(nil), f.Params...)
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Codes returns the registered type codes, sorted.
func Codes() []string {
	all := Types()
	codes := make([]string, len(all))
	for i, t := range all {
		codes[i] = t.Code
	}
	return codes
}

// Arity returns the number of parameters Create expects for code.
func Arity(code string) (int, bool) {
	f, ok := factories[code]
	if !ok {
		return 0, false
	}
	return len(f.Params), true
}

// wholeNumber converts v to an int, rejecting fractional values.
func wholeNumber(name string, v float64) (int, error) {
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("workout: %w: %s must be a whole number, got %v", ErrInvalidParameter, name, v)
	}
	return int(v), nil
}
