package workout

import (
	"fmt"

	"github.com/fittracker/fittracker/pkg/types"
)

// Running calorie coefficients.
const (
	runSpeedMultiplier = 18
	runSpeedShift      = 1.79
)

// Walking calorie coefficients and unit conversions.
const (
	walkWeightMultiplier      = 0.035
	walkSpeedHeightMultiplier = 0.029
	kmhInMs                   = 0.278
	cmInM                     = 100
)

// Swimming calorie coefficients. swimStrokeLength is the distance covered by
// one stroke, in metres.
const (
	swimStrokeLength     = 1.38
	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2
)

// Running is a running workout (code RUN).
type Running struct {
	Training
}

// NewRunning returns a Running workout built from validated readings.
func NewRunning(action int, duration, weight float64) (Running, error) {
	t, err := NewTraining(action, duration, weight)
	if err != nil {
		return Running{}, fmt.Errorf("workout: new running: %w", err)
	}
	return Running{Training: t}, nil
}

func (r Running) Kind() types.Kind { return types.KindRunning }

func (r Running) Calories() (float64, error) {
	speed, err := r.MeanSpeed()
	if err != nil {
		return 0, fmt.Errorf("workout: running calories: %w", err)
	}
	return (runSpeedMultiplier*speed + runSpeedShift) * r.Weight / mInKm * r.Duration * minInH, nil
}

// Walking is a sports walking workout (code WLK).
type Walking struct {
	Training

	// Height is the athlete's height in cm.
	Height float64
}

// NewWalking returns a Walking workout built from validated readings.
func NewWalking(action int, duration, weight, height float64) (Walking, error) {
	t, err := NewTraining(action, duration, weight)
	if err != nil {
		return Walking{}, fmt.Errorf("workout: new walking: %w", err)
	}
	if err := checkPositive("height", height); err != nil {
		return Walking{}, fmt.Errorf("workout: new walking: %w", err)
	}
	return Walking{Training: t, Height: height}, nil
}

func (w Walking) Kind() types.Kind { return types.KindWalking }

func (w Walking) Calories() (float64, error) {
	speed, err := w.MeanSpeed()
	if err != nil {
		return 0, fmt.Errorf("workout: walking calories: %w", err)
	}
	if err := checkPositive("height", w.Height); err != nil {
		return 0, fmt.Errorf("workout: walking calories: %w", err)
	}
	speedMs := speed * kmhInMs
	heightM := w.Height / cmInM
	minutes := w.Duration * minInH
	return (walkWeightMultiplier*w.Weight +
		(speedMs*speedMs/heightM)*walkSpeedHeightMultiplier*w.Weight) * minutes, nil
}

// Swimming is a pool swimming workout (code SWM). Action counts strokes.
type Swimming struct {
	Training

	// PoolLength is the length of the pool in metres.
	PoolLength float64

	// PoolLaps is how many times the pool was swum.
	PoolLaps int
}

// NewSwimming returns a Swimming workout built from validated readings.
func NewSwimming(action int, duration, weight, poolLength float64, poolLaps int) (Swimming, error) {
	t, err := NewTraining(action, duration, weight)
	if err != nil {
		return Swimming{}, fmt.Errorf("workout: new swimming: %w", err)
	}
	if err := checkPositive("pool length", poolLength); err != nil {
		return Swimming{}, fmt.Errorf("workout: new swimming: %w", err)
	}
	if poolLaps <= 0 {
		return Swimming{}, fmt.Errorf("workout: new swimming: %w: pool laps must be positive, got %d", ErrInvalidParameter, poolLaps)
	}
	return Swimming{Training: t, PoolLength: poolLength, PoolLaps: poolLaps}, nil
}

func (s Swimming) Kind() types.Kind { return types.KindSwimming }

func (s Swimming) Distance() float64 {
	return distance(s.Action, swimStrokeLength)
}

// MeanSpeed is derived from pool geometry rather than the stroke count.
func (s Swimming) MeanSpeed() (float64, error) {
	if err := checkDuration(s.Duration); err != nil {
		return 0, err
	}
	return s.PoolLength * float64(s.PoolLaps) / mInKm / s.Duration, nil
}

func (s Swimming) Calories() (float64, error) {
	speed, err := s.MeanSpeed()
	if err != nil {
		return 0, fmt.Errorf("workout: swimming calories: %w", err)
	}
	return (speed + swimSpeedShift) * swimWeightMultiplier * s.Weight * s.Duration, nil
}

// Compile-time checks that every variant satisfies Calculator.
var (
	_ Calculator = Training{}
	_ Calculator = Running{}
	_ Calculator = Walking{}
	_ Calculator = Swimming{}
)
