package workout

import (
	"fmt"
	"math"

	"github.com/fittracker/fittracker/pkg/types"
)

// Unit conversions shared by every variant.
const (
	mInKm  = 1000
	minInH = 60
)

// stepLength is the distance covered by one step, in metres.
const stepLength = 0.65

// Calculator is the contract every workout variant fulfils.
type Calculator interface {
	// Kind identifies the variant in reports.
	Kind() types.Kind

	// Hours is the workout duration in hours.
	Hours() float64

	// Distance is the distance covered, in km.
	Distance() float64

	// MeanSpeed is the average speed in km/h.
	// Fails with ErrInvalidDuration when the duration is not positive.
	MeanSpeed() (float64, error)

	// Calories is the energy spent, in kcal.
	Calories() (float64, error)
}

// Training holds the readings common to all workouts and provides the
// default distance and mean-speed formulas. Variants embed it.
type Training struct {
	// Action is the number of steps (or strokes, for swimming).
	Action int

	// Duration is the workout length in hours. Must be positive.
	Duration float64

	// Weight is the athlete's weight in kg.
	Weight float64
}

// NewTraining validates the shared readings and returns a Training.
func NewTraining(action int, duration, weight float64) (Training, error) {
	if action < 0 {
		return Training{}, fmt.Errorf("%w: action must not be negative, got %d", ErrInvalidParameter, action)
	}
	if err := checkDuration(duration); err != nil {
		return Training{}, err
	}
	if err := checkPositive("weight", weight); err != nil {
		return Training{}, err
	}
	return Training{Action: action, Duration: duration, Weight: weight}, nil
}

func (t Training) Kind() types.Kind { return types.KindTraining }

func (t Training) Hours() float64 { return t.Duration }

func (t Training) Distance() float64 {
	return distance(t.Action, stepLength)
}

func (t Training) MeanSpeed() (float64, error) {
	if err := checkDuration(t.Duration); err != nil {
		return 0, err
	}
	return t.Distance() / t.Duration, nil
}

// Calories has no generic formula; every variant supplies its own.
func (t Training) Calories() (float64, error) {
	return 0, fmt.Errorf("workout: calories for %s: %w", t.Kind(), ErrUnimplemented)
}

// Summarize evaluates c and returns its summary. No partial summary is
// returned on error.
func Summarize(c Calculator) (types.Summary, error) {
	speed, err := c.MeanSpeed()
	if err != nil {
		return types.Summary{}, fmt.Errorf("workout: %s mean speed: %w", c.Kind(), err)
	}
	calories, err := c.Calories()
	if err != nil {
		return types.Summary{}, err
	}

	s := types.Summary{
		Kind:          c.Kind(),
		DurationHours: c.Hours(),
		DistanceKm:    c.Distance(),
		MeanSpeedKmH:  speed,
		CaloriesKcal:  calories,
	}
	for _, v := range []float64{s.DurationHours, s.DistanceKm, s.MeanSpeedKmH, s.CaloriesKcal} {
		if !finite(v) {
			return types.Summary{}, fmt.Errorf("workout: %s: %w: non-finite result", c.Kind(), ErrInvalidParameter)
		}
	}
	return s, nil
}

// distance converts an action count to km for the given step length in metres.
func distance(action int, step float64) float64 {
	return float64(action) * step / mInKm
}

func checkDuration(hours float64) error {
	if !(hours > 0) || math.IsInf(hours, 0) {
		return fmt.Errorf("%w: duration must be a positive number of hours, got %v", ErrInvalidDuration, hours)
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParameter, name, v)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
