package types

// Kind names a workout variant. The string value is what the text report
// prints after "Тип тренировки:".
type Kind string

const (
	KindTraining Kind = "Training"
	KindRunning  Kind = "Running"
	KindWalking  Kind = "SportsWalking"
	KindSwimming Kind = "Swimming"
)

// Summary is the computed result for one workout.
// It is a plain value; nothing mutates it after construction.
type Summary struct {
	Kind          Kind
	DurationHours float64
	DistanceKm    float64
	MeanSpeedKmH  float64
	CaloriesKcal  float64
}
