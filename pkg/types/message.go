package types

import "fmt"

// Message renders s as the one-line human-readable report. Field order and
// the three-decimal fixed formatting are part of the output contract.
func (s Summary) Message() string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		s.Kind, s.DurationHours, s.DistanceKm, s.MeanSpeedKmH, s.CaloriesKcal)
}
