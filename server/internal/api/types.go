package api

import "github.com/fittracker/fittracker/pkg/types"

// SummaryRequest is the body of POST /api/v1/summary.
type SummaryRequest struct {
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

// SummaryResponse is the JSON representation of a computed workout summary.
// It is also the payload of every stream event.
type SummaryResponse struct {
	Kind         string  `json:"kind"`
	DurationH    float64 `json:"duration_h"`
	DistanceKm   float64 `json:"distance_km"`
	MeanSpeedKmH float64 `json:"mean_speed_kmh"`
	CaloriesKcal float64 `json:"calories_kcal"`
	Message      string  `json:"message"`
}

// WorkoutTypeResponse describes one registered workout type.
type WorkoutTypeResponse struct {
	Code   string   `json:"code"`
	Kind   string   `json:"kind"`
	Params []string `json:"params"`
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// errorResponse is the standard error body.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// NewSummaryResponse maps a Summary to its JSON representation.
func NewSummaryResponse(s types.Summary) SummaryResponse {
	return SummaryResponse{
		Kind:         string(s.Kind),
		DurationH:    s.DurationHours,
		DistanceKm:   s.DistanceKm,
		MeanSpeedKmH: s.MeanSpeedKmH,
		CaloriesKcal: s.CaloriesKcal,
		Message:      s.Message(),
	}
}
