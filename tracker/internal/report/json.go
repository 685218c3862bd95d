package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fittracker/fittracker/tracker/internal/batch"
)

// jsonResult is one element of the JSON report. Summary fields are omitted
// for failed packages; Error is omitted for successful ones.
type jsonResult struct {
	Index        int      `json:"index"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Kind         string   `json:"kind,omitempty"`
	DurationH    *float64 `json:"duration_h,omitempty"`
	DistanceKm   *float64 `json:"distance_km,omitempty"`
	MeanSpeedKmH *float64 `json:"mean_speed_kmh,omitempty"`
	CaloriesKcal *float64 `json:"calories_kcal,omitempty"`
	Message      string   `json:"message,omitempty"`
	Error        string   `json:"error,omitempty"`
}

type jsonFormatter struct{}

func (jsonFormatter) Format(w io.Writer, results []batch.Result) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{Index: r.Index, Name: r.Name, Type: r.Code}
		if r.OK() {
			s := r.Summary
			jr.Kind = string(s.Kind)
			jr.DurationH = &s.DurationHours
			jr.DistanceKm = &s.DistanceKm
			jr.MeanSpeedKmH = &s.MeanSpeedKmH
			jr.CaloriesKcal = &s.CaloriesKcal
			jr.Message = s.Message()
		} else {
			jr.Error = r.Err.Error()
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}
