package report

import (
	"fmt"
	"io"
	"strconv"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/fittracker/fittracker/pkg/types"
	"github.com/fittracker/fittracker/tracker/internal/batch"
)

// Exposition metric names.
const (
	metricDuration  = "fittracker_workout_duration_hours"
	metricDistance  = "fittracker_workout_distance_km"
	metricSpeed     = "fittracker_workout_mean_speed_kmh"
	metricCalories  = "fittracker_workout_calories_kcal"
	metricFailures  = "fittracker_batch_failed_packages"
	metricProcessed = "fittracker_batch_packages"
)

type summaryGauge struct {
	name  string
	help  string
	value func(types.Summary) float64
}

var summaryGauges = []summaryGauge{
	{metricDuration, "Workout duration in hours.", func(s types.Summary) float64 { return s.DurationHours }},
	{metricDistance, "Distance covered in km.", func(s types.Summary) float64 { return s.DistanceKm }},
	{metricSpeed, "Mean speed in km/h.", func(s types.Summary) float64 { return s.MeanSpeedKmH }},
	{metricCalories, "Calories burned in kcal.", func(s types.Summary) float64 { return s.CaloriesKcal }},
}

type promFormatter struct{}

func (promFormatter) Format(w io.Writer, results []batch.Result) error {
	for _, mf := range buildFamilies(results) {
		// The encoder rejects families without samples.
		if len(mf.Metric) == 0 {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("report: write exposition: %w", err)
		}
	}
	return nil
}

// buildFamilies converts results into gauge families. Each successful package
// becomes one sample per family, labelled by batch index, package name and
// workout kind. Names are free-form, so index keeps every series unique.
func buildFamilies(results []batch.Result) []*dto.MetricFamily {
	families := make([]*dto.MetricFamily, 0, len(summaryGauges)+2)
	for _, g := range summaryGauges {
		mf := gaugeFamily(g.name, g.help)
		for _, r := range results {
			if !r.OK() {
				continue
			}
			mf.Metric = append(mf.Metric, gauge(g.value(r.Summary),
				"index", strconv.Itoa(r.Index),
				"name", r.Name,
				"kind", string(r.Summary.Kind),
			))
		}
		families = append(families, mf)
	}

	processed := gaugeFamily(metricProcessed, "Packages in the last batch.")
	processed.Metric = append(processed.Metric, gauge(float64(len(results))))
	failed := gaugeFamily(metricFailures, "Packages in the last batch that produced no summary.")
	failed.Metric = append(failed.Metric, gauge(float64(batch.Failed(results))))

	return append(families, processed, failed)
}

func gaugeFamily(name, help string) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: dto.MetricType_GAUGE.Enum(),
	}
}

// gauge builds one gauge sample. labels alternate name, value.
func gauge(v float64, labels ...string) *dto.Metric {
	m := &dto.Metric{Gauge: &dto.Gauge{Value: proto.Float64(v)}}
	for i := 0; i+1 < len(labels); i += 2 {
		m.Label = append(m.Label, &dto.LabelPair{
			Name:  proto.String(labels[i]),
			Value: proto.String(labels[i+1]),
		})
	}
	return m
}
