// Package view maps backend wire shapes onto the stable view-facing models
// the presentation layer renders. Every function here is pure and total
// over the documented nullable fields: an absent metric normalizes to the
// "—" sentinel, never to a fabricated zero.
package view

import (
	"strconv"
	"time"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// Sentinel is displayed in place of a metric that was not recorded
const Sentinel = "—"

// VitalRow is one per-metric display row flattened out of a VitalReading
type VitalRow struct {
	Type      string
	Label     string
	Value     string
	Unit      string
	Timestamp time.Time
}

// Display renders the row's value with its unit, or the bare sentinel
// when the metric was not recorded.
func (r VitalRow) Display() string {
	if r.Value == Sentinel {
		return Sentinel
	}
	if r.Unit == "" {
		return r.Value
	}
	return r.Value + " " + r.Unit
}

// vitalMetrics fixes the order and labeling of the per-metric rows
var vitalMetrics = []struct {
	typ   string
	label string
	unit  string
	get   func(*model.VitalReading) *model.MetricValue
}{
	{"heart_rate", "Heart Rate", "bpm", func(v *model.VitalReading) *model.MetricValue { return v.HeartRate }},
	{"systolic_bp", "Systolic BP", "mmHg", func(v *model.VitalReading) *model.MetricValue { return v.SystolicBP }},
	{"diastolic_bp", "Diastolic BP", "mmHg", func(v *model.VitalReading) *model.MetricValue { return v.DiastolicBP }},
	{"glucose_level", "Blood Glucose", "mg/dL", func(v *model.VitalReading) *model.MetricValue { return v.GlucoseLevel }},
	{"spo2", "SpO₂", "%", func(v *model.VitalReading) *model.MetricValue { return v.SpO2 }},
	{"weight_kg", "Weight", "kg", func(v *model.VitalReading) *model.MetricValue { return v.WeightKg }},
	{"steps", "Steps", "", func(v *model.VitalReading) *model.MetricValue { return v.Steps }},
	{"sleep_hours", "Sleep", "hrs", func(v *model.VitalReading) *model.MetricValue { return v.SleepHours }},
	{"temperature_c", "Temperature", "°C", func(v *model.VitalReading) *model.MetricValue { return v.TemperatureC }},
}

// VitalRows flattens a reading into one display row per metric, in a fixed
// order. Metrics the reading does not carry get the sentinel value.
func VitalRows(reading *model.VitalReading) []VitalRow {
	if reading == nil {
		return nil
	}

	rows := make([]VitalRow, 0, len(vitalMetrics))
	for _, m := range vitalMetrics {
		row := VitalRow{
			Type:      m.typ,
			Label:     m.label,
			Value:     Sentinel,
			Unit:      m.unit,
			Timestamp: reading.RecordedAt,
		}
		if value := m.get(reading); value != nil {
			row.Value = formatMetric(float64(*value))
		}
		rows = append(rows, row)
	}
	return rows
}

// formatMetric renders a metric without trailing zeros (72.0 -> "72")
func formatMetric(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
