// ABOUTME: HealthMetric model and MetricKind enum for standalone health metrics.
// ABOUTME: Defines per-kind plausibility ranges used by validation.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MetricKind represents the kind of standalone health metric being recorded.
type MetricKind string

const (
	MetricWeight        MetricKind = "weight"
	MetricBloodSugar    MetricKind = "blood_sugar"
	MetricHeartRate     MetricKind = "heart_rate"
	MetricBloodPressure MetricKind = "blood_pressure"
)

// MetricRange is the physiologically plausible range for a metric kind.
type MetricRange struct {
	Min float64
	Max float64
}

// MetricRanges maps metric kinds to their plausible value ranges.
var MetricRanges = map[MetricKind]MetricRange{
	MetricWeight:        {Min: 50, Max: 500},
	MetricBloodSugar:    {Min: 20, Max: 600},
	MetricHeartRate:     {Min: 30, Max: 200},
	MetricBloodPressure: {Min: 50, Max: 300},
}

// MetricUnits maps metric kinds to their display units.
var MetricUnits = map[MetricKind]string{
	MetricWeight:        "lbs",
	MetricBloodSugar:    "mg/dL",
	MetricHeartRate:     "bpm",
	MetricBloodPressure: "mmHg",
}

// AllMetricKinds returns all valid metric kinds.
var AllMetricKinds = []MetricKind{
	MetricWeight, MetricBloodSugar, MetricHeartRate, MetricBloodPressure,
}

// IsValidMetricKind checks if a string is a valid metric kind.
func IsValidMetricKind(s string) bool {
	for _, mk := range AllMetricKinds {
		if string(mk) == s {
			return true
		}
	}
	return false
}

// HealthMetric represents a single standalone health metric entry.
type HealthMetric struct {
	ID         uuid.UUID
	Kind       MetricKind
	Value      float64
	Unit       string
	RecordedAt time.Time
}

// NewHealthMetric creates a HealthMetric with generated UUID and current timestamp.
func NewHealthMetric(kind MetricKind, value float64) *HealthMetric {
	return &HealthMetric{
		ID:         uuid.New(),
		Kind:       kind,
		Value:      value,
		Unit:       MetricUnits[kind],
		RecordedAt: time.Now(),
	}
}

// WithRecordedAt sets a custom timestamp.
func (m *HealthMetric) WithRecordedAt(t time.Time) *HealthMetric {
	m.RecordedAt = t
	return m
}
