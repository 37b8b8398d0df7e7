// ABOUTME: Pure plausibility predicates for readings, metrics, and sets.
// ABOUTME: Boolean returns only; no side effects and no errors.
package validate

import (
	"fmt"
	"time"

	"github.com/pulsekit/pulse/internal/models"
)

const (
	minSystolic  = 50
	maxSystolic  = 300
	minDiastolic = 30
	maxDiastolic = 200
	minHeartRate = 30
	maxHeartRate = 200
)

// ValidReading reports whether a blood pressure reading is physiologically
// plausible. Systolic must exceed diastolic regardless of range.
func ValidReading(systolic, diastolic int, heartRate *int) bool {
	if systolic < minSystolic || systolic > maxSystolic {
		return false
	}
	if diastolic < minDiastolic || diastolic > maxDiastolic {
		return false
	}
	if systolic <= diastolic {
		return false
	}
	if heartRate != nil && (*heartRate < minHeartRate || *heartRate > maxHeartRate) {
		return false
	}
	return true
}

// ValidMetric reports whether a metric value falls in the plausible range for
// its kind. An unknown kind is a programming error and panics.
func ValidMetric(kind models.MetricKind, value float64) bool {
	r, ok := models.MetricRanges[kind]
	if !ok {
		panic(fmt.Sprintf("validate: unknown metric kind %q", kind))
	}
	return value >= r.Min && value <= r.Max
}

// ValidSet reports whether an exercise set carries at least one populated,
// positive field.
func ValidSet(reps *int, weight *float64, duration *time.Duration) bool {
	populated := false
	if reps != nil {
		if *reps <= 0 {
			return false
		}
		populated = true
	}
	if weight != nil {
		if *weight <= 0 {
			return false
		}
		populated = true
	}
	if duration != nil {
		if *duration <= 0 {
			return false
		}
		populated = true
	}
	return populated
}
