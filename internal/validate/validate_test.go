// ABOUTME: Tests for reading, metric, and set plausibility predicates.
// ABOUTME: Covers range boundaries and the systolic>diastolic invariant.
package validate

import (
	"testing"
	"time"

	"github.com/pulsekit/pulse/internal/models"
)

func intPtr(v int) *int                     { return &v }
func floatPtr(v float64) *float64           { return &v }
func durPtr(d time.Duration) *time.Duration { return &d }

func TestValidReading(t *testing.T) {
	tests := []struct {
		name      string
		systolic  int
		diastolic int
		heartRate *int
		want      bool
	}{
		{"normal", 120, 80, nil, true},
		{"with heart rate", 120, 80, intPtr(72), true},
		{"systolic low boundary", 50, 40, nil, true},
		{"systolic too low", 49, 40, nil, false},
		{"systolic high boundary", 300, 200, nil, true},
		{"systolic too high", 301, 200, nil, false},
		{"diastolic too low", 100, 29, nil, false},
		{"diastolic too high", 250, 201, nil, false},
		{"systolic equals diastolic", 100, 100, nil, false},
		{"systolic below diastolic", 80, 120, nil, false},
		{"heart rate too low", 120, 80, intPtr(29), false},
		{"heart rate low boundary", 120, 80, intPtr(30), true},
		{"heart rate high boundary", 120, 80, intPtr(200), true},
		{"heart rate too high", 120, 80, intPtr(201), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidReading(tt.systolic, tt.diastolic, tt.heartRate)
			if got != tt.want {
				t.Errorf("ValidReading(%d, %d) = %v, want %v",
					tt.systolic, tt.diastolic, got, tt.want)
			}
		})
	}
}

func TestValidReadingInvertedAlwaysFalse(t *testing.T) {
	// Whenever systolic <= diastolic the reading is invalid, in range or not.
	pairs := [][2]int{{80, 120}, {100, 100}, {50, 50}, {200, 300}, {10, 20}}
	for _, p := range pairs {
		if ValidReading(p[0], p[1], nil) {
			t.Errorf("ValidReading(%d, %d) = true, want false", p[0], p[1])
		}
	}
}

func TestValidMetric(t *testing.T) {
	tests := []struct {
		name  string
		kind  models.MetricKind
		value float64
		want  bool
	}{
		{"weight in range", models.MetricWeight, 180, true},
		{"weight low boundary", models.MetricWeight, 50, true},
		{"weight too low", models.MetricWeight, 49.9, false},
		{"weight too high", models.MetricWeight, 500.1, false},
		{"blood sugar in range", models.MetricBloodSugar, 95, true},
		{"blood sugar too low", models.MetricBloodSugar, 19, false},
		{"blood sugar high boundary", models.MetricBloodSugar, 600, true},
		{"heart rate in range", models.MetricHeartRate, 72, true},
		{"heart rate too high", models.MetricHeartRate, 201, false},
		{"bp component in range", models.MetricBloodPressure, 120, true},
		{"bp component too low", models.MetricBloodPressure, 49, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidMetric(tt.kind, tt.value)
			if got != tt.want {
				t.Errorf("ValidMetric(%s, %v) = %v, want %v", tt.kind, tt.value, got, tt.want)
			}
		})
	}
}

func TestValidMetricUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown metric kind")
		}
	}()
	ValidMetric(models.MetricKind("cholesterol"), 100)
}

func TestValidSet(t *testing.T) {
	tests := []struct {
		name     string
		reps     *int
		weight   *float64
		duration *time.Duration
		want     bool
	}{
		{"empty set", nil, nil, nil, false},
		{"reps only", intPtr(8), nil, nil, true},
		{"weight only", nil, floatPtr(135), nil, true},
		{"time only", nil, nil, durPtr(30 * time.Second), true},
		{"reps and weight", intPtr(8), floatPtr(135), nil, true},
		{"zero reps", intPtr(0), nil, nil, false},
		{"negative weight", nil, floatPtr(-5), nil, false},
		{"zero duration", nil, nil, durPtr(0), false},
		{"valid reps with invalid weight", intPtr(8), floatPtr(0), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidSet(tt.reps, tt.weight, tt.duration)
			if got != tt.want {
				t.Errorf("ValidSet() = %v, want %v", got, tt.want)
			}
		})
	}
}
