// ABOUTME: Tests for the measurement session state machine and averages.
// ABOUTME: Covers lifecycle transitions, validation gating, and the reading cap.
package session

import (
	"math"
	"testing"

	"github.com/pulsekit/pulse/internal/models"
)

func TestMeasurementSessionLifecycle(t *testing.T) {
	s := NewMeasurementSession()
	if s.Active {
		t.Error("new session should not be active")
	}
	if s.Completed() {
		t.Error("new session should not be completed")
	}

	s.Start()
	if !s.Active {
		t.Error("started session should be active")
	}
	if s.StartedAt.IsZero() {
		t.Error("Start should stamp StartedAt")
	}

	s.Stop()
	if s.Active {
		t.Error("stopped session should not be active")
	}
	if s.Completed() {
		t.Error("Stop must not stamp EndedAt")
	}

	s.Start()
	s.Complete()
	if s.Active {
		t.Error("completed session should not be active")
	}
	if !s.Completed() {
		t.Error("Complete should stamp EndedAt")
	}
}

func TestMeasurementSessionCompleteIdempotent(t *testing.T) {
	s := NewMeasurementSession()
	s.Start()
	s.Complete()
	first := *s.EndedAt
	s.Complete()
	if !s.EndedAt.Equal(first) {
		t.Error("repeat Complete must keep the original EndedAt")
	}
}

func TestMeasurementSessionStartResetsReference(t *testing.T) {
	s := NewMeasurementSession()
	s.Start()
	first := s.StartedAt
	s.Start()
	if s.StartedAt.Before(first) {
		t.Error("restart must move the reference point forward")
	}
}

func TestAddReading(t *testing.T) {
	tests := []struct {
		name      string
		active    bool
		systolic  int
		diastolic int
		want      bool
		wantCount int
	}{
		{"valid on active session", true, 120, 80, true, 1},
		{"valid on inactive session", false, 120, 80, false, 0},
		{"invalid reading rejected", true, 80, 120, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMeasurementSession()
			if tt.active {
				s.Start()
			}
			got := s.AddReading(*models.NewReading(tt.systolic, tt.diastolic))
			if got != tt.want {
				t.Errorf("AddReading() = %v, want %v", got, tt.want)
			}
			if len(s.Readings) != tt.wantCount {
				t.Errorf("got %d readings, want %d", len(s.Readings), tt.wantCount)
			}
		})
	}
}

func TestAddMetric(t *testing.T) {
	s := NewMeasurementSession()
	s.Start()
	if !s.AddMetric(*models.NewHealthMetric(models.MetricWeight, 180)) {
		t.Error("valid metric should be accepted")
	}
	if s.AddMetric(*models.NewHealthMetric(models.MetricWeight, 10)) {
		t.Error("out-of-range metric should be rejected")
	}
	s.Stop()
	if s.AddMetric(*models.NewHealthMetric(models.MetricWeight, 180)) {
		t.Error("inactive session should reject metrics")
	}
	if len(s.Metrics) != 1 {
		t.Errorf("got %d metrics, want 1", len(s.Metrics))
	}
}

func TestRemoveReading(t *testing.T) {
	s := NewMeasurementSession()
	s.Start()
	s.AddReading(*models.NewReading(120, 80))
	s.AddReading(*models.NewReading(130, 85))

	if s.RemoveReading(-1) {
		t.Error("negative index should return false")
	}
	if s.RemoveReading(2) {
		t.Error("out-of-range index should return false")
	}
	if !s.RemoveReading(0) {
		t.Error("in-range removal should succeed")
	}
	if len(s.Readings) != 1 || s.Readings[0].Systolic != 130 {
		t.Errorf("expected only the 130/85 reading to remain, got %+v", s.Readings)
	}
}

func TestCanAddReading(t *testing.T) {
	s := NewMeasurementSession()
	if s.CanAddReading(0) {
		t.Error("inactive session cannot accept readings")
	}
	s.Start()
	s.AddReading(*models.NewReading(120, 80))
	s.AddReading(*models.NewReading(130, 85))

	if !s.CanAddReading(0) {
		t.Error("cap 0 means unlimited")
	}
	if !s.CanAddReading(3) {
		t.Error("under cap should allow")
	}
	if s.CanAddReading(2) {
		t.Error("at cap should refuse")
	}
}

func TestMeasurementAverages(t *testing.T) {
	s := NewMeasurementSession()
	s.Start()
	s.AddReading(*models.NewReading(120, 80).WithHeartRate(72))
	s.AddReading(*models.NewReading(130, 85).WithHeartRate(75))
	s.AddReading(*models.NewReading(110, 70))

	if got := s.AverageSystolic(); got != 120 {
		t.Errorf("AverageSystolic() = %v, want 120", got)
	}
	wantDia := (80 + 85 + 70) / 3.0
	if got := s.AverageDiastolic(); math.Abs(got-wantDia) > 1e-9 {
		t.Errorf("AverageDiastolic() = %v, want %v", got, wantDia)
	}
	hr := s.AverageHeartRate()
	if hr == nil || *hr != 73.5 {
		t.Errorf("AverageHeartRate() = %v, want 73.5", hr)
	}
}

func TestMeasurementAveragesIdenticalReadings(t *testing.T) {
	s := NewMeasurementSession()
	s.Start()
	for i := 0; i < 4; i++ {
		s.AddReading(*models.NewReading(125, 82))
	}
	if got := s.AverageSystolic(); got != 125 {
		t.Errorf("AverageSystolic() = %v, want 125", got)
	}
	if got := s.AverageDiastolic(); got != 82 {
		t.Errorf("AverageDiastolic() = %v, want 82", got)
	}
}

func TestMeasurementAveragesEmpty(t *testing.T) {
	s := NewMeasurementSession()
	if s.AverageSystolic() != 0 || s.AverageDiastolic() != 0 {
		t.Error("averages over no readings should be 0")
	}
	if s.AverageHeartRate() != nil {
		t.Error("heart rate average over no readings should be nil")
	}
}

func TestAverageHeartRateNilWhenNoneCarryOne(t *testing.T) {
	s := NewMeasurementSession()
	s.Start()
	s.AddReading(*models.NewReading(120, 80))
	if s.AverageHeartRate() != nil {
		t.Error("expected nil when no reading carries a heart rate")
	}
}
