// ABOUTME: Measurement session state machine for blood pressure readings.
// ABOUTME: Empty -> Active -> Completed, with ordered readings and metrics.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/pulsekit/pulse/internal/models"
	"github.com/pulsekit/pulse/internal/validate"
)

// MeasurementSession groups readings and metrics taken in one sitting.
// EndedAt is set iff the session has been completed.
type MeasurementSession struct {
	ID        uuid.UUID
	Readings  []models.Reading
	Metrics   []models.HealthMetric
	StartedAt time.Time
	EndedAt   *time.Time
	Active    bool
}

// NewMeasurementSession creates an empty, inactive session.
func NewMeasurementSession() *MeasurementSession {
	return &MeasurementSession{ID: uuid.New()}
}

// clone returns a copy whose Readings and Metrics slices do not share
// backing arrays with the original.
func (s *MeasurementSession) clone() MeasurementSession {
	out := *s
	out.Readings = append([]models.Reading(nil), s.Readings...)
	out.Metrics = append([]models.HealthMetric(nil), s.Metrics...)
	return out
}

// Start activates the session and resets the start reference point to now.
// Calling Start on an already active session discards the prior reference
// point; whether the tracker allows that is controlled by StartPolicy.
func (s *MeasurementSession) Start() {
	s.Active = true
	s.StartedAt = time.Now()
}

// Stop deactivates the session without stamping EndedAt. A stopped session
// can be started again; a completed one cannot.
func (s *MeasurementSession) Stop() {
	s.Active = false
}

// Complete stamps EndedAt and deactivates the session. Repeat calls keep the
// original EndedAt and remain inactive.
func (s *MeasurementSession) Complete() {
	s.Active = false
	if s.EndedAt == nil {
		now := time.Now()
		s.EndedAt = &now
	}
}

// Completed reports whether the session has been finalized.
func (s *MeasurementSession) Completed() bool {
	return s.EndedAt != nil
}

// AddReading appends a reading if it is valid and the session is active.
// Auto-start on inactive sessions is a tracker policy, not session behavior.
func (s *MeasurementSession) AddReading(r models.Reading) bool {
	if !validate.ValidReading(r.Systolic, r.Diastolic, r.HeartRate) {
		return false
	}
	if !s.Active {
		return false
	}
	s.Readings = append(s.Readings, r)
	return true
}

// AddMetric appends a metric if it is valid and the session is active.
func (s *MeasurementSession) AddMetric(m models.HealthMetric) bool {
	if !validate.ValidMetric(m.Kind, m.Value) {
		return false
	}
	if !s.Active {
		return false
	}
	s.Metrics = append(s.Metrics, m)
	return true
}

// RemoveReading removes the reading at index i. Out-of-range returns false.
func (s *MeasurementSession) RemoveReading(i int) bool {
	if i < 0 || i >= len(s.Readings) {
		return false
	}
	s.Readings = append(s.Readings[:i], s.Readings[i+1:]...)
	return true
}

// RemoveMetric removes the metric at index i. Out-of-range returns false.
func (s *MeasurementSession) RemoveMetric(i int) bool {
	if i < 0 || i >= len(s.Metrics) {
		return false
	}
	s.Metrics = append(s.Metrics[:i], s.Metrics[i+1:]...)
	return true
}

// CanAddReading reports whether the session is active and under the reading
// cap. A cap of zero means unlimited.
func (s *MeasurementSession) CanAddReading(cap int) bool {
	if !s.Active {
		return false
	}
	return cap <= 0 || len(s.Readings) < cap
}

// AverageSystolic returns the mean systolic value, 0 if there are no readings.
func (s *MeasurementSession) AverageSystolic() float64 {
	if len(s.Readings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range s.Readings {
		sum += r.Systolic
	}
	return float64(sum) / float64(len(s.Readings))
}

// AverageDiastolic returns the mean diastolic value, 0 if there are no readings.
func (s *MeasurementSession) AverageDiastolic() float64 {
	if len(s.Readings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range s.Readings {
		sum += r.Diastolic
	}
	return float64(sum) / float64(len(s.Readings))
}

// AverageHeartRate returns the mean over readings that carry a heart rate,
// nil if none do.
func (s *MeasurementSession) AverageHeartRate() *float64 {
	sum, n := 0, 0
	for _, r := range s.Readings {
		if r.HeartRate != nil {
			sum += *r.HeartRate
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := float64(sum) / float64(n)
	return &avg
}
