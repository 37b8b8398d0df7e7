// ABOUTME: JSON wire payloads for persisted collections.
// ABOUTME: Timestamps travel as RFC3339 strings, second precision.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pulsekit/pulse/internal/models"
	"github.com/pulsekit/pulse/internal/session"
)

// ReadingPayload is the persisted form of a blood pressure reading.
type ReadingPayload struct {
	ID         string `json:"id"`
	Systolic   int    `json:"systolic"`
	Diastolic  int    `json:"diastolic"`
	HeartRate  *int   `json:"heart_rate,omitempty"`
	RecordedAt string `json:"recorded_at"`
}

// MetricPayload is the persisted form of a standalone health metric.
type MetricPayload struct {
	ID         string  `json:"id"`
	Kind       string  `json:"kind"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	RecordedAt string  `json:"recorded_at"`
}

// MeasurementSessionPayload is the persisted form of a measurement session.
type MeasurementSessionPayload struct {
	ID        string           `json:"id"`
	Readings  []ReadingPayload `json:"readings"`
	Metrics   []MetricPayload  `json:"metrics"`
	StartedAt string           `json:"started_at"`
	EndedAt   *string          `json:"ended_at,omitempty"`
	Active    bool             `json:"active"`
}

// SetPayload is the persisted form of an exercise set.
type SetPayload struct {
	Reps        *int     `json:"reps,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	DurationSec *int64   `json:"duration_sec,omitempty"`
	RecordedAt  string   `json:"recorded_at"`
}

// ExerciseSessionPayload is the persisted form of a per-exercise sub-session.
type ExerciseSessionPayload struct {
	Type      string       `json:"type"`
	Sets      []SetPayload `json:"sets"`
	StartedAt string       `json:"started_at"`
	EndedAt   *string      `json:"ended_at,omitempty"`
	Completed bool         `json:"completed"`
}

// WorkoutSessionPayload is the persisted form of a workout session.
type WorkoutSessionPayload struct {
	ID        string                   `json:"id"`
	Exercises []ExerciseSessionPayload `json:"exercises"`
	StartedAt string                   `json:"started_at"`
	EndedAt   *string                  `json:"ended_at,omitempty"`
	Active    bool                     `json:"active"`
	Paused    bool                     `json:"paused"`
	Completed bool                     `json:"completed"`
}

// ProfilePayload is the persisted form of the user profile.
type ProfilePayload struct {
	Name       string `json:"name"`
	BirthYear  int    `json:"birth_year,omitempty"`
	WeightUnit string `json:"weight_unit"`
	UpdatedAt  string `json:"updated_at"`
}

func formatTime(t time.Time) string {
	return t.Truncate(time.Second).Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

func parseTimePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ToReadingPayload converts a reading to its wire form.
func ToReadingPayload(r models.Reading) ReadingPayload {
	return ReadingPayload{
		ID:         r.ID.String(),
		Systolic:   r.Systolic,
		Diastolic:  r.Diastolic,
		HeartRate:  r.HeartRate,
		RecordedAt: formatTime(r.RecordedAt),
	}
}

func readingFromPayload(p ReadingPayload) (models.Reading, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return models.Reading{}, fmt.Errorf("parse reading id: %w", err)
	}
	at, err := parseTime(p.RecordedAt)
	if err != nil {
		return models.Reading{}, fmt.Errorf("parse reading recorded_at: %w", err)
	}
	return models.Reading{
		ID:         id,
		Systolic:   p.Systolic,
		Diastolic:  p.Diastolic,
		HeartRate:  p.HeartRate,
		RecordedAt: at,
	}, nil
}

// ToMetricPayload converts a metric to its wire form.
func ToMetricPayload(m models.HealthMetric) MetricPayload {
	return MetricPayload{
		ID:         m.ID.String(),
		Kind:       string(m.Kind),
		Value:      m.Value,
		Unit:       m.Unit,
		RecordedAt: formatTime(m.RecordedAt),
	}
}

func metricFromPayload(p MetricPayload) (models.HealthMetric, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return models.HealthMetric{}, fmt.Errorf("parse metric id: %w", err)
	}
	at, err := parseTime(p.RecordedAt)
	if err != nil {
		return models.HealthMetric{}, fmt.Errorf("parse metric recorded_at: %w", err)
	}
	return models.HealthMetric{
		ID:         id,
		Kind:       models.MetricKind(p.Kind),
		Value:      p.Value,
		Unit:       p.Unit,
		RecordedAt: at,
	}, nil
}

// ToMeasurementSessionPayload converts a measurement session to its wire form.
func ToMeasurementSessionPayload(s session.MeasurementSession) MeasurementSessionPayload {
	p := MeasurementSessionPayload{
		ID:        s.ID.String(),
		Readings:  make([]ReadingPayload, 0, len(s.Readings)),
		Metrics:   make([]MetricPayload, 0, len(s.Metrics)),
		StartedAt: formatTime(s.StartedAt),
		EndedAt:   formatTimePtr(s.EndedAt),
		Active:    s.Active,
	}
	for _, r := range s.Readings {
		p.Readings = append(p.Readings, ToReadingPayload(r))
	}
	for _, m := range s.Metrics {
		p.Metrics = append(p.Metrics, ToMetricPayload(m))
	}
	return p
}

// MeasurementSessionFromPayload converts a wire payload back to a session.
func MeasurementSessionFromPayload(p MeasurementSessionPayload) (session.MeasurementSession, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return session.MeasurementSession{}, fmt.Errorf("parse session id: %w", err)
	}
	startedAt, err := parseTime(p.StartedAt)
	if err != nil {
		return session.MeasurementSession{}, fmt.Errorf("parse session started_at: %w", err)
	}
	endedAt, err := parseTimePtr(p.EndedAt)
	if err != nil {
		return session.MeasurementSession{}, fmt.Errorf("parse session ended_at: %w", err)
	}

	s := session.MeasurementSession{
		ID:        id,
		StartedAt: startedAt,
		EndedAt:   endedAt,
		Active:    p.Active,
	}
	for _, rp := range p.Readings {
		r, err := readingFromPayload(rp)
		if err != nil {
			return session.MeasurementSession{}, err
		}
		s.Readings = append(s.Readings, r)
	}
	for _, mp := range p.Metrics {
		m, err := metricFromPayload(mp)
		if err != nil {
			return session.MeasurementSession{}, err
		}
		s.Metrics = append(s.Metrics, m)
	}
	return s, nil
}

// ToWorkoutSessionPayload converts a workout session to its wire form.
func ToWorkoutSessionPayload(w session.WorkoutSession) WorkoutSessionPayload {
	p := WorkoutSessionPayload{
		ID:        w.ID.String(),
		Exercises: make([]ExerciseSessionPayload, 0, len(w.Exercises)),
		StartedAt: formatTime(w.StartedAt),
		EndedAt:   formatTimePtr(w.EndedAt),
		Active:    w.Active,
		Paused:    w.Paused,
		Completed: w.Completed,
	}
	for _, e := range w.Exercises {
		ep := ExerciseSessionPayload{
			Type:      string(e.Type),
			Sets:      make([]SetPayload, 0, len(e.Sets)),
			StartedAt: formatTime(e.StartedAt),
			EndedAt:   formatTimePtr(e.EndedAt),
			Completed: e.Completed,
		}
		for _, set := range e.Sets {
			sp := SetPayload{
				Reps:       set.Reps,
				Weight:     set.Weight,
				RecordedAt: formatTime(set.RecordedAt),
			}
			if set.Duration != nil {
				sec := int64(set.Duration.Seconds())
				sp.DurationSec = &sec
			}
			ep.Sets = append(ep.Sets, sp)
		}
		p.Exercises = append(p.Exercises, ep)
	}
	return p
}

// WorkoutSessionFromPayload converts a wire payload back to a workout session.
func WorkoutSessionFromPayload(p WorkoutSessionPayload) (session.WorkoutSession, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return session.WorkoutSession{}, fmt.Errorf("parse workout id: %w", err)
	}
	startedAt, err := parseTime(p.StartedAt)
	if err != nil {
		return session.WorkoutSession{}, fmt.Errorf("parse workout started_at: %w", err)
	}
	endedAt, err := parseTimePtr(p.EndedAt)
	if err != nil {
		return session.WorkoutSession{}, fmt.Errorf("parse workout ended_at: %w", err)
	}

	w := session.WorkoutSession{
		ID:        id,
		StartedAt: startedAt,
		EndedAt:   endedAt,
		Active:    p.Active,
		Paused:    p.Paused,
		Completed: p.Completed,
	}
	for _, ep := range p.Exercises {
		exStarted, err := parseTime(ep.StartedAt)
		if err != nil {
			return session.WorkoutSession{}, fmt.Errorf("parse exercise started_at: %w", err)
		}
		exEnded, err := parseTimePtr(ep.EndedAt)
		if err != nil {
			return session.WorkoutSession{}, fmt.Errorf("parse exercise ended_at: %w", err)
		}
		e := session.ExerciseSession{
			Type:      models.ExerciseType(ep.Type),
			StartedAt: exStarted,
			EndedAt:   exEnded,
			Completed: ep.Completed,
		}
		for _, sp := range ep.Sets {
			at, err := parseTime(sp.RecordedAt)
			if err != nil {
				return session.WorkoutSession{}, fmt.Errorf("parse set recorded_at: %w", err)
			}
			set := models.ExerciseSet{
				Reps:       sp.Reps,
				Weight:     sp.Weight,
				RecordedAt: at,
			}
			if sp.DurationSec != nil {
				d := time.Duration(*sp.DurationSec) * time.Second
				set.Duration = &d
			}
			e.Sets = append(e.Sets, set)
		}
		w.Exercises = append(w.Exercises, e)
	}
	return w, nil
}

// ToProfilePayload converts a profile to its wire form.
func ToProfilePayload(p models.Profile) ProfilePayload {
	return ProfilePayload{
		Name:       p.Name,
		BirthYear:  p.BirthYear,
		WeightUnit: p.WeightUnit,
		UpdatedAt:  formatTime(p.UpdatedAt),
	}
}

// ProfileFromPayload converts a wire payload back to a profile.
func ProfileFromPayload(p ProfilePayload) (models.Profile, error) {
	at, err := parseTime(p.UpdatedAt)
	if err != nil {
		return models.Profile{}, fmt.Errorf("parse profile updated_at: %w", err)
	}
	return models.Profile{
		Name:       p.Name,
		BirthYear:  p.BirthYear,
		WeightUnit: p.WeightUnit,
		UpdatedAt:  at,
	}, nil
}

// EncodeMeasurementSessions marshals a measurement history collection.
func EncodeMeasurementSessions(sessions []session.MeasurementSession) ([]byte, error) {
	payloads := make([]MeasurementSessionPayload, 0, len(sessions))
	for _, s := range sessions {
		payloads = append(payloads, ToMeasurementSessionPayload(s))
	}
	return json.Marshal(payloads)
}

// DecodeMeasurementSessions unmarshals a measurement history collection.
func DecodeMeasurementSessions(blob []byte) ([]session.MeasurementSession, error) {
	var payloads []MeasurementSessionPayload
	if err := json.Unmarshal(blob, &payloads); err != nil {
		return nil, fmt.Errorf("unmarshal measurement sessions: %w", err)
	}
	sessions := make([]session.MeasurementSession, 0, len(payloads))
	for _, p := range payloads {
		s, err := MeasurementSessionFromPayload(p)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// EncodeWorkoutSessions marshals a workout history collection.
func EncodeWorkoutSessions(workouts []session.WorkoutSession) ([]byte, error) {
	payloads := make([]WorkoutSessionPayload, 0, len(workouts))
	for _, w := range workouts {
		payloads = append(payloads, ToWorkoutSessionPayload(w))
	}
	return json.Marshal(payloads)
}

// DecodeWorkoutSessions unmarshals a workout history collection.
func DecodeWorkoutSessions(blob []byte) ([]session.WorkoutSession, error) {
	var payloads []WorkoutSessionPayload
	if err := json.Unmarshal(blob, &payloads); err != nil {
		return nil, fmt.Errorf("unmarshal workout sessions: %w", err)
	}
	workouts := make([]session.WorkoutSession, 0, len(payloads))
	for _, p := range payloads {
		w, err := WorkoutSessionFromPayload(p)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

// EncodeProfile marshals the profile.
func EncodeProfile(p models.Profile) ([]byte, error) {
	return json.Marshal(ToProfilePayload(p))
}

// DecodeProfile unmarshals the profile.
func DecodeProfile(blob []byte) (models.Profile, error) {
	var payload ProfilePayload
	if err := json.Unmarshal(blob, &payload); err != nil {
		return models.Profile{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	return ProfileFromPayload(payload)
}
