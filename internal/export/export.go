// ABOUTME: Backup bundle export and import for session history.
// ABOUTME: Single JSON or YAML document suitable for upload as an opaque blob.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pulsekit/pulse/internal/models"
	"github.com/pulsekit/pulse/internal/session"
	"github.com/pulsekit/pulse/internal/store"
	"gopkg.in/yaml.v3"
)

// FormatVersion identifies the bundle layout for forward compatibility.
const FormatVersion = "1.0"

// Bundle is the full backup document.
type Bundle struct {
	FormatVersion       string                            `json:"format_version" yaml:"format_version"`
	CreatedAt           string                            `json:"created_at" yaml:"created_at"`
	MeasurementSessions []store.MeasurementSessionPayload `json:"measurement_sessions" yaml:"measurement_sessions"`
	WorkoutSessions     []store.WorkoutSessionPayload     `json:"workout_sessions" yaml:"workout_sessions"`
	Profile             store.ProfilePayload              `json:"profile" yaml:"profile"`
}

// NewBundle builds a bundle from in-memory history collections.
func NewBundle(measurements []session.MeasurementSession, workouts []session.WorkoutSession, profile models.Profile) *Bundle {
	b := &Bundle{
		FormatVersion:       FormatVersion,
		CreatedAt:           time.Now().Truncate(time.Second).Format(time.RFC3339),
		MeasurementSessions: make([]store.MeasurementSessionPayload, 0, len(measurements)),
		WorkoutSessions:     make([]store.WorkoutSessionPayload, 0, len(workouts)),
		Profile:             store.ToProfilePayload(profile),
	}
	for _, s := range measurements {
		b.MeasurementSessions = append(b.MeasurementSessions, store.ToMeasurementSessionPayload(s))
	}
	for _, w := range workouts {
		b.WorkoutSessions = append(b.WorkoutSessions, store.ToWorkoutSessionPayload(w))
	}
	return b
}

// Sessions converts the bundle back to in-memory collections.
func (b *Bundle) Sessions() ([]session.MeasurementSession, []session.WorkoutSession, models.Profile, error) {
	measurements := make([]session.MeasurementSession, 0, len(b.MeasurementSessions))
	for _, p := range b.MeasurementSessions {
		s, err := store.MeasurementSessionFromPayload(p)
		if err != nil {
			return nil, nil, models.Profile{}, fmt.Errorf("decode measurement session: %w", err)
		}
		measurements = append(measurements, s)
	}
	workouts := make([]session.WorkoutSession, 0, len(b.WorkoutSessions))
	for _, p := range b.WorkoutSessions {
		w, err := store.WorkoutSessionFromPayload(p)
		if err != nil {
			return nil, nil, models.Profile{}, fmt.Errorf("decode workout session: %w", err)
		}
		workouts = append(workouts, w)
	}
	profile, err := store.ProfileFromPayload(b.Profile)
	if err != nil {
		return nil, nil, models.Profile{}, err
	}
	return measurements, workouts, profile, nil
}

// JSON serializes the bundle as an indented JSON document.
func (b *Bundle) JSON() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// YAML serializes the bundle as a YAML document.
func (b *Bundle) YAML() ([]byte, error) {
	return yaml.Marshal(b)
}

// ParseJSON reads a bundle from JSON bytes.
func ParseJSON(data []byte) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("unmarshal bundle: %w", err)
	}
	return &b, nil
}
