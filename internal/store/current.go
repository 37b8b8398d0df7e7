// ABOUTME: Persistence for the in-progress measurement and workout sessions.
// ABOUTME: Local convenience keys, never part of the synced collections.
package store

import (
	"encoding/json"

	"github.com/pulsekit/pulse/internal/session"
)

const (
	keyCurrentMeasurement = "current:measurement"
	keyCurrentWorkout     = "current:workout"
)

// LoadCurrentMeasurement returns the persisted in-progress measurement
// session, nil if absent or malformed.
func (s *Store) LoadCurrentMeasurement() (*session.MeasurementSession, error) {
	blob, ok, err := s.kv.Get(keyCurrentMeasurement)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var p MeasurementSessionPayload
	if err := json.Unmarshal(blob, &p); err != nil {
		s.logger.Warn("discarding malformed current session", "err", err)
		return nil, nil
	}
	cur, err := MeasurementSessionFromPayload(p)
	if err != nil {
		s.logger.Warn("discarding malformed current session", "err", err)
		return nil, nil
	}
	return &cur, nil
}

// SaveCurrentMeasurement persists the in-progress measurement session.
// A nil session clears the key.
func (s *Store) SaveCurrentMeasurement(cur *session.MeasurementSession) error {
	if cur == nil {
		return s.kv.Delete(keyCurrentMeasurement)
	}
	blob, err := json.Marshal(ToMeasurementSessionPayload(*cur))
	if err != nil {
		return err
	}
	return s.kv.Set(keyCurrentMeasurement, blob)
}

// LoadCurrentWorkout returns the persisted in-progress workout session,
// nil if absent or malformed.
func (s *Store) LoadCurrentWorkout() (*session.WorkoutSession, error) {
	blob, ok, err := s.kv.Get(keyCurrentWorkout)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var p WorkoutSessionPayload
	if err := json.Unmarshal(blob, &p); err != nil {
		s.logger.Warn("discarding malformed current workout", "err", err)
		return nil, nil
	}
	cur, err := WorkoutSessionFromPayload(p)
	if err != nil {
		s.logger.Warn("discarding malformed current workout", "err", err)
		return nil, nil
	}
	return &cur, nil
}

// SaveCurrentWorkout persists the in-progress workout session. A nil
// workout clears the key.
func (s *Store) SaveCurrentWorkout(cur *session.WorkoutSession) error {
	if cur == nil {
		return s.kv.Delete(keyCurrentWorkout)
	}
	blob, err := json.Marshal(ToWorkoutSessionPayload(*cur))
	if err != nil {
		return err
	}
	return s.kv.Set(keyCurrentWorkout, blob)
}
