// ABOUTME: Local collection store over a key/blob backend.
// ABOUTME: Backend selection (badger or sqlite) mirrors the config switch.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pulsekit/pulse/internal/models"
	"github.com/pulsekit/pulse/internal/session"
)

// Collection keys. Each holds one whole collection as a JSON blob.
const (
	CollectionMeasurements = "sessions:measurement"
	CollectionWorkouts     = "sessions:workout"
	CollectionProfile      = "profile"
)

// Collections lists every collection the store and sync engine operate on.
var Collections = []string{CollectionMeasurements, CollectionWorkouts, CollectionProfile}

// kv is the minimal key/blob contract both backends satisfy.
type kv interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, val []byte) error
	Delete(key string) error
	Close() error
}

// Store persists whole collections locally. A malformed blob on load falls
// back to an empty collection and is logged, never propagated as a crash.
type Store struct {
	kv     kv
	logger *log.Logger
}

// Open creates a store in dir using the named backend: "badger" (default)
// or "sqlite".
func Open(backend, dir string, logger *log.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	var (
		backing kv
		err     error
	)
	switch backend {
	case "", "badger":
		backing, err = openBadger(filepath.Join(dir, "kv"))
	case "sqlite":
		backing, err = openSQLite(filepath.Join(dir, "pulse.db"))
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return &Store{kv: backing, logger: logger}, nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// LoadMeasurementSessions loads the measurement history collection. Missing
// or malformed blobs yield an empty collection.
func (s *Store) LoadMeasurementSessions() ([]session.MeasurementSession, error) {
	blob, ok, err := s.kv.Get(CollectionMeasurements)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	sessions, err := DecodeMeasurementSessions(blob)
	if err != nil {
		s.logger.Warn("discarding malformed measurement history", "err", err)
		return nil, nil
	}
	return sessions, nil
}

// SaveMeasurementSessions stores the measurement history collection.
func (s *Store) SaveMeasurementSessions(sessions []session.MeasurementSession) error {
	blob, err := EncodeMeasurementSessions(sessions)
	if err != nil {
		return err
	}
	return s.kv.Set(CollectionMeasurements, blob)
}

// LoadWorkoutSessions loads the workout history collection. Missing or
// malformed blobs yield an empty collection.
func (s *Store) LoadWorkoutSessions() ([]session.WorkoutSession, error) {
	blob, ok, err := s.kv.Get(CollectionWorkouts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	workouts, err := DecodeWorkoutSessions(blob)
	if err != nil {
		s.logger.Warn("discarding malformed workout history", "err", err)
		return nil, nil
	}
	return workouts, nil
}

// SaveWorkoutSessions stores the workout history collection.
func (s *Store) SaveWorkoutSessions(workouts []session.WorkoutSession) error {
	blob, err := EncodeWorkoutSessions(workouts)
	if err != nil {
		return err
	}
	return s.kv.Set(CollectionWorkouts, blob)
}

// LoadProfile loads the profile, defaulting when absent or malformed.
func (s *Store) LoadProfile() (models.Profile, error) {
	blob, ok, err := s.kv.Get(CollectionProfile)
	if err != nil {
		return models.Profile{}, err
	}
	if !ok {
		return models.DefaultProfile(), nil
	}
	p, err := DecodeProfile(blob)
	if err != nil {
		s.logger.Warn("discarding malformed profile", "err", err)
		return models.DefaultProfile(), nil
	}
	return p, nil
}

// SaveProfile stores the profile.
func (s *Store) SaveProfile(p models.Profile) error {
	blob, err := EncodeProfile(p)
	if err != nil {
		return err
	}
	return s.kv.Set(CollectionProfile, blob)
}

// ExportCollection returns the raw blob for a collection, encoding an empty
// collection when the key is absent.
func (s *Store) ExportCollection(name string) ([]byte, error) {
	blob, ok, err := s.kv.Get(name)
	if err != nil {
		return nil, err
	}
	if ok {
		return blob, nil
	}
	switch name {
	case CollectionMeasurements:
		return EncodeMeasurementSessions(nil)
	case CollectionWorkouts:
		return EncodeWorkoutSessions(nil)
	case CollectionProfile:
		return EncodeProfile(models.DefaultProfile())
	default:
		return nil, fmt.Errorf("unknown collection: %q", name)
	}
}

// ImportCollection validates and stores a raw collection blob. The blob is
// decoded first so a malformed payload never replaces good local state.
func (s *Store) ImportCollection(name string, blob []byte) error {
	switch name {
	case CollectionMeasurements:
		if _, err := DecodeMeasurementSessions(blob); err != nil {
			return err
		}
	case CollectionWorkouts:
		if _, err := DecodeWorkoutSessions(blob); err != nil {
			return err
		}
	case CollectionProfile:
		if _, err := DecodeProfile(blob); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown collection: %q", name)
	}
	return s.kv.Set(name, blob)
}
