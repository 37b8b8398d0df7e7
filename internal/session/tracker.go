// ABOUTME: Tracker owns the current sessions, history collections, and policies.
// ABOUTME: Single logical owner; mutators return explicit success results.
package session

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pulsekit/pulse/internal/models"
)

// Config holds the tracker's policy knobs. The zero value means unlimited
// readings, start-resets-clock, and auto-start enabled.
type Config struct {
	// MaxReadings caps readings per measurement session. 0 means unlimited.
	MaxReadings int
	// StartResets controls whether Start on an already active measurement
	// session resets the elapsed-time reference point. When false, Start on
	// an active session is a no-op.
	StartResets bool
	// AutoStart controls whether adding a reading or metric to an inactive
	// measurement session starts it first. Workout sessions never auto-start.
	AutoStart bool
}

// DefaultConfig returns the default tracker policies.
func DefaultConfig() Config {
	return Config{MaxReadings: 0, StartResets: true, AutoStart: true}
}

// HistoryStore persists the history collections. The tracker saves whole
// collections after every history mutation.
type HistoryStore interface {
	LoadMeasurementSessions() ([]MeasurementSession, error)
	SaveMeasurementSessions([]MeasurementSession) error
	LoadWorkoutSessions() ([]WorkoutSession, error)
	SaveWorkoutSessions([]WorkoutSession) error
}

// CurrentStore is an optional extension of HistoryStore that persists the
// in-progress sessions across tracker lifetimes. Stores that implement it
// get save-on-mutation for the current sessions.
type CurrentStore interface {
	LoadCurrentMeasurement() (*MeasurementSession, error)
	SaveCurrentMeasurement(*MeasurementSession) error
	LoadCurrentWorkout() (*WorkoutSession, error)
	SaveCurrentWorkout(*WorkoutSession) error
}

// Tracker is the mutation surface for sessions and history. It is designed
// for a single logical owner mutating synchronously; it does no internal
// locking.
type Tracker struct {
	cfg    Config
	store  HistoryStore
	cur    CurrentStore
	logger *log.Logger

	current *MeasurementSession
	workout *WorkoutSession

	measurements []MeasurementSession
	workouts     []WorkoutSession

	events chan Event
}

// NewTracker creates a tracker and loads history from the store. A store
// that fails to load leaves the tracker with empty history.
func NewTracker(cfg Config, store HistoryStore, logger *log.Logger) (*Tracker, error) {
	if store == nil {
		return nil, fmt.Errorf("new tracker: nil history store")
	}
	if logger == nil {
		logger = log.Default()
	}

	t := &Tracker{
		cfg:     cfg,
		store:   store,
		logger:  logger,
		current: NewMeasurementSession(),
		events:  make(chan Event, 64),
	}

	measurements, err := store.LoadMeasurementSessions()
	if err != nil {
		return nil, fmt.Errorf("load measurement history: %w", err)
	}
	t.measurements = measurements

	workouts, err := store.LoadWorkoutSessions()
	if err != nil {
		return nil, fmt.Errorf("load workout history: %w", err)
	}
	t.workouts = workouts

	if cur, ok := store.(CurrentStore); ok {
		t.cur = cur
		if s, err := cur.LoadCurrentMeasurement(); err == nil && s != nil {
			t.current = s
		}
		if w, err := cur.LoadCurrentWorkout(); err == nil {
			t.workout = w
		}
	}

	return t, nil
}

// Current returns a copy of the current measurement session. The copy's
// nested slices do not alias tracker state.
func (t *Tracker) Current() MeasurementSession {
	return t.current.clone()
}

// StartMeasurement starts the current measurement session per StartPolicy.
func (t *Tracker) StartMeasurement() {
	if t.current.Active && !t.cfg.StartResets {
		return
	}
	t.current.Start()
	t.persistCurrent()
	t.publish(EventSessionStarted, t.current.ID)
}

// StopMeasurement deactivates the current session without completing it.
func (t *Tracker) StopMeasurement() {
	t.current.Stop()
	t.persistCurrent()
}

// AddReading validates and appends a reading to the current session,
// auto-starting it first when the AutoStart policy is enabled.
func (t *Tracker) AddReading(r models.Reading) bool {
	if !t.current.Active && t.cfg.AutoStart {
		t.StartMeasurement()
	}
	if !t.current.CanAddReading(t.cfg.MaxReadings) {
		return false
	}
	if !t.current.AddReading(r) {
		return false
	}
	t.persistCurrent()
	t.publish(EventReadingAdded, t.current.ID)
	return true
}

// AddMetric validates and appends a metric to the current session, with the
// same auto-start policy as readings.
func (t *Tracker) AddMetric(m models.HealthMetric) bool {
	if !t.current.Active && t.cfg.AutoStart {
		t.StartMeasurement()
	}
	if !t.current.AddMetric(m) {
		return false
	}
	t.persistCurrent()
	t.publish(EventMetricAdded, t.current.ID)
	return true
}

// RemoveReading removes a reading from the current session by index.
func (t *Tracker) RemoveReading(i int) bool {
	if !t.current.RemoveReading(i) {
		return false
	}
	t.persistCurrent()
	return true
}

// RemoveMetric removes a metric from the current session by index.
func (t *Tracker) RemoveMetric(i int) bool {
	if !t.current.RemoveMetric(i) {
		return false
	}
	t.persistCurrent()
	return true
}

// CompleteMeasurement finalizes the current session, appends it to history,
// persists, and installs a fresh empty session. Returns the completed
// session. Completing an empty, never-started session is a no-op.
func (t *Tracker) CompleteMeasurement() (MeasurementSession, bool) {
	if t.current.StartedAt.IsZero() && len(t.current.Readings) == 0 && len(t.current.Metrics) == 0 {
		return MeasurementSession{}, false
	}
	t.current.Complete()
	completed := *t.current
	t.measurements = append(t.measurements, completed)
	t.persistMeasurements()
	t.current = NewMeasurementSession()
	t.persistCurrent()
	t.publish(EventSessionCompleted, completed.ID)
	return completed.clone(), true
}

// BeginWorkout creates and starts a new workout session, replacing any
// unfinished one. Returns false if a workout is already in progress.
func (t *Tracker) BeginWorkout() bool {
	if t.workout != nil && !t.workout.Completed {
		return false
	}
	t.workout = NewWorkoutSession()
	t.workout.Start()
	t.persistCurrent()
	t.publish(EventWorkoutStarted, t.workout.ID)
	return true
}

// Workout returns a copy of the in-progress workout session. The copy's
// nested slices do not alias tracker state.
func (t *Tracker) Workout() (WorkoutSession, bool) {
	if t.workout == nil {
		return WorkoutSession{}, false
	}
	return t.workout.clone(), true
}

// AddExercise appends an exercise to the in-progress workout.
func (t *Tracker) AddExercise(typ models.ExerciseType) bool {
	if t.workout == nil || !t.workout.AddExercise(typ) {
		return false
	}
	t.persistCurrent()
	return true
}

// AddSet appends a set to an exercise of the in-progress workout.
func (t *Tracker) AddSet(exerciseIndex int, set models.ExerciseSet) bool {
	if t.workout == nil {
		return false
	}
	if !t.workout.AddSet(exerciseIndex, set) {
		return false
	}
	t.persistCurrent()
	t.publish(EventSetAdded, t.workout.ID)
	return true
}

// PauseWorkout pauses the in-progress workout.
func (t *Tracker) PauseWorkout() bool {
	if t.workout == nil || !t.workout.Pause() {
		return false
	}
	t.persistCurrent()
	return true
}

// ResumeWorkout resumes a paused workout.
func (t *Tracker) ResumeWorkout() bool {
	if t.workout == nil || !t.workout.Resume() {
		return false
	}
	t.persistCurrent()
	return true
}

// CompleteWorkout finalizes the in-progress workout, appends it to history,
// and persists.
func (t *Tracker) CompleteWorkout() (WorkoutSession, bool) {
	if t.workout == nil || !t.workout.Complete() {
		return WorkoutSession{}, false
	}
	completed := *t.workout
	t.workouts = append(t.workouts, completed)
	t.persistWorkouts()
	t.workout = nil
	t.persistCurrent()
	t.publish(EventWorkoutCompleted, completed.ID)
	return completed.clone(), true
}

// LatestReading returns the most recent reading by RecordedAt across the
// current session and history. The second return is false when none exists.
func (t *Tracker) LatestReading() (models.Reading, bool) {
	var latest models.Reading
	found := false
	consider := func(r models.Reading) {
		if !found || r.RecordedAt.After(latest.RecordedAt) {
			latest = r
			found = true
		}
	}
	for _, r := range t.current.Readings {
		consider(r)
	}
	for _, s := range t.measurements {
		for _, r := range s.Readings {
			consider(r)
		}
	}
	return latest, found
}

// LatestMetric returns the most recent metric of the given kind across the
// current session and history. The second return is false when none exists.
func (t *Tracker) LatestMetric(kind models.MetricKind) (models.HealthMetric, bool) {
	var latest models.HealthMetric
	found := false
	consider := func(m models.HealthMetric) {
		if m.Kind != kind {
			return
		}
		if !found || m.RecordedAt.After(latest.RecordedAt) {
			latest = m
			found = true
		}
	}
	for _, m := range t.current.Metrics {
		consider(m)
	}
	for _, s := range t.measurements {
		for _, m := range s.Metrics {
			consider(m)
		}
	}
	return latest, found
}

// MeasurementHistory returns a copy of the measurement history collection.
// Nested slices are copied too; callers cannot mutate tracker state through
// the result.
func (t *Tracker) MeasurementHistory() []MeasurementSession {
	out := make([]MeasurementSession, len(t.measurements))
	for i := range t.measurements {
		out[i] = t.measurements[i].clone()
	}
	return out
}

// WorkoutHistory returns a copy of the workout history collection. Nested
// slices are copied too; callers cannot mutate tracker state through the
// result.
func (t *Tracker) WorkoutHistory() []WorkoutSession {
	out := make([]WorkoutSession, len(t.workouts))
	for i := range t.workouts {
		out[i] = t.workouts[i].clone()
	}
	return out
}

// DeleteMeasurement removes one history session by ID.
func (t *Tracker) DeleteMeasurement(id uuid.UUID) bool {
	for i, s := range t.measurements {
		if s.ID == id {
			t.measurements = append(t.measurements[:i], t.measurements[i+1:]...)
			t.persistMeasurements()
			t.publish(EventHistoryChanged, id)
			return true
		}
	}
	return false
}

// DeleteMeasurementsOn removes all history sessions that started on the given
// calendar day and returns how many were removed.
func (t *Tracker) DeleteMeasurementsOn(day time.Time) int {
	y, m, d := day.Date()
	kept := t.measurements[:0]
	removed := 0
	for _, s := range t.measurements {
		sy, sm, sd := s.StartedAt.Date()
		if sy == y && sm == m && sd == d {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	t.measurements = kept
	if removed > 0 {
		t.persistMeasurements()
		t.publish(EventHistoryChanged, uuid.Nil)
	}
	return removed
}

// ClearMeasurements removes the entire measurement history.
func (t *Tracker) ClearMeasurements() {
	t.measurements = nil
	t.persistMeasurements()
	t.publish(EventHistoryChanged, uuid.Nil)
}

// DeleteWorkout removes one workout history session by ID.
func (t *Tracker) DeleteWorkout(id uuid.UUID) bool {
	for i, w := range t.workouts {
		if w.ID == id {
			t.workouts = append(t.workouts[:i], t.workouts[i+1:]...)
			t.persistWorkouts()
			t.publish(EventHistoryChanged, id)
			return true
		}
	}
	return false
}

// DeleteWorkoutsOn removes all workout history sessions that started on the
// given calendar day and returns how many were removed.
func (t *Tracker) DeleteWorkoutsOn(day time.Time) int {
	y, m, d := day.Date()
	kept := t.workouts[:0]
	removed := 0
	for _, w := range t.workouts {
		wy, wm, wd := w.StartedAt.Date()
		if wy == y && wm == m && wd == d {
			removed++
			continue
		}
		kept = append(kept, w)
	}
	t.workouts = kept
	if removed > 0 {
		t.persistWorkouts()
		t.publish(EventHistoryChanged, uuid.Nil)
	}
	return removed
}

// ClearWorkouts removes the entire workout history.
func (t *Tracker) ClearWorkouts() {
	t.workouts = nil
	t.persistWorkouts()
	t.publish(EventHistoryChanged, uuid.Nil)
}

// ReplaceHistory overwrites both history collections, used when a sync pull
// replaces local state. Persists the new collections.
func (t *Tracker) ReplaceHistory(measurements []MeasurementSession, workouts []WorkoutSession) {
	t.measurements = measurements
	t.workouts = workouts
	t.persistMeasurements()
	t.persistWorkouts()
	t.publish(EventHistoryChanged, uuid.Nil)
}

func (t *Tracker) persistMeasurements() {
	if err := t.store.SaveMeasurementSessions(t.measurements); err != nil {
		t.logger.Error("persist measurement history", "err", err)
	}
}

func (t *Tracker) persistWorkouts() {
	if err := t.store.SaveWorkoutSessions(t.workouts); err != nil {
		t.logger.Error("persist workout history", "err", err)
	}
}

func (t *Tracker) persistCurrent() {
	if t.cur == nil {
		return
	}
	if err := t.cur.SaveCurrentMeasurement(t.current); err != nil {
		t.logger.Error("persist current session", "err", err)
	}
	if err := t.cur.SaveCurrentWorkout(t.workout); err != nil {
		t.logger.Error("persist current workout", "err", err)
	}
}
