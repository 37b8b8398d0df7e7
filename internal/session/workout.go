// ABOUTME: Workout session state machine with nested per-exercise sessions.
// ABOUTME: NotStarted -> Active <-> Paused -> Completed; Completed is terminal.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/pulsekit/pulse/internal/models"
	"github.com/pulsekit/pulse/internal/validate"
)

// ExerciseSession holds the ordered sets for one exercise within a workout.
type ExerciseSession struct {
	Type      models.ExerciseType
	Sets      []models.ExerciseSet
	StartedAt time.Time
	EndedAt   *time.Time
	Completed bool
}

// AverageWeight returns the mean weight across sets that carry one, 0 if none.
func (e *ExerciseSession) AverageWeight() float64 {
	sum, n := 0.0, 0
	for _, s := range e.Sets {
		if s.Weight != nil {
			sum += *s.Weight
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// MaxWeight returns the heaviest set weight, 0 if no set carries one.
func (e *ExerciseSession) MaxWeight() float64 {
	max := 0.0
	for _, s := range e.Sets {
		if s.Weight != nil && *s.Weight > max {
			max = *s.Weight
		}
	}
	return max
}

// TotalReps sums reps across all sets.
func (e *ExerciseSession) TotalReps() int {
	total := 0
	for _, s := range e.Sets {
		if s.Reps != nil {
			total += *s.Reps
		}
	}
	return total
}

// TotalDuration sums set durations.
func (e *ExerciseSession) TotalDuration() time.Duration {
	var total time.Duration
	for _, s := range e.Sets {
		if s.Duration != nil {
			total += *s.Duration
		}
	}
	return total
}

// WorkoutSession aggregates exercise sessions under one lifecycle.
// Active and Paused are mutually exclusive; Completed guards all mutators.
type WorkoutSession struct {
	ID        uuid.UUID
	Exercises []ExerciseSession
	StartedAt time.Time
	EndedAt   *time.Time
	Active    bool
	Paused    bool
	Completed bool
}

// NewWorkoutSession creates a workout in the NotStarted state.
func NewWorkoutSession() *WorkoutSession {
	return &WorkoutSession{ID: uuid.New()}
}

// clone returns a copy whose Exercises and per-exercise Sets slices do not
// share backing arrays with the original.
func (w *WorkoutSession) clone() WorkoutSession {
	out := *w
	out.Exercises = make([]ExerciseSession, len(w.Exercises))
	for i, e := range w.Exercises {
		e.Sets = append([]models.ExerciseSet(nil), e.Sets...)
		out.Exercises[i] = e
	}
	return out
}

// Start transitions NotStarted to Active. Returns false once completed.
func (w *WorkoutSession) Start() bool {
	if w.Completed {
		return false
	}
	if w.StartedAt.IsZero() {
		w.StartedAt = time.Now()
	}
	w.Active = true
	w.Paused = false
	return true
}

// Pause transitions Active to Paused.
func (w *WorkoutSession) Pause() bool {
	if w.Completed || !w.Active {
		return false
	}
	w.Active = false
	w.Paused = true
	return true
}

// Resume transitions Paused back to Active.
func (w *WorkoutSession) Resume() bool {
	if w.Completed || !w.Paused {
		return false
	}
	w.Paused = false
	w.Active = true
	return true
}

// Complete finalizes the workout and every open exercise session under it.
// Terminal: every mutator rejects afterwards.
func (w *WorkoutSession) Complete() bool {
	if w.Completed {
		return false
	}
	now := time.Now()
	for i := range w.Exercises {
		ex := &w.Exercises[i]
		if !ex.Completed {
			ex.EndedAt = &now
			ex.Completed = true
		}
	}
	w.EndedAt = &now
	w.Active = false
	w.Paused = false
	w.Completed = true
	return true
}

// AddExercise appends an empty exercise session of the given type.
func (w *WorkoutSession) AddExercise(t models.ExerciseType) bool {
	if w.Completed {
		return false
	}
	if _, ok := models.ExerciseCatalog[t]; !ok {
		return false
	}
	w.Exercises = append(w.Exercises, ExerciseSession{Type: t, StartedAt: time.Now()})
	return true
}

// AddSet appends a set to the exercise at the given index. Invalid index or
// invalid set returns false rather than an error.
func (w *WorkoutSession) AddSet(exerciseIndex int, set models.ExerciseSet) bool {
	if w.Completed {
		return false
	}
	if exerciseIndex < 0 || exerciseIndex >= len(w.Exercises) {
		return false
	}
	if !validate.ValidSet(set.Reps, set.Weight, set.Duration) {
		return false
	}
	ex := &w.Exercises[exerciseIndex]
	ex.Sets = append(ex.Sets, set)
	return true
}

// TotalExercises returns the number of exercise sessions.
func (w *WorkoutSession) TotalExercises() int {
	return len(w.Exercises)
}

// TotalSets returns the number of sets across all exercises.
func (w *WorkoutSession) TotalSets() int {
	total := 0
	for _, e := range w.Exercises {
		total += len(e.Sets)
	}
	return total
}

// TotalReps returns the rep count across all exercises.
func (w *WorkoutSession) TotalReps() int {
	total := 0
	for _, e := range w.Exercises {
		total += e.TotalReps()
	}
	return total
}

// Duration returns EndedAt-StartedAt for completed workouts and live elapsed
// time for in-progress ones. Zero before the workout starts.
func (w *WorkoutSession) Duration() time.Duration {
	if w.StartedAt.IsZero() {
		return 0
	}
	end := time.Now()
	if w.EndedAt != nil {
		end = *w.EndedAt
	}
	return end.Sub(w.StartedAt)
}
