// ABOUTME: ExerciseType catalog and ExerciseSet model for workout tracking.
// ABOUTME: Per-type capabilities live in a lookup table, not branching logic.
package models

import "time"

// ExerciseType identifies a kind of exercise.
type ExerciseType string

const (
	ExerciseBenchPress ExerciseType = "bench_press"
	ExerciseSquat      ExerciseType = "squat"
	ExerciseDeadlift   ExerciseType = "deadlift"
	ExerciseOverhead   ExerciseType = "overhead_press"
	ExerciseRow        ExerciseType = "row"
	ExercisePullUp     ExerciseType = "pull_up"
	ExercisePushUp     ExerciseType = "push_up"
	ExercisePlank      ExerciseType = "plank"
	ExerciseRunning    ExerciseType = "running"
	ExerciseCycling    ExerciseType = "cycling"
)

// ExerciseInfo describes what a given exercise type can record.
// Adding a new exercise type is a single table entry here.
type ExerciseInfo struct {
	Label          string
	SupportsWeight bool
	SupportsReps   bool
	SupportsTime   bool
	WeightUnit     string
	Color          string
}

// ExerciseCatalog maps exercise types to their capabilities.
var ExerciseCatalog = map[ExerciseType]ExerciseInfo{
	ExerciseBenchPress: {Label: "Bench Press", SupportsWeight: true, SupportsReps: true, WeightUnit: "lbs", Color: "red"},
	ExerciseSquat:      {Label: "Squat", SupportsWeight: true, SupportsReps: true, WeightUnit: "lbs", Color: "blue"},
	ExerciseDeadlift:   {Label: "Deadlift", SupportsWeight: true, SupportsReps: true, WeightUnit: "lbs", Color: "magenta"},
	ExerciseOverhead:   {Label: "Overhead Press", SupportsWeight: true, SupportsReps: true, WeightUnit: "lbs", Color: "yellow"},
	ExerciseRow:        {Label: "Row", SupportsWeight: true, SupportsReps: true, WeightUnit: "lbs", Color: "cyan"},
	ExercisePullUp:     {Label: "Pull-Up", SupportsReps: true, Color: "green"},
	ExercisePushUp:     {Label: "Push-Up", SupportsReps: true, Color: "green"},
	ExercisePlank:      {Label: "Plank", SupportsTime: true, Color: "white"},
	ExerciseRunning:    {Label: "Running", SupportsTime: true, Color: "cyan"},
	ExerciseCycling:    {Label: "Cycling", SupportsTime: true, Color: "blue"},
}

// AllExerciseTypes returns all valid exercise types.
var AllExerciseTypes = []ExerciseType{
	ExerciseBenchPress, ExerciseSquat, ExerciseDeadlift, ExerciseOverhead,
	ExerciseRow, ExercisePullUp, ExercisePushUp, ExercisePlank,
	ExerciseRunning, ExerciseCycling,
}

// IsValidExerciseType checks if a string is a valid exercise type.
func IsValidExerciseType(s string) bool {
	_, ok := ExerciseCatalog[ExerciseType(s)]
	return ok
}

// ExerciseSet represents one set within an exercise. At least one of
// Reps/Weight/Duration must be present for the set to be valid.
type ExerciseSet struct {
	Reps       *int
	Weight     *float64
	Duration   *time.Duration
	RecordedAt time.Time
}

// NewSet creates an empty ExerciseSet stamped with the current time.
func NewSet() *ExerciseSet {
	return &ExerciseSet{RecordedAt: time.Now()}
}

// WithReps sets the rep count.
func (s *ExerciseSet) WithReps(reps int) *ExerciseSet {
	s.Reps = &reps
	return s
}

// WithWeight sets the weight.
func (s *ExerciseSet) WithWeight(weight float64) *ExerciseSet {
	s.Weight = &weight
	return s
}

// WithDuration sets the duration.
func (s *ExerciseSet) WithDuration(d time.Duration) *ExerciseSet {
	s.Duration = &d
	return s
}
