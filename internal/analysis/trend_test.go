// ABOUTME: Tests for fitness trend analysis and lifetime exercise stats.
// ABOUTME: Builds workout histories with known weights and offsets.
package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/pulsekit/pulse/internal/models"
	"github.com/pulsekit/pulse/internal/session"
)

func workoutAt(t *testing.T, startedAt time.Time, typ models.ExerciseType, weights ...float64) session.WorkoutSession {
	t.Helper()
	w := session.NewWorkoutSession()
	w.Start()
	w.AddExercise(typ)
	for _, weight := range weights {
		if !w.AddSet(0, *models.NewSet().WithReps(5).WithWeight(weight)) {
			t.Fatalf("could not add set at weight %v", weight)
		}
	}
	w.Complete()
	w.StartedAt = startedAt
	return *w
}

func TestAnalyzeTrendIncreasing(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	history := []session.WorkoutSession{
		workoutAt(t, now.AddDate(0, 0, -10), models.ExerciseBenchPress, 100),
		workoutAt(t, now.AddDate(0, 0, -2), models.ExerciseBenchPress, 110),
	}

	got := AnalyzeTrend(history, models.ExerciseBenchPress, RangeMonth, now)
	if got.Direction != TrendIncreasing {
		t.Errorf("Direction = %v, want increasing", got.Direction)
	}
	if got.WeightDelta != 10 {
		t.Errorf("WeightDelta = %v, want 10", got.WeightDelta)
	}
	if math.Abs(got.PercentImprovement-10) > 1e-9 {
		t.Errorf("PercentImprovement = %v, want 10", got.PercentImprovement)
	}
	if got.SampleCount != 2 {
		t.Errorf("SampleCount = %d, want 2", got.SampleCount)
	}
	if got.AvgWeight != 105 {
		t.Errorf("AvgWeight = %v, want 105", got.AvgWeight)
	}
	if got.MaxWeight != 110 {
		t.Errorf("MaxWeight = %v, want 110", got.MaxWeight)
	}
}

func TestAnalyzeTrendDirections(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		first float64
		last  float64
		want  TrendDirection
	}{
		{"increasing past threshold", 100, 106, TrendIncreasing},
		{"decreasing past threshold", 106, 100, TrendDecreasing},
		{"stable within threshold up", 100, 105, TrendStable},
		{"stable within threshold down", 105, 100, TrendStable},
		{"stable flat", 100, 100, TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := []session.WorkoutSession{
				workoutAt(t, now.AddDate(0, 0, -10), models.ExerciseSquat, tt.first),
				workoutAt(t, now.AddDate(0, 0, -2), models.ExerciseSquat, tt.last),
			}
			got := AnalyzeTrend(history, models.ExerciseSquat, RangeMonth, now)
			if got.Direction != tt.want {
				t.Errorf("Direction = %v, want %v", got.Direction, tt.want)
			}
		})
	}
}

func TestAnalyzeTrendChronologicalNotInputOrder(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	// Newest first in the input; the trend must still read oldest to newest.
	history := []session.WorkoutSession{
		workoutAt(t, now.AddDate(0, 0, -2), models.ExerciseSquat, 110),
		workoutAt(t, now.AddDate(0, 0, -10), models.ExerciseSquat, 100),
	}

	got := AnalyzeTrend(history, models.ExerciseSquat, RangeMonth, now)
	if got.Direction != TrendIncreasing || got.WeightDelta != 10 {
		t.Errorf("got %+v, want increasing with delta 10", got)
	}
}

func TestAnalyzeTrendSingleSample(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	history := []session.WorkoutSession{
		workoutAt(t, now.AddDate(0, 0, -2), models.ExerciseDeadlift, 225),
	}

	got := AnalyzeTrend(history, models.ExerciseDeadlift, RangeMonth, now)
	if got.Direction != TrendStable {
		t.Errorf("Direction = %v, want stable", got.Direction)
	}
	if got.WeightDelta != 0 || got.PercentImprovement != 0 {
		t.Errorf("delta/improvement = %v/%v, want zeros", got.WeightDelta, got.PercentImprovement)
	}
	if got.AvgWeight != 225 || got.MaxWeight != 225 || got.SampleCount != 1 {
		t.Errorf("got %+v, want the single sample's values", got)
	}
}

func TestAnalyzeTrendNoSamples(t *testing.T) {
	got := AnalyzeTrend(nil, models.ExerciseDeadlift, RangeMonth, time.Now())
	if got.Direction != TrendStable || got.SampleCount != 0 || got.AvgWeight != 0 {
		t.Errorf("got %+v, want an all-zero stable result", got)
	}
}

func TestAnalyzeTrendZeroFirstWeight(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	first := session.NewWorkoutSession()
	first.Start()
	first.AddExercise(models.ExercisePullUp)
	first.AddSet(0, *models.NewSet().WithReps(10))
	first.Complete()
	first.StartedAt = now.AddDate(0, 0, -10)

	history := []session.WorkoutSession{
		*first,
		workoutAt(t, now.AddDate(0, 0, -2), models.ExercisePullUp, 25),
	}

	got := AnalyzeTrend(history, models.ExercisePullUp, RangeMonth, now)
	if got.PercentImprovement != 0 {
		t.Errorf("PercentImprovement = %v, want 0 when the first sample has no weight", got.PercentImprovement)
	}
	if got.Direction != TrendIncreasing {
		t.Errorf("Direction = %v, want increasing", got.Direction)
	}
}

func TestAnalyzeTrendRespectsCutoff(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	history := []session.WorkoutSession{
		workoutAt(t, now.AddDate(0, 0, -60), models.ExerciseSquat, 50),
		workoutAt(t, now.AddDate(0, 0, -10), models.ExerciseSquat, 100),
		workoutAt(t, now.AddDate(0, 0, -2), models.ExerciseSquat, 103),
	}

	got := AnalyzeTrend(history, models.ExerciseSquat, RangeMonth, now)
	if got.SampleCount != 2 {
		t.Errorf("SampleCount = %d, want 2 inside the month", got.SampleCount)
	}
	if got.Direction != TrendStable {
		t.Errorf("Direction = %v, want stable once the stale sample is excluded", got.Direction)
	}
}

func TestTimeRangeCutoff(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		r    TimeRange
		want time.Time
	}{
		{RangeWeek, now.AddDate(0, 0, -7)},
		{RangeMonth, now.AddDate(0, -1, 0)},
		{RangeThreeMonths, now.AddDate(0, -3, 0)},
		{RangeYear, now.AddDate(-1, 0, 0)},
		{TimeRange("bogus"), now.AddDate(0, -1, 0)},
	}
	for _, tt := range tests {
		if got := tt.r.Cutoff(now); !got.Equal(tt.want) {
			t.Errorf("%s.Cutoff() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestLifetimeStats(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	history := []session.WorkoutSession{
		workoutAt(t, now.AddDate(0, 0, -400), models.ExerciseBenchPress, 135, 145),
		workoutAt(t, now.AddDate(0, 0, -2), models.ExerciseBenchPress, 155),
		workoutAt(t, now.AddDate(0, 0, -1), models.ExerciseSquat, 225),
	}

	got := LifetimeStats(history, models.ExerciseBenchPress)
	if got.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", got.Sessions)
	}
	if got.Sets != 3 {
		t.Errorf("Sets = %d, want 3", got.Sets)
	}
	if got.Reps != 15 {
		t.Errorf("Reps = %d, want 15", got.Reps)
	}
	if got.MaxWeight != 155 {
		t.Errorf("MaxWeight = %v, want 155", got.MaxWeight)
	}
	if got.AvgMaxWeight != 150 {
		t.Errorf("AvgMaxWeight = %v, want mean of per-session maxes 145 and 155", got.AvgMaxWeight)
	}
}

func TestLifetimeStatsBodyweightOnly(t *testing.T) {
	w := session.NewWorkoutSession()
	w.Start()
	w.AddExercise(models.ExercisePushUp)
	w.AddSet(0, *models.NewSet().WithReps(20))
	w.Complete()

	got := LifetimeStats([]session.WorkoutSession{*w}, models.ExercisePushUp)
	if got.Sessions != 1 || got.Reps != 20 {
		t.Errorf("got %+v, want 1 session with 20 reps", got)
	}
	if got.MaxWeight != 0 || got.AvgMaxWeight != 0 {
		t.Errorf("weights = %v/%v, want zeros for bodyweight work", got.MaxWeight, got.AvgMaxWeight)
	}
}

func TestLifetimeStatsEmpty(t *testing.T) {
	got := LifetimeStats(nil, models.ExerciseRow)
	if got != (ExerciseStats{}) {
		t.Errorf("got %+v, want the zero value", got)
	}
}
