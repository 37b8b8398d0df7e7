// ABOUTME: Lifetime exercise statistics across the whole workout history.
// ABOUTME: Counts plus max and mean of per-session max weight, never windowed.
package analysis

import (
	"time"

	"github.com/pulsekit/pulse/internal/models"
	"github.com/pulsekit/pulse/internal/session"
)

// ExerciseStats aggregates one exercise type across all history.
type ExerciseStats struct {
	Sessions     int
	Sets         int
	Reps         int
	TotalTime    time.Duration
	MaxWeight    float64
	AvgMaxWeight float64
}

// LifetimeStats computes stats for one exercise type over the entire workout
// history. AvgMaxWeight averages each session's max weight, counting only
// sessions that recorded a weight.
func LifetimeStats(history []session.WorkoutSession, typ models.ExerciseType) ExerciseStats {
	var stats ExerciseStats
	var sumMax float64
	var weighted int

	for _, w := range history {
		for _, e := range w.Exercises {
			if e.Type != typ {
				continue
			}
			stats.Sessions++
			stats.Sets += len(e.Sets)
			stats.Reps += e.TotalReps()
			stats.TotalTime += e.TotalDuration()

			max := e.MaxWeight()
			if max > 0 {
				sumMax += max
				weighted++
				if max > stats.MaxWeight {
					stats.MaxWeight = max
				}
			}
		}
	}
	if weighted > 0 {
		stats.AvgMaxWeight = sumMax / float64(weighted)
	}
	return stats
}
