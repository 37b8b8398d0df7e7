// ABOUTME: Fitness trend analysis for one exercise type over a time range.
// ABOUTME: Compares first and last average set weight in chronological order.
package analysis

import (
	"sort"
	"time"

	"github.com/pulsekit/pulse/internal/models"
	"github.com/pulsekit/pulse/internal/session"
)

// TrendDirection classifies how average weight moved across the range.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// trendThreshold is the absolute delta in pounds that separates stable from
// increasing/decreasing.
const trendThreshold = 5.0

// TimeRange selects how far back trend analysis looks.
type TimeRange string

const (
	RangeWeek        TimeRange = "week"
	RangeMonth       TimeRange = "month"
	RangeThreeMonths TimeRange = "3months"
	RangeYear        TimeRange = "year"
)

// Cutoff returns the range's start by calendar subtraction from now.
func (r TimeRange) Cutoff(now time.Time) time.Time {
	switch r {
	case RangeWeek:
		return now.AddDate(0, 0, -7)
	case RangeMonth:
		return now.AddDate(0, -1, 0)
	case RangeThreeMonths:
		return now.AddDate(0, -3, 0)
	case RangeYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// TrendAnalysis is the derived trend result. Not persisted.
type TrendAnalysis struct {
	Direction          TrendDirection
	WeightDelta        float64
	AvgWeight          float64
	MaxWeight          float64
	SampleCount        int
	PercentImprovement float64
}

// AnalyzeTrend computes the trend for one exercise type over workout history
// within the given range. Fewer than two samples report a stable direction
// with zero delta, carrying the single sample's values or all zeros.
func AnalyzeTrend(history []session.WorkoutSession, typ models.ExerciseType, r TimeRange, now time.Time) TrendAnalysis {
	cutoff := r.Cutoff(now)

	type sample struct {
		at        time.Time
		avgWeight float64
		maxWeight float64
	}
	var samples []sample
	for _, w := range history {
		if w.StartedAt.Before(cutoff) {
			continue
		}
		for _, e := range w.Exercises {
			if e.Type != typ {
				continue
			}
			samples = append(samples, sample{
				at:        w.StartedAt,
				avgWeight: e.AverageWeight(),
				maxWeight: e.MaxWeight(),
			})
		}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].at.Before(samples[j].at) })

	if len(samples) == 0 {
		return TrendAnalysis{Direction: TrendStable}
	}

	var sumAvg, maxWeight float64
	for _, s := range samples {
		sumAvg += s.avgWeight
		if s.maxWeight > maxWeight {
			maxWeight = s.maxWeight
		}
	}
	result := TrendAnalysis{
		Direction:   TrendStable,
		AvgWeight:   sumAvg / float64(len(samples)),
		MaxWeight:   maxWeight,
		SampleCount: len(samples),
	}
	if len(samples) < 2 {
		return result
	}

	first := samples[0].avgWeight
	last := samples[len(samples)-1].avgWeight
	result.WeightDelta = last - first
	switch {
	case result.WeightDelta > trendThreshold:
		result.Direction = TrendIncreasing
	case result.WeightDelta < -trendThreshold:
		result.Direction = TrendDecreasing
	}
	if first != 0 {
		result.PercentImprovement = result.WeightDelta / first * 100
	}
	return result
}
