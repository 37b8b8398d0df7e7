// ABOUTME: Multi-window rolling averages over measurement session history.
// ABOUTME: Windows with no sessions are omitted from the result entirely.
package analysis

import (
	"time"

	"github.com/pulsekit/pulse/internal/session"
)

// Windows are the rolling-average window sizes in days.
var Windows = []int{3, 7, 14, 21, 30}

// RollingAverage is the derived average over one window. Not persisted.
type RollingAverage struct {
	WindowDays   int
	AvgSystolic  float64
	AvgDiastolic float64
	AvgHeartRate *float64
	ReadingCount int
	SessionCount int
	WindowStart  time.Time
	WindowEnd    time.Time
}

// RollingAverages computes averages for each window over sessions whose
// StartedAt falls within [now-window, now], boundaries inclusive. Windows
// that match no sessions or flatten to zero readings produce no entry, so
// the result length varies.
func RollingAverages(history []session.MeasurementSession, now time.Time) []RollingAverage {
	var out []RollingAverage
	for _, days := range Windows {
		start := now.AddDate(0, 0, -days)

		var (
			sessions       int
			readings       int
			sumSys, sumDia int
			sumHR, hrCount int
		)
		for _, s := range history {
			if s.StartedAt.Before(start) || s.StartedAt.After(now) {
				continue
			}
			sessions++
			for _, r := range s.Readings {
				readings++
				sumSys += r.Systolic
				sumDia += r.Diastolic
				if r.HeartRate != nil {
					sumHR += *r.HeartRate
					hrCount++
				}
			}
		}

		if readings == 0 {
			continue
		}

		ra := RollingAverage{
			WindowDays:   days,
			AvgSystolic:  float64(sumSys) / float64(readings),
			AvgDiastolic: float64(sumDia) / float64(readings),
			ReadingCount: readings,
			SessionCount: sessions,
			WindowStart:  start,
			WindowEnd:    now,
		}
		if hrCount > 0 {
			avg := float64(sumHR) / float64(hrCount)
			ra.AvgHeartRate = &avg
		}
		out = append(out, ra)
	}
	return out
}
