// ABOUTME: Markdown summary of session history for human review.
// ABOUTME: Tables of readings per session and workouts with derived totals.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/pulsekit/pulse/internal/analysis"
	"github.com/pulsekit/pulse/internal/models"
	"github.com/pulsekit/pulse/internal/session"
)

// Markdown renders the history collections as a Markdown document.
func Markdown(measurements []session.MeasurementSession, workouts []session.WorkoutSession) string {
	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Pulse Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if len(measurements) > 0 {
		sb.WriteString("## Measurement Sessions\n\n")
		sb.WriteString("| Date | Readings | Avg BP | Category | Avg HR |\n")
		sb.WriteString("|------|----------|--------|----------|--------|\n")
		for i := range measurements {
			s := &measurements[i]
			avgSys := s.AverageSystolic()
			avgDia := s.AverageDiastolic()
			hr := "-"
			if avg := s.AverageHeartRate(); avg != nil {
				hr = fmt.Sprintf("%.0f bpm", *avg)
			}
			sb.WriteString(fmt.Sprintf("| %s | %d | %.0f/%.0f | %s | %s |\n",
				s.StartedAt.Format("2006-01-02 15:04"),
				len(s.Readings),
				avgSys, avgDia,
				analysis.Classify(avgSys, avgDia).Label(),
				hr))
		}
		sb.WriteString("\n")
	}

	if len(workouts) > 0 {
		sb.WriteString("## Workouts\n\n")
		sb.WriteString("| Date | Exercises | Sets | Reps | Duration |\n")
		sb.WriteString("|------|-----------|------|------|----------|\n")
		for i := range workouts {
			w := &workouts[i]
			sb.WriteString(fmt.Sprintf("| %s | %s | %d | %d | %s |\n",
				w.StartedAt.Format("2006-01-02 15:04"),
				exerciseLabels(w),
				w.TotalSets(),
				w.TotalReps(),
				w.Duration().Round(time.Second)))
		}
	}

	return sb.String()
}

func exerciseLabels(w *session.WorkoutSession) string {
	if len(w.Exercises) == 0 {
		return "-"
	}
	labels := make([]string, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		labels = append(labels, models.ExerciseCatalog[e.Type].Label)
	}
	return strings.Join(labels, ", ")
}
