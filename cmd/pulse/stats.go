// ABOUTME: CLI commands for rolling averages, trends, and lifetime stats.
// ABOUTME: All statistics derive from history on demand; nothing is persisted.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/pulsekit/pulse/internal/analysis"
	"github.com/pulsekit/pulse/internal/models"
	"github.com/spf13/cobra"
)

var trendRange string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Longitudinal statistics over session history",
}

var statsRollingCmd = &cobra.Command{
	Use:   "rolling",
	Short: "Rolling blood pressure averages over 3-30 day windows",
	RunE: func(cmd *cobra.Command, args []string) error {
		averages := analysis.RollingAverages(tracker.MeasurementHistory(), time.Now())
		if len(averages) == 0 {
			fmt.Println("No readings in the last 30 days.")
			return nil
		}
		for _, ra := range averages {
			hr := ""
			if ra.AvgHeartRate != nil {
				hr = fmt.Sprintf("  %.0f bpm", *ra.AvgHeartRate)
			}
			cat := analysis.Classify(ra.AvgSystolic, ra.AvgDiastolic)
			fmt.Printf("%2dd  %.0f/%.0f%s  %s  (%d readings, %d sessions)\n",
				ra.WindowDays, ra.AvgSystolic, ra.AvgDiastolic, hr,
				cat.Label(), ra.ReadingCount, ra.SessionCount)
		}
		return nil
	},
}

var statsTrendCmd = &cobra.Command{
	Use:   "trend <exercise-type>",
	Short: "Weight trend for one exercise type",
	Long: `Weight trend for one exercise type over a time range.

The direction compares the first and last session's average set weight;
moves above 5 lbs in either direction count as a trend.

Examples:
  pulse stats trend bench_press
  pulse stats trend squat --range 3months`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidExerciseType(args[0]) {
			return fmt.Errorf("unknown exercise type: %s", args[0])
		}
		typ := models.ExerciseType(args[0])
		r := analysis.TimeRange(trendRange)

		t := analysis.AnalyzeTrend(tracker.WorkoutHistory(), typ, r, time.Now())
		if t.SampleCount == 0 {
			fmt.Printf("No %s sessions in range.\n", models.ExerciseCatalog[typ].Label)
			return nil
		}

		switch t.Direction {
		case analysis.TrendIncreasing:
			color.Green("▲ %s increasing", models.ExerciseCatalog[typ].Label)
		case analysis.TrendDecreasing:
			color.Red("▼ %s decreasing", models.ExerciseCatalog[typ].Label)
		default:
			color.Yellow("◆ %s stable", models.ExerciseCatalog[typ].Label)
		}
		fmt.Printf("  delta %+.1f lbs (%+.1f%%) over %d sessions, avg %.1f, max %.1f\n",
			t.WeightDelta, t.PercentImprovement, t.SampleCount, t.AvgWeight, t.MaxWeight)
		return nil
	},
}

var statsLifetimeCmd = &cobra.Command{
	Use:   "lifetime <exercise-type>",
	Short: "Lifetime stats for one exercise type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidExerciseType(args[0]) {
			return fmt.Errorf("unknown exercise type: %s", args[0])
		}
		typ := models.ExerciseType(args[0])
		st := analysis.LifetimeStats(tracker.WorkoutHistory(), typ)

		fmt.Printf("%s lifetime:\n", models.ExerciseCatalog[typ].Label)
		fmt.Printf("  sessions  %d\n", st.Sessions)
		fmt.Printf("  sets      %d\n", st.Sets)
		fmt.Printf("  reps      %d\n", st.Reps)
		if st.TotalTime > 0 {
			fmt.Printf("  time      %s\n", st.TotalTime.Round(time.Second))
		}
		if st.MaxWeight > 0 {
			fmt.Printf("  max       %.1f lbs (avg session max %.1f)\n", st.MaxWeight, st.AvgMaxWeight)
		}
		return nil
	},
}

func init() {
	statsTrendCmd.Flags().StringVar(&trendRange, "range", "month", "time range: week, month, 3months, year")
	statsCmd.AddCommand(statsRollingCmd)
	statsCmd.AddCommand(statsTrendCmd)
	statsCmd.AddCommand(statsLifetimeCmd)
}
