// ABOUTME: CLI commands for blood pressure readings and measurement sessions.
// ABOUTME: Adding a reading auto-starts a session per the tracker policy.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/pulsekit/pulse/internal/analysis"
	"github.com/pulsekit/pulse/internal/models"
	"github.com/spf13/cobra"
)

var bpHeartRate int

var bpCmd = &cobra.Command{
	Use:   "bp <systolic> <diastolic>",
	Short: "Record a blood pressure reading",
	Long: `Record a blood pressure reading in the current measurement session.
If no session is active, one is started automatically.

Examples:
  pulse bp 120 80
  pulse bp 130 85 --hr 72
  pulse bp complete`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid systolic value: %s", args[0])
		}
		dia, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid diastolic value: %s", args[1])
		}

		r := models.NewReading(sys, dia)
		if bpHeartRate > 0 {
			r.WithHeartRate(bpHeartRate)
		}

		if !tracker.AddReading(*r) {
			return fmt.Errorf("reading %d/%d rejected: out of plausible range or session full", sys, dia)
		}

		cat := analysis.Classify(float64(sys), float64(dia))
		color.Green("✓ Recorded %d/%d", sys, dia)
		fmt.Printf("  %s\n", cat.Label())
		return nil
	},
}

var bpStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a measurement session",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker.StartMeasurement()
		color.Green("✓ Session started")
		return nil
	},
}

var bpStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the session without completing it",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker.StopMeasurement()
		color.Yellow("✗ Session stopped")
		return nil
	},
}

var bpCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Complete the session and move it into history",
	RunE: func(cmd *cobra.Command, args []string) error {
		completed, ok := tracker.CompleteMeasurement()
		if !ok {
			return fmt.Errorf("no session in progress")
		}
		color.Green("✓ Session completed")
		fmt.Printf("  %s  %d readings, avg %.0f/%.0f\n",
			color.New(color.Faint).Sprint(completed.ID.String()[:8]),
			len(completed.Readings),
			completed.AverageSystolic(), completed.AverageDiastolic())
		return nil
	},
}

var bpShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cur := tracker.Current()
		state := "inactive"
		if cur.Active {
			state = "active"
		}
		fmt.Printf("Session %s (%s)\n", cur.ID.String()[:8], state)
		for i, r := range cur.Readings {
			hr := ""
			if r.HeartRate != nil {
				hr = fmt.Sprintf("  %d bpm", *r.HeartRate)
			}
			fmt.Printf("  [%d] %s  %d/%d%s\n", i,
				r.RecordedAt.Format("15:04"), r.Systolic, r.Diastolic, hr)
		}
		for i, m := range cur.Metrics {
			fmt.Printf("  [%d] %s  %s %.1f %s\n", i,
				m.RecordedAt.Format("15:04"), m.Kind, m.Value, m.Unit)
		}
		if len(cur.Readings) > 0 {
			fmt.Printf("  avg %.0f/%.0f\n", cur.AverageSystolic(), cur.AverageDiastolic())
		}
		return nil
	},
}

var bpLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent reading",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, ok := tracker.LatestReading()
		if !ok {
			fmt.Println("No readings recorded.")
			return nil
		}
		hr := ""
		if r.HeartRate != nil {
			hr = fmt.Sprintf("  %d bpm", *r.HeartRate)
		}
		fmt.Printf("%s  %d/%d%s  %s\n",
			r.RecordedAt.Format("2006-01-02 15:04"), r.Systolic, r.Diastolic, hr,
			analysis.Classify(float64(r.Systolic), float64(r.Diastolic)).Label())
		return nil
	},
}

var bpRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a reading from the current session by index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index: %s", args[0])
		}
		if !tracker.RemoveReading(i) {
			return fmt.Errorf("no reading at index %d", i)
		}
		color.Yellow("✗ Removed reading %d", i)
		return nil
	},
}

func init() {
	bpCmd.Flags().IntVar(&bpHeartRate, "hr", 0, "heart rate in bpm")
	bpCmd.AddCommand(bpStartCmd)
	bpCmd.AddCommand(bpStopCmd)
	bpCmd.AddCommand(bpCompleteCmd)
	bpCmd.AddCommand(bpShowCmd)
	bpCmd.AddCommand(bpLatestCmd)
	bpCmd.AddCommand(bpRemoveCmd)
}
