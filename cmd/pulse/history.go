// ABOUTME: CLI commands for browsing and pruning session history.
// ABOUTME: History entries are never edited, only deleted.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	historyWorkouts bool
	deleteDate      string
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"ls"},
	Short:   "List completed sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		if historyWorkouts {
			workouts := tracker.WorkoutHistory()
			if len(workouts) == 0 {
				fmt.Println("No workouts recorded.")
				return nil
			}
			for _, w := range workouts {
				fmt.Printf("%s  %s  %d exercises, %d sets, %d reps\n",
					faint.Sprint(w.ID.String()[:8]),
					w.StartedAt.Format("2006-01-02 15:04"),
					w.TotalExercises(), w.TotalSets(), w.TotalReps())
			}
			return nil
		}

		sessions := tracker.MeasurementHistory()
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded.")
			return nil
		}
		for i := range sessions {
			s := &sessions[i]
			fmt.Printf("%s  %s  %d readings, avg %.0f/%.0f\n",
				faint.Sprint(s.ID.String()[:8]),
				s.StartedAt.Format("2006-01-02 15:04"),
				len(s.Readings), s.AverageSystolic(), s.AverageDiastolic())
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete history entries by ID or date",
	Long: `Delete history entries: one by ID, all on a date, or everything.

Examples:
  pulse history delete 3f2a9c1e
  pulse history delete --date 2026-08-12
  pulse history delete --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		switch {
		case all:
			if historyWorkouts {
				tracker.ClearWorkouts()
			} else {
				tracker.ClearMeasurements()
			}
			color.Yellow("✗ History cleared")
			return nil

		case deleteDate != "":
			day, err := time.ParseInLocation("2006-01-02", deleteDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date (want YYYY-MM-DD): %s", deleteDate)
			}
			var n int
			if historyWorkouts {
				n = tracker.DeleteWorkoutsOn(day)
				color.Yellow("✗ Deleted %d workouts on %s", n, deleteDate)
			} else {
				n = tracker.DeleteMeasurementsOn(day)
				color.Yellow("✗ Deleted %d sessions on %s", n, deleteDate)
			}
			return nil

		case len(args) == 1:
			id, ok := resolveID(args[0])
			if !ok {
				return fmt.Errorf("no history entry matching %s", args[0])
			}
			deleted := false
			if historyWorkouts {
				deleted = tracker.DeleteWorkout(id)
			} else {
				deleted = tracker.DeleteMeasurement(id)
			}
			if !deleted {
				return fmt.Errorf("no history entry matching %s", args[0])
			}
			color.Yellow("✗ Deleted %s", args[0])
			return nil

		default:
			return fmt.Errorf("provide an ID, --date, or --all")
		}
	},
}

// resolveID matches a full UUID or an unambiguous prefix against history.
func resolveID(idOrPrefix string) (uuid.UUID, bool) {
	if id, err := uuid.Parse(idOrPrefix); err == nil {
		return id, true
	}
	var match uuid.UUID
	found := 0
	if historyWorkouts {
		for _, w := range tracker.WorkoutHistory() {
			if idOrPrefix != "" && strings.HasPrefix(w.ID.String(), idOrPrefix) {
				match = w.ID
				found++
			}
		}
	} else {
		for _, s := range tracker.MeasurementHistory() {
			if idOrPrefix != "" && strings.HasPrefix(s.ID.String(), idOrPrefix) {
				match = s.ID
				found++
			}
		}
	}
	return match, found == 1
}

func init() {
	historyCmd.PersistentFlags().BoolVarP(&historyWorkouts, "workouts", "w", false, "operate on workout history")
	historyDeleteCmd.Flags().StringVar(&deleteDate, "date", "", "delete all sessions on this date (YYYY-MM-DD)")
	historyDeleteCmd.Flags().Bool("all", false, "delete the entire history collection")
	historyCmd.AddCommand(historyDeleteCmd)
}
