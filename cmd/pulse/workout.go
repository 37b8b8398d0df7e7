// ABOUTME: CLI commands for workout session lifecycle and set logging.
// ABOUTME: Workouts never auto-start; every mutation needs an explicit start.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pulsekit/pulse/internal/models"
	"github.com/spf13/cobra"
)

var (
	setReps    int
	setWeight  float64
	setSeconds int
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Track workout sessions",
	Long: `Track workout sessions made of per-exercise sub-sessions.

Examples:
  pulse workout start
  pulse workout exercise bench_press
  pulse workout set 0 --reps 8 --weight 135
  pulse workout pause
  pulse workout resume
  pulse workout complete`,
}

var workoutStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Begin a new workout session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tracker.BeginWorkout() {
			return fmt.Errorf("a workout is already in progress")
		}
		color.Green("✓ Workout started")
		return nil
	},
}

var workoutExerciseCmd = &cobra.Command{
	Use:   "exercise <type>",
	Short: "Add an exercise to the workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ := args[0]
		if !models.IsValidExerciseType(typ) {
			types := make([]string, 0, len(models.AllExerciseTypes))
			for _, t := range models.AllExerciseTypes {
				types = append(types, string(t))
			}
			return fmt.Errorf("unknown exercise type: %s\nValid types: %s", typ, strings.Join(types, ", "))
		}
		if !tracker.AddExercise(models.ExerciseType(typ)) {
			return fmt.Errorf("no workout in progress (try 'pulse workout start')")
		}
		w, _ := tracker.Workout()
		color.Green("✓ Added %s", models.ExerciseCatalog[models.ExerciseType(typ)].Label)
		fmt.Printf("  exercise index %d\n", w.TotalExercises()-1)
		return nil
	},
}

var workoutSetCmd = &cobra.Command{
	Use:   "set <exercise-index>",
	Short: "Log a set for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid exercise index: %s", args[0])
		}

		set := models.NewSet()
		if setReps > 0 {
			set.WithReps(setReps)
		}
		if setWeight > 0 {
			set.WithWeight(setWeight)
		}
		if setSeconds > 0 {
			set.WithDuration(time.Duration(setSeconds) * time.Second)
		}

		if !tracker.AddSet(idx, *set) {
			return fmt.Errorf("set rejected: bad exercise index, empty set, or workout completed")
		}
		color.Green("✓ Logged set")
		return nil
	},
}

var workoutPauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tracker.PauseWorkout() {
			return fmt.Errorf("no active workout to pause")
		}
		color.Yellow("⏸ Workout paused")
		return nil
	},
}

var workoutResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a paused workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tracker.ResumeWorkout() {
			return fmt.Errorf("no paused workout to resume")
		}
		color.Green("▶ Workout resumed")
		return nil
	},
}

var workoutCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Complete the workout and move it into history",
	RunE: func(cmd *cobra.Command, args []string) error {
		completed, ok := tracker.CompleteWorkout()
		if !ok {
			return fmt.Errorf("no workout in progress")
		}
		color.Green("✓ Workout completed")
		fmt.Printf("  %s  %d exercises, %d sets, %d reps in %s\n",
			color.New(color.Faint).Sprint(completed.ID.String()[:8]),
			completed.TotalExercises(), completed.TotalSets(), completed.TotalReps(),
			completed.Duration().Round(time.Second))
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the workout in progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, ok := tracker.Workout()
		if !ok {
			return fmt.Errorf("no workout in progress")
		}
		state := "active"
		if w.Paused {
			state = "paused"
		}
		fmt.Printf("Workout %s (%s, %s elapsed)\n",
			w.ID.String()[:8], state, w.Duration().Round(time.Second))
		for i, e := range w.Exercises {
			info := models.ExerciseCatalog[e.Type]
			fmt.Printf("  [%d] %s - %d sets", i, info.Label, len(e.Sets))
			if info.SupportsWeight && e.MaxWeight() > 0 {
				fmt.Printf(", max %.0f %s", e.MaxWeight(), info.WeightUnit)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	workoutSetCmd.Flags().IntVar(&setReps, "reps", 0, "repetitions")
	workoutSetCmd.Flags().Float64Var(&setWeight, "weight", 0, "weight in pounds")
	workoutSetCmd.Flags().IntVar(&setSeconds, "time", 0, "duration in seconds")

	workoutCmd.AddCommand(workoutStartCmd)
	workoutCmd.AddCommand(workoutExerciseCmd)
	workoutCmd.AddCommand(workoutSetCmd)
	workoutCmd.AddCommand(workoutPauseCmd)
	workoutCmd.AddCommand(workoutResumeCmd)
	workoutCmd.AddCommand(workoutCompleteCmd)
	workoutCmd.AddCommand(workoutShowCmd)
}
