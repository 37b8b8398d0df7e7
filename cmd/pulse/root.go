// ABOUTME: Root Cobra command for pulse CLI.
// ABOUTME: Opens config, store, and tracker in PersistentPreRunE.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pulsekit/pulse/internal/config"
	"github.com/pulsekit/pulse/internal/session"
	"github.com/pulsekit/pulse/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	dataDB  *store.Store
	tracker *session.Tracker
	logger  *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Personal blood pressure and workout session tracker",
	Long: `Pulse records blood pressure readings, standalone health metrics, and
structured workouts, grouped into sessions with longitudinal statistics.

QUICK START:

  $ pulse bp 120 80 --hr 72          # Log a reading (auto-starts a session)
  $ pulse bp complete                # Finalize the session into history
  $ pulse metric weight 180          # Log a standalone metric
  $ pulse stats rolling              # Rolling BP averages over 3-30 days

WORKOUTS:

  $ pulse workout start                      # Begin a workout
  $ pulse workout exercise bench_press       # Add an exercise
  $ pulse workout set 0 --reps 8 --weight 135
  $ pulse workout complete                   # Finalize into history
  $ pulse stats trend bench_press --range month

SYNC:

  History syncs through Charm Cloud as whole collections, last writer wins.

  $ pulse sync push      # Push local history to the cloud
  $ pulse sync pull      # Replace local history from the cloud
  $ pulse sync status    # Per-collection sync state

DATA STORAGE:

  Collections are stored as JSON blobs under ~/.local/share/pulse, in a
  Badger store by default ("backend": "sqlite" in config.json switches).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel, Prefix: "pulse"})

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dataDB, err = cfg.OpenStore(logger)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		tracker, err = session.NewTracker(cfg.SessionConfig(), dataDB, logger)
		if err != nil {
			_ = dataDB.Close()
			return fmt.Errorf("load tracker: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dataDB != nil {
			return dataDB.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(bpCmd)
	rootCmd.AddCommand(metricCmd)
	rootCmd.AddCommand(workoutCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(profileCmd)
}
