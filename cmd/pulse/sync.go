// ABOUTME: CLI commands for pushing and pulling history via Charm Cloud.
// ABOUTME: Whole-collection replication, last writer wins.
package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/pulsekit/pulse/internal/remote"
	"github.com/pulsekit/pulse/internal/store"
	syncengine "github.com/pulsekit/pulse/internal/sync"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync history with Charm Cloud",
	Long: `Sync session history with Charm Cloud.

Collections are replicated whole: a push replaces the remote copy of each
collection, a pull replaces the local copy. Last writer wins; there is no
per-record merge.

  pulse sync push      # Replace remote collections with local state
  pulse sync pull      # Replace local collections with remote state
  pulse sync status    # Per-collection sync state and account link`,
}

// openEngine builds a sync engine over the Charm remote. Callers own the
// returned CharmStore and must close it.
func openEngine() (*syncengine.Engine, *remote.CharmStore, error) {
	cs, err := remote.OpenCharm()
	if err != nil {
		return nil, nil, fmt.Errorf("open charm remote: %w", err)
	}
	return syncengine.NewEngine(cs, dataDB, cfg.SyncTimeout(), logger), cs, nil
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push local history to the cloud",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cs, err := openEngine()
		if err != nil {
			return err
		}
		defer cs.Close()

		// OnLinked checks the account link before fanning out the pushes.
		done := make(chan error, 1)
		engine.OnLinked(cmd.Context(), func(err error) { done <- err })
		if err := <-done; err != nil {
			if errors.Is(err, remote.ErrNotLinked) {
				return fmt.Errorf("not linked to a Charm account (run 'charm link' first)")
			}
			return fmt.Errorf("push failed: %w", err)
		}
		color.Green("✓ Pushed %d collections", len(store.Collections))
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace local history from the cloud",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cs, err := openEngine()
		if err != nil {
			return err
		}
		defer cs.Close()

		if !cs.Linked(cmd.Context()) {
			return fmt.Errorf("not linked to a Charm account (run 'charm link' first)")
		}

		done := make(chan error, 1)
		engine.PullAll(func(err error) { done <- err })
		if err := <-done; err != nil {
			return fmt.Errorf("pull failed: %w", err)
		}
		color.Green("✓ Pulled %d collections", len(store.Collections))
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := remote.OpenCharm()
		if err != nil {
			return fmt.Errorf("open charm remote: %w", err)
		}
		defer cs.Close()

		id, err := cs.ID(context.Background())
		if err != nil {
			color.Yellow("Not linked to a Charm account")
			return nil
		}
		color.Green("✓ Linked as %s", id)

		engine := syncengine.NewEngine(cs, dataDB, cfg.SyncTimeout(), logger)
		for _, c := range store.Collections {
			st := engine.Status(c)
			fmt.Printf("  %-22s %s\n", c, st.State)
		}
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
	syncCmd.AddCommand(syncStatusCmd)
}
