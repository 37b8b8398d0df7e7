// ABOUTME: CLI commands for backup bundle export and import.
// ABOUTME: Supports JSON, YAML, and Markdown output formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pulsekit/pulse/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history as a backup bundle",
	Long: `Export session history and profile as a single backup document.

Formats:
  json      Backup bundle suitable for re-import (default)
  yaml      Same bundle as YAML
  markdown  Human-readable summary (not importable)

Examples:
  pulse export -o backup.json
  pulse export --format markdown -o summary.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := dataDB.LoadProfile()
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		var data []byte
		switch exportFormat {
		case "json":
			bundle := export.NewBundle(tracker.MeasurementHistory(), tracker.WorkoutHistory(), profile)
			data, err = bundle.JSON()
		case "yaml":
			bundle := export.NewBundle(tracker.MeasurementHistory(), tracker.WorkoutHistory(), profile)
			data, err = bundle.YAML()
		case "markdown", "md":
			data = []byte(export.Markdown(tracker.MeasurementHistory(), tracker.WorkoutHistory()))
		default:
			return fmt.Errorf("unknown format: %s (want json, yaml, or markdown)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a backup bundle, replacing local history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		bundle, err := export.ParseJSON(data)
		if err != nil {
			return fmt.Errorf("parse bundle: %w", err)
		}
		measurements, workouts, profile, err := bundle.Sessions()
		if err != nil {
			return fmt.Errorf("decode bundle: %w", err)
		}

		tracker.ReplaceHistory(measurements, workouts)
		if err := dataDB.SaveProfile(profile); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		color.Green("✓ Imported %d sessions and %d workouts from %s",
			len(measurements), len(workouts), args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json, yaml, markdown")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
}
