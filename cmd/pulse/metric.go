// ABOUTME: CLI command for standalone health metrics.
// ABOUTME: Metrics join the current measurement session like readings do.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pulsekit/pulse/internal/models"
	"github.com/spf13/cobra"
)

var metricCmd = &cobra.Command{
	Use:   "metric <kind> <value>",
	Short: "Record a standalone health metric",
	Long: `Record a standalone health metric in the current measurement session.

Valid kinds: weight, blood_sugar, heart_rate, blood_pressure

Examples:
  pulse metric weight 180
  pulse metric blood_sugar 95`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := args[0]
		if !models.IsValidMetricKind(kind) {
			kinds := make([]string, 0, len(models.AllMetricKinds))
			for _, k := range models.AllMetricKinds {
				kinds = append(kinds, string(k))
			}
			return fmt.Errorf("unknown metric kind: %s\nValid kinds: %s", kind, strings.Join(kinds, ", "))
		}

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		m := models.NewHealthMetric(models.MetricKind(kind), value)
		if !tracker.AddMetric(*m) {
			r := models.MetricRanges[m.Kind]
			return fmt.Errorf("%s %.1f rejected: plausible range is %.0f-%.0f", kind, value, r.Min, r.Max)
		}

		color.Green("✓ Recorded %s", kind)
		fmt.Printf("  %.1f %s\n", m.Value, m.Unit)
		return nil
	},
}

var metricLatestCmd = &cobra.Command{
	Use:   "latest <kind>",
	Short: "Show the most recent metric of a kind",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := args[0]
		if !models.IsValidMetricKind(kind) {
			return fmt.Errorf("unknown metric kind: %s", kind)
		}

		m, ok := tracker.LatestMetric(models.MetricKind(kind))
		if !ok {
			fmt.Printf("No %s recorded.\n", kind)
			return nil
		}
		fmt.Printf("%s  %.1f %s  (%s)\n", kind, m.Value, m.Unit,
			m.RecordedAt.Format("2006-01-02 15:04"))
		return nil
	},
}

func init() {
	metricCmd.AddCommand(metricLatestCmd)
}
