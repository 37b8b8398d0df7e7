// ABOUTME: CLI commands for viewing and updating the user profile.
// ABOUTME: The profile syncs alongside the history collections.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	profileName      string
	profileBirthYear int
	profileUnit      string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := dataDB.LoadProfile()
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		changed := false
		if profileName != "" {
			p.Name = profileName
			changed = true
		}
		if profileBirthYear > 0 {
			p.BirthYear = profileBirthYear
			changed = true
		}
		if profileUnit != "" {
			if profileUnit != "lbs" && profileUnit != "kg" {
				return fmt.Errorf("unknown weight unit: %s (want lbs or kg)", profileUnit)
			}
			p.WeightUnit = profileUnit
			changed = true
		}

		if changed {
			p.UpdatedAt = time.Now()
			if err := dataDB.SaveProfile(p); err != nil {
				return fmt.Errorf("save profile: %w", err)
			}
			color.Green("✓ Profile updated")
			return nil
		}

		name := p.Name
		if name == "" {
			name = "(unset)"
		}
		fmt.Printf("Name:        %s\n", name)
		if p.BirthYear > 0 {
			fmt.Printf("Birth year:  %d\n", p.BirthYear)
		}
		fmt.Printf("Weight unit: %s\n", p.WeightUnit)
		return nil
	},
}

func init() {
	profileCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileCmd.Flags().IntVar(&profileBirthYear, "birth-year", 0, "birth year")
	profileCmd.Flags().StringVar(&profileUnit, "unit", "", "weight unit: lbs or kg")
}
