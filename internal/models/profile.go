// ABOUTME: User profile model synced alongside session history.
// ABOUTME: Small preference record, no credentials or identity data.
package models

import "time"

// Profile holds user preferences pushed and pulled with the history collections.
type Profile struct {
	Name       string
	BirthYear  int
	WeightUnit string
	UpdatedAt  time.Time
}

// DefaultProfile returns a profile with default preferences.
func DefaultProfile() Profile {
	return Profile{WeightUnit: "lbs"}
}
