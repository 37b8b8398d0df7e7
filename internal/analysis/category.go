// ABOUTME: Fixed-threshold blood pressure category classifier.
// ABOUTME: Ladder order is load-bearing: first match wins.
package analysis

import "math"

// Category is a blood pressure classification band.
type Category string

const (
	CategoryCrisis   Category = "crisis"
	CategoryStage2   Category = "stage2"
	CategoryStage1   Category = "stage1"
	CategoryElevated Category = "elevated"
	CategoryNormal   Category = "normal"
)

// Label returns a human-readable name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryCrisis:
		return "Hypertensive Crisis"
	case CategoryStage2:
		return "Hypertension Stage 2"
	case CategoryStage1:
		return "Hypertension Stage 1"
	case CategoryElevated:
		return "Elevated"
	default:
		return "Normal"
	}
}

// Classify maps rounded systolic/diastolic values onto the category ladder.
// Thresholds are evaluated top-down; later rungs subsume earlier logical
// ranges, so the order must not be rearranged.
func Classify(systolic, diastolic float64) Category {
	sys := int(math.Round(systolic))
	dia := int(math.Round(diastolic))

	switch {
	case sys >= 180 || dia >= 120:
		return CategoryCrisis
	case sys >= 140 || dia >= 90:
		return CategoryStage2
	case sys >= 130 || dia >= 80:
		return CategoryStage1
	case sys >= 120 || dia >= 80:
		return CategoryElevated
	default:
		return CategoryNormal
	}
}
