// ABOUTME: Tests for the blood pressure category ladder.
// ABOUTME: Exercises every rung boundary, including rounding behavior.
package analysis

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		systolic  float64
		diastolic float64
		want      Category
	}{
		{"textbook normal", 110, 70, CategoryNormal},
		{"just under elevated", 119, 79, CategoryNormal},
		{"elevated systolic boundary", 120, 70, CategoryElevated},
		{"elevated upper edge", 129, 79, CategoryElevated},
		{"stage1 systolic boundary", 130, 70, CategoryStage1},
		{"stage1 diastolic boundary", 110, 80, CategoryStage1},
		{"stage2 systolic boundary", 140, 70, CategoryStage2},
		{"stage2 diastolic boundary", 110, 90, CategoryStage2},
		{"just under crisis", 179, 70, CategoryStage2},
		{"crisis systolic boundary", 180, 70, CategoryCrisis},
		{"crisis diastolic boundary", 110, 121, CategoryCrisis},
		{"crisis diastolic exact", 150, 120, CategoryCrisis},
		{"rounds up into crisis", 179.6, 70, CategoryCrisis},
		{"rounds down below crisis", 179.4, 70, CategoryStage2},
		{"rounds up into stage1 via diastolic", 110, 79.5, CategoryStage1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.systolic, tt.diastolic)
			if got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v",
					tt.systolic, tt.diastolic, got, tt.want)
			}
		})
	}
}

func TestCategoryLabels(t *testing.T) {
	labels := map[Category]string{
		CategoryNormal:   "Normal",
		CategoryElevated: "Elevated",
		CategoryStage1:   "Hypertension Stage 1",
		CategoryStage2:   "Hypertension Stage 2",
		CategoryCrisis:   "Hypertensive Crisis",
	}
	for cat, want := range labels {
		if got := cat.Label(); got != want {
			t.Errorf("%s.Label() = %q, want %q", cat, got, want)
		}
	}
}
