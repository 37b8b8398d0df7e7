// ABOUTME: Tests for the backup bundle and markdown rendering.
// ABOUTME: Round trips compare element-wise at second precision.
package export

import (
	"strings"
	"testing"
	"time"

	"github.com/pulsekit/pulse/internal/models"
	"github.com/pulsekit/pulse/internal/session"
)

func sampleHistory(t *testing.T) ([]session.MeasurementSession, []session.WorkoutSession) {
	t.Helper()
	m := session.NewMeasurementSession()
	m.Start()
	m.AddReading(*models.NewReading(150, 95).WithHeartRate(72))
	m.AddMetric(*models.NewHealthMetric(models.MetricWeight, 180))
	m.Complete()

	w := session.NewWorkoutSession()
	w.Start()
	w.AddExercise(models.ExerciseBenchPress)
	w.AddSet(0, *models.NewSet().WithReps(8).WithWeight(135))
	w.Complete()

	return []session.MeasurementSession{*m}, []session.WorkoutSession{*w}
}

func TestBundleRoundTrip(t *testing.T) {
	measurements, workouts := sampleHistory(t)
	profile := models.Profile{Name: "Jordan", BirthYear: 1985, WeightUnit: "kg", UpdatedAt: time.Now()}

	data, err := NewBundle(measurements, workouts, profile).JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	parsed, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if parsed.FormatVersion != FormatVersion {
		t.Errorf("FormatVersion = %q, want %q", parsed.FormatVersion, FormatVersion)
	}

	gotM, gotW, gotP, err := parsed.Sessions()
	if err != nil {
		t.Fatalf("Sessions() error = %v", err)
	}
	if len(gotM) != 1 || len(gotW) != 1 {
		t.Fatalf("got %d measurements and %d workouts, want 1 and 1", len(gotM), len(gotW))
	}

	if gotM[0].ID != measurements[0].ID {
		t.Errorf("measurement ID = %v, want %v", gotM[0].ID, measurements[0].ID)
	}
	if len(gotM[0].Readings) != 1 || gotM[0].Readings[0].Systolic != 150 {
		t.Error("readings must survive the round trip")
	}
	if len(gotM[0].Metrics) != 1 || gotM[0].Metrics[0].Value != 180 {
		t.Error("metrics must survive the round trip")
	}
	wantStarted := measurements[0].StartedAt.Truncate(time.Second)
	if !gotM[0].StartedAt.Equal(wantStarted) {
		t.Errorf("StartedAt = %v, want %v to second precision", gotM[0].StartedAt, wantStarted)
	}

	if gotW[0].ID != workouts[0].ID || !gotW[0].Completed {
		t.Error("workout identity and completion must survive the round trip")
	}
	if gotW[0].TotalReps() != 8 {
		t.Errorf("TotalReps() = %d, want 8", gotW[0].TotalReps())
	}

	if gotP.Name != "Jordan" || gotP.BirthYear != 1985 || gotP.WeightUnit != "kg" {
		t.Errorf("profile = %+v, want the original back", gotP)
	}
}

func TestBundleYAML(t *testing.T) {
	measurements, workouts := sampleHistory(t)
	data, err := NewBundle(measurements, workouts, models.DefaultProfile()).YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "format_version:") {
		t.Error("YAML output should carry format_version")
	}
	if !strings.Contains(out, "measurement_sessions:") || !strings.Contains(out, "workout_sessions:") {
		t.Error("YAML output should carry both collections")
	}
}

func TestBundleEmptyHistory(t *testing.T) {
	data, err := NewBundle(nil, nil, models.DefaultProfile()).JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	parsed, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	gotM, gotW, _, err := parsed.Sessions()
	if err != nil {
		t.Fatalf("Sessions() error = %v", err)
	}
	if len(gotM) != 0 || len(gotW) != 0 {
		t.Error("empty collections must stay empty")
	}
	if !strings.Contains(string(data), `"measurement_sessions": []`) {
		t.Error("empty collections must encode as arrays, not null")
	}
}

func TestParseJSONRejectsGarbage(t *testing.T) {
	if _, err := ParseJSON([]byte("{oops")); err == nil {
		t.Error("malformed JSON must be rejected")
	}
}

func TestMarkdown(t *testing.T) {
	measurements, workouts := sampleHistory(t)
	out := Markdown(measurements, workouts)

	if !strings.Contains(out, "## Measurement Sessions") {
		t.Error("markdown should have a measurement section")
	}
	if !strings.Contains(out, "150/95") {
		t.Error("markdown should show the average blood pressure")
	}
	if !strings.Contains(out, "Hypertension Stage 2") {
		t.Error("markdown should label the blood pressure category")
	}
	if !strings.Contains(out, "72 bpm") {
		t.Error("markdown should show the average heart rate")
	}
	if !strings.Contains(out, "## Workouts") {
		t.Error("markdown should have a workout section")
	}
	if !strings.Contains(out, "Bench Press") {
		t.Error("markdown should name exercises by label")
	}
}

func TestMarkdownEmptyHistory(t *testing.T) {
	out := Markdown(nil, nil)
	if strings.Contains(out, "## Measurement Sessions") || strings.Contains(out, "## Workouts") {
		t.Error("empty collections should not render sections")
	}
	if !strings.Contains(out, "# Pulse Export") {
		t.Error("the header should render regardless")
	}
}
