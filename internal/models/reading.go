// ABOUTME: Reading model for a single blood pressure measurement.
// ABOUTME: Readings are immutable and owned by exactly one measurement session.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Reading represents one blood pressure measurement. Heart rate is optional
// because not every cuff reports it.
type Reading struct {
	ID         uuid.UUID
	Systolic   int
	Diastolic  int
	HeartRate  *int
	RecordedAt time.Time
}

// NewReading creates a Reading with a generated UUID and current timestamp.
func NewReading(systolic, diastolic int) *Reading {
	return &Reading{
		ID:         uuid.New(),
		Systolic:   systolic,
		Diastolic:  diastolic,
		RecordedAt: time.Now(),
	}
}

// WithHeartRate sets the optional heart rate.
func (r *Reading) WithHeartRate(bpm int) *Reading {
	r.HeartRate = &bpm
	return r
}

// WithRecordedAt sets a custom timestamp.
func (r *Reading) WithRecordedAt(t time.Time) *Reading {
	r.RecordedAt = t
	return r
}
