// Package fsr loads and validates force-sensitive-resistor recordings.
//
// A recording is a pair of index-aligned sequences: timestamps in seconds
// and force readings (assumed Newtons). Validation happens eagerly at load
// time so downstream stages can rely on both columns being present, numeric,
// and equally long.
package fsr

import (
	"errors"

	"github.com/cwbudde/algo-gait/dsp/core"
)

// Errors returned when loading or deriving quantities from a trial.
var (
	ErrDataFormat       = errors.New("fsr: malformed input data")
	ErrInsufficientData = errors.New("fsr: not enough samples")
	ErrInvalidSampling  = errors.New("fsr: non-positive or non-finite sampling rate")
)

// Trial holds one recorded stance trial: timestamps and force readings of
// equal length. Fields are never mutated by the analysis packages; every
// processing stage returns new slices.
type Trial struct {
	Time  []float64 // seconds, ascending
	Force []float64 // Newtons
}

// Len returns the number of samples in the trial.
func (t *Trial) Len() int {
	return len(t.Force)
}

// SampleRate estimates the trial's sampling frequency in Hz as the
// reciprocal of the mean inter-sample interval.
//
// Returns ErrInsufficientData for fewer than two samples and
// ErrInvalidSampling when the mean interval is non-positive or the
// resulting rate is non-finite (duplicate or non-monotonic timestamps).
func (t *Trial) SampleRate() (float64, error) {
	return SampleRate(t.Time)
}

// SampleRate estimates the sampling frequency of a timestamp sequence.
// See Trial.SampleRate.
func SampleRate(time []float64) (float64, error) {
	if len(time) < 2 {
		return 0, ErrInsufficientData
	}

	sum := 0.0
	for i := 1; i < len(time); i++ {
		sum += time[i] - time[i-1]
	}
	meanDt := sum / float64(len(time)-1)

	if meanDt <= 0 {
		return 0, ErrInvalidSampling
	}

	fs := 1 / meanDt
	if !core.IsFinite(fs) || fs <= 0 {
		return 0, ErrInvalidSampling
	}

	return fs, nil
}
