// Package force computes summary statistics of a force recording.
//
// The values here support quick sanity checks and report output next to the
// event detection results: peak loading, signal energy, and the impulse
// (force-time integral) over the trial.
package force

import (
	"errors"
	"math"
)

// ErrLengthMismatch is returned when time and force sequences differ in length.
var ErrLengthMismatch = errors.New("force: time and force length mismatch")

// Stats holds force-signal statistics computed in a single pass.
type Stats struct {
	Length int
	Mean   float64
	RMS    float64
	Max    float64
	MaxPos int
	Min    float64
	MinPos int
	Peak   float64 // max(|max|, |min|)
	Range  float64 // max - min
	Energy float64 // sum of squares
}

// Calculate computes all statistics in one pass over the signal.
// An empty signal yields a zero-valued Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		sum    float64
		sumSq  float64
		maxVal = signal[0]
		maxPos int
		minVal = signal[0]
		minPos int
	)

	for i, x := range signal {
		sum += x
		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	return Stats{
		Length: n,
		Mean:   sum / float64(n),
		RMS:    math.Sqrt(sumSq / float64(n)),
		Max:    maxVal,
		MaxPos: maxPos,
		Min:    minVal,
		MinPos: minPos,
		Peak:   math.Max(math.Abs(maxVal), math.Abs(minVal)),
		Range:  maxVal - minVal,
		Energy: sumSq,
	}
}

// Impulse integrates force over time with the trapezoidal rule, giving the
// force-time integral in Newton-seconds. Sequences shorter than two samples
// integrate to zero.
func Impulse(time, force []float64) (float64, error) {
	if len(time) != len(force) {
		return 0, ErrLengthMismatch
	}

	total := 0.0
	for i := 1; i < len(force); i++ {
		dt := time[i] - time[i-1]
		total += 0.5 * (force[i] + force[i-1]) * dt
	}

	return total, nil
}
