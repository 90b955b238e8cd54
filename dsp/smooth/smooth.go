// Package smooth provides the two smoothing algorithms used to condition
// raw force-sensor readings before event detection: a centered moving
// average and a zero-phase Butterworth low-pass.
//
// Both map an input sequence to a new sequence of the same length and never
// modify the input, so raw and smoothed signals can be compared side by
// side.
package smooth

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-gait/dsp/filter/design"
	"github.com/cwbudde/algo-gait/dsp/filter/zerophase"
)

// Errors returned by smoothing operations.
var (
	ErrInvalidParameter = errors.New("smooth: invalid filter parameter")
	ErrInsufficientData = errors.New("smooth: input too short for filter")
)

// MovingAverage smooths x with a centered box kernel of the given window
// size and returns a new slice of the same length.
//
// Boundary outputs average over the overlap that fits inside the signal but
// are still divided by the full window, matching a same-length centered
// convolution: edges attenuate toward zero instead of being padded with
// synthetic samples. A window of 1 returns a copy of the input.
func MovingAverage(x []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, ErrInvalidParameter
	}

	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	// prefix[i] holds the sum of x[:i].
	prefix := make([]float64, n+1)
	for i, v := range x {
		prefix[i+1] = prefix[i] + v
	}

	half := (window - 1) / 2
	inv := 1 / float64(window)
	for i := range out {
		lo := i + half - window + 1
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > n-1 {
			hi = n - 1
		}
		out[i] = (prefix[hi+1] - prefix[lo]) * inv
	}

	return out, nil
}

// ButterworthLowpass smooths x with a zero-phase Butterworth low-pass of
// the given cutoff (Hz) and order at sampling rate fs (Hz), and returns a
// new slice of the same length.
//
// A cutoff at or above the Nyquist frequency is clamped to 99% of Nyquist
// rather than rejected; the filter silently narrows instead of failing.
// This is the only leniency: fs <= 0, fc <= 0, or order < 1 return
// ErrInvalidParameter, and inputs shorter than the filter startup length
// (three times the order) return ErrInsufficientData.
func ButterworthLowpass(x []float64, fs, fc float64, order int) ([]float64, error) {
	if fs <= 0 || fc <= 0 || order < 1 {
		return nil, ErrInvalidParameter
	}

	nyquist := fs / 2
	fcClipped := math.Min(fc, 0.99*nyquist)

	coeffs := design.ButterworthLP(fcClipped, order, fs)

	out, err := zerophase.Filter(coeffs, x)
	if err != nil {
		if errors.Is(err, zerophase.ErrInsufficientData) {
			return nil, ErrInsufficientData
		}
		return nil, err
	}

	return out, nil
}
