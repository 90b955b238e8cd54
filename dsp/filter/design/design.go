// Package design provides digital low-pass filter coefficient design.
//
// Filters are returned as cascades of second-order sections for numerical
// robustness at higher orders.
package design

import (
	"math"

	"github.com/cwbudde/algo-gait/dsp/filter/biquad"
)

// Lowpass designs a lowpass biquad at freq (Hz) with quality factor q,
// using the RBJ cookbook formula. Returns zero coefficients if the
// parameters are outside the valid digital range.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// normalizedW0 converts freq (Hz) to a normalized angular frequency in
// (0, pi). Returns false if freq or sampleRate is outside the valid range.
func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

// normalizedQ guards against non-positive quality factors.
func normalizedQ(q float64) float64 {
	if q <= 0 {
		return 1 / math.Sqrt2
	}

	return q
}

// normalizeBiquad divides all coefficients by a0 so the stored form has
// a0 = 1.
func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	inv := 1 / a0

	return biquad.Coefficients{
		B0: b0 * inv,
		B1: b1 * inv,
		B2: b2 * inv,
		A1: a1 * inv,
		A2: a2 * inv,
	}
}
