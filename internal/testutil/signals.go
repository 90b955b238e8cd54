// Package testutil provides deterministic test signals and numeric
// assertion helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// RampUpDown generates a triangular force profile: a linear rise over up
// samples from 0 to peak, followed by a linear fall over down samples back
// to 0. The total length is up+down+1.
func RampUpDown(peak float64, up, down int) []float64 {
	out := make([]float64, up+down+1)
	for i := 0; i <= up; i++ {
		out[i] = peak * float64(i) / float64(up)
	}
	for i := 1; i <= down; i++ {
		out[up+i] = peak * float64(down-i) / float64(down)
	}
	return out
}

// Timebase generates length uniformly spaced timestamps at the given
// sampling rate, starting at zero.
func Timebase(sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	dt := 1 / sampleRate
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out
}
