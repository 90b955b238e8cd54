// Package cadence estimates the dominant step frequency of a force
// recording from its magnitude spectrum.
//
// The estimate is a coarse plausibility check next to the slope-based event
// detection in measure/gait: a stance recording dominated by a 2 Hz
// component is consistent with a normal walking cadence of ~120 steps/min.
package cadence

import (
	"errors"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-gait/dsp/window"
)

// Errors returned by cadence analysis.
var (
	ErrInvalidSampleRate = errors.New("cadence: sample rate must be positive")
	ErrInvalidBand       = errors.New("cadence: invalid search band")
	ErrInsufficientData  = errors.New("cadence: input too short for spectral analysis")
)

// Default search band for human step frequencies, Hz.
const (
	DefaultMinFrequency = 0.3
	DefaultMaxFrequency = 4.0
)

// minSamples is the shortest input worth transforming; below this the bin
// spacing is too coarse to resolve anything inside the search band.
const minSamples = 32

// Result holds the outcome of one spectral cadence estimate.
type Result struct {
	StepFrequency float64 // dominant frequency inside the band, Hz
	PeakMagnitude float64 // window-corrected amplitude of that component
	Resolution    float64 // bin spacing of the underlying spectrum, Hz
}

// Analyzer computes cadence estimates from force data.
type Analyzer struct {
	SampleRate   float64
	MinFrequency float64 // lower edge of the search band, Hz
	MaxFrequency float64 // upper edge of the search band, Hz
}

// NewAnalyzer creates a cadence analyzer with the default search band.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{
		SampleRate:   sampleRate,
		MinFrequency: DefaultMinFrequency,
		MaxFrequency: DefaultMaxFrequency,
	}
}

// Analyze estimates the dominant step frequency of force.
//
// The signal is de-meaned, Hann-windowed, zero-padded to a power of two,
// and transformed; the largest magnitude bin inside the search band is
// refined by parabolic interpolation. The mean removal keeps the body
// weight plateau from leaking across the low end of the band.
func (a *Analyzer) Analyze(force []float64) (Result, error) {
	if a.SampleRate <= 0 {
		return Result{}, ErrInvalidSampleRate
	}
	if a.MinFrequency <= 0 || a.MaxFrequency <= a.MinFrequency {
		return Result{}, ErrInvalidBand
	}
	if len(force) < minSamples {
		return Result{}, ErrInsufficientData
	}

	mean := 0.0
	for _, v := range force {
		mean += v
	}
	mean /= float64(len(force))

	coeffs := window.Generate(window.TypeHann, len(force))

	fftSize := nextPowerOf2(len(force))
	inData := make([]complex128, fftSize)
	for i, v := range force {
		inData[i] = complex((v-mean)*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, err
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Result{}, err
	}

	// Magnitudes of the non-negative-frequency bins.
	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := 0; i < half; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mags := make([]float64, half)
	vecmath.Magnitude(mags, re, im)

	binHz := a.SampleRate / float64(fftSize)

	lo := int(math.Ceil(a.MinFrequency / binHz))
	hi := int(math.Floor(a.MaxFrequency / binHz))
	if lo < 1 {
		lo = 1
	}
	if hi > half-1 {
		hi = half - 1
	}
	if lo >= hi {
		return Result{}, ErrInsufficientData
	}

	peak := lo
	for i := lo + 1; i <= hi; i++ {
		if mags[i] > mags[peak] {
			peak = i
		}
	}

	freq := (float64(peak) + interpolateOffset(mags, peak)) * binHz

	// Undo the window's coherent gain and the one-sided spectrum halving
	// so PeakMagnitude approximates the component amplitude.
	gain := window.CoherentGain(coeffs) * float64(len(force))
	amp := 0.0
	if gain > 0 {
		amp = 2 * mags[peak] / gain
	}

	return Result{
		StepFrequency: freq,
		PeakMagnitude: amp,
		Resolution:    binHz,
	}, nil
}

// interpolateOffset refines a peak position by fitting a parabola through
// the bin and its neighbors. Returns a fractional offset in [-0.5, 0.5].
func interpolateOffset(mags []float64, peak int) float64 {
	if peak <= 0 || peak >= len(mags)-1 {
		return 0
	}

	l := mags[peak-1]
	c := mags[peak]
	r := mags[peak+1]

	den := l - 2*c + r
	if den == 0 {
		return 0
	}

	offset := 0.5 * (l - r) / den
	if offset < -0.5 {
		offset = -0.5
	}
	if offset > 0.5 {
		offset = 0.5
	}

	return offset
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
