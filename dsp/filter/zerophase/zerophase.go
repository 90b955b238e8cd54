// Package zerophase applies an IIR cascade forward and backward in time,
// producing filtered output with zero net phase shift.
//
// Causal IIR filtering delays every frequency component by the filter's
// group delay, which shifts event timing in the output. Running the same
// filter a second time over the reversed signal cancels the phase response,
// so features in the output stay aligned with the input. The price is a
// squared magnitude response and the loss of causality, which is fine for
// offline analysis.
package zerophase

import (
	"errors"

	"github.com/cwbudde/algo-gait/dsp/core"
	"github.com/cwbudde/algo-gait/dsp/filter/biquad"
)

// Errors returned by zero-phase filtering.
var (
	ErrNoSections       = errors.New("zerophase: no filter sections")
	ErrInsufficientData = errors.New("zerophase: input shorter than filter startup length")
)

// Filter runs x through the cascade described by coeffs, forward and then
// backward, and returns a new slice of the same length. The input is not
// modified.
//
// Both ends of the signal are extended by an odd reflection of padLen =
// 3 * order samples before filtering, and each pass starts from the DC
// steady state of the first padded sample. Together these suppress the
// startup transients the two passes would otherwise smear into the signal
// edges. Inputs with len(x) <= padLen return ErrInsufficientData: the
// reflection would run out of samples and the result would be dominated by
// edge effects.
func Filter(coeffs []biquad.Coefficients, x []float64) ([]float64, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoSections
	}

	chain := biquad.NewChain(coeffs)

	padLen := 3 * chain.Order()
	if len(x) <= padLen {
		return nil, ErrInsufficientData
	}

	buf := padOddReflect(x, padLen)

	// Forward pass.
	chain.PrimeDC(buf[0])
	chain.ProcessBlock(buf)

	// Backward pass.
	core.Reverse(buf)
	chain.PrimeDC(buf[0])
	chain.ProcessBlock(buf)
	core.Reverse(buf)

	out := make([]float64, len(x))
	copy(out, buf[padLen:padLen+len(x)])

	return out, nil
}

// padOddReflect returns x extended on both ends by padLen samples of odd
// reflection: the extension mirrors the signal through its end point, which
// preserves both the value and the slope at the boundary.
func padOddReflect(x []float64, padLen int) []float64 {
	n := len(x)
	buf := make([]float64, n+2*padLen)

	for i := 0; i < padLen; i++ {
		buf[i] = 2*x[0] - x[padLen-i]
	}
	copy(buf[padLen:], x)
	for i := 0; i < padLen; i++ {
		buf[padLen+n+i] = 2*x[n-1] - x[n-2-i]
	}

	return buf
}
