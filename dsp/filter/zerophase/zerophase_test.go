package zerophase

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-gait/dsp/filter/design"
	"github.com/cwbudde/algo-gait/internal/testutil"
)

func TestFilter_NoSections(t *testing.T) {
	_, err := Filter(nil, make([]float64, 100))
	if !errors.Is(err, ErrNoSections) {
		t.Fatalf("err = %v, want ErrNoSections", err)
	}
}

func TestFilter_InsufficientData(t *testing.T) {
	coeffs := design.ButterworthLP(8, 4, 100)

	// padLen = 3*4 = 12, so 12 samples must be rejected and 13 accepted.
	if _, err := Filter(coeffs, make([]float64, 12)); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("12 samples: err = %v, want ErrInsufficientData", err)
	}
	if _, err := Filter(coeffs, make([]float64, 13)); err != nil {
		t.Fatalf("13 samples: unexpected err %v", err)
	}
}

func TestFilter_OutputLengthAndInputUntouched(t *testing.T) {
	coeffs := design.ButterworthLP(8, 4, 100)
	in := testutil.DeterministicSine(2, 100, 1, 200)
	orig := append([]float64(nil), in...)

	out, err := Filter(coeffs, in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("len(out)=%d, want %d", len(out), len(in))
	}
	testutil.RequireSliceNearlyEqual(t, in, orig, 0)
}

func TestFilter_ConstantSignalInvariant(t *testing.T) {
	coeffs := design.ButterworthLP(8, 4, 100)
	in := testutil.DC(3.25, 150)

	out, err := Filter(coeffs, in)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, out, in, 1e-9)
}

// A 2 Hz sinusoid is far inside an 8 Hz passband: amplitude must survive
// within 5% and peaks must not move by more than one sample.
func TestFilter_PassbandSinePreservedWithZeroPhase(t *testing.T) {
	const (
		fs     = 100.0
		fc     = 8.0
		order  = 4
		length = 500
	)
	coeffs := design.ButterworthLP(fc, order, fs)
	in := testutil.DeterministicSine(2, fs, 1, length)

	out, err := Filter(coeffs, in)
	if err != nil {
		t.Fatal(err)
	}

	inPeak, inAmp := argmaxInterior(in)
	outPeak, outAmp := argmaxInterior(out)

	if math.Abs(outAmp-inAmp) > 0.05*inAmp {
		t.Errorf("amplitude %v, want within 5%% of %v", outAmp, inAmp)
	}
	if diff := outPeak - inPeak; diff < -1 || diff > 1 {
		t.Errorf("peak moved by %d samples, want at most 1", diff)
	}
}

// Filtering an already-filtered signal must not shift events or blow up.
func TestFilter_RepeatedApplicationStable(t *testing.T) {
	const fs = 100.0
	coeffs := design.ButterworthLP(8, 4, fs)
	in := testutil.DeterministicSine(2, fs, 1, 500)

	once, err := Filter(coeffs, in)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Filter(coeffs, once)
	if err != nil {
		t.Fatal(err)
	}

	oncePeak, _ := argmaxInterior(once)
	twicePeak, twiceAmp := argmaxInterior(twice)

	if diff := twicePeak - oncePeak; diff < -1 || diff > 1 {
		t.Errorf("second pass moved peak by %d samples", diff)
	}
	if twiceAmp > 1.1 {
		t.Errorf("second pass amplitude %v, expected no growth", twiceAmp)
	}
	testutil.RequireFinite(t, twice)
}

func TestFilter_AttenuatesStopband(t *testing.T) {
	const fs = 100.0
	coeffs := design.ButterworthLP(8, 4, fs)

	// 30 Hz is deep in the stopband of an 8 Hz lowpass.
	in := testutil.DeterministicSine(30, fs, 1, 500)

	out, err := Filter(coeffs, in)
	if err != nil {
		t.Fatal(err)
	}

	_, amp := argmaxInterior(out)
	if amp > 0.01 {
		t.Errorf("stopband amplitude %v, want < 0.01", amp)
	}
}

func TestPadOddReflect(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	got := padOddReflect(x, 2)

	// Left: 2*x[0]-x[2], 2*x[0]-x[1]; right: 2*x[4]-x[3], 2*x[4]-x[2].
	want := []float64{-1, 0, 1, 2, 3, 4, 5, 6, 7}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

// argmaxInterior locates the largest value away from the slice edges, so
// boundary effects cannot masquerade as signal peaks.
func argmaxInterior(x []float64) (int, float64) {
	margin := len(x) / 10
	best := margin
	for i := margin; i < len(x)-margin; i++ {
		if x[i] > x[best] {
			best = i
		}
	}
	return best, x[best]
}
