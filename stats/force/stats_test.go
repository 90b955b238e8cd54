package force

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-gait/internal/testutil"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestCalculate_KnownValues(t *testing.T) {
	s := Calculate([]float64{1, -2, 3, 0})

	if s.Length != 4 {
		t.Errorf("Length=%d", s.Length)
	}
	if !almostEqual(s.Mean, 0.5, 1e-12) {
		t.Errorf("Mean=%v", s.Mean)
	}
	if !almostEqual(s.RMS, math.Sqrt(14.0/4.0), 1e-12) {
		t.Errorf("RMS=%v", s.RMS)
	}
	if s.Max != 3 || s.MaxPos != 2 {
		t.Errorf("Max=%v at %d", s.Max, s.MaxPos)
	}
	if s.Min != -2 || s.MinPos != 1 {
		t.Errorf("Min=%v at %d", s.Min, s.MinPos)
	}
	if s.Peak != 3 {
		t.Errorf("Peak=%v", s.Peak)
	}
	if s.Range != 5 {
		t.Errorf("Range=%v", s.Range)
	}
	if !almostEqual(s.Energy, 14, 1e-12) {
		t.Errorf("Energy=%v", s.Energy)
	}
}

func TestCalculate_Empty(t *testing.T) {
	if s := Calculate(nil); s != (Stats{}) {
		t.Errorf("empty signal: %+v", s)
	}
}

func TestCalculate_ConstantSignal(t *testing.T) {
	s := Calculate(testutil.DC(-1.5, 64))
	if s.Mean != -1.5 || s.Max != -1.5 || s.Min != -1.5 || s.Range != 0 {
		t.Errorf("constant signal: %+v", s)
	}
	if !almostEqual(s.RMS, 1.5, 1e-12) {
		t.Errorf("RMS=%v", s.RMS)
	}
	if s.Peak != 1.5 {
		t.Errorf("Peak=%v", s.Peak)
	}
}

func TestImpulse_ConstantForce(t *testing.T) {
	// 10 N over 1 s integrates to 10 Ns regardless of sampling density.
	for _, n := range []int{11, 101, 1001} {
		time := make([]float64, n)
		for i := range time {
			time[i] = float64(i) / float64(n-1)
		}
		got, err := Impulse(time, testutil.DC(10, n))
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(got, 10, 1e-9) {
			t.Errorf("n=%d: impulse %v, want 10", n, got)
		}
	}
}

func TestImpulse_Triangle(t *testing.T) {
	// A triangle peaking at 100 N over 1 s integrates to 50 Ns, and the
	// trapezoidal rule is exact for piecewise-linear signals.
	force := testutil.RampUpDown(100, 50, 50)
	time := testutil.Timebase(100, len(force))

	got, err := Impulse(time, force)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got, 50, 1e-9) {
		t.Errorf("impulse %v, want 50", got)
	}
}

func TestImpulse_Errors(t *testing.T) {
	if _, err := Impulse([]float64{0, 1}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
	got, err := Impulse([]float64{0}, []float64{5})
	if err != nil || got != 0 {
		t.Errorf("single sample: %v, %v", got, err)
	}
}
