package biquad

import (
	"math"
	"testing"
)

// passthrough is a unity-gain section.
var passthrough = Coefficients{B0: 1}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestSection_Passthrough(t *testing.T) {
	s := NewSection(passthrough)
	for _, x := range []float64{0, 1, -2.5, 3.75} {
		if got := s.ProcessSample(x); got != x {
			t.Fatalf("ProcessSample(%v) = %v", x, got)
		}
	}
}

func TestSection_ProcessBlockMatchesPerSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.25}

	input := []float64{1, 0.5, -0.25, 0, 2, -1, 0.75, 0.1}

	perSample := NewSection(c)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = perSample.ProcessSample(x)
	}

	block := NewSection(c)
	buf := append([]float64(nil), input...)
	block.ProcessBlock(buf)

	for i := range buf {
		if !almostEqual(buf[i], want[i], 1e-15) {
			t.Fatalf("index %d: block=%v, sample=%v", i, buf[i], want[i])
		}
	}
}

func TestSection_ImpulseResponseFirstSamples(t *testing.T) {
	// y[0] = B0, y[1] = B1 - A1*B0 for a unit impulse from zero state.
	c := Coefficients{B0: 0.3, B1: 0.6, B2: 0.3, A1: -0.4, A2: 0.2}
	s := NewSection(c)

	y0 := s.ProcessSample(1)
	y1 := s.ProcessSample(0)

	if !almostEqual(y0, c.B0, 1e-15) {
		t.Errorf("y[0] = %v, want %v", y0, c.B0)
	}
	if want := c.B1 - c.A1*c.B0; !almostEqual(y1, want, 1e-15) {
		t.Errorf("y[1] = %v, want %v", y1, want)
	}
}

func TestSection_PrimeDC(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.3}
	s := NewSection(c)

	const x = 1.5
	want := s.PrimeDC(x)

	// Once primed, a constant input must produce a constant output.
	for i := 0; i < 32; i++ {
		got := s.ProcessSample(x)
		if !almostEqual(got, want, 1e-12) {
			t.Fatalf("sample %d: got %v, want steady %v", i, got, want)
		}
	}

	if gain := c.DCGain(); !almostEqual(want, gain*x, 1e-12) {
		t.Errorf("steady output %v, want DCGain*x = %v", want, gain*x)
	}
}

func TestSection_ResetAndState(t *testing.T) {
	c := Coefficients{B0: 0.5, B1: 0.5, A1: -0.2}
	s := NewSection(c)
	s.ProcessSample(1)
	s.ProcessSample(-1)

	saved := s.State()
	if saved == ([2]float64{}) {
		t.Fatal("expected nonzero state after processing")
	}

	s.Reset()
	if s.State() != ([2]float64{}) {
		t.Fatal("expected zero state after Reset")
	}

	s.SetState(saved)
	if s.State() != saved {
		t.Fatal("SetState did not restore state")
	}
}
