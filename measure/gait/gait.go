// Package gait detects heel-strike and toe-off events in a force signal.
//
// Both events are located on the first-difference (discrete slope) of the
// force sequence: heel strike is the steepest rising edge, toe-off the
// steepest falling edge. Detection works best on a smoothed signal; see the
// smooth package.
package gait

import "errors"

// Errors returned by event detection.
var ErrInsufficientData = errors.New("gait: need at least two force samples")

// Event is one detected gait event, located on the force sequence.
type Event struct {
	Index int     // index into the force/time sequences
	Time  float64 // seconds, from the time sequence
	Force float64 // force magnitude at Index
}

// Events holds the single heel-strike/toe-off pair found in one trial.
//
// The detector does not verify that the heel strike precedes the toe-off,
// nor that both fall inside one stance phase; on signals with multiple
// steps or inverted profiles the two events can appear in either order.
// Callers relying on physiological ordering must check Index themselves.
type Events struct {
	HeelStrike Event
	ToeOff     Event
}

// Slope returns the first-difference sequence of force, with length
// len(force)-1. slope[i] is the transition from force[i] to force[i+1].
func Slope(force []float64) []float64 {
	if len(force) < 2 {
		return nil
	}
	out := make([]float64, len(force)-1)
	for i := range out {
		out[i] = force[i+1] - force[i]
	}
	return out
}

// Detect locates the heel strike (maximum positive slope) and toe-off
// (maximum negative slope) in a force sequence with its matching timebase.
// Event indices are offset by +1 relative to the slope sequence so they
// point at the sample the transition lands on.
//
// Ties on the extreme slope value resolve to the first occurrence, so
// detection is deterministic. Returns ErrInsufficientData when fewer than
// two samples are available.
func Detect(force, time []float64) (Events, error) {
	if len(force) < 2 {
		return Events{}, ErrInsufficientData
	}

	slope := Slope(force)

	maxIdx, minIdx := 0, 0
	for i, v := range slope {
		if v > slope[maxIdx] {
			maxIdx = i
		}
		if v < slope[minIdx] {
			minIdx = i
		}
	}

	heel := maxIdx + 1
	toe := minIdx + 1

	return Events{
		HeelStrike: eventAt(heel, force, time),
		ToeOff:     eventAt(toe, force, time),
	}, nil
}

// eventAt fills an Event from the sequences, tolerating a time sequence
// shorter than the force sequence by leaving Time zero.
func eventAt(idx int, force, time []float64) Event {
	ev := Event{Index: idx, Force: force[idx]}
	if idx < len(time) {
		ev.Time = time[idx]
	}
	return ev
}
