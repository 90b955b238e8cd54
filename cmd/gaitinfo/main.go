// Command gaitinfo analyzes a force-sensitive-resistor recording and
// reports heel-strike and toe-off timing.
//
// Usage:
//
//	gaitinfo [flags] trial.csv
//
// The CSV file must have "time" and "force" columns. The force signal is
// smoothed with a zero-phase Butterworth low-pass before event detection;
// a moving-average result is reported alongside for comparison.
//
// Examples:
//
//	gaitinfo fsr.csv
//	gaitinfo -fc 6 -order 2 fsr.csv
//	gaitinfo -cadence fsr.csv
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-gait/dsp/smooth"
	"github.com/cwbudde/algo-gait/fsr"
	"github.com/cwbudde/algo-gait/measure/cadence"
	"github.com/cwbudde/algo-gait/measure/gait"
	"github.com/cwbudde/algo-gait/stats/force"
)

func main() {
	var (
		fc          = flag.Float64("fc", 8, "low-pass cutoff frequency in Hz")
		order       = flag.Int("order", 4, "Butterworth filter order")
		maWindow    = flag.Int("window", 3, "moving-average window in samples")
		withCadence = flag.Bool("cadence", false, "estimate step frequency from the spectrum")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gaitinfo [flags] trial.csv")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *fc, *order, *maWindow, *withCadence); err != nil {
		fmt.Fprintln(os.Stderr, "gaitinfo:", err)
		os.Exit(1)
	}
}

func run(path string, fc float64, order, maWindow int, withCadence bool) error {
	trial, err := fsr.LoadCSV(path)
	if err != nil {
		return err
	}

	fs, err := trial.SampleRate()
	if err != nil {
		return err
	}

	maForce, err := smooth.MovingAverage(trial.Force, maWindow)
	if err != nil {
		return err
	}

	lpForce, err := smooth.ButterworthLowpass(trial.Force, fs, fc, order)
	if err != nil {
		return err
	}

	rawEvents, err := gait.Detect(trial.Force, trial.Time)
	if err != nil {
		return err
	}
	maEvents, err := gait.Detect(maForce, trial.Time)
	if err != nil {
		return err
	}
	lpEvents, err := gait.Detect(lpForce, trial.Time)
	if err != nil {
		return err
	}

	st := force.Calculate(trial.Force)
	impulse, err := force.Impulse(trial.Time, trial.Force)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "samples\t%d\n", trial.Len())
	fmt.Fprintf(w, "sampling rate\t%.2f Hz\n", fs)
	fmt.Fprintf(w, "duration\t%.3f s\n", trial.Time[len(trial.Time)-1]-trial.Time[0])
	fmt.Fprintf(w, "peak force\t%.2f N at %.3f s\n", st.Max, trial.Time[st.MaxPos])
	fmt.Fprintf(w, "mean force\t%.2f N\n", st.Mean)
	fmt.Fprintf(w, "impulse\t%.2f Ns\n", impulse)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "signal\theel strike\ttoe-off")
	printEvents(w, "raw", rawEvents)
	printEvents(w, fmt.Sprintf("moving avg (%d)", maWindow), maEvents)
	printEvents(w, fmt.Sprintf("butterworth %g Hz order %d", fc, order), lpEvents)

	if withCadence {
		res, err := cadence.NewAnalyzer(fs).Analyze(trial.Force)
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "step frequency\t%.2f Hz (%.0f steps/min)\n", res.StepFrequency, res.StepFrequency*60)
	}

	return w.Flush()
}

func printEvents(w *tabwriter.Writer, label string, ev gait.Events) {
	fmt.Fprintf(w, "%s\tt=%.3f s (index %d)\tt=%.3f s (index %d)\n",
		label,
		ev.HeelStrike.Time, ev.HeelStrike.Index,
		ev.ToeOff.Time, ev.ToeOff.Index)
}
