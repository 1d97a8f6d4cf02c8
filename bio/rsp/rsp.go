// Package rsp turns a raw respiration recording into phase-labeled
// signals: cleaned amplitude, inspiration/expiration extrema, a binary
// phase series, and the completion fraction of the current phase. The
// phase/completion pair is what respiratory-cycle consumers key on: a
// completion of exactly zero marks a phase onset.
package rsp

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-hrv/dsp/filter"
	"github.com/cwbudde/algo-hrv/dsp/spectrum"
)

var (
	// ErrEmptySignal indicates an empty respiration signal.
	ErrEmptySignal = errors.New("rsp: empty signal")
	// ErrInvalidRate indicates a non-positive sampling rate.
	ErrInvalidRate = errors.New("rsp: invalid sampling rate")
	// ErrNoCycles indicates no respiratory cycle could be located.
	ErrNoCycles = errors.New("rsp: could not locate respiratory cycles")
)

// Inspiration and expiration labels used in the Phase series.
const (
	PhaseInspiration = 1.0
	PhaseExpiration  = 0.0
)

// fallbackFrequency is assumed when the spectrum gives no usable breathing
// frequency (15 breaths/min).
const fallbackFrequency = 0.25

// Signals holds a processed respiration recording, aligned sample by
// sample with the raw input.
//
// Phase and PhaseCompletion are NaN before the first detected extremum and
// from the last one onward, where the phase is unknown.
type Signals struct {
	Raw   []float64
	Clean []float64

	Peaks   []int // indices of inspiration peaks (local maxima)
	Troughs []int // indices of expiration troughs (local minima)

	Phase           []float64 // PhaseInspiration or PhaseExpiration
	PhaseCompletion []float64 // fraction of the current phase in [0, 1)
}

// Info carries summary metadata from Process.
type Info struct {
	SamplingRate  float64
	BreathingRate float64 // breaths per minute, spectrum based
}

// Process cleans raw and segments it into respiratory phases.
//
// The signal is band-limited to the physiological breathing band, the
// dominant breathing frequency is estimated from its spectrum, and
// alternating peak/trough extrema are detected with a minimum spacing
// derived from that frequency. Inspiration runs from a trough to the next
// peak, expiration from a peak to the next trough.
func Process(raw []float64, samplingRate float64) (Signals, Info, error) {
	if len(raw) == 0 {
		return Signals{}, Info{}, ErrEmptySignal
	}

	if samplingRate <= 0 {
		return Signals{}, Info{}, ErrInvalidRate
	}

	highcut := 3.0
	if highcut >= samplingRate/2 {
		highcut = 0.4 * samplingRate
	}

	clean := filter.Bandpass(raw, samplingRate, 0.05, highcut, 2)

	freq, err := spectrum.DominantFrequency(clean, samplingRate, 0.05, 0.7)
	if err != nil || freq <= 0 {
		freq = fallbackFrequency
	}

	// Adjacent extrema sit half a breath apart; reject anything closer
	// than ~a third of a breath as noise.
	minDist := int(0.3 * samplingRate / freq)
	if minDist < 1 {
		minDist = 1
	}

	peaks, troughs := extrema(clean, minDist)
	if len(peaks) == 0 || len(troughs) == 0 {
		return Signals{}, Info{}, ErrNoCycles
	}

	phase, completion := labelPhases(len(raw), peaks, troughs)

	rawCopy := make([]float64, len(raw))
	copy(rawCopy, raw)

	sig := Signals{
		Raw:             rawCopy,
		Clean:           clean,
		Peaks:           peaks,
		Troughs:         troughs,
		Phase:           phase,
		PhaseCompletion: completion,
	}

	info := Info{
		SamplingRate:  samplingRate,
		BreathingRate: freq * 60,
	}

	return sig, info, nil
}

type extremum struct {
	idx int
	max bool
}

// extrema locates alternating local maxima and minima of x. Runs of the
// same kind collapse to their most extreme member, and adjacent
// peak/trough pairs that are too close together or too shallow relative
// to the signal range are discarded as noise.
func extrema(x []float64, minDist int) (peaks, troughs []int) {
	var cands []extremum

	for i := 1; i+1 < len(x); i++ {
		switch {
		case x[i] > x[i-1] && x[i] >= x[i+1]:
			cands = append(cands, extremum{idx: i, max: true})
		case x[i] < x[i-1] && x[i] <= x[i+1]:
			cands = append(cands, extremum{idx: i, max: false})
		}
	}

	kept := collapseRuns(x, cands)

	lo, hi := x[0], x[0]
	for _, v := range x {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	threshold := 0.1 * (hi - lo)

	for {
		removed := false

		for i := 1; i < len(kept); i++ {
			span := math.Abs(x[kept[i].idx] - x[kept[i-1].idx])
			if span < threshold || kept[i].idx-kept[i-1].idx < minDist {
				kept = append(kept[:i-1], kept[i+1:]...)
				removed = true

				break
			}
		}

		if !removed {
			break
		}

		kept = collapseRuns(x, kept)
	}

	for _, e := range kept {
		if e.max {
			peaks = append(peaks, e.idx)
		} else {
			troughs = append(troughs, e.idx)
		}
	}

	return peaks, troughs
}

func collapseRuns(x []float64, cands []extremum) []extremum {
	var kept []extremum

	for _, c := range cands {
		if len(kept) > 0 && kept[len(kept)-1].max == c.max {
			last := kept[len(kept)-1]

			better := (c.max && x[c.idx] > x[last.idx]) ||
				(!c.max && x[c.idx] < x[last.idx])
			if better {
				kept[len(kept)-1] = c
			}

			continue
		}

		kept = append(kept, c)
	}

	return kept
}

// labelPhases builds the phase and completion series from alternating
// extrema. Each segment between consecutive extrema gets one label;
// completion ramps linearly from 0 at the segment onset towards 1.
func labelPhases(n int, peaks, troughs []int) (phase, completion []float64) {
	phase = make([]float64, n)
	completion = make([]float64, n)
	for i := range phase {
		phase[i] = math.NaN()
		completion[i] = math.NaN()
	}

	events := make([]extremum, 0, len(peaks)+len(troughs))
	pi, ti := 0, 0
	for pi < len(peaks) || ti < len(troughs) {
		if ti >= len(troughs) || (pi < len(peaks) && peaks[pi] < troughs[ti]) {
			events = append(events, extremum{idx: peaks[pi], max: true})
			pi++
		} else {
			events = append(events, extremum{idx: troughs[ti], max: false})
			ti++
		}
	}

	for k := 0; k+1 < len(events); k++ {
		start, end := events[k].idx, events[k+1].idx

		label := PhaseExpiration
		if !events[k].max {
			// A trough opens an inspiration segment.
			label = PhaseInspiration
		}

		for j := start; j < end; j++ {
			phase[j] = label
			completion[j] = float64(j-start) / float64(end-start)
		}
	}

	return phase, completion
}
