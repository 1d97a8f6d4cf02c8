package rsa

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-hrv/dsp/interp"
)

// p2tValues computes one Peak-to-Trough RSA estimate per inspiration
// cycle: the range (max - min) of the successive beat intervals, in
// seconds, of the beats falling inside [onset_i, onset_i+1). Cycles with
// fewer than two intervals get NaN.
func p2tValues(onsets, beats []int, samplingRate float64) []float64 {
	if len(onsets) < 2 {
		return nil
	}

	values := make([]float64, len(onsets)-1)
	for i := range values {
		values[i] = math.NaN()
	}

	b := 0

	for i := 0; i+1 < len(onsets); i++ {
		lo, hi := onsets[i], onsets[i+1]

		for b < len(beats) && beats[b] < lo {
			b++
		}

		start := b
		for b < len(beats) && beats[b] < hi {
			b++
		}

		cycle := beats[start:b]
		if len(cycle) < 3 {
			continue // fewer than two intervals
		}

		minIv := math.Inf(1)
		maxIv := math.Inf(-1)
		for k := 1; k < len(cycle); k++ {
			iv := float64(cycle[k]-cycle[k-1]) / samplingRate
			minIv = math.Min(minIv, iv)
			maxIv = math.Max(maxIv, iv)
		}

		values[i] = maxIv - minIv
	}

	return values
}

// p2tSummary holds the scalar aggregation of the per-cycle estimates.
type p2tSummary struct {
	mean    float64
	meanLog float64
	sd      float64
	noRSA   int
}

// summarizeP2T aggregates per-cycle values, excluding NaN cycles from the
// mean and standard deviation but counting them in noRSA. The standard
// deviation uses Bessel's correction and is NaN for fewer than two valid
// cycles; the log-mean is always ln(mean).
func summarizeP2T(values []float64) p2tSummary {
	valid := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}

	s := p2tSummary{noRSA: len(values) - len(valid)}

	if len(valid) == 0 {
		s.mean = math.NaN()
		s.meanLog = math.NaN()
		s.sd = math.NaN()

		return s
	}

	s.mean = stat.Mean(valid, nil)
	s.meanLog = math.Log(s.mean)

	if len(valid) >= 2 {
		s.sd = stat.StdDev(valid, nil)
	} else {
		s.sd = math.NaN()
	}

	return s
}

// trimRespPeaks prepares the inspiration-peak list used as the continuous
// interpolation x-axis: peaks strictly after the first onset, with the
// trailing peak dropped when peak and onset counts coincide (peaks lag
// onsets by one in the expected segmentation). A residual mismatch is
// reported via the diagnostic channel but never aborts the analysis.
func trimRespPeaks(peaks, onsets []int, diag func(Diagnostic)) []int {
	if len(onsets) == 0 {
		diag(Diagnostic{
			Code:    DiagCycleCountMismatch,
			Message: "could not match respiratory cycle onsets and peaks; check the respiration signal",
		})

		return nil
	}

	first := onsets[0]

	trimmed := make([]int, 0, len(peaks))
	for _, p := range peaks {
		if p > first {
			trimmed = append(trimmed, p)
		}
	}

	if len(trimmed) == len(onsets) {
		trimmed = trimmed[:len(trimmed)-1]
	}

	if len(trimmed)-len(onsets) != -1 {
		diag(Diagnostic{
			Code:    DiagCycleCountMismatch,
			Message: "could not match respiratory cycle onsets and peaks; check the respiration signal",
		})
	}

	return trimmed
}

// p2tContinuous re-expresses the per-cycle estimates as one value per
// cardiac sample, interpolating the non-NaN estimates against their
// inspiration-peak locations.
func p2tContinuous(values []float64, peaks []int, length int) ([]float64, error) {
	n := len(values)
	if len(peaks) < n {
		n = len(peaks)
	}

	xs := make([]int, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(values[i]) {
			continue
		}

		xs = append(xs, peaks[i])
		ys = append(ys, values[i])
	}

	trace, err := interp.ToGrid(xs, ys, length)
	if err != nil {
		return nil, fmt.Errorf("%w: continuous trace interpolation: %v", ErrComputation, err)
	}

	return trace, nil
}
