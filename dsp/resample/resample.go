// Package resample converts evenly sampled physiological series between
// sampling rates by linear interpolation.
//
// Unlike audio-grade rational resamplers, the series handled here (heart
// period, respiration amplitude) are smooth and heavily oversampled
// relative to their bandwidth, so interpolation without an anti-aliasing
// stage is adequate and keeps the output length contract simple: the
// output always has floor(len(input) * toRate / fromRate) samples.
package resample

import (
	"errors"
	"math"
)

// ErrInvalidRate indicates a non-positive or non-finite sample rate.
var ErrInvalidRate = errors.New("resample: invalid sample rate")

// Linear resamples series from fromRate to toRate (both in Hz) using
// linear interpolation and returns the converted series.
//
// The output length is floor(len(series) * toRate / fromRate), at least 1;
// an empty input yields an empty output.
func Linear(series []float64, fromRate, toRate float64) ([]float64, error) {
	if fromRate <= 0 || toRate <= 0 ||
		math.IsNaN(fromRate) || math.IsNaN(toRate) ||
		math.IsInf(fromRate, 0) || math.IsInf(toRate, 0) {
		return nil, ErrInvalidRate
	}

	n := len(series)
	if n == 0 {
		return nil, nil
	}

	outLen := int(float64(n) * toRate / fromRate)
	if outLen < 1 {
		outLen = 1
	}

	out := make([]float64, outLen)

	if n == 1 || outLen == 1 {
		for i := range out {
			out[i] = series[0]
		}

		return out, nil
	}

	// Map the output grid onto [0, n-1] so that both endpoints of the
	// input are represented.
	step := float64(n-1) / float64(outLen-1)

	for i := range out {
		pos := float64(i) * step

		idx := int(pos)
		if idx >= n-1 {
			out[i] = series[n-1]
			continue
		}

		frac := pos - float64(idx)
		out[i] = series[idx] + frac*(series[idx+1]-series[idx])
	}

	return out, nil
}
