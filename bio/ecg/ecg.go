// Package ecg derives per-sample cardiac features from detected beat
// locations: the instantaneous heart-period series and an ECG-derived
// surrogate respiration signal for recordings without a respiration
// channel.
package ecg

import (
	"errors"
	"sort"

	"github.com/cwbudde/algo-hrv/dsp/filter"
	"github.com/cwbudde/algo-hrv/dsp/interp"
)

var (
	// ErrNoPeaks indicates beat indices could not be located in the input.
	ErrNoPeaks = errors.New("ecg: no beat indices")
	// ErrTooFewPeaks indicates fewer than two beats, so no interval exists.
	ErrTooFewPeaks = errors.New("ecg: need at least two beat indices")
)

// SanitizePeaks returns beat indices in canonical form: non-negative,
// strictly increasing, duplicates removed. The input is left untouched.
func SanitizePeaks(peaks []int) ([]int, error) {
	out := make([]int, 0, len(peaks))
	for _, p := range peaks {
		if p >= 0 {
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		return nil, ErrNoPeaks
	}

	sort.Ints(out)

	dedup := out[:1]
	for _, p := range out[1:] {
		if p != dedup[len(dedup)-1] {
			dedup = append(dedup, p)
		}
	}

	return dedup, nil
}

// PeriodFromPeaks computes a per-sample heart-period series in
// milliseconds from beat sample indices.
//
// Each successive beat interval is anchored at the beat that closes it
// (the first beat reuses the first interval), and the anchored values are
// interpolated onto the grid [0, desiredLength) with the edges held
// constant, so the series has exactly desiredLength samples.
func PeriodFromPeaks(peaks []int, samplingRate float64, desiredLength int) ([]float64, error) {
	p, err := SanitizePeaks(peaks)
	if err != nil {
		return nil, err
	}

	if len(p) < 2 {
		return nil, ErrTooFewPeaks
	}

	periods := make([]float64, len(p))
	for i := 1; i < len(p); i++ {
		periods[i] = float64(p[i]-p[i-1]) / samplingRate * 1000
	}
	periods[0] = periods[1]

	return interp.ToGrid(p, periods, desiredLength)
}

// SurrogateRespiration derives a respiration-like signal from the heart
// period series by band-limiting it to the respiratory frequency band
// (0.1-0.4 Hz). Heart period is modulated by breathing, so its band-passed
// component approximates the respiratory waveform when no respiration
// channel was recorded.
func SurrogateRespiration(period []float64, samplingRate float64) []float64 {
	return filter.Bandpass(period, samplingRate, 0.1, 0.4, 2)
}
