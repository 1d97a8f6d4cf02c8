// Package spectrum computes magnitude spectra and locates the dominant
// frequency of slow physiological oscillations, such as the breathing
// rhythm used to parameterize respiratory extrema detection.
package spectrum

import (
	"errors"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-hrv/dsp/window"
)

var (
	// ErrEmptySignal indicates an empty input signal.
	ErrEmptySignal = errors.New("spectrum: empty signal")
	// ErrBandEmpty indicates no FFT bin falls inside the requested band.
	ErrBandEmpty = errors.New("spectrum: no bins inside frequency band")
)

const minFFTSize = 256

// Magnitude returns the single-sided magnitude spectrum of signal together
// with the FFT size used.
//
// The signal mean is removed and a Hann window applied before the
// transform; the input is zero padded to the next power of two (at least
// 256 points) so slow oscillations get usable bin resolution even for
// short records. The returned slice holds fftSize/2+1 bins.
func Magnitude(signal []float64) ([]float64, int, error) {
	n := len(signal)
	if n == 0 {
		return nil, 0, ErrEmptySignal
	}

	fftSize := minFFTSize
	for fftSize < n {
		fftSize *= 2
	}

	var mean float64
	for _, v := range signal {
		mean += v
	}
	mean /= float64(n)

	tapered := make([]float64, n)
	for i, v := range signal {
		tapered[i] = v - mean
	}
	window.Apply(tapered, tapered, window.Hann(n))

	in := make([]complex128, fftSize)
	for i, v := range tapered {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, err
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, err
	}

	bins := fftSize/2 + 1

	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	return mags, fftSize, nil
}

// DominantFrequency returns the frequency (Hz) of the strongest spectral
// component of signal within [minHz, maxHz].
func DominantFrequency(signal []float64, sampleRate, minHz, maxHz float64) (float64, error) {
	mags, fftSize, err := Magnitude(signal)
	if err != nil {
		return 0, err
	}

	binWidth := sampleRate / float64(fftSize)

	lo := int(math.Ceil(minHz / binWidth))
	hi := int(math.Floor(maxHz / binWidth))

	if lo < 1 {
		lo = 1 // skip the DC bin
	}

	if hi >= len(mags) {
		hi = len(mags) - 1
	}

	if lo > hi {
		return 0, ErrBandEmpty
	}

	best := lo
	for i := lo + 1; i <= hi; i++ {
		if mags[i] > mags[best] {
			best = i
		}
	}

	return float64(best) * binWidth, nil
}
