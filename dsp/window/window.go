// Package window generates taper functions for spectral analysis.
//
// Physiological spectra in this module only need modest sidelobe
// suppression, so the package carries the classic Hann taper rather
// than a full window catalogue.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Hann returns the symmetric Hann window of length n.
func Hann(n int) []float64 {
	w := make([]float64, n)

	if n == 1 {
		w[0] = 1
		return w
	}

	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	return w
}

// Apply multiplies signal by the window into dst. All three slices must
// share the same length; dst may alias signal.
func Apply(dst, signal, win []float64) {
	vecmath.MulBlock(dst, signal, win)
}
