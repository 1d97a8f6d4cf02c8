package filter

// ZeroPhase filters signal forward and then backward through a fresh
// cascade built from coeffs, cancelling the cascade's phase response.
//
// The signal is extended at both ends by odd reflection before filtering to
// suppress startup transients, and trimmed back to its original length
// afterwards. The output has exactly len(signal) samples. A nil or empty
// coefficient set returns an unfiltered copy.
func ZeroPhase(coeffs []Coefficients, signal []float64) []float64 {
	n := len(signal)
	if n == 0 {
		return nil
	}

	out := make([]float64, n)
	copy(out, signal)

	if len(coeffs) == 0 {
		return out
	}

	// Reflection length follows the 3x-order rule used by forward-backward
	// filtering implementations.
	pad := 3 * 2 * len(coeffs)
	if pad >= n {
		pad = n - 1
	}

	ext := make([]float64, 0, n+2*pad)
	for i := pad; i >= 1; i-- {
		ext = append(ext, 2*signal[0]-signal[i])
	}

	ext = append(ext, signal...)

	for i := 1; i <= pad; i++ {
		ext = append(ext, 2*signal[n-1]-signal[n-1-i])
	}

	forward := NewChain(coeffs)
	forward.ProcessBlock(ext)

	reverse(ext)

	backward := NewChain(coeffs)
	backward.ProcessBlock(ext)

	reverse(ext)

	copy(out, ext[pad:pad+n])

	return out
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
