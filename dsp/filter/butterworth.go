package filter

import "math"

// ButterworthLP designs a lowpass Butterworth cascade at freq (Hz).
//
// For odd orders, the final section is first-order (B2=A2=0).
// Returns nil if the parameters are invalid (freq outside (0, Nyquist)).
func ButterworthLP(freq float64, order int, sampleRate float64) []Coefficients {
	if order <= 0 || !validCutoff(freq, sampleRate) {
		return nil
	}

	sections := make([]Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, lowpassRBJ(freq, q, sampleRate))
	}

	if order%2 != 0 {
		sections = append(sections, firstOrderLP(freq, sampleRate))
	}

	return sections
}

// ButterworthHP designs a highpass Butterworth cascade at freq (Hz).
//
// For odd orders, the final section is first-order (B2=A2=0).
// Returns nil if the parameters are invalid.
func ButterworthHP(freq float64, order int, sampleRate float64) []Coefficients {
	if order <= 0 || !validCutoff(freq, sampleRate) {
		return nil
	}

	sections := make([]Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, highpassRBJ(freq, q, sampleRate))
	}

	if order%2 != 0 {
		sections = append(sections, firstOrderHP(freq, sampleRate))
	}

	return sections
}

// Lowpass applies a zero-phase Butterworth lowpass and returns a new slice.
// Invalid parameters leave the signal unfiltered (a copy is returned).
func Lowpass(signal []float64, sampleRate, cutoff float64, order int) []float64 {
	return ZeroPhase(ButterworthLP(cutoff, order, sampleRate), signal)
}

// Highpass applies a zero-phase Butterworth highpass and returns a new slice.
// Invalid parameters leave the signal unfiltered (a copy is returned).
func Highpass(signal []float64, sampleRate, cutoff float64, order int) []float64 {
	return ZeroPhase(ButterworthHP(cutoff, order, sampleRate), signal)
}

// Bandpass band-limits signal to [lowcut, highcut] Hz by cascading a
// zero-phase Butterworth highpass at lowcut with a zero-phase lowpass at
// highcut, each of the given order. An invalid edge skips that half.
func Bandpass(signal []float64, sampleRate, lowcut, highcut float64, order int) []float64 {
	out := Highpass(signal, sampleRate, lowcut, order)

	return Lowpass(out, sampleRate, highcut, order)
}

func validCutoff(freq, sampleRate float64) bool {
	return sampleRate > 0 && freq > 0 && freq < sampleRate/2
}

// butterworthQ returns the quality factor for a Butterworth filter section.
// index ranges from 0 to (order/2 - 1) for the biquad sections.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2
	}

	return 1 / (2 * s)
}

// lowpassRBJ designs a lowpass biquad at freq (Hz) with quality factor q
// using the RBJ cookbook formula.
func lowpassRBJ(freq, q, sampleRate float64) Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalize(b0, b1, b2, a0, a1, a2)
}

// highpassRBJ designs a highpass biquad at freq (Hz) with quality factor q
// using the RBJ cookbook formula.
func highpassRBJ(freq, q, sampleRate float64) Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalize(b0, b1, b2, a0, a1, a2)
}

// firstOrderLP designs a first-order lowpass Butterworth section.
// Used for odd-order cascades.
func firstOrderLP(freq, sampleRate float64) Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

// firstOrderHP designs a first-order highpass Butterworth section.
// Used for odd-order cascades.
func firstOrderHP(freq, sampleRate float64) Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
