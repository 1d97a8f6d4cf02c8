package rsa

import "github.com/cwbudde/algo-hrv/bio/rsp"

// cycleBoundaries holds the respiratory cycle onsets extracted from the
// aligned phase labels.
type cycleBoundaries struct {
	inspirationOnsets []int
	expirationOnsets  []int
	cycleLengths      []int // forward differences of inspiration onsets
}

// extractCycles scans the phase labels for onsets: samples where the
// phase-completion fraction resets to exactly zero. NaN labels (the
// unknown stretches before the first and after the last extremum) never
// match and are skipped naturally.
func extractCycles(phase, completion []float64) cycleBoundaries {
	var cb cycleBoundaries

	n := len(phase)
	if len(completion) < n {
		n = len(completion)
	}

	for i := 0; i < n; i++ {
		if completion[i] != 0 {
			continue
		}

		switch phase[i] {
		case rsp.PhaseInspiration:
			cb.inspirationOnsets = append(cb.inspirationOnsets, i)
		case rsp.PhaseExpiration:
			cb.expirationOnsets = append(cb.expirationOnsets, i)
		}
	}

	if len(cb.inspirationOnsets) > 1 {
		cb.cycleLengths = make([]int, len(cb.inspirationOnsets)-1)
		for i := range cb.cycleLengths {
			cb.cycleLengths[i] = cb.inspirationOnsets[i+1] - cb.inspirationOnsets[i]
		}
	}

	return cb
}
