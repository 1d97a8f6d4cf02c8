package rsp

import (
	"errors"
	"math"
	"testing"
)

func breathing(freq, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}

	return out
}

func TestProcessInvalidInput(t *testing.T) {
	if _, _, err := Process(nil, 100); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("empty: error = %v, want ErrEmptySignal", err)
	}
	if _, _, err := Process([]float64{1, 2, 3}, 0); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("rate 0: error = %v, want ErrInvalidRate", err)
	}
}

func TestProcessSinusoid(t *testing.T) {
	const (
		rate = 100.0
		freq = 0.2 // 12 breaths/min, 5 s cycle
		dur  = 60.0
	)

	sig, info, err := Process(breathing(freq, rate, int(dur*rate)), rate)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// 12 cycles fit in 60 s; boundary effects may cost one extremum.
	if n := len(sig.Peaks); n < 10 || n > 13 {
		t.Fatalf("len(Peaks) = %d, want ~12", n)
	}
	if n := len(sig.Troughs); n < 10 || n > 13 {
		t.Fatalf("len(Troughs) = %d, want ~12", n)
	}

	if math.Abs(info.BreathingRate-12) > 1.5 {
		t.Fatalf("BreathingRate = %v, want ~12", info.BreathingRate)
	}
}

func TestProcessExtremaAlternate(t *testing.T) {
	sig, _, err := Process(breathing(0.25, 50, 3000), 50)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	pi, ti := 0, 0
	lastIdx := -1
	lastMax := false
	first := true
	for pi < len(sig.Peaks) || ti < len(sig.Troughs) {
		var idx int
		var max bool
		if ti >= len(sig.Troughs) || (pi < len(sig.Peaks) && sig.Peaks[pi] < sig.Troughs[ti]) {
			idx, max = sig.Peaks[pi], true
			pi++
		} else {
			idx, max = sig.Troughs[ti], false
			ti++
		}

		if idx <= lastIdx {
			t.Fatalf("extrema not strictly increasing at index %d", idx)
		}
		if !first && max == lastMax {
			t.Fatalf("two consecutive extrema of the same kind at index %d", idx)
		}

		lastIdx, lastMax, first = idx, max, false
	}
}

func TestProcessPhaseStructure(t *testing.T) {
	sig, _, err := Process(breathing(0.2, 100, 6000), 100)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// Every trough inside the labeled range opens an inspiration segment
	// with completion exactly zero. The final extremum closes the labeled
	// range and carries no label itself.
	last := sig.Peaks[len(sig.Peaks)-1]
	if t2 := sig.Troughs[len(sig.Troughs)-1]; t2 > last {
		last = t2
	}
	for _, tr := range sig.Troughs {
		if tr >= last {
			continue
		}
		if sig.Phase[tr] != PhaseInspiration {
			t.Fatalf("Phase[%d] = %v, want inspiration at trough", tr, sig.Phase[tr])
		}
		if sig.PhaseCompletion[tr] != 0 {
			t.Fatalf("PhaseCompletion[%d] = %v, want 0 at onset", tr, sig.PhaseCompletion[tr])
		}
	}

	for _, pk := range sig.Peaks {
		if pk >= last {
			continue
		}
		if sig.Phase[pk] != PhaseExpiration {
			t.Fatalf("Phase[%d] = %v, want expiration at peak", pk, sig.Phase[pk])
		}
		if sig.PhaseCompletion[pk] != 0 {
			t.Fatalf("PhaseCompletion[%d] = %v, want 0 at onset", pk, sig.PhaseCompletion[pk])
		}
	}

	// Completion stays in [0, 1) wherever it is defined.
	for i, c := range sig.PhaseCompletion {
		if math.IsNaN(c) {
			continue
		}
		if c < 0 || c >= 1 {
			t.Fatalf("PhaseCompletion[%d] = %v, want in [0, 1)", i, c)
		}
	}
}

func TestProcessLengthContract(t *testing.T) {
	n := 4321
	sig, _, err := Process(breathing(0.3, 100, n), 100)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for name, s := range map[string][]float64{
		"Raw":             sig.Raw,
		"Clean":           sig.Clean,
		"Phase":           sig.Phase,
		"PhaseCompletion": sig.PhaseCompletion,
	} {
		if len(s) != n {
			t.Fatalf("len(%s) = %d, want %d", name, len(s), n)
		}
	}
}
