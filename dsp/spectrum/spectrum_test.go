package spectrum

import (
	"errors"
	"math"
	"testing"
)

func sine(freq, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}

	return out
}

func TestMagnitudeEmptySignal(t *testing.T) {
	if _, _, err := Magnitude(nil); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("error = %v, want ErrEmptySignal", err)
	}
}

func TestMagnitudeBinCount(t *testing.T) {
	mags, fftSize, err := Magnitude(sine(1, 100, 1000))
	if err != nil {
		t.Fatalf("Magnitude() error = %v", err)
	}
	if fftSize != 1024 {
		t.Fatalf("fftSize = %d, want 1024", fftSize)
	}
	if len(mags) != fftSize/2+1 {
		t.Fatalf("len(mags) = %d, want %d", len(mags), fftSize/2+1)
	}
}

func TestMagnitudeShortSignalPadded(t *testing.T) {
	_, fftSize, err := Magnitude(sine(1, 10, 30))
	if err != nil {
		t.Fatalf("Magnitude() error = %v", err)
	}
	if fftSize != minFFTSize {
		t.Fatalf("fftSize = %d, want %d", fftSize, minFFTSize)
	}
}

func TestDominantFrequency(t *testing.T) {
	tests := []struct {
		freq       float64
		sampleRate float64
		n          int
	}{
		{0.25, 100, 6000},
		{0.33, 50, 3000},
		{0.15, 100, 6000},
	}
	for _, tc := range tests {
		got, err := DominantFrequency(sine(tc.freq, tc.sampleRate, tc.n), tc.sampleRate, 0.05, 0.7)
		if err != nil {
			t.Fatalf("DominantFrequency() error = %v", err)
		}
		// Accuracy is bounded by the bin width of the padded FFT.
		fftSize := minFFTSize
		for fftSize < tc.n {
			fftSize *= 2
		}
		tol := tc.sampleRate / float64(fftSize)
		if math.Abs(got-tc.freq) > tol {
			t.Fatalf("DominantFrequency(%.2f Hz) = %v, want within %v", tc.freq, got, tol)
		}
	}
}

func TestDominantFrequencyIgnoresDC(t *testing.T) {
	in := sine(0.25, 100, 6000)
	for i := range in {
		in[i] += 500 // large offset must not win over the oscillation
	}

	got, err := DominantFrequency(in, 100, 0.05, 0.7)
	if err != nil {
		t.Fatalf("DominantFrequency() error = %v", err)
	}
	if math.Abs(got-0.25) > 0.05 {
		t.Fatalf("DominantFrequency() = %v, want ~0.25", got)
	}
}

func TestDominantFrequencyEmptyBand(t *testing.T) {
	if _, err := DominantFrequency(sine(1, 100, 256), 100, 0.001, 0.002); !errors.Is(err, ErrBandEmpty) {
		t.Fatalf("error = %v, want ErrBandEmpty", err)
	}
}
