package filter

import (
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

func rmsOf(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(x)))
}

func TestButterworthLPSectionCount(t *testing.T) {
	tests := []struct {
		order    int
		sections int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
	}
	for _, tc := range tests {
		got := len(ButterworthLP(10, tc.order, 100))
		if got != tc.sections {
			t.Fatalf("order %d: sections = %d, want %d", tc.order, got, tc.sections)
		}
	}
}

func TestButterworthInvalidCutoff(t *testing.T) {
	if s := ButterworthLP(60, 2, 100); s != nil {
		t.Fatalf("cutoff above Nyquist: sections = %v, want nil", s)
	}
	if s := ButterworthHP(0, 2, 100); s != nil {
		t.Fatalf("zero cutoff: sections = %v, want nil", s)
	}
}

func TestZeroPhasePreservesLength(t *testing.T) {
	for _, n := range []int{1, 5, 64, 1001} {
		in := sine(5, 100, n)
		out := ZeroPhase(ButterworthLP(20, 2, 100), in)
		if len(out) != n {
			t.Fatalf("n=%d: len(out) = %d, want %d", n, len(out), n)
		}
	}
}

func TestZeroPhaseNilCoefficientsCopies(t *testing.T) {
	in := []float64{1, 2, 3}
	out := ZeroPhase(nil, in)
	if len(out) != len(in) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}
	out[0] = 99
	if in[0] != 1 {
		t.Fatal("ZeroPhase must not alias the input")
	}
}

func TestLowpassPassbandAndStopband(t *testing.T) {
	const rate = 100.0

	slow := Lowpass(sine(1, rate, 2000), rate, 10, 4)
	if r := rmsOf(slow[200 : len(slow)-200]); math.Abs(r-1/math.Sqrt2) > 0.05 {
		t.Fatalf("passband RMS = %v, want ~%v", r, 1/math.Sqrt2)
	}

	fast := Lowpass(sine(40, rate, 2000), rate, 10, 4)
	if r := rmsOf(fast[200 : len(fast)-200]); r > 0.01 {
		t.Fatalf("stopband RMS = %v, want ~0", r)
	}
}

func TestBandpassRemovesDCAndKeepsBand(t *testing.T) {
	const rate = 2.0

	n := 1200
	in := make([]float64, n)
	for i := range in {
		in[i] = 800 + math.Sin(2*math.Pi*0.25*float64(i)/rate)
	}

	out := Bandpass(in, rate, 0.12, 0.40, 2)

	var mean float64
	for _, v := range out {
		mean += v
	}
	mean /= float64(n)

	if math.Abs(mean) > 1 {
		t.Fatalf("mean after bandpass = %v, want ~0", mean)
	}

	if r := rmsOf(out[100 : n-100]); r < 0.4 {
		t.Fatalf("in-band RMS = %v, want close to %v", r, 1/math.Sqrt2)
	}
}

func TestBandpassFifthOrderStopbandRolloff(t *testing.T) {
	// A 0.05 Hz drift sits well below a 0.12 Hz lower edge; at order 5
	// the zero-phase cascade should suppress it by several orders of
	// magnitude, where a shallow order-2 cascade leaves a few percent.
	in := sine(0.05, 2, 600)

	out := Bandpass(in, 2, 0.12, 0.40, 5)

	if ratio := rmsOf(out) / rmsOf(in); ratio > 0.02 {
		t.Errorf("stopband RMS ratio = %v, want < 0.02 at order 5", ratio)
	}
}

func TestSavitzkyGolayReproducesCubic(t *testing.T) {
	n := 100
	in := make([]float64, n)
	for i := range in {
		x := float64(i)
		in[i] = 2 + 0.5*x - 0.01*x*x + 0.0002*x*x*x
	}

	out := SavitzkyGolay(in, 21, 3)
	for i := range in {
		if d := math.Abs(out[i] - in[i]); d > 1e-8 {
			t.Fatalf("sample %d: |out-in| = %g, want ~0", i, d)
		}
	}
}

func TestSavitzkyGolayConstantBitExact(t *testing.T) {
	in := make([]float64, 50)
	for i := range in {
		in[i] = 800
	}

	out := SavitzkyGolay(in, 21, 3)
	for i, v := range out {
		if v != 800 {
			t.Fatalf("sample %d = %v, want exactly 800", i, v)
		}
	}
}

func TestSavitzkyGolayShortSignal(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5}
	out := SavitzkyGolay(in, 21, 3)
	if len(out) != len(in) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in))
	}

	if out := SavitzkyGolay(nil, 21, 3); out != nil {
		t.Fatalf("empty input: out = %v, want nil", out)
	}
}

func TestSavitzkyGolaySmooths(t *testing.T) {
	n := 200
	noisy := make([]float64, n)
	for i := range noisy {
		noisy[i] = math.Sin(2*math.Pi*float64(i)/200) + 0.5*math.Sin(2*math.Pi*float64(i)/4)
	}

	out := SavitzkyGolay(noisy, 21, 3)

	var residual float64
	for i := range out {
		d := out[i] - math.Sin(2*math.Pi*float64(i)/200)
		residual += d * d
	}
	residual = math.Sqrt(residual / float64(n))

	if residual > 0.2 {
		t.Fatalf("residual RMS after smoothing = %v, want < 0.2", residual)
	}
}

func TestChainOrder(t *testing.T) {
	c := NewChain(ButterworthLP(10, 5, 100))
	if got := c.Order(); got != 5 {
		t.Fatalf("Order() = %d, want 5", got)
	}
}

func TestSectionDCGainLowpass(t *testing.T) {
	s := NewSection(lowpassRBJ(10, 1/math.Sqrt2, 100))

	var y float64
	for i := 0; i < 1000; i++ {
		y = s.ProcessSample(1)
	}

	if math.Abs(y-1) > 1e-6 {
		t.Fatalf("steady-state DC gain = %v, want 1", y)
	}
}
