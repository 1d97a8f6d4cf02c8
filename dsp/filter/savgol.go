package filter

import "math"

// SavitzkyGolay smooths signal by fitting a local least-squares polynomial
// of the given order inside a sliding window of windowSize samples and
// evaluating the fit at each sample position.
//
// windowSize is forced odd and capped at len(signal); order is capped at
// windowSize-1. Near the edges the window stays anchored at the signal
// boundary and the polynomial is evaluated off-center. The smoother
// reproduces any polynomial of degree <= order exactly; in particular a
// constant signal passes through bit-identical, which downstream variance
// based detrending relies on.
func SavitzkyGolay(signal []float64, windowSize, order int) []float64 {
	n := len(signal)
	if n == 0 {
		return nil
	}

	out := make([]float64, n)

	w := windowSize
	if w > n {
		w = n
	}

	if w%2 == 0 {
		w--
	}

	if w < 3 {
		copy(out, signal)
		return out
	}

	m := (w - 1) / 2

	if order >= w {
		order = w - 1
	}

	if order < 0 {
		order = 0
	}

	// One weight vector per evaluation offset. Interior samples use the
	// centered vector (t = 0); the 2m edge samples use shifted ones.
	weights := make([][]float64, w)
	for t := -m; t <= m; t++ {
		weights[t+m] = savgolWeights(w, order, t)
	}

	for i := range signal {
		start := i - m
		if start < 0 {
			start = 0
		}

		if start > n-w {
			start = n - w
		}

		t := i - (start + m)

		wts := weights[t+m]

		// Accumulate deviations from the center sample so that a constant
		// window contributes exactly zero regardless of rounding in wts.
		var acc float64
		for k, c := range wts {
			acc += c * (signal[start+k] - signal[i])
		}

		out[i] = signal[i] + acc
	}

	return out
}

// savgolWeights returns the linear weights q such that q·y equals the
// least-squares polynomial of the given order through the window samples
// y[0..w) (at abscissae -m..m), evaluated at offset t.
func savgolWeights(w, order, t int) []float64 {
	m := (w - 1) / 2
	dim := order + 1

	// Normal-equation matrix G[j][k] = sum x^(j+k) over the window.
	g := make([][]float64, dim)
	for j := range g {
		g[j] = make([]float64, dim)
		for k := range g[j] {
			var sum float64
			for x := -m; x <= m; x++ {
				sum += math.Pow(float64(x), float64(j+k))
			}

			g[j][k] = sum
		}
	}

	// Right-hand side: powers of the evaluation offset.
	rhs := make([]float64, dim)
	for j := range rhs {
		rhs[j] = math.Pow(float64(t), float64(j))
	}

	z := solveLinear(g, rhs)

	q := make([]float64, w)
	for k := range q {
		x := float64(k - m)
		for j, zj := range z {
			q[k] += zj * math.Pow(x, float64(j))
		}
	}

	return q
}

// solveLinear solves a*x = b in place by Gaussian elimination with partial
// pivoting. The matrices involved here are tiny (order+1 square).
func solveLinear(a [][]float64, b []float64) []float64 {
	n := len(b)

	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}

		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		if a[col][col] == 0 {
			continue
		}

		for row := col + 1; row < n; row++ {
			f := a[row][col] / a[col][col]
			if f == 0 {
				continue
			}

			for k := col; k < n; k++ {
				a[row][k] -= f * a[col][k]
			}

			b[row] -= f * b[col]
		}
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := b[row]
		for k := row + 1; k < n; k++ {
			sum -= a[row][k] * x[k]
		}

		if a[row][row] != 0 {
			x[row] = sum / a[row][row]
		}
	}

	return x
}
