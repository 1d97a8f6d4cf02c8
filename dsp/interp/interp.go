// Package interp expands values known at scattered sample indices into a
// full per-sample series, as needed when per-cycle or per-beat features are
// re-expressed on the original signal grid.
package interp

import (
	"errors"

	gonum "gonum.org/v1/gonum/interp"
)

var (
	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = errors.New("interp: no points to interpolate")
	// ErrMismatchedPoints indicates len(xs) != len(ys).
	ErrMismatchedPoints = errors.New("interp: mismatched point slices")
	// ErrUnorderedPoints indicates xs is not strictly increasing.
	ErrUnorderedPoints = errors.New("interp: x values must be strictly increasing")
)

// ToGrid interpolates the points (xs[i], ys[i]) onto the integer sample
// grid [0, length) and returns one value per grid sample.
//
// Between knots a shape-preserving piecewise-cubic (Fritsch-Butland) curve
// is used, so the output never overshoots the supplied values. Outside
// [xs[0], xs[last]] the nearest knot value is held constant. A single
// point fills the whole grid with its value.
func ToGrid(xs []int, ys []float64, length int) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, ErrMismatchedPoints
	}

	if len(xs) == 0 {
		return nil, ErrNoPoints
	}

	if length <= 0 {
		return nil, nil
	}

	out := make([]float64, length)

	if len(xs) == 1 {
		for i := range out {
			out[i] = ys[0]
		}

		return out, nil
	}

	fx := make([]float64, len(xs))
	for i, x := range xs {
		if i > 0 && x <= xs[i-1] {
			return nil, ErrUnorderedPoints
		}

		fx[i] = float64(x)
	}

	var fb gonum.FritschButland
	if err := fb.Fit(fx, ys); err != nil {
		return nil, err
	}

	last := len(xs) - 1

	for i := range out {
		x := float64(i)

		switch {
		case x <= fx[0]:
			out[i] = ys[0]
		case x >= fx[last]:
			out[i] = ys[last]
		default:
			out[i] = fb.Predict(x)
		}
	}

	return out, nil
}
