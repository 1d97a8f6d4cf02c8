package rsa

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-hrv/dsp/filter"
	"github.com/cwbudde/algo-hrv/dsp/resample"
)

// Porges-Bohrer pipeline constants. The heart-period series is brought to
// a fixed 2 Hz grid, the slow baseline is removed with a 21-sample cubic
// Savitzky-Golay fit, and the residual is limited to the band of
// spontaneous breathing before the epoch-wise variance aggregation.
const (
	pbRate         = 2.0  // Hz
	pbEpochSeconds = 30.0 // epoch duration
	pbWindowSize   = 21   // Savitzky-Golay window at 2 Hz
	pbPolyOrder    = 3    // Savitzky-Golay polynomial order
	pbLowcut       = 0.12 // Hz, spontaneous-breathing band
	pbHighcut      = 0.40 // Hz
	pbFilterOrder  = 5    // Butterworth order per band edge
)

// porgesBohrer computes the Porges-Bohrer RSA estimate from the
// heart-period series. With period input in milliseconds the result is in
// ln(ms^2).
//
// Epochs whose log-variance is not finite (a constant epoch has zero
// variance, a single-sample epoch an undefined one) are dropped; when no
// epoch survives the estimate is undefined and an error wrapping
// ErrComputation is returned rather than a silent NaN.
func porgesBohrer(period []float64, samplingRate float64) (float64, error) {
	resampled, err := resample.Linear(period, samplingRate, pbRate)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrComputation, err)
	}

	trend := filter.SavitzkyGolay(resampled, pbWindowSize, pbPolyOrder)

	// residual = resampled - trend
	residual := make([]float64, len(resampled))
	copy(residual, resampled)
	negTrend := make([]float64, len(trend))
	vecmath.ScaleBlock(negTrend, trend, -1)
	vecmath.AddBlockInPlace(residual, negTrend)

	filtered := filter.Bandpass(residual, pbRate, pbLowcut, pbHighcut, pbFilterOrder)

	epochLen := int(pbRate * pbEpochSeconds)

	var logVariances []float64

	for start := 0; start < len(filtered); start += epochLen {
		end := start + epochLen
		if end > len(filtered) {
			end = len(filtered)
		}

		epoch := filtered[start:end]
		if len(epoch) < 2 {
			continue
		}

		lv := math.Log(stat.Variance(epoch, nil) / 1000)
		if math.IsNaN(lv) || math.IsInf(lv, 0) {
			continue
		}

		logVariances = append(logVariances, lv)
	}

	if len(logVariances) == 0 {
		return 0, fmt.Errorf("%w: no valid epochs for the Porges-Bohrer estimate", ErrComputation)
	}

	return stat.Mean(logVariances, nil), nil
}
