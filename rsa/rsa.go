package rsa

import (
	"fmt"
	"math"
)

// Result holds the RSA estimates of one analysis.
//
// In the default (non-continuous) mode all scalar fields are populated.
// In continuous mode only P2TValues and Continuous are populated and the
// scalars are NaN (Porges-Bohrer has no continuous form).
type Result struct {
	// P2TValues is the Peak-to-Trough estimate per respiratory cycle, in
	// seconds; NaN marks cycles with too few beats.
	P2TValues []float64

	P2TMean    float64 // mean of the non-NaN per-cycle estimates
	P2TMeanLog float64 // ln(P2TMean)
	P2TSD      float64 // sample standard deviation (Bessel's correction)
	P2TNoRSA   int     // cycles from which no estimate could be computed

	// PorgesBohrer is the spectral log-variance estimate, in ln(ms^2)
	// for period input in milliseconds.
	PorgesBohrer float64

	// Continuous is the per-sample P2T trace, with exactly one value per
	// cardiac sample. Only set in continuous mode.
	Continuous []float64
}

// Map returns the scalar estimates keyed by their conventional names.
func (r Result) Map() map[string]float64 {
	return map[string]float64{
		"RSA_P2T_Mean":     r.P2TMean,
		"RSA_P2T_Mean_log": r.P2TMeanLog,
		"RSA_P2T_SD":       r.P2TSD,
		"RSA_P2T_NoRSA":    float64(r.P2TNoRSA),
		"RSA_PorgesBohrer": r.PorgesBohrer,
	}
}

// Analyze computes RSA estimates from a processed cardiac record and an
// optional phase-labeled respiration record sharing its sample grid.
//
// beats overrides the beat-index list; when nil the indices are taken
// from cardiac.Peaks. Missing or unusable respiration input triggers
// surrogate derivation from the cardiac signal (reported through the
// diagnostic channel, see WithDiagnostics). Fatal conditions return an
// error wrapping ErrInput or ErrComputation with no partial result.
func Analyze(cardiac CardiacInput, resp *RespInput, beats []int, samplingRate float64, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	if samplingRate <= 0 {
		return Result{}, fmt.Errorf("%w: sampling rate must be positive", ErrInput)
	}

	al, err := alignInputs(cardiac, resp, beats, samplingRate, cfg.Diagnostics)
	if err != nil {
		return Result{}, err
	}

	cycles := extractCycles(al.phase, al.completion)

	values := p2tValues(cycles.inspirationOnsets, al.beats, samplingRate)

	// Peak selection runs in both modes so a peak/onset mismatch is
	// always reported; the trimmed list itself only feeds the
	// continuous trace.
	respPeaks := trimRespPeaks(al.respPeaks, cycles.inspirationOnsets, cfg.Diagnostics)

	if cfg.Continuous {
		trace, err := p2tContinuous(values, respPeaks, len(al.period))
		if err != nil {
			return Result{}, err
		}

		return Result{
			P2TValues:    values,
			P2TMean:      math.NaN(),
			P2TMeanLog:   math.NaN(),
			P2TSD:        math.NaN(),
			PorgesBohrer: math.NaN(),
			Continuous:   trace,
		}, nil
	}

	summary := summarizeP2T(values)

	pb, err := porgesBohrer(al.period, samplingRate)
	if err != nil {
		return Result{}, err
	}

	return Result{
		P2TValues:    values,
		P2TMean:      summary.mean,
		P2TMeanLog:   summary.meanLog,
		P2TSD:        summary.sd,
		P2TNoRSA:     summary.noRSA,
		PorgesBohrer: pb,
	}, nil
}
