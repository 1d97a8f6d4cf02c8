package rsa

import (
	"fmt"

	"github.com/cwbudde/algo-hrv/bio/ecg"
	"github.com/cwbudde/algo-hrv/bio/rsp"
)

// CardiacInput carries the per-sample cardiac features the estimators
// consume. At least one of Rate or Peaks must be set.
type CardiacInput struct {
	// Rate is the instantaneous heart-period (or rate) series with one
	// value per sample. Units are the caller's convention; the summary
	// statistics inherit them (milliseconds give the conventional
	// ln(ms^2) Porges-Bohrer scale).
	Rate []float64

	// Peaks are the beat (R-peak) sample indices. Used to derive the
	// period series when Rate is absent, and as the beat list when none
	// is passed to Analyze.
	Peaks []int

	// Samples is the cardiac sample count. Defaults to len(Rate); it
	// must be set explicitly when only Peaks are supplied.
	Samples int
}

// RespInput carries phase-labeled respiration features aligned to the
// cardiac sample grid. Phase and PhaseCompletion are both required for
// the record to be usable; anything less triggers surrogate derivation.
type RespInput struct {
	// Phase is 1 during inspiration and 0 during expiration.
	Phase []float64

	// PhaseCompletion is the fraction of the current phase in [0, 1);
	// exactly 0 marks a phase onset.
	PhaseCompletion []float64

	// Peaks are inspiration-peak sample indices, used as the
	// interpolation x-axis in continuous mode.
	Peaks []int

	// Amplitude candidates, in descending priority: a cleaned signal, the
	// raw recording, or a generic amplitude series.
	Clean     []float64
	Raw       []float64
	Amplitude []float64
}

// aligned is the merged view of both inputs on the shared sample grid.
type aligned struct {
	period     []float64 // heart-period series, one value per sample
	beats      []int     // sanitized beat indices
	phase      []float64
	completion []float64
	respPeaks  []int
	respSignal []float64 // amplitude series, nil when unavailable
}

// alignInputs resolves the capability checks in fixed priority order and
// merges the cardiac and respiration records. Both inputs are assumed to
// share the sample grid; this is a caller precondition and not
// revalidated here.
func alignInputs(cardiac CardiacInput, resp *RespInput, beats []int, samplingRate float64, diag func(Diagnostic)) (aligned, error) {
	var al aligned

	n := cardiac.Samples
	if n <= 0 {
		n = len(cardiac.Rate)
	}

	switch {
	case len(cardiac.Rate) > 0:
		al.period = make([]float64, len(cardiac.Rate))
		copy(al.period, cardiac.Rate)
	case len(cardiac.Peaks) > 0:
		if n <= 0 {
			return aligned{}, fmt.Errorf("%w: Samples must be set when only beat indices are supplied", ErrInput)
		}

		period, err := ecg.PeriodFromPeaks(cardiac.Peaks, samplingRate, n)
		if err != nil {
			return aligned{}, fmt.Errorf("%w: %v", ErrInput, err)
		}

		al.period = period
	default:
		return aligned{}, fmt.Errorf("%w: cardiac input has neither a rate series nor beat indices", ErrInput)
	}

	switch {
	case len(beats) > 0:
		sanitized, err := ecg.SanitizePeaks(beats)
		if err != nil {
			return aligned{}, fmt.Errorf("%w: %v", ErrInput, err)
		}

		al.beats = sanitized
	case len(cardiac.Peaks) > 0:
		sanitized, err := ecg.SanitizePeaks(cardiac.Peaks)
		if err != nil {
			return aligned{}, fmt.Errorf("%w: %v", ErrInput, err)
		}

		al.beats = sanitized
	default:
		return aligned{}, fmt.Errorf("%w: beat indices could not be located", ErrInput)
	}

	if resp != nil && len(resp.Phase) > 0 && len(resp.PhaseCompletion) > 0 {
		al.phase = resp.Phase
		al.completion = resp.PhaseCompletion
		al.respPeaks = resp.Peaks

		switch {
		case len(resp.Clean) > 0:
			al.respSignal = resp.Clean
		case len(resp.Raw) > 0:
			al.respSignal = resp.Raw
		case len(resp.Amplitude) > 0:
			al.respSignal = resp.Amplitude
		}

		return al, nil
	}

	// No usable respiration input: derive a surrogate from the heart
	// period series and segment it into phases.
	surrogate := ecg.SurrogateRespiration(al.period, samplingRate)

	processed, _, err := rsp.Process(surrogate, samplingRate)
	if err != nil {
		return aligned{}, fmt.Errorf("%w: surrogate respiration unusable: %v", ErrInput, err)
	}

	diag(Diagnostic{
		Code: DiagSurrogateRespiration,
		Message: "respiration signal not found; derived a surrogate from the " +
			"cardiac signal, results are unreliable - please provide a real " +
			"respiration signal",
	})

	al.phase = processed.Phase
	al.completion = processed.PhaseCompletion
	al.respPeaks = processed.Peaks
	al.respSignal = processed.Clean

	return al, nil
}
