// Package rsa quantifies Respiratory Sinus Arrhythmia: the variation of
// the heart period that is coupled to the breathing cycle.
//
// Two estimators are provided:
//
//   - Peak-to-Trough (P2T): for every respiratory cycle, the range of the
//     successive beat intervals falling inside that cycle. Summarized as
//     mean, log-mean, standard deviation, and the count of cycles with too
//     few beats, or interpolated into a continuous per-sample trace.
//   - Porges-Bohrer (PB): a single spectral estimate. The heart-period
//     series is resampled to 2 Hz, detrended with a local-polynomial
//     smoother, band-limited to the spontaneous-breathing band, and the
//     log-variance is averaged over 30-second epochs. Robust when the
//     signal-to-noise ratio is low; has no continuous form.
//
// Inputs are typed records rather than generic tables: CardiacInput must
// carry either a per-sample rate series or beat indices, and RespInput
// carries phase-labeled respiration. When respiration is missing, a
// surrogate is derived from the cardiac signal and a diagnostic is
// emitted; the results are then unreliable and callers should supply real
// respiration data.
package rsa
