// Package filter provides the filtering primitives used by the RSA
// estimators: biquad sections and cascades, Butterworth designs, zero-phase
// (forward-backward) application, and Savitzky-Golay polynomial smoothing.
//
// All one-shot helpers return a new slice and leave the input untouched.
// Filters here are applied zero-phase because the physiological estimators
// align filtered samples against beat and onset indices; phase lag would
// shift those alignments.
package filter
