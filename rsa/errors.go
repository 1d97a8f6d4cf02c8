package rsa

import "errors"

var (
	// ErrInput indicates required input features are missing: the cardiac
	// record exposes neither a rate series nor beat indices, or beat
	// indices could not be located from any source. Analyze fails
	// immediately with no partial result.
	ErrInput = errors.New("rsa: invalid input")

	// ErrComputation indicates an estimate is undefined for the supplied
	// data, such as the Porges-Bohrer aggregation ending up with zero
	// valid epochs. There is no partial-result contract, so Analyze fails
	// as a whole.
	ErrComputation = errors.New("rsa: computation failed")
)
