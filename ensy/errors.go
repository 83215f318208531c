package ensy

import "errors"

// Use errors.Is() to check for these in calling code.
var (
	// ErrTemperatureOutOfRange is returned when a target temperature outside
	// the unit's supported range is requested. Nothing is published.
	ErrTemperatureOutOfRange = errors.New("ensy: target temperature out of bounds")
)
