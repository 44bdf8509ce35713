package panzoom

import "errors"

// ErrInvalidArgument is the error kind returned by every validating setter
// of [Controller]. Use errors.Is to test for it and errors.As with
// *[ArgumentError] to recover which value was rejected.
var ErrInvalidArgument = errors.New("panzoom: invalid argument")

// ArgumentError describes a rejected scale value.
type ArgumentError struct {
	// Op is the method that rejected the value, e.g. "SetScaleMax".
	Op string
	// Param names the rejected argument: "min", "max" or "default".
	Param string
	// Value is the rejected value.
	Value float64
	// Reason is a short human readable constraint.
	Reason string
}

func (e *ArgumentError) Error() string {
	return "panzoom: " + e.Op + ": " + e.Param + "=" + formatScale(e.Value) + ": " + e.Reason
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalidArg(op, param string, value float64, reason string) error {
	Logger().Debug("panzoom: argument rejected", "op", op, "param", param, "value", value)
	return &ArgumentError{Op: op, Param: param, Value: value, Reason: reason}
}
