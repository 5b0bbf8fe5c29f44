// Package errs defines the sentinel errors shared across spiro packages.
//
// Functions that fail wrap one of these sentinels with fmt.Errorf("%w: ...")
// and additional context, so callers can match the failure class with
// errors.Is while still getting a descriptive message.
package errs

import "errors"

var (
	// ErrInvalidInput indicates that a numeric argument was not a single
	// finite value (NaN or ±Inf).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidMeasurement indicates that a measurement set violates the
	// relational volume constraints (VC >= IC, IC >= TV, EC >= TV).
	ErrInvalidMeasurement = errors.New("invalid measurement")
)
