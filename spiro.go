// Package spiro converts lung-volume measurements from ambient laboratory
// conditions (ATPS) to body-temperature equivalents (BTPS).
//
// The library is a small, deterministic computational utility with two
// entry points: correction-factor resolution and lung-volume conversion.
// There is no I/O, no persistence and no shared mutable state; the only
// process-wide data is the read-only BTPS reference table, so every
// operation is safe for concurrent use.
//
// # Correction Factors
//
// Factors come from a fixed reference table of (temperature, factor) pairs
// covering 20-37°C. A temperature present in the table resolves to its
// stored factor exactly; any other temperature is predicted from an
// ordinary least-squares line fitted over the whole table:
//
//	f, err := spiro.Resolve(25)   // 1.075, exact table row
//	f, err = spiro.Resolve(25.5)  // regression prediction
//
// # Volume Conversion
//
// Convert validates a measurement set, derives IRV, ERV and the FEV1/FVC
// ratio, and returns a fixed ten-row report with original and corrected
// values:
//
//	report, err := spiro.Convert(spiro.MeasurementSet{
//	    FEV1: spiro.Value(3.2),
//	    FVC:  spiro.Value(4.1),
//	    TV:   spiro.Value(0.5),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(report)
//
// Fields left as the zero Measurement are treated as not provided and
// propagate as absent through derivation and output. Note that the BTPS
// column applies the factor transform to the measurement values themselves;
// see the volume package documentation for this caveat.
//
// The subpackages expose the full API: factor for tables and resolvers,
// volume for measurement sets and reports, errs for the sentinel errors.
package spiro

import (
	"github.com/spirolab/spiro/factor"
	"github.com/spirolab/spiro/volume"
)

// Re-exported types for callers that only need the two entry points.
type (
	// Measurement is an optional measured value; the zero value means
	// "not provided".
	Measurement = volume.Measurement
	// MeasurementSet holds the seven primary spirometry inputs.
	MeasurementSet = volume.MeasurementSet
	// Report is the ordered ten-row conversion result.
	Report = volume.Report
	// Row is one report line.
	Row = volume.Row
)

// Value wraps v as a provided measurement.
func Value(v float64) Measurement {
	return volume.Of(v)
}

// Resolve returns the BTPS correction factor for an ambient temperature in
// °C, by exact lookup in the built-in reference table or by linear
// regression over it.
//
// Returns an error wrapping errs.ErrInvalidInput for NaN or ±Inf.
func Resolve(tempC float64) (float64, error) {
	return factor.Resolve(tempC)
}

// Convert validates set and returns the ten-row ATPS/BTPS conversion
// report. See volume.Convert for validation, derivation and BTPS-column
// semantics.
//
// Returns an error wrapping errs.ErrInvalidMeasurement if the relational
// volume constraints are violated; no partial report is produced.
func Convert(set MeasurementSet, opts ...volume.Option) (*Report, error) {
	return volume.Convert(set, opts...)
}
