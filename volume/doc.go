// Package volume validates spirometry measurement sets and converts them
// from ambient (ATPS) to body-temperature (BTPS) conditions.
//
// A MeasurementSet carries the seven primary inputs (FEV1, FVC, PEF, TV,
// IC, EC, VC); any subset may be left absent and absence propagates through
// derivation and output instead of erroring. Convert validates the
// relational volume constraints (VC >= IC, IC >= TV, EC >= TV, each checked
// only when both operands are present), derives IRV, ERV and the FEV1/FVC
// ratio, and assembles a fixed ten-row Report.
//
// # BTPS Column Caveat
//
// The BTPS column is produced by passing each present ATPS value itself
// through the factor package's lookup-or-regression transform. The
// correction-factor machinery is reused here as a generic scalar transform:
// the resolver receives volumes (liters) and flow rates, not temperatures,
// and a value that happens to equal a reference-table temperature (for
// example 25.0) takes the exact-lookup path. This behavior is intentional
// and kept stable. Callers that need a strict physiological BTPS correction
// should instead resolve a factor for the ambient temperature with
// factor.Resolve and multiply their volumes by it.
//
// # Basic Usage
//
//	set := volume.MeasurementSet{
//	    FEV1: volume.Of(3.2),
//	    FVC:  volume.Of(4.1),
//	    TV:   volume.Of(0.5),
//	}
//	report, err := volume.Convert(set)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(report)
//
// Constraint violations fail with errs.ErrInvalidMeasurement and produce no
// report.
package volume
