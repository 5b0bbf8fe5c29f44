// Package factor resolves BTPS correction factors from ambient temperature.
//
// Spirometry volumes measured at ambient temperature and pressure, saturated
// (ATPS) are smaller than the same gas volume at body conditions (BTPS).
// The conversion uses a temperature-dependent correction factor taken from a
// fixed reference table covering the clinically relevant 20-37°C range.
//
// # Resolution Strategy
//
// A factor is resolved in two steps:
//
//  1. Exact lookup: if the requested temperature matches a table row by
//     value equality, the stored factor is returned bit-for-bit, with no
//     interpolation or rounding.
//  2. Regression fallback: otherwise an ordinary least-squares line of
//     factor on temperature is fitted over the whole table and evaluated at
//     the requested temperature. Temperatures outside the table range use
//     the same fitted line; there is no clamping.
//
// The fit is recomputed on every miss, so a Resolver holds no state beyond
// its table and is safe for concurrent use.
//
// # Basic Usage
//
// Resolve against the built-in table:
//
//	f, err := factor.Resolve(25) // 1.075, exact table row
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or against a custom table:
//
//	table, err := factor.New([]factor.Row{{TempC: 18, Factor: 1.114}, {TempC: 19, Factor: 1.108}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resolver, err := factor.NewResolver(factor.WithTable(table))
//
// Non-finite temperatures (NaN, ±Inf) fail with errs.ErrInvalidInput.
package factor
