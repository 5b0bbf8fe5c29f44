package factor

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/spirolab/spiro/errs"
	"github.com/spirolab/spiro/internal/options"
)

// Resolver resolves BTPS correction factors against a reference table.
//
// A Resolver is a pure function of its table: it holds no mutable state and
// is safe for concurrent use.
type Resolver struct {
	table *Table
}

// defaultResolver is bound to the built-in reference table.
var defaultResolver = &Resolver{table: defaultTable}

// NewResolver creates a resolver bound to the built-in reference table
// unless WithTable overrides it.
//
// Parameters:
//   - opts: Optional configuration functions (see Option)
//
// Returns:
//   - *Resolver: The created resolver
//   - error: An error if an option fails
//
// Example:
//
//	resolver, err := factor.NewResolver(factor.WithTable(customTable))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f, err := resolver.Resolve(23.4)
func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{table: defaultTable}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Resolve returns the correction factor for the given ambient temperature.
//
// A temperature that matches a table row by value equality returns the
// stored factor exactly, never a regression approximation. Any other
// temperature is predicted from an ordinary least-squares line fitted over
// the whole table; the fit is recomputed on each call. Temperatures outside
// the table range extrapolate along the same line without clamping.
//
// Returns an error wrapping errs.ErrInvalidInput if tempC is NaN or ±Inf.
func (r *Resolver) Resolve(tempC float64) (float64, error) {
	if !isFinite(tempC) {
		return 0, fmt.Errorf("%w: temperature must be a finite number, got %g", errs.ErrInvalidInput, tempC)
	}

	if f, ok := r.table.Lookup(tempC); ok {
		return f, nil
	}

	return r.Fit().Predict(tempC), nil
}

// Table returns the reference table the resolver resolves against.
func (r *Resolver) Table() *Table {
	return r.table
}

// Fit performs the least-squares fit of factor on temperature over the
// whole reference table and returns the fitted line.
func (r *Resolver) Fit() Line {
	temps, factors := r.table.series()
	intercept, slope := stat.LinearRegression(temps, factors, nil, false)

	return Line{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  stat.RSquared(temps, factors, nil, intercept, slope),
	}
}

// Resolve resolves tempC against the built-in reference table. See
// Resolver.Resolve for the lookup-or-regression semantics.
func Resolve(tempC float64) (float64, error) {
	return defaultResolver.Resolve(tempC)
}

// Line is an ordinary least-squares line fitted over a reference table.
type Line struct {
	// Slope is the factor change per °C.
	Slope float64
	// Intercept is the predicted factor at 0°C.
	Intercept float64
	// RSquared is the coefficient of determination of the fit (0-1).
	RSquared float64
}

// Predict evaluates the fitted line at x.
func (l Line) Predict(x float64) float64 {
	return l.Intercept + l.Slope*x
}

// String returns a human-readable summary of the fitted line.
func (l Line) String() string {
	return fmt.Sprintf("Line{factor = %.6f %+.6f*t, R²: %.4f}", l.Intercept, l.Slope, l.RSquared)
}
