package factor

import (
	"fmt"
	"math"
)

// Row pairs an ambient temperature in °C with its BTPS correction factor.
type Row struct {
	TempC  float64
	Factor float64
}

// Table is an immutable, ordered set of reference rows with unique
// temperatures. The zero value is not usable; construct custom tables with
// New or use the built-in table via Default.
type Table struct {
	rows []Row
}

// defaultTable holds the standard BTPS correction factors for ambient
// temperatures from 20°C to 37°C, one row per degree. Initialized once,
// never mutated.
var defaultTable = &Table{rows: []Row{
	{TempC: 20, Factor: 1.102},
	{TempC: 21, Factor: 1.096},
	{TempC: 22, Factor: 1.091},
	{TempC: 23, Factor: 1.085},
	{TempC: 24, Factor: 1.080},
	{TempC: 25, Factor: 1.075},
	{TempC: 26, Factor: 1.068},
	{TempC: 27, Factor: 1.063},
	{TempC: 28, Factor: 1.057},
	{TempC: 29, Factor: 1.051},
	{TempC: 30, Factor: 1.045},
	{TempC: 31, Factor: 1.039},
	{TempC: 32, Factor: 1.032},
	{TempC: 33, Factor: 1.026},
	{TempC: 34, Factor: 1.020},
	{TempC: 35, Factor: 1.014},
	{TempC: 36, Factor: 1.007},
	{TempC: 37, Factor: 1.000},
}}

// Default returns the built-in reference table (20-37°C). The returned
// table is shared; it is read-only and safe for concurrent use.
func Default() *Table {
	return defaultTable
}

// New creates a Table from the given rows.
//
// The rows are copied, so later mutation of the input slice does not affect
// the table.
//
// Returns an error if fewer than two rows are given (the regression
// fallback needs at least two points), if any temperature or factor is not
// finite, or if a temperature appears more than once.
func New(rows []Row) (*Table, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("reference table needs at least 2 rows, got %d", len(rows))
	}

	seen := make(map[float64]struct{}, len(rows))
	copied := make([]Row, len(rows))
	for i, row := range rows {
		if !isFinite(row.TempC) || !isFinite(row.Factor) {
			return nil, fmt.Errorf("reference row %d is not finite: {%g, %g}", i, row.TempC, row.Factor)
		}
		if _, dup := seen[row.TempC]; dup {
			return nil, fmt.Errorf("duplicate temperature %g°C in reference table", row.TempC)
		}
		seen[row.TempC] = struct{}{}
		copied[i] = row
	}

	return &Table{rows: copied}, nil
}

// Lookup returns the stored factor for a temperature that matches a table
// row by value equality, and whether such a row exists.
func (t *Table) Lookup(tempC float64) (float64, bool) {
	for _, row := range t.rows {
		if row.TempC == tempC {
			return row.Factor, true
		}
	}

	return 0, false
}

// Len returns the number of reference rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the reference rows in table order.
func (t *Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	copy(rows, t.rows)

	return rows
}

// series returns the temperature and factor columns for the regression fit.
func (t *Table) series() (temps, factors []float64) {
	temps = make([]float64, len(t.rows))
	factors = make([]float64, len(t.rows))
	for i, row := range t.rows {
		temps[i] = row.TempC
		factors[i] = row.Factor
	}

	return temps, factors
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
