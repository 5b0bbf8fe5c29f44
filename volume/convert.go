package volume

import (
	"fmt"

	"github.com/spirolab/spiro/errs"
	"github.com/spirolab/spiro/factor"
	"github.com/spirolab/spiro/internal/options"
)

// MeasurementSet holds the primary spirometry inputs measured under ambient
// (ATPS) conditions. Any field may be left as the zero Measurement to mark
// it as not provided.
type MeasurementSet struct {
	FEV1 Measurement // forced expiratory volume in one second [L]
	FVC  Measurement // forced vital capacity [L]
	PEF  Measurement // peak expiratory flow [L/min]
	TV   Measurement // tidal volume [L]
	IC   Measurement // inspiratory capacity [L]
	EC   Measurement // expiratory capacity [L]
	VC   Measurement // vital capacity [L]
}

// Validate checks the relational volume constraints VC >= IC, IC >= TV and
// EC >= TV. Each relation is evaluated only when both operands are present;
// a set in which every relation has an absent operand is trivially valid,
// which deliberately lets callers supply partial data.
//
// Returns an error wrapping errs.ErrInvalidMeasurement naming the first
// violated relation, or nil.
func (s MeasurementSet) Validate() error {
	checks := []struct {
		relation string
		a, b     Measurement
	}{
		{"VC >= IC", s.VC, s.IC},
		{"IC >= TV", s.IC, s.TV},
		{"EC >= TV", s.EC, s.TV},
	}

	for _, c := range checks {
		if c.a.less(c.b) {
			av, _ := c.a.Value()
			bv, _ := c.b.Value()

			return fmt.Errorf("%w: %s violated (%g < %g)", errs.ErrInvalidMeasurement, c.relation, av, bv)
		}
	}

	return nil
}

// converter carries the conversion configuration assembled from options.
type converter struct {
	resolver *factor.Resolver
}

// Convert validates set, derives the secondary quantities and returns the
// ten-row conversion report.
//
// The report rows appear in fixed order: FEV1, FVC, FEV1/FVC, PEF, TV, IC,
// IRV, EC, ERV, VC. IRV = IC - TV, ERV = EC - TV and FEV1/FVC is a
// percentage; a derived value with an absent input is itself absent.
//
// The BTPS column passes each present ATPS value through the resolver's
// lookup-or-regression transform; see the package documentation for why
// this applies the factor machinery to the values themselves rather than to
// an ambient temperature. Absent ATPS values yield absent BTPS values.
//
// Returns an error wrapping errs.ErrInvalidMeasurement if validation fails;
// no partial report is produced. A fresh report is built on every call.
func Convert(set MeasurementSet, opts ...Option) (*Report, error) {
	conv := &converter{}
	if err := options.Apply(conv, opts...); err != nil {
		return nil, err
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	rows := []Row{
		{Parameter: "FEV1", ATPS: set.FEV1, Unit: UnitLiter},
		{Parameter: "FVC", ATPS: set.FVC, Unit: UnitLiter},
		{Parameter: "FEV1/FVC", ATPS: set.FEV1.PercentOf(set.FVC), Unit: UnitPercent},
		{Parameter: "PEF", ATPS: set.PEF, Unit: UnitLiterPerMin},
		{Parameter: "TV", ATPS: set.TV, Unit: UnitLiter},
		{Parameter: "IC", ATPS: set.IC, Unit: UnitLiter},
		{Parameter: "IRV", ATPS: set.IC.Sub(set.TV), Unit: UnitLiter},
		{Parameter: "EC", ATPS: set.EC, Unit: UnitLiter},
		{Parameter: "ERV", ATPS: set.EC.Sub(set.TV), Unit: UnitLiter},
		{Parameter: "VC", ATPS: set.VC, Unit: UnitLiter},
	}

	for i := range rows {
		atps, ok := rows[i].ATPS.Value()
		if !ok {
			continue
		}
		btps, err := conv.resolve(atps)
		if err != nil {
			return nil, fmt.Errorf("row %s: %w", rows[i].Parameter, err)
		}
		rows[i].BTPS = Of(btps)
	}

	return &Report{Rows: rows}, nil
}

// resolve applies the configured resolver, falling back to the built-in
// reference table.
func (c *converter) resolve(v float64) (float64, error) {
	if c.resolver != nil {
		return c.resolver.Resolve(v)
	}

	return factor.Resolve(v)
}
