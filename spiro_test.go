package spiro

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spirolab/spiro/errs"
	"github.com/spirolab/spiro/factor"
)

// TestResolve verifies the facade delegates to the factor package.
func TestResolve(t *testing.T) {
	got, err := Resolve(25)
	require.NoError(t, err)
	require.Equal(t, 1.075, got)

	want, err := factor.Resolve(30.2)
	require.NoError(t, err)
	got, err = Resolve(30.2)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestConvert verifies the facade produces the full report.
func TestConvert(t *testing.T) {
	report, err := Convert(MeasurementSet{
		FEV1: Value(5),
		FVC:  Value(10),
		PEF:  Value(4),
		TV:   Value(9),
		IC:   Value(10),
		EC:   Value(12),
		VC:   Value(10),
	})
	require.NoError(t, err)
	require.Len(t, report.Rows, 10)

	row, ok := report.Row("FEV1/FVC")
	require.True(t, ok)
	ratio, present := row.ATPS.Value()
	require.True(t, present)
	require.Equal(t, 50.0, ratio)
}

// TestConvertInvalid verifies constraint violations surface through the facade.
func TestConvertInvalid(t *testing.T) {
	_, err := Convert(MeasurementSet{TV: Value(10), IC: Value(5), VC: Value(20)})
	require.ErrorIs(t, err, errs.ErrInvalidMeasurement)
}
