package volume

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasurementZeroValueIsAbsent(t *testing.T) {
	var m Measurement
	require.False(t, m.Valid())

	_, ok := m.Value()
	require.False(t, ok)
}

func TestMeasurementOf(t *testing.T) {
	m := Of(4.2)
	require.True(t, m.Valid())

	v, ok := m.Value()
	require.True(t, ok)
	require.Equal(t, 4.2, v)

	// A provided zero is still provided.
	z := Of(0)
	require.True(t, z.Valid())
}

func TestMeasurementSub(t *testing.T) {
	v, ok := Of(10).Sub(Of(9)).Value()
	require.True(t, ok)
	require.Equal(t, 1.0, v)

	// Absence propagates from either operand.
	require.False(t, Of(10).Sub(Measurement{}).Valid())
	require.False(t, Measurement{}.Sub(Of(9)).Valid())
	require.False(t, Measurement{}.Sub(Measurement{}).Valid())
}

func TestMeasurementPercentOf(t *testing.T) {
	v, ok := Of(5).PercentOf(Of(10)).Value()
	require.True(t, ok)
	require.Equal(t, 50.0, v)

	require.False(t, Of(5).PercentOf(Measurement{}).Valid())
	require.False(t, Measurement{}.PercentOf(Of(10)).Valid())
}

func TestMeasurementLess(t *testing.T) {
	require.True(t, Of(5).less(Of(10)))
	require.False(t, Of(10).less(Of(5)))
	require.False(t, Of(10).less(Of(10)))

	// Comparisons with an absent operand are skipped.
	require.False(t, Measurement{}.less(Of(10)))
	require.False(t, Of(5).less(Measurement{}))
}
