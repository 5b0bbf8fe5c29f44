package factor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := Default()
	require.Equal(t, 18, table.Len())

	rows := table.Rows()
	require.Equal(t, Row{TempC: 20, Factor: 1.102}, rows[0])
	require.Equal(t, Row{TempC: 37, Factor: 1.000}, rows[len(rows)-1])

	// Temperatures are unique and one row per degree.
	seen := make(map[float64]bool)
	for _, row := range rows {
		require.False(t, seen[row.TempC], "duplicate temperature %g", row.TempC)
		seen[row.TempC] = true
	}
}

func TestTableLookup(t *testing.T) {
	table := Default()

	f, ok := table.Lookup(25)
	require.True(t, ok)
	require.Equal(t, 1.075, f)

	_, ok = table.Lookup(25.5)
	require.False(t, ok)

	_, ok = table.Lookup(19)
	require.False(t, ok)
}

func TestNew(t *testing.T) {
	t.Run("valid rows", func(t *testing.T) {
		input := []Row{{TempC: 18, Factor: 1.114}, {TempC: 19, Factor: 1.108}}
		table, err := New(input)
		require.NoError(t, err)
		require.Equal(t, 2, table.Len())

		// Mutating the input must not affect the table.
		input[0].Factor = 0
		f, ok := table.Lookup(18)
		require.True(t, ok)
		require.Equal(t, 1.114, f)
	})

	t.Run("rejects short tables", func(t *testing.T) {
		_, err := New([]Row{{TempC: 20, Factor: 1.102}})
		require.Error(t, err)
		require.Contains(t, err.Error(), "at least 2 rows")
	})

	t.Run("rejects duplicate temperatures", func(t *testing.T) {
		_, err := New([]Row{
			{TempC: 20, Factor: 1.102},
			{TempC: 20, Factor: 1.096},
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "duplicate temperature")
	})

	t.Run("rejects non-finite entries", func(t *testing.T) {
		_, err := New([]Row{
			{TempC: 20, Factor: math.NaN()},
			{TempC: 21, Factor: 1.096},
		})
		require.Error(t, err)

		_, err = New([]Row{
			{TempC: math.Inf(1), Factor: 1.102},
			{TempC: 21, Factor: 1.096},
		})
		require.Error(t, err)
	})
}

func TestTableRowsCopy(t *testing.T) {
	table := Default()
	rows := table.Rows()
	rows[0].Factor = 0

	f, ok := table.Lookup(20)
	require.True(t, ok)
	require.Equal(t, 1.102, f)
}
