package volume

import (
	"fmt"
	"strings"
)

// Units used in conversion reports.
const (
	UnitLiter       = "L"
	UnitLiterPerMin = "L/min"
	UnitPercent     = "%"
)

// Row is one line of a conversion report: a parameter with its original
// (ATPS) and corrected (BTPS) values and unit.
type Row struct {
	Parameter string
	ATPS      Measurement
	BTPS      Measurement
	Unit      string
}

// Report lists the original and corrected values for the ten spirometry
// parameters in fixed order: FEV1, FVC, FEV1/FVC, PEF, TV, IC, IRV, EC,
// ERV, VC. A report has no lifecycle beyond the Convert call that built it.
type Report struct {
	Rows []Row
}

// Row returns the row for the given parameter name, and whether the report
// contains it.
func (r *Report) Row(parameter string) (Row, bool) {
	for _, row := range r.Rows {
		if row.Parameter == parameter {
			return row, true
		}
	}

	return Row{}, false
}

// String renders the report as an aligned text table. Absent values render
// as "-".
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-10s %9s %9s  %s\n", "PARAMETER", "ATPS", "BTPS", "UNIT")
	for _, row := range r.Rows {
		fmt.Fprintf(&sb, "%-10s %9s %9s  %s\n", row.Parameter, formatCell(row.ATPS), formatCell(row.BTPS), row.Unit)
	}

	return sb.String()
}

func formatCell(m Measurement) string {
	v, ok := m.Value()
	if !ok {
		return "-"
	}

	return fmt.Sprintf("%.3f", v)
}
