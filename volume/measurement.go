package volume

// Measurement is an optional measured value. The zero value means the
// measurement was not provided; absence propagates through arithmetic
// rather than erroring.
type Measurement struct {
	value float64
	valid bool
}

// Of wraps v as a provided measurement.
func Of(v float64) Measurement {
	return Measurement{value: v, valid: true}
}

// Value returns the measured value and whether it was provided.
func (m Measurement) Value() (float64, bool) {
	return m.value, m.valid
}

// Valid reports whether the measurement was provided.
func (m Measurement) Valid() bool {
	return m.valid
}

// Sub returns m minus o. The result is absent if either operand is absent.
func (m Measurement) Sub(o Measurement) Measurement {
	if !m.valid || !o.valid {
		return Measurement{}
	}

	return Of(m.value - o.value)
}

// PercentOf returns m as a percentage of o (m * 100 / o). The result is
// absent if either operand is absent.
func (m Measurement) PercentOf(o Measurement) Measurement {
	if !m.valid || !o.valid {
		return Measurement{}
	}

	return Of(m.value * 100 / o.value)
}

// less reports whether both operands are present and m < o. Pairs with an
// absent operand compare vacuously in range.
func (m Measurement) less(o Measurement) bool {
	return m.valid && o.valid && m.value < o.value
}
