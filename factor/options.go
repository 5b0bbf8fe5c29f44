package factor

import (
	"errors"

	"github.com/spirolab/spiro/internal/options"
)

// Option is a functional option for NewResolver.
type Option = options.Option[*Resolver]

// WithTable sets the reference table the resolver resolves against.
// The table must have been built with New (or be the Default table).
func WithTable(t *Table) Option {
	return func(r *Resolver) error {
		if t == nil || len(t.rows) == 0 {
			return errors.New("reference table must not be empty")
		}
		r.table = t

		return nil
	}
}
