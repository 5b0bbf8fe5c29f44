package volume

import (
	"errors"

	"github.com/spirolab/spiro/factor"
	"github.com/spirolab/spiro/internal/options"
)

// Option is a functional option for Convert.
type Option = options.Option[*converter]

// WithResolver sets the factor resolver used for the BTPS column. By
// default Convert resolves against the built-in reference table.
func WithResolver(r *factor.Resolver) Option {
	return func(c *converter) error {
		if r == nil {
			return errors.New("resolver must not be nil")
		}
		c.resolver = r

		return nil
	}
}
