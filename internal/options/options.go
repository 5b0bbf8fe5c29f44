// Package options provides the generic functional-option helper shared by
// the public spiro packages.
package options

// Option configures a target of type T during construction. Options that
// perform validation return an error; construction stops at the first
// failing option.
type Option[T any] func(T) error

// Apply runs opts against target in order, returning the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError adapts a function that cannot fail into an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}
