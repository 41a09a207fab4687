// Package options implements generic functional options used by the public
// packages to express optional transform parameters with validated defaults.
package options

// Option configures a target of type T and may reject invalid settings.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	fn func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// New wraps fn as an Option whose application may fail.
//
// Validation belongs inside fn so that an out-of-domain setting surfaces at
// the call site applying the option, before any computation starts.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// Apply applies opts to target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
