package raw

import "fmt"

// Option holds a value that may be absent. It is the result of the
// optional conversions, where an empty group means "not given".
type Option[T any] struct {
	value T
	valid bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, valid: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.valid
}

func (o Option[T]) IsSome() bool {
	return o.valid
}

func (o Option[T]) IsNone() bool {
	return !o.valid
}

// OrElse returns the value if present, def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.valid {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if !o.valid {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
