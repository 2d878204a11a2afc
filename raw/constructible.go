package raw

// Constructible is implemented by types that know how to build themselves
// from a group of tokens. FromRaw must not fail: on malformed input it
// leaves the receiver at a sensible default.
type Constructible interface {
	FromRaw(r Raw)
}

// Into builds a T from the whole group.
func Into[T any, PT interface {
	*T
	Constructible
}](r Raw) T {
	var value T
	PT(&value).FromRaw(r)
	return value
}

// IntoOptional is None for an empty group and Some(Into(r)) otherwise.
func IntoOptional[T any, PT interface {
	*T
	Constructible
}](r Raw) Option[T] {
	if r.IsEmpty() {
		return None[T]()
	}
	return Some(Into[T, PT](r))
}

// Constructed is a Converter that builds a T from a group holding just
// token. It lets Constructible types take part in Slice and OptionalSlice.
func Constructed[T any, PT interface {
	*T
	Constructible
}](token string) (T, error) {
	return Into[T, PT](New(token)), nil
}
