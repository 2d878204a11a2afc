package raw

// Converter parses a single token into a T.
// A returned error makes the conversion fall back to the zero value of T.
type Converter[T any] func(token string) (T, error)

// convert applies conv and swallows its error. strconv and friends may
// return partial values next to an error, so those are dropped as well.
func convert[T any](token string, conv Converter[T]) T {
	value, err := conv(token)
	if err != nil {
		var zero T
		return zero
	}
	return value
}

// Scalar converts the first token of r. An empty group or a token conv
// rejects yields the zero value of T; any further tokens are ignored.
func Scalar[T any](r Raw, conv Converter[T]) T {
	token, ok := r.First()
	if !ok {
		var zero T
		return zero
	}
	return convert(token, conv)
}

// Optional is None for an empty group and Some(Scalar(r, conv)) otherwise.
func Optional[T any](r Raw, conv Converter[T]) Option[T] {
	if r.IsEmpty() {
		return None[T]()
	}
	return Some(Scalar(r, conv))
}

// Slice converts every token of r in order. Each token falls back to the
// zero value on its own; an empty group yields an empty, non-nil slice.
func Slice[T any](r Raw, conv Converter[T]) []T {
	values := make([]T, 0, r.Len())
	for _, token := range r.All() {
		values = append(values, convert(token, conv))
	}
	return values
}

// OptionalSlice is None for an empty group and Some(Slice(r, conv)) otherwise.
func OptionalSlice[T any](r Raw, conv Converter[T]) Option[[]T] {
	if r.IsEmpty() {
		return None[[]T]()
	}
	return Some(Slice(r, conv))
}

func Int[T Signed](r Raw) T {
	return Scalar(r, ParseInt[T])
}

func Uint[T Unsigned](r Raw) T {
	return Scalar(r, ParseUint[T])
}

func Float[T Floating](r Raw) T {
	return Scalar(r, ParseFloat[T])
}

func Bool(r Raw) bool {
	return Scalar(r, ParseBool)
}

func Char(r Raw) rune {
	return Scalar(r, ParseChar)
}

// String returns the first token, or "" for an empty group.
func String(r Raw) string {
	return Scalar(r, ParseString)
}

// Strings returns all tokens of the group.
func Strings(r Raw) []string {
	return Slice(r, ParseString)
}
