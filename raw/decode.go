package raw

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

var ErrUnsupportedType = errors.New("raw: unsupported destination type")

var (
	constructibleType   = reflect.TypeFor[Constructible]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// Decode stores the conversion of r into the value dst points to, choosing
// the shape from the destination type:
//
//	T       scalar (first token, zero value on failure)
//	*T      optional (nil for an empty group)
//	[]T     sequence (every token, per-element fallback)
//	*[]T    optional sequence
//
// Types implementing Constructible receive the whole group, types
// implementing encoding.TextUnmarshaler are parsed from the first token.
// A rune is an int32 and decodes as a number; use Rune for characters.
// Malformed tokens never cause an error; only destinations Decode cannot
// handle do, reported as ErrUnsupportedType.
func Decode(r Raw, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: %T is not a non-nil pointer", ErrUnsupportedType, dst)
	}
	return DecodeValue(r, rv.Elem())
}

// DecodeValue is Decode for a settable reflect.Value.
func DecodeValue(r Raw, v reflect.Value) error {
	if !v.CanSet() {
		return fmt.Errorf("%w: %s is not settable", ErrUnsupportedType, v.Type())
	}

	t := v.Type()
	switch {
	case reflect.PointerTo(t).Implements(constructibleType):
		v.SetZero()
		v.Addr().Interface().(Constructible).FromRaw(r)
		return nil

	case reflect.PointerTo(t).Implements(textUnmarshalerType):
		v.SetZero()
		if token, ok := r.First(); ok {
			target := reflect.New(t)
			if err := target.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(token)); err == nil {
				v.Set(target.Elem())
			}
		}
		return nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		if r.IsEmpty() {
			v.SetZero()
			return nil
		}
		elem := reflect.New(t.Elem())
		if err := DecodeValue(r, elem.Elem()); err != nil {
			return err
		}
		v.Set(elem)
		return nil

	case reflect.Slice:
		values := reflect.MakeSlice(t, 0, r.Len())
		for _, token := range r.All() {
			elem := reflect.New(t.Elem()).Elem()
			if err := DecodeValue(New(token), elem); err != nil {
				return err
			}
			values = reflect.Append(values, elem)
		}
		v.Set(values)
		return nil
	}

	return decodeScalar(r, v)
}

func decodeScalar(r Raw, v reflect.Value) error {
	t := v.Type()
	token, _ := r.First()

	switch t.Kind() {
	case reflect.String:
		v.SetString(token)

	case reflect.Bool:
		v.SetBool(convert(token, ParseBool))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(token, 10, t.Bits())
		if err != nil {
			n = 0
		}
		v.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := parseUint(token, t.Bits())
		if err != nil {
			n = 0
		}
		v.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := parseFloat(token, t.Bits())
		if err != nil {
			f = 0
		}
		v.SetFloat(f)

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}

	return nil
}
