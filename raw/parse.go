package raw

import (
	"encoding"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	"golang.org/x/exp/constraints"
)

var (
	ErrNotChar  = errors.New("raw: token is not a single character")
	ErrNotBool  = errors.New("raw: token is neither true nor false")
	ErrHexFloat = errors.New("raw: hexadecimal floats are not accepted")
)

type (
	Signed   = constraints.Signed
	Unsigned = constraints.Unsigned
	Floating = constraints.Float
)

// ParseInt parses a base 10 integer. Values outside the range of T are
// rejected rather than truncated.
func ParseInt[T Signed](token string) (T, error) {
	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, err
	}
	return safecast.Conv[T](value)
}

// ParseUint parses a base 10 unsigned integer. Values outside the range of
// T are rejected rather than truncated.
func ParseUint[T Unsigned](token string) (T, error) {
	value, err := parseUint(token, 64)
	if err != nil {
		return 0, err
	}
	return safecast.Conv[T](value)
}

// ParseFloat parses a decimal float with the precision of T. Values too
// large for T become ±Inf.
func ParseFloat[T Floating](token string) (T, error) {
	value, err := parseFloat(token, reflect.TypeFor[T]().Bits())
	if err != nil {
		return 0, err
	}
	return T(value), nil
}

// ParseBool accepts exactly "true" and "false".
func ParseBool(token string) (bool, error) {
	switch token {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, ErrNotBool
	}
}

// ParseChar accepts a token made of exactly one rune.
func ParseChar(token string) (rune, error) {
	if utf8.RuneCountInString(token) != 1 {
		return 0, ErrNotChar
	}
	r, size := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError && size == 1 {
		return 0, ErrNotChar
	}
	return r, nil
}

// Rune is a single character. Unlike rune it decodes from its text form,
// which makes it usable with Decode and Invocation.Bind.
type Rune rune

func (r *Rune) UnmarshalText(text []byte) error {
	c, err := ParseChar(string(text))
	if err != nil {
		return err
	}
	*r = Rune(c)
	return nil
}

func ParseString(token string) (string, error) {
	return token, nil
}

// ParseText parses a token with the UnmarshalText method of *T, which makes
// types like netip.Addr or big.Int usable as arguments.
func ParseText[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](token string) (T, error) {
	var value T
	if err := PT(&value).UnmarshalText([]byte(token)); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// parseUint is strconv.ParseUint with an optional leading "+", matching
// what strconv.ParseInt accepts for signed values.
func parseUint(token string, bits int) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, bits)
}

// parseFloat is strconv.ParseFloat restricted to decimal notation. An
// overflow keeps the ±Inf strconv reports along with ErrRange.
func parseFloat(token string, bits int) (float64, error) {
	mantissa := strings.TrimLeft(token, "+-")
	if strings.HasPrefix(mantissa, "0x") || strings.HasPrefix(mantissa, "0X") {
		return 0, ErrHexFloat
	}

	value, err := strconv.ParseFloat(token, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return value, nil
}
