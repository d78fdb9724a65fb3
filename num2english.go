// Package num2english converts numeric values to their English word
// representation, using the Conway–Wechsler naming system for large number
// scales.
//
// The package provides:
//
//   - Convert turns any supported numeric value into English words.
//   - ConvertString converts a number in plain decimal string form.
//   - ConvertOrdinal produces ordinal forms ("one hundred seventy-ninth").
//   - Split exposes the canonical sign/integer/fraction decomposition.
//
// Fractional parts are read as a numerator over a named denominator:
// 6.000052 becomes "six and fifty-two millionths". The denominator follows
// the literal digit count of the fractional part, so 3.50 reads "three and
// fifty hundredths".
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Scientific notation is not supported; such input fails with an error
//     wrapping ErrUnsupportedFormat.
//   - NaN and infinities have no finite decimal expansion and fail the same
//     way.
//   - Exactly one naming convention (Conway–Wechsler, short scale) is
//     produced; there is no selector for alternate systems.
package num2english

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/govalues/decimal"
	"gopkg.in/inf.v0"
)

// ErrUnsupportedFormat reports input whose canonical decimal form cannot be
// expanded into a finite digit sequence (scientific notation, NaN,
// infinities) or whose type is not recognized. All errors returned by this
// package wrap it.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Convert returns the English words for v.
//
// Supported types: all built-in integer kinds, float32, float64, string in
// plain decimal form, *big.Int, *big.Float, decimal.Decimal, and *inf.Dec.
// Any other type, or a value with no finite decimal expansion, returns an
// error wrapping ErrUnsupportedFormat.
func Convert(v any) (string, error) {
	s, err := decimalForm(v)
	if err != nil {
		return "", err
	}
	return ConvertString(s)
}

// ConvertString converts a number in plain decimal notation ("-60.212") to
// English words. Empty, non-numeric, and scientific-notation input returns
// an error wrapping ErrUnsupportedFormat.
func ConvertString(s string) (string, error) {
	sn, err := Split(s)
	if err != nil {
		return "", err
	}
	return render(sn), nil
}

// ConvertOrdinal returns the English ordinal for an integer value: "first",
// "twentieth", "one hundred seventy-ninth". Negative input prefixes
// "negative" to the ordinal of the absolute value. A value with a nonzero
// fractional part has no ordinal and is rejected.
func ConvertOrdinal(v any) (string, error) {
	s, err := decimalForm(v)
	if err != nil {
		return "", err
	}
	sn, err := Split(s)
	if err != nil {
		return "", err
	}
	if !allZeros(sn.Fraction) {
		return "", fmt.Errorf("num2english: %w: no ordinal for fractional value %q", ErrUnsupportedFormat, s)
	}
	sn.Fraction = ""
	return ordinalize(render(sn)), nil
}

// decimalForm renders v in plain decimal notation.
func decimalForm(v any) (string, error) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), nil
	case int8:
		return strconv.FormatInt(int64(n), 10), nil
	case int16:
		return strconv.FormatInt(int64(n), 10), nil
	case int32:
		return strconv.FormatInt(int64(n), 10), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case uint:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	case float32:
		return floatForm(float64(n), 32)
	case float64:
		return floatForm(n, 64)
	case string:
		return n, nil
	case *big.Int:
		if n == nil {
			return "", fmt.Errorf("num2english: %w: nil *big.Int", ErrUnsupportedFormat)
		}
		return n.String(), nil
	case *big.Float:
		if n == nil {
			return "", fmt.Errorf("num2english: %w: nil *big.Float", ErrUnsupportedFormat)
		}
		if n.IsInf() {
			return "", fmt.Errorf("num2english: %w: %v has no decimal expansion", ErrUnsupportedFormat, n)
		}
		return n.Text('f', -1), nil
	case decimal.Decimal:
		return n.String(), nil
	case *inf.Dec:
		if n == nil {
			return "", fmt.Errorf("num2english: %w: nil *inf.Dec", ErrUnsupportedFormat)
		}
		return n.String(), nil
	}
	return "", fmt.Errorf("num2english: %w: type %T", ErrUnsupportedFormat, v)
}

// floatForm expands a finite float into plain 'f' notation with the minimal
// digits that round-trip at the given bit width.
func floatForm(f float64, bits int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("num2english: %w: %v has no decimal expansion", ErrUnsupportedFormat, f)
	}
	return strconv.FormatFloat(f, 'f', -1, bits), nil
}
