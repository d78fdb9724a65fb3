// Canonical decomposition of plain decimal number strings.
package num2english

import (
	"fmt"
	"strings"
)

// SplitNumber is a number split into sign, integer digits, and fractional
// digits. Integer carries no leading zeros and is empty when the integer
// part is zero. Fraction holds the fractional digits exactly as written,
// trailing zeros included, since the literal digit count selects the
// denominator word (3.50 reads "three and fifty hundredths").
type SplitNumber struct {
	Negative bool
	Integer  string
	Fraction string
}

// Split canonicalizes a number written in plain decimal notation. It accepts
// an optional leading '-' or '+' and at most one '.'; the fractional digits
// may stand alone (".5") but a trailing point ("3.") is rejected.
//
// Scientific notation has no finite digit expansion here and fails with an
// error wrapping ErrUnsupportedFormat, as does any other malformed input.
func Split(s string) (SplitNumber, error) {
	var sn SplitNumber

	s = strings.TrimSpace(s)
	if s == "" {
		return SplitNumber{}, fmt.Errorf("num2english: %w: empty input", ErrUnsupportedFormat)
	}

	switch s[0] {
	case '-':
		sn.Negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	if strings.ContainsAny(s, "eE") {
		return SplitNumber{}, fmt.Errorf("num2english: %w: scientific notation %q", ErrUnsupportedFormat, s)
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
		if !allDigits(frac) {
			return SplitNumber{}, fmt.Errorf("num2english: %w: %q", ErrUnsupportedFormat, s)
		}
	}

	if whole == "" {
		whole = "0"
	}
	if !allDigits(whole) {
		return SplitNumber{}, fmt.Errorf("num2english: %w: %q", ErrUnsupportedFormat, s)
	}

	sn.Integer = strings.TrimLeft(whole, "0")
	sn.Fraction = frac

	// "-0" and "-0.0" read plain "zero".
	if sn.Negative && sn.Integer == "" && allZeros(frac) {
		sn.Negative = false
	}

	return sn, nil
}

// allDigits reports whether s consists entirely of ASCII digit characters.
// An empty string returns false.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// allZeros reports whether s consists entirely of '0' characters.
func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
