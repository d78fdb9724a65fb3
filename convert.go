// Unexported rendering logic for English number words.
package num2english

import (
	"strconv"
	"strings"

	"github.com/trvswgnr/num2english/scales"
)

const growRender = 160 // estimated bytes for a conversion with a fraction

// render converts a canonical number to English words.
func render(sn SplitNumber) string {
	hasInt := sn.Integer != ""
	hasFrac := sn.Fraction != "" && !allZeros(sn.Fraction)

	if !hasInt && !hasFrac {
		return wordZero
	}

	var b strings.Builder
	b.Grow(growRender)

	if sn.Negative {
		b.WriteString(wordNegative)
	}

	if hasInt {
		writeGroups(&b, sn.Integer)
	}

	if hasFrac {
		// "and" joins the clauses only when an integer clause was written;
		// a zero integer part is omitted entirely (0.056 reads
		// "fifty-six thousandths").
		if hasInt {
			b.WriteByte(' ')
			b.WriteString(wordAnd)
		}
		numerator := strings.TrimLeft(sn.Fraction, "0")
		writeGroups(&b, numerator)
		b.WriteByte(' ')
		b.WriteString(denominator(len(sn.Fraction), numerator != "1"))
	}

	return b.String()
}

// writeGroups writes the English phrase for a digit string with no leading
// zeros, joining three-digit groups with their scale names from most to
// least significant. Groups whose value is zero produce no words.
func writeGroups(b *strings.Builder, digits string) {
	n := len(digits)
	first := n % 3
	if first == 0 {
		first = 3
	}

	for start, end := 0, first; start < n; start, end = end, end+3 {
		v, _ := strconv.Atoi(digits[start:end])
		if v == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		writeGroup(b, v)
		if g := (n - end) / 3; g > 0 {
			b.WriteByte(' ')
			b.WriteString(scales.Name(g))
		}
	}
}

// writeGroup writes a number in [1, 999] as English words into b.
func writeGroup(b *strings.Builder, n int) {
	h := n / 100
	r := n % 100

	if h > 0 {
		b.WriteString(ones[h])
		b.WriteByte(' ')
		b.WriteString(wordHundred)
		if r > 0 {
			b.WriteByte(' ')
		}
	}

	switch {
	case r >= 20:
		b.WriteString(tens[r/10])
		if r%10 > 0 {
			b.WriteByte('-')
			b.WriteString(ones[r%10])
		}
	case r > 0:
		b.WriteString(ones[r])
	}
}

// denominator builds the fractional denominator word from the literal digit
// count of the fractional part: 1 -> "tenth(s)", 2 -> "hundredth(s)",
// 3 -> "thousandth(s)", 4 -> "ten-thousandth(s)", 6 -> "millionth(s)".
func denominator(digits int, plural bool) string {
	var word string
	switch digits {
	case 1:
		word = "tenth"
	case 2:
		word = "hundredth"
	default:
		var power string
		switch digits % 3 {
		case 1:
			power = "ten-"
		case 2:
			power = "hundred-"
		}
		word = power + ordinalize(scales.Name(digits/3))
	}
	if plural {
		word += "s"
	}
	return word
}

// ordinalize converts the final word of a cardinal phrase to its ordinal
// form: "one" -> "first", "twenty" -> "twentieth",
// "seventy-nine" -> "seventy-ninth", "million" -> "millionth".
func ordinalize(phrase string) string {
	head, last := "", phrase
	if i := strings.LastIndexAny(phrase, " -"); i >= 0 {
		head, last = phrase[:i+1], phrase[i+1:]
	}

	if irr, ok := ordinalIrregular[last]; ok {
		return head + irr
	}
	if strings.HasSuffix(last, "y") {
		return head + last[:len(last)-1] + "ieth"
	}
	return head + last + "th"
}
