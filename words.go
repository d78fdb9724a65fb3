// Word tables for English number rendering.
package num2english

const (
	wordZero     = "zero"
	wordNegative = "negative"
	wordHundred  = "hundred"
	wordAnd      = "and"
)

// ones is indexed by value (1–19); index 0 is unused.
var ones = [20]string{
	"",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// tens is indexed by tens digit (2–9); indices 0–1 are unused since values
// below twenty read from ones.
var tens = [10]string{
	"",
	"",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

// ordinalIrregular maps cardinal words whose ordinal is not formed by the
// regular -th / -ieth suffix rules.
var ordinalIrregular = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}
