// Prefix tables for Conway–Wechsler scale-name construction.
package scales

// base holds the standard names for zillion indices 1–9.
// Index 0 is unused.
var base = [10]string{
	"",
	"million",
	"billion",
	"trillion",
	"quadrillion",
	"quintillion",
	"sextillion",
	"septillion",
	"octillion",
	"nonillion",
}

// small holds the combining stems for zillion group values 1–9, used inside
// compound names ("mi" + "lli" chains in the base-1000 extension).
// Index 0 is unused.
var small = [10]string{
	"",
	"mi",
	"bi",
	"tri",
	"quadri",
	"quinti",
	"sexti",
	"septi",
	"octi",
	"noni",
}

// prefix pairs a Latin stem with the marker letters that govern how a units
// prefix fuses onto it.
type prefix struct {
	stem    string
	markers string
}

// tensPrefix is indexed by the tens digit of the zillion index.
// Index 0 is unused.
var tensPrefix = [10]prefix{
	{},
	{stem: "deci", markers: "n"},
	{stem: "viginti", markers: "ms"},
	{stem: "triginta", markers: "ns"},
	{stem: "quadraginta", markers: "ns"},
	{stem: "quinquaginta", markers: "ns"},
	{stem: "sexaginta", markers: "n"},
	{stem: "septuaginta", markers: "n"},
	{stem: "octoginta", markers: "mx"},
	{stem: "nonaginta", markers: ""},
}

// hundredsPrefix is indexed by the hundreds digit of the zillion index.
// Index 0 is unused.
var hundredsPrefix = [10]prefix{
	{},
	{stem: "centi", markers: "nx"},
	{stem: "ducenti", markers: "n"},
	{stem: "trecenti", markers: "ns"},
	{stem: "quadringenti", markers: "ns"},
	{stem: "quingenti", markers: "ns"},
	{stem: "sescenti", markers: "n"},
	{stem: "septingenti", markers: "n"},
	{stem: "octingenti", markers: "mx"},
	{stem: "nongenti", markers: ""},
}

// onesPrefix is indexed by the units digit of the zillion index.
// Index 0 is unused. The entries for 3, 6, 7 and 9 are bare combining forms
// that unitStem completes against the markers of the following prefix.
var onesPrefix = [10]string{
	"",
	"un",
	"duo",
	"tre",
	"quattuor",
	"quin",
	"se",
	"septe",
	"octo",
	"nove",
}
