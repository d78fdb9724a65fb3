// Package scales generates English names for powers of one thousand using
// the Conway–Wechsler naming system.
//
// Name(g) returns the name of the multiplier of the g-th three-digit group
// of a number, counting outward from the decimal point: Name(1) is
// "thousand", Name(2) is "million", Name(102) is "uncentillion". The
// construction is rule-based rather than a lookup table, so there is no
// upper bound on g: indices past the first nine zillions compose Latin
// prefixes, and indices of a thousand zillions and beyond use the base-1000
// extension (Name(1001) is "millinillion").
//
// All functions are safe for concurrent use by multiple goroutines.
package scales

import "strings"

const growName = 32 // estimated bytes for a composed scale name

// Name returns the Conway–Wechsler name for the multiplier 10^(3g) of digit
// group g. Name(0) and negative indices return "" (the units group has no
// scale word).
func Name(g int) string {
	switch {
	case g <= 0:
		return ""
	case g == 1:
		return "thousand"
	}
	return zillion(g - 1)
}

// zillion returns the name of the z-th zillion, 10^(3z+3), for z >= 1.
func zillion(z int) string {
	if z < 10 {
		return base[z]
	}

	// Base-1000 groups of z, least significant first.
	var groups []int
	for ; z > 0; z /= 1000 {
		groups = append(groups, z%1000)
	}

	var b strings.Builder
	b.Grow(growName)

	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			b.WriteString("nilli")
			continue
		}
		b.WriteString(trimVowel(stem(groups[i])))
		b.WriteString("illi")
	}
	b.WriteString("on")

	return b.String()
}

// stem returns the combining stem for a zillion group value in [1, 999].
// Stems end in a vowel: 5 -> "quinti", 21 -> "unviginti", 101 -> "uncenti".
func stem(g int) string {
	if g < 10 {
		return small[g]
	}

	h := g / 100
	t := g / 10 % 10
	u := g % 10

	ten := tensPrefix[t]
	hun := hundredsPrefix[h]

	// The units prefix fuses against whichever prefix immediately follows.
	markers := hun.markers
	if t > 0 {
		markers = ten.markers
	}

	return unitStem(u, markers) + ten.stem + hun.stem
}

// unitStem resolves the units prefix against the marker letters of the
// prefix that follows it: tre takes a final s before s- or x-marked
// prefixes, se takes s or x, septe and nove take m or n.
func unitStem(u int, markers string) string {
	s := onesPrefix[u]
	switch u {
	case 3:
		if strings.ContainsAny(markers, "sx") {
			s += "s"
		}
	case 6:
		switch {
		case strings.Contains(markers, "x"):
			s += "x"
		case strings.Contains(markers, "s"):
			s += "s"
		}
	case 7, 9:
		switch {
		case strings.Contains(markers, "m"):
			s += "m"
		case strings.Contains(markers, "n"):
			s += "n"
		}
	}
	return s
}

// trimVowel drops a trailing vowel so the illion/illi suffix attaches
// cleanly: triginta -> trigint, uncenti -> uncent.
func trimVowel(s string) string {
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case 'a', 'e', 'i', 'o', 'u':
		return s[:len(s)-1]
	}
	return s
}
