// Tests for Conway–Wechsler scale-name generation.
package scales

import (
	"fmt"
	"strings"
	"testing"
)

func TestNameBase(t *testing.T) {
	t.Parallel()

	want := []string{
		"", // units group
		"thousand",
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

	for g, w := range want {
		t.Run(fmt.Sprintf("%d", g), func(t *testing.T) {
			t.Parallel()
			if got := Name(g); got != w {
				t.Errorf("Name(%d) = %q, want %q", g, got, w)
			}
		})
	}
}

func TestNameComposed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		group int
		want  string
	}{
		{11, "decillion"},
		{12, "undecillion"},
		{13, "duodecillion"},
		{14, "tredecillion"},
		{15, "quattuordecillion"},
		{16, "quindecillion"},
		{17, "sedecillion"},
		{18, "septendecillion"},
		{19, "octodecillion"},
		{20, "novendecillion"},
		{21, "vigintillion"},
		{22, "unvigintillion"},
		{24, "tresvigintillion"},
		{27, "sesvigintillion"},
		{28, "septemvigintillion"},
		{30, "novemvigintillion"},
		{31, "trigintillion"},
		{34, "trestrigintillion"},
		{37, "sestrigintillion"},
		{38, "septentrigintillion"},
		{40, "noventrigintillion"},
		{41, "quadragintillion"},
		{51, "quinquagintillion"},
		{61, "sexagintillion"},
		{64, "tresexagintillion"},
		{67, "sesexagintillion"},
		{71, "septuagintillion"},
		{81, "octogintillion"},
		{84, "tresoctogintillion"},
		{87, "sexoctogintillion"},
		{88, "septemoctogintillion"},
		{90, "novemoctogintillion"},
		{91, "nonagintillion"},
		{97, "senonagintillion"},
		{98, "septenonagintillion"},
		{99, "octononagintillion"},
		{100, "novenonagintillion"},
		{101, "centillion"},
		{102, "uncentillion"},
		{104, "trescentillion"},
		{107, "sexcentillion"},
		{108, "septencentillion"},
		{110, "novencentillion"},
		{111, "decicentillion"},
		{112, "undecicentillion"},
		{201, "ducentillion"},
		{204, "treducentillion"},
		{301, "trecentillion"},
		{302, "untrecentillion"},
		{501, "quingentillion"},
		{601, "sescentillion"},
		{901, "nongentillion"},
		{1000, "novenonagintanongentillion"},
	}

	for _, tt := range cases {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := Name(tt.group); got != tt.want {
				t.Errorf("Name(%d) = %q, want %q", tt.group, got, tt.want)
			}
		})
	}
}

// TestNameExtension exercises the base-1000 extension used for group indices
// of a thousand zillions and beyond.
func TestNameExtension(t *testing.T) {
	t.Parallel()

	cases := []struct {
		group int
		want  string
	}{
		{1001, "millinillion"},
		{2001, "billinillion"},
		{1000001, "millinillinillion"},
	}

	for _, tt := range cases {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := Name(tt.group); got != tt.want {
				t.Errorf("Name(%d) = %q, want %q", tt.group, got, tt.want)
			}
		})
	}
}

func TestNameOutOfDomain(t *testing.T) {
	t.Parallel()

	for _, g := range []int{0, -1, -100} {
		if got := Name(g); got != "" {
			t.Errorf("Name(%d) = %q, want empty", g, got)
		}
	}
}

// TestNameShape checks the structural properties every composed name must
// have: lowercase, hyphen-free, ending in "illion".
func TestNameShape(t *testing.T) {
	t.Parallel()

	for g := 2; g <= 2000; g++ {
		name := Name(g)
		if name == "" {
			t.Fatalf("Name(%d) is empty", g)
		}
		if !strings.HasSuffix(name, "illion") {
			t.Errorf("Name(%d) = %q does not end in illion", g, name)
		}
		if strings.ContainsAny(name, " -") {
			t.Errorf("Name(%d) = %q contains separators", g, name)
		}
		if name != strings.ToLower(name) {
			t.Errorf("Name(%d) = %q is not lowercase", g, name)
		}
	}
}

// TestNameDistinct verifies the naming is injective over a wide index range.
func TestNameDistinct(t *testing.T) {
	t.Parallel()

	seen := make(map[string]int)
	for g := 1; g <= 1002; g++ {
		name := Name(g)
		if prev, ok := seen[name]; ok {
			t.Errorf("Name(%d) = Name(%d) = %q", g, prev, name)
		}
		seen[name] = g
	}
}

func FuzzName(f *testing.F) {
	f.Add(0)
	f.Add(1)
	f.Add(2)
	f.Add(102)
	f.Add(999)
	f.Add(1001)
	f.Add(-5)

	f.Fuzz(func(t *testing.T, g int) {
		// Must not panic and must be deterministic.
		first := Name(g)
		if second := Name(g); second != first {
			t.Errorf("Name(%d) not deterministic: %q then %q", g, first, second)
		}
		if g >= 2 && !strings.HasSuffix(first, "illion") {
			t.Errorf("Name(%d) = %q does not end in illion", g, first)
		}
	})
}

func ExampleName() {
	fmt.Println(Name(1))
	fmt.Println(Name(2))
	fmt.Println(Name(102))
	// Output:
	// thousand
	// million
	// uncentillion
}

func BenchmarkName(b *testing.B) {
	for b.Loop() {
		Name(102)
	}
}

func BenchmarkNameExtension(b *testing.B) {
	for b.Loop() {
		Name(1000001)
	}
}
