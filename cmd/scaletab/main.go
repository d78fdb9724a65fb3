// Command scaletab prints the Conway–Wechsler scale-name table, one line per
// digit-group index:
//
//	go run ./cmd/scaletab -max 102
//
// Index 102 is the highest group reachable from a float64, so the default
// covers every name the library can emit for built-in types. Useful for
// eyeballing prefix-table changes before regenerating
// data/golden/num2english.json.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/trvswgnr/num2english/scales"
)

func main() {
	max := flag.Int("max", 102, "largest group index to print")
	flag.Parse()

	if *max < 1 {
		fmt.Fprintf(os.Stderr, "Usage: scaletab [-max N] with N >= 1\n")
		os.Exit(1)
	}

	for g := 1; g <= *max; g++ {
		fmt.Printf("%4d  10^%-4d %s\n", g, 3*g, scales.Name(g))
	}
}
