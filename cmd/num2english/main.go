// Command num2english converts numbers to their English word representation.
//
// Numbers are taken from the arguments, or from stdin (one per line) when no
// arguments are given:
//
//	num2english 6.000052
//	six and fifty-two millionths
//
// The -ordinal flag prints ordinal forms and accepts integers only.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/trvswgnr/num2english"
)

func main() {
	ordinal := flag.Bool("ordinal", false, "print ordinal forms (integers only)")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "num2english: read stdin: %v\n", err)
			os.Exit(1)
		}
	}

	exit := 0
	for _, in := range inputs {
		var (
			words string
			err   error
		)
		if *ordinal {
			words, err = num2english.ConvertOrdinal(in)
		} else {
			words, err = num2english.ConvertString(in)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			exit = 1
			continue
		}
		fmt.Println(words)
	}
	os.Exit(exit)
}
