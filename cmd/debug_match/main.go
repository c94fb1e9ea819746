package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bme-wacoisd/google-classroom/core/roster"
)

// Pairs that have come up in support tickets. Run with two arguments to
// check a specific pair instead.
var knownPairs = [][2]string{
	{"Doe, John", "John Doe"},
	{"Doe, John Michael", "John Doe"},
	{"Doe, John, Jr", "John Doe"},
	{"van der Berg, Mary", "Mary van der Berg"},
	{"Smith-Jones, Anna", "Anna Smith Jones"},
	{"Rivera Jon", "Jon Rivera"},
	{"Lee, Ang", "Ang Lee"},
}

func main() {
	pairs := knownPairs
	if len(os.Args) == 3 {
		pairs = [][2]string{{os.Args[1], os.Args[2]}}
	} else if len(os.Args) != 1 {
		fmt.Println("usage: debug_match [\"name a\" \"name b\"]")
		os.Exit(1)
	}

	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		ca, cb := roster.Normalize(a), roster.Normalize(b)

		fmt.Printf("=== %q vs %q ===\n", a, b)
		fmt.Printf("A: first=%q last=%q full=%q\n", ca.First, ca.Last, ca.Full)
		fmt.Printf("B: first=%q last=%q full=%q\n", cb.First, cb.Last, cb.Full)

		// Walk the rules one by one so it's visible which one fires
		if ca.Full == cb.Full {
			fmt.Println("Rule 1 (exact canonical): MATCH")
		} else {
			fmt.Println("Rule 1 (exact canonical): no")
			ta, tb := strings.Fields(ca.Full), strings.Fields(cb.Full)
			if len(ta) < 2 || len(tb) < 2 {
				fmt.Println("Rule 2/3: skipped, a side has fewer than 2 tokens")
			} else {
				if ta[0] == tb[0] && ta[len(ta)-1] == tb[len(tb)-1] {
					fmt.Println("Rule 2 (first+last tokens): MATCH")
				} else {
					fmt.Println("Rule 2 (first+last tokens): no")
				}
				if ta[0] == tb[len(tb)-1] && ta[len(ta)-1] == tb[0] {
					fmt.Println("Rule 3 (swapped, opt-in): MATCH")
				} else {
					fmt.Println("Rule 3 (swapped, opt-in): no")
				}
			}
		}

		strict := roster.NamesMatch(a, b)
		swapped := roster.Matcher{AcceptSwapped: true}.Match(a, b)
		fmt.Printf("Verdict: strict=%v swapped=%v\n\n", strict, swapped)
	}
}
