// File: scoring/example_test.go
package scoring_test

import (
	"fmt"

	"github.com/katalvlaran/swath/scoring"
)

// ExampleMatrix_Score looks up a few pairs in the packaged BLOSUM62 table.
func ExampleMatrix_Score() {
	ww, _ := scoring.Blosum62.Score('W', 'W')
	aw, _ := scoring.Blosum62.Score('A', 'W')

	fmt.Println(ww)
	fmt.Println(aw)

	// Output:
	// 11
	// -3
}

// ExampleNewSimple builds a uniform nucleotide matrix: +2 on identity,
// -1 on every mismatch.
func ExampleNewSimple() {
	m := scoring.NewSimple("ACGT", 2, -1)

	match, _ := m.Score('G', 'G')
	mismatch, _ := m.Score('G', 'T')

	fmt.Println(match, mismatch)

	// Output:
	// 2 -1
}
