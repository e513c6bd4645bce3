// File: render/example_test.go
package render_test

import (
	"os"

	"github.com/katalvlaran/swath/render"
	"github.com/katalvlaran/swath/scoring"
	"github.com/katalvlaran/swath/seq"
	"github.com/katalvlaran/swath/sw"
)

// ExampleWrite runs the full pipeline — align, then render — for a
// single-gap alignment in the classic report layout.
func ExampleWrite() {
	query := seq.New("query-1", seq.Query, "AAGAA")
	subject := seq.New("subject-1", seq.Subject, "AAAA")

	opts := sw.DefaultOptions()
	opts.GapOpen, opts.GapExtend = 2, 1

	res, _ := sw.Align(query, subject, scoring.NewSimple("AG", 2, -4), &opts)
	_ = render.Write(os.Stdout, &res.Alignments[0], nil)

	// Output:
	// ******* Query: query-1 *******
	// ******* Subject: subject-1 *******
	// ******* ALIGNMENT NUMBER: 1, SCORE: 5 *******
	// Query:   1 AAGAA 5
	//            AA AA
	// Sbjct:   1 AA-AA 4
}
