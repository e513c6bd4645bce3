package sw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/swath/seq"
)

// Align — Smith-Waterman local alignment with generalized gap penalties.
//
// Description:
//
//	Align finds the highest-scoring local alignment(s) of query against
//	subject under scorer, with gaps of length L costing
//	GapPenalty(GapOpen, GapExtend, L).  In find-all mode it enumerates
//	every alignment attaining the optimal score; otherwise it reports a
//	single one, preferring matches over deletions over insertions at
//	every branch.
//
// Algorithm Outline:
//  1. Let n = query.Len(), m = subject.Len(). Allocate an (n+1)×(m+1)
//     lattice; row 0 and column 0 hold score 0 and a start arrow.
//  2. For each cell (i, j), take the maximum of zero, the diagonal
//     extension, the best deletion ending at (i, j) (every gap length up
//     the column, penalty recomputed per length), and the best insertion
//     ending at (i, j) (same along the row).  Record an arrow for every
//     alternative that attains the maximum.
//  3. Scan the lattice row-major for the optimal score and its cells.
//  4. Unwind traceback paths from every optimal cell in synchronous
//     rounds, fanning out at cells with several arrows, until each path
//     reaches a start arrow.  Completion order assigns ordinals.
//
// A positive Workers count splits step 2 across goroutines by
// anti-diagonal waves; the output is identical to the serial fill.
//
// An all-zero lattice (no substring pair scores above zero, including the
// case of an empty query or subject) is not an error: the result holds
// exactly one empty alignment with score 0.
//
// Complexity:
//
//	Time   = O(n·m·(n+m)) fill + O(paths·length) traceback
//	Memory = O(n·m) cells + O(paths) during traceback
//
// Errors:
//   - ErrNilSequence — query or subject is nil.
//   - ErrNilScorer   — scorer is nil.
//   - ErrBadOptions  — negative Workers or MaxAlignments, or a non-finite
//     gap penalty.
//   - any error from scorer.Score — typically scoring.ErrUnknownSymbol —
//     aborts the whole computation, wrapped with the offending positions.
//
// A nil opts means DefaultOptions().
func Align(query, subject *seq.Sequence, scorer Scorer, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateInputs(query, subject, scorer, o); err != nil {
		return nil, err
	}

	b := newBuilder(query.Symbols, subject.Symbols, scorer, o)
	var err error
	if o.Workers > 1 {
		err = b.fillParallel(o.Workers)
	} else {
		err = b.fill()
	}
	if err != nil {
		return nil, err
	}

	maxScore, positions := b.scanMax()
	t := newTracer(b, query.Name, subject.Name, maxScore, positions, o.MaxAlignments)
	if err := t.run(); err != nil {
		return nil, err
	}

	return &Result{
		Alignments: t.found,
		MaxScore:   maxScore,
		Truncated:  t.truncated,
	}, nil
}

// validateInputs rejects nil collaborators and out-of-range options before
// any allocation happens.
func validateInputs(query, subject *seq.Sequence, scorer Scorer, o Options) error {
	if query == nil || subject == nil {
		return ErrNilSequence
	}
	if scorer == nil {
		return ErrNilScorer
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: Workers=%d", ErrBadOptions, o.Workers)
	}
	if o.MaxAlignments < 0 {
		return fmt.Errorf("%w: MaxAlignments=%d", ErrBadOptions, o.MaxAlignments)
	}
	if math.IsNaN(o.GapOpen) || math.IsInf(o.GapOpen, 0) {
		return fmt.Errorf("%w: GapOpen=%v", ErrBadOptions, o.GapOpen)
	}
	if math.IsNaN(o.GapExtend) || math.IsInf(o.GapExtend, 0) {
		return fmt.Errorf("%w: GapExtend=%v", ErrBadOptions, o.GapExtend)
	}
	return nil
}
