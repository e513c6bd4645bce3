// Package sw computes optimal local alignments of two sequences with the
// Smith-Waterman algorithm under a generalized gap model.
//
// 🚀 What is local alignment?
//
//	Local alignment finds the highest-scoring pair of substrings of two
//	sequences, allowing substitutions and gaps.  It is the workhorse of:
//	  • Protein & nucleotide database search
//	  • Domain and motif discovery
//	  • Read mapping and variant verification
//
// ✨ Key features:
//   - general gap penalty g(L) = open + ext·L, recomputed per candidate
//     length — arbitrary (even fractional) penalties, no affine shortcut
//   - FindAll mode: enumerate every co-optimal alignment, not just one
//   - deterministic output: completion-order ordinals, stable run to run,
//     identical whether the fill is serial or parallel
//   - optional wavefront-parallel fill across anti-diagonals (Workers)
//   - MaxAlignments cap with an explicit Truncated report
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/swath/scoring"
//		"github.com/katalvlaran/swath/seq"
//		"github.com/katalvlaran/swath/sw"
//	)
//
//	query := seq.New("q", seq.Query, "AAGAA")
//	subject := seq.New("s", seq.Subject, "AAAA")
//
//	opts := sw.DefaultOptions()
//	opts.GapOpen, opts.GapExtend = 2, 1
//
//	res, err := sw.Align(query, subject, scoring.NewSimple("AG", 2, -4), &opts)
//	// res.Alignments[0].Query   == "AAGAA"
//	// res.Alignments[0].Subject == "AA-AA"
//
// Performance:
//
//   - Time:   O(n·m·(n+m)) — every cell scans its full row and column for gaps
//   - Memory: O(n·m) cells, plus the live traceback paths
//
// See example_test.go for runnable examples.
package sw
