// Package swath is your in-memory toolkit for local sequence alignment —
// Smith-Waterman with arbitrary gap penalties, exhaustive co-optimal
// traceback, and report-ready text rendering.
//
// 🚀 What is swath?
//
//	A small, focused library that brings together:
//		• Local alignment: Smith-Waterman with a general gap model g(L) = open + ext·L
//		• Co-optimal enumeration: every tied-best alignment, deterministically ordered
//		• Substitution matrices: NCBI-format parser + built-in BLOSUM62
//		• Sequences: minimal FASTA reader with query/subject roles
//		• Rendering: classic fixed-width alignment blocks + summary tables
//		• Parallel fill: optional anti-diagonal wavefront across goroutines
//
// ✨ Why choose swath?
//
//   - Faithful scoring – gap cost recomputed per length, no affine shortcuts
//   - Complete answers – one optimum or all of them, your call
//   - Deterministic – identical output serial or parallel, stable ordinals
//   - Pure library core – the CLI is a thin shell over the same API
//
// Under the hood, everything is organized under five subpackages:
//
//	sw/      — the aligner: scoring grid, traceback engine, options & errors
//	seq/     — Sequence type, roles, FASTA reading
//	scoring/ — substitution-matrix model, parser, BLOSUM62, uniform matrices
//	render/  — fixed-width alignment blocks & tabular summaries
//	cmd/     — the swath command-line front end
//
// Quick ASCII example:
//
//	Query:   1 AAGAA 5
//	           AA AA
//	Sbjct:   1 AA-AA 4
//
//	one optimal local alignment of AAGAA against AAAA, a single-symbol gap
//	in the subject row.
//
// Dive into README.md for full examples and the scoring model in detail.
//
//	go get github.com/katalvlaran/swath
package swath
