// Package sw defines options, result types, and sentinel errors for the
// Smith-Waterman aligner.
package sw

import "errors"

// Sentinel errors for Align.
var (
	// ErrNilSequence indicates a nil query or subject.
	ErrNilSequence = errors.New("sw: query and subject must be non-nil")
	// ErrNilScorer indicates a nil scoring model.
	ErrNilScorer = errors.New("sw: scorer must be non-nil")
	// ErrBadOptions indicates an out-of-range or non-finite option value.
	ErrBadOptions = errors.New("sw: invalid options")
)

// Default gap penalties, matching the classic protein-search settings.
const (
	DefaultGapOpen   = 11.0
	DefaultGapExtend = 1.0
)

// Scorer supplies substitution scores for symbol pairs. Lookups are
// directional: Score(a, b) need not equal Score(b, a). An undefined pair
// must return an error — Align treats that as fatal rather than defaulting.
//
// Implementations must be safe for concurrent use when Options.Workers > 1;
// *scoring.Matrix qualifies, as does any read-only lookup.
type Scorer interface {
	Score(a, b byte) (float64, error)
}

// GapPenalty is the generalized gap cost: opening + extension·length.
// It is recomputed for every candidate gap length during the fill, which is
// what lets opening and extension take arbitrary values.
func GapPenalty(opening, extension float64, length int) float64 {
	return opening + extension*float64(length)
}

// Options configures Align.
//
// Fields:
//   - GapOpen      — gap opening penalty (subtracted once per gap).
//   - GapExtend    — gap extension penalty (subtracted per gap symbol).
//   - FindAll      — enumerate every co-optimal alignment; when false, keep
//     a single highest-priority path (match over deletion over insertion)
//     and report exactly one alignment.
//   - MaxAlignments — cap on reported alignments; 0 means unlimited.
//     When the cap cuts enumeration short, Result.Truncated says so.
//   - Workers      — goroutines for the matrix fill; 0 or 1 runs serially.
//     Output is identical either way.
type Options struct {
	GapOpen       float64
	GapExtend     float64
	FindAll       bool
	MaxAlignments int
	Workers       int
}

// DefaultOptions returns the default configuration:
// GapOpen=11, GapExtend=1, FindAll=true, MaxAlignments=0 (unlimited),
// Workers=1 (serial fill).
func DefaultOptions() Options {
	return Options{
		GapOpen:       DefaultGapOpen,
		GapExtend:     DefaultGapExtend,
		FindAll:       true,
		MaxAlignments: 0,
		Workers:       1,
	}
}

// Alignment is one finished local alignment, oriented forward.
//
// Coordinates are 1-based and inclusive. The degenerate empty alignment
// (reported when no pair of substrings scores above zero) carries
// QueryStart=1, QueryEnd=0, SubjectStart=1, SubjectEnd=0 and empty strings.
type Alignment struct {
	Ordinal int     // 1-based completion order, stable across runs
	Score   float64 // the shared optimal score

	QueryName   string
	SubjectName string

	QueryStart, QueryEnd     int
	SubjectStart, SubjectEnd int

	Query   string // query row, '-' marks a gap
	Guide   string // symbol on identity, '+' on positive mismatch, ' ' otherwise
	Subject string // subject row, '-' marks a gap
}

// Result is the outcome of Align.
type Result struct {
	Alignments []Alignment
	MaxScore   float64
	Truncated  bool // true when MaxAlignments cut enumeration short
}
