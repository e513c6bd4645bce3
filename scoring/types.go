// Package scoring defines substitution matrices for sequence alignment:
// a directional pair-score lookup, a parser for the NCBI textual matrix
// format, the standard BLOSUM62 table, and a uniform match/mismatch
// constructor for simple alphabets.
package scoring

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix construction and lookup.
var (
	// ErrUnknownSymbol indicates a score lookup for a symbol pair the matrix
	// does not define. This aborts an alignment: absence of a pair is never
	// treated as a default score.
	ErrUnknownSymbol = errors.New("scoring: unknown symbol")
	// ErrBadMatrix indicates malformed matrix text.
	ErrBadMatrix = errors.New("scoring: malformed matrix")
)

// Matrix is a substitution matrix: a score for every defined ordered pair
// of symbols. Lookups are directional — Score(a, b) reads row a, column b —
// so asymmetric matrices are honored as written. Immutable once built.
type Matrix struct {
	name    string
	symbols []byte
	scores  map[byte]map[byte]float64
}

// Score returns the substitution score for the ordered pair (a, b).
// An undefined row or column yields ErrUnknownSymbol naming the offender.
func (m *Matrix) Score(a, b byte) (float64, error) {
	row, ok := m.scores[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, a)
	}
	v, ok := row[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, b)
	}
	return v, nil
}

// Name reports the matrix name: the builtin name, the source file base name,
// or "uniform" for NewSimple matrices. Empty for anonymous streams.
func (m *Matrix) Name() string { return m.name }

// Symbols returns a copy of the column symbols in declaration order.
func (m *Matrix) Symbols() []byte {
	return append([]byte(nil), m.symbols...)
}

// NewSimple builds a uniform matrix over alphabet: identical symbols score
// match, every other pair scores mismatch. Handy for nucleotide scoring and
// for tests that want fully controlled inputs.
func NewSimple(alphabet string, match, mismatch float64) *Matrix {
	m := &Matrix{
		name:   "uniform",
		scores: make(map[byte]map[byte]float64, len(alphabet)),
	}
	for i := 0; i < len(alphabet); i++ {
		a := alphabet[i]
		if _, seen := m.scores[a]; seen {
			continue
		}
		m.symbols = append(m.symbols, a)
		row := make(map[byte]float64, len(alphabet))
		for j := 0; j < len(alphabet); j++ {
			b := alphabet[j]
			if a == b {
				row[b] = match
			} else {
				row[b] = mismatch
			}
		}
		m.scores[a] = row
	}
	return m
}
