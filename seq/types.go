// Package seq defines the sequence model shared by every swath component:
// a named run of symbols tagged with its alignment role, plus a minimal
// FASTA reader for loading sequences from files and streams.
package seq

import "errors"

// Sentinel errors for FASTA reading.
var (
	// ErrNoRecords indicates the input contained no FASTA records at all.
	ErrNoRecords = errors.New("seq: no FASTA records in input")
	// ErrMissingHeader indicates sequence data appeared before any '>' header.
	ErrMissingHeader = errors.New("seq: sequence data before FASTA header")
)

// Role tags a Sequence with the side of the alignment it occupies.
type Role int

const (
	// Query is the sequence whose symbols index the scoring-grid rows.
	Query Role = iota
	// Subject is the sequence whose symbols index the scoring-grid columns.
	Subject
)

// String returns the label used in alignment reports:
// "Query" for Query, "Sbjct" for Subject.
func (r Role) String() string {
	if r == Subject {
		return "Sbjct"
	}
	return "Query"
}

// Sequence is a named run of symbols with an alignment role.
// It is immutable once built: treat Symbols as read-only.
type Sequence struct {
	Name    string // display name, typically the FASTA header
	Role    Role   // Query or Subject
	Symbols string // raw symbols, one byte each, case preserved
}

// New builds a Sequence from its parts. Symbols are stored verbatim:
// no case folding and no alphabet validation here — the scoring model
// rejects unknown symbols at alignment time.
func New(name string, role Role, symbols string) *Sequence {
	return &Sequence{Name: name, Role: role, Symbols: symbols}
}

// Len returns the number of symbols in the sequence.
func (s *Sequence) Len() int { return len(s.Symbols) }

// Rename returns a copy of s carrying the given display name.
// Used to override FASTA headers from the command line.
func (s *Sequence) Rename(name string) *Sequence {
	return &Sequence{Name: name, Role: s.Role, Symbols: s.Symbols}
}
