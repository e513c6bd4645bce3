// Package render formats finished alignments as classic fixed-width text
// reports: a header block per alignment, the three report rows sliced into
// Width-sized chunks with gap-aware position counters, and an optional
// tabular summary of a whole result set.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/swath/sw"
)

// Sentinel errors for rendering.
var (
	// ErrNilAlignment indicates a nil alignment was passed to Write.
	ErrNilAlignment = errors.New("render: alignment must be non-nil")
	// ErrNilResult indicates a nil result was passed to WriteAll or Summary.
	ErrNilResult = errors.New("render: result must be non-nil")
	// ErrBadWidth indicates a block width below one.
	ErrBadWidth = errors.New("render: width must be at least 1")
	// ErrRaggedAlignment indicates report rows of differing lengths.
	ErrRaggedAlignment = errors.New("render: query, guide and subject rows must have equal length")
)

// DefaultWidth is the classic report block width.
const DefaultWidth = 60

// Options configures the text renderer.
type Options struct {
	// Width is the number of alignment columns per block line.
	Width int
}

// DefaultOptions returns the default configuration: Width=60.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth}
}

// Write renders one alignment to w: a three-line header followed by blocks
// of Width columns. Each block holds the query row, the guide row indented
// under it, and the subject row, with 1-based position counters on both
// sequence lines. Counters advance by the number of symbols in the chunk,
// skipping gap marks, so they always point at real sequence positions.
//
// The degenerate empty alignment renders as its header alone.
//
// A nil opts means DefaultOptions().
func Write(w io.Writer, a *sw.Alignment, opts *Options) error {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if a == nil {
		return ErrNilAlignment
	}
	if o.Width < 1 {
		return fmt.Errorf("%w: Width=%d", ErrBadWidth, o.Width)
	}
	if len(a.Guide) != len(a.Query) || len(a.Subject) != len(a.Query) {
		return fmt.Errorf("%w: %d/%d/%d", ErrRaggedAlignment, len(a.Query), len(a.Guide), len(a.Subject))
	}
	if _, err := io.WriteString(w, format(a, o.Width)); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// WriteAll renders every alignment of res in order, separated by blank
// lines, exactly as Write would render them one by one.
func WriteAll(w io.Writer, res *sw.Result, opts *Options) error {
	if res == nil {
		return ErrNilResult
	}
	for i := range res.Alignments {
		if err := Write(w, &res.Alignments[i], opts); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return nil
}

// format builds the full report text for one alignment.
func format(a *sw.Alignment, width int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "******* Query: %s *******\n", a.QueryName)
	fmt.Fprintf(&sb, "******* Subject: %s *******\n", a.SubjectName)
	fmt.Fprintf(&sb, "******* ALIGNMENT NUMBER: %d, SCORE: %g *******\n", a.Ordinal, a.Score)

	qPos, sPos := a.QueryStart, a.SubjectStart
	for k := 0; k < len(a.Query); k += width {
		end := min(k+width, len(a.Query))
		qChunk := a.Query[k:end]
		gChunk := a.Guide[k:end]
		sChunk := a.Subject[k:end]

		qGaps := strings.Count(qChunk, "-")
		sGaps := strings.Count(sChunk, "-")

		fmt.Fprintf(&sb, "Query:%4d %s %d\n", qPos, qChunk, min(a.QueryEnd, qPos+width-1-qGaps))
		fmt.Fprintf(&sb, "           %s\n", gChunk)
		fmt.Fprintf(&sb, "Sbjct:%4d %s %d\n\n", sPos, sChunk, min(a.SubjectEnd, sPos+width-1-sGaps))

		qPos += width - qGaps
		sPos += width - sGaps
	}
	return sb.String()
}
