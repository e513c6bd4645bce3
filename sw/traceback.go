package sw

import (
	"fmt"
	"strings"
)

// pathState is one partially rebuilt alignment: its current lattice cell,
// the cell it started unwinding from, and the three report rows built so
// far. Rows grow by prepending, so a parent's tail is shared untouched by
// every successor it fans out to.
type pathState struct {
	row, col       int
	endRow, endCol int

	query, guide, subject string
}

// tracer unwinds alignments from the optimum cells back to their starts,
// one synchronous round at a time. Each round advances every pending path
// by one arrow; a cell holding several arrows fans the path out, each
// successor derived independently from the same cell. Paths reaching a
// start arrow complete and take the next ordinal, so ordinals follow
// completion order: shorter paths number first, ties resolve by the
// row-major order of their origin cells.
type tracer struct {
	cells          [][]cell
	query, subject string
	queryName      string
	subjectName    string
	scorer         Scorer

	maxScore float64
	limit    int // max alignments to report; 0 = unlimited

	pending   []pathState
	found     []Alignment
	truncated bool
}

func newTracer(b *builder, queryName, subjectName string, maxScore float64, positions [][2]int, limit int) *tracer {
	t := &tracer{
		cells:       b.cells,
		query:       b.query,
		subject:     b.subject,
		queryName:   queryName,
		subjectName: subjectName,
		scorer:      b.scorer,
		maxScore:    maxScore,
		limit:       limit,
		pending:     make([]pathState, 0, len(positions)),
	}
	for _, pos := range positions {
		t.pending = append(t.pending, pathState{
			row: pos[0], col: pos[1],
			endRow: pos[0], endCol: pos[1],
		})
	}
	return t
}

// run drains the worklist. It stops early — marking the result truncated —
// as soon as the alignment cap is reached with work still outstanding.
func (t *tracer) run() error {
	for len(t.pending) > 0 {
		if t.limit > 0 && len(t.found) >= t.limit {
			t.truncated = true
			return nil
		}
		next := make([]pathState, 0, len(t.pending))
		for _, p := range t.pending {
			for _, st := range t.cells[p.row][p.col].steps {
				switch st.kind {
				case stepStart:
					if t.limit > 0 && len(t.found) == t.limit {
						t.truncated = true
						return nil
					}
					t.found = append(t.found, t.complete(p))
				case stepDiag:
					np, err := t.extendMatch(p)
					if err != nil {
						return err
					}
					next = append(next, np)
				case stepDelete:
					next = append(next, t.extendDelete(p, st.length))
				case stepInsert:
					next = append(next, t.extendInsert(p, st.length))
				}
			}
		}
		t.pending = next
	}
	return nil
}

// extendMatch prepends one query/subject symbol pair and steps diagonally.
// The guide shows the symbol itself on identity, '+' on a positive-scoring
// mismatch, and a space otherwise.
func (t *tracer) extendMatch(p pathState) (pathState, error) {
	q := t.query[p.row-1]
	s := t.subject[p.col-1]

	g := byte(' ')
	if q == s {
		g = q
	} else {
		v, err := t.scorer.Score(q, s)
		if err != nil {
			return pathState{}, fmt.Errorf("sw: query position %d vs subject position %d: %w", p.row, p.col, err)
		}
		if v > 0 {
			g = '+'
		}
	}

	return pathState{
		row: p.row - 1, col: p.col - 1,
		endRow: p.endRow, endCol: p.endCol,
		query:   string(q) + p.query,
		guide:   string(g) + p.guide,
		subject: string(s) + p.subject,
	}, nil
}

// extendDelete prepends length query symbols against a subject gap and
// steps up the column.
func (t *tracer) extendDelete(p pathState, length int) pathState {
	return pathState{
		row: p.row - length, col: p.col,
		endRow: p.endRow, endCol: p.endCol,
		query:   t.query[p.row-length:p.row] + p.query,
		guide:   strings.Repeat(" ", length) + p.guide,
		subject: strings.Repeat("-", length) + p.subject,
	}
}

// extendInsert prepends length subject symbols against a query gap and
// steps along the row.
func (t *tracer) extendInsert(p pathState, length int) pathState {
	return pathState{
		row: p.row, col: p.col - length,
		endRow: p.endRow, endCol: p.endCol,
		query:   strings.Repeat("-", length) + p.query,
		guide:   strings.Repeat(" ", length) + p.guide,
		subject: t.subject[p.col-length:p.col] + p.subject,
	}
}

// complete turns a path that reached its start cell into an Alignment.
// The start cell (row, col) maps to 1-based sequence positions row+1 and
// col+1; the empty alignment from the origin cell therefore reports
// start 1, end 0 on both sequences.
func (t *tracer) complete(p pathState) Alignment {
	return Alignment{
		Ordinal:      len(t.found) + 1,
		Score:        t.maxScore,
		QueryName:    t.queryName,
		SubjectName:  t.subjectName,
		QueryStart:   p.row + 1,
		QueryEnd:     p.endRow,
		SubjectStart: p.col + 1,
		SubjectEnd:   p.endCol,
		Query:        p.query,
		Guide:        p.guide,
		Subject:      p.subject,
	}
}
