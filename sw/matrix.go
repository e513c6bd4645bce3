package sw

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// stepKind tags a traceback arrow out of a cell.
type stepKind uint8

const (
	// stepStart marks a path origin: the cell scored zero, tracing stops here.
	stepStart stepKind = iota
	// stepDiag pairs one query symbol with one subject symbol.
	stepDiag
	// stepDelete consumes query symbols against a gap in the subject.
	stepDelete
	// stepInsert consumes subject symbols against a gap in the query.
	stepInsert
)

// step is one traceback arrow; length is the gap length for stepDelete and
// stepInsert, 0 otherwise.
type step struct {
	kind   stepKind
	length int
}

// cell holds one lattice entry: its score and every arrow that attains it.
type cell struct {
	score float64
	steps []step
}

// startSteps is the shared arrow set of zero cells. Never mutated.
var startSteps = []step{{kind: stepStart}}

// builder fills the (n+1)×(m+1) scoring lattice for one alignment run.
// Row 0 and column 0 stay at score 0 with a single start arrow.
type builder struct {
	query, subject string
	scorer         Scorer
	open, extend   float64
	findAll        bool
	cells          [][]cell
}

func newBuilder(query, subject string, scorer Scorer, o Options) *builder {
	rows, cols := len(query)+1, len(subject)+1
	cells := make([][]cell, rows)
	for i := range cells {
		cells[i] = make([]cell, cols)
		cells[i][0].steps = startSteps
	}
	for j := 1; j < cols; j++ {
		cells[0][j].steps = startSteps
	}
	return &builder{
		query:   query,
		subject: subject,
		scorer:  scorer,
		open:    o.GapOpen,
		extend:  o.GapExtend,
		findAll: o.FindAll,
		cells:   cells,
	}
}

// compute derives cell (i, j) from already-filled cells: the diagonal
// extension, the best deletion ending here (any length up the column), and
// the best insertion ending here (any length along the row), floored at zero.
// Gap ties keep the first candidate found, i.e. the longest gap.
//
// Arrows record every move that attains the score, in priority order
// (diagonal, deletion, insertion); single-path mode keeps just the first.
func (b *builder) compute(i, j int) (cell, error) {
	pairScore, err := b.scorer.Score(b.query[i-1], b.subject[j-1])
	if err != nil {
		return cell{}, fmt.Errorf("sw: query position %d vs subject position %d: %w", i, j, err)
	}
	pair := b.cells[i-1][j-1].score + pairScore

	var del float64
	delLen := 0
	for k := 0; k < i; k++ {
		if v := b.cells[k][j].score - GapPenalty(b.open, b.extend, i-k); v > del {
			del, delLen = v, i-k
		}
	}

	var ins float64
	insLen := 0
	for k := 0; k < j; k++ {
		if v := b.cells[i][k].score - GapPenalty(b.open, b.extend, j-k); v > ins {
			ins, insLen = v, j-k
		}
	}

	value := max(0, pair, del, ins)
	c := cell{score: value}
	if value == 0 {
		c.steps = startSteps
		return c, nil
	}
	if value == pair {
		c.steps = append(c.steps, step{kind: stepDiag})
	}
	if value == del {
		c.steps = append(c.steps, step{kind: stepDelete, length: delLen})
	}
	if value == ins {
		c.steps = append(c.steps, step{kind: stepInsert, length: insLen})
	}
	if !b.findAll {
		c.steps = c.steps[:1]
	}
	return c, nil
}

// fill computes the whole lattice serially, row-major.
func (b *builder) fill() error {
	for i := 1; i < len(b.cells); i++ {
		for j := 1; j < len(b.cells[i]); j++ {
			c, err := b.compute(i, j)
			if err != nil {
				return err
			}
			b.cells[i][j] = c
		}
	}
	return nil
}

// fillParallel computes the lattice wave by wave. Every dependency of cell
// (i, j) — the diagonal neighbor, the column above, the row to the left —
// lies on a strictly smaller anti-diagonal, so cells sharing i+j are
// independent and split across up to workers goroutines. Each cell is
// written by exactly one goroutine, and the result is identical to fill.
func (b *builder) fillParallel(workers int) error {
	rows := len(b.cells)
	cols := len(b.cells[0])

	for d := 2; d <= rows+cols-2; d++ {
		lo := max(1, d-cols+1)
		hi := min(rows-1, d-1)
		if lo > hi {
			continue
		}
		chunk := (hi - lo + workers) / workers

		var g errgroup.Group
		for start := lo; start <= hi; start += chunk {
			first, last := start, min(start+chunk-1, hi)
			g.Go(func() error {
				for i := first; i <= last; i++ {
					c, err := b.compute(i, d-i)
					if err != nil {
						return err
					}
					b.cells[i][d-i] = c
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}

// scanMax locates the optimal score and its cells in row-major order.
// A strictly greater score resets the set; an equal positive score extends
// it only in find-all mode, so single-path mode keeps the first optimum.
// An all-zero lattice reports the origin alone: one empty alignment.
func (b *builder) scanMax() (float64, [][2]int) {
	maxScore := 0.0
	var positions [][2]int
	for i := 1; i < len(b.cells); i++ {
		for j := 1; j < len(b.cells[i]); j++ {
			v := b.cells[i][j].score
			switch {
			case v > maxScore:
				maxScore = v
				positions = append(positions[:0], [2]int{i, j})
			case v == maxScore && v > 0 && b.findAll:
				positions = append(positions, [2]int{i, j})
			}
		}
	}
	if maxScore == 0 {
		return 0, [][2]int{{0, 0}}
	}
	return maxScore, positions
}
