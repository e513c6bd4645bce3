package scoring

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Parse reads a substitution matrix in the NCBI textual format:
//
//	#  comment lines
//	   A  R  N  D ...      ← column symbols, single characters
//	A  4 -1 -2 -2 ...      ← row label + one value per column
//	R -1  5  0 -1 ...
//
// Lines starting with '#' and blank lines are skipped. The first contentful
// line is the column header; every following line is a data row. Rows need
// not cover every column symbol — missing pairs surface as ErrUnknownSymbol
// at lookup time, never as defaults.
//
// Errors: ErrBadMatrix (with line context) on multi-character or duplicate
// symbols, wrong value counts, non-numeric values, or a missing header or
// data section.
func Parse(r io.Reader) (*Matrix, error) {
	m := &Matrix{scores: make(map[byte]map[byte]float64)}
	cols := make(map[byte]bool)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		if m.symbols == nil {
			for _, f := range fields {
				if len(f) != 1 {
					return nil, fmt.Errorf("%w: line %d: column symbol %q is not a single character", ErrBadMatrix, lineNo, f)
				}
				if cols[f[0]] {
					return nil, fmt.Errorf("%w: line %d: duplicate column symbol %q", ErrBadMatrix, lineNo, f)
				}
				cols[f[0]] = true
				m.symbols = append(m.symbols, f[0])
			}
			continue
		}

		label := fields[0]
		if len(label) != 1 {
			return nil, fmt.Errorf("%w: line %d: row label %q is not a single character", ErrBadMatrix, lineNo, label)
		}
		row := label[0]
		if _, dup := m.scores[row]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate row %q", ErrBadMatrix, lineNo, label)
		}
		if got, want := len(fields)-1, len(m.symbols); got != want {
			return nil, fmt.Errorf("%w: line %d: row %q has %d values, want %d", ErrBadMatrix, lineNo, label, got, want)
		}
		values := make(map[byte]float64, len(m.symbols))
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: value %q is not a number", ErrBadMatrix, lineNo, f)
			}
			values[m.symbols[i]] = v
		}
		m.scores[row] = values
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scoring: reading matrix: %w", err)
	}

	if m.symbols == nil {
		return nil, fmt.Errorf("%w: no header row", ErrBadMatrix)
	}
	if len(m.scores) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrBadMatrix)
	}
	return m, nil
}

// ParseFile reads a substitution matrix from path. The matrix name is the
// file base name without extension.
func ParseFile(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scoring: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	m.name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return m, nil
}

// MustParse parses matrix text under the given name and panics on error.
// Intended for embedding standard matrices as package data.
func MustParse(name, text string) *Matrix {
	m, err := Parse(strings.NewReader(text))
	if err != nil {
		panic(err)
	}
	m.name = name
	return m
}
