package seq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadAll reads every FASTA record from r, in order, tagging each resulting
// Sequence with role. A record is a '>' header line followed by zero or more
// sequence lines; sequence lines are concatenated with trailing whitespace
// (including CR on CRLF input) stripped. A header with no sequence lines
// yields a valid zero-length Sequence.
//
// Errors:
//   - ErrMissingHeader — sequence data before the first '>' header.
//   - ErrNoRecords     — the input held no records at all.
func ReadAll(r io.Reader, role Role) ([]*Sequence, error) {
	var (
		records []*Sequence
		current *strings.Builder
		name    string
		lineNo  int
	)

	flush := func() {
		if current != nil {
			records = append(records, New(name, role, current.String()))
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		switch {
		case strings.HasPrefix(line, ">"):
			flush()
			name = line[1:]
			current = &strings.Builder{}
		case line == "":
			// blank lines are tolerated anywhere
		case current == nil:
			return nil, fmt.Errorf("%w: line %d", ErrMissingHeader, lineNo)
		default:
			current.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seq: reading FASTA: %w", err)
	}
	flush()

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// Read reads the first FASTA record from r and tags it with role.
// Remaining records, if any, are ignored.
func Read(r io.Reader, role Role) (*Sequence, error) {
	records, err := ReadAll(r, role)
	if err != nil {
		return nil, err
	}
	return records[0], nil
}

// ReadFile opens path and reads its first FASTA record, tagged with role.
func ReadFile(path string, role Role) (*Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seq: %w", err)
	}
	defer f.Close()

	s, err := Read(f, role)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return s, nil
}
