// File: internal/cli/align_test.go
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swath/scoring"
)

// executeAlign runs the align subcommand with args and captures its output.
func executeAlign(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(append([]string{"align"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlag restores a sticky flag to its default after the test, so later
// tests see the documented default again.
func resetFlag(t *testing.T, name, def string) {
	t.Helper()
	t.Cleanup(func() {
		_ = alignCmd.Flags().Set(name, def)
	})
}

// TestAlign_Report runs a full alignment and checks the report and summary
// both land on stdout with the FASTA header names.
func TestAlign_Report(t *testing.T) {
	out, err := executeAlign(t,
		"-q", "testdata/query.fasta",
		"-s", "testdata/subject.fasta",
		"-m", "testdata/toy.txt",
		"--gap-open", "2", "--gap-ext", "1",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "******* Query: q1 *******")
	assert.Contains(t, out, "******* Subject: s1 *******")
	assert.Contains(t, out, "******* ALIGNMENT NUMBER: 1, SCORE: 5 *******")
	assert.Contains(t, out, "Query:   1 AAGAA 5")
	assert.Contains(t, out, "Sbjct:   1 AA-AA 4")
	assert.Contains(t, out, "1-5", "summary row with the query range")
}

// TestAlign_NameOverrides swaps both display names via flags.
func TestAlign_NameOverrides(t *testing.T) {
	resetFlag(t, "query-name", "")
	resetFlag(t, "subject-name", "")

	out, err := executeAlign(t,
		"-q", "testdata/query.fasta",
		"-s", "testdata/subject.fasta",
		"-m", "testdata/toy.txt",
		"--gap-open", "2", "--gap-ext", "1",
		"--query-name", "ubiquitin", "--subject-name", "target",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "******* Query: ubiquitin *******")
	assert.Contains(t, out, "******* Subject: target *******")
	assert.NotContains(t, out, "Query: q1")
}

// TestAlign_FirstOnly verifies --first suppresses the co-optimal twin of a
// tied alignment.
func TestAlign_FirstOnly(t *testing.T) {
	resetFlag(t, "first", "false")

	all, err := executeAlign(t,
		"-q", "testdata/tie_query.fasta",
		"-s", "testdata/tie_subject.fasta",
		"-m", "testdata/toy.txt",
		"--gap-open", "2", "--gap-ext", "1",
		"--first=false",
	)
	require.NoError(t, err)
	assert.Contains(t, all, "ALIGNMENT NUMBER: 2")

	first, err := executeAlign(t,
		"-q", "testdata/tie_query.fasta",
		"-s", "testdata/tie_subject.fasta",
		"-m", "testdata/toy.txt",
		"--gap-open", "2", "--gap-ext", "1",
		"--first",
	)
	require.NoError(t, err)
	assert.Contains(t, first, "ALIGNMENT NUMBER: 1")
	assert.NotContains(t, first, "ALIGNMENT NUMBER: 2")
}

// TestAlign_MaxCap verifies --max flows into the truncation notice.
func TestAlign_MaxCap(t *testing.T) {
	resetFlag(t, "max", "0")

	out, err := executeAlign(t,
		"-q", "testdata/tie_query.fasta",
		"-s", "testdata/tie_subject.fasta",
		"-m", "testdata/toy.txt",
		"--gap-open", "2", "--gap-ext", "1",
		"--max", "1",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "ALIGNMENT NUMBER: 1")
	assert.NotContains(t, out, "ALIGNMENT NUMBER: 2")
	assert.Contains(t, out, "truncated: only the first 1")
}

// TestAlign_OutFile sends the report to a file and keeps the summary on stdout.
func TestAlign_OutFile(t *testing.T) {
	resetFlag(t, "out", "")

	path := filepath.Join(t.TempDir(), "report.txt")
	out, err := executeAlign(t,
		"-q", "testdata/query.fasta",
		"-s", "testdata/subject.fasta",
		"-m", "testdata/toy.txt",
		"--gap-open", "2", "--gap-ext", "1",
		"-o", path,
	)
	require.NoError(t, err)

	report, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(report), "ALIGNMENT NUMBER: 1, SCORE: 5")
	assert.Contains(t, string(report), "Sbjct:   1 AA-AA 4")

	assert.NotContains(t, out, "ALIGNMENT NUMBER", "report stays out of stdout")
	assert.Contains(t, out, "1-5", "summary stays on stdout")
}

// TestAlign_MissingInput surfaces unreadable FASTA paths as command errors.
func TestAlign_MissingInput(t *testing.T) {
	_, err := executeAlign(t,
		"-q", "testdata/absent.fasta",
		"-s", "testdata/subject.fasta",
		"-m", "testdata/toy.txt",
	)
	assert.Error(t, err)
}

// TestAlign_BadMatrixPath surfaces matrix resolution failures.
func TestAlign_BadMatrixPath(t *testing.T) {
	resetFlag(t, "matrix", "blosum62")

	_, err := executeAlign(t,
		"-q", "testdata/query.fasta",
		"-s", "testdata/subject.fasta",
		"-m", "testdata/absent.txt",
	)
	assert.Error(t, err)
}

// TestResolveMatrix covers the built-in name and file path branches.
func TestResolveMatrix(t *testing.T) {
	m, err := resolveMatrix("blosum62")
	require.NoError(t, err)
	assert.Same(t, scoring.Blosum62, m)

	m, err = resolveMatrix("BLOSUM62")
	require.NoError(t, err)
	assert.Same(t, scoring.Blosum62, m, "built-in lookup ignores case")

	m, err = resolveMatrix("testdata/toy.txt")
	require.NoError(t, err)
	assert.Equal(t, "toy", m.Name())

	_, err = resolveMatrix("testdata/absent.txt")
	assert.Error(t, err)
}

// TestRootCmd_Version prints the release tag.
func TestRootCmd_Version(t *testing.T) {
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"--version"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "0.1.0")
}
