// File: scoring/scoring_test.go
package scoring_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/swath/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toy 3×3 matrix used across parser tests.
const toyMatrix = `# toy matrix
   A  B  C
A  0  5 -5
B  5  2 -5
C -5 -5  5
`

// TestNewSimple_MatchMismatch verifies the uniform constructor scores
// identity as match and every other pair as mismatch.
func TestNewSimple_MatchMismatch(t *testing.T) {
	m := scoring.NewSimple("ACGT", 2, -1)

	got, err := m.Score('A', 'A')
	require.NoError(t, err)
	assert.Equal(t, 2.0, got, "identity scores match")

	got, err = m.Score('A', 'C')
	require.NoError(t, err)
	assert.Equal(t, -1.0, got, "mismatch pair")

	got, err = m.Score('T', 'G')
	require.NoError(t, err)
	assert.Equal(t, -1.0, got, "mismatch pair, other direction")

	_, err = m.Score('X', 'A')
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol, "symbol outside alphabet")

	assert.Equal(t, "uniform", m.Name())
	assert.Equal(t, []byte("ACGT"), m.Symbols())
}

// TestNewSimple_DuplicateAlphabet deduplicates repeated alphabet symbols.
func TestNewSimple_DuplicateAlphabet(t *testing.T) {
	m := scoring.NewSimple("AAC", 1, 0)
	assert.Equal(t, []byte("AC"), m.Symbols(), "duplicates collapse")
}

// TestParse_Toy parses a small commented matrix and spot-checks lookups.
func TestParse_Toy(t *testing.T) {
	m, err := scoring.Parse(strings.NewReader(toyMatrix))
	require.NoError(t, err)

	assert.Equal(t, []byte("ABC"), m.Symbols(), "column order preserved")

	for _, tc := range []struct {
		a, b byte
		want float64
	}{
		{'A', 'A', 0},
		{'A', 'B', 5},
		{'B', 'B', 2},
		{'C', 'C', 5},
		{'B', 'C', -5},
	} {
		got, err := m.Score(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "score %c/%c", tc.a, tc.b)
	}
}

// TestParse_Asymmetric honors directional scores exactly as written.
func TestParse_Asymmetric(t *testing.T) {
	m, err := scoring.Parse(strings.NewReader("   A  B\nA  1 -2\nB -7  3\n"))
	require.NoError(t, err)

	ab, err := m.Score('A', 'B')
	require.NoError(t, err)
	ba, err := m.Score('B', 'A')
	require.NoError(t, err)

	assert.Equal(t, -2.0, ab, "row A, column B")
	assert.Equal(t, -7.0, ba, "row B, column A")
}

// TestParse_PartialRows treats a column without a data row as unknown at
// lookup time rather than defaulting.
func TestParse_PartialRows(t *testing.T) {
	m, err := scoring.Parse(strings.NewReader("   A  B  C\nA  1  2  3\n"))
	require.NoError(t, err)

	got, err := m.Score('A', 'C')
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	_, err = m.Score('B', 'A')
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol, "row B was never defined")
}

// TestParse_Malformed rejects structurally broken matrices with ErrBadMatrix.
func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"comments only", "# nothing else\n"},
		{"header only", "   A  B\n"},
		{"multi-char column", "   AB  C\nA  1  2\n"},
		{"duplicate column", "   A  A\nA  1  2\n"},
		{"multi-char row label", "   A  B\nAB  1  2\n"},
		{"duplicate row", "   A  B\nA  1  2\nA  3  4\n"},
		{"short row", "   A  B\nA  1\n"},
		{"long row", "   A  B\nA  1  2  3\n"},
		{"non-numeric value", "   A  B\nA  1  x\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scoring.Parse(strings.NewReader(tc.text))
			assert.ErrorIs(t, err, scoring.ErrBadMatrix)
		})
	}
}

// TestParseFile_Testdata loads a matrix file and names it after the file.
func TestParseFile_Testdata(t *testing.T) {
	m, err := scoring.ParseFile("testdata/toy.txt")
	require.NoError(t, err)

	assert.Equal(t, "toy", m.Name(), "base name without extension")
	got, err := m.Score('A', 'B')
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

// TestParseFile_Missing propagates the underlying open error.
func TestParseFile_Missing(t *testing.T) {
	_, err := scoring.ParseFile("testdata/absent.txt")
	assert.Error(t, err)
}

// TestMustParse_PanicsOnBadInput guards the embedding helper.
func TestMustParse_PanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { scoring.MustParse("broken", "no header here") })
}

// TestBlosum62_SpotValues checks well-known entries of the packaged table.
func TestBlosum62_SpotValues(t *testing.T) {
	assert.Equal(t, "blosum62", scoring.Blosum62.Name())
	assert.Len(t, scoring.Blosum62.Symbols(), 24, "20 amino acids + B, Z, X, *")

	for _, tc := range []struct {
		a, b byte
		want float64
	}{
		{'A', 'A', 4},
		{'W', 'W', 11},
		{'*', '*', 1},
		{'A', 'W', -3},
		{'W', 'A', -3},
		{'E', 'Z', 4},
		{'X', 'P', -2},
		{'C', 'C', 9},
	} {
		got, err := scoring.Blosum62.Score(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "score %c/%c", tc.a, tc.b)
	}

	_, err := scoring.Blosum62.Score('J', 'A')
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol, "J is not in BLOSUM62")
}

// TestBuiltin resolves packaged matrices case-insensitively.
func TestBuiltin(t *testing.T) {
	m, ok := scoring.Builtin("blosum62")
	require.True(t, ok)
	assert.Same(t, scoring.Blosum62, m)

	_, ok = scoring.Builtin("BLOSUM62")
	assert.True(t, ok, "lookup is case-insensitive")

	_, ok = scoring.Builtin("pam250")
	assert.False(t, ok, "unregistered name")
}
