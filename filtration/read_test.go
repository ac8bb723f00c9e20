// SPDX-License-Identifier: MIT
// Package filtration_test verifies the filtration loader.
package filtration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhom/core"
	"github.com/katalvlaran/lvhom/filtration"
)

const triangleInput = `# filled triangle
0 0 0
0 0 1
0 0 2
1 1 0 1
1 1 1 2
1 1 0 2

2 2 0 1 2
`

// TestRead_Triangle parses a well-formed file in input order.
func TestRead_Triangle(t *testing.T) {
	fs, err := filtration.Read(strings.NewReader(triangleInput))
	require.NoError(t, err)
	require.Len(t, fs, 7)
	assert.Equal(t, core.MustSimplex(1, 1, 2), fs[4])
	assert.Equal(t, core.MustSimplex(2, 0, 1, 2), fs[6])
}

// TestRead_SinglePrecision rounds values to float32.
func TestRead_SinglePrecision(t *testing.T) {
	fs, err := filtration.Read(strings.NewReader("0.1 0 3\n"))
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, float64(float32(0.1)), fs[0].Value)
}

// TestRead_TrailingIncomplete ignores a truncated final record.
func TestRead_TrailingIncomplete(t *testing.T) {
	for _, tail := range []string{"0.5", "0.5 1", "0.5 1 3", "   "} {
		fs, err := filtration.Read(strings.NewReader("0 0 0\n" + tail))
		require.NoError(t, err, "tail %q", tail)
		assert.Len(t, fs, 1, "tail %q", tail)
	}
}

// TestRead_TokenStream ignores line breaks between and inside records.
func TestRead_TokenStream(t *testing.T) {
	fs, err := filtration.Read(strings.NewReader("0 0 0 0 0 1 1 1 0 1\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Simplex{
		core.MustSimplex(0, 0), core.MustSimplex(0, 1), core.MustSimplex(1, 0, 1),
	}, fs)

	fs, err = filtration.Read(strings.NewReader("1 1\n0 1\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Simplex{core.MustSimplex(1, 0, 1)}, fs)

	fs, err = filtration.Read(strings.NewReader("0 0 # a vertex\n 7\n\n2\n1 3 7 # an edge\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Simplex{core.MustSimplex(0, 7), core.MustSimplex(2, 3, 7)}, fs)
}

// TestRead_ErrorPosition names the record and line of a bad token.
func TestRead_ErrorPosition(t *testing.T) {
	_, err := filtration.Read(strings.NewReader("0 0 0 0 0\n1\n1 1 0 q\n"))
	require.ErrorIs(t, err, filtration.ErrMalformedRecord)
	assert.Contains(t, err.Error(), `record 3 (line 3): vertex "q"`)
}

// TestRead_Malformed rejects bad records anywhere else.
func TestRead_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"bad value", "x 0 0\n0 0 1\n", filtration.ErrMalformedRecord},
		{"bad dim", "0 y 0\n0 0 1\n", filtration.ErrMalformedRecord},
		{"negative dim", "0 -1 0\n0 0 1\n", filtration.ErrMalformedRecord},
		{"vertex swallows next value", "1 1 0\n0.5 0 1\n", filtration.ErrMalformedRecord},
		{"fraction as dim", "0 0.5 0\n", filtration.ErrMalformedRecord},
		{"bad vertex tail", "0 0 0\n1 1 0 z", filtration.ErrMalformedRecord},
		{"duplicate vertex", "1 1 4 4\n", core.ErrDuplicateVertex},
		{"negative vertex", "0 0 -3\n", core.ErrNegativeVertex},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := filtration.Read(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestReadFile reads from disk and reports missing files.
func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte(triangleInput), 0o644))

	fs, err := filtration.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, fs, 7)

	_, err = filtration.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
