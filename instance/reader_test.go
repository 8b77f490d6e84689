package instance

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"q.log/lpsimplex/model"
)

func TestParse(t *testing.T) {
	lp, err := Parse(strings.NewReader("2 3\n1 2.5 -3\n1 0 1 10\n0 2 1 8\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, lp.NumVars())
	assert.Equal(t, 2, lp.NumConstraints())
	assert.Equal(t, []float64{1, 2.5, -3}, lp.Cost().RawVector().Data)
	assert.True(t, mat.Equal(mat.NewDense(2, 4, []float64{
		1, 0, 1, 10,
		0, 2, 1, 8,
	}), lp.Constraints()))
	assert.False(t, lp.IsStandardized())
}

func TestParseBlankLines(t *testing.T) {
	lp, err := Parse(strings.NewReader("\n1 1\n\n  5  \n2 7\n\n\n"))
	require.NoError(t, err)
	lp.Standardize()
	assert.Equal(t, []float64{7}, lp.RHS().RawVector().Data)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrSyntax},
		{"short header", "2\n", ErrSyntax},
		{"fractional header", "1.5 2\n", ErrSyntax},
		{"zero constraints", "0 2\n1 1\n", ErrSyntax},
		{"not a number", "1 1\nx\n1 2\n", ErrSyntax},
		{"short cost", "1 2\n1\n1 1 1\n", ErrSyntax},
		{"missing row", "2 1\n1\n1 1\n", ErrSyntax},
		{"huge row count", "100000000000000 1\n1\n1 1\n", ErrSyntax},
		{"huge variable count", "1 100000000000000\n1\n1 1\n", ErrSyntax},
		{"short row", "1 2\n1 1\n1 1\n", ErrSyntax},
		{"infinite value", "1 1\n1\n1 Inf\n", model.ErrNaNInf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseErrorLine(t *testing.T) {
	_, err := Parse(strings.NewReader("2 1\n1\n1 1\n1 a\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestConstructModelFromFile(t *testing.T) {
	lp, err := NewReader(filepath.Join("testdata", "two_by_two.txt")).ConstructModelFromFile()
	require.NoError(t, err)
	assert.Equal(t, 2, lp.NumVars())
	assert.Equal(t, 2, lp.NumConstraints())
	assert.Equal(t, []float64{3, 2}, lp.Cost().RawVector().Data)

	_, err = NewReader(filepath.Join("testdata", "missing.txt")).ConstructModelFromFile()
	assert.Error(t, err)
}
