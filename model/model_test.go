package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func twoByTwo(t *testing.T) *LinearProgram {
	t.Helper()
	lp, err := FromRows([]float64{3, 2}, [][]float64{
		{1, 1, 4},
		{1, 3, 6},
	})
	require.NoError(t, err)
	return lp
}

func TestStandardize(t *testing.T) {
	lp := twoByTwo(t)
	require.NoError(t, lp.Validate())
	assert.False(t, lp.IsStandardized())
	assert.Equal(t, 3, lp.NumCols())

	lp.Standardize()
	require.True(t, lp.IsStandardized())
	require.NoError(t, lp.Validate())

	wantA := mat.NewDense(2, 4, []float64{
		1, 1, 1, 0,
		1, 3, 0, 1,
	})
	assert.True(t, mat.Equal(wantA, lp.Constraints()))
	assert.Equal(t, []float64{4, 6}, lp.RHS().RawVector().Data)
	assert.Equal(t, []float64{3, 2, 0, 0}, lp.Cost().RawVector().Data)
	assert.Equal(t, 4, lp.NumCols())
}

func TestStandardizeSlackIdentity(t *testing.T) {
	lp, err := FromRows([]float64{1, 1, 1}, [][]float64{
		{2, 0, 1, 5},
		{0, 1, 0, 3},
		{1, 1, 1, 9},
		{4, 0, 0, 8},
	})
	require.NoError(t, err)
	lp.Standardize()

	n, m := lp.NumVars(), lp.NumConstraints()
	slack := lp.Constraints().Slice(0, m, n, n+m)
	assert.True(t, mat.Equal(slack, eye(m)))
}

func TestStandardizeIdempotent(t *testing.T) {
	once := twoByTwo(t)
	once.Standardize()

	twice := twoByTwo(t)
	twice.Standardize()
	twice.Standardize()

	assert.True(t, mat.Equal(once.Constraints(), twice.Constraints()))
	assert.True(t, mat.Equal(once.RHS(), twice.RHS()))
	assert.True(t, mat.Equal(once.Cost(), twice.Cost()))
}

func TestCloneIsDeep(t *testing.T) {
	lp := twoByTwo(t)
	lp.Standardize()
	cp := lp.Clone()

	cp.Constraints().Set(0, 0, 42)
	cp.RHS().SetVec(0, -1)
	cp.Cost().SetVec(0, 7)

	assert.Equal(t, 1.0, lp.Constraints().At(0, 0))
	assert.Equal(t, 4.0, lp.RHS().AtVec(0))
	assert.Equal(t, 3.0, lp.Cost().AtVec(0))
	assert.True(t, cp.IsStandardized())
}

func TestFromRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		cost []float64
		rows [][]float64
		want error
	}{
		{"no variables", nil, [][]float64{{1}}, ErrBadShape},
		{"no constraints", []float64{1}, nil, ErrBadShape},
		{"short row", []float64{1, 2}, [][]float64{{1, 2}}, ErrDimensionMismatch},
		{"long row", []float64{1}, [][]float64{{1, 2, 3}}, ErrDimensionMismatch},
		{"nan cost", []float64{math.NaN()}, [][]float64{{1, 2}}, ErrNaNInf},
		{"inf rhs", []float64{1}, [][]float64{{1, math.Inf(1)}}, ErrNaNInf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows(tt.cost, tt.rows)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateMismatch(t *testing.T) {
	lp := NewLinearProgram(3, 2, []float64{1, 2, 3}, mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, lp.Validate(), ErrDimensionMismatch)

	lp = NewLinearProgram(0, 2, []float64{1}, mat.NewDense(2, 1, nil))
	assert.ErrorIs(t, lp.Validate(), ErrBadShape)
}

func TestString(t *testing.T) {
	lp := twoByTwo(t)
	s := lp.String()
	assert.Contains(t, s, "variables = 2, constraints = 2")
	assert.NotContains(t, s, "b = ")

	lp.Standardize()
	assert.Contains(t, lp.String(), "b = ")
}

func eye(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := range n {
		d.Set(i, i, 1)
	}
	return d
}
