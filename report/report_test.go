package report

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/lpsimplex/model"
	"q.log/lpsimplex/simplex"
)

func TestWriteOptimal(t *testing.T) {
	res := &simplex.Result{
		Status:      simplex.Optimal,
		Objective:   12,
		Certificate: []float64{3, 0},
		Solution:    []float64{4, 0},
		Determined:  []bool{true, true},
		Basis:       []int{0, 3},
		Iterations:  1,
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, Options{Precision: 1}))
	assert.Equal(t, "status: optimal\n"+
		"objective: 12.0\n"+
		"solution: 4.0 0.0\n"+
		"certificate: 3.0 0.0\n"+
		"basis: [0 3]\n"+
		"pivots: 1\n", buf.String())
}

func TestWriteMinimize(t *testing.T) {
	res := &simplex.Result{
		Status:     simplex.Optimal,
		Objective:  12,
		Solution:   []float64{4},
		Determined: []bool{true},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, Options{Minimize: true}))
	assert.Contains(t, buf.String(), "objective: -12.000\n")
}

func TestWriteUndetermined(t *testing.T) {
	res := &simplex.Result{
		Status:     simplex.Unbounded,
		Solution:   []float64{math.NaN(), 2},
		Determined: []bool{false, true},
		Ray:        []float64{1, 1},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, Options{}))
	assert.Contains(t, buf.String(), "solution: not determined 2.000\n")
	assert.Contains(t, buf.String(), "ray: 1.000 1.000\n")
}

func TestWriteInfeasible(t *testing.T) {
	res := &simplex.Result{
		Status:      simplex.Infeasible,
		Certificate: []float64{1},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, Options{}))
	assert.NotContains(t, buf.String(), "objective")
	assert.NotContains(t, buf.String(), "solution")
	assert.Contains(t, buf.String(), "certificate: 1.000\n")
}

func TestTableau(t *testing.T) {
	lp, err := model.FromRows([]float64{3, 2}, [][]float64{{1, 1, 4}})
	require.NoError(t, err)
	lp.Standardize()

	var buf bytes.Buffer
	require.NoError(t, Tableau(&buf, lp))
	assert.Contains(t, buf.String(), "c = ")
	assert.Contains(t, buf.String(), "A = ")
	assert.Contains(t, buf.String(), "b = ")
}
