// Package model holds a linear program of the form
//
//	max c'x  s.t.  Ax <= b, x >= 0
//
// and its one-time conversion to equality form with slack variables.
package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LinearProgram is an LP in "natural" form until Standardize is called.
//
// Before standardization A is numConstraints x (numVars+1) and its last
// column is b. After standardization A is numConstraints x
// (numVars+numConstraints), the trailing block is the slack identity and
// b lives in the rhs vector.
type LinearProgram struct {
	numVars        int
	numConstraints int

	//c objective function coefficients
	c *mat.VecDense

	//a constraints matrix
	a *mat.Dense

	//b constraints rhs
	b *mat.VecDense

	standardized bool
}

// NewLinearProgram wraps already parsed data. cost must hold numVars values
// and a must be numConstraints x (numVars+1). Sizes are not checked here;
// use FromRows or Validate for untrusted input.
func NewLinearProgram(numVars, numConstraints int, cost []float64, a *mat.Dense) *LinearProgram {
	c := make([]float64, len(cost))
	copy(c, cost)
	return &LinearProgram{
		numVars:        numVars,
		numConstraints: numConstraints,
		c:              mat.NewVecDense(len(c), c),
		a:              a,
		b:              mat.NewVecDense(numConstraints, nil),
	}
}

// FromRows builds a LinearProgram from a cost vector and constraint rows,
// each row holding the coefficients followed by the right-hand side.
func FromRows(cost []float64, rows [][]float64) (*LinearProgram, error) {
	n, m := len(cost), len(rows)
	if n == 0 || m == 0 {
		return nil, ErrBadShape
	}
	if err := checkFinite(cost); err != nil {
		return nil, errors.Wrap(err, "cost vector")
	}

	data := make([]float64, 0, m*(n+1))
	for i, row := range rows {
		if len(row) != n+1 {
			return nil, errors.Wrapf(ErrDimensionMismatch, "row %d has %d values, want %d", i, len(row), n+1)
		}
		if err := checkFinite(row); err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		data = append(data, row...)
	}

	return NewLinearProgram(n, m, cost, mat.NewDense(m, n+1, data)), nil
}

func checkFinite(vals []float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}
	return nil
}

// Validate reports whether the stored sizes agree with the declared number
// of variables and constraints for the current form.
func (lp *LinearProgram) Validate() error {
	if lp.numVars < 1 || lp.numConstraints < 1 {
		return ErrBadShape
	}

	wantCols, wantCost := lp.numVars+1, lp.numVars
	if lp.standardized {
		wantCols = lp.numVars + lp.numConstraints
		wantCost = wantCols
	}

	r, c := lp.a.Dims()
	if r != lp.numConstraints || c != wantCols {
		return errors.Wrapf(ErrDimensionMismatch, "constraint matrix is %dx%d, want %dx%d", r, c, lp.numConstraints, wantCols)
	}
	if lp.c.Len() != wantCost {
		return errors.Wrapf(ErrDimensionMismatch, "cost vector has %d entries, want %d", lp.c.Len(), wantCost)
	}
	if lp.b.Len() != lp.numConstraints {
		return errors.Wrapf(ErrDimensionMismatch, "rhs has %d entries, want %d", lp.b.Len(), lp.numConstraints)
	}
	return nil
}

// Standardize converts the program to equality form by appending one slack
// column per constraint and moving the last matrix column into the rhs.
// Calling it again is a no-op.
func (lp *LinearProgram) Standardize() {
	if lp.standardized {
		return
	}
	m, n := lp.numConstraints, lp.numVars

	b := mat.NewVecDense(m, nil)
	b.CopyVec(lp.a.ColView(n))

	a := mat.NewDense(m, n+m, nil)
	a.Slice(0, m, 0, n).(*mat.Dense).Copy(lp.a.Slice(0, m, 0, n))
	for i := range m {
		a.Set(i, n+i, 1)
	}

	c := mat.NewVecDense(n+m, nil)
	c.SliceVec(0, n).(*mat.VecDense).CopyVec(lp.c)

	lp.a, lp.b, lp.c = a, b, c
	lp.standardized = true
}

// IsStandardized reports whether Standardize has run.
func (lp *LinearProgram) IsStandardized() bool {
	return lp.standardized
}

// Clone returns a deep copy. The solver mutates the tableau in place, so
// callers that need the original data afterwards should solve a clone.
func (lp *LinearProgram) Clone() *LinearProgram {
	return &LinearProgram{
		numVars:        lp.numVars,
		numConstraints: lp.numConstraints,
		c:              mat.VecDenseCopyOf(lp.c),
		a:              mat.DenseCopyOf(lp.a),
		b:              mat.VecDenseCopyOf(lp.b),
		standardized:   lp.standardized,
	}
}

func (lp *LinearProgram) NumVars() int        { return lp.numVars }
func (lp *LinearProgram) NumConstraints() int { return lp.numConstraints }

// NumCols is the number of tableau columns: numVars+numConstraints once
// standardized, numVars+1 before.
func (lp *LinearProgram) NumCols() int {
	_, c := lp.a.Dims()
	return c
}

// Cost returns the cost vector. The solver overwrites it with reduced costs.
func (lp *LinearProgram) Cost() *mat.VecDense { return lp.c }

// Constraints returns the constraint matrix.
func (lp *LinearProgram) Constraints() *mat.Dense { return lp.a }

// RHS returns the right-hand side. It is all zeros until Standardize.
func (lp *LinearProgram) RHS() *mat.VecDense { return lp.b }

func (lp *LinearProgram) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "variables = %d, constraints = %d\n", lp.numVars, lp.numConstraints)
	fmt.Fprintf(&sb, "c = %v\n", mat.Formatted(lp.c.T(), mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(&sb, "A = %v\n", mat.Formatted(lp.a, mat.Prefix("    "), mat.Squeeze()))
	if lp.standardized {
		fmt.Fprintf(&sb, "b = %v\n", mat.Formatted(lp.b, mat.Prefix("    "), mat.Squeeze()))
	}
	return sb.String()
}
