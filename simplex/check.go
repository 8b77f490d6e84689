package simplex

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CheckDuality verifies that the certificate of an optimal result prices
// the original rhs at the objective value: y'b == c'x.
func CheckDuality(res *Result, rhs []float64, tol float64) error {
	if res.Status != Optimal {
		return errors.Wrapf(ErrCertificate, "duality check needs an optimal result, got %v", res.Status)
	}
	if len(rhs) != len(res.Certificate) {
		return errors.Wrapf(ErrCertificate, "rhs has %d entries, certificate %d", len(rhs), len(res.Certificate))
	}
	if yb := floats.Dot(res.Certificate, rhs); math.Abs(yb-res.Objective) > tol {
		return errors.Wrapf(ErrCertificate, "y'b = %g, objective = %g", yb, res.Objective)
	}
	return nil
}

// CheckFeasibility verifies Ax <= b and x >= 0 for the solution of an
// optimal result. a holds the original constraint coefficients.
func CheckFeasibility(res *Result, a mat.Matrix, rhs []float64, tol float64) error {
	if res.Status != Optimal {
		return errors.Wrapf(ErrCertificate, "feasibility check needs an optimal result, got %v", res.Status)
	}
	m, n := a.Dims()
	if len(res.Solution) != n || len(rhs) != m {
		return errors.Wrapf(ErrCertificate, "solution has %d entries, rhs %d, matrix is %dx%d", len(res.Solution), len(rhs), m, n)
	}
	for j, v := range res.Solution {
		if math.IsNaN(v) || v < -tol {
			return errors.Wrapf(ErrCertificate, "x[%d] = %g", j, v)
		}
	}

	var ax mat.VecDense
	ax.MulVec(a, mat.NewVecDense(n, res.Solution))
	for i := range m {
		if ax.AtVec(i) > rhs[i]+tol {
			return errors.Wrapf(ErrCertificate, "row %d: %g > %g", i, ax.AtVec(i), rhs[i])
		}
	}
	return nil
}

// CheckFarkas verifies that the certificate of an infeasible result proves
// infeasibility: y >= 0, y'A >= 0 and y'b < 0.
func CheckFarkas(res *Result, a mat.Matrix, rhs []float64, tol float64) error {
	if res.Status != Infeasible {
		return errors.Wrapf(ErrCertificate, "farkas check needs an infeasible result, got %v", res.Status)
	}
	m, n := a.Dims()
	y := res.Certificate
	if len(y) != m || len(rhs) != m {
		return errors.Wrapf(ErrCertificate, "certificate has %d entries, rhs %d, matrix has %d rows", len(y), len(rhs), m)
	}
	if floats.Min(y) < -tol {
		return errors.Wrapf(ErrCertificate, "certificate has a negative entry %g", floats.Min(y))
	}

	var ya mat.VecDense
	ya.MulVec(a.T(), mat.NewVecDense(m, y))
	for j := range n {
		if ya.AtVec(j) < -tol {
			return errors.Wrapf(ErrCertificate, "y'A[%d] = %g", j, ya.AtVec(j))
		}
	}
	if yb := floats.Dot(y, rhs); yb >= -tol {
		return errors.Wrapf(ErrCertificate, "y'b = %g is not negative", yb)
	}
	return nil
}
