// Package simplex solves max c'x s.t. Ax <= b, x >= 0 with the tableau
// simplex method.
//
// The solver works directly on the tableau of a standardized
// model.LinearProgram: its cost vector becomes the reduced cost row, its
// constraint matrix and rhs are reduced by Gauss-Jordan pivots. Next to the
// tableau the solver keeps the inverse of the current basis, updated by the
// same row operations, from which the dual certificate is read.
//
// A primal pass runs first. If it ends with reduced costs <= 0 but a
// negative rhs entry, a dual pass restores primal feasibility or proves
// that none exists.
package simplex

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"
	"q.log/lpsimplex/model"
)

// Solver owns a LinearProgram for the duration of Run and mutates its
// tableau in place. A Solver is not safe for concurrent use.
type Solver struct {
	lp  *model.LinearProgram
	cfg config

	// basisInv is the product of every row operation applied so far, which
	// is the inverse of the current basis.
	basisInv *mat.Dense

	// cert and objective accumulate with the internal sign convention and
	// are negated once the passes are over.
	cert      *mat.VecDense
	objective float64

	// basis[i] is the column basic in row i.
	basis []int

	iterations int
	unbounded  int
	farkasRow  int

	result *Result
}

// NewSolver returns a solver for lp. The solver takes exclusive ownership
// of lp's cost vector, constraint matrix and rhs; solve a Clone if the
// original data is needed afterwards.
func NewSolver(lp *model.LinearProgram, opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Solver{
		lp:        lp,
		cfg:       cfg,
		unbounded: -1,
		farkasRow: -1,
	}
}

// Run solves the program and classifies it. The LP is standardized first if
// the caller has not done so. Unbounded and infeasible programs are regular
// results; the only error outcomes are a malformed program and hitting the
// iteration cap, in which case the partial Result is returned as well.
// Calling Run again returns the first result.
func (s *Solver) Run() (*Result, error) {
	if s.result != nil {
		return s.result, s.resultErr()
	}

	if err := s.lp.Validate(); err != nil {
		return nil, errors.Wrap(err, "simplex")
	}
	s.lp.Standardize()
	s.reset()

	status := s.primal()
	if status == Optimal {
		status = s.dual()
	}
	klog.V(1).Infof("simplex finished: %v after %d pivots", status, s.iterations)

	s.result = s.extract(status)
	return s.result, s.resultErr()
}

func (s *Solver) resultErr() error {
	if s.result.Status == IterationLimit {
		return errors.Wrapf(ErrIterationLimit, "after %d pivots", s.result.Iterations)
	}
	return nil
}

func (s *Solver) reset() {
	n, m := s.lp.NumVars(), s.lp.NumConstraints()

	s.basisInv = mat.NewDense(m, m, nil)
	for i := range m {
		s.basisInv.Set(i, i, 1)
	}
	s.cert = mat.NewVecDense(m, nil)
	s.objective = 0

	s.basis = make([]int, m)
	for i := range s.basis {
		s.basis[i] = n + i
	}
	s.iterations = 0
	s.unbounded = -1
	s.farkasRow = -1
}

// primal runs the primal pivoting loop until every reduced cost is <= 0 or
// an improving column has no positive entry.
func (s *Solver) primal() Status {
	klog.V(1).Infof("primal pass: %d rows, %d columns", s.lp.NumConstraints(), s.lp.NumCols())
	for {
		q := s.enteringColumn()
		if q < 0 {
			return Optimal
		}
		p := s.leavingRow(q)
		if p < 0 {
			klog.V(1).Infof("column %d has no positive entry, problem is unbounded", q)
			s.unbounded = q
			return Unbounded
		}
		if s.iterations >= s.cfg.maxIterations {
			return IterationLimit
		}
		s.pivot(p, q)
	}
}

// dual drives negative rhs entries out of the basis while keeping every
// reduced cost <= 0.
func (s *Solver) dual() Status {
	if s.leavingDualRow() >= 0 {
		klog.V(1).Info("basis is primal infeasible, starting dual pass")
	}
	for {
		r := s.leavingDualRow()
		if r < 0 {
			break
		}
		q := s.enteringDualColumn(r)
		if q < 0 {
			klog.V(1).Infof("row %d has a negative rhs and no negative entry, problem is infeasible", r)
			s.farkasRow = r
			return Infeasible
		}
		if s.iterations >= s.cfg.maxIterations {
			return IterationLimit
		}
		s.pivot(r, q)
	}

	if s.cfg.negativeObjective && -s.objective < -s.cfg.tolerance {
		klog.V(1).Infof("objective %g is negative, reporting infeasible", -s.objective)
		return Infeasible
	}
	return Optimal
}

// enteringColumn returns the column to enter the basis, or -1 when no
// reduced cost is positive.
func (s *Solver) enteringColumn() int {
	c := s.lp.Cost().RawVector().Data
	if s.cfg.rule == Bland {
		for j, v := range c {
			if v > s.cfg.tolerance {
				return j
			}
		}
		return -1
	}

	q := floats.MaxIdx(c)
	if c[q] <= s.cfg.tolerance {
		return -1
	}
	return q
}

// leavingRow runs the ratio test on column q. It returns -1 if the column
// has no positive entry.
func (s *Solver) leavingRow(q int) int {
	a, b := s.lp.Constraints(), s.lp.RHS()
	tol := s.cfg.tolerance

	p := -1
	var minRatio float64
	for i := range s.lp.NumConstraints() {
		v := a.At(i, q)
		if v <= tol {
			continue
		}
		ratio := b.AtVec(i) / v
		switch {
		case p == -1, ratio < minRatio-tol:
			p, minRatio = i, ratio
		case s.cfg.rule == Bland && ratio <= minRatio+tol && s.basis[i] < s.basis[p]:
			p, minRatio = i, ratio
		}
	}
	return p
}

// leavingDualRow returns the row with the most negative rhs, or -1 when the
// rhs is non-negative.
func (s *Solver) leavingDualRow() int {
	b := s.lp.RHS().RawVector().Data
	r := floats.MinIdx(b)
	if b[r] >= -s.cfg.tolerance {
		return -1
	}
	return r
}

// enteringDualColumn runs the dual ratio test on row r. It returns -1 if
// the row has no negative entry.
func (s *Solver) enteringDualColumn(r int) int {
	row := s.lp.Constraints().RawRowView(r)
	c := s.lp.Cost().RawVector().Data
	tol := s.cfg.tolerance

	q := -1
	var minRatio float64
	for j, v := range row {
		if v >= -tol {
			continue
		}
		ratio := c[j] / v
		if q == -1 || ratio < minRatio-tol {
			q, minRatio = j, ratio
		}
	}
	return q
}

// Basis returns the basic column of every row.
func (s *Solver) Basis() []int {
	out := make([]int, len(s.basis))
	copy(out, s.basis)
	return out
}

// BasisInverse returns the inverse of the current basis. It is nil before
// Run.
func (s *Solver) BasisInverse() mat.Matrix {
	if s.basisInv == nil {
		return nil
	}
	return s.basisInv
}

// Iterations returns the number of pivots performed so far.
func (s *Solver) Iterations() int {
	return s.iterations
}
