package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Status classifies a solved program.
type Status int

const (
	Optimal Status = iota
	Unbounded
	Infeasible

	// IterationLimit means the pivot cap was hit before any other outcome.
	IterationLimit
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	case IterationLimit:
		return "iteration limit"
	}
	return "unknown"
}

// Result is what Run reports about a program.
type Result struct {
	Status Status

	// Objective is c'x at the final basis. It carries no meaning for
	// infeasible programs.
	Objective float64

	// Certificate is the dual vector y for optimal programs, a Farkas
	// vector (y >= 0, y'A >= 0, y'b < 0) for infeasible ones and the
	// sign-flipped dual accumulator for unbounded ones.
	Certificate []float64

	// Solution holds the original variables for optimal and unbounded
	// programs. Entries that could not be read off the tableau are NaN and
	// the matching Determined entry is false.
	Solution   []float64
	Determined []bool

	// Ray is an improving direction over the original variables when the
	// program is unbounded.
	Ray []float64

	// Basis lists the basic column of each row.
	Basis []int

	// EnteringColumn is the column found without a positive entry when the
	// program is unbounded, -1 otherwise.
	EnteringColumn int

	Iterations int
}

// IsOptimal reports whether the program was solved to optimality.
func (r *Result) IsOptimal() bool {
	return r.Status == Optimal
}

func (s *Solver) extract(status Status) *Result {
	res := &Result{
		Status:         status,
		Objective:      0 - s.objective,
		Basis:          s.Basis(),
		EnteringColumn: s.unbounded,
		Iterations:     s.iterations,
	}

	cert := make([]float64, s.cert.Len())
	copy(cert, s.cert.RawVector().Data)
	switch {
	case status == Infeasible && s.farkasRow >= 0:
		copy(cert, s.basisInv.RawRowView(s.farkasRow))
	case status != Unbounded:
		negate(cert)
	}
	res.Certificate = cert

	if status == Optimal || status == Unbounded {
		res.Solution, res.Determined = s.primalSolution()
	}
	if status == Unbounded {
		res.Ray = s.ray(s.unbounded)
	}
	return res
}

// negate flips signs without producing negative zeros.
func negate(v []float64) {
	for i := range v {
		v[i] = 0 - v[i]
	}
}

// primalSolution reads the original variables off the tableau. A variable
// with a nonzero reduced cost is nonbasic and zero. A variable with a zero
// reduced cost takes the rhs of the row where it is basic; a basic column
// that is not a unit column leaves the value undetermined.
func (s *Solver) primalSolution() ([]float64, []bool) {
	n := s.lp.NumVars()
	a, b, c := s.lp.Constraints(), s.lp.RHS(), s.lp.Cost()
	tol := s.cfg.tolerance

	rowOf := make(map[int]int, len(s.basis))
	for i, j := range s.basis {
		rowOf[j] = i
	}

	x := make([]float64, n)
	determined := make([]bool, n)
	for j := range n {
		if math.Abs(c.AtVec(j)) > tol {
			determined[j] = true
			continue
		}
		i, basic := rowOf[j]
		if !basic {
			determined[j] = true
			continue
		}
		if !isUnitColumn(a.ColView(j), i, tol) {
			x[j] = math.NaN()
			continue
		}
		x[j] = b.AtVec(i)
		determined[j] = true
	}
	return x, determined
}

func isUnitColumn(col mat.Vector, row int, tol float64) bool {
	for i := range col.Len() {
		want := 0.0
		if i == row {
			want = 1
		}
		if math.Abs(col.AtVec(i)-want) > tol {
			return false
		}
	}
	return true
}

// ray returns the edge direction obtained by raising column q while the
// basic variables follow it.
func (s *Solver) ray(q int) []float64 {
	n := s.lp.NumVars()
	a := s.lp.Constraints()

	d := make([]float64, n)
	if q < n {
		d[q] = 1
	}
	for i, j := range s.basis {
		if j < n {
			d[j] = -a.At(i, q)
		}
	}
	return d
}
