package simplex

import (
	"gonum.org/v1/gonum/floats"
	"k8s.io/klog/v2"
)

// pivot makes column q basic in row p by Gauss-Jordan elimination over the
// constraint matrix, the rhs and the basis inverse. The cost row, the
// certificate and the objective receive the same elimination, scaled by the
// reduced cost of q before the update.
func (s *Solver) pivot(p, q int) {
	a, b, c := s.lp.Constraints(), s.lp.RHS(), s.lp.Cost()
	klog.V(2).Infof("base change %d -> %d (row %d, pivot %g)", s.basis[p], q, p, a.At(p, q))

	cq := c.AtVec(q)
	piv := a.At(p, q)

	prow := a.RawRowView(p)
	floats.Scale(1/piv, prow)
	prow[q] = 1
	b.SetVec(p, b.AtVec(p)/piv)
	binvP := s.basisInv.RawRowView(p)
	floats.Scale(1/piv, binvP)

	for i := range s.lp.NumConstraints() {
		if i == p {
			continue
		}
		f := a.At(i, q)
		if f == 0 {
			continue
		}
		row := a.RawRowView(i)
		floats.AddScaled(row, -f, prow)
		row[q] = 0
		b.SetVec(i, b.AtVec(i)-f*b.AtVec(p))
		floats.AddScaled(s.basisInv.RawRowView(i), -f, binvP)
	}

	cost := c.RawVector().Data
	floats.AddScaled(cost, -cq, prow)
	cost[q] = 0
	floats.AddScaled(s.cert.RawVector().Data, -cq, binvP)
	s.objective -= b.AtVec(p) * cq

	s.basis[p] = q
	s.iterations++
}
