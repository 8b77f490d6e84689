// Package mps reads free MPS files through GLPK and converts them to the
// max c'x s.t. Ax <= b, x >= 0 form solved by package simplex.
//
// Only <= rows, free rows and columns bounded as 0 <= x <= u are accepted.
// A finite upper bound u becomes the extra row x <= u.
package mps

import (
	"math"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"q.log/lpsimplex/model"
)

// ErrUnsupported is returned for rows or bounds that have no <= form.
var ErrUnsupported = errors.New("mps: unsupported constraint")

// Instance is a program read from an MPS file.
type Instance struct {
	LP *model.LinearProgram

	// Minimize is set when the file minimizes c'x. LP then maximizes -c'x
	// and the optimal value must be negated to read the file's objective.
	Minimize bool
}

// Reader reads a mps file to construct a model
type Reader struct {
	filename string
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
	}
}

// ConstructModelFromFile returns the instance in natural form.
func (r *Reader) ConstructModelFromFile() (*Instance, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, r.filename); err != nil {
		return nil, errors.Wrapf(err, "mps: reading %s", r.filename)
	}

	numCols := lp.NumCols()
	minimize := lp.ObjDir() == glpk.MIN

	//populate obj function
	cost := make([]float64, numCols)
	for c := range numCols {
		cost[c] = lp.ObjCoef(c + 1)
		if minimize {
			cost[c] = 0 - cost[c]
		}
	}

	//populate constraints
	var rows [][]float64
	for i := 1; i <= lp.NumRows(); i++ {
		lower, upper := lp.RowLB(i), lp.RowUB(i)
		if lower == -math.MaxFloat64 && upper == math.MaxFloat64 {
			continue
		}
		if lower != -math.MaxFloat64 {
			return nil, errors.Wrapf(ErrUnsupported, "row %d has a lower bound", i)
		}

		row := make([]float64, numCols+1)
		idxs, vals := lp.MatRow(i)
		for k, v := range idxs {
			if v == 0 {
				continue
			}
			row[v-1] = vals[k]
		}
		row[numCols] = upper
		rows = append(rows, row)
	}

	//column bounds
	for c := range numCols {
		lower, upper := lp.ColLB(c+1), lp.ColUB(c+1)
		if lower != 0 {
			return nil, errors.Wrapf(ErrUnsupported, "column %d has lower bound %g", c+1, lower)
		}
		if upper == math.MaxFloat64 {
			continue
		}
		row := make([]float64, numCols+1)
		row[c] = 1
		row[numCols] = upper
		rows = append(rows, row)
	}

	m, err := model.FromRows(cost, rows)
	if err != nil {
		return nil, errors.Wrapf(err, "mps: %s", r.filename)
	}
	klog.V(1).Infof("read %s: %d constraints, %d variables, minimize=%v", r.filename, m.NumConstraints(), m.NumVars(), minimize)

	return &Instance{LP: m, Minimize: minimize}, nil
}
