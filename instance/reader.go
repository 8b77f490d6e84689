// Package instance reads linear programs in the plain text layout
//
//	<numConstraints> <numVars>
//	c_1 ... c_n
//	a_11 ... a_1n b_1
//	...
//	a_m1 ... a_mn b_m
//
// into a model.LinearProgram of the form max c'x s.t. Ax <= b, x >= 0.
package instance

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"q.log/lpsimplex/model"
)

// ErrSyntax is returned for input that does not follow the text layout.
var ErrSyntax = errors.New("instance: syntax error")

// Reader reads a text instance file to construct a model
type Reader struct {
	filename string
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
	}
}

// ConstructModelFromFile returns the *LinearProgram in natural form
func (r *Reader) ConstructModelFromFile() (*model.LinearProgram, error) {
	f, err := os.Open(r.filename)
	if err != nil {
		return nil, errors.Wrap(err, "instance")
	}
	defer f.Close()

	lp, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", r.filename)
	}
	klog.V(1).Infof("read %s: %d constraints, %d variables", r.filename, lp.NumConstraints(), lp.NumVars())
	return lp, nil
}

// Parse reads one instance from in. Blank lines are skipped.
func Parse(in io.Reader) (*model.LinearProgram, error) {
	sc := bufio.NewScanner(in)
	line := 0
	next := func() ([]float64, error) {
		for sc.Scan() {
			line++
			fields := strings.Fields(sc.Text())
			if len(fields) == 0 {
				continue
			}
			vals := make([]float64, len(fields))
			for i, f := range fields {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, errors.Wrapf(ErrSyntax, "line %d: %q is not a number", line, f)
				}
				vals[i] = v
			}
			return vals, nil
		}
		if err := sc.Err(); err != nil {
			return nil, errors.Wrap(err, "instance")
		}
		return nil, errors.Wrapf(ErrSyntax, "line %d: unexpected end of input", line+1)
	}

	header, err := next()
	if err != nil {
		return nil, err
	}
	if len(header) != 2 {
		return nil, errors.Wrapf(ErrSyntax, "line %d: header needs 2 values, got %d", line, len(header))
	}
	m, n, err := dims(header)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", line)
	}

	cost, err := next()
	if err != nil {
		return nil, err
	}
	if len(cost) != n {
		return nil, errors.Wrapf(ErrSyntax, "line %d: cost vector needs %d values, got %d", line, n, len(cost))
	}

	var rows [][]float64
	for len(rows) < m {
		row, err := next()
		if err != nil {
			return nil, err
		}
		if len(row) != n+1 {
			return nil, errors.Wrapf(ErrSyntax, "line %d: constraint needs %d values, got %d", line, n+1, len(row))
		}
		rows = append(rows, row)
	}

	return model.FromRows(cost, rows)
}

func dims(header []float64) (int, int, error) {
	m, n := int(header[0]), int(header[1])
	if float64(m) != header[0] || float64(n) != header[1] || m < 1 || n < 1 {
		return 0, 0, errors.Wrapf(ErrSyntax, "invalid dimensions %v x %v", header[0], header[1])
	}
	return m, n, nil
}
