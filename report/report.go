// Package report renders solver results for people.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"q.log/lpsimplex/model"
	"q.log/lpsimplex/simplex"
)

// Options tune Write.
type Options struct {
	// Minimize flips the objective back for programs that were read as a
	// minimization and solved as max -c'x.
	Minimize bool

	// Precision is the number of decimals printed, 3 when zero.
	Precision int
}

// Write prints the classification, objective, certificate and solution of res.
func Write(w io.Writer, res *simplex.Result, opts Options) error {
	prec := opts.Precision
	if prec <= 0 {
		prec = 3
	}
	num := func(v float64) string {
		return fmt.Sprintf("%.*f", prec, v+0)
	}
	vec := func(vs []float64) string {
		parts := make([]string, len(vs))
		for i, v := range vs {
			parts[i] = num(v)
		}
		return strings.Join(parts, " ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "status: %v\n", res.Status)

	switch res.Status {
	case simplex.Optimal:
		obj := res.Objective
		if opts.Minimize {
			obj = 0 - obj
		}
		fmt.Fprintf(&sb, "objective: %s\n", num(obj))
		fmt.Fprintf(&sb, "solution: %s\n", solution(res, num))
		fmt.Fprintf(&sb, "certificate: %s\n", vec(res.Certificate))
	case simplex.Unbounded:
		fmt.Fprintf(&sb, "solution: %s\n", solution(res, num))
		fmt.Fprintf(&sb, "ray: %s\n", vec(res.Ray))
		fmt.Fprintf(&sb, "certificate: %s\n", vec(res.Certificate))
	case simplex.Infeasible:
		fmt.Fprintf(&sb, "certificate: %s\n", vec(res.Certificate))
	}
	fmt.Fprintf(&sb, "basis: %v\n", res.Basis)
	fmt.Fprintf(&sb, "pivots: %d\n", res.Iterations)

	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "report")
}

func solution(res *simplex.Result, num func(float64) string) string {
	parts := make([]string, len(res.Solution))
	for j, v := range res.Solution {
		if !res.Determined[j] || math.IsNaN(v) {
			parts[j] = "not determined"
			continue
		}
		parts[j] = num(v)
	}
	return strings.Join(parts, " ")
}

// Tableau prints the current cost row, constraint matrix and rhs of lp.
func Tableau(w io.Writer, lp *model.LinearProgram) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "c = %v\n", mat.Formatted(lp.Cost().T(), mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(&sb, "A = %v\n", mat.Formatted(lp.Constraints(), mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(&sb, "b = %v\n", mat.Formatted(lp.RHS().T(), mat.Prefix("    "), mat.Squeeze()))
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "report")
}
