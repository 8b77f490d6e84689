package main

import (
	goflag "flag"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"
	"q.log/lpsimplex/instance"
	"q.log/lpsimplex/instance/mps"
	"q.log/lpsimplex/model"
	"q.log/lpsimplex/report"
	"q.log/lpsimplex/simplex"
)

type solveOptions struct {
	format            string
	maxIterations     int
	tolerance         float64
	rule              string
	negativeObjective bool
	showTableau       bool
	precision         int
	checkTolerance    float64
}

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "lpsimplex",
		Short:        "Solve max c'x s.t. Ax <= b, x >= 0 with the tableau simplex method",
		SilenceUsage: true,
	}
	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	root.AddCommand(newSolveCommand())
	return root
}

func newSolveCommand() *cobra.Command {
	o := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve the program in FILE and print its classification, objective, certificate and solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.format, "format", "text", "input format: text or mps")
	flags.IntVar(&o.maxIterations, "max-iterations", 10000, "pivot cap before giving up")
	flags.Float64Var(&o.tolerance, "tolerance", 1e-9, "values within this distance of zero count as zero")
	flags.StringVar(&o.rule, "rule", "dantzig", "pivot rule: dantzig or bland")
	flags.BoolVar(&o.negativeObjective, "negative-objective-infeasible", false, "report optimal results with a negative objective as infeasible")
	flags.BoolVar(&o.showTableau, "show-tableau", false, "print the final tableau")
	flags.IntVar(&o.precision, "precision", 3, "decimals printed")
	flags.Float64Var(&o.checkTolerance, "check-tolerance", 1e-6, "slack allowed when re-checking certificates against the input")
	return cmd
}

func (o *solveOptions) run(cmd *cobra.Command, filename string) error {
	rule, err := simplex.ParsePivotRule(o.rule)
	if err != nil {
		return err
	}

	lp, minimize, err := o.read(filename)
	if err != nil {
		return err
	}
	lp.Standardize()
	orig := lp.Clone()

	s := simplex.NewSolver(lp,
		simplex.WithMaxIterations(o.maxIterations),
		simplex.WithTolerance(o.tolerance),
		simplex.WithPivotRule(rule),
		simplex.WithNegativeObjectiveCheck(o.negativeObjective),
	)
	res, runErr := s.Run()
	if res == nil {
		return runErr
	}

	out := cmd.OutOrStdout()
	if err := report.Write(out, res, report.Options{Minimize: minimize, Precision: o.precision}); err != nil {
		return err
	}
	if o.showTableau {
		if err := report.Tableau(out, lp); err != nil {
			return err
		}
	}
	if err := verify(res, orig, o.checkTolerance); err != nil {
		klog.Warningf("%v", err)
	}
	return runErr
}

func (o *solveOptions) read(filename string) (*model.LinearProgram, bool, error) {
	switch o.format {
	case "text":
		lp, err := instance.NewReader(filename).ConstructModelFromFile()
		return lp, false, err
	case "mps":
		inst, err := mps.NewReader(filename).ConstructModelFromFile()
		if err != nil {
			return nil, false, err
		}
		return inst.LP, inst.Minimize, nil
	}
	return nil, false, errors.Errorf("unknown format %q", o.format)
}

// verify re-checks the certificate of res against the untouched program.
// tol is separate from the solver tolerance: it bounds the error accumulated
// over all pivots, not a single comparison.
func verify(res *simplex.Result, orig *model.LinearProgram, tol float64) error {
	n, m := orig.NumVars(), orig.NumConstraints()
	a := orig.Constraints().Slice(0, m, 0, n).(*mat.Dense)
	rhs := orig.RHS().RawVector().Data

	var err error
	switch res.Status {
	case simplex.Optimal:
		if err = simplex.CheckDuality(res, rhs, tol); err == nil {
			err = simplex.CheckFeasibility(res, a, rhs, tol)
		}
	case simplex.Infeasible:
		err = simplex.CheckFarkas(res, a, rhs, tol)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	klog.V(1).Infof("%v certificate verified", res.Status)
	return nil
}
