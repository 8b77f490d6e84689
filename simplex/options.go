package simplex

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	defaultMaxIterations = 10000
	defaultTolerance     = 1e-9
)

// PivotRule selects the entering and leaving variable rules of the primal loop.
type PivotRule int

const (
	// Dantzig enters the column with the largest reduced cost and breaks
	// ratio ties by the lowest row.
	Dantzig PivotRule = iota

	// Bland enters the lowest improving column and breaks ratio ties by the
	// lowest basic variable index. It never cycles.
	Bland
)

func (r PivotRule) String() string {
	switch r {
	case Dantzig:
		return "dantzig"
	case Bland:
		return "bland"
	}
	return "unknown"
}

// ParsePivotRule maps a rule name (case insensitive) to a PivotRule.
func ParsePivotRule(name string) (PivotRule, error) {
	switch strings.ToLower(name) {
	case "dantzig":
		return Dantzig, nil
	case "bland":
		return Bland, nil
	}
	return Dantzig, errors.Errorf("simplex: unknown pivot rule %q", name)
}

type config struct {
	maxIterations     int
	tolerance         float64
	rule              PivotRule
	negativeObjective bool
}

func defaultConfig() config {
	return config{
		maxIterations: defaultMaxIterations,
		tolerance:     defaultTolerance,
		rule:          Dantzig,
	}
}

// Option configures a Solver.
type Option func(*config)

// WithMaxIterations caps the total number of pivots across both passes.
// Values below 1 keep the default.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// WithTolerance sets the threshold under which a value counts as zero.
// Negative values keep the default.
func WithTolerance(eps float64) Option {
	return func(c *config) {
		if eps >= 0 {
			c.tolerance = eps
		}
	}
}

// WithPivotRule selects the primal pivoting rule.
func WithPivotRule(r PivotRule) Option {
	return func(c *config) {
		c.rule = r
	}
}

// WithNegativeObjectiveCheck reclassifies an optimal result with a negative
// objective value as infeasible. This is an empirical signal, not a proof;
// the certificate of such a result is still the dual vector.
func WithNegativeObjectiveCheck(on bool) Option {
	return func(c *config) {
		c.negativeObjective = on
	}
}
