package simplex

import "errors"

var (
	// ErrIterationLimit is returned by Run when the pivot cap is reached
	// before the tableau settles, typically on a cycling degenerate problem.
	ErrIterationLimit = errors.New("simplex: iteration limit reached")

	// ErrCertificate is returned by the Check* helpers when a result does
	// not satisfy the property it claims.
	ErrCertificate = errors.New("simplex: certificate check failed")
)
