package forest

import (
	"errors"
	"fmt"
)

// Sentinel errors for forest operations. Compare with errors.Is.
var (
	// ErrInvalidTau indicates a NodeComplexity tau outside (0, 1).
	ErrInvalidTau = errors.New("forest: tau must be in (0, 1)")

	// ErrInvalidOption indicates an unknown policy tag (an unrecognised
	// FeaturesPolicy or Metric). FeatureBudget.Evaluate returns it; the
	// Options builder's WithFeatureBudget and WithMetric panic with it.
	ErrInvalidOption = errors.New("forest: unknown option tag")
)

func errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
