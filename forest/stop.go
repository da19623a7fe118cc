package forest

import "math"

const opNewNodeComplexityStop = "NewNodeComplexityStop"

// StopPredicate decides whether a tree node should stop splitting
// (spec.md §4.5). Implementations are pure functions of the node's
// labels and description; returning true halts splitting.
type StopPredicate interface {
	ShouldStop(labels []int, desc NodeDescription) bool
}

func nonZeroClasses(priors []float64) int {
	k := 0
	for _, p := range priors {
		if p > 0 {
			k++
		}
	}
	return k
}

func isPure(priors []float64) bool {
	return nonZeroClasses(priors) <= 1
}

// PurityStop halts a node as soon as it contains at most one class.
type PurityStop struct{}

func (PurityStop) ShouldStop(_ []int, desc NodeDescription) bool {
	return isPure(desc.Priors)
}

// DepthStop halts a node once it reaches MaxDepth, or once it is pure.
type DepthStop struct {
	MaxDepth int
}

func (d DepthStop) ShouldStop(_ []int, desc NodeDescription) bool {
	return desc.Depth >= d.MaxDepth || isPure(desc.Priors)
}

// MinCountStop halts a node whose total weighted size falls to or
// below MinN, or that is already pure.
type MinCountStop struct {
	MinN float64
}

func (m MinCountStop) ShouldStop(_ []int, desc NodeDescription) bool {
	if isPure(desc.Priors) {
		return true
	}
	var n float64
	for _, p := range desc.Priors {
		n += p
	}
	return n <= m.MinN
}

// NodeComplexityStop halts a node using an MDL-style log-prior on its
// class distribution (spec.md §4.5): the log-complexity
// sum(logGamma(p+1)) + logGamma(k+1) - logGamma(n+1) is most negative
// for large nodes whose samples are spread evenly over several classes,
// and the node halts once the complexity rises to meet log(tau).
type NodeComplexityStop struct {
	Tau float64
}

// NewNodeComplexityStop validates tau before returning a usable
// predicate. Returns ErrInvalidTau if tau is outside (0, 1).
func NewNodeComplexityStop(tau float64) (NodeComplexityStop, error) {
	if tau <= 0 || tau >= 1 {
		return NodeComplexityStop{}, errorf(opNewNodeComplexityStop, ErrInvalidTau)
	}
	return NodeComplexityStop{Tau: tau}, nil
}

func (s NodeComplexityStop) ShouldStop(_ []int, desc NodeDescription) bool {
	k := nonZeroClasses(desc.Priors)
	if k <= 1 {
		return true
	}

	var n float64
	var sumLogGammaPriors float64
	for _, p := range desc.Priors {
		n += p
		sumLogGammaPriors += logGamma(p + 1)
	}
	l := sumLogGammaPriors + logGamma(float64(k+1)) - logGamma(n+1)

	return l >= math.Log(s.Tau)
}

func logGamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
