package forest

// Documented defaults (spec.md §4.6) — single source of truth for the
// zero-value behaviour of a fresh Options.
const (
	// DefaultTrees is the default ensemble size.
	DefaultTrees = 256
	// DefaultMaxDepth of 0 means unbounded.
	DefaultMaxDepth = 0
	// DefaultTau of -1 means node-complexity stopping is disabled.
	DefaultTau = -1
	// DefaultMinInstances is the minimum node size before a leaf.
	DefaultMinInstances = 1
)

const (
	panicTreesInvalid        = "forest: WithTrees: n must be > 0"
	panicFixedSamplingInvalid = "forest: WithFixedSampling: n must be > 0"
	panicMaxDepthInvalid      = "forest: WithMaxDepth: n must be >= 0"
	panicTauInvalid           = "forest: WithNodeComplexity: tau must be in (0, 1)"
	panicMinInstancesInvalid  = "forest: WithMinInstances: n must be >= 1"
)

// SamplingPolicy is the tagged union spec.md §9 asks for: setting a
// resample count must disable bootstrap sampling and vice versa, so
// the two are modeled as one field instead of two independent ones —
// the illegal combination becomes unrepresentable rather than merely
// validated.
type SamplingPolicy interface {
	isSamplingPolicy()
}

// BootstrapSampling draws a bootstrap resample (with replacement) of
// the same size as the training set for each tree. It is the default.
type BootstrapSampling struct{}

func (BootstrapSampling) isSamplingPolicy() {}

// FixedSampling draws a fixed-size resample (without replacement) of N
// samples for each tree.
type FixedSampling struct {
	N int
}

func (FixedSampling) isSamplingPolicy() {}

// Option mutates an Options under construction. Constructors validate
// eagerly and panic on nonsensical values — options are programmer
// configuration, not external input (matrix.Option / builder.BuilderOption
// follow the same contract).
type Option func(*Options)

// Options is the immutable, validated configuration for a forest
// trainer (spec.md §4.6). Build one with NewOptions.
type Options struct {
	trees         int
	featureBudget FeatureBudget
	sampling      SamplingPolicy
	metric        Metric
	maxDepth      int
	tau           float64
	minInstances  int
	set           map[string]bool
}

// NewOptions applies opts over the documented defaults and returns the
// resulting immutable Options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		trees:         DefaultTrees,
		featureBudget: FeatureBudget{Policy: FeaturesSqrt},
		sampling:      BootstrapSampling{},
		metric:        Gini,
		maxDepth:      DefaultMaxDepth,
		tau:           DefaultTau,
		minInstances:  DefaultMinInstances,
		set:           make(map[string]bool),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithTrees sets the ensemble size. Panics if n <= 0.
func WithTrees(n int) Option {
	if n <= 0 {
		panic(panicTreesInvalid)
	}
	return func(o *Options) {
		o.trees = n
		o.set["Trees"] = true
	}
}

// WithFeatureBudget sets the per-node feature sampling policy. Panics
// with an error wrapping ErrInvalidOption if b.Policy is unrecognised.
func WithFeatureBudget(b FeatureBudget) Option {
	if b.Policy < FeaturesSqrt || b.Policy > FeaturesConst {
		panic(errorf("WithFeatureBudget", ErrInvalidOption))
	}
	return func(o *Options) {
		o.featureBudget = b
		o.set["FeatureBudget"] = true
	}
}

// WithBootstrapSampling selects bootstrap resampling (the default).
func WithBootstrapSampling() Option {
	return func(o *Options) {
		o.sampling = BootstrapSampling{}
		o.set["Sampling"] = true
	}
}

// WithFixedSampling selects a fixed-size resample of n, disabling
// bootstrap sampling. Panics if n <= 0.
func WithFixedSampling(n int) Option {
	if n <= 0 {
		panic(panicFixedSamplingInvalid)
	}
	return func(o *Options) {
		o.sampling = FixedSampling{N: n}
		o.set["Sampling"] = true
	}
}

// WithMetric sets the split-quality metric. Panics with an error
// wrapping ErrInvalidOption if m is unrecognised.
func WithMetric(m Metric) Option {
	if m < Gini || m > KSD {
		panic(errorf("WithMetric", ErrInvalidOption))
	}
	return func(o *Options) {
		o.metric = m
		o.set["Metric"] = true
	}
}

// WithMaxDepth sets the maximum tree depth; 0 means unbounded. Panics
// if n < 0.
func WithMaxDepth(n int) Option {
	if n < 0 {
		panic(panicMaxDepthInvalid)
	}
	return func(o *Options) {
		o.maxDepth = n
		o.set["MaxDepth"] = true
	}
}

// WithNodeComplexity enables the MDL-style node-complexity stop with
// the given tau. Panics if tau is outside (0, 1).
func WithNodeComplexity(tau float64) Option {
	if tau <= 0 || tau >= 1 {
		panic(panicTauInvalid)
	}
	return func(o *Options) {
		o.tau = tau
		o.set["NodeComplexity"] = true
	}
}

// WithMinInstances sets the minimum node size before it is forced to a
// leaf. Panics if n < 1.
func WithMinInstances(n int) Option {
	if n < 1 {
		panic(panicMinInstancesInvalid)
	}
	return func(o *Options) {
		o.minInstances = n
		o.set["MinInstances"] = true
	}
}

// Trees returns the configured ensemble size.
func (o *Options) Trees() int { return o.trees }

// FeatureBudget returns the configured per-node feature policy.
func (o *Options) FeatureBudget() FeatureBudget { return o.featureBudget }

// Sampling returns the configured resample policy.
func (o *Options) Sampling() SamplingPolicy { return o.sampling }

// Metric returns the configured split-quality metric.
func (o *Options) Metric() Metric { return o.metric }

// MaxDepth returns the configured maximum depth (0 = unbounded).
func (o *Options) MaxDepth() int { return o.maxDepth }

// Tau returns the configured node-complexity tau, or DefaultTau (-1)
// if node-complexity stopping was never enabled.
func (o *Options) Tau() float64 { return o.tau }

// MinInstances returns the configured minimum node size.
func (o *Options) MinInstances() int { return o.minInstances }

// IsSet reports whether field was touched by an explicit With... call,
// as opposed to carrying its zero-value default (SPEC_FULL.md §2.3 —
// the bit an ensemble serializer needs to round-trip "explicit vs
// default" without us owning the (de)serializer itself). field is one
// of "Trees", "FeatureBudget", "Sampling", "Metric", "MaxDepth",
// "NodeComplexity", "MinInstances".
func (o *Options) IsSet(field string) bool {
	return o.set[field]
}
