package forest_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zgsxwsdxg/vigra/forest"
)

func TestPurityStop(t *testing.T) {
	require.True(t, forest.PurityStop{}.ShouldStop(nil, forest.NodeDescription{Priors: []float64{0, 4}}))
	require.False(t, forest.PurityStop{}.ShouldStop(nil, forest.NodeDescription{Priors: []float64{2, 4}}))
}

func TestDepthStop(t *testing.T) {
	d := forest.DepthStop{MaxDepth: 3}
	require.False(t, d.ShouldStop(nil, forest.NodeDescription{Depth: 2, Priors: []float64{1, 1}}))
	require.True(t, d.ShouldStop(nil, forest.NodeDescription{Depth: 3, Priors: []float64{1, 1}}))
	require.True(t, d.ShouldStop(nil, forest.NodeDescription{Depth: 0, Priors: []float64{0, 1}}))
}

func TestMinCountStop(t *testing.T) {
	m := forest.MinCountStop{MinN: 5}
	require.True(t, m.ShouldStop(nil, forest.NodeDescription{Priors: []float64{2, 2}}))
	require.False(t, m.ShouldStop(nil, forest.NodeDescription{Priors: []float64{3, 3}}))
	require.True(t, m.ShouldStop(nil, forest.NodeDescription{Priors: []float64{0, 1}}))
}

func TestNewNodeComplexityStop_InvalidTau(t *testing.T) {
	_, err := forest.NewNodeComplexityStop(0)
	require.ErrorIs(t, err, forest.ErrInvalidTau)

	_, err = forest.NewNodeComplexityStop(1)
	require.ErrorIs(t, err, forest.ErrInvalidTau)

	_, err = forest.NewNodeComplexityStop(-0.5)
	require.ErrorIs(t, err, forest.ErrInvalidTau)
}

func TestNodeComplexityStop_PureNodeAlwaysStops(t *testing.T) {
	s, err := forest.NewNodeComplexityStop(0.5)
	require.NoError(t, err)
	require.True(t, s.ShouldStop(nil, forest.NodeDescription{Priors: []float64{0, 7}}))
}

func TestNodeComplexityStop_LargeEvenNodeKeepsSplitting(t *testing.T) {
	s, err := forest.NewNodeComplexityStop(0.01)
	require.NoError(t, err)
	// A large, evenly balanced node has low complexity relative to a
	// strict tau: it should not be forced to stop.
	require.False(t, s.ShouldStop(nil, forest.NodeDescription{Priors: []float64{500, 500}}))
}

func TestNodeComplexityStop_SmallNodeStopsSooner(t *testing.T) {
	s, err := forest.NewNodeComplexityStop(0.5)
	require.NoError(t, err)
	require.True(t, s.ShouldStop(nil, forest.NodeDescription{Priors: []float64{1, 1}}))
}
