package forest_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zgsxwsdxg/vigra/forest"
)

func TestArgMaxAcc_Accumulate(t *testing.T) {
	var acc forest.ArgMaxAcc

	got := acc.Accumulate([]int{0, 0, 1, 2, 2, 2})
	require.Len(t, got, 3)
	require.InDelta(t, 2.0/6.0, got[0], 1e-9)
	require.InDelta(t, 1.0/6.0, got[1], 1e-9)
	require.InDelta(t, 3.0/6.0, got[2], 1e-9)
}

func TestArgMaxAcc_ScratchBufferReusedAcrossCalls(t *testing.T) {
	var acc forest.ArgMaxAcc

	first := acc.Accumulate([]int{0, 1, 1, 1})
	require.Len(t, first, 2)

	// A subsequent call with a smaller label range must not leak state
	// from the previous, larger call.
	second := acc.Accumulate([]int{0, 0})
	require.Len(t, second, 1)
	require.InDelta(t, 1.0, second[0], 1e-9)
}

func TestArgMaxAcc_EmptyLabels(t *testing.T) {
	var acc forest.ArgMaxAcc
	got := acc.Accumulate(nil)
	require.Len(t, got, 0)
}

func TestArgMaxVectorAcc_AveragesNormalizedVectors(t *testing.T) {
	var acc forest.ArgMaxVectorAcc

	// Tree 1: [2, 2] normalizes to [0.5, 0.5]
	// Tree 2: [0, 4] normalizes to [0, 1]
	got := acc.Accumulate([][]float64{{2, 2}, {0, 4}})
	require.Len(t, got, 2)
	require.InDelta(t, 0.25, got[0], 1e-9)
	require.InDelta(t, 0.75, got[1], 1e-9)
}

func TestArgMaxVectorAcc_ShorterVectorsPadWithZero(t *testing.T) {
	var acc forest.ArgMaxVectorAcc

	got := acc.Accumulate([][]float64{{1, 1, 2}, {1, 1}})
	require.Len(t, got, 3)
	// Second vector contributes zero to index 2.
	require.Greater(t, got[2], 0.0)
	require.Less(t, got[2], 0.5)
}

func TestArgMaxVectorAcc_EmptyInput(t *testing.T) {
	var acc forest.ArgMaxVectorAcc
	got := acc.Accumulate(nil)
	require.Len(t, got, 0)
}

func TestArgMaxVectorAcc_ZeroSumVectorSkipped(t *testing.T) {
	var acc forest.ArgMaxVectorAcc
	got := acc.Accumulate([][]float64{{0, 0}, {2, 2}})
	require.InDelta(t, 0.25, got[0], 1e-9)
	require.InDelta(t, 0.25, got[1], 1e-9)
}
