package morph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zgsxwsdxg/vigra/morph"
)

// --- spec.md §8 property 1: disc geometry symmetry ---

func TestBuildDiscGeometry_Invariants(t *testing.T) {
	for r := 0; r <= 32; r++ {
		h, err := morph.BuildDiscGeometry(r)
		require.NoError(t, err)
		require.Len(t, h, r+1)
		assert.Equal(t, r, h[0], "h[0] must equal r")
		assert.GreaterOrEqual(t, h[r], 0, "h[r] must be >= 0")
		for k := 1; k <= r; k++ {
			assert.LessOrEqual(t, h[k], h[k-1], "h must be non-increasing at k=%d", k)
		}
	}
}
