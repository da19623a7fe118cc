package morph

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- spec.md §8 property 2: histogram invariant, checked after every
// column step of an actual sweep. ---

type testGrid struct {
	w, h int
	px   []uint8
}

func (g *testGrid) Width() int          { return g.w }
func (g *testGrid) Height() int         { return g.h }
func (g *testGrid) Get(x, y int) uint8  { return g.px[y*g.w+x] }

func newTestGrid(w, h int, rng *rand.Rand) *testGrid {
	px := make([]uint8, w*h)
	for i := range px {
		px[i] = uint8(rng.Intn(256))
	}
	return &testGrid{w: w, h: h, px: px}
}

func checkHistogramInvariant(t *testing.T, h *histogram) {
	t.Helper()
	sum := 0
	for _, c := range h.counts {
		sum += c
	}
	assert.Equal(t, h.winsize, sum, "sum(counts) must equal winsize")

	left := 0
	for i := 0; i < h.rankpos; i++ {
		left += h.counts[i]
	}
	assert.Equal(t, h.leftsum, left, "leftsum must equal sum(counts[:rankpos])")
}

func TestHistogram_InvariantHoldsAcrossSweep(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	src := newTestGrid(40, 30, rng)
	r := 5

	ht, err := BuildDiscGeometry(r)
	if err != nil {
		t.Fatal(err)
	}

	for _, rank := range []float64{0, 0.25, 0.5, 0.75, 1} {
		var h histogram
		for y := 0; y < src.h; y++ {
			topLimit := r
			if y < topLimit {
				topLimit = y
			}
			botLimit := r
			if src.h-1-y < botLimit {
				botLimit = src.h - 1 - y
			}

			h.seedRow(src, y, src.w, ht, topLimit, botLimit)
			h.seekRank(rank)
			checkHistogramInvariant(t, &h)

			for x := 1; x < src.w; x++ {
				h.columnStep(src, x, y, src.w, ht, topLimit, botLimit)
				h.seekRank(rank)
				checkHistogramInvariant(t, &h)
			}
		}
	}
}
