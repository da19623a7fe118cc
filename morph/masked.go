package morph

const opRankOrderMasked = "RankOrderMasked"

// RankOrderMasked is RankOrder gated by a boolean mask (spec.md §4.3):
// only pixels whose mask value is true contribute to the window. When
// a pixel's window is empty (winsize == 0), the destination is left
// untouched — the caller owns initialisation — and rankpos/leftsum
// reset to 0 so the next non-empty window restarts its search from the
// left of the histogram, exactly as a freshly seeded row would.
//
// Returns ErrInvalidRadius, ErrInvalidRank, or ErrDimensionMismatch
// under the same conditions as RankOrder.
func RankOrderMasked(src Read2D, mask MaskRead2D, dst Write2D, r int, rank float64) error {
	if r < 0 {
		return errorf(opRankOrderMasked, ErrInvalidRadius)
	}
	if rank < 0 || rank > 1 {
		return errorf(opRankOrderMasked, ErrInvalidRank)
	}
	if src.Width() != dst.Width() || src.Height() != dst.Height() ||
		src.Width() != mask.Width() || src.Height() != mask.Height() {
		return errorf(opRankOrderMasked, ErrDimensionMismatch)
	}

	ht, err := BuildDiscGeometry(r)
	if err != nil {
		return errorf(opRankOrderMasked, err)
	}

	width, height := src.Width(), src.Height()
	if width == 0 || height == 0 {
		return nil
	}

	var h histogram
	for y := 0; y < height; y++ {
		topLimit := r
		if y < topLimit {
			topLimit = y
		}
		botLimit := r
		if height-1-y < botLimit {
			botLimit = height - 1 - y
		}

		h.seedRowMasked(src, mask, y, width, ht, topLimit, botLimit)
		h.writeMasked(dst, 0, y, rank)

		for x := 1; x < width; x++ {
			h.columnStepMasked(src, mask, x, y, width, ht, topLimit, botLimit)
			h.writeMasked(dst, x, y, rank)
		}
	}

	return nil
}

// writeMasked seeks the current rank and emits it, unless the window is
// empty — in which case the destination is untouched and the search
// state resets for the next non-empty window.
func (h *histogram) writeMasked(dst Write2D, x, y int, rank float64) {
	if h.winsize == 0 {
		h.rankpos = 0
		h.leftsum = 0
		return
	}
	h.seekRank(rank)
	dst.Set(x, y, uint8(h.rankpos))
}

func (h *histogram) seedRowMasked(src Read2D, mask MaskRead2D, y, width int, ht []int, topLimit, botLimit int) {
	h.reset()
	h.addRowSpanMasked(src, mask, 0, y, ht[0], width)
	for k := 1; k <= topLimit; k++ {
		h.addRowSpanMasked(src, mask, 0, y-k, ht[k], width)
	}
	for k := 1; k <= botLimit; k++ {
		h.addRowSpanMasked(src, mask, 0, y+k, ht[k], width)
	}
}

func (h *histogram) addRowSpanMasked(src Read2D, mask MaskRead2D, centerX, row, halfWidth, width int) {
	lo := centerX - halfWidth
	if lo < 0 {
		lo = 0
	}
	hi := centerX + halfWidth
	if hi > width-1 {
		hi = width - 1
	}
	for x := lo; x <= hi; x++ {
		if mask.Get(x, row) {
			h.add(src.Get(x, row))
		}
	}
}

func (h *histogram) columnStepMasked(src Read2D, mask MaskRead2D, x, y, width int, ht []int, topLimit, botLimit int) {
	if ht[0]+1 <= x && mask.Get(x-1-ht[0], y) {
		h.remove(src.Get(x-1-ht[0], y))
	}
	for k := 1; k <= topLimit; k++ {
		if ht[k]+1 <= x && mask.Get(x-1-ht[k], y-k) {
			h.remove(src.Get(x-1-ht[k], y-k))
		}
	}
	for k := 1; k <= botLimit; k++ {
		if ht[k]+1 <= x && mask.Get(x-1-ht[k], y+k) {
			h.remove(src.Get(x-1-ht[k], y+k))
		}
	}

	limit := width - 1 - x
	if ht[0] <= limit && mask.Get(x+ht[0], y) {
		h.add(src.Get(x+ht[0], y))
	}
	for k := 1; k <= topLimit; k++ {
		if ht[k] <= limit && mask.Get(x+ht[k], y-k) {
			h.add(src.Get(x+ht[k], y-k))
		}
	}
	for k := 1; k <= botLimit; k++ {
		if ht[k] <= limit && mask.Get(x+ht[k], y+k) {
			h.add(src.Get(x+ht[k], y+k))
		}
	}
}
