package morph

const (
	opRankOrderWithBorder = "RankOrderWithBorder"
	histogramBuckets      = 256
)

// histogram is the sliding window distribution maintained while a disc
// sweeps a row. It owns a fixed-size count array plus the three
// running scalars from spec.md §3: winsize, rankpos, leftsum.
//
// Invariants 1 and 2 hold after every add/remove/seekRank call; 3 and 4
// hold after seekRank:
//  1. sum(counts) == winsize.
//  2. leftsum == sum(counts[:rankpos]).
//  3. if winsize > 0 and rank == 0, rankpos is the least i with counts[i] > 0.
//  4. if winsize > 0 and rank > 0, (leftsum+counts[rankpos])/winsize >= rank
//     and leftsum/winsize < rank.
type histogram struct {
	counts  [histogramBuckets]int
	winsize int
	rankpos int
	leftsum int
}

func (h *histogram) reset() {
	for i := range h.counts {
		h.counts[i] = 0
	}
	h.winsize = 0
	h.rankpos = 0
	h.leftsum = 0
}

// add incorporates one more pixel of value v into the window.
func (h *histogram) add(v uint8) {
	h.counts[v]++
	h.winsize++
	if int(v) < h.rankpos {
		h.leftsum++
	}
}

// remove excludes one pixel of value v from the window.
func (h *histogram) remove(v uint8) {
	h.counts[v]--
	h.winsize--
	if int(v) < h.rankpos {
		h.leftsum--
	}
}

// seekRank restores invariants 3/4 for the requested rank fraction,
// walking rankpos toward its new position one bucket at a time. Callers
// must ensure winsize > 0.
func (h *histogram) seekRank(rank float64) {
	if rank <= 0 {
		h.seekMin()
		return
	}
	h.seekRankPositive(rank)
}

// seekMin implements the rank == 0 query of spec.md §4.2: the smallest
// value currently present in the window.
func (h *histogram) seekMin() {
	if h.leftsum == 0 {
		i := h.rankpos
		for h.counts[i] == 0 {
			i++
		}
		h.rankpos = i
		return
	}

	i := h.rankpos
	for h.leftsum > 0 {
		i--
		h.leftsum -= h.counts[i]
	}
	h.rankpos = i
}

// seekRankPositive implements the rank > 0 query of spec.md §4.2: walk
// in whichever direction the current leftsum/winsize fraction demands,
// one histogram bucket per step, until both halves of invariant 4 hold.
func (h *histogram) seekRankPositive(rank float64) {
	n := float64(h.winsize)
	if float64(h.leftsum)/n < rank {
		for float64(h.leftsum+h.counts[h.rankpos])/n < rank {
			h.leftsum += h.counts[h.rankpos]
			h.rankpos++
		}
		return
	}
	for float64(h.leftsum)/n >= rank {
		h.rankpos--
		h.leftsum -= h.counts[h.rankpos]
	}
}

// seedRow rebuilds h from scratch for the disc centred at (0, y),
// walking every offset of the disc geometry clipped to the image —
// the seed step of spec.md §4.2's scan order.
func (h *histogram) seedRow(src Read2D, y, width int, ht []int, topLimit, botLimit int) {
	h.reset()
	h.addRowSpan(src, 0, y, ht[0], width)
	for k := 1; k <= topLimit; k++ {
		h.addRowSpan(src, 0, y-k, ht[k], width)
	}
	for k := 1; k <= botLimit; k++ {
		h.addRowSpan(src, 0, y+k, ht[k], width)
	}
}

// addRowSpan adds every pixel of row `row` in [centerX-halfWidth,
// centerX+halfWidth], clipped to [0, width).
func (h *histogram) addRowSpan(src Read2D, centerX, row, halfWidth, width int) {
	lo := centerX - halfWidth
	if lo < 0 {
		lo = 0
	}
	hi := centerX + halfWidth
	if hi > width-1 {
		hi = width - 1
	}
	for x := lo; x <= hi; x++ {
		h.add(src.Get(x, row))
	}
}

// columnStep performs the incremental left-egress / right-ingress edit
// described in spec.md §4.2 when the disc centre moves from x-1 to x.
func (h *histogram) columnStep(src Read2D, x, y, width int, ht []int, topLimit, botLimit int) {
	// Left egress: the pixel at (x-1-ht[k], y±k) leaves the window.
	// A row k contributes iff ht[k]+1 <= x.
	if ht[0]+1 <= x {
		h.remove(src.Get(x-1-ht[0], y))
	}
	for k := 1; k <= topLimit; k++ {
		if ht[k]+1 <= x {
			h.remove(src.Get(x-1-ht[k], y-k))
		}
	}
	for k := 1; k <= botLimit; k++ {
		if ht[k]+1 <= x {
			h.remove(src.Get(x-1-ht[k], y+k))
		}
	}

	// Right ingress: the pixel at (x+ht[k], y±k) enters the window.
	// A row k contributes iff ht[k] <= width-1-x.
	limit := width - 1 - x
	if ht[0] <= limit {
		h.add(src.Get(x+ht[0], y))
	}
	for k := 1; k <= topLimit; k++ {
		if ht[k] <= limit {
			h.add(src.Get(x+ht[k], y-k))
		}
	}
	for k := 1; k <= botLimit; k++ {
		if ht[k] <= limit {
			h.add(src.Get(x+ht[k], y+k))
		}
	}
}

// RankOrder computes the flat rank-order filter of radius r and rank
// fraction rank (0 <= rank <= 1) over src, writing into dst. rank == 0
// is erosion, rank == 1 is dilation, rank == 0.5 is median.
//
// Returns ErrInvalidRadius if r < 0, ErrInvalidRank if rank is outside
// [0, 1], ErrDimensionMismatch if src and dst disagree in extent.
func RankOrder(src Read2D, dst Write2D, r int, rank float64) error {
	return RankOrderWithBorder(src, dst, r, rank, BorderClip)
}

// RankOrderWithBorder is RankOrder generalized with an explicit
// BorderTreatment (see SPEC_FULL.md §1.3). BorderClip reproduces
// spec.md §4.2 exactly; BorderRepeat keeps winsize constant across the
// whole sweep by clamping out-of-bounds samples to the nearest edge.
func RankOrderWithBorder(src Read2D, dst Write2D, r int, rank float64, border BorderTreatment) error {
	if r < 0 {
		return errorf(opRankOrderWithBorder, ErrInvalidRadius)
	}
	if rank < 0 || rank > 1 {
		return errorf(opRankOrderWithBorder, ErrInvalidRank)
	}
	if src.Width() != dst.Width() || src.Height() != dst.Height() {
		return errorf(opRankOrderWithBorder, ErrDimensionMismatch)
	}

	ht, err := BuildDiscGeometry(r)
	if err != nil {
		return errorf(opRankOrderWithBorder, err)
	}

	width, height := src.Width(), src.Height()
	if width == 0 || height == 0 {
		return nil
	}

	if border == BorderRepeat {
		return rankOrderRepeat(src, dst, ht, r, rank, width, height)
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

		h.seedRow(src, y, width, ht, topLimit, botLimit)
		h.seekRank(rank)
		dst.Set(0, y, uint8(h.rankpos))

		for x := 1; x < width; x++ {
			h.columnStep(src, x, y, width, ht, topLimit, botLimit)
			h.seekRank(rank)
			dst.Set(x, y, uint8(h.rankpos))
		}
	}

	return nil
}

// rankOrderRepeat implements BorderRepeat: every disc offset samples a
// real pixel (clamped to the image border) so winsize == (2R+1)-ish
// disc area for every output pixel, never shrinking at the edges. This
// sacrifices the incremental sweep's O(radius) amortised cost (every
// pixel is recomputed from its clamped footprint) in exchange for the
// simpler, constant-window semantics.
func rankOrderRepeat(src Read2D, dst Write2D, ht []int, r int, rank float64, width, height int) error {
	var h histogram
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			h.reset()
			h.addRowSpanClamped(src, x, y, ht[0], width, height)
			for k := 1; k <= r; k++ {
				h.addRowSpanClamped(src, x, y-k, ht[k], width, height)
				h.addRowSpanClamped(src, x, y+k, ht[k], width, height)
			}
			h.seekRank(rank)
			dst.Set(x, y, uint8(h.rankpos))
		}
	}
	return nil
}

// addRowSpanClamped is addRowSpan's BorderRepeat counterpart: both the
// row and the column are clamped to the image instead of being dropped.
func (h *histogram) addRowSpanClamped(src Read2D, centerX, row, halfWidth, width, height int) {
	row = clampCoord(row, 0, height-1)
	for dx := -halfWidth; dx <= halfWidth; dx++ {
		x := clampCoord(centerX+dx, 0, width-1)
		h.add(src.Get(x, row))
	}
}
