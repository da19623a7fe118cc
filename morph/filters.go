package morph

// Convenience rank fractions for the named filters (spec.md §4.2).
const (
	RankErosion  = 0.0
	RankMedian   = 0.5
	RankDilation = 1.0
)

// Erosion sets dst to the disc-R minimum filter of src (rank = 0).
func Erosion(src Read2D, dst Write2D, r int) error {
	return RankOrder(src, dst, r, RankErosion)
}

// Dilation sets dst to the disc-R maximum filter of src (rank = 1).
func Dilation(src Read2D, dst Write2D, r int) error {
	return RankOrder(src, dst, r, RankDilation)
}

// Median sets dst to the disc-R median filter of src (rank = 0.5).
func Median(src Read2D, dst Write2D, r int) error {
	return RankOrder(src, dst, r, RankMedian)
}

// ErosionMasked is Erosion restricted to mask-true pixels.
func ErosionMasked(src Read2D, mask MaskRead2D, dst Write2D, r int) error {
	return RankOrderMasked(src, mask, dst, r, RankErosion)
}

// DilationMasked is Dilation restricted to mask-true pixels.
func DilationMasked(src Read2D, mask MaskRead2D, dst Write2D, r int) error {
	return RankOrderMasked(src, mask, dst, r, RankDilation)
}

// MedianMasked is Median restricted to mask-true pixels.
func MedianMasked(src Read2D, mask MaskRead2D, dst Write2D, r int) error {
	return RankOrderMasked(src, mask, dst, r, RankMedian)
}
