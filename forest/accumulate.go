package forest

// ArgMaxAcc accumulates a range of class labels into a posterior
// frequency vector. Its scratch buffer grows monotonically across
// calls (never shrinks) to amortise allocation across many nodes.
type ArgMaxAcc struct {
	buf []float64
}

// Accumulate writes the class-frequency distribution of labels into
// the accumulator's scratch buffer and returns it. The returned slice
// has length max(labels)+1 and sums to 1 (or is all zero if labels is
// empty). The slice is only valid until the next call.
func (a *ArgMaxAcc) Accumulate(labels []int) []float64 {
	maxLabel := -1
	for _, l := range labels {
		if l > maxLabel {
			maxLabel = l
		}
	}
	n := maxLabel + 1
	buf := a.reset(n)

	for _, l := range labels {
		buf[l]++
	}
	if total := float64(len(labels)); total > 0 {
		for i := range buf {
			buf[i] /= total
		}
	}
	return buf
}

// ArgMaxVectorAcc accumulates a range of per-tree class-count vectors
// into a single posterior: each input vector is L1-normalised, then
// the normalised vectors are averaged. Used to combine an ensemble's
// per-tree leaf posteriors into one forest-level posterior.
type ArgMaxVectorAcc struct {
	buf []float64
}

// Accumulate writes the averaged, per-vector L1-normalised posterior
// into the accumulator's scratch buffer and returns it. The returned
// slice has length max(len(v) for v in vectors); shorter input vectors
// contribute zero past their own length. The slice is only valid until
// the next call.
func (a *ArgMaxVectorAcc) Accumulate(vectors [][]float64) []float64 {
	maxLen := 0
	for _, v := range vectors {
		if len(v) > maxLen {
			maxLen = len(v)
		}
	}
	buf := a.reset(maxLen)
	if len(vectors) == 0 {
		return buf
	}

	for _, v := range vectors {
		var sum float64
		for _, x := range v {
			sum += x
		}
		if sum == 0 {
			continue
		}
		for i, x := range v {
			buf[i] += x / sum
		}
	}

	n := float64(len(vectors))
	for i := range buf {
		buf[i] /= n
	}
	return buf
}

func (a *ArgMaxAcc) reset(n int) []float64 {
	if cap(a.buf) < n {
		a.buf = make([]float64, n)
	} else {
		a.buf = a.buf[:n]
		for i := range a.buf {
			a.buf[i] = 0
		}
	}
	return a.buf
}

func (a *ArgMaxVectorAcc) reset(n int) []float64 {
	if cap(a.buf) < n {
		a.buf = make([]float64, n)
	} else {
		a.buf = a.buf[:n]
		for i := range a.buf {
			a.buf[i] = 0
		}
	}
	return a.buf
}
