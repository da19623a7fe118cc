// Package morph implements flat (disc) rank-order morphology on 8-bit
// images.
//
//   - Disc geometry  — the half-width table that approximates a round
//     structuring element row by row.
//   - Sliding histogram — a length-256 running count that tracks the
//     disc window's value distribution as it sweeps a row, updated in
//     O(radius) per pixel instead of rebuilt from scratch.
//   - Rank-order filters — erosion, dilation, and median, plus masked
//     variants that only count pixels where a boolean mask is true.
//
// morph never assumes a concrete image type. Callers supply a narrow
// random-access reader/writer (Read2D, Write2D, MaskRead2D); see
// package imageio for an adapter over image.Gray.
//
//	go get github.com/zgsxwsdxg/vigra/morph
package morph
