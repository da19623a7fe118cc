// Package vigra is a small computer-vision toolkit: disc-shaped
// rank-order morphology and the split/stop primitives behind a
// decision-forest trainer.
//
// Under the hood, everything is organized under four subpackages:
//
//	morph/   — disc structuring elements, sliding-histogram rank filters
//	forest/  — split scoring (Gini/Entropy/KSD), stop predicates, options
//	imageio/ — golang.org/x/image adapters onto morph's Read2D/Write2D
//	cmd/     — vigracli, a small PNG-in/PNG-out filter CLI
//
// morph and forest are pure, dependency-free algorithm packages: neither
// imports the other, and neither knows anything about image decoding or
// tree structure — both are left to the caller.
//
//	go get github.com/zgsxwsdxg/vigra
package vigra
