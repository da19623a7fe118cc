package morph

import (
	"errors"
	"fmt"
)

// Sentinel errors for morph operations. Compare with errors.Is, never
// by string match.
var (
	// ErrInvalidRadius indicates a negative structuring-element radius.
	ErrInvalidRadius = errors.New("morph: radius must be >= 0")

	// ErrInvalidRank indicates a rank fraction outside [0, 1].
	ErrInvalidRank = errors.New("morph: rank must be in [0, 1]")

	// ErrValueOutOfDomain indicates a source pixel outside 0..255.
	ErrValueOutOfDomain = errors.New("morph: pixel value out of 0..255 domain")

	// ErrDimensionMismatch indicates src/mask/dst extents disagree.
	ErrDimensionMismatch = errors.New("morph: src, mask and dst must share width and height")
)

// errorf wraps a sentinel error with the operation name that raised it,
// preserving errors.Is compatibility via %w.
func errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
