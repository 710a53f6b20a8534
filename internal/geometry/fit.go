package geometry

import (
	"fmt"
	"math"
)

// FitWithin computes the largest size with the source aspect ratio that fits
// inside maxW x maxH: scale = min(maxW/srcW, maxH/srcH), dimensions rounded
// to nearest with a floor of 1 pixel so extreme ratios never collapse an
// axis.
//
// Returns ErrEmptyImage for a zero-area source (the scale would divide by
// zero) and ErrInvalidDimensions if either bound is not positive.
func FitWithin(srcW, srcH, maxW, maxH int) (int, int, error) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0, ErrEmptyImage
	}
	if maxW <= 0 || maxH <= 0 {
		return 0, 0, fmt.Errorf("%w: bound %dx%d", ErrInvalidDimensions, maxW, maxH)
	}

	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	w := int(math.Round(float64(srcW) * scale))
	h := int(math.Round(float64(srcH) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h, nil
}
