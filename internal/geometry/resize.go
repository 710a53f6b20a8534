package geometry

import (
	"fmt"
	"math"

	"github.com/pictorlab/pictor/internal/colormode"
	"github.com/pictorlab/pictor/internal/pixel"
)

// indexWeight is one kernel tap: a source index and its normalized weight.
type indexWeight struct {
	index  int
	weight float64
}

// precomputeWeights builds, for every destination index, the taps of the
// filter kernel centered on the back-mapped source coordinate
// (dst+0.5)*src/dst - 0.5. Taps outside the source range are discarded and
// the remaining weights renormalized, which clamps sampling to the valid
// rows/columns. When downscaling, the kernel is stretched by the scale factor
// so every source pixel contributes.
func precomputeWeights(dstSize, srcSize int, k kernel) [][]indexWeight {
	du := float64(srcSize) / float64(dstSize)
	scale := math.Max(du, 1.0)
	ru := math.Ceil(scale * k.support)

	out := make([][]indexWeight, dstSize)
	for v := 0; v < dstSize; v++ {
		fu := (float64(v)+0.5)*du - 0.5

		begin := int(math.Ceil(fu - ru))
		if begin < 0 {
			begin = 0
		}
		end := int(math.Floor(fu + ru))
		if end > srcSize-1 {
			end = srcSize - 1
		}

		taps := make([]indexWeight, 0, end-begin+1)
		var sum float64
		for u := begin; u <= end; u++ {
			if w := k.at((float64(u) - fu) / scale); w != 0 {
				sum += w
				taps = append(taps, indexWeight{index: u, weight: w})
			}
		}
		if sum != 0 {
			for i := range taps {
				taps[i].weight /= sum
			}
		}
		out[v] = taps
	}
	return out
}

// Resize resamples buf to width x height using the given filter and returns a
// new buffer.
//
// Returns ErrInvalidDimensions if width or height is not positive and
// ErrEmptyImage for a zero-area source. Resizing to the source size returns a
// deep clone.
func Resize(buf *pixel.Buffer, mode colormode.Mode, width, height int, filter Filter) (*pixel.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if buf.ZeroArea() {
		return nil, ErrEmptyImage
	}
	if !filter.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimensions, int(filter))
	}
	if width == buf.W && height == buf.H {
		return buf.Clone(), nil
	}

	if filter == Nearest {
		return resizeNearest(buf, width, height)
	}

	k := kernelFor(filter)
	out := buf
	var err error
	if width != buf.W {
		out, err = resizeHorizontal(out, mode, width, k)
		if err != nil {
			return nil, err
		}
	}
	if height != out.H {
		out, err = resizeVertical(out, mode, height, k)
		if err != nil {
			return nil, err
		}
	}
	if out == buf {
		out = buf.Clone()
	}
	return out, nil
}

// resizeNearest remaps both axes in one pass: each destination pixel copies
// the source pixel whose center is closest to the back-mapped coordinate.
func resizeNearest(src *pixel.Buffer, width, height int) (*pixel.Buffer, error) {
	ps := src.PixelSize
	dst, err := pixel.Alloc(width, height, ps, 1)
	if err != nil {
		return nil, err
	}

	dx := float64(src.W) / float64(width)
	dy := float64(src.H) / float64(height)

	pixel.Parallel(height, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			srcY := clampIndex(int((float64(y)+0.5)*dy), src.H)
			srcRow := src.Pix[srcY*src.Stride:]
			dstRow := dst.Pix[y*dst.Stride:]
			for x := 0; x < width; x++ {
				srcX := clampIndex(int((float64(x)+0.5)*dx), src.W)
				copy(dstRow[x*ps:x*ps+ps], srcRow[srcX*ps:srcX*ps+ps])
			}
		}
	})
	return dst, nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// resizeHorizontal resamples rows to the target width.
func resizeHorizontal(src *pixel.Buffer, mode colormode.Mode, width int, k kernel) (*pixel.Buffer, error) {
	dst, err := pixel.Alloc(width, src.H, mode.Channels(), mode.BytesPerChannel())
	if err != nil {
		return nil, err
	}

	weights := precomputeWeights(width, src.W, k)
	ps := mode.PixelSize()
	hasAlpha := mode.HasAlpha()
	colors := ps
	if hasAlpha {
		colors = ps - 1
	}

	pixel.Parallel(src.H, func(lo, hi int) {
		acc := make([]float64, colors)
		for y := lo; y < hi; y++ {
			srcRow := src.Pix[y*src.Stride : y*src.Stride+src.W*ps]
			dstRow := dst.Pix[y*dst.Stride:]
			for x, taps := range weights {
				resamplePixel(srcRow, dstRow[x*ps:x*ps+ps:x*ps+ps], taps, ps, colors, hasAlpha, acc)
			}
		}
	})
	return dst, nil
}

// resizeVertical resamples columns to the target height.
func resizeVertical(src *pixel.Buffer, mode colormode.Mode, height int, k kernel) (*pixel.Buffer, error) {
	dst, err := pixel.Alloc(src.W, height, mode.Channels(), mode.BytesPerChannel())
	if err != nil {
		return nil, err
	}

	weights := precomputeWeights(height, src.H, k)
	ps := mode.PixelSize()
	hasAlpha := mode.HasAlpha()
	colors := ps
	if hasAlpha {
		colors = ps - 1
	}

	pixel.Parallel(src.W, func(lo, hi int) {
		acc := make([]float64, colors)
		col := make([]byte, src.H*ps)
		for x := lo; x < hi; x++ {
			// Gather the column once so the tap loop walks contiguous bytes.
			for y := 0; y < src.H; y++ {
				copy(col[y*ps:y*ps+ps], src.Pix[y*src.Stride+x*ps:y*src.Stride+x*ps+ps])
			}
			for y, taps := range weights {
				di := y*dst.Stride + x*ps
				resamplePixel(col, dst.Pix[di:di+ps:di+ps], taps, ps, colors, hasAlpha, acc)
			}
		}
	})
	return dst, nil
}

// resamplePixel accumulates the kernel taps for one destination pixel. src is
// a contiguous line of pixels of size ps that the taps index into. Color
// channels of alpha-carrying modes are weighted by alpha during accumulation
// so fully transparent pixels contribute no color.
func resamplePixel(src, dst []byte, taps []indexWeight, ps, colors int, hasAlpha bool, acc []float64) {
	for i := range acc {
		acc[i] = 0
	}

	if !hasAlpha {
		for _, t := range taps {
			s := src[t.index*ps:]
			for c := 0; c < colors; c++ {
				acc[c] += float64(s[c]) * t.weight
			}
		}
		for c := 0; c < colors; c++ {
			dst[c] = clampRound(acc[c])
		}
		return
	}

	var alpha float64
	for _, t := range taps {
		s := src[t.index*ps:]
		aw := float64(s[ps-1]) * t.weight
		for c := 0; c < colors; c++ {
			acc[c] += float64(s[c]) * aw
		}
		alpha += aw
	}
	if alpha != 0 {
		inv := 1 / alpha
		for c := 0; c < colors; c++ {
			dst[c] = clampRound(acc[c] * inv)
		}
		dst[ps-1] = clampRound(alpha)
	} else {
		for c := 0; c < ps; c++ {
			dst[c] = 0
		}
	}
}

// clampRound rounds to nearest and clamps to the 8-bit channel range.
func clampRound(v float64) uint8 {
	v += 0.5
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}
