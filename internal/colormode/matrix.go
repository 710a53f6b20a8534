package colormode

import (
	"fmt"

	"github.com/pictorlab/pictor/internal/pixel"
)

// ConvertMatrix converts buf to RGB through an affine channel matrix.
//
// Two matrix shapes are accepted:
//
//   - 4 elements: the source is reduced to grayscale and each output channel
//     is matrix[i] * L (the fourth element is an offset reserved for parity
//     with the classic API and is applied additively).
//   - 12 elements: the source is expanded to RGB and each output channel is a
//     full affine combination, e.g. R' = m[0]*R + m[1]*G + m[2]*B + m[3].
//
// Results are clamped to [0, 255] per channel. Only RGB targets are
// supported; other targets fail with a ConversionError.
func ConvertMatrix(buf *pixel.Buffer, from, to Mode, matrix []float64) (*pixel.Buffer, error) {
	if to != RGB {
		return nil, &ConversionError{From: from, To: to}
	}

	switch len(matrix) {
	case 4:
		gray, err := Convert(buf, from, L)
		if err != nil {
			return nil, err
		}
		return matrixFromGray(gray, matrix)
	case 12:
		rgb, err := Convert(buf, from, RGB)
		if err != nil {
			return nil, err
		}
		return matrixFromRGB(rgb, matrix)
	default:
		return nil, fmt.Errorf("colormode: matrix must have 4 or 12 elements, got %d: %w",
			len(matrix), ErrUnsupportedConversion)
	}
}

func matrixFromGray(gray *pixel.Buffer, m []float64) (*pixel.Buffer, error) {
	dst, err := pixel.Alloc(gray.W, gray.H, RGB.Channels(), RGB.BytesPerChannel())
	if err != nil {
		return nil, err
	}

	pixel.Parallel(gray.H, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			srcRow := gray.Pix[y*gray.Stride:]
			dstRow := dst.Pix[y*dst.Stride:]
			for x := 0; x < gray.W; x++ {
				l := float64(srcRow[x])
				di := x * 3
				dstRow[di+0] = clampChannel(m[0]*l + m[3])
				dstRow[di+1] = clampChannel(m[1]*l + m[3])
				dstRow[di+2] = clampChannel(m[2]*l + m[3])
			}
		}
	})
	return dst, nil
}

func matrixFromRGB(rgb *pixel.Buffer, m []float64) (*pixel.Buffer, error) {
	dst, err := pixel.Alloc(rgb.W, rgb.H, RGB.Channels(), RGB.BytesPerChannel())
	if err != nil {
		return nil, err
	}

	pixel.Parallel(rgb.H, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			srcRow := rgb.Pix[y*rgb.Stride:]
			dstRow := dst.Pix[y*dst.Stride:]
			for x := 0; x < rgb.W; x++ {
				i := x * 3
				r := float64(srcRow[i+0])
				g := float64(srcRow[i+1])
				b := float64(srcRow[i+2])
				dstRow[i+0] = clampChannel(m[0]*r + m[1]*g + m[2]*b + m[3])
				dstRow[i+1] = clampChannel(m[4]*r + m[5]*g + m[6]*b + m[7])
				dstRow[i+2] = clampChannel(m[8]*r + m[9]*g + m[10]*b + m[11])
			}
		}
	})
	return dst, nil
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
