package colormode

import "github.com/pictorlab/pictor/internal/pixel"

// Bilevel reduces buf to a black-and-white image stored in mode L: every
// pixel is either 0 or 255.
//
// With dither disabled each grayscale value above 127 maps to white. With
// dither enabled the quantization error is diffused to neighboring pixels
// using the Floyd-Steinberg kernel (7/16 right, 3/16 down-left, 5/16 down,
// 1/16 down-right). Error diffusion is inherently serial across rows, so this
// path does not parallelize.
func Bilevel(buf *pixel.Buffer, from Mode, dither bool) (*pixel.Buffer, error) {
	gray, err := Convert(buf, from, L)
	if err != nil {
		return nil, err
	}

	if !dither {
		pixel.Parallel(gray.H, func(lo, hi int) {
			for y := lo; y < hi; y++ {
				row := gray.Pix[y*gray.Stride : y*gray.Stride+gray.W]
				for x, v := range row {
					if v > 127 {
						row[x] = 255
					} else {
						row[x] = 0
					}
				}
			}
		})
		return gray, nil
	}

	w, h := gray.W, gray.H
	curErr := make([]int16, w)
	nextErr := make([]int16, w)

	for y := 0; y < h; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+w]
		for i := range nextErr {
			nextErr[i] = 0
		}
		for x := 0; x < w; x++ {
			v := clampInt16(int16(row[x]) + curErr[x])
			var out uint8
			if v > 127 {
				out = 255
			}
			row[x] = out

			qe := int16(v) - int16(out)
			if x+1 < w {
				curErr[x+1] += qe * 7 / 16
			}
			if y+1 < h {
				if x > 0 {
					nextErr[x-1] += qe * 3 / 16
				}
				nextErr[x] += qe * 5 / 16
				if x+1 < w {
					nextErr[x+1] += qe * 1 / 16
				}
			}
		}
		curErr, nextErr = nextErr, curErr
	}

	return gray, nil
}

func clampInt16(v int16) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
