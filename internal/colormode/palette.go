package colormode

import (
	"fmt"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pictorlab/pictor/internal/pixel"
)

// PaletteKind selects how a quantization palette is obtained.
type PaletteKind int

const (
	// PaletteWeb is the fixed web-safe palette: a 6x6x6 cube with channel
	// levels 0, 51, 102, 153, 204, 255 (216 entries).
	PaletteWeb PaletteKind = iota
	// PaletteAdaptive builds a palette from the image itself using median-cut
	// quantization.
	PaletteAdaptive
)

func (k PaletteKind) String() string {
	switch k {
	case PaletteWeb:
		return "WEB"
	case PaletteAdaptive:
		return "ADAPTIVE"
	}
	return fmt.Sprintf("PaletteKind(%d)", int(k))
}

// Quantize reduces buf to at most the given number of palette colors and
// materializes the result back into an RGB buffer.
//
// For PaletteWeb the colors argument is ignored (the palette is fixed). For
// PaletteAdaptive colors is clamped to [2, 256]. With dither enabled the
// quantization error is diffused with the Floyd-Steinberg kernel; otherwise
// every pixel snaps to its nearest palette entry.
func Quantize(buf *pixel.Buffer, from Mode, kind PaletteKind, colors int, dither bool) (*pixel.Buffer, error) {
	rgb, err := Convert(buf, from, RGB)
	if err != nil {
		return nil, err
	}
	if rgb.ZeroArea() {
		return rgb, nil
	}

	var palette [][3]uint8
	switch kind {
	case PaletteWeb:
		palette = webPalette()
	case PaletteAdaptive:
		if colors < 2 {
			colors = 2
		} else if colors > 256 {
			colors = 256
		}
		palette = adaptivePalette(rgb, colors)
	default:
		return nil, fmt.Errorf("colormode: unknown palette kind %d: %w", int(kind), ErrUnsupportedConversion)
	}

	if dither {
		quantizeDithered(rgb, palette)
	} else {
		quantizeNearest(rgb, palette)
	}
	return rgb, nil
}

func webPalette() [][3]uint8 {
	p := make([][3]uint8, 0, 216)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p = append(p, [3]uint8{uint8(r * 51), uint8(g * 51), uint8(b * 51)})
			}
		}
	}
	return p
}

// adaptivePalette runs median-cut over the image pixels: repeatedly split the
// box with the widest channel range at its median until the target box count
// is reached, then average each box into one palette entry.
func adaptivePalette(rgb *pixel.Buffer, colors int) [][3]uint8 {
	pixels := make([][3]uint8, 0, rgb.W*rgb.H)
	for y := 0; y < rgb.H; y++ {
		row := rgb.Pix[y*rgb.Stride : y*rgb.Stride+rgb.W*3]
		for x := 0; x < rgb.W; x++ {
			i := x * 3
			pixels = append(pixels, [3]uint8{row[i], row[i+1], row[i+2]})
		}
	}

	boxes := [][][3]uint8{pixels}
	for len(boxes) < colors {
		// Pick the box with the widest channel range.
		bestBox, bestChan, bestRange := -1, 0, -1
		for i, box := range boxes {
			if len(box) < 2 {
				continue
			}
			ch, rng := widestChannel(box)
			if rng > bestRange {
				bestBox, bestChan, bestRange = i, ch, rng
			}
		}
		if bestBox < 0 {
			break // every box is a single color
		}

		box := boxes[bestBox]
		sort.Slice(box, func(i, j int) bool { return box[i][bestChan] < box[j][bestChan] })
		mid := len(box) / 2
		boxes[bestBox] = box[:mid]
		boxes = append(boxes, box[mid:])
	}

	palette := make([][3]uint8, 0, len(boxes))
	for _, box := range boxes {
		var r, g, b uint64
		for _, p := range box {
			r += uint64(p[0])
			g += uint64(p[1])
			b += uint64(p[2])
		}
		n := uint64(len(box))
		palette = append(palette, [3]uint8{uint8(r / n), uint8(g / n), uint8(b / n)})
	}
	return palette
}

func widestChannel(box [][3]uint8) (channel, spread int) {
	var lo, hi [3]uint8
	lo = [3]uint8{255, 255, 255}
	for _, p := range box {
		for c := 0; c < 3; c++ {
			if p[c] < lo[c] {
				lo[c] = p[c]
			}
			if p[c] > hi[c] {
				hi[c] = p[c]
			}
		}
	}
	for c := 0; c < 3; c++ {
		if r := int(hi[c]) - int(lo[c]); r > spread {
			channel, spread = c, r
		}
	}
	return channel, spread
}

// nearestIndex finds the palette entry closest to (r, g, b) in RGB space.
func nearestIndex(palette []colorful.Color, r, g, b uint8) int {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best, bestDist := 0, c.DistanceRgb(palette[0])
	for i := 1; i < len(palette); i++ {
		if d := c.DistanceRgb(palette[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func toColorful(palette [][3]uint8) []colorful.Color {
	out := make([]colorful.Color, len(palette))
	for i, p := range palette {
		out[i] = colorful.Color{R: float64(p[0]) / 255, G: float64(p[1]) / 255, B: float64(p[2]) / 255}
	}
	return out
}

func quantizeNearest(rgb *pixel.Buffer, palette [][3]uint8) {
	cp := toColorful(palette)
	pixel.Parallel(rgb.H, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := rgb.Pix[y*rgb.Stride : y*rgb.Stride+rgb.W*3]
			for x := 0; x < rgb.W; x++ {
				i := x * 3
				p := palette[nearestIndex(cp, row[i], row[i+1], row[i+2])]
				row[i], row[i+1], row[i+2] = p[0], p[1], p[2]
			}
		}
	})
}

func quantizeDithered(rgb *pixel.Buffer, palette [][3]uint8) {
	cp := toColorful(palette)
	w, h := rgb.W, rgb.H
	curErr := make([][3]int16, w)
	nextErr := make([][3]int16, w)

	for y := 0; y < h; y++ {
		row := rgb.Pix[y*rgb.Stride : y*rgb.Stride+w*3]
		for i := range nextErr {
			nextErr[i] = [3]int16{}
		}
		for x := 0; x < w; x++ {
			i := x * 3
			r := clampInt16(int16(row[i+0]) + curErr[x][0])
			g := clampInt16(int16(row[i+1]) + curErr[x][1])
			b := clampInt16(int16(row[i+2]) + curErr[x][2])

			p := palette[nearestIndex(cp, r, g, b)]
			row[i+0], row[i+1], row[i+2] = p[0], p[1], p[2]

			qe := [3]int16{
				int16(r) - int16(p[0]),
				int16(g) - int16(p[1]),
				int16(b) - int16(p[2]),
			}
			for c := 0; c < 3; c++ {
				if x+1 < w {
					curErr[x+1][c] += qe[c] * 7 / 16
				}
				if y+1 < h {
					if x > 0 {
						nextErr[x-1][c] += qe[c] * 3 / 16
					}
					nextErr[x][c] += qe[c] * 5 / 16
					if x+1 < w {
						nextErr[x+1][c] += qe[c] * 1 / 16
					}
				}
			}
		}
		curErr, nextErr = nextErr, curErr
	}
}
