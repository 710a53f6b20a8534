package codec

import (
	"fmt"
	"image"
	"image/color"

	"github.com/pictorlab/pictor/internal/colormode"
	"github.com/pictorlab/pictor/internal/pixel"
)

// FromImage converts a decoded stdlib image into an engine buffer plus the
// mode that preserves the source the closest: grayscale sources become L,
// alpha-carrying sources become RGBA, everything else becomes RGB.
//
// The returned buffer never aliases the source image's storage.
func FromImage(img image.Image) (*pixel.Buffer, colormode.Mode, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		buf, err := pixel.Alloc(w, h, 1, 1)
		if err != nil {
			return nil, 0, err
		}
		for y := 0; y < h; y++ {
			si := (y+b.Min.Y-src.Rect.Min.Y)*src.Stride + (b.Min.X - src.Rect.Min.X)
			copy(buf.Pix[y*buf.Stride:y*buf.Stride+w], src.Pix[si:si+w])
		}
		return buf, colormode.L, nil

	case *image.Gray16:
		buf, err := pixel.Alloc(w, h, 1, 1)
		if err != nil {
			return nil, 0, err
		}
		for y := 0; y < h; y++ {
			row := buf.Pix[y*buf.Stride:]
			for x := 0; x < w; x++ {
				row[x] = uint8(src.Gray16At(b.Min.X+x, b.Min.Y+y).Y >> 8)
			}
		}
		return buf, colormode.L, nil

	case *image.NRGBA:
		buf, err := pixel.Alloc(w, h, 4, 1)
		if err != nil {
			return nil, 0, err
		}
		rowBytes := w * 4
		for y := 0; y < h; y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(buf.Pix[y*buf.Stride:y*buf.Stride+rowBytes], src.Pix[si:si+rowBytes])
		}
		return buf, colormode.RGBA, nil

	case *image.RGBA:
		buf, err := pixel.Alloc(w, h, 4, 1)
		if err != nil {
			return nil, 0, err
		}
		for y := 0; y < h; y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			row := buf.Pix[y*buf.Stride:]
			for x := 0; x < w; x++ {
				s := src.Pix[si+x*4 : si+x*4+4 : si+x*4+4]
				d := row[x*4 : x*4+4 : x*4+4]
				a := s[3]
				switch a {
				case 0:
					d[0], d[1], d[2], d[3] = 0, 0, 0, 0
				case 0xff:
					d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 0xff
				default:
					// Premultiplied to straight alpha.
					d[0] = uint8(uint16(s[0]) * 0xff / uint16(a))
					d[1] = uint8(uint16(s[1]) * 0xff / uint16(a))
					d[2] = uint8(uint16(s[2]) * 0xff / uint16(a))
					d[3] = a
				}
			}
		}
		return buf, colormode.RGBA, nil

	case *image.YCbCr:
		buf, err := pixel.Alloc(w, h, 3, 1)
		if err != nil {
			return nil, 0, err
		}
		for y := 0; y < h; y++ {
			row := buf.Pix[y*buf.Stride:]
			for x := 0; x < w; x++ {
				c := src.YCbCrAt(b.Min.X+x, b.Min.Y+y)
				r, g, bb := color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
				i := x * 3
				row[i], row[i+1], row[i+2] = r, g, bb
			}
		}
		return buf, colormode.RGB, nil

	case *image.CMYK:
		buf, err := pixel.Alloc(w, h, 3, 1)
		if err != nil {
			return nil, 0, err
		}
		for y := 0; y < h; y++ {
			row := buf.Pix[y*buf.Stride:]
			for x := 0; x < w; x++ {
				i := src.PixOffset(b.Min.X+x, b.Min.Y+y)
				r, g, bb := color.CMYKToRGB(src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3])
				di := x * 3
				row[di], row[di+1], row[di+2] = r, g, bb
			}
		}
		return buf, colormode.RGB, nil

	case *image.Paletted:
		if paletteOpaque(src.Palette) {
			return palettedToRGB(src, b, w, h)
		}
		return genericToRGBA(img, b, w, h)

	default:
		return genericToRGBA(img, b, w, h)
	}
}

func paletteOpaque(p color.Palette) bool {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return false
		}
	}
	return true
}

func palettedToRGB(src *image.Paletted, b image.Rectangle, w, h int) (*pixel.Buffer, colormode.Mode, error) {
	buf, err := pixel.Alloc(w, h, 3, 1)
	if err != nil {
		return nil, 0, err
	}
	lut := make([][3]uint8, len(src.Palette))
	for i, c := range src.Palette {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		lut[i] = [3]uint8{n.R, n.G, n.B}
	}
	for y := 0; y < h; y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		row := buf.Pix[y*buf.Stride:]
		for x := 0; x < w; x++ {
			c := lut[src.Pix[si+x]]
			i := x * 3
			row[i], row[i+1], row[i+2] = c[0], c[1], c[2]
		}
	}
	return buf, colormode.RGB, nil
}

func genericToRGBA(img image.Image, b image.Rectangle, w, h int) (*pixel.Buffer, colormode.Mode, error) {
	buf, err := pixel.Alloc(w, h, 4, 1)
	if err != nil {
		return nil, 0, err
	}
	for y := 0; y < h; y++ {
		row := buf.Pix[y*buf.Stride:]
		for x := 0; x < w; x++ {
			n := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := x * 4
			row[i], row[i+1], row[i+2], row[i+3] = n.R, n.G, n.B, n.A
		}
	}
	return buf, colormode.RGBA, nil
}

// ToImage wraps an engine buffer as a stdlib image for encoding. L and RGBA
// buffers are wrapped directly (the returned image aliases the buffer and
// must be treated as read-only); LA and RGB are expanded into a fresh NRGBA.
func ToImage(buf *pixel.Buffer, mode colormode.Mode) (image.Image, error) {
	switch mode {
	case colormode.L:
		return &image.Gray{Pix: buf.Pix, Stride: buf.Stride, Rect: image.Rect(0, 0, buf.W, buf.H)}, nil

	case colormode.RGBA:
		return &image.NRGBA{Pix: buf.Pix, Stride: buf.Stride, Rect: image.Rect(0, 0, buf.W, buf.H)}, nil

	case colormode.LA:
		dst := image.NewNRGBA(image.Rect(0, 0, buf.W, buf.H))
		for y := 0; y < buf.H; y++ {
			src := buf.Pix[y*buf.Stride:]
			row := dst.Pix[y*dst.Stride:]
			for x := 0; x < buf.W; x++ {
				l, a := src[x*2], src[x*2+1]
				i := x * 4
				row[i], row[i+1], row[i+2], row[i+3] = l, l, l, a
			}
		}
		return dst, nil

	case colormode.RGB:
		dst := image.NewNRGBA(image.Rect(0, 0, buf.W, buf.H))
		for y := 0; y < buf.H; y++ {
			src := buf.Pix[y*buf.Stride:]
			row := dst.Pix[y*dst.Stride:]
			for x := 0; x < buf.W; x++ {
				si, di := x*3, x*4
				row[di], row[di+1], row[di+2], row[di+3] = src[si], src[si+1], src[si+2], 0xff
			}
		}
		return dst, nil
	}
	return nil, fmt.Errorf("codec: cannot bridge mode %s", mode)
}
