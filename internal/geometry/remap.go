package geometry

import (
	"fmt"

	"github.com/pictorlab/pictor/internal/pixel"
)

// TransposeMethod describes one of the fixed geometric remaps.
type TransposeMethod int

const (
	// FlipLeftRight mirrors the image horizontally.
	FlipLeftRight TransposeMethod = iota
	// FlipTopBottom mirrors the image vertically.
	FlipTopBottom
	// Rotate90 turns the image 90 degrees clockwise.
	Rotate90
	// Rotate180 turns the image 180 degrees.
	Rotate180
	// Rotate270 turns the image 270 degrees clockwise.
	Rotate270
)

func (m TransposeMethod) String() string {
	switch m {
	case FlipLeftRight:
		return "FLIP_LEFT_RIGHT"
	case FlipTopBottom:
		return "FLIP_TOP_BOTTOM"
	case Rotate90:
		return "ROTATE_90"
	case Rotate180:
		return "ROTATE_180"
	case Rotate270:
		return "ROTATE_270"
	}
	return fmt.Sprintf("TransposeMethod(%d)", int(m))
}

// Rotate returns buf rotated clockwise by the given angle in degrees. Only
// multiples of 90 are supported (taken mod 360); rotating by 0 returns a deep
// clone. Any other angle fails with ErrUnsupportedAngle.
func Rotate(buf *pixel.Buffer, angle int) (*pixel.Buffer, error) {
	a := ((angle % 360) + 360) % 360
	switch a {
	case 0:
		return buf.Clone(), nil
	case 90:
		return rotate90(buf), nil
	case 180:
		return rotate180(buf), nil
	case 270:
		return rotate270(buf), nil
	}
	return nil, fmt.Errorf("%w: %d (only multiples of 90 are supported)", ErrUnsupportedAngle, angle)
}

// Transpose applies one of the fixed remaps. The rotation variants share the
// remap logic with Rotate.
func Transpose(buf *pixel.Buffer, method TransposeMethod) (*pixel.Buffer, error) {
	switch method {
	case FlipLeftRight:
		return flipLeftRight(buf), nil
	case FlipTopBottom:
		return flipTopBottom(buf), nil
	case Rotate90:
		return rotate90(buf), nil
	case Rotate180:
		return rotate180(buf), nil
	case Rotate270:
		return rotate270(buf), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownTranspose, int(method))
}

func alloc(buf *pixel.Buffer, w, h int) *pixel.Buffer {
	// The destination is never larger than the source, so allocation cannot
	// fail once the source exists.
	dst, _ := pixel.Alloc(w, h, buf.PixelSize, 1)
	return dst
}

func flipLeftRight(buf *pixel.Buffer) *pixel.Buffer {
	dst := alloc(buf, buf.W, buf.H)
	ps := buf.PixelSize
	pixel.Parallel(buf.H, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			src := buf.Pix[y*buf.Stride:]
			out := dst.Pix[y*dst.Stride:]
			for x := 0; x < buf.W; x++ {
				sx := (buf.W - 1 - x) * ps
				copy(out[x*ps:x*ps+ps], src[sx:sx+ps])
			}
		}
	})
	return dst
}

func flipTopBottom(buf *pixel.Buffer) *pixel.Buffer {
	dst := alloc(buf, buf.W, buf.H)
	rowBytes := buf.W * buf.PixelSize
	pixel.Parallel(buf.H, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			sy := buf.H - 1 - y
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowBytes], buf.Pix[sy*buf.Stride:sy*buf.Stride+rowBytes])
		}
	})
	return dst
}

// rotate90 writes dst(x, y) = src(y, srcH-1-x): row y of the destination is
// column y of the source read bottom to top, turning the image clockwise.
func rotate90(buf *pixel.Buffer) *pixel.Buffer {
	dst := alloc(buf, buf.H, buf.W)
	ps := buf.PixelSize
	pixel.Parallel(dst.H, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			sx := y * ps
			out := dst.Pix[y*dst.Stride:]
			for x := 0; x < dst.W; x++ {
				src := buf.Pix[(buf.H-1-x)*buf.Stride+sx:]
				copy(out[x*ps:x*ps+ps], src[:ps])
			}
		}
	})
	return dst
}

// rotate180 reverses both axes; dimensions are preserved.
func rotate180(buf *pixel.Buffer) *pixel.Buffer {
	dst := alloc(buf, buf.W, buf.H)
	ps := buf.PixelSize
	pixel.Parallel(buf.H, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			src := buf.Pix[(buf.H-1-y)*buf.Stride:]
			out := dst.Pix[y*dst.Stride:]
			for x := 0; x < buf.W; x++ {
				sx := (buf.W - 1 - x) * ps
				copy(out[x*ps:x*ps+ps], src[sx:sx+ps])
			}
		}
	})
	return dst
}

// rotate270 writes dst(x, y) = src(srcW-1-y, x): row y of the destination is
// column srcW-1-y of the source read top to bottom.
func rotate270(buf *pixel.Buffer) *pixel.Buffer {
	dst := alloc(buf, buf.H, buf.W)
	ps := buf.PixelSize
	pixel.Parallel(dst.H, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			sx := (buf.W - 1 - y) * ps
			out := dst.Pix[y*dst.Stride:]
			for x := 0; x < dst.W; x++ {
				src := buf.Pix[x*buf.Stride+sx:]
				copy(out[x*ps:x*ps+ps], src[:ps])
			}
		}
	})
	return dst
}
