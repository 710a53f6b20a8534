package geometry

import (
	"fmt"

	"github.com/pictorlab/pictor/internal/pixel"
)

// Rectangle is a crop region in source coordinates: (Left, Top) inclusive,
// (Right, Bottom) exclusive.
type Rectangle struct {
	Left, Top, Right, Bottom int
}

// Width returns Right - Left.
func (r Rectangle) Width() int { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rectangle) Height() int { return r.Bottom - r.Top }

// Crop copies the region described by rect into a new buffer of size
// rect.Width() x rect.Height().
//
// The rectangle must satisfy 0 <= Left < Right <= W and 0 <= Top < Bottom <= H;
// anything else fails with ErrInvalidRegion. Bounds are never clamped.
func Crop(buf *pixel.Buffer, rect Rectangle) (*pixel.Buffer, error) {
	if rect.Left >= rect.Right || rect.Top >= rect.Bottom {
		return nil, fmt.Errorf("%w: (%d,%d)-(%d,%d) is degenerate",
			ErrInvalidRegion, rect.Left, rect.Top, rect.Right, rect.Bottom)
	}
	if rect.Left < 0 || rect.Top < 0 || rect.Right > buf.W || rect.Bottom > buf.H {
		return nil, fmt.Errorf("%w: (%d,%d)-(%d,%d) outside %dx%d source",
			ErrInvalidRegion, rect.Left, rect.Top, rect.Right, rect.Bottom, buf.W, buf.H)
	}

	ps := buf.PixelSize
	dst, err := pixel.Alloc(rect.Width(), rect.Height(), ps, 1)
	if err != nil {
		return nil, err
	}

	rowBytes := rect.Width() * ps
	pixel.Parallel(rect.Height(), func(lo, hi int) {
		for y := lo; y < hi; y++ {
			src := buf.Pix[(rect.Top+y)*buf.Stride+rect.Left*ps:]
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowBytes], src[:rowBytes])
		}
	})
	return dst, nil
}
