package pixel

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocTooLarge is returned when a requested buffer would exceed the
	// addressable allocation limit.
	ErrAllocTooLarge = errors.New("pixel: buffer allocation too large")

	// ErrOutOfBounds is returned when a row or pixel coordinate lies outside
	// the buffer geometry.
	ErrOutOfBounds = errors.New("pixel: coordinate out of bounds")
)

// maxAllocBytes caps a single buffer allocation just under 2 GiB. The limit
// keeps the size arithmetic safe on 32-bit platforms, where it must itself fit
// in an int, and rejects adversarial dimensions (e.g. a crafted header
// claiming a 2^31 x 2^31 image) before any allocation happens.
const maxAllocBytes = 1<<31 - 1

// Buffer is raw pixel storage plus its row-addressing geometry.
//
// Pix holds H rows of Stride bytes each; within a row the first W*PixelSize
// bytes are meaningful. PixelSize is the byte size of one pixel (channel count
// times bytes per channel, fixed by the color mode the buffer is paired with).
type Buffer struct {
	W, H      int
	Stride    int
	PixelSize int
	Pix       []byte
}

// Alloc allocates a zeroed buffer for a width x height image with the given
// channel count and bytes per channel.
//
// Returns ErrAllocTooLarge if the required byte count would overflow the
// allocation limit, and ErrOutOfBounds if any argument is negative or the
// pixel size is zero. A zero-area buffer (width or height 0) is valid and
// holds no bytes.
func Alloc(width, height, channels, bytesPerChannel int) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrOutOfBounds, width, height)
	}
	if channels < 1 || bytesPerChannel < 1 {
		return nil, fmt.Errorf("%w: %d channels, %d bytes per channel", ErrOutOfBounds, channels, bytesPerChannel)
	}

	pixelSize := channels * bytesPerChannel
	if width > 0 && pixelSize > maxAllocBytes/width {
		return nil, fmt.Errorf("%w: %dx%d at %d bytes per pixel", ErrAllocTooLarge, width, height, pixelSize)
	}
	stride := width * pixelSize
	if height > 0 && stride > maxAllocBytes/height {
		return nil, fmt.Errorf("%w: %dx%d at %d bytes per pixel", ErrAllocTooLarge, width, height, pixelSize)
	}

	return &Buffer{
		W:         width,
		H:         height,
		Stride:    stride,
		PixelSize: pixelSize,
		Pix:       make([]byte, stride*height),
	}, nil
}

// ZeroArea reports whether the buffer holds no pixels.
func (b *Buffer) ZeroArea() bool {
	return b.W == 0 || b.H == 0
}

// Row returns the meaningful bytes of row y (the first W*PixelSize bytes; any
// stride padding is excluded). The slice aliases the buffer storage.
//
// Returns ErrOutOfBounds if y is not in [0, H).
func (b *Buffer) Row(y int) ([]byte, error) {
	if y < 0 || y >= b.H {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, y, b.H)
	}
	off := y * b.Stride
	return b.Pix[off : off+b.W*b.PixelSize : off+b.W*b.PixelSize], nil
}

// Pixel returns the bytes of the pixel at (x, y). The slice aliases the buffer
// storage.
//
// Returns ErrOutOfBounds if x is not in [0, W) or y is not in [0, H).
func (b *Buffer) Pixel(x, y int) ([]byte, error) {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return nil, fmt.Errorf("%w: pixel (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.W, b.H)
	}
	off := y*b.Stride + x*b.PixelSize
	return b.Pix[off : off+b.PixelSize : off+b.PixelSize], nil
}

// Clone returns an exact deep copy of the buffer: same geometry, same stride,
// same bytes, fully independent storage.
func (b *Buffer) Clone() *Buffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{
		W:         b.W,
		H:         b.H,
		Stride:    b.Stride,
		PixelSize: b.PixelSize,
		Pix:       pix,
	}
}
