package colormode

import (
	"errors"
	"fmt"

	"github.com/pictorlab/pictor/internal/pixel"
)

// ErrUnsupportedConversion is the sentinel wrapped by every ConversionError.
var ErrUnsupportedConversion = errors.New("colormode: unsupported conversion")

// ConversionError reports a mode pair the engine cannot convert between.
type ConversionError struct {
	From, To Mode
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("colormode: cannot convert %s to %s", e.From, e.To)
}

func (e *ConversionError) Unwrap() error { return ErrUnsupportedConversion }

// opaque is the fully opaque alpha value added when a conversion introduces
// an alpha channel.
const opaque = 0xff

// Luminance returns round(0.299*R + 0.587*G + 0.114*B) computed in integer
// arithmetic.
func Luminance(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b) + 500) / 1000)
}

// pixelConv rewrites one src pixel into one dst pixel.
type pixelConv func(src, dst []byte)

// converter returns the per-pixel rewrite for a mode pair, or nil when the
// pair is unsupported.
func converter(from, to Mode) pixelConv {
	switch from {
	case L:
		switch to {
		case LA:
			return func(s, d []byte) { d[0], d[1] = s[0], opaque }
		case RGB:
			return func(s, d []byte) { d[0], d[1], d[2] = s[0], s[0], s[0] }
		case RGBA:
			return func(s, d []byte) { d[0], d[1], d[2], d[3] = s[0], s[0], s[0], opaque }
		}
	case LA:
		switch to {
		case L:
			return func(s, d []byte) { d[0] = s[0] }
		case RGB:
			return func(s, d []byte) { d[0], d[1], d[2] = s[0], s[0], s[0] }
		case RGBA:
			return func(s, d []byte) { d[0], d[1], d[2], d[3] = s[0], s[0], s[0], s[1] }
		}
	case RGB:
		switch to {
		case L:
			return func(s, d []byte) { d[0] = Luminance(s[0], s[1], s[2]) }
		case LA:
			return func(s, d []byte) { d[0], d[1] = Luminance(s[0], s[1], s[2]), opaque }
		case RGBA:
			return func(s, d []byte) { d[0], d[1], d[2], d[3] = s[0], s[1], s[2], opaque }
		}
	case RGBA:
		switch to {
		case L:
			return func(s, d []byte) { d[0] = Luminance(s[0], s[1], s[2]) }
		case LA:
			return func(s, d []byte) { d[0], d[1] = Luminance(s[0], s[1], s[2]), s[3] }
		case RGB:
			return func(s, d []byte) { d[0], d[1], d[2] = s[0], s[1], s[2] }
		}
	}
	return nil
}

// Convert remaps buf from one mode to another, returning a freshly allocated
// buffer. The identity conversion returns a deep clone, never the source
// buffer itself.
//
// Alpha handling follows straight-drop semantics: adding an alpha channel
// sets it fully opaque, dropping one discards it without compositing.
//
// Returns a ConversionError for unsupported mode pairs.
func Convert(buf *pixel.Buffer, from, to Mode) (*pixel.Buffer, error) {
	if !from.Valid() || !to.Valid() {
		return nil, &ConversionError{From: from, To: to}
	}
	if from == to {
		return buf.Clone(), nil
	}

	conv := converter(from, to)
	if conv == nil {
		return nil, &ConversionError{From: from, To: to}
	}

	dst, err := pixel.Alloc(buf.W, buf.H, to.Channels(), to.BytesPerChannel())
	if err != nil {
		return nil, err
	}

	sp, dp := from.PixelSize(), to.PixelSize()
	pixel.Parallel(buf.H, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			srcRow := buf.Pix[y*buf.Stride:]
			dstRow := dst.Pix[y*dst.Stride:]
			si, di := 0, 0
			for x := 0; x < buf.W; x++ {
				conv(srcRow[si:si+sp:si+sp], dstRow[di:di+dp:di+dp])
				si += sp
				di += dp
			}
		}
	})

	return dst, nil
}
