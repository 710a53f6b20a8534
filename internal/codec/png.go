package codec

import (
	"image/png"
	"io"

	"github.com/pictorlab/pictor/internal/colormode"
	"github.com/pictorlab/pictor/internal/pixel"
)

// pngCodec handles PNG through the stdlib decoder/encoder. PNG represents
// every engine mode (grayscale, truecolor, alpha).
type pngCodec struct{}

func (pngCodec) Decode(r io.Reader) (*pixel.Buffer, colormode.Mode, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, 0, &DecodeError{Format: FormatPNG, Reason: "invalid PNG stream", Err: err}
	}
	return FromImage(img)
}

func (pngCodec) Encode(w io.Writer, buf *pixel.Buffer, mode colormode.Mode, opts *Options) error {
	img, err := ToImage(buf, mode)
	if err != nil {
		return &EncodeError{Format: FormatPNG, Reason: "unsupported color mode", Err: err}
	}
	enc := &png.Encoder{CompressionLevel: opts.PNGCompression}
	if err := enc.Encode(w, img); err != nil {
		return &EncodeError{Format: FormatPNG, Reason: "write failed", Err: err}
	}
	return nil
}
