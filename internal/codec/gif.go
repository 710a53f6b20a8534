package codec

import (
	"fmt"
	"image/gif"
	"io"

	"github.com/pictorlab/pictor/internal/colormode"
	"github.com/pictorlab/pictor/internal/pixel"
)

// gifCodec handles GIF through the stdlib decoder/encoder. Decoding an
// animated GIF yields its first frame. Encoding quantizes to at most
// Options.GIFColors palette entries; alpha-carrying modes are an explicit
// EncodeError because the quantizer cannot keep the channel.
type gifCodec struct{}

func (gifCodec) Decode(r io.Reader) (*pixel.Buffer, colormode.Mode, error) {
	img, err := gif.Decode(r)
	if err != nil {
		return nil, 0, &DecodeError{Format: FormatGIF, Reason: "invalid GIF stream", Err: err}
	}
	return FromImage(img)
}

func (gifCodec) Encode(w io.Writer, buf *pixel.Buffer, mode colormode.Mode, opts *Options) error {
	if mode.HasAlpha() {
		return &EncodeError{
			Format: FormatGIF,
			Reason: fmt.Sprintf("mode %s carries alpha, which the GIF palette quantizer would silently drop", mode),
		}
	}
	img, err := ToImage(buf, mode)
	if err != nil {
		return &EncodeError{Format: FormatGIF, Reason: "unsupported color mode", Err: err}
	}
	colors := opts.GIFColors
	if colors < 1 || colors > 256 {
		return &EncodeError{Format: FormatGIF, Reason: fmt.Sprintf("palette size %d outside 1-256", colors)}
	}
	if err := gif.Encode(w, img, &gif.Options{NumColors: colors}); err != nil {
		return &EncodeError{Format: FormatGIF, Reason: "write failed", Err: err}
	}
	return nil
}
