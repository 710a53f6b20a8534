package codec

import (
	"io"

	"github.com/chai2010/webp"

	"github.com/pictorlab/pictor/internal/colormode"
	"github.com/pictorlab/pictor/internal/pixel"
)

// webpCodec handles WebP through github.com/chai2010/webp, which provides
// both directions (golang.org/x/image/webp is decode-only).
type webpCodec struct{}

func (webpCodec) Decode(r io.Reader) (*pixel.Buffer, colormode.Mode, error) {
	img, err := webp.Decode(r)
	if err != nil {
		return nil, 0, &DecodeError{Format: FormatWebP, Reason: "invalid WebP stream", Err: err}
	}
	return FromImage(img)
}

func (webpCodec) Encode(w io.Writer, buf *pixel.Buffer, mode colormode.Mode, opts *Options) error {
	img, err := ToImage(buf, mode)
	if err != nil {
		return &EncodeError{Format: FormatWebP, Reason: "unsupported color mode", Err: err}
	}
	o := &webp.Options{Lossless: opts.WebPLossless, Quality: opts.WebPQuality}
	if err := webp.Encode(w, img, o); err != nil {
		return &EncodeError{Format: FormatWebP, Reason: "write failed", Err: err}
	}
	return nil
}
