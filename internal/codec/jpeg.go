package codec

import (
	"fmt"
	"image/jpeg"
	"io"

	"github.com/pictorlab/pictor/internal/colormode"
	"github.com/pictorlab/pictor/internal/pixel"
)

// jpegCodec handles JPEG through the stdlib decoder/encoder. JPEG has no
// alpha channel: encoding an LA or RGBA buffer is an explicit EncodeError,
// never a silent channel drop; callers convert the mode first.
type jpegCodec struct{}

func (jpegCodec) Decode(r io.Reader) (*pixel.Buffer, colormode.Mode, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, 0, &DecodeError{Format: FormatJPEG, Reason: "invalid JPEG stream", Err: err}
	}
	return FromImage(img)
}

func (jpegCodec) Encode(w io.Writer, buf *pixel.Buffer, mode colormode.Mode, opts *Options) error {
	if mode.HasAlpha() {
		return &EncodeError{
			Format: FormatJPEG,
			Reason: fmt.Sprintf("mode %s carries alpha, which JPEG cannot represent", mode),
		}
	}
	img, err := ToImage(buf, mode)
	if err != nil {
		return &EncodeError{Format: FormatJPEG, Reason: "unsupported color mode", Err: err}
	}
	quality := opts.JPEGQuality
	if quality < 1 || quality > 100 {
		return &EncodeError{Format: FormatJPEG, Reason: fmt.Sprintf("quality %d outside 1-100", quality)}
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return &EncodeError{Format: FormatJPEG, Reason: "write failed", Err: err}
	}
	return nil
}
