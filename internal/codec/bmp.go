package codec

import (
	"io"

	"golang.org/x/image/bmp"

	"github.com/pictorlab/pictor/internal/colormode"
	"github.com/pictorlab/pictor/internal/pixel"
)

// bmpCodec handles BMP through golang.org/x/image/bmp. Grayscale buffers are
// written as 8-bit BMP; color buffers as 24-bit (opaque) or 32-bit (alpha).
type bmpCodec struct{}

func (bmpCodec) Decode(r io.Reader) (*pixel.Buffer, colormode.Mode, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, 0, &DecodeError{Format: FormatBMP, Reason: "invalid BMP stream", Err: err}
	}
	return FromImage(img)
}

func (bmpCodec) Encode(w io.Writer, buf *pixel.Buffer, mode colormode.Mode, opts *Options) error {
	img, err := ToImage(buf, mode)
	if err != nil {
		return &EncodeError{Format: FormatBMP, Reason: "unsupported color mode", Err: err}
	}
	if err := bmp.Encode(w, img); err != nil {
		return &EncodeError{Format: FormatBMP, Reason: "write failed", Err: err}
	}
	return nil
}
