package codec

import (
	"io"

	"golang.org/x/image/tiff"

	"github.com/pictorlab/pictor/internal/colormode"
	"github.com/pictorlab/pictor/internal/pixel"
)

// tiffCodec handles TIFF through golang.org/x/image/tiff. Output uses
// deflate compression with the horizontal-differencing predictor.
type tiffCodec struct{}

func (tiffCodec) Decode(r io.Reader) (*pixel.Buffer, colormode.Mode, error) {
	img, err := tiff.Decode(r)
	if err != nil {
		return nil, 0, &DecodeError{Format: FormatTIFF, Reason: "invalid TIFF stream", Err: err}
	}
	return FromImage(img)
}

func (tiffCodec) Encode(w io.Writer, buf *pixel.Buffer, mode colormode.Mode, opts *Options) error {
	img, err := ToImage(buf, mode)
	if err != nil {
		return &EncodeError{Format: FormatTIFF, Reason: "unsupported color mode", Err: err}
	}
	o := &tiff.Options{Compression: tiff.Deflate, Predictor: true}
	if err := tiff.Encode(w, img, o); err != nil {
		return &EncodeError{Format: FormatTIFF, Reason: "write failed", Err: err}
	}
	return nil
}
