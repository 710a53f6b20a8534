package pictor

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/pictorlab/pictor/internal/codec"
)

// EncodeOption adjusts per-format encoding parameters.
type EncodeOption func(*codec.Options)

// JPEGQuality sets the JPEG quality (1-100, default 95).
func JPEGQuality(q int) EncodeOption {
	return func(o *codec.Options) { o.JPEGQuality = q }
}

// PNGCompression sets the PNG compression level.
func PNGCompression(level png.CompressionLevel) EncodeOption {
	return func(o *codec.Options) { o.PNGCompression = level }
}

// GIFColors sets the maximum GIF palette size (1-256, default 256).
func GIFColors(n int) EncodeOption {
	return func(o *codec.Options) { o.GIFColors = n }
}

// WebPQuality sets the lossy WebP quality (0-100, default 90).
func WebPQuality(q float32) EncodeOption {
	return func(o *codec.Options) { o.WebPQuality = q }
}

// WebPLossless switches WebP output to lossless mode.
func WebPLossless() EncodeOption {
	return func(o *codec.Options) { o.WebPLossless = true }
}

func buildOptions(opts []EncodeOption) *codec.Options {
	o := codec.DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open reads and decodes the image file at path. The format is resolved by
// sniffing the file content; the extension is only consulted when sniffing
// fails.
func Open(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pictor: open %s: %w", path, err)
	}
	f, err := codec.Detect(path, data)
	if err != nil {
		return nil, err
	}
	buf, mode, err := codec.DecodeAs(data, f)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf, mode: mode, format: f}, nil
}

// Decode decodes an in-memory encoded image, resolving the format from its
// magic bytes.
func Decode(data []byte) (*Image, error) {
	buf, mode, f, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf, mode: mode, format: f}, nil
}

// DecodeAs decodes an in-memory encoded image as the given format.
func DecodeAs(data []byte, format Format) (*Image, error) {
	buf, mode, err := codec.DecodeAs(data, format)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf, mode: mode, format: format}, nil
}

// Save encodes the image to path in the format implied by the path's
// extension.
func (img *Image) Save(path string, opts ...EncodeOption) error {
	f, err := codec.ByExtension(path)
	if err != nil {
		return err
	}
	return img.SaveAs(path, f, opts...)
}

// SaveAs encodes the image to path in an explicit format, ignoring the
// path's extension.
func (img *Image) SaveAs(path string, format Format, opts ...EncodeOption) error {
	var buf bytes.Buffer
	if err := img.Encode(&buf, format, opts...); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("pictor: save %s: %w", path, err)
	}
	return nil
}

// Encode writes the image to w in the given format.
//
// Formats that cannot represent the image's color mode (alpha into JPEG)
// fail with an EncodeError; convert the mode first.
func (img *Image) Encode(w io.Writer, format Format, opts ...EncodeOption) error {
	return codec.Encode(w, img.buf, img.mode, format, buildOptions(opts))
}

// EncodeBytes is Encode into a fresh byte slice.
func (img *Image) EncodeBytes(format Format, opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := img.Encode(&buf, format, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Formats lists the formats the engine can decode and encode.
func Formats() []Format {
	return codec.Formats()
}

// DetectFormat resolves the format of an encoded stream from its magic
// bytes.
func DetectFormat(data []byte) (Format, error) {
	return codec.Sniff(data)
}
