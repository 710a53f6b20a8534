package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"sort"

	"github.com/pictorlab/pictor/internal/colormode"
	"github.com/pictorlab/pictor/internal/pixel"
)

// Format identifies a supported image file format.
type Format string

const (
	FormatPNG  Format = "PNG"
	FormatJPEG Format = "JPEG"
	FormatGIF  Format = "GIF"
	FormatBMP  Format = "BMP"
	FormatTIFF Format = "TIFF"
	FormatWebP Format = "WEBP"
)

// ErrUnknownFormat is returned when neither content sniffing nor the file
// extension resolves to a supported format.
var ErrUnknownFormat = errors.New("codec: unknown image format")

// DecodeError reports a failed decode with the format and reason attached.
type DecodeError struct {
	Format Format
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("codec: decode %s: %s: %v", e.Format, e.Reason, e.Err)
	}
	return fmt.Sprintf("codec: decode %s: %s", e.Format, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a failed encode with the format and reason attached.
type EncodeError struct {
	Format Format
	Reason string
	Err    error
}

func (e *EncodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("codec: encode %s: %s: %v", e.Format, e.Reason, e.Err)
	}
	return fmt.Sprintf("codec: encode %s: %s", e.Format, e.Reason)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Options carries per-format encoding parameters. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	// JPEGQuality is the JPEG quality on the 1-100 scale.
	JPEGQuality int
	// PNGCompression selects the PNG compression level.
	PNGCompression png.CompressionLevel
	// GIFColors is the maximum palette size for GIF output (1-256).
	GIFColors int
	// WebPQuality is the lossy WebP quality on the 0-100 scale.
	WebPQuality float32
	// WebPLossless switches WebP output to lossless mode.
	WebPLossless bool
}

// DefaultOptions returns the engine defaults: JPEG quality 95, default PNG
// compression, a full 256-color GIF palette, lossy WebP at quality 90.
func DefaultOptions() *Options {
	return &Options{
		JPEGQuality:    95,
		PNGCompression: png.DefaultCompression,
		GIFColors:      256,
		WebPQuality:    90,
	}
}

// Codec is one format's decode/encode capability pair.
type Codec interface {
	// Decode reads an encoded stream into a buffer and its color mode.
	Decode(r io.Reader) (*pixel.Buffer, colormode.Mode, error)
	// Encode writes the buffer to w. opts is never nil.
	Encode(w io.Writer, buf *pixel.Buffer, mode colormode.Mode, opts *Options) error
}

// registry is the process-wide format dispatch table. It is written exactly
// once, here, and must never be mutated at call time.
var registry = map[Format]Codec{
	FormatPNG:  pngCodec{},
	FormatJPEG: jpegCodec{},
	FormatGIF:  gifCodec{},
	FormatBMP:  bmpCodec{},
	FormatTIFF: tiffCodec{},
	FormatWebP: webpCodec{},
}

// Lookup returns the codec registered for a format.
func Lookup(f Format) (Codec, bool) {
	c, ok := registry[f]
	return c, ok
}

// Formats lists the supported formats in stable order.
func Formats() []Format {
	out := make([]Format, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Decode sniffs the format of data and decodes it.
func Decode(data []byte) (*pixel.Buffer, colormode.Mode, Format, error) {
	f, err := Sniff(data)
	if err != nil {
		return nil, 0, "", err
	}
	buf, mode, err := DecodeAs(data, f)
	return buf, mode, f, err
}

// DecodeAs decodes data as the given format.
func DecodeAs(data []byte, f Format) (*pixel.Buffer, colormode.Mode, error) {
	c, ok := registry[f]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	buf, mode, err := c.Decode(bytes.NewReader(data))
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			return nil, 0, err
		}
		return nil, 0, &DecodeError{Format: f, Reason: "malformed stream", Err: err}
	}
	return buf, mode, nil
}

// Encode writes buf to w in the given format. A nil opts uses
// DefaultOptions.
func Encode(w io.Writer, buf *pixel.Buffer, mode colormode.Mode, f Format, opts *Options) error {
	c, ok := registry[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	return c.Encode(w, buf, mode, opts)
}
