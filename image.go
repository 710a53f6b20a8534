package pictor

import (
	"fmt"
	"image/color"

	"github.com/pictorlab/pictor/internal/codec"
	"github.com/pictorlab/pictor/internal/colormode"
	"github.com/pictorlab/pictor/internal/geometry"
	"github.com/pictorlab/pictor/internal/pixel"
)

// Mode is the pixel layout an image's buffer is interpreted under.
type Mode = colormode.Mode

// The supported color modes.
const (
	ModeL    = colormode.L
	ModeLA   = colormode.LA
	ModeRGB  = colormode.RGB
	ModeRGBA = colormode.RGBA
)

// Filter is a resampling kernel selector for Resize.
type Filter = geometry.Filter

// The supported resampling filters. DefaultFilter is what Thumbnail uses.
const (
	FilterNearest  = geometry.Nearest
	FilterBilinear = geometry.Bilinear
	FilterBicubic  = geometry.Bicubic
	FilterLanczos  = geometry.Lanczos
	DefaultFilter  = geometry.DefaultFilter
)

// TransposeMethod is a fixed geometric remap selector for Transpose.
type TransposeMethod = geometry.TransposeMethod

// The supported transpose methods. The rotation variants are clockwise and
// equivalent to Rotate with the same angle.
const (
	FlipLeftRight = geometry.FlipLeftRight
	FlipTopBottom = geometry.FlipTopBottom
	Rotate90      = geometry.Rotate90
	Rotate180     = geometry.Rotate180
	Rotate270     = geometry.Rotate270
)

// Rectangle is a crop region: (Left, Top) inclusive, (Right, Bottom)
// exclusive.
type Rectangle = geometry.Rectangle

// Format identifies an image file format.
type Format = codec.Format

// The supported file formats.
const (
	FormatPNG  = codec.FormatPNG
	FormatJPEG = codec.FormatJPEG
	FormatGIF  = codec.FormatGIF
	FormatBMP  = codec.FormatBMP
	FormatTIFF = codec.FormatTIFF
	FormatWebP = codec.FormatWebP
)

// Image is a decoded raster image: a pixel buffer, the color mode describing
// its bytes, and the file format it was decoded from (empty for constructed
// images).
//
// Images follow value semantics: transforms return new Images backed by
// fresh buffers. Thumbnail is the sole in-place mutation.
type Image struct {
	buf    *pixel.Buffer
	mode   Mode
	format Format
}

// New creates a width x height image in the given mode with every pixel set
// to fill. A nil fill uses the mode's default: black for L and RGB, opaque
// black for LA, fully transparent for RGBA.
//
// Returns ErrInvalidDimensions unless both dimensions are positive, and
// ErrAllocTooLarge when the pixel count overflows the allocation limit.
func New(width, height int, mode Mode, fill color.Color) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !mode.Valid() {
		return nil, &ConversionError{From: mode, To: mode}
	}

	buf, err := pixel.Alloc(width, height, mode.Channels(), mode.BytesPerChannel())
	if err != nil {
		return nil, err
	}

	px := fillPixel(mode, fill)
	if !isZero(px) {
		row := buf.Pix[:buf.Stride]
		for x := 0; x < width; x++ {
			copy(row[x*len(px):], px)
		}
		for y := 1; y < height; y++ {
			copy(buf.Pix[y*buf.Stride:(y+1)*buf.Stride], row)
		}
	}

	return &Image{buf: buf, mode: mode}, nil
}

// fillPixel maps a fill color onto one pixel's bytes in the given mode.
func fillPixel(mode Mode, fill color.Color) []byte {
	var r, g, b, a uint8
	switch mode {
	case ModeLA:
		a = 0xff
	case ModeRGBA:
		a = 0
	}
	if fill != nil {
		n := color.NRGBAModel.Convert(fill).(color.NRGBA)
		r, g, b, a = n.R, n.G, n.B, n.A
	}

	switch mode {
	case ModeL:
		return []byte{colormode.Luminance(r, g, b)}
	case ModeLA:
		return []byte{colormode.Luminance(r, g, b), a}
	case ModeRGB:
		return []byte{r, g, b}
	default:
		return []byte{r, g, b, a}
	}
}

func isZero(p []byte) bool {
	for _, v := range p {
		if v != 0 {
			return false
		}
	}
	return true
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.buf.W }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.buf.H }

// Size returns (width, height).
func (img *Image) Size() (int, int) { return img.buf.W, img.buf.H }

// Mode returns the color mode of the image.
func (img *Image) Mode() Mode { return img.mode }

// Format returns the file format the image was decoded from, or the empty
// string for images built with New or by transforms of such images.
func (img *Image) Format() Format { return img.format }

// Describe returns a one-line human-readable summary of the image.
func (img *Image) Describe() string {
	format := string(img.format)
	if format == "" {
		format = "unknown"
	}
	return fmt.Sprintf("<Image size=%dx%d mode=%s format=%s>", img.buf.W, img.buf.H, img.mode, format)
}

// Copy returns a deep clone sharing no mutable state with the receiver.
func (img *Image) Copy() *Image {
	return &Image{buf: img.buf.Clone(), mode: img.mode, format: img.format}
}

// Pixel returns the raw bytes of the pixel at (x, y) in the image's mode.
// The slice aliases the image's buffer; treat it as read-only unless the
// image is exclusively owned.
func (img *Image) Pixel(x, y int) ([]byte, error) {
	return img.buf.Pixel(x, y)
}

// derived wraps a transformed buffer in a new Image carrying over mode and
// source format.
func (img *Image) derived(buf *pixel.Buffer) *Image {
	return &Image{buf: buf, mode: img.mode, format: img.format}
}
