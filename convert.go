package pictor

import "github.com/pictorlab/pictor/internal/colormode"

// PaletteKind selects how Quantize obtains its palette.
type PaletteKind = colormode.PaletteKind

const (
	// PaletteWeb is the fixed 216-entry web-safe palette.
	PaletteWeb = colormode.PaletteWeb
	// PaletteAdaptive builds a palette from the image with median-cut.
	PaletteAdaptive = colormode.PaletteAdaptive
)

// ParseMode resolves a mode name ("L", "LA", "RGB", "RGBA") to its Mode.
func ParseMode(name string) (Mode, error) {
	return colormode.Parse(name)
}

// Convert remaps the image into the given color mode and returns the result
// as a new Image. Converting to the current mode returns a deep copy, never
// the receiver.
//
// Adding an alpha channel sets it fully opaque; dropping one discards it
// without compositing. Color-to-gray uses the BT.601 luminance weights with
// integer rounding. Unsupported pairs fail with a ConversionError.
func (img *Image) Convert(mode Mode) (*Image, error) {
	buf, err := colormode.Convert(img.buf, img.mode, mode)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf, mode: mode, format: img.format}, nil
}

// ConvertMatrix converts the image to RGB through an affine channel matrix
// of 4 elements (applied to the grayscale reduction) or 12 elements (a full
// RGB-to-RGB affine transform). Channel results are clamped to [0, 255].
func (img *Image) ConvertMatrix(matrix []float64) (*Image, error) {
	buf, err := colormode.ConvertMatrix(img.buf, img.mode, ModeRGB, matrix)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf, mode: ModeRGB, format: img.format}, nil
}

// Bilevel reduces the image to pure black and white, returned as a new
// grayscale (L) Image. With dither enabled, quantization error is diffused
// with the Floyd-Steinberg kernel; otherwise values above 127 become white.
func (img *Image) Bilevel(dither bool) (*Image, error) {
	buf, err := colormode.Bilevel(img.buf, img.mode, dither)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf, mode: ModeL, format: img.format}, nil
}

// Quantize reduces the image to at most colors palette entries (clamped to
// [2, 256] for the adaptive palette) and returns the materialized RGB
// result. With dither enabled, Floyd-Steinberg error diffusion smooths the
// banding that hard nearest-color snapping produces.
func (img *Image) Quantize(kind PaletteKind, colors int, dither bool) (*Image, error) {
	buf, err := colormode.Quantize(img.buf, img.mode, kind, colors, dither)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf, mode: ModeRGB, format: img.format}, nil
}
