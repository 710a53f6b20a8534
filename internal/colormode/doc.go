// Package colormode defines the supported pixel layouts and the conversions
// between them.
//
// A Mode describes how the bytes of a pixel.Buffer are interpreted: channel
// count, channel order, and bytes per channel. Every buffer in the engine is
// paired with exactly one Mode, and all conversions allocate a fresh buffer
// (identity conversion included) so callers never observe aliasing.
//
// Beyond the plain mode-to-mode conversions the package implements bilevel
// thresholding (with optional Floyd-Steinberg dithering), palette
// quantization against a web-safe or adaptively built palette, and affine
// channel-matrix conversions.
//
// # Luminance
//
// Color-to-gray conversions use the ITU-R BT.601 weights with integer
// rounding:
//
//	L = round(0.299*R + 0.587*G + 0.114*B)
//
// computed in integer arithmetic; the result rounds to nearest, it is not
// truncated.
package colormode
