package pictor

import (
	"github.com/pictorlab/pictor/internal/codec"
	"github.com/pictorlab/pictor/internal/colormode"
	"github.com/pictorlab/pictor/internal/geometry"
	"github.com/pictorlab/pictor/internal/pixel"
)

// The engine error taxonomy. Every failure an operation can return wraps one
// of these sentinels or is one of the structured error types below, so
// callers can branch with errors.Is / errors.As.
var (
	// ErrAllocTooLarge: a requested buffer would exceed the allocation limit.
	ErrAllocTooLarge = pixel.ErrAllocTooLarge
	// ErrOutOfBounds: a row or pixel coordinate outside the buffer geometry.
	ErrOutOfBounds = pixel.ErrOutOfBounds
	// ErrEmptyImage: the operation cannot act on a zero-area image.
	ErrEmptyImage = geometry.ErrEmptyImage
	// ErrInvalidDimensions: a target width or height is not positive.
	ErrInvalidDimensions = geometry.ErrInvalidDimensions
	// ErrInvalidRegion: a crop rectangle is degenerate or out of bounds.
	ErrInvalidRegion = geometry.ErrInvalidRegion
	// ErrUnsupportedAngle: a rotation angle that is not a multiple of 90.
	ErrUnsupportedAngle = geometry.ErrUnsupportedAngle
	// ErrUnknownTranspose: a transpose method outside the defined set.
	ErrUnknownTranspose = geometry.ErrUnknownTranspose
	// ErrUnsupportedConversion: a color mode pair the engine cannot convert.
	ErrUnsupportedConversion = colormode.ErrUnsupportedConversion
	// ErrUnknownFormat: bytes or path that resolve to no supported format.
	ErrUnknownFormat = codec.ErrUnknownFormat
)

// Structured errors carrying context for diagnosis.
type (
	// DecodeError reports a failed decode with format and reason.
	DecodeError = codec.DecodeError
	// EncodeError reports a failed encode with format and reason.
	EncodeError = codec.EncodeError
	// ConversionError reports an unsupported color mode pair.
	ConversionError = colormode.ConversionError
)
