package geometry

import "errors"

var (
	// ErrEmptyImage is returned by operations that cannot act on a zero-area
	// source.
	ErrEmptyImage = errors.New("geometry: empty image")

	// ErrInvalidDimensions is returned when a target width or height is not
	// positive.
	ErrInvalidDimensions = errors.New("geometry: invalid target dimensions")

	// ErrInvalidRegion is returned when a crop rectangle is degenerate or
	// exceeds the source bounds. Out-of-range rectangles are never clamped.
	ErrInvalidRegion = errors.New("geometry: invalid crop region")

	// ErrUnsupportedAngle is returned by Rotate for any angle that is not a
	// multiple of 90 degrees. Arbitrary-angle rotation is a declared
	// capability boundary of the engine, not a missing feature.
	ErrUnsupportedAngle = errors.New("geometry: unsupported rotation angle")

	// ErrUnknownTranspose is returned by Transpose for a method outside the
	// defined set.
	ErrUnknownTranspose = errors.New("geometry: unknown transpose method")
)
