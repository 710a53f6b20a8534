package colormode

import "fmt"

// Mode identifies a pixel layout: which channels a pixel has and in what
// order. All current modes use one byte per channel.
type Mode uint8

const (
	// L is single-channel grayscale (luminance).
	L Mode = iota
	// LA is grayscale with an alpha channel.
	LA
	// RGB is three-channel truecolor.
	RGB
	// RGBA is truecolor with a straight (non-premultiplied) alpha channel.
	RGBA

	modeCount
)

// Channels returns the number of channels per pixel.
func (m Mode) Channels() int {
	switch m {
	case L:
		return 1
	case LA:
		return 2
	case RGB:
		return 3
	case RGBA:
		return 4
	}
	return 0
}

// BytesPerChannel returns the storage size of one channel. All current modes
// are 8-bit.
func (m Mode) BytesPerChannel() int {
	if m.Valid() {
		return 1
	}
	return 0
}

// PixelSize returns the byte size of one pixel in this mode.
func (m Mode) PixelSize() int {
	return m.Channels() * m.BytesPerChannel()
}

// HasAlpha reports whether the mode carries an alpha channel. The alpha
// channel is always the last channel of the pixel.
func (m Mode) HasAlpha() bool {
	return m == LA || m == RGBA
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m < modeCount
}

// String returns the conventional short name of the mode ("L", "LA", "RGB",
// "RGBA").
func (m Mode) String() string {
	switch m {
	case L:
		return "L"
	case LA:
		return "LA"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Parse resolves a mode name as accepted by the public API. Returns a
// ConversionError with an invalid target if the name is unknown.
func Parse(name string) (Mode, error) {
	switch name {
	case "L":
		return L, nil
	case "LA":
		return LA, nil
	case "RGB":
		return RGB, nil
	case "RGBA":
		return RGBA, nil
	}
	return modeCount, fmt.Errorf("colormode: unknown mode %q", name)
}
