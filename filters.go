package pictor

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"

	"github.com/pictorlab/pictor/internal/codec"
	"github.com/pictorlab/pictor/internal/colormode"
)

// Blur returns the image convolved with a Gaussian kernel of the given
// radius. A radius of zero or less returns a plain copy. The result keeps
// the receiver's color mode.
func (img *Image) Blur(radius float64) (*Image, error) {
	if img.buf.ZeroArea() {
		return nil, ErrEmptyImage
	}
	if radius <= 0 {
		return img.Copy(), nil
	}
	src, err := codec.ToImage(img.buf, img.mode)
	if err != nil {
		return nil, err
	}
	return img.fromFiltered(blur.Gaussian(src, radius))
}

// Sharpen returns the image sharpened with an unsharp-style convolution
// kernel. The result keeps the receiver's color mode.
func (img *Image) Sharpen() (*Image, error) {
	if img.buf.ZeroArea() {
		return nil, ErrEmptyImage
	}
	src, err := codec.ToImage(img.buf, img.mode)
	if err != nil {
		return nil, err
	}
	return img.fromFiltered(effect.Sharpen(src))
}

// fromFiltered brings a filtered stdlib image back into the engine and
// restores the receiver's color mode.
func (img *Image) fromFiltered(filtered image.Image) (*Image, error) {
	buf, mode, err := codec.FromImage(filtered)
	if err != nil {
		return nil, err
	}
	if mode != img.mode {
		buf, err = colormode.Convert(buf, mode, img.mode)
		if err != nil {
			return nil, err
		}
	}
	return img.derived(buf), nil
}
