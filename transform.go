package pictor

import "github.com/pictorlab/pictor/internal/geometry"

// Resize resamples the image to width x height using the given filter and
// returns the result as a new Image.
//
// Returns ErrInvalidDimensions unless both dimensions are positive and
// ErrEmptyImage for a zero-area source.
func (img *Image) Resize(width, height int, filter Filter) (*Image, error) {
	buf, err := geometry.Resize(img.buf, img.mode, width, height, filter)
	if err != nil {
		return nil, err
	}
	return img.derived(buf), nil
}

// Crop extracts the region rect into a new Image of size
// rect.Width() x rect.Height().
//
// The rectangle must lie fully inside the image with positive area;
// violations fail with ErrInvalidRegion rather than being clamped.
func (img *Image) Crop(rect Rectangle) (*Image, error) {
	buf, err := geometry.Crop(img.buf, rect)
	if err != nil {
		return nil, err
	}
	return img.derived(buf), nil
}

// Rotate returns the image rotated clockwise by angle degrees. Only
// multiples of 90 (mod 360) are supported; anything else fails with
// ErrUnsupportedAngle. Rotating by 0 returns a deep copy.
func (img *Image) Rotate(angle int) (*Image, error) {
	buf, err := geometry.Rotate(img.buf, angle)
	if err != nil {
		return nil, err
	}
	return img.derived(buf), nil
}

// Transpose applies one of the fixed geometric remaps and returns the result
// as a new Image.
func (img *Image) Transpose(method TransposeMethod) (*Image, error) {
	buf, err := geometry.Transpose(img.buf, method)
	if err != nil {
		return nil, err
	}
	return img.derived(buf), nil
}

// Thumbnail shrinks (or grows) the image in place to the largest size with
// the same aspect ratio that fits within maxWidth x maxHeight, resampling
// with DefaultFilter. This is the one operation that mutates its receiver:
// the owned buffer is replaced and the old one dropped.
//
// Returns ErrEmptyImage for a zero-area source and ErrInvalidDimensions if
// either bound is not positive. On error the image is left unchanged.
func (img *Image) Thumbnail(maxWidth, maxHeight int) error {
	w, h, err := geometry.FitWithin(img.buf.W, img.buf.H, maxWidth, maxHeight)
	if err != nil {
		return err
	}
	if w == img.buf.W && h == img.buf.H {
		return nil
	}
	buf, err := geometry.Resize(img.buf, img.mode, w, h, DefaultFilter)
	if err != nil {
		return err
	}
	img.buf = buf
	return nil
}
