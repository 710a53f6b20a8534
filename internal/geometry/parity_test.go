package geometry

import (
	"bytes"
	"fmt"
	"image"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/pictorlab/pictor/internal/pixel"
)

// patternNRGBA builds a deterministic asymmetric RGBA test pattern.
func patternNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = byte(i*37 + 11)
	}
	return img
}

// bufferOf copies an NRGBA image into an RGBA-mode buffer. Both store straight
// alpha with a W*4 row layout, so the bytes transfer directly.
func bufferOf(t *testing.T, img *image.NRGBA) *pixel.Buffer {
	t.Helper()
	w, h := img.Rect.Dx(), img.Rect.Dy()
	buf, err := pixel.Alloc(w, h, 4, 1)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	for y := 0; y < h; y++ {
		copy(buf.Pix[y*buf.Stride:y*buf.Stride+w*4], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}
	return buf
}

func assertMatchesNRGBA(t *testing.T, buf *pixel.Buffer, want *image.NRGBA) {
	t.Helper()
	w, h := want.Rect.Dx(), want.Rect.Dy()
	if buf.W != w || buf.H != h {
		t.Fatalf("dimensions: got %dx%d, want %dx%d", buf.W, buf.H, w, h)
	}
	for y := 0; y < h; y++ {
		got := buf.Pix[y*buf.Stride : y*buf.Stride+w*4]
		ref := want.Pix[y*want.Stride : y*want.Stride+w*4]
		if !bytes.Equal(got, ref) {
			t.Fatalf("row %d differs:\ngot  %v\nwant %v", y, got, ref)
		}
	}
}

func TestTranspose_MatchesImaging(t *testing.T) {
	src := patternNRGBA(7, 5)
	buf := bufferOf(t, src)

	// imaging's rotations run counter-clockwise, so its Rotate270 is this
	// package's clockwise Rotate90 and vice versa.
	tests := []struct {
		method TransposeMethod
		ref    func(image.Image) *image.NRGBA
	}{
		{FlipLeftRight, imaging.FlipH},
		{FlipTopBottom, imaging.FlipV},
		{Rotate90, imaging.Rotate270},
		{Rotate180, imaging.Rotate180},
		{Rotate270, imaging.Rotate90},
	}

	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			got, err := Transpose(buf, tt.method)
			if err != nil {
				t.Fatalf("Transpose failed: %v", err)
			}
			assertMatchesNRGBA(t, got, tt.ref(src))
		})
	}
}

func TestRotate_MatchesImaging(t *testing.T) {
	src := patternNRGBA(6, 9)
	buf := bufferOf(t, src)

	tests := []struct {
		angle int
		ref   func(image.Image) *image.NRGBA
	}{
		{90, imaging.Rotate270},
		{180, imaging.Rotate180},
		{270, imaging.Rotate90},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("angle %d", tt.angle), func(t *testing.T) {
			got, err := Rotate(buf, tt.angle)
			if err != nil {
				t.Fatalf("Rotate failed: %v", err)
			}
			assertMatchesNRGBA(t, got, tt.ref(src))
		})
	}
}

func TestCrop_MatchesImaging(t *testing.T) {
	src := patternNRGBA(10, 8)
	buf := bufferOf(t, src)

	rects := []Rectangle{
		{Left: 2, Top: 1, Right: 9, Bottom: 7},
		{Left: 0, Top: 0, Right: 10, Bottom: 8},
		{Left: 4, Top: 3, Right: 5, Bottom: 4},
	}
	for _, r := range rects {
		got, err := Crop(buf, r)
		if err != nil {
			t.Fatalf("Crop(%+v) failed: %v", r, err)
		}
		ref := imaging.Crop(src, image.Rect(r.Left, r.Top, r.Right, r.Bottom))
		assertMatchesNRGBA(t, got, ref)
	}
}
