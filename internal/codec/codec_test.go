package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pictorlab/pictor/internal/colormode"
	"github.com/pictorlab/pictor/internal/pixel"
)

// testBuffer builds a small deterministic buffer in the given mode.
func testBuffer(t *testing.T, w, h int, mode colormode.Mode) *pixel.Buffer {
	t.Helper()
	buf, err := pixel.Alloc(w, h, mode.Channels(), mode.BytesPerChannel())
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	ps := mode.PixelSize()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := y*buf.Stride + x*ps
			for c := 0; c < ps; c++ {
				buf.Pix[off+c] = byte(x*53 + y*29 + c*17 + 3)
			}
			if mode.HasAlpha() {
				// Keep alpha away from 0 so straight-alpha bytes survive
				// formats that drop color under full transparency.
				buf.Pix[off+ps-1] |= 0x80
			}
		}
	}
	return buf
}

func encodeTo(t *testing.T, buf *pixel.Buffer, mode colormode.Mode, f Format) []byte {
	t.Helper()
	var out bytes.Buffer
	if err := Encode(&out, buf, mode, f, nil); err != nil {
		t.Fatalf("Encode %s failed: %v", f, err)
	}
	return out.Bytes()
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"png", []byte("\x89PNG\r\n\x1a\n____"), FormatPNG},
		{"jpeg", []byte("\xff\xd8\xff\xe0____"), FormatJPEG},
		{"gif87a", []byte("GIF87a____"), FormatGIF},
		{"gif89a", []byte("GIF89a____"), FormatGIF},
		{"bmp", []byte("BM____"), FormatBMP},
		{"tiff little endian", []byte("II*\x00____"), FormatTIFF},
		{"tiff big endian", []byte("MM\x00*____"), FormatTIFF},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), FormatWebP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sniff(tt.data)
			if err != nil {
				t.Fatalf("Sniff failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSniff_Unknown(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not an image"), []byte("RIFF____WAVE")} {
		if _, err := Sniff(data); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("Sniff(%q): got %v, want ErrUnknownFormat", data, err)
		}
	}
}

func TestByExtension(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"photo.png", FormatPNG},
		{"photo.jpg", FormatJPEG},
		{"photo.JPEG", FormatJPEG},
		{"photo.jpe", FormatJPEG},
		{"a/b/c.gif", FormatGIF},
		{"photo.bmp", FormatBMP},
		{"photo.dib", FormatBMP},
		{"photo.tif", FormatTIFF},
		{"photo.tiff", FormatTIFF},
		{"photo.webp", FormatWebP},
	}
	for _, tt := range tests {
		got, err := ByExtension(tt.path)
		if err != nil {
			t.Fatalf("ByExtension(%q) failed: %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("ByExtension(%q): got %s, want %s", tt.path, got, tt.want)
		}
	}

	for _, path := range []string{"photo.txt", "photo", ""} {
		if _, err := ByExtension(path); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ByExtension(%q): got %v, want ErrUnknownFormat", path, err)
		}
	}
}

func TestDetect_ContentWinsOverExtension(t *testing.T) {
	pngData := encodeTo(t, testBuffer(t, 2, 2, colormode.RGB), colormode.RGB, FormatPNG)

	got, err := Detect("misleading.jpg", pngData)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if got != FormatPNG {
		t.Errorf("got %s, want PNG (content must win over extension)", got)
	}
}

func TestDetect_ExtensionFallback(t *testing.T) {
	got, err := Detect("photo.png", []byte("garbage bytes"))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if got != FormatPNG {
		t.Errorf("got %s, want PNG", got)
	}

	if _, err := Detect("", []byte("garbage bytes")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("no usable source: got %v, want ErrUnknownFormat", err)
	}
	if _, err := Detect("", nil); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("empty everything: got %v, want ErrUnknownFormat", err)
	}
}

func TestFormats(t *testing.T) {
	want := []Format{FormatBMP, FormatGIF, FormatJPEG, FormatPNG, FormatTIFF, FormatWebP}
	got := Formats()
	if len(got) != len(want) {
		t.Fatalf("got %d formats, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

// Lossless formats must return the exact bytes that were encoded. The mode may
// widen (an opaque RGB buffer decodes as the closest mode the container
// stores), so each case states the mode it expects back.
func TestRoundTrip_Lossless(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		mode     colormode.Mode
		wantMode colormode.Mode
	}{
		{"png gray", FormatPNG, colormode.L, colormode.L},
		{"png rgba", FormatPNG, colormode.RGBA, colormode.RGBA},
		{"bmp rgba", FormatBMP, colormode.RGBA, colormode.RGBA},
		{"tiff gray", FormatTIFF, colormode.L, colormode.L},
		{"tiff rgba", FormatTIFF, colormode.RGBA, colormode.RGBA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := testBuffer(t, 5, 4, tt.mode)
			data := encodeTo(t, src, tt.mode, tt.format)

			buf, mode, f, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if f != tt.format {
				t.Errorf("sniffed format: got %s, want %s", f, tt.format)
			}
			if mode != tt.wantMode {
				t.Errorf("mode: got %s, want %s", mode, tt.wantMode)
			}
			if buf.W != src.W || buf.H != src.H {
				t.Fatalf("dimensions: got %dx%d, want %dx%d", buf.W, buf.H, src.W, src.H)
			}
			if !bytes.Equal(buf.Pix, src.Pix) {
				t.Error("pixel data did not survive the round trip")
			}
		})
	}
}

func TestRoundTrip_OpaqueRGBThroughPNG(t *testing.T) {
	src := testBuffer(t, 4, 3, colormode.RGB)
	data := encodeTo(t, src, colormode.RGB, FormatPNG)

	buf, mode, _, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	// An opaque PNG decodes as truecolor with alpha attached by the bridge.
	if mode != colormode.RGBA {
		t.Fatalf("mode: got %s, want RGBA", mode)
	}
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			s, _ := src.Pixel(x, y)
			d, _ := buf.Pixel(x, y)
			if d[0] != s[0] || d[1] != s[1] || d[2] != s[2] || d[3] != 0xff {
				t.Fatalf("pixel (%d,%d): got %v, want %v + opaque alpha", x, y, d, s)
			}
		}
	}
}

func TestRoundTrip_GIFBlackWhite(t *testing.T) {
	// Black and white are present in every quantizer palette, so a bilevel
	// checkerboard survives GIF exactly.
	src, _ := pixel.Alloc(4, 4, 3, 1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x+y)%2 == 0 {
				off := y*src.Stride + x*3
				src.Pix[off], src.Pix[off+1], src.Pix[off+2] = 255, 255, 255
			}
		}
	}

	data := encodeTo(t, src, colormode.RGB, FormatGIF)
	buf, mode, f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if f != FormatGIF {
		t.Errorf("format: got %s, want GIF", f)
	}
	if mode != colormode.RGB {
		t.Fatalf("mode: got %s, want RGB (opaque palette)", mode)
	}
	if !bytes.Equal(buf.Pix, src.Pix) {
		t.Error("checkerboard did not survive the round trip")
	}
}

func TestRoundTrip_JPEGGrayFlatField(t *testing.T) {
	src, _ := pixel.Alloc(16, 16, 1, 1)
	for i := range src.Pix {
		src.Pix[i] = 128
	}

	data := encodeTo(t, src, colormode.L, FormatJPEG)
	buf, mode, f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if f != FormatJPEG {
		t.Errorf("format: got %s, want JPEG", f)
	}
	if mode != colormode.L {
		t.Fatalf("mode: got %s, want L", mode)
	}
	for i, v := range buf.Pix {
		if v < 125 || v > 131 {
			t.Fatalf("byte %d: got %d, want about 128", i, v)
		}
	}
}

// JPEG and GIF cannot keep an alpha channel, so encoding one into them must
// be an explicit error rather than a silent channel drop.
func TestEncode_AlphaRejected(t *testing.T) {
	for _, format := range []Format{FormatJPEG, FormatGIF} {
		for _, mode := range []colormode.Mode{colormode.LA, colormode.RGBA} {
			src := testBuffer(t, 2, 2, mode)
			var out bytes.Buffer
			err := Encode(&out, src, mode, format, nil)
			var encErr *EncodeError
			if !errors.As(err, &encErr) {
				t.Fatalf("%s/%s: got %v, want *EncodeError", format, mode, err)
			}
			if encErr.Format != format {
				t.Errorf("%s/%s: error format %s", format, mode, encErr.Format)
			}
		}
	}
}

func TestEncode_InvalidOptions(t *testing.T) {
	src := testBuffer(t, 2, 2, colormode.RGB)

	var out bytes.Buffer
	opts := DefaultOptions()
	opts.JPEGQuality = 0
	var encErr *EncodeError
	if err := Encode(&out, src, colormode.RGB, FormatJPEG, opts); !errors.As(err, &encErr) {
		t.Errorf("quality 0: got %v, want *EncodeError", err)
	}

	opts = DefaultOptions()
	opts.GIFColors = 300
	if err := Encode(&out, src, colormode.RGB, FormatGIF, opts); !errors.As(err, &encErr) {
		t.Errorf("palette 300: got %v, want *EncodeError", err)
	}
}

func TestDecode_Truncated(t *testing.T) {
	full := encodeTo(t, testBuffer(t, 8, 8, colormode.RGB), colormode.RGB, FormatPNG)
	truncated := full[:len(full)/2]

	_, _, _, err := Decode(truncated)
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("got %v, want *DecodeError", err)
	}
	if decErr.Format != FormatPNG {
		t.Errorf("error format: got %s, want PNG", decErr.Format)
	}
}

func TestDecodeAs_UnknownFormat(t *testing.T) {
	if _, _, err := DecodeAs([]byte("x"), Format("AVIF")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("got %v, want ErrUnknownFormat", err)
	}
	var out bytes.Buffer
	if err := Encode(&out, testBuffer(t, 1, 1, colormode.L), colormode.L, Format("AVIF"), nil); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("encode: got %v, want ErrUnknownFormat", err)
	}
}
