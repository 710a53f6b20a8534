package colormode

import (
	"errors"
	"testing"

	"github.com/pictorlab/pictor/internal/pixel"
)

// fillBuffer creates a buffer in the given mode with every pixel set to px.
func fillBuffer(t *testing.T, w, h int, mode Mode, px []byte) *pixel.Buffer {
	t.Helper()
	if len(px) != mode.PixelSize() {
		t.Fatalf("pixel size mismatch: got %d bytes for mode %s", len(px), mode)
	}
	buf, err := pixel.Alloc(w, h, mode.Channels(), mode.BytesPerChannel())
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := y*buf.Stride + x*buf.PixelSize
			copy(buf.Pix[off:], px)
		}
	}
	return buf
}

func TestModeProperties(t *testing.T) {
	tests := []struct {
		mode     Mode
		name     string
		channels int
		alpha    bool
	}{
		{L, "L", 1, false},
		{LA, "LA", 2, true},
		{RGB, "RGB", 3, false},
		{RGBA, "RGBA", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.name {
				t.Errorf("String: got %q, want %q", got, tt.name)
			}
			if got := tt.mode.Channels(); got != tt.channels {
				t.Errorf("Channels: got %d, want %d", got, tt.channels)
			}
			if got := tt.mode.HasAlpha(); got != tt.alpha {
				t.Errorf("HasAlpha: got %v, want %v", got, tt.alpha)
			}
			parsed, err := Parse(tt.name)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.name, err)
			}
			if parsed != tt.mode {
				t.Errorf("Parse(%q): got %v, want %v", tt.name, parsed, tt.mode)
			}
		})
	}

	if _, err := Parse("CMYK"); err == nil {
		t.Error("Parse(CMYK) should fail")
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"pure red", 255, 0, 0, 76},
		{"pure green", 0, 255, 0, 150},
		{"pure blue", 0, 0, 255, 29},
		{"mid gray", 128, 128, 128, 128},
		{"mixed", 100, 150, 200, 141},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Luminance(%d,%d,%d): got %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestConvert_AllPairs(t *testing.T) {
	tests := []struct {
		name     string
		from, to Mode
		src      []byte
		want     []byte
	}{
		{"L to LA", L, LA, []byte{80}, []byte{80, 255}},
		{"L to RGB", L, RGB, []byte{80}, []byte{80, 80, 80}},
		{"L to RGBA", L, RGBA, []byte{80}, []byte{80, 80, 80, 255}},
		{"LA to L", LA, L, []byte{80, 40}, []byte{80}},
		{"LA to RGB", LA, RGB, []byte{80, 40}, []byte{80, 80, 80}},
		{"LA to RGBA", LA, RGBA, []byte{80, 40}, []byte{80, 80, 80, 40}},
		{"RGB to L", RGB, L, []byte{100, 150, 200}, []byte{141}},
		{"RGB to LA", RGB, LA, []byte{100, 150, 200}, []byte{141, 255}},
		{"RGB to RGBA", RGB, RGBA, []byte{100, 150, 200}, []byte{100, 150, 200, 255}},
		{"RGBA to L", RGBA, L, []byte{100, 150, 200, 40}, []byte{141}},
		{"RGBA to LA", RGBA, LA, []byte{100, 150, 200, 40}, []byte{141, 40}},
		{"RGBA to RGB", RGBA, RGB, []byte{100, 150, 200, 40}, []byte{100, 150, 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fillBuffer(t, 3, 2, tt.from, tt.src)
			dst, err := Convert(src, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if dst.W != src.W || dst.H != src.H {
				t.Errorf("dimensions changed: got %dx%d", dst.W, dst.H)
			}
			if dst.PixelSize != tt.to.PixelSize() {
				t.Errorf("PixelSize: got %d, want %d", dst.PixelSize, tt.to.PixelSize())
			}
			got, err := dst.Pixel(1, 1)
			if err != nil {
				t.Fatalf("Pixel failed: %v", err)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("channel %d: got %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestConvert_IdentityClones(t *testing.T) {
	src := fillBuffer(t, 2, 2, RGB, []byte{10, 20, 30})
	dst, err := Convert(src, RGB, RGB)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if dst == src {
		t.Fatal("identity conversion returned the source buffer")
	}
	dst.Pix[0] = 99
	if src.Pix[0] == 99 {
		t.Error("identity conversion shares storage with source")
	}
}

func TestConvert_RoundTripWideningIsLossless(t *testing.T) {
	src := fillBuffer(t, 4, 4, L, []byte{173})
	rgb, err := Convert(src, L, RGB)
	if err != nil {
		t.Fatalf("L->RGB failed: %v", err)
	}
	back, err := Convert(rgb, RGB, L)
	if err != nil {
		t.Fatalf("RGB->L failed: %v", err)
	}
	for i := 0; i < len(src.Pix); i++ {
		if back.Pix[i] != src.Pix[i] {
			t.Fatalf("byte %d: got %d, want %d", i, back.Pix[i], src.Pix[i])
		}
	}
}

func TestConvert_InvalidMode(t *testing.T) {
	src := fillBuffer(t, 1, 1, L, []byte{0})
	_, err := Convert(src, L, Mode(42))
	if !errors.Is(err, ErrUnsupportedConversion) {
		t.Fatalf("got %v, want ErrUnsupportedConversion", err)
	}
	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatal("error is not a *ConversionError")
	}
	if convErr.From != L || convErr.To != Mode(42) {
		t.Errorf("ConversionError fields: got %v->%v", convErr.From, convErr.To)
	}
}

func TestConvertMatrix_Gray(t *testing.T) {
	// A 4-element matrix tints grayscale: here a pure red tint at half gain.
	src := fillBuffer(t, 2, 2, L, []byte{200})
	dst, err := ConvertMatrix(src, L, RGB, []float64{0.5, 0, 0, 0})
	if err != nil {
		t.Fatalf("ConvertMatrix failed: %v", err)
	}
	got, _ := dst.Pixel(0, 0)
	if got[0] != 100 || got[1] != 0 || got[2] != 0 {
		t.Errorf("got (%d,%d,%d), want (100,0,0)", got[0], got[1], got[2])
	}
}

func TestConvertMatrix_RGBIdentity(t *testing.T) {
	src := fillBuffer(t, 2, 2, RGB, []byte{10, 20, 30})
	identity := []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
	dst, err := ConvertMatrix(src, RGB, RGB, identity)
	if err != nil {
		t.Fatalf("ConvertMatrix failed: %v", err)
	}
	got, _ := dst.Pixel(1, 0)
	if got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Errorf("got (%d,%d,%d), want (10,20,30)", got[0], got[1], got[2])
	}
}

func TestConvertMatrix_Clamps(t *testing.T) {
	src := fillBuffer(t, 1, 1, RGB, []byte{200, 200, 200})
	m := []float64{
		2, 0, 0, 0, // overflows 255
		0, -1, 0, 0, // underflows 0
		0, 0, 1, 0,
	}
	dst, err := ConvertMatrix(src, RGB, RGB, m)
	if err != nil {
		t.Fatalf("ConvertMatrix failed: %v", err)
	}
	got, _ := dst.Pixel(0, 0)
	if got[0] != 255 || got[1] != 0 || got[2] != 200 {
		t.Errorf("got (%d,%d,%d), want (255,0,200)", got[0], got[1], got[2])
	}
}

func TestConvertMatrix_Rejects(t *testing.T) {
	src := fillBuffer(t, 1, 1, RGB, []byte{0, 0, 0})

	if _, err := ConvertMatrix(src, RGB, RGB, make([]float64, 5)); !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("bad length: got %v, want ErrUnsupportedConversion", err)
	}
	if _, err := ConvertMatrix(src, RGB, RGBA, make([]float64, 12)); !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("non-RGB target: got %v, want ErrUnsupportedConversion", err)
	}
}

func TestBilevel_Threshold(t *testing.T) {
	buf, _ := pixel.Alloc(4, 1, 1, 1)
	copy(buf.Pix, []byte{0, 127, 128, 255})

	out, err := Bilevel(buf, L, false)
	if err != nil {
		t.Fatalf("Bilevel failed: %v", err)
	}
	want := []byte{0, 0, 255, 255}
	for i, v := range want {
		if out.Pix[i] != v {
			t.Errorf("pixel %d: got %d, want %d", i, out.Pix[i], v)
		}
	}
}

func TestBilevel_DitherPreservesAverage(t *testing.T) {
	// A uniform mid-gray field should dither to roughly half black, half
	// white. Exact pattern depends on the diffusion order; only the density
	// is checked.
	src := fillBuffer(t, 64, 64, L, []byte{128})
	out, err := Bilevel(src, L, true)
	if err != nil {
		t.Fatalf("Bilevel failed: %v", err)
	}

	var white int
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			v := out.Pix[y*out.Stride+x]
			if v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d) is %d, want 0 or 255", x, y, v)
			}
			if v == 255 {
				white++
			}
		}
	}
	total := out.W * out.H
	ratio := float64(white) / float64(total)
	if ratio < 0.40 || ratio > 0.60 {
		t.Errorf("white ratio %.2f, want about 0.50", ratio)
	}
}

func TestQuantize_WebSnapsToCube(t *testing.T) {
	src := fillBuffer(t, 3, 3, RGB, []byte{100, 40, 210})
	out, err := Quantize(src, RGB, PaletteWeb, 0, false)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	got, _ := out.Pixel(1, 1)
	// Nearest web-safe levels: 100->102, 40->51, 210->204.
	if got[0] != 102 || got[1] != 51 || got[2] != 204 {
		t.Errorf("got (%d,%d,%d), want (102,51,204)", got[0], got[1], got[2])
	}
}

func TestQuantize_AdaptiveKeepsDistinctColors(t *testing.T) {
	// Two flat color halves and a 2-color adaptive palette: both colors must
	// survive exactly.
	buf, _ := pixel.Alloc(4, 2, 3, 1)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			off := y*buf.Stride + x*3
			if x < 2 {
				buf.Pix[off], buf.Pix[off+1], buf.Pix[off+2] = 255, 0, 0
			} else {
				buf.Pix[off], buf.Pix[off+1], buf.Pix[off+2] = 0, 0, 255
			}
		}
	}

	out, err := Quantize(buf, RGB, PaletteAdaptive, 2, false)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	red, _ := out.Pixel(0, 0)
	blue, _ := out.Pixel(3, 1)
	if red[0] != 255 || red[1] != 0 || red[2] != 0 {
		t.Errorf("red half: got (%d,%d,%d)", red[0], red[1], red[2])
	}
	if blue[0] != 0 || blue[1] != 0 || blue[2] != 255 {
		t.Errorf("blue half: got (%d,%d,%d)", blue[0], blue[1], blue[2])
	}
}

func TestQuantize_DitherStaysOnPalette(t *testing.T) {
	src := fillBuffer(t, 8, 8, RGB, []byte{120, 60, 180})
	out, err := Quantize(src, RGB, PaletteWeb, 0, true)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			px, _ := out.Pixel(x, y)
			for c := 0; c < 3; c++ {
				if px[c]%51 != 0 {
					t.Fatalf("pixel (%d,%d) channel %d is %d, not a web-safe level", x, y, c, px[c])
				}
			}
		}
	}
}
