package geometry

import (
	"fmt"
	"math"
)

// Filter selects the resampling kernel used when mapping pixels between
// differently sized images.
type Filter int

const (
	// Nearest picks the closest source pixel. Fastest, blockiest.
	Nearest Filter = iota
	// Bilinear interpolates the four surrounding source pixels.
	Bilinear
	// Bicubic is the Catmull-Rom cubic (B=0, C=0.5) over a 4x4 neighborhood.
	Bicubic
	// Lanczos is the windowed-sinc kernel with radius 3. Sharpest, slowest.
	Lanczos
)

// DefaultFilter is used when an operation needs a filter and the caller did
// not choose one (thumbnail in particular).
const DefaultFilter = Bilinear

func (f Filter) String() string {
	switch f {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	case Bicubic:
		return "bicubic"
	case Lanczos:
		return "lanczos"
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// Valid reports whether f is one of the defined filters.
func (f Filter) Valid() bool {
	return f >= Nearest && f <= Lanczos
}

// kernel is a resampling kernel: its support radius and its weight function.
type kernel struct {
	support float64
	at      func(x float64) float64
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

// kernelFor returns the kernel of a filter. Nearest has no kernel; it is
// handled as a direct remap in Resize.
func kernelFor(f Filter) kernel {
	switch f {
	case Bilinear:
		return kernel{support: 1.0, at: func(x float64) float64 {
			x = math.Abs(x)
			if x < 1.0 {
				return 1.0 - x
			}
			return 0
		}}
	case Bicubic:
		return kernel{support: 2.0, at: func(x float64) float64 {
			x = math.Abs(x)
			if x < 1.0 {
				return (1.5*x-2.5)*x*x + 1.0
			}
			if x < 2.0 {
				return ((-0.5*x+2.5)*x-4.0)*x + 2.0
			}
			return 0
		}}
	case Lanczos:
		return kernel{support: 3.0, at: func(x float64) float64 {
			x = math.Abs(x)
			if x < 3.0 {
				return sinc(x) * sinc(x/3.0)
			}
			return 0
		}}
	}
	return kernel{}
}
