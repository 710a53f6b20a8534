// Command pictor is a one-shot image converter and inspector built on the
// pictor engine.
//
// Usage:
//
//	pictor [flags] input [output]
//
// Transforms are applied in a fixed order: crop, rotate, flip, resize or
// thumbnail, mode conversion, blur/sharpen. With no output path the tool
// prints a description of the (transformed) image and exits.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pictorlab/pictor"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type flags struct {
	resize    string
	thumbnail string
	filter    string
	crop      string
	rotate    int
	flip      string
	mode      string
	blur      float64
	sharpen   bool
	quality   int
	lossless  bool
	info      bool
	verbose   bool
	version   bool
}

func main() {
	var f flags
	flag.StringVar(&f.resize, "resize", "", "resize to WxH (e.g. 800x600)")
	flag.StringVar(&f.thumbnail, "thumbnail", "", "fit within WxH preserving aspect ratio")
	flag.StringVar(&f.filter, "filter", "bilinear", "resampling filter: nearest, bilinear, bicubic, lanczos")
	flag.StringVar(&f.crop, "crop", "", "crop to left,top,right,bottom")
	flag.IntVar(&f.rotate, "rotate", 0, "rotate clockwise by 90, 180 or 270 degrees")
	flag.StringVar(&f.flip, "flip", "", "mirror the image: h (horizontal) or v (vertical)")
	flag.StringVar(&f.mode, "mode", "", "convert color mode: L, LA, RGB or RGBA")
	flag.Float64Var(&f.blur, "blur", 0, "gaussian blur radius")
	flag.BoolVar(&f.sharpen, "sharpen", false, "sharpen the image")
	flag.IntVar(&f.quality, "quality", 95, "JPEG/WebP quality (1-100)")
	flag.BoolVar(&f.lossless, "lossless", false, "lossless WebP output")
	flag.BoolVar(&f.info, "info", false, "print image info and exit")
	flag.BoolVar(&f.verbose, "verbose", false, "debug logging")
	flag.BoolVar(&f.version, "version", false, "print version and exit")
	flag.Parse()

	if f.version {
		fmt.Printf("pictor %s (%s)\n", Version, GitCommit)
		return
	}

	level := zerolog.InfoLevel
	if f.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if flag.NArg() < 1 {
		log.Fatal().Msg("usage: pictor [flags] input [output]")
	}
	input := flag.Arg(0)

	img, err := pictor.Open(input)
	if err != nil {
		log.Fatal().Err(err).Str("path", input).Msg("failed to open image")
	}
	log.Debug().Str("image", img.Describe()).Msg("decoded")

	if img, err = apply(img, f, log); err != nil {
		log.Fatal().Err(err).Msg("transform failed")
	}

	if f.info || flag.NArg() < 2 {
		fmt.Println(img.Describe())
		return
	}

	output := flag.Arg(1)
	opts := []pictor.EncodeOption{
		pictor.JPEGQuality(f.quality),
		pictor.WebPQuality(float32(f.quality)),
	}
	if f.lossless {
		opts = append(opts, pictor.WebPLossless())
	}
	if err := img.Save(output, opts...); err != nil {
		log.Fatal().Err(err).Str("path", output).Msg("failed to save image")
	}
	log.Info().Str("path", output).Str("image", img.Describe()).Msg("saved")
}

// apply runs the requested transforms in their fixed order.
func apply(img *pictor.Image, f flags, log zerolog.Logger) (*pictor.Image, error) {
	var err error

	if f.crop != "" {
		var rect pictor.Rectangle
		if _, err = fmt.Sscanf(f.crop, "%d,%d,%d,%d", &rect.Left, &rect.Top, &rect.Right, &rect.Bottom); err != nil {
			return nil, fmt.Errorf("invalid -crop %q: %w", f.crop, err)
		}
		if img, err = img.Crop(rect); err != nil {
			return nil, err
		}
		log.Debug().Str("image", img.Describe()).Msg("cropped")
	}

	if f.rotate != 0 {
		if img, err = img.Rotate(f.rotate); err != nil {
			return nil, err
		}
		log.Debug().Int("angle", f.rotate).Msg("rotated")
	}

	switch f.flip {
	case "":
	case "h":
		if img, err = img.Transpose(pictor.FlipLeftRight); err != nil {
			return nil, err
		}
	case "v":
		if img, err = img.Transpose(pictor.FlipTopBottom); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid -flip %q: want h or v", f.flip)
	}

	if f.resize != "" {
		w, h, err := parseSize(f.resize)
		if err != nil {
			return nil, err
		}
		filter, err := parseFilter(f.filter)
		if err != nil {
			return nil, err
		}
		if img, err = img.Resize(w, h, filter); err != nil {
			return nil, err
		}
		log.Debug().Str("image", img.Describe()).Msg("resized")
	}

	if f.thumbnail != "" {
		w, h, err := parseSize(f.thumbnail)
		if err != nil {
			return nil, err
		}
		if err = img.Thumbnail(w, h); err != nil {
			return nil, err
		}
		log.Debug().Str("image", img.Describe()).Msg("thumbnailed")
	}

	if f.mode != "" {
		mode, err := pictor.ParseMode(f.mode)
		if err != nil {
			return nil, err
		}
		if img, err = img.Convert(mode); err != nil {
			return nil, err
		}
		log.Debug().Str("mode", f.mode).Msg("converted")
	}

	if f.blur > 0 {
		if img, err = img.Blur(f.blur); err != nil {
			return nil, err
		}
	}
	if f.sharpen {
		if img, err = img.Sharpen(); err != nil {
			return nil, err
		}
	}

	return img, nil
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q: want WxH", s)
	}
	var w, h int
	if _, err := fmt.Sscanf(parts[0]+" "+parts[1], "%d %d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return w, h, nil
}

func parseFilter(s string) (pictor.Filter, error) {
	switch strings.ToLower(s) {
	case "nearest":
		return pictor.FilterNearest, nil
	case "bilinear":
		return pictor.FilterBilinear, nil
	case "bicubic":
		return pictor.FilterBicubic, nil
	case "lanczos":
		return pictor.FilterLanczos, nil
	}
	return 0, fmt.Errorf("unknown filter %q", s)
}
