// Package pictor is an image-processing engine: it owns a decoded raster
// image in memory and provides primitives to load, transform, and re-encode
// it.
//
// An Image pairs a pixel buffer with the color mode describing its layout.
// Transforms follow value semantics: every operation allocates a fresh buffer
// and returns a new Image, leaving the source untouched. Thumbnail is the
// single documented exception; it mutates its receiver in place.
//
//	img, err := pictor.Open("in.jpg")
//	if err != nil {
//	    return err
//	}
//	small, err := img.Resize(800, 600, pictor.FilterLanczos)
//	if err != nil {
//	    return err
//	}
//	if err := small.Save("out.png"); err != nil {
//	    return err
//	}
//
// Invalid input is never repaired by guessing: out-of-range crop rectangles,
// unsupported rotation angles, or alpha channels aimed at formats that cannot
// carry them all fail fast with a typed error. The engine performs no logging
// and keeps no state beyond the Images the caller holds; distinct Images may
// be used concurrently from multiple goroutines.
package pictor
