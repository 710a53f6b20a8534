// Package pixel owns raw pixel storage and the addressing math for the engine.
//
// A Buffer is a contiguous byte region holding width*height pixels of a fixed
// byte size, addressed through a row stride. The buffer itself is agnostic of
// the color interpretation of its bytes; that pairing is maintained by the
// colormode package and the Image type that composes the two.
//
// # Invariants
//
//   - len(Pix) == Stride * H
//   - Stride >= W * PixelSize
//   - W >= 0 and H >= 0; a zero-area buffer is valid (degenerate image)
//
// # Ownership
//
// Every Buffer has a single owner. Operations elsewhere in the engine that
// produce a new image always allocate a fresh Buffer; Clone is the only
// sanctioned way to duplicate pixel data.
//
// # Thread Safety
//
// Buffers carry no synchronization. Distinct Buffers may be used from multiple
// goroutines concurrently. The Parallel helper splits row-oriented work across
// workers with disjoint ranges and blocks until all workers complete.
package pixel
