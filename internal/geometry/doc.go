// Package geometry implements the geometric transforms of the engine: crop,
// axis-aligned rotation, transposition, resampling, and the thumbnail fit
// math.
//
// Every function here is pure over a (buffer, mode) pair and produces a
// freshly allocated destination buffer; source buffers are never aliased or
// mutated. Invalid geometry fails fast with a typed error instead of being
// clamped or approximated.
//
// # Resampling
//
// Resize maps each destination pixel back to source coordinates through the
// center-aligned ratio
//
//	srcX = (dstX + 0.5) * srcW/dstW - 0.5
//
// and samples per the selected filter. Bilinear, Bicubic (Catmull-Rom) and
// Lanczos (a=3) resampling run as two separable passes with precomputed,
// normalized kernel weights; out-of-range source taps clamp to the nearest
// valid row or column. Channel arithmetic accumulates in float64 and is
// rounded and clamped to the 8-bit range only when stored, so intermediate
// overflow cannot corrupt output. Alpha-carrying modes accumulate
// color weighted by alpha to keep transparent pixels from bleeding color.
//
// # Rotation
//
// Only the axis-aligned angles 0, 90, 180 and 270 (mod 360) are supported;
// they are exact, lossless pixel remaps. Rotation direction is clockwise.
// Any other angle is a capability error
// (ErrUnsupportedAngle), not an approximation target.
package geometry
