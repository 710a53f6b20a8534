// Package codec implements the format-specific decode/encode side of the
// engine and the detection logic that selects between formats.
//
// Each supported format (PNG, JPEG, GIF, BMP, TIFF, WebP) is one Codec
// implementation producing and consuming a pixel.Buffer paired with a
// colormode.Mode. The mapping from Format to Codec lives in a package-level
// table that is populated at init and never mutated afterwards, so it is safe
// to read from any goroutine without synchronization.
//
// # Detection
//
// When image bytes are available, detection sniffs the leading magic bytes;
// the file extension is only a fallback for when sniffing fails or no bytes
// exist yet (picking the target format of a save by path). Content therefore
// wins whenever the two disagree.
//
// # Failure Modes
//
// Malformed input never panics: decoders validate stream structure and
// surface a DecodeError carrying the format and reason. Encoding a color
// mode the target format cannot represent (alpha into JPEG, for example)
// fails with an EncodeError rather than silently dropping channels.
package codec
