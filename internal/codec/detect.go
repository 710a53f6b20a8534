package codec

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// magic is one signature, matched at a fixed offset within the stream head.
type magic struct {
	offset int
	sig    []byte
	format Format
}

// magics holds the signatures of every supported format. WebP needs two
// checks: the RIFF container tag at offset 0 and the WEBP fourcc at offset 8,
// handled below.
var magics = []magic{
	{0, []byte("\x89PNG\r\n\x1a\n"), FormatPNG},
	{0, []byte("\xff\xd8\xff"), FormatJPEG},
	{0, []byte("GIF87a"), FormatGIF},
	{0, []byte("GIF89a"), FormatGIF},
	{0, []byte("BM"), FormatBMP},
	{0, []byte("II*\x00"), FormatTIFF},
	{0, []byte("MM\x00*"), FormatTIFF},
}

// Sniff resolves the format of an encoded stream from its leading magic
// bytes. Returns ErrUnknownFormat when no signature matches.
func Sniff(data []byte) (Format, error) {
	for _, m := range magics {
		if len(data) >= m.offset+len(m.sig) && bytes.Equal(data[m.offset:m.offset+len(m.sig)], m.sig) {
			return m.format, nil
		}
	}
	if len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")) {
		return FormatWebP, nil
	}
	return "", fmt.Errorf("%w: unrecognized magic bytes", ErrUnknownFormat)
}

// ByExtension resolves a format from a file extension (with or without a
// full path). Returns ErrUnknownFormat for unrecognized extensions.
func ByExtension(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg", ".jpe":
		return FormatJPEG, nil
	case ".gif":
		return FormatGIF, nil
	case ".bmp", ".dib":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".webp":
		return FormatWebP, nil
	}
	return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, filepath.Ext(path))
}

// Detect resolves a format from whatever is available. Content sniffing wins
// when bytes are present; the extension of path is consulted only when
// sniffing fails. An empty path with unrecognizable bytes (or no bytes at
// all) yields ErrUnknownFormat.
func Detect(path string, data []byte) (Format, error) {
	if len(data) > 0 {
		if f, err := Sniff(data); err == nil {
			return f, nil
		}
	}
	if path != "" {
		return ByExtension(path)
	}
	return "", fmt.Errorf("%w: no detectable source", ErrUnknownFormat)
}
