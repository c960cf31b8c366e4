// Package imgio handles the byte-level edges of the pipeline: decoding image
// bytes, inferring format tags, and building base64 data URIs. Pixel work
// lives in the ops package; this package only moves bytes in and out.
package imgio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultFormat is the encoding used when a Pack carries no format tag.
const DefaultFormat = "png"

var dataURIPattern = regexp.MustCompile(`^data:image/([a-zA-Z0-9.+-]+);base64,`)

// NormalizeFormat lowercases a format tag and collapses the jpg/jpeg alias.
func NormalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if format == "jpg" {
		return "jpeg"
	}
	return format
}

// FormatFromPath infers a format tag from a file extension: ".jpg" and
// ".jpeg" yield "jpeg", ".png" yields "png", and so on. Unknown extensions
// yield an empty tag rather than a guess.
func FormatFromPath(path string) string {
	ext := NormalizeFormat(filepath.Ext(path))
	switch ext {
	case "png", "jpeg", "gif", "bmp", "tiff", "tif":
		return ext
	}
	return ""
}

// SplitDataURI strips an optional "data:image/<fmt>;base64," prefix from s,
// returning the normalized format tag (empty when no prefix was present) and
// the bare base64 payload.
func SplitDataURI(s string) (format, payload string) {
	m := dataURIPattern.FindStringSubmatch(s)
	if m == nil {
		return "", s
	}
	return NormalizeFormat(m[1]), s[len(m[0]):]
}

// BuildDataURI wraps a base64 payload in a "data:image/<fmt>;base64," prefix.
func BuildDataURI(format, payload string) string {
	return fmt.Sprintf("data:image/%s;base64,%s", NormalizeFormat(format), payload)
}

// Decode reads and decodes image bytes, reporting the codec that matched.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return img, NormalizeFormat(format), nil
}

// DecodeBytes decodes an in-memory image buffer, reporting the codec that
// matched.
func DecodeBytes(data []byte) (image.Image, string, error) {
	return Decode(bytes.NewReader(data))
}

// Encode serializes img in the named format, falling back to DefaultFormat
// when the tag is empty or names no known encoder.
func Encode(img image.Image, format string) ([]byte, error) {
	if format == "" {
		format = DefaultFormat
	}
	f, err := imaging.FormatFromExtension(NormalizeFormat(format))
	if err != nil {
		f = imaging.PNG
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f); err != nil {
		return nil, fmt.Errorf("encode %s image: %w", format, err)
	}
	return buf.Bytes(), nil
}
