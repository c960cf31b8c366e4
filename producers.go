package pilflow

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/yanrucheng/pilflow/internal/imgio"
)

// FileProducer builds a Pack from an image file on disk. The format tag is
// inferred from the file extension; the initial legacy values come from
// Values.
type FileProducer struct {
	Path     string
	Values   map[string]any
	Registry *Registry // nil means Default
}

// Produce opens, decodes and wraps the image. A path that does not resolve
// yields an error wrapping ErrNotFound; bytes that no codec recognizes yield
// one wrapping ErrDecode.
func (fp *FileProducer) Produce() (*Pack, error) {
	f, err := os.Open(fp.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, fp.Path)
		}
		return nil, fmt.Errorf("open image %s: %w", fp.Path, err)
	}
	defer f.Close()

	img, decoded, err := imgio.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, fp.Path, err)
	}

	p := NewWith(fp.Registry, img)
	p.Format = imgio.FormatFromPath(fp.Path)
	if p.Format == "" {
		p.Format = decoded
	}
	for k, v := range fp.Values {
		p.values[k] = v
	}
	return p, nil
}

// Base64Producer builds a Pack from a base64-encoded image string, with or
// without a "data:image/<fmt>;base64," prefix. A prefix sets the Pack's
// format tag; otherwise the tag comes from the codec that decoded the bytes.
type Base64Producer struct {
	Encoded  string
	Values   map[string]any
	Registry *Registry // nil means Default
}

// Produce decodes the base64 payload and the image bytes behind it.
// Malformed base64 yields an error wrapping ErrInvalidEncoding; valid base64
// of non-image bytes yields one wrapping ErrDecode.
func (bp *Base64Producer) Produce() (*Pack, error) {
	format, payload := imgio.SplitDataURI(bp.Encoded)

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	img, decoded, err := imgio.DecodeBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	p := NewWith(bp.Registry, img)
	if format != "" {
		p.Format = format
	} else {
		p.Format = decoded
	}
	for k, v := range bp.Values {
		p.values[k] = v
	}
	return p, nil
}

// FromFile creates a Pack from an image file, seeding the legacy values map
// with values. See FileProducer for the error contract.
func FromFile(path string, values map[string]any) (*Pack, error) {
	return (&FileProducer{Path: path, Values: values}).Produce()
}

// FromBase64 creates a Pack from a base64-encoded image string, optionally
// prefixed as a data URI. See Base64Producer for the error contract.
func FromBase64(encoded string, values map[string]any) (*Pack, error) {
	return (&Base64Producer{Encoded: encoded, Values: values}).Produce()
}
