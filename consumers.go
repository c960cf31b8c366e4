package pilflow

import (
	"encoding/base64"
	"image"

	"github.com/yanrucheng/pilflow/internal/imgio"
)

// DataURIConsumer encodes a Pack's image to a base64 data URI string.
// Format overrides the Pack's stored tag when set; otherwise the stored tag
// is used, defaulting to PNG.
type DataURIConsumer struct {
	Format string
}

// Consume encodes the image and wraps it as "data:image/<fmt>;base64,<payload>".
func (c *DataURIConsumer) Consume(p *Pack) (string, error) {
	format := c.Format
	if format == "" {
		format = p.Format
	}
	if format == "" {
		format = imgio.DefaultFormat
	}
	raw, err := imgio.Encode(p.Image, format)
	if err != nil {
		return "", err
	}
	payload := base64.StdEncoding.EncodeToString(raw)
	return imgio.BuildDataURI(format, payload), nil
}

// ImageConsumer extracts the raw image handle from a Pack.
type ImageConsumer struct{}

// Consume returns the Pack's image as-is.
func (ImageConsumer) Consume(p *Pack) (image.Image, error) {
	return p.Image, nil
}

// ToDataURI encodes the Pack's image as a base64 data URI using its stored
// format tag (PNG when untagged).
func (p *Pack) ToDataURI() (string, error) {
	return (&DataURIConsumer{}).Consume(p)
}
