package pilflow

import (
	"encoding/json"
	"fmt"
	"image"
)

// packJSON is the serialized shape of a Pack: image bytes as a data URI, the
// legacy flat map verbatim, and each structured context as its exported
// field map.
type packJSON struct {
	ImageBase64        string                    `json:"image_base64"`
	ContextData        map[string]any            `json:"context_data"`
	StructuredContexts map[string]map[string]any `json:"structured_contexts"`
}

// ToJSON serializes the Pack to an indented JSON string. The image is
// encoded with the Pack's stored format tag (PNG when untagged).
func (p *Pack) ToJSON() (string, error) {
	uri, err := p.ToDataURI()
	if err != nil {
		return "", fmt.Errorf("serialize image: %w", err)
	}

	structured := make(map[string]map[string]any, len(p.contexts))
	for name, ctx := range p.contexts {
		structured[name] = ctx.Data()
	}

	out, err := json.MarshalIndent(packJSON{
		ImageBase64:        uri,
		ContextData:        p.values,
		StructuredContexts: structured,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal pack: %w", err)
	}
	return string(out), nil
}

// FromJSON rebuilds a Pack serialized by ToJSON, resolving structured
// context types against the Default registry. When img is non-nil it is used
// instead of decoding the embedded image bytes.
func FromJSON(jsonStr string, img image.Image) (*Pack, error) {
	return FromJSONWith(Default, jsonStr, img)
}

// FromJSONWith rebuilds a Pack against an explicit registry. Structured
// context entries whose names have no registered type are skipped rather
// than failing the whole restore; a context that fails its own validation
// during restore is an error.
func FromJSONWith(reg *Registry, jsonStr string, img image.Image) (*Pack, error) {
	var data packJSON
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return nil, fmt.Errorf("unmarshal pack: %w", err)
	}

	var format string
	if img == nil {
		decoded, err := (&Base64Producer{Encoded: data.ImageBase64, Registry: reg}).Produce()
		if err != nil {
			return nil, fmt.Errorf("restore image: %w", err)
		}
		img = decoded.Image
		format = decoded.Format
	}

	p := NewWith(reg, img)
	p.Format = format
	for k, v := range data.ContextData {
		p.values[k] = v
	}
	for name, fields := range data.StructuredContexts {
		restore, ok := reg.ContextType(name)
		if !ok {
			continue
		}
		ctx, err := restore(fields)
		if err != nil {
			return nil, fmt.Errorf("restore context %q: %w", name, err)
		}
		p.contexts[name] = ctx
	}
	return p, nil
}
