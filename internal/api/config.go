// Package api holds the huma configuration shared by the server and tests.
package api

import (
	"bytes"
	"encoding/json"
	"io"
	"maps"

	"github.com/danielgtaylor/huma/v2"
)

const (
	Title       = "Template API"
	Description = "A bare minimum API template with separation of concerns."
	DocsPath    = "/api-docs"
)

// CompactJSON encodes bodies without HTML escaping and without the trailing
// newline json.Encoder appends, so payloads are exactly the serialized object.
var CompactJSON = huma.Format{
	Marshal: func(w io.Writer, v any) error {
		b, err := MarshalCompact(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	},
	Unmarshal: json.Unmarshal,
}

// MarshalCompact is the byte form written by CompactJSON.
func MarshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// NewConfig returns the huma configuration for the service.
//
// The default create hooks are dropped: they install a schema link transformer
// that injects a "$schema" property into every response body, and payloads must
// serialize exactly as their structs declare.
func NewConfig(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.Info.Description = Description
	cfg.DocsPath = DocsPath
	cfg.CreateHooks = nil
	// DefaultConfig shares huma.DefaultFormats; clone before overriding JSON.
	cfg.Formats = maps.Clone(cfg.Formats)
	cfg.Formats["application/json"] = CompactJSON
	cfg.Formats["json"] = CompactJSON
	return cfg
}

// AdvertiseCBOR documents application/cbor next to application/json for every
// operation registered after the call.
func AdvertiseCBOR(api huma.API) {
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)
}
