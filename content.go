package cogitojson

import (
	"encoding/base64"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// initContentDefaults registers the built-in content decoders and media
// type checks.
func (b *ValidatorBuilder) initContentDefaults() {
	b.decoders["base64"] = func(s string) ([]byte, error) {
		return base64.StdEncoding.DecodeString(s)
	}

	b.mediaTypes["application/json"] = func(data []byte) error {
		var tmp any
		if err := json.Unmarshal(data, &tmp); err != nil {
			return fmt.Errorf("%w: %w", ErrJSONUnmarshal, err)
		}
		return nil
	}
	b.mediaTypes["application/yaml"] = func(data []byte) error {
		var tmp any
		if err := yaml.Unmarshal(data, &tmp); err != nil {
			return fmt.Errorf("%w: %w", ErrYAMLUnmarshal, err)
		}
		return nil
	}
}

// buildContent compiles contentEncoding and contentMediaType together.
// The string is decoded with the registered decoder, then the decoded (or
// raw) bytes must satisfy the registered media type parse. Decode or
// parse failures are a false verdict, never an error; unregistered names
// pass. Non-string documents pass.
func (b *ValidatorBuilder) buildContent(s *Schema) predicate {
	var decoder func(string) ([]byte, error)
	if s.ContentEncoding != nil {
		decoder = b.decoders[*s.ContentEncoding]
	}
	var mediaType func([]byte) error
	if s.ContentMediaType != nil {
		mediaType = b.mediaTypes[*s.ContentMediaType]
	}
	if decoder == nil && mediaType == nil {
		return truePred
	}

	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.String {
			return true
		}
		content := []byte(v.Str())
		if decoder != nil {
			decoded, err := decoder(v.Str())
			if err != nil {
				return false
			}
			content = decoded
		}
		if mediaType != nil {
			if err := mediaType(content); err != nil {
				return false
			}
		}
		return true
	})
}
