package cogitojson

import (
	"fmt"

	"github.com/go-json-experiment/json"
)

// Clone deep-copies a schema by serializing it and parsing the result
// back. The copy shares no sub-schema identity with the input, which makes
// it safe to mutate locally.
func Clone(s *Schema) (*Schema, error) {
	return cloneWith(s, defaultEncodeJSON, defaultDecodeJSON)
}

func defaultEncodeJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

func defaultDecodeJSON(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func cloneWith(s *Schema, encode func(any) ([]byte, error), decode func([]byte, any) error) (*Schema, error) {
	if s == nil {
		return nil, ErrNilSchema
	}
	data, err := encode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaEncode, err)
	}
	out := &Schema{}
	if err := decode(data, out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaDecode, err)
	}
	return out, nil
}
