package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildMaxLength compiles the maxLength keyword, measured in text
// elements. Non-string documents pass.
func buildMaxLength(s *Schema) predicate {
	max := int(*s.MaxLength)
	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.String {
			return true
		}
		return v.TextLength() <= max
	})
}
