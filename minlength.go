package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildMinLength compiles the minLength keyword, measured in text
// elements. Non-string documents pass.
func buildMinLength(s *Schema) predicate {
	min := int(*s.MinLength)
	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.String {
			return true
		}
		return v.TextLength() >= min
	})
}
