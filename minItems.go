package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildMinItems compiles the minItems keyword. Non-array documents pass.
func buildMinItems(s *Schema) predicate {
	min := int(*s.MinItems)
	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.Array {
			return true
		}
		return v.Len() >= min
	})
}
