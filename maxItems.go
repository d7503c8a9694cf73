package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildMaxItems compiles the maxItems keyword. Non-array documents pass.
func buildMaxItems(s *Schema) predicate {
	max := int(*s.MaxItems)
	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.Array {
			return true
		}
		return v.Len() <= max
	})
}
