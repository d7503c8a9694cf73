package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildMaxProperties compiles the maxProperties keyword. Non-object
// documents pass.
func buildMaxProperties(s *Schema) predicate {
	max := int(*s.MaxProperties)
	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.Object {
			return true
		}
		return v.Len() <= max
	})
}
