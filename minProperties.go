package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildMinProperties compiles the minProperties keyword. Non-object
// documents pass.
func buildMinProperties(s *Schema) predicate {
	min := int(*s.MinProperties)
	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.Object {
			return true
		}
		return v.Len() >= min
	})
}
