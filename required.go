package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildRequired compiles the required keyword: every listed name must be a
// key of the object. Non-object documents pass.
func buildRequired(s *Schema) predicate {
	names := s.Required
	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.Object {
			return true
		}
		for _, name := range names {
			if !v.ContainsKey(name) {
				return false
			}
		}
		return true
	})
}
