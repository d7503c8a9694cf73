package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildExclusiveMaximum compiles the numeric (draft >= 6) form of
// exclusiveMaximum: the document must be strictly less than the bound.
func buildExclusiveMaximum(s *Schema) predicate {
	bound := s.ExclusiveMaximum.Rat
	return funcPred(func(v *jsonvalue.Value) bool {
		value := ratOf(v)
		if value == nil {
			return true
		}
		return value.Cmp(bound) < 0
	})
}
