package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildExclusiveMinimum compiles the numeric (draft >= 6) form of
// exclusiveMinimum: the document must be strictly greater than the bound.
func buildExclusiveMinimum(s *Schema) predicate {
	bound := s.ExclusiveMinimum.Rat
	return funcPred(func(v *jsonvalue.Value) bool {
		value := ratOf(v)
		if value == nil {
			return true
		}
		return value.Cmp(bound) > 0
	})
}
