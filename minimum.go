package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildMinimum compiles the minimum keyword. Non-numeric documents pass.
// A draft 3/4 boolean exclusiveMinimum next to minimum makes the bound
// strict.
func buildMinimum(s *Schema) predicate {
	bound := s.Minimum.Rat
	strict := s.ExclusiveMinimumFlag != nil && *s.ExclusiveMinimumFlag

	return funcPred(func(v *jsonvalue.Value) bool {
		value := ratOf(v)
		if value == nil {
			return true
		}
		if strict {
			return value.Cmp(bound) > 0
		}
		return value.Cmp(bound) >= 0
	})
}
