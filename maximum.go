package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildMaximum compiles the maximum keyword. Non-numeric documents pass.
// A draft 3/4 boolean exclusiveMaximum next to maximum makes the bound
// strict.
func buildMaximum(s *Schema) predicate {
	bound := s.Maximum.Rat
	strict := s.ExclusiveMaximumFlag != nil && *s.ExclusiveMaximumFlag

	return funcPred(func(v *jsonvalue.Value) bool {
		value := ratOf(v)
		if value == nil {
			return true
		}
		if strict {
			return value.Cmp(bound) < 0
		}
		return value.Cmp(bound) <= 0
	})
}
