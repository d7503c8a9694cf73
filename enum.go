package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildEnum compiles the enum keyword: some member must be deep-equal to
// the document.
func buildEnum(s *Schema) predicate {
	members := s.Enum
	return funcPred(func(v *jsonvalue.Value) bool {
		for _, member := range members {
			if jsonvalue.DeepEquals(v, member) {
				return true
			}
		}
		return false
	})
}
