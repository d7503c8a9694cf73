package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildConst compiles the const keyword: the document must be deep-equal
// to the pinned value.
func buildConst(s *Schema) predicate {
	want := s.Const
	return funcPred(func(v *jsonvalue.Value) bool {
		return jsonvalue.DeepEquals(v, want)
	})
}
