package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildFormat compiles the format keyword. Unknown format names accept
// any document; the second return is false when the name has no
// registered predicate so the keyword folds away entirely. Non-string
// documents pass.
func (b *ValidatorBuilder) buildFormat(s *Schema) (predicate, bool) {
	fn, ok := b.formats[*s.Format]
	if !ok {
		return truePred, false
	}
	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.String {
			return true
		}
		return fn(v.Str())
	}), true
}
