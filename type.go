package cogitojson

import (
	"math"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// buildType compiles the type keyword: the document's type tag must be in
// the declared set.
//
// Two coercions apply. An integer always satisfies "number". A float whose
// fractional part is exactly zero satisfies "integer" from draft 6 on, but
// not in drafts 3 and 4; the draft is captured at compile time.
func (b *ValidatorBuilder) buildType(s *Schema) predicate {
	types := s.Type
	coerce := b.draft.coercesIntegralFloat()

	return funcPred(func(v *jsonvalue.Value) bool {
		for _, name := range types {
			if typeSatisfied(name, v, coerce) {
				return true
			}
		}
		return false
	})
}

func typeSatisfied(name string, v *jsonvalue.Value, coerceIntegralFloat bool) bool {
	switch name {
	case "null":
		return v.Kind() == jsonvalue.Null
	case "boolean":
		return v.Kind() == jsonvalue.Boolean
	case "integer":
		if v.Kind() == jsonvalue.Integer {
			return true
		}
		if coerceIntegralFloat && v.Kind() == jsonvalue.Float {
			f := v.Float()
			return f == math.Trunc(f) && !math.IsInf(f, 0)
		}
		return false
	case "number":
		return v.IsNumber()
	case "string":
		return v.Kind() == jsonvalue.String
	case "array":
		return v.Kind() == jsonvalue.Array
	case "object":
		return v.Kind() == jsonvalue.Object
	default:
		return false
	}
}
