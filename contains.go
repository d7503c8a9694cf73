package cogitojson

import (
	"slices"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// buildContains compiles the contains keyword: at least one array element
// must validate against the sub-schema. Non-array documents pass.
func (b *ValidatorBuilder) buildContains(s *Schema, path []string) (predicate, error) {
	p, err := b.eval(s.Contains, slices.Concat(path, []string{"contains"}))
	if err != nil {
		return falsePred, err
	}
	fn := p.finalize()

	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.Array {
			return true
		}
		for _, elem := range v.Elements() {
			if fn(elem) {
				return true
			}
		}
		return false
	}), nil
}
