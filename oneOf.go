package cogitojson

import (
	"slices"
	"strconv"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// buildOneOf compiles the oneOf keyword: exactly one member must accept
// the document. The scan short-circuits to false on the second accepting
// member.
func (b *ValidatorBuilder) buildOneOf(s *Schema, path []string) (predicate, error) {
	fns := make([]ValidateFunc, 0, len(s.OneOf))
	for i, child := range s.OneOf {
		if child == nil {
			continue
		}
		p, err := b.eval(child, slices.Concat(path, []string{"oneOf", strconv.Itoa(i)}))
		if err != nil {
			return falsePred, err
		}
		fns = append(fns, p.finalize())
	}
	if len(fns) == 0 {
		return truePred, nil
	}

	return funcPred(func(v *jsonvalue.Value) bool {
		seen := false
		for _, fn := range fns {
			if fn(v) {
				if seen {
					return false
				}
				seen = true
			}
		}
		return seen
	}), nil
}
