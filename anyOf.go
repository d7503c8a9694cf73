package cogitojson

import (
	"slices"
	"strconv"
)

// buildAnyOf compiles the anyOf keyword as the disjunction of its member
// predicates.
func (b *ValidatorBuilder) buildAnyOf(s *Schema, path []string) (predicate, error) {
	preds := make([]predicate, 0, len(s.AnyOf))
	for i, child := range s.AnyOf {
		if child == nil {
			continue
		}
		p, err := b.eval(child, slices.Concat(path, []string{"anyOf", strconv.Itoa(i)}))
		if err != nil {
			return falsePred, err
		}
		preds = append(preds, p)
	}
	return or(preds...), nil
}
