package cogitojson

import (
	"slices"
	"strconv"
)

// buildAllOf compiles the allOf keyword as the conjunction of its member
// predicates. Constant members fold away.
func (b *ValidatorBuilder) buildAllOf(s *Schema, path []string) (predicate, error) {
	preds := make([]predicate, 0, len(s.AllOf))
	for i, child := range s.AllOf {
		if child == nil {
			continue
		}
		p, err := b.eval(child, slices.Concat(path, []string{"allOf", strconv.Itoa(i)}))
		if err != nil {
			return falsePred, err
		}
		preds = append(preds, p)
	}
	return and(preds...), nil
}
