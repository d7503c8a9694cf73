package cogitojson

import "slices"

// buildNot compiles the not keyword as the negation of its sub-schema.
func (b *ValidatorBuilder) buildNot(s *Schema, path []string) (predicate, error) {
	p, err := b.eval(s.Not, slices.Concat(path, []string{"not"}))
	if err != nil {
		return falsePred, err
	}
	return p.not(), nil
}
