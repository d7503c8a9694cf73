package cogitojson

import (
	"slices"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// buildConditional compiles if/then/else. When the if sub-schema accepts,
// then (if present) must accept; otherwise else (if present) must accept.
// An absent branch passes.
func (b *ValidatorBuilder) buildConditional(s *Schema, path []string) (predicate, error) {
	ifPred, err := b.eval(s.If, slices.Concat(path, []string{"if"}))
	if err != nil {
		return falsePred, err
	}

	thenPred := truePred
	if s.Then != nil {
		if thenPred, err = b.eval(s.Then, slices.Concat(path, []string{"then"})); err != nil {
			return falsePred, err
		}
	}
	elsePred := truePred
	if s.Else != nil {
		if elsePred, err = b.eval(s.Else, slices.Concat(path, []string{"else"})); err != nil {
			return falsePred, err
		}
	}

	condFn := ifPred.finalize()
	thenFn := thenPred.finalize()
	elseFn := elsePred.finalize()
	return funcPred(func(v *jsonvalue.Value) bool {
		if condFn(v) {
			return thenFn(v)
		}
		return elseFn(v)
	}), nil
}
