package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// predicate is a compiled boolean expression over JSON values. Constant
// verdicts stay symbolic until finalize so the combinators can fold them:
// true AND x folds to x, false AND anything folds to false, and a double
// negation cancels out.
type predicate struct {
	isConst bool
	value   bool
	negated bool
	fn      ValidateFunc
}

var (
	truePred  = predicate{isConst: true, value: true}
	falsePred = predicate{isConst: true, value: false}
)

func constPred(v bool) predicate {
	if v {
		return truePred
	}
	return falsePred
}

func funcPred(fn ValidateFunc) predicate {
	return predicate{fn: fn}
}

// cellPred wraps a placeholder cell in an indirect call. The cell is bound
// after the owning schema's body finishes compiling.
func cellPred(c *cell) predicate {
	return funcPred(func(v *jsonvalue.Value) bool {
		return c.fn(v)
	})
}

// not negates the predicate, folding constants and cancelling double
// negation.
func (p predicate) not() predicate {
	if p.isConst {
		return constPred(!p.value)
	}
	p.negated = !p.negated
	return p
}

// finalize lowers the predicate to a callable.
func (p predicate) finalize() ValidateFunc {
	if p.isConst {
		v := p.value
		return func(*jsonvalue.Value) bool { return v }
	}
	if p.negated {
		fn := p.fn
		return func(v *jsonvalue.Value) bool { return !fn(v) }
	}
	return p.fn
}

// and conjoins predicates with short-circuit evaluation, left to right.
func and(preds ...predicate) predicate {
	kept := make([]predicate, 0, len(preds))
	for _, p := range preds {
		if p.isConst {
			if !p.value {
				return falsePred
			}
			continue
		}
		kept = append(kept, p)
	}
	switch len(kept) {
	case 0:
		return truePred
	case 1:
		return kept[0]
	}
	fns := make([]ValidateFunc, len(kept))
	for i, p := range kept {
		fns[i] = p.finalize()
	}
	return funcPred(func(v *jsonvalue.Value) bool {
		for _, fn := range fns {
			if !fn(v) {
				return false
			}
		}
		return true
	})
}

// or disjoins predicates with short-circuit evaluation, left to right.
func or(preds ...predicate) predicate {
	kept := make([]predicate, 0, len(preds))
	for _, p := range preds {
		if p.isConst {
			if p.value {
				return truePred
			}
			continue
		}
		kept = append(kept, p)
	}
	switch len(kept) {
	case 0:
		return falsePred
	case 1:
		return kept[0]
	}
	fns := make([]ValidateFunc, len(kept))
	for i, p := range kept {
		fns[i] = p.finalize()
	}
	return funcPred(func(v *jsonvalue.Value) bool {
		for _, fn := range fns {
			if fn(v) {
				return true
			}
		}
		return false
	})
}
