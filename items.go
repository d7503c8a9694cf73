package cogitojson

import (
	"slices"
	"strconv"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// buildItems compiles the items keyword in both wire forms.
//
// Single-schema form: every element validates against the schema.
// Positional form: element i validates against the i-th schema; elements
// past the tuple validate against the trailing schema when one is present
// (a literal false trailing schema caps the array length).
func (b *ValidatorBuilder) buildItems(s *Schema, path []string) (predicate, error) {
	if len(s.PrefixItems) == 0 {
		p, err := b.eval(s.Items, slices.Concat(path, []string{"items"}))
		if err != nil {
			return falsePred, err
		}
		if p.isConst && p.value {
			return truePred, nil
		}
		fn := p.finalize()
		return funcPred(func(v *jsonvalue.Value) bool {
			if v.Kind() != jsonvalue.Array {
				return true
			}
			for _, elem := range v.Elements() {
				if !fn(elem) {
					return false
				}
			}
			return true
		}), nil
	}

	positional := make([]ValidateFunc, len(s.PrefixItems))
	for i, child := range s.PrefixItems {
		if child == nil {
			positional[i] = truePred.finalize()
			continue
		}
		p, err := b.eval(child, slices.Concat(path, []string{"items", strconv.Itoa(i)}))
		if err != nil {
			return falsePred, err
		}
		positional[i] = p.finalize()
	}

	var trailing ValidateFunc
	trailingForbidden := false
	if s.Items != nil {
		p, err := b.eval(s.Items, slices.Concat(path, []string{"additionalItems"}))
		if err != nil {
			return falsePred, err
		}
		switch {
		case p.isConst && !p.value:
			trailingForbidden = true
		case p.isConst && p.value:
			// Unconstrained, same as absent.
		default:
			trailing = p.finalize()
		}
	}

	prefixLen := len(positional)
	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.Array {
			return true
		}
		n := v.Len()
		if trailingForbidden && n > prefixLen {
			return false
		}
		for i := 0; i < n; i++ {
			switch {
			case i < prefixLen:
				if !positional[i](v.Index(i)) {
					return false
				}
			case trailing != nil:
				if !trailing(v.Index(i)) {
					return false
				}
			default:
				return true
			}
		}
		return true
	}), nil
}
