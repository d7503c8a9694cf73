package cogitojson

import (
	"fmt"
	"slices"

	"github.com/kaptinlin/jsonpointer"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// buildDependencies compiles the dependencies keyword. For each member
// whose key the object carries: a name-list dependency requires every
// listed name to be present; a schema dependency validates the whole
// object against the member schema. Non-object documents pass.
func (b *ValidatorBuilder) buildDependencies(s *Schema, path []string) (predicate, error) {
	type depCheck struct {
		key      string
		required []string
		fn       ValidateFunc
	}

	keys := make([]string, 0, len(s.Dependencies))
	for key := range s.Dependencies {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	checks := make([]depCheck, 0, len(keys))
	for _, key := range keys {
		dep := s.Dependencies[key]
		if dep == nil {
			return falsePred, &SchemaError{
				Keyword:  "dependencies",
				Location: "#" + jsonpointer.Format(slices.Concat(path, []string{"dependencies", key})...),
				Err:      fmt.Errorf("%w: %w", ErrSchemaConstruction, ErrInvalidDependency),
			}
		}
		check := depCheck{key: key}
		if dep.Schema != nil {
			p, err := b.eval(dep.Schema, slices.Concat(path, []string{"dependencies", key}))
			if err != nil {
				return falsePred, err
			}
			check.fn = p.finalize()
		} else {
			check.required = dep.Required
		}
		checks = append(checks, check)
	}

	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.Object {
			return true
		}
		for _, check := range checks {
			if !v.ContainsKey(check.key) {
				continue
			}
			if check.fn != nil {
				if !check.fn(v) {
					return false
				}
				continue
			}
			for _, name := range check.required {
				if !v.ContainsKey(name) {
					return false
				}
			}
		}
		return true
	}), nil
}
