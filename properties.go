package cogitojson

import (
	"slices"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// sortedKeys returns the map's schema names in sorted order, for a
// deterministic compile.
func sortedKeys(m SchemaMap) []string {
	keys := make([]string, 0, len(m))
	for name := range m {
		keys = append(keys, name)
	}
	slices.Sort(keys)
	return keys
}

// buildProperties compiles the properties keyword: when the object has a
// declared key, its value must validate against that key's schema. Absent
// keys and undeclared keys are not constrained here. Non-object documents
// pass.
func (b *ValidatorBuilder) buildProperties(s *Schema, path []string) (predicate, error) {
	names := sortedKeys(*s.Properties)

	type propCheck struct {
		name string
		fn   ValidateFunc
	}
	checks := make([]propCheck, 0, len(names))
	for _, name := range names {
		child := (*s.Properties)[name]
		if child == nil {
			continue
		}
		p, err := b.eval(child, slices.Concat(path, []string{"properties", name}))
		if err != nil {
			return falsePred, err
		}
		if p.isConst && p.value {
			continue
		}
		checks = append(checks, propCheck{name: name, fn: p.finalize()})
	}
	if len(checks) == 0 {
		return truePred, nil
	}

	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.Object {
			return true
		}
		for _, check := range checks {
			if value, ok := v.TryGet(check.name); ok {
				if !check.fn(value) {
					return false
				}
			}
		}
		return true
	}), nil
}

// buildPropertyNames compiles the propertyNames keyword: every key of the
// object, viewed as a string value, must validate against the sub-schema.
func (b *ValidatorBuilder) buildPropertyNames(s *Schema, path []string) (predicate, error) {
	p, err := b.eval(s.PropertyNames, slices.Concat(path, []string{"propertyNames"}))
	if err != nil {
		return falsePred, err
	}
	fn := p.finalize()

	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.Object {
			return true
		}
		for _, m := range v.Members() {
			if !fn(jsonvalue.NewString(m.Name)) {
				return false
			}
		}
		return true
	}), nil
}
