package cogitojson

import (
	"regexp"
	"slices"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// buildAdditionalProperties compiles the additionalProperties keyword:
// keys not declared in properties and not matched by any patternProperties
// regex validate against the sub-schema. A literal false sub-schema
// forbids such keys outright. Non-object documents pass.
func (b *ValidatorBuilder) buildAdditionalProperties(s *Schema, path []string) (predicate, error) {
	declared := map[string]struct{}{}
	if s.Properties != nil {
		for name := range *s.Properties {
			declared[name] = struct{}{}
		}
	}

	var patterns []*regexp.Regexp
	if s.PatternProperties != nil {
		for _, pattern := range sortedKeys(*s.PatternProperties) {
			re, err := compileSchemaPattern(pattern, "patternProperties",
				slices.Concat(path, []string{"patternProperties", pattern}))
			if err != nil {
				return falsePred, err
			}
			patterns = append(patterns, re)
		}
	}

	p, err := b.eval(s.AdditionalProperties, slices.Concat(path, []string{"additionalProperties"}))
	if err != nil {
		return falsePred, err
	}
	if p.isConst && p.value {
		return truePred, nil
	}
	fn := p.finalize()

	isAdditional := func(name string) bool {
		if _, ok := declared[name]; ok {
			return false
		}
		for _, re := range patterns {
			if re.MatchString(name) {
				return false
			}
		}
		return true
	}

	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.Object {
			return true
		}
		for _, m := range v.Members() {
			if isAdditional(m.Name) && !fn(m.Value) {
				return false
			}
		}
		return true
	}), nil
}
