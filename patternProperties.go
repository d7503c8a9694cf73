package cogitojson

import (
	"regexp"
	"slices"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// patternCheck pairs a compiled key regex with its value validator.
type patternCheck struct {
	re *regexp.Regexp
	fn ValidateFunc
}

// compilePatternChecks compiles every patternProperties member. Invalid
// regexes are construction errors.
func (b *ValidatorBuilder) compilePatternChecks(s *Schema, path []string) ([]patternCheck, error) {
	checks := make([]patternCheck, 0, len(*s.PatternProperties))
	for _, pattern := range sortedKeys(*s.PatternProperties) {
		child := (*s.PatternProperties)[pattern]
		memberPath := slices.Concat(path, []string{"patternProperties", pattern})
		re, err := compileSchemaPattern(pattern, "patternProperties", memberPath)
		if err != nil {
			return nil, err
		}
		fn := truePred.finalize()
		if child != nil {
			p, err := b.eval(child, memberPath)
			if err != nil {
				return nil, err
			}
			fn = p.finalize()
		}
		checks = append(checks, patternCheck{re: re, fn: fn})
	}
	return checks, nil
}

// buildPatternProperties compiles the patternProperties keyword: for every
// member regex, each object key matching it has its value validated
// against the member schema. Non-object documents pass.
func (b *ValidatorBuilder) buildPatternProperties(s *Schema, path []string) (predicate, error) {
	checks, err := b.compilePatternChecks(s, path)
	if err != nil {
		return falsePred, err
	}
	if len(checks) == 0 {
		return truePred, nil
	}

	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.Object {
			return true
		}
		for _, m := range v.Members() {
			for _, check := range checks {
				if check.re.MatchString(m.Name) && !check.fn(m.Value) {
					return false
				}
			}
		}
		return true
	}), nil
}
