package cogitojson

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/kaptinlin/jsonpointer"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// compileSchemaPattern compiles a schema regex, wrapping failures in a
// SchemaError that points at the offending keyword.
func compileSchemaPattern(pattern, keyword string, path []string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &SchemaError{
			Keyword:  keyword,
			Location: "#" + jsonpointer.Format(path...),
			Detail:   pattern,
			Err:      fmt.Errorf("%w: %w", ErrRegexValidation, err),
		}
	}
	return re, nil
}

// buildPattern compiles the pattern keyword. The regex is compiled once at
// build time; an invalid pattern is a construction error, not a validation
// failure. Non-string documents pass.
func buildPattern(s *Schema, path []string) (predicate, error) {
	re, err := compileSchemaPattern(*s.Pattern, "pattern", slices.Concat(path, []string{"pattern"}))
	if err != nil {
		return falsePred, err
	}
	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.String {
			return true
		}
		return re.MatchString(v.Str())
	}), nil
}
