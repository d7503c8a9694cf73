package cogitojson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMinimizesTo(t *testing.T, input, want string) {
	t.Helper()
	schema := mustParseSchema(t, input)
	before, err := schema.MarshalJSON()
	require.NoError(t, err)

	minimized := Minimize(schema)
	assert.True(t, DeepEquals(minimized, mustParseSchema(t, want)),
		"minimized to %s, want %s", mustParse(t, minimized), want)

	after, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "input schema must not be mutated")
}

func mustParse(t *testing.T, s *Schema) string {
	t.Helper()
	data, err := s.MarshalJSON()
	require.NoError(t, err)
	return string(data)
}

func TestMinimizeDropDuplicateAllOf(t *testing.T) {
	assertMinimizesTo(t,
		`{"title":"T","allOf":[{"const":"F"},{"const":"B"},{"const":"F"}]}`,
		`{"title":"T","allOf":[{"const":"F"},{"const":"B"}]}`)
}

func TestMinimizeDropEnumWhenConstPresent(t *testing.T) {
	assertMinimizesTo(t,
		`{"title":"T","const":"BOB","enum":["A","BOB"]}`,
		`{"title":"T","const":"BOB"}`)
}

func TestMinimizeFlattenNestedAllOf(t *testing.T) {
	assertMinimizesTo(t,
		`{"title":"T","allOf":[{"allOf":[{"title":"C","const":"F"},{"title":"D","const":"B"}]}]}`,
		`{"title":"T","allOf":[{"title":"C","const":"F"},{"title":"D","const":"B"}]}`)
}

func TestMinimizeClearVacuousOneOf(t *testing.T) {
	assertMinimizesTo(t,
		`{"title":"T","oneOf":[{},{"title":"F"}]}`,
		`{"title":"T"}`)
}

func TestMinimizeRunsDepthFirst(t *testing.T) {
	// the duplicate lives inside a nested sub-schema
	assertMinimizesTo(t,
		`{"properties":{"p":{"allOf":[{"const":1},{"const":1}]}}}`,
		`{"properties":{"p":{"allOf":[{"const":1}]}}}`)
}

func TestMinimizeCascades(t *testing.T) {
	// flattening the nested allOf exposes a duplicate, which the restarted
	// rule pass then removes
	assertMinimizesTo(t,
		`{"allOf":[{"allOf":[{"const":"F"}]},{"const":"F"}]}`,
		`{"allOf":[{"const":"F"}]}`)
}

func TestMinimizeIdempotent(t *testing.T) {
	inputs := []string{
		`{"title":"T","allOf":[{"const":"F"},{"const":"B"},{"const":"F"}]}`,
		`{"title":"T","const":"BOB","enum":["A","BOB"]}`,
		`{"title":"T","allOf":[{"allOf":[{"title":"C","const":"F"},{"title":"D","const":"B"}]}]}`,
		`{"title":"T","oneOf":[{},{"title":"F"}]}`,
		kitchenSinkSchema,
		`{}`,
		`true`,
	}

	for _, input := range inputs {
		once := Minimize(mustParseSchema(t, input))
		twice := Minimize(once)
		assert.True(t, DeepEquals(once, twice), "minimize must be idempotent on %s", input)
	}
}

func TestMinimizeLeavesIrreducibleSchemasAlone(t *testing.T) {
	schema := mustParseSchema(t, `{"type":"integer","minimum":0,"maximum":10}`)
	minimized := Minimize(schema)
	assert.True(t, DeepEquals(schema, minimized))
}

func TestMinimizePreservesVerdicts(t *testing.T) {
	inputs := []string{
		`{"allOf":[{},{"const":1},{"const":1}]}`,
		`{"title":"T","oneOf":[{},{"const":2}]}`,
		`{"const":"BOB","enum":["A","BOB"]}`,
		`{"type":"object","allOf":[{"type":"object"},{"minProperties":1}]}`,
	}
	docs := []string{`1`, `2`, `"BOB"`, `"A"`, `{}`, `{"a":1}`, `[1]`, `null`}

	for _, input := range inputs {
		schema := mustParseSchema(t, input)
		assertSameVerdicts(t, schema, Minimize(schema), docs...)
	}
}

func TestMinimizeWithCustomRules(t *testing.T) {
	m := NewMinimizer().WithRules(RemoveDuplicateEnum)

	schema := mustParseSchema(t, `{"enum":["A","A"],"allOf":[{},{"const":1}]}`)
	out := m.Minimize(schema)

	assert.True(t, DeepEquals(out, mustParseSchema(t, `{"enum":["A"],"allOf":[{},{"const":1}]}`)),
		"only the configured rule runs")
}

func TestMinimizeNil(t *testing.T) {
	assert.Nil(t, Minimize(nil))
}
