package cogitojson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kitchenSinkSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "order",
	"type": "object",
	"properties": {
		"id": {"type": "string", "format": "uuid"},
		"total": {"type": "number", "minimum": 0},
		"lines": {
			"type": "array",
			"items": {"type": "object", "required": ["sku"]},
			"minItems": 1
		}
	},
	"patternProperties": {"^x-": {}},
	"additionalProperties": false,
	"propertyNames": {"maxLength": 40},
	"required": ["id"],
	"dependencies": {
		"coupon": ["total"],
		"giftWrap": {"properties": {"total": {"minimum": 5}}}
	},
	"allOf": [{"minProperties": 1}],
	"anyOf": [{"required": ["id"]}, {"required": ["legacyId"]}],
	"oneOf": [{"type": "object"}],
	"not": {"const": null},
	"if": {"required": ["coupon"]},
	"then": {"required": ["total"]},
	"else": {},
	"contains": {"const": 1},
	"enum": [{"a": 1}, [2], "three", 4, 5.0, null],
	"const": {"a": 1},
	"x-vendor": {"keep": true}
}`

func TestTransformerIdentity(t *testing.T) {
	schema := mustParseSchema(t, kitchenSinkSchema)

	out := (&Transformer{}).Transform(schema)
	require.NotNil(t, out)
	assert.NotSame(t, schema, out)
	assert.True(t, DeepEquals(schema, out), "default traversal yields a deep-equal copy")

	// sub-schema nodes are rebuilt, not shared
	assert.NotSame(t, schema.Not, out.Not)
	assert.NotSame(t, (*schema.Properties)["id"], (*out.Properties)["id"])
	assert.NotSame(t, schema.AllOf[0], out.AllOf[0])
	assert.NotSame(t, schema.Dependencies["giftWrap"].Schema, out.Dependencies["giftWrap"].Schema)
}

func TestTransformerNilSchema(t *testing.T) {
	assert.Nil(t, (&Transformer{}).Transform(nil))
}

func TestTransformerPostRunsChildrenFirst(t *testing.T) {
	schema := mustParseSchema(t, `{"allOf":[{"title":"inner"}],"title":"outer"}`)

	var order []string
	tr := &Transformer{
		Post: func(s *Schema) *Schema {
			if s.Title != nil {
				order = append(order, *s.Title)
			}
			return s
		},
	}
	tr.Transform(schema)
	assert.Equal(t, []string{"inner", "outer"}, order)
}

func TestTransformerFieldHook(t *testing.T) {
	schema := mustParseSchema(t, `{"allOf":[{"const":1},{"const":2}],"anyOf":[{"const":3}]}`)

	tr := &Transformer{
		VisitAllOf: func([]*Schema) []*Schema { return nil },
	}
	out := tr.Transform(schema)
	assert.Nil(t, out.AllOf, "overridden hook replaces the field handling")
	require.Len(t, out.AnyOf, 1, "other fields still traverse")
	assert.NotSame(t, schema.AnyOf[0], out.AnyOf[0])
}

func TestTransformerDependencyVariants(t *testing.T) {
	schema := mustParseSchema(t, `{"dependencies":{"a":["b"],"c":{"required":["d"]}}}`)

	out := (&Transformer{}).Transform(schema)
	assert.Equal(t, []string{"b"}, out.Dependencies["a"].Required)
	require.NotNil(t, out.Dependencies["c"].Schema)
	assert.NotSame(t, schema.Dependencies["c"].Schema, out.Dependencies["c"].Schema)
}
