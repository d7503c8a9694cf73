package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// Property represents a Schema property definition.
type Property struct {
	Name   string
	Schema *Schema
}

// Prop creates a property definition.
func Prop(name string, schema *Schema) Property {
	return Property{Name: name, Schema: schema}
}

// Object creates an object Schema with properties and keywords.
func Object(items ...interface{}) *Schema {
	schema := &Schema{Type: SchemaType{"object"}}

	var properties []Property
	var keywords []Keyword

	for _, item := range items {
		switch v := item.(type) {
		case Property:
			properties = append(properties, v)
		case Keyword:
			keywords = append(keywords, v)
		}
	}

	if len(properties) > 0 {
		props := make(SchemaMap)
		for _, prop := range properties {
			props[prop.Name] = prop.Schema
		}
		schema.Properties = &props
	}

	for _, keyword := range keywords {
		keyword(schema)
	}

	return schema
}

// String creates a string Schema with validation keywords.
func String(keywords ...Keyword) *Schema {
	return typed("string", keywords)
}

// Integer creates an integer Schema with validation keywords.
func Integer(keywords ...Keyword) *Schema {
	return typed("integer", keywords)
}

// Number creates a number Schema with validation keywords.
func Number(keywords ...Keyword) *Schema {
	return typed("number", keywords)
}

// Boolean creates a boolean Schema.
func Boolean(keywords ...Keyword) *Schema {
	return typed("boolean", keywords)
}

// Null creates a null Schema.
func Null(keywords ...Keyword) *Schema {
	return typed("null", keywords)
}

// Array creates an array Schema with validation keywords.
func Array(keywords ...Keyword) *Schema {
	return typed("array", keywords)
}

// Any creates a Schema without type restriction.
func Any(keywords ...Keyword) *Schema {
	schema := &Schema{}
	for _, keyword := range keywords {
		keyword(schema)
	}
	return schema
}

func typed(name string, keywords []Keyword) *Schema {
	schema := &Schema{Type: SchemaType{name}}
	for _, keyword := range keywords {
		keyword(schema)
	}
	return schema
}

// TrueSchema creates the literal true schema, which accepts everything.
func TrueSchema() *Schema {
	v := true
	return &Schema{Valid: &v}
}

// FalseSchema creates the literal false schema, which rejects everything.
func FalseSchema() *Schema {
	v := false
	return &Schema{Valid: &v}
}

// Const creates a const Schema. The value is converted with
// jsonvalue.MustFrom and panics on unsupported Go types.
func Const(value interface{}) *Schema {
	return &Schema{Const: jsonvalue.MustFrom(value)}
}

// Enum creates an enum Schema from the given values.
func Enum(values ...interface{}) *Schema {
	members := make([]*jsonvalue.Value, len(values))
	for i, value := range values {
		members[i] = jsonvalue.MustFrom(value)
	}
	return &Schema{Enum: members}
}

// OneOf creates a oneOf combination Schema.
func OneOf(schemas ...*Schema) *Schema {
	return &Schema{OneOf: schemas}
}

// AnyOf creates an anyOf combination Schema.
func AnyOf(schemas ...*Schema) *Schema {
	return &Schema{AnyOf: schemas}
}

// AllOf creates an allOf combination Schema.
func AllOf(schemas ...*Schema) *Schema {
	return &Schema{AllOf: schemas}
}

// Not creates a not combination Schema.
func Not(schema *Schema) *Schema {
	return &Schema{Not: schema}
}

// If creates a conditional Schema with if/then/else keywords.
func If(condition *Schema) *ConditionalSchema {
	return &ConditionalSchema{condition: condition}
}

// ConditionalSchema represents a conditional schema for if/then/else logic.
type ConditionalSchema struct {
	condition *Schema
	then      *Schema
	otherwise *Schema
}

// Then sets the then clause of a conditional schema.
func (cs *ConditionalSchema) Then(then *Schema) *ConditionalSchema {
	cs.then = then
	return cs
}

// Else sets the else clause of a conditional schema.
func (cs *ConditionalSchema) Else(otherwise *Schema) *Schema {
	cs.otherwise = otherwise
	return cs.ToSchema()
}

// ToSchema converts a conditional schema to a regular schema.
func (cs *ConditionalSchema) ToSchema() *Schema {
	return &Schema{
		If:   cs.condition,
		Then: cs.then,
		Else: cs.otherwise,
	}
}
