package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// Keyword represents a schema keyword that can be applied to any schema.
type Keyword func(*Schema)

// ===============================
// String keywords
// ===============================

// MinLen sets the minLength keyword.
func MinLen(min int) Keyword {
	return func(s *Schema) {
		f := float64(min)
		s.MinLength = &f
	}
}

// MaxLen sets the maxLength keyword.
func MaxLen(max int) Keyword {
	return func(s *Schema) {
		f := float64(max)
		s.MaxLength = &f
	}
}

// Pattern sets the pattern keyword.
func Pattern(pattern string) Keyword {
	return func(s *Schema) {
		s.Pattern = &pattern
	}
}

// Format sets the format keyword.
func Format(format string) Keyword {
	return func(s *Schema) {
		s.Format = &format
	}
}

// ContentEncoding sets the contentEncoding keyword.
func ContentEncoding(encoding string) Keyword {
	return func(s *Schema) {
		s.ContentEncoding = &encoding
	}
}

// ContentMediaType sets the contentMediaType keyword.
func ContentMediaType(mediaType string) Keyword {
	return func(s *Schema) {
		s.ContentMediaType = &mediaType
	}
}

// ===============================
// Number keywords
// ===============================

// Min sets the minimum keyword.
func Min(min float64) Keyword {
	return func(s *Schema) {
		s.Minimum = NewRat(min)
	}
}

// Max sets the maximum keyword.
func Max(max float64) Keyword {
	return func(s *Schema) {
		s.Maximum = NewRat(max)
	}
}

// ExclusiveMin sets the numeric exclusiveMinimum keyword.
func ExclusiveMin(min float64) Keyword {
	return func(s *Schema) {
		s.ExclusiveMinimum = NewRat(min)
	}
}

// ExclusiveMax sets the numeric exclusiveMaximum keyword.
func ExclusiveMax(max float64) Keyword {
	return func(s *Schema) {
		s.ExclusiveMaximum = NewRat(max)
	}
}

// MultipleOf sets the multipleOf keyword.
func MultipleOf(multiple float64) Keyword {
	return func(s *Schema) {
		s.MultipleOf = NewRat(multiple)
	}
}

// ===============================
// Array keywords
// ===============================

// Items sets the single-schema items keyword.
func Items(itemSchema *Schema) Keyword {
	return func(s *Schema) {
		s.Items = itemSchema
	}
}

// TupleItems sets the positional items keyword.
func TupleItems(schemas ...*Schema) Keyword {
	return func(s *Schema) {
		s.PrefixItems = schemas
	}
}

// AdditionalItems sets the schema for elements past the positional items.
func AdditionalItems(schema *Schema) Keyword {
	return func(s *Schema) {
		s.Items = schema
	}
}

// NoAdditionalItems forbids elements past the positional items.
func NoAdditionalItems() Keyword {
	return func(s *Schema) {
		s.Items = FalseSchema()
	}
}

// MinItems sets the minItems keyword.
func MinItems(min int) Keyword {
	return func(s *Schema) {
		f := float64(min)
		s.MinItems = &f
	}
}

// MaxItems sets the maxItems keyword.
func MaxItems(max int) Keyword {
	return func(s *Schema) {
		f := float64(max)
		s.MaxItems = &f
	}
}

// UniqueItems sets the uniqueItems keyword.
func UniqueItems(unique bool) Keyword {
	return func(s *Schema) {
		s.UniqueItems = &unique
	}
}

// Contains sets the contains keyword.
func Contains(schema *Schema) Keyword {
	return func(s *Schema) {
		s.Contains = schema
	}
}

// ===============================
// Object keywords
// ===============================

// Required sets the required keyword.
func Required(names ...string) Keyword {
	return func(s *Schema) {
		s.Required = names
	}
}

// MinProps sets the minProperties keyword.
func MinProps(min int) Keyword {
	return func(s *Schema) {
		f := float64(min)
		s.MinProperties = &f
	}
}

// MaxProps sets the maxProperties keyword.
func MaxProps(max int) Keyword {
	return func(s *Schema) {
		f := float64(max)
		s.MaxProperties = &f
	}
}

// AdditionalProperties sets the schema for undeclared properties.
func AdditionalProperties(schema *Schema) Keyword {
	return func(s *Schema) {
		s.AdditionalProperties = schema
	}
}

// NoAdditionalProperties forbids undeclared properties.
func NoAdditionalProperties() Keyword {
	return func(s *Schema) {
		s.AdditionalProperties = FalseSchema()
	}
}

// PropertyNames sets the propertyNames keyword.
func PropertyNames(schema *Schema) Keyword {
	return func(s *Schema) {
		s.PropertyNames = schema
	}
}

// PatternProps sets a patternProperties member.
func PatternProps(pattern string, schema *Schema) Keyword {
	return func(s *Schema) {
		if s.PatternProperties == nil {
			m := make(SchemaMap)
			s.PatternProperties = &m
		}
		(*s.PatternProperties)[pattern] = schema
	}
}

// DependsOn adds a name-list dependency: when key is present, every
// listed name must be present too.
func DependsOn(key string, names ...string) Keyword {
	return func(s *Schema) {
		if s.Dependencies == nil {
			s.Dependencies = make(map[string]*Dependency)
		}
		s.Dependencies[key] = &Dependency{Required: names}
	}
}

// DependentSchema adds a schema dependency: when key is present, the
// whole object must satisfy the schema.
func DependentSchema(key string, schema *Schema) Keyword {
	return func(s *Schema) {
		if s.Dependencies == nil {
			s.Dependencies = make(map[string]*Dependency)
		}
		s.Dependencies[key] = &Dependency{Schema: schema}
	}
}

// ===============================
// Meta-data keywords
// ===============================

// Title sets the title keyword.
func Title(title string) Keyword {
	return func(s *Schema) {
		s.Title = &title
	}
}

// Description sets the description keyword.
func Description(description string) Keyword {
	return func(s *Schema) {
		s.Description = &description
	}
}

// Default sets the default keyword. The value is converted with
// jsonvalue.MustFrom and panics on unsupported Go types.
func Default(value interface{}) Keyword {
	return func(s *Schema) {
		s.Default = jsonvalue.MustFrom(value)
	}
}

// Version sets the $schema keyword.
func Version(uri string) Keyword {
	return func(s *Schema) {
		s.SchemaVersion = uri
	}
}
