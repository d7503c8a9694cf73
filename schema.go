package cogitojson

import (
	"bytes"
	"fmt"
	"maps"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// knownSchemaFields contains all recognized JSON Schema keywords.
// Used to filter out known fields when collecting extension fields.
var knownSchemaFields = map[string]struct{}{
	// Core keywords
	"$id":     {},
	"id":      {}, // draft 3/4 spelling
	"$schema": {},

	// Applicator keywords
	"allOf":                {},
	"anyOf":                {},
	"oneOf":                {},
	"not":                  {},
	"if":                   {},
	"then":                 {},
	"else":                 {},
	"items":                {},
	"additionalItems":      {},
	"contains":             {},
	"properties":           {},
	"patternProperties":    {},
	"additionalProperties": {},
	"propertyNames":        {},
	"dependencies":         {},

	// Validation keywords
	"type":             {},
	"enum":             {},
	"const":            {},
	"multipleOf":       {},
	"maximum":          {},
	"exclusiveMaximum": {},
	"minimum":          {},
	"exclusiveMinimum": {},
	"maxLength":        {},
	"minLength":        {},
	"pattern":          {},
	"maxItems":         {},
	"minItems":         {},
	"uniqueItems":      {},
	"maxProperties":    {},
	"minProperties":    {},
	"required":         {},

	// Format keyword
	"format": {},

	// Content keywords
	"contentEncoding":  {},
	"contentMediaType": {},

	// Meta-data keywords
	"title":       {},
	"description": {},
	"default":     {},
}

// Schema represents a JSON Schema for drafts 3 through 7. Schemas are
// treated as immutable once loaded: the minimizer returns new schemas and
// compiled validators hold references into the tree they were built from.
type Schema struct {
	// Valid is the literal boolean verdict: a schema written as JSON true
	// or false. true accepts every document, false rejects every document.
	// When set, all other keywords are ignored.
	Valid *bool `json:"-"`

	ID            string `json:"$id,omitzero"`     // Public identifier for the schema.
	SchemaVersion string `json:"$schema,omitzero"` // URI of the specification draft the schema targets.

	// Meta-data keywords
	Title       *string          `json:"title,omitzero"`
	Description *string          `json:"description,omitzero"`
	Default     *jsonvalue.Value `json:"-"`

	// Applying subschemas with logical keywords
	AllOf []*Schema `json:"allOf,omitzero"`
	AnyOf []*Schema `json:"anyOf,omitzero"`
	OneOf []*Schema `json:"oneOf,omitzero"`
	Not   *Schema   `json:"not,omitzero"`

	// Applying subschemas conditionally
	If   *Schema `json:"if,omitzero"`
	Then *Schema `json:"then,omitzero"`
	Else *Schema `json:"else,omitzero"`

	// Any-type validation keywords
	Type  SchemaType         `json:"type,omitzero"`
	Const *jsonvalue.Value   `json:"-"`
	Enum  []*jsonvalue.Value `json:"-"`

	// Numeric validation keywords. The exclusive bounds appear twice
	// because the wire form changed across drafts: drafts 3/4 write a
	// boolean modifier next to minimum/maximum, draft 6 onward writes a
	// standalone number.
	MultipleOf           *Rat  `json:"multipleOf,omitzero"`
	Maximum              *Rat  `json:"maximum,omitzero"`
	ExclusiveMaximum     *Rat  `json:"exclusiveMaximum,omitzero"`
	Minimum              *Rat  `json:"minimum,omitzero"`
	ExclusiveMinimum     *Rat  `json:"exclusiveMinimum,omitzero"`
	ExclusiveMaximumFlag *bool `json:"-"`
	ExclusiveMinimumFlag *bool `json:"-"`

	// String validation keywords
	MaxLength *float64 `json:"maxLength,omitzero"`
	MinLength *float64 `json:"minLength,omitzero"`
	Pattern   *string  `json:"pattern,omitzero"`
	Format    *string  `json:"format,omitzero"`

	// Content keywords
	ContentEncoding  *string `json:"contentEncoding,omitzero"`
	ContentMediaType *string `json:"contentMediaType,omitzero"`

	// Array validation keywords. A tuple-form "items" parses into
	// PrefixItems, with "additionalItems" landing in Items; a single-schema
	// "items" parses into Items directly.
	PrefixItems []*Schema `json:"-"`
	Items       *Schema   `json:"-"`
	Contains    *Schema   `json:"contains,omitzero"`
	MaxItems    *float64  `json:"maxItems,omitzero"`
	MinItems    *float64  `json:"minItems,omitzero"`
	UniqueItems *bool     `json:"uniqueItems,omitzero"`

	// Object validation keywords
	Properties           *SchemaMap             `json:"properties,omitzero"`
	PatternProperties    *SchemaMap             `json:"patternProperties,omitzero"`
	AdditionalProperties *Schema                `json:"additionalProperties,omitzero"`
	PropertyNames        *Schema                `json:"propertyNames,omitzero"`
	Required             []string               `json:"required,omitzero"`
	MaxProperties        *float64               `json:"maxProperties,omitzero"`
	MinProperties        *float64               `json:"minProperties,omitzero"`
	Dependencies         map[string]*Dependency `json:"dependencies,omitzero"`

	// Extension keywords not in the specification, passed through verbatim.
	Extra map[string]any `json:"-"`
}

// Draft returns the specification draft the schema targets, derived from
// $schema, or DefaultDraft when undeclared.
func (s *Schema) Draft() Draft {
	if s.SchemaVersion == "" {
		return DefaultDraft
	}
	return draftFromURI(s.SchemaVersion)
}

// MarshalJSON implements json.Marshaler. Output keys are sorted so the
// serialized form is deterministic; serialization equality is what the
// minimizer compares.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.Valid != nil {
		return json.Marshal(*s.Valid)
	}

	type Alias Schema
	data, err := json.Marshal((*Alias)(s), json.Deterministic(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaEncode, err)
	}

	var m map[string]jsontext.Value
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaEncode, err)
	}

	// const, default and enum are written by hand: a present-but-null const
	// must survive serialization.
	if s.Const != nil {
		if m["const"], err = s.Const.MarshalJSON(); err != nil {
			return nil, err
		}
	}
	if s.Default != nil {
		if m["default"], err = s.Default.MarshalJSON(); err != nil {
			return nil, err
		}
	}
	if len(s.Enum) > 0 {
		if m["enum"], err = json.Marshal(s.Enum); err != nil {
			return nil, err
		}
	}

	// Draft 3/4 boolean exclusive bounds.
	if s.ExclusiveMinimumFlag != nil {
		if m["exclusiveMinimum"], err = json.Marshal(*s.ExclusiveMinimumFlag); err != nil {
			return nil, err
		}
	}
	if s.ExclusiveMaximumFlag != nil {
		if m["exclusiveMaximum"], err = json.Marshal(*s.ExclusiveMaximumFlag); err != nil {
			return nil, err
		}
	}

	// Reverse the items mapping back to the wire shape.
	if len(s.PrefixItems) > 0 {
		if m["items"], err = json.Marshal(s.PrefixItems); err != nil {
			return nil, err
		}
		if s.Items != nil {
			if m["additionalItems"], err = json.Marshal(s.Items); err != nil {
				return nil, err
			}
		}
	} else if s.Items != nil {
		if m["items"], err = json.Marshal(s.Items); err != nil {
			return nil, err
		}
	}

	for key, value := range s.Extra {
		if m[key], err = json.Marshal(value, json.Deterministic(true)); err != nil {
			return nil, err
		}
	}

	return json.Marshal(m, json.Deterministic(true))
}

// UnmarshalJSON implements json.Unmarshaler, handling boolean schemas and
// the keywords whose wire shape is polymorphic.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		s.Valid = &b
		return nil
	}

	// Intercept the keywords whose JSON shape varies across drafts.
	type Alias Schema
	aux := &struct {
		Items            jsontext.Value `json:"items"`
		AdditionalItems  jsontext.Value `json:"additionalItems"`
		ExclusiveMinimum jsontext.Value `json:"exclusiveMinimum"`
		ExclusiveMaximum jsontext.Value `json:"exclusiveMaximum"`
		LegacyID         string         `json:"id"`
		*Alias
	}{
		Alias: (*Alias)(s),
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	if s.ID == "" && aux.LegacyID != "" {
		s.ID = aux.LegacyID
	}

	if len(aux.Items) > 0 {
		trimmed := bytes.TrimSpace(aux.Items)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			// Tuple validation: positional schemas with "additionalItems"
			// constraining the rest.
			if err := json.Unmarshal(aux.Items, &s.PrefixItems); err != nil {
				return err
			}
			if len(aux.AdditionalItems) > 0 {
				if err := json.Unmarshal(aux.AdditionalItems, &s.Items); err != nil {
					return err
				}
			}
		} else {
			// List validation: one schema for every element. A sibling
			// "additionalItems" has no effect in this form.
			if err := json.Unmarshal(aux.Items, &s.Items); err != nil {
				return err
			}
		}
	}

	if err := s.unmarshalExclusive(aux.ExclusiveMinimum, &s.ExclusiveMinimum, &s.ExclusiveMinimumFlag); err != nil {
		return err
	}
	if err := s.unmarshalExclusive(aux.ExclusiveMaximum, &s.ExclusiveMaximum, &s.ExclusiveMaximumFlag); err != nil {
		return err
	}

	var raw map[string]jsontext.Value
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// const and default accept any JSON value, including null.
	if constData, ok := raw["const"]; ok {
		value, err := jsonvalue.Parse(constData)
		if err != nil {
			return err
		}
		s.Const = value
	}
	if defaultData, ok := raw["default"]; ok {
		value, err := jsonvalue.Parse(defaultData)
		if err != nil {
			return err
		}
		s.Default = value
	}
	if enumData, ok := raw["enum"]; ok {
		value, err := jsonvalue.Parse(enumData)
		if err != nil {
			return err
		}
		if value.Kind() != jsonvalue.Array {
			return fmt.Errorf("%w: enum must be an array", ErrSchemaDecode)
		}
		s.Enum = value.Elements()
	}

	return s.collectExtraFields(data)
}

// unmarshalExclusive splits the exclusiveMinimum/exclusiveMaximum wire
// value into its numeric (draft >= 6) or boolean (draft 3/4) form.
func (s *Schema) unmarshalExclusive(data jsontext.Value, rat **Rat, flag **bool) error {
	if len(data) == 0 {
		return nil
	}
	switch string(bytes.TrimSpace(data)) {
	case "true":
		v := true
		*flag = &v
	case "false":
		v := false
		*flag = &v
	default:
		r := &Rat{}
		if err := r.UnmarshalJSON(data); err != nil {
			return err
		}
		*rat = r
	}
	return nil
}

func (s *Schema) collectExtraFields(data []byte) error {
	var allFields map[string]any
	if err := json.Unmarshal(data, &allFields); err != nil {
		return err
	}

	for key := range knownSchemaFields {
		delete(allFields, key)
	}

	if len(allFields) > 0 {
		s.Extra = allFields
	}
	return nil
}

// jsonValue serializes the schema and reparses it into the value model.
// Reduction rules and the minimizer decide equality and "only populated
// field" questions on this form.
func (s *Schema) jsonValue() (*jsonvalue.Value, error) {
	data, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return jsonvalue.Parse(data)
}

// DeepEquals reports whether two schemas have the same JSON serialization.
func DeepEquals(a, b *Schema) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	av, err := a.jsonValue()
	if err != nil {
		return false
	}
	bv, err := b.jsonValue()
	if err != nil {
		return false
	}
	return jsonvalue.DeepEquals(av, bv)
}

// ParseSchema parses JSON schema data into a Schema.
func ParseSchema(data []byte) (*Schema, error) {
	schema := &Schema{}
	if err := json.Unmarshal(data, schema); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaDecode, err)
	}
	return schema, nil
}

// SchemaMap represents a map of string keys to *Schema values, used for
// properties and patternProperties.
type SchemaMap map[string]*Schema

// MarshalJSON ensures that SchemaMap serializes deterministically.
func (sm SchemaMap) MarshalJSON() ([]byte, error) {
	m := make(map[string]*Schema)
	maps.Copy(m, sm)
	return json.Marshal(m, json.Deterministic(true))
}

// UnmarshalJSON parses a JSON object into a SchemaMap.
func (sm *SchemaMap) UnmarshalJSON(data []byte) error {
	m := make(map[string]*Schema)
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*sm = SchemaMap(m)
	return nil
}

// SchemaType holds the type keyword's set of base-type names. A single
// name serializes as a bare string.
type SchemaType []string

// Contains reports whether the set includes the given type name.
func (st SchemaType) Contains(name string) bool {
	for _, t := range st {
		if t == name {
			return true
		}
	}
	return false
}

// MarshalJSON customizes the JSON serialization of SchemaType.
func (st SchemaType) MarshalJSON() ([]byte, error) {
	if len(st) == 1 {
		return json.Marshal(st[0])
	}
	return json.Marshal([]string(st))
}

// UnmarshalJSON customizes the JSON deserialization into SchemaType.
func (st *SchemaType) UnmarshalJSON(data []byte) error {
	var singleType string
	if err := json.Unmarshal(data, &singleType); err == nil {
		*st = SchemaType{singleType}
		return nil
	}

	var multiType []string
	if err := json.Unmarshal(data, &multiType); err == nil {
		*st = SchemaType(multiType)
		return nil
	}

	return ErrInvalidSchemaType
}

// Dependency is one member of the dependencies keyword: either a list of
// property names that must accompany the key, or a schema the whole object
// must satisfy when the key is present.
type Dependency struct {
	Required []string
	Schema   *Schema
}

// MarshalJSON emits the wire form matching the populated variant.
func (d Dependency) MarshalJSON() ([]byte, error) {
	if d.Schema != nil {
		return json.Marshal(d.Schema)
	}
	return json.Marshal(d.Required)
}

// UnmarshalJSON dispatches on the wire shape. The draft-3 single-name
// shorthand parses into a one-element Required list.
func (d *Dependency) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrInvalidDependency
	}
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(data, &d.Required); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDependency, err)
		}
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDependency, err)
		}
		d.Required = []string{name}
	case '{', 't', 'f':
		d.Schema = &Schema{}
		if err := json.Unmarshal(data, d.Schema); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDependency, err)
		}
	default:
		return ErrInvalidDependency
	}
	return nil
}
