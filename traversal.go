package cogitojson

// Transformer rebuilds a schema tree field by field, producing a
// transformed copy and leaving the input untouched.
//
// Every sub-schema-valued field has an overridable hook. A nil hook falls
// back to the default, which rebuilds the field by recursing through
// Transform; scalar keywords are carried over unchanged. Post, when set,
// runs on every rebuilt node after its children, which is where node-level
// rewrites such as the reduction rules attach.
//
// The zero value is the identity transform: Transform returns a copy whose
// serialization is deep-equal to the input's.
type Transformer struct {
	// Post is applied to each rebuilt schema node, children first.
	Post func(*Schema) *Schema

	// Hooks for single sub-schema fields.
	VisitNot                  func(*Schema) *Schema
	VisitIf                   func(*Schema) *Schema
	VisitThen                 func(*Schema) *Schema
	VisitElse                 func(*Schema) *Schema
	VisitItems                func(*Schema) *Schema
	VisitContains             func(*Schema) *Schema
	VisitAdditionalProperties func(*Schema) *Schema
	VisitPropertyNames        func(*Schema) *Schema

	// Hooks for sub-schema collections.
	VisitAllOf       func([]*Schema) []*Schema
	VisitAnyOf       func([]*Schema) []*Schema
	VisitOneOf       func([]*Schema) []*Schema
	VisitPrefixItems func([]*Schema) []*Schema

	// Hooks for named sub-schema maps.
	VisitProperties        func(*SchemaMap) *SchemaMap
	VisitPatternProperties func(*SchemaMap) *SchemaMap

	// VisitDependencies rewrites the dependencies keyword. The default
	// dispatches per member: name lists are copied, schema dependencies
	// recurse.
	VisitDependencies func(map[string]*Dependency) map[string]*Dependency
}

// Transform returns the rebuilt schema, or nil for a nil input. A boolean
// schema has no sub-schemas, so it comes back as a plain copy (still passed
// through Post).
func (t *Transformer) Transform(s *Schema) *Schema {
	if s == nil {
		return nil
	}

	out := *s

	out.Not = t.applySingle(t.VisitNot, s.Not)
	out.If = t.applySingle(t.VisitIf, s.If)
	out.Then = t.applySingle(t.VisitThen, s.Then)
	out.Else = t.applySingle(t.VisitElse, s.Else)
	out.Items = t.applySingle(t.VisitItems, s.Items)
	out.Contains = t.applySingle(t.VisitContains, s.Contains)
	out.AdditionalProperties = t.applySingle(t.VisitAdditionalProperties, s.AdditionalProperties)
	out.PropertyNames = t.applySingle(t.VisitPropertyNames, s.PropertyNames)

	out.AllOf = t.applyList(t.VisitAllOf, s.AllOf)
	out.AnyOf = t.applyList(t.VisitAnyOf, s.AnyOf)
	out.OneOf = t.applyList(t.VisitOneOf, s.OneOf)
	out.PrefixItems = t.applyList(t.VisitPrefixItems, s.PrefixItems)

	out.Properties = t.applyMap(t.VisitProperties, s.Properties)
	out.PatternProperties = t.applyMap(t.VisitPatternProperties, s.PatternProperties)

	out.Dependencies = t.applyDependencies(s.Dependencies)

	if t.Post != nil {
		return t.Post(&out)
	}
	return &out
}

func (t *Transformer) applySingle(hook func(*Schema) *Schema, s *Schema) *Schema {
	if s == nil {
		return nil
	}
	if hook != nil {
		return hook(s)
	}
	return t.Transform(s)
}

func (t *Transformer) applyList(hook func([]*Schema) []*Schema, schemas []*Schema) []*Schema {
	if schemas == nil {
		return nil
	}
	if hook != nil {
		return hook(schemas)
	}
	rebuilt := make([]*Schema, len(schemas))
	for i, child := range schemas {
		rebuilt[i] = t.Transform(child)
	}
	return rebuilt
}

func (t *Transformer) applyMap(hook func(*SchemaMap) *SchemaMap, m *SchemaMap) *SchemaMap {
	if m == nil {
		return nil
	}
	if hook != nil {
		return hook(m)
	}
	rebuilt := make(SchemaMap, len(*m))
	for name, child := range *m {
		rebuilt[name] = t.Transform(child)
	}
	return &rebuilt
}

func (t *Transformer) applyDependencies(deps map[string]*Dependency) map[string]*Dependency {
	if deps == nil {
		return nil
	}
	if t.VisitDependencies != nil {
		return t.VisitDependencies(deps)
	}
	rebuilt := make(map[string]*Dependency, len(deps))
	for name, dep := range deps {
		if dep == nil {
			rebuilt[name] = nil
			continue
		}
		next := &Dependency{}
		if dep.Schema != nil {
			next.Schema = t.Transform(dep.Schema)
		} else {
			next.Required = append([]string(nil), dep.Required...)
		}
		rebuilt[name] = next
	}
	return rebuilt
}
