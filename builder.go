package cogitojson

import (
	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// ValidateFunc is a compiled validator: it reports whether a document
// satisfies the schema it was built from. It never returns an error; any
// library failure inside a keyword (regex, base64, JSON parse) counts as a
// false verdict for that keyword.
type ValidateFunc func(v *jsonvalue.Value) bool

// cell is a late-bound indirection for the validator of a schema that is
// still being compiled. Recursive references call through the cell, which
// is bound to the finished body once compilation of that schema completes.
type cell struct {
	fn ValidateFunc
}

// ValidatorBuilder lowers schema trees into compiled validators. A builder
// carries the format, decoder and media type registries, plus the tables
// that resolve recursive schema references.
type ValidatorBuilder struct {
	formats    map[string]func(string) bool
	decoders   map[string]func(string) ([]byte, error)
	mediaTypes map[string]func([]byte) error

	delayed  map[*Schema]*cell        // schemas mid-compilation that were re-entered
	bodies   map[*Schema]ValidateFunc // finished bodies for re-entered schemas
	done     map[*Schema]predicate    // all finished schemas
	building map[*Schema]bool

	draft Draft
}

// NewValidatorBuilder creates a builder with the default registries.
func NewValidatorBuilder() *ValidatorBuilder {
	b := &ValidatorBuilder{
		formats:    make(map[string]func(string) bool),
		decoders:   make(map[string]func(string) ([]byte, error)),
		mediaTypes: make(map[string]func([]byte) error),
		delayed:    make(map[*Schema]*cell),
		bodies:     make(map[*Schema]ValidateFunc),
		done:       make(map[*Schema]predicate),
		building:   make(map[*Schema]bool),
		draft:      DefaultDraft,
	}
	for name, fn := range Formats {
		b.formats[name] = fn
	}
	b.initContentDefaults()
	return b
}

// RegisterFormat adds or replaces a format predicate. Registering nil
// removes the format, turning it back into an accept-all name.
func (b *ValidatorBuilder) RegisterFormat(name string, fn func(string) bool) *ValidatorBuilder {
	if fn == nil {
		delete(b.formats, name)
		return b
	}
	b.formats[name] = fn
	return b
}

// RegisterDecoder adds a decoder for a contentEncoding name.
func (b *ValidatorBuilder) RegisterDecoder(encoding string, fn func(string) ([]byte, error)) *ValidatorBuilder {
	b.decoders[encoding] = fn
	return b
}

// RegisterMediaType adds a parse check for a contentMediaType name.
func (b *ValidatorBuilder) RegisterMediaType(mediaType string, fn func([]byte) error) *ValidatorBuilder {
	b.mediaTypes[mediaType] = fn
	return b
}

// Build compiles the schema into a validator. Construction problems (an
// invalid regex, an unsupported construct) surface here; the returned
// validator itself is error-free.
func (b *ValidatorBuilder) Build(s *Schema) (ValidateFunc, error) {
	if s == nil {
		return nil, ErrNilSchema
	}

	p, err := b.eval(s, nil)
	if err != nil {
		return nil, err
	}

	// Close the expression graph: every placeholder allocated during this
	// build is bound to its finished body.
	for schema, c := range b.delayed {
		if c.fn == nil {
			c.fn = b.bodies[schema]
		}
	}

	return p.finalize(), nil
}

// CompileValidator compiles a schema with a fresh builder and default
// registries.
func CompileValidator(s *Schema) (ValidateFunc, error) {
	return NewValidatorBuilder().Build(s)
}

// Validator compiles the schema into a validator using the default
// registries.
func (s *Schema) Validator() (ValidateFunc, error) {
	return CompileValidator(s)
}

// eval produces the predicate for a schema, resolving re-entrancy through
// placeholder cells: a schema encountered again while its own body is
// being compiled yields an indirect call instead of recursing forever.
func (b *ValidatorBuilder) eval(s *Schema, path []string) (predicate, error) {
	if p, ok := b.done[s]; ok {
		return p, nil
	}

	if b.building[s] {
		c := b.delayed[s]
		if c == nil {
			c = &cell{}
			b.delayed[s] = c
		}
		return cellPred(c), nil
	}

	b.building[s] = true
	body, err := b.compileBody(s, path)
	delete(b.building, s)
	if err != nil {
		return falsePred, err
	}

	if c, ok := b.delayed[s]; ok {
		// Recursion was discovered while compiling the body: route every
		// use through the cell so the back-edge stays a single indirection.
		fn := body.finalize()
		b.bodies[s] = fn
		c.fn = fn
		p := cellPred(c)
		b.done[s] = p
		return p, nil
	}

	b.done[s] = body
	return body, nil
}

// compileBody lowers one schema node into the conjunction of its keyword
// predicates.
func (b *ValidatorBuilder) compileBody(s *Schema, path []string) (predicate, error) {
	if s.Valid != nil {
		return constPred(*s.Valid), nil
	}

	prevDraft := b.draft
	if s.SchemaVersion != "" {
		b.draft = draftFromURI(s.SchemaVersion)
	}
	defer func() { b.draft = prevDraft }()

	var preds []predicate
	add := func(p predicate) {
		preds = append(preds, p)
	}

	// Any-type keywords.
	if len(s.Type) > 0 {
		add(b.buildType(s))
	}
	if s.Const != nil {
		add(buildConst(s))
	}
	if len(s.Enum) > 0 {
		add(buildEnum(s))
	}

	// Combinators and conditionals.
	if len(s.AllOf) > 0 {
		p, err := b.buildAllOf(s, path)
		if err != nil {
			return falsePred, err
		}
		add(p)
	}
	if len(s.AnyOf) > 0 {
		p, err := b.buildAnyOf(s, path)
		if err != nil {
			return falsePred, err
		}
		add(p)
	}
	if len(s.OneOf) > 0 {
		p, err := b.buildOneOf(s, path)
		if err != nil {
			return falsePred, err
		}
		add(p)
	}
	if s.Not != nil {
		p, err := b.buildNot(s, path)
		if err != nil {
			return falsePred, err
		}
		add(p)
	}
	if s.If != nil {
		p, err := b.buildConditional(s, path)
		if err != nil {
			return falsePred, err
		}
		add(p)
	}

	// Numeric keywords.
	if s.Minimum != nil {
		add(buildMinimum(s))
	}
	if s.Maximum != nil {
		add(buildMaximum(s))
	}
	if s.ExclusiveMinimum != nil {
		add(buildExclusiveMinimum(s))
	}
	if s.ExclusiveMaximum != nil {
		add(buildExclusiveMaximum(s))
	}
	if s.MultipleOf != nil {
		add(buildMultipleOf(s))
	}

	// String keywords.
	if s.MinLength != nil {
		add(buildMinLength(s))
	}
	if s.MaxLength != nil {
		add(buildMaxLength(s))
	}
	if s.Pattern != nil {
		p, err := buildPattern(s, path)
		if err != nil {
			return falsePred, err
		}
		add(p)
	}
	if s.Format != nil {
		if p, ok := b.buildFormat(s); ok {
			add(p)
		}
	}
	if s.ContentEncoding != nil || s.ContentMediaType != nil {
		add(b.buildContent(s))
	}

	// Array keywords.
	if s.Items != nil || len(s.PrefixItems) > 0 {
		p, err := b.buildItems(s, path)
		if err != nil {
			return falsePred, err
		}
		add(p)
	}
	if s.Contains != nil {
		p, err := b.buildContains(s, path)
		if err != nil {
			return falsePred, err
		}
		add(p)
	}
	if s.MinItems != nil {
		add(buildMinItems(s))
	}
	if s.MaxItems != nil {
		add(buildMaxItems(s))
	}
	if s.UniqueItems != nil && *s.UniqueItems {
		add(buildUniqueItems())
	}

	// Object keywords.
	if s.Properties != nil {
		p, err := b.buildProperties(s, path)
		if err != nil {
			return falsePred, err
		}
		add(p)
	}
	if s.PatternProperties != nil {
		p, err := b.buildPatternProperties(s, path)
		if err != nil {
			return falsePred, err
		}
		add(p)
	}
	if s.AdditionalProperties != nil {
		p, err := b.buildAdditionalProperties(s, path)
		if err != nil {
			return falsePred, err
		}
		add(p)
	}
	if s.PropertyNames != nil {
		p, err := b.buildPropertyNames(s, path)
		if err != nil {
			return falsePred, err
		}
		add(p)
	}
	if len(s.Required) > 0 {
		add(buildRequired(s))
	}
	if s.MinProperties != nil {
		add(buildMinProperties(s))
	}
	if s.MaxProperties != nil {
		add(buildMaxProperties(s))
	}
	if len(s.Dependencies) > 0 {
		p, err := b.buildDependencies(s, path)
		if err != nil {
			return falsePred, err
		}
		add(p)
	}

	return and(preds...), nil
}
