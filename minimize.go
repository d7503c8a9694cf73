package cogitojson

import (
	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// Minimizer rewrites schemas into semantically-equivalent but structurally
// smaller forms. It carries its rule sequence and the JSON codec used for
// cloning, both configurable through chained setters.
type Minimizer struct {
	rules       []ReductionRule
	jsonEncoder func(v any) ([]byte, error)
	jsonDecoder func(data []byte, v any) error
}

// NewMinimizer creates a Minimizer with the default rule sequence.
func NewMinimizer() *Minimizer {
	return &Minimizer{
		rules:       DefaultRules,
		jsonEncoder: defaultEncodeJSON,
		jsonDecoder: defaultDecodeJSON,
	}
}

// WithRules replaces the rule sequence. Rules are applied in the given
// order.
func (m *Minimizer) WithRules(rules ...ReductionRule) *Minimizer {
	m.rules = rules
	return m
}

// WithEncoderJSON configures a custom JSON encoder implementation.
func (m *Minimizer) WithEncoderJSON(encoder func(v any) ([]byte, error)) *Minimizer {
	m.jsonEncoder = encoder
	return m
}

// WithDecoderJSON configures a custom JSON decoder implementation.
func (m *Minimizer) WithDecoderJSON(decoder func(data []byte, v any) error) *Minimizer {
	m.jsonDecoder = decoder
	return m
}

// Clone deep-copies a schema through the minimizer's codec.
func (m *Minimizer) Clone(s *Schema) (*Schema, error) {
	return cloneWith(s, m.jsonEncoder, m.jsonDecoder)
}

// Minimize rewrites the schema bottom-up: children are minimized first,
// then the rule sequence runs on each node until a full pass changes
// nothing. The input schema is never mutated.
func (m *Minimizer) Minimize(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	t := &Transformer{Post: m.applyRules}
	return t.Transform(s)
}

// applyRules runs the rule sequence to a fixed point on a single node.
// Any accepted rewrite restarts the sequence from the first rule.
func (m *Minimizer) applyRules(s *Schema) *Schema {
	for {
		changed := false
		for _, rule := range m.rules {
			reduced := rule(s)
			if reduced == s {
				// Reference equality: the rule declined without a rewrite,
				// skip the serialized comparison.
				continue
			}
			if sameSerialization(s, reduced) {
				continue
			}
			s = reduced
			changed = true
			break
		}
		if !changed {
			return s
		}
	}
}

// sameSerialization reports whether two schemas serialize to deep-equal
// JSON values.
func sameSerialization(a, b *Schema) bool {
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

// defaultMinimizer backs the package-level Minimize.
var defaultMinimizer = NewMinimizer()

// Minimize rewrites the schema with the default rule sequence. See
// Minimizer.Minimize.
func Minimize(s *Schema) *Schema {
	return defaultMinimizer.Minimize(s)
}
