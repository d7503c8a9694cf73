package cogitojson

import "strings"

// Draft identifies the JSON Schema specification revision a schema targets.
type Draft int

// Supported drafts. The only behavioral difference carried through
// validation is numeric-type coercion: from Draft6 on, a float with a zero
// fractional part satisfies "integer".
const (
	Draft3 Draft = 3
	Draft4 Draft = 4
	Draft6 Draft = 6
	Draft7 Draft = 7
)

// DefaultDraft is assumed when a schema does not declare $schema.
const DefaultDraft = Draft7

// draftFromURI maps a $schema URI to its draft. Unknown URIs map to
// DefaultDraft.
func draftFromURI(uri string) Draft {
	u := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(uri, "https://"), "http://"), "#")
	u = strings.TrimSuffix(u, "/")
	switch u {
	case "json-schema.org/draft-03/schema":
		return Draft3
	case "json-schema.org/draft-04/schema":
		return Draft4
	case "json-schema.org/draft-06/schema":
		return Draft6
	case "json-schema.org/draft-07/schema":
		return Draft7
	default:
		return DefaultDraft
	}
}

// coercesIntegralFloat reports whether the draft treats integral floats as
// integers.
func (d Draft) coercesIntegralFloat() bool {
	return d >= Draft6
}
