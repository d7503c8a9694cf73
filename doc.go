// Package cogitojson compiles JSON Schema documents (drafts 3 through 7)
// into executable validators and rewrites schemas into smaller equivalent
// forms.
//
// A schema compiles once into a ValidateFunc and is then applied to any
// number of documents:
//
//	schema, err := cogitojson.ParseSchema([]byte(`{"type":"integer","minimum":0}`))
//	validate, err := cogitojson.CompileValidator(schema)
//	doc, err := jsonvalue.Parse([]byte(`5`))
//	ok := validate(doc) // true
//
// The validator yields a plain boolean verdict. Recursive schemas, where a
// schema object reappears inside itself, compile in bounded time through
// late-bound placeholder cells.
//
// Minimize applies a fixed sequence of behavior-preserving reduction rules
// until the schema stops shrinking:
//
//	smaller := cogitojson.Minimize(schema)
//
// Documents are represented by the tagged value model in pkg/jsonvalue,
// which preserves the integer/float distinction and object member order.
package cogitojson
