// Package jsonvalue provides a tagged in-memory model for JSON values.
//
// Unlike decoding into `any`, the model keeps the distinction between
// integer and floating-point numbers, preserves object member order, and
// supports arbitrarily large integers.
package jsonvalue

import (
	"fmt"
	"math/big"

	"github.com/rivo/uniseg"
)

// Kind identifies the JSON type of a Value.
type Kind int

// The seven value kinds. Integer and Float are distinct kinds: 1 and 1.0
// carry different tags and never compare deep-equal.
const (
	Null Kind = iota
	Boolean
	Integer
	Float
	String
	Array
	Object
)

// String returns the JSON Schema type name for the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Float:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Member is a single name/value pair of an object.
type Member struct {
	Name  string
	Value *Value
}

// Value is one node of a JSON document. The zero value is null.
type Value struct {
	kind Kind

	b     bool
	i     *big.Int
	f     float64
	s     string
	elems []*Value

	members []Member
	index   map[string]int
}

// NewNull returns the null value.
func NewNull() *Value {
	return &Value{kind: Null}
}

// NewBoolean returns a boolean value.
func NewBoolean(b bool) *Value {
	return &Value{kind: Boolean, b: b}
}

// NewInteger returns an integer value.
func NewInteger(i int64) *Value {
	return &Value{kind: Integer, i: big.NewInt(i)}
}

// NewBigInteger returns an integer value holding a copy of i.
func NewBigInteger(i *big.Int) *Value {
	return &Value{kind: Integer, i: new(big.Int).Set(i)}
}

// NewFloat returns a floating-point value.
func NewFloat(f float64) *Value {
	return &Value{kind: Float, f: f}
}

// NewString returns a string value.
func NewString(s string) *Value {
	return &Value{kind: String, s: s}
}

// NewArray returns an array value holding the given elements.
func NewArray(elems ...*Value) *Value {
	return &Value{kind: Array, elems: elems}
}

// NewObject returns an empty object value. Members are added with Set.
func NewObject() *Value {
	return &Value{kind: Object, index: map[string]int{}}
}

// Kind reports the JSON type tag of the value.
func (v *Value) Kind() Kind {
	return v.kind
}

// IsNumber reports whether the value is an Integer or a Float.
func (v *Value) IsNumber() bool {
	return v.kind == Integer || v.kind == Float
}

func (v *Value) expect(want Kind) {
	if v.kind != want {
		panic(&TypeMismatchError{Want: want, Got: v.kind})
	}
}

// Bool returns the boolean payload. It panics with *TypeMismatchError when
// the value is not a Boolean; such a panic indicates a caller bug, not bad
// input data.
func (v *Value) Bool() bool {
	v.expect(Boolean)
	return v.b
}

// Int returns the integer payload. The returned big.Int must not be
// mutated. Panics with *TypeMismatchError on any other kind.
func (v *Value) Int() *big.Int {
	v.expect(Integer)
	return v.i
}

// Float returns the floating-point payload. Panics with *TypeMismatchError
// on any other kind.
func (v *Value) Float() float64 {
	v.expect(Float)
	return v.f
}

// Str returns the string payload. Panics with *TypeMismatchError on any
// other kind.
func (v *Value) Str() string {
	v.expect(String)
	return v.s
}

// TextLength returns the string payload's length in text elements
// (extended grapheme clusters), the unit schema length constraints are
// measured in. Panics with *TypeMismatchError on any other kind.
func (v *Value) TextLength() int {
	v.expect(String)
	return uniseg.GraphemeClusterCount(v.s)
}

// Len returns the element count of an array or the member count of an
// object.
func (v *Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.elems)
	case Object:
		return len(v.members)
	default:
		panic(&TypeMismatchError{Want: Array, Got: v.kind})
	}
}

// Index returns the i-th element of an array.
func (v *Value) Index(i int) *Value {
	v.expect(Array)
	return v.elems[i]
}

// Elements returns the backing element slice of an array. The slice must
// not be mutated.
func (v *Value) Elements() []*Value {
	v.expect(Array)
	return v.elems
}

// Set adds or replaces an object member. Replacing keeps the member's
// original position so insertion order is stable. Returns v for chaining.
func (v *Value) Set(name string, value *Value) *Value {
	v.expect(Object)
	if i, ok := v.index[name]; ok {
		v.members[i].Value = value
		return v
	}
	v.index[name] = len(v.members)
	v.members = append(v.members, Member{Name: name, Value: value})
	return v
}

// ContainsKey reports whether the object has a member with the given name.
func (v *Value) ContainsKey(name string) bool {
	v.expect(Object)
	_, ok := v.index[name]
	return ok
}

// TryGet returns the member value for name, if present.
func (v *Value) TryGet(name string) (*Value, bool) {
	v.expect(Object)
	i, ok := v.index[name]
	if !ok {
		return nil, false
	}
	return v.members[i].Value, true
}

// Keys returns the member names of an object in insertion order.
func (v *Value) Keys() []string {
	v.expect(Object)
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Name
	}
	return keys
}

// Members returns the name/value pairs of an object in insertion order.
// The slice must not be mutated.
func (v *Value) Members() []Member {
	v.expect(Object)
	return v.members
}

// DeepEquals reports structural equality of two values: equal kinds, and
// recursively equal payloads. Arrays compare positionally; objects compare
// by matching name sets and per-name equality, regardless of member order.
// Integer and Float never compare equal to each other.
func DeepEquals(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Boolean:
		return a.b == b.b
	case Integer:
		return a.i.Cmp(b.i) == 0
	case Float:
		return a.f == b.f
	case String:
		return a.s == b.s
	case Array:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !DeepEquals(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.members) != len(b.members) {
			return false
		}
		for _, m := range a.members {
			other, ok := b.TryGet(m.Name)
			if !ok || !DeepEquals(m.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Equal is a method form of DeepEquals.
func (v *Value) Equal(other *Value) bool {
	return DeepEquals(v, other)
}

// String returns the canonical JSON form, for debugging.
func (v *Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid: %v>", err)
	}
	return string(data)
}

// TypeMismatchError reports a typed accessor called on a value of a
// different kind. On well-formed inputs it is never observed: it signals a
// bug in the calling code.
type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("jsonvalue: accessor for %s called on %s value", e.Want, e.Got)
}
