package cogitojson

import (
	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// ReductionRule is a behavior-preserving schema rewrite: for every
// document, the reduced schema accepts iff the input does. A rule returns
// its input unchanged (same pointer) when it does not apply, and a fresh
// deep-cloned schema when it does.
type ReductionRule func(*Schema) *Schema

// DefaultRules is the rule sequence applied by Minimize, in order.
var DefaultRules = []ReductionRule{
	RemoveDuplicateAllOf,
	RemoveDuplicateAnyOf,
	RemoveDuplicateOneOf,
	RemoveDuplicateEnum,
	RemoveEmptySchemaFromAllOf,
	RemoveOneOfIfEmptySchemaAllowed,
	RemoveEnumIfConst,
	PromoteOnlyAllOfInAllOf,
	PromoteAllOfWithOneOfToOneOfIfOneOfIsEmpty,
	RemoveTypeOnlyAllOfIfParentIsSame,
}

// serializeMembers renders each sub-schema to its JSON value form. Member
// equality questions are always decided on this form.
func serializeMembers(schemas []*Schema) ([]*jsonvalue.Value, bool) {
	values := make([]*jsonvalue.Value, len(schemas))
	for i, child := range schemas {
		if child == nil {
			return nil, false
		}
		v, err := child.jsonValue()
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// isEmptySchemaValue reports whether a serialized schema is the empty
// object {}.
func isEmptySchemaValue(v *jsonvalue.Value) bool {
	return v.Kind() == jsonvalue.Object && v.Len() == 0
}

// soleKey returns the only member name of a serialized schema object, when
// it has exactly one.
func soleKey(v *jsonvalue.Value) (string, bool) {
	if v.Kind() != jsonvalue.Object || v.Len() != 1 {
		return "", false
	}
	return v.Members()[0].Name, true
}

// dedupeList removes later duplicates from a combinator collection,
// keeping first-occurrence order. get and set select the collection on the
// original and on the clone.
func dedupeList(s *Schema, get func(*Schema) []*Schema, set func(*Schema, []*Schema)) *Schema {
	list := get(s)
	if len(list) < 2 {
		return s
	}
	values, ok := serializeMembers(list)
	if !ok {
		return s
	}

	keep := make([]int, 0, len(list))
	for i := range list {
		duplicate := false
		for _, j := range keep {
			if jsonvalue.DeepEquals(values[j], values[i]) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(list) {
		return s
	}

	clone, err := Clone(s)
	if err != nil {
		return s
	}
	cloned := get(clone)
	kept := make([]*Schema, 0, len(keep))
	for _, i := range keep {
		kept = append(kept, cloned[i])
	}
	set(clone, kept)
	return clone
}

// RemoveDuplicateAllOf drops allOf members that serialize identically to
// an earlier member.
func RemoveDuplicateAllOf(s *Schema) *Schema {
	return dedupeList(s,
		func(s *Schema) []*Schema { return s.AllOf },
		func(s *Schema, list []*Schema) { s.AllOf = list })
}

// RemoveDuplicateAnyOf drops anyOf members that serialize identically to
// an earlier member.
func RemoveDuplicateAnyOf(s *Schema) *Schema {
	return dedupeList(s,
		func(s *Schema) []*Schema { return s.AnyOf },
		func(s *Schema, list []*Schema) { s.AnyOf = list })
}

// RemoveDuplicateOneOf drops oneOf members that serialize identically to
// an earlier member.
func RemoveDuplicateOneOf(s *Schema) *Schema {
	return dedupeList(s,
		func(s *Schema) []*Schema { return s.OneOf },
		func(s *Schema, list []*Schema) { s.OneOf = list })
}

// RemoveDuplicateEnum drops enum members deep-equal to an earlier member.
func RemoveDuplicateEnum(s *Schema) *Schema {
	if len(s.Enum) < 2 {
		return s
	}
	keep := make([]int, 0, len(s.Enum))
	for i := range s.Enum {
		duplicate := false
		for _, j := range keep {
			if jsonvalue.DeepEquals(s.Enum[j], s.Enum[i]) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(s.Enum) {
		return s
	}

	clone, err := Clone(s)
	if err != nil {
		return s
	}
	kept := make([]*jsonvalue.Value, 0, len(keep))
	for _, i := range keep {
		kept = append(kept, clone.Enum[i])
	}
	clone.Enum = kept
	return clone
}

// RemoveEmptySchemaFromAllOf drops allOf members that accept everything:
// schemas serializing to {} and literal true schemas.
func RemoveEmptySchemaFromAllOf(s *Schema) *Schema {
	if len(s.AllOf) == 0 {
		return s
	}
	values, ok := serializeMembers(s.AllOf)
	if !ok {
		return s
	}

	keep := make([]int, 0, len(s.AllOf))
	for i, child := range s.AllOf {
		if child.Valid != nil && *child.Valid {
			continue
		}
		if isEmptySchemaValue(values[i]) {
			continue
		}
		keep = append(keep, i)
	}
	if len(keep) == len(s.AllOf) {
		return s
	}

	clone, err := Clone(s)
	if err != nil {
		return s
	}
	kept := make([]*Schema, 0, len(keep))
	for _, i := range keep {
		kept = append(kept, clone.AllOf[i])
	}
	if len(kept) == 0 {
		kept = nil
	}
	clone.AllOf = kept
	return clone
}

// RemoveOneOfIfEmptySchemaAllowed clears oneOf entirely when a member
// serializes to {}: an always-true branch makes the whole keyword
// vacuously satisfiable.
func RemoveOneOfIfEmptySchemaAllowed(s *Schema) *Schema {
	if len(s.OneOf) == 0 {
		return s
	}
	values, ok := serializeMembers(s.OneOf)
	if !ok {
		return s
	}

	for _, v := range values {
		if isEmptySchemaValue(v) {
			clone, err := Clone(s)
			if err != nil {
				return s
			}
			clone.OneOf = nil
			return clone
		}
	}
	return s
}

// RemoveEnumIfConst clears enum when const already pins the value and the
// enum would have permitted it anyway.
func RemoveEnumIfConst(s *Schema) *Schema {
	if s.Const == nil || len(s.Enum) <= 1 {
		return s
	}
	found := false
	for _, member := range s.Enum {
		if jsonvalue.DeepEquals(member, s.Const) {
			found = true
			break
		}
	}
	if !found {
		return s
	}

	clone, err := Clone(s)
	if err != nil {
		return s
	}
	clone.Enum = nil
	return clone
}

// PromoteOnlyAllOfInAllOf splices members whose only populated field is
// their own allOf into the parent's allOf, removing a nesting level.
func PromoteOnlyAllOfInAllOf(s *Schema) *Schema {
	if len(s.AllOf) == 0 {
		return s
	}
	values, ok := serializeMembers(s.AllOf)
	if !ok {
		return s
	}

	promote := false
	for i := range s.AllOf {
		if key, ok := soleKey(values[i]); ok && key == "allOf" {
			promote = true
			break
		}
	}
	if !promote {
		return s
	}

	clone, err := Clone(s)
	if err != nil {
		return s
	}
	spliced := make([]*Schema, 0, len(clone.AllOf))
	for i, child := range clone.AllOf {
		if key, ok := soleKey(values[i]); ok && key == "allOf" {
			spliced = append(spliced, child.AllOf...)
		} else {
			spliced = append(spliced, child)
		}
	}
	clone.AllOf = spliced
	return clone
}

// PromoteAllOfWithOneOfToOneOfIfOneOfIsEmpty lifts a lone allOf member
// whose only populated field is oneOf into the parent's empty oneOf.
func PromoteAllOfWithOneOfToOneOfIfOneOfIsEmpty(s *Schema) *Schema {
	if len(s.OneOf) != 0 || len(s.AllOf) != 1 || s.AllOf[0] == nil {
		return s
	}
	v, err := s.AllOf[0].jsonValue()
	if err != nil {
		return s
	}
	if key, ok := soleKey(v); !ok || key != "oneOf" {
		return s
	}

	clone, err := Clone(s)
	if err != nil {
		return s
	}
	clone.OneOf = clone.AllOf[0].OneOf
	clone.AllOf = nil
	return clone
}

// RemoveTypeOnlyAllOfIfParentIsSame drops allOf members whose only
// populated field is a type identical to the parent's.
func RemoveTypeOnlyAllOfIfParentIsSame(s *Schema) *Schema {
	if len(s.Type) == 0 || len(s.AllOf) == 0 {
		return s
	}
	parentValue, err := s.jsonValue()
	if err != nil {
		return s
	}
	parentType, ok := parentValue.TryGet("type")
	if !ok {
		return s
	}
	values, ok := serializeMembers(s.AllOf)
	if !ok {
		return s
	}

	keep := make([]int, 0, len(s.AllOf))
	for i := range s.AllOf {
		if key, sole := soleKey(values[i]); sole && key == "type" {
			childType, _ := values[i].TryGet("type")
			if jsonvalue.DeepEquals(childType, parentType) {
				continue
			}
		}
		keep = append(keep, i)
	}
	if len(keep) == len(s.AllOf) {
		return s
	}

	clone, err := Clone(s)
	if err != nil {
		return s
	}
	kept := make([]*Schema, 0, len(keep))
	for _, i := range keep {
		kept = append(kept, clone.AllOf[i])
	}
	if len(kept) == 0 {
		kept = nil
	}
	clone.AllOf = kept
	return clone
}
