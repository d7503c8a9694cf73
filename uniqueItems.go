package cogitojson

import "github.com/alethic/cogitojson/pkg/jsonvalue"

// buildUniqueItems compiles uniqueItems: true. Every pair of array
// elements must be deep-unequal; 1 and 1.0 carry different type tags and
// do not collide. Non-array documents pass.
func buildUniqueItems() predicate {
	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() != jsonvalue.Array {
			return true
		}
		elems := v.Elements()
		for i := 1; i < len(elems); i++ {
			for j := 0; j < i; j++ {
				if jsonvalue.DeepEquals(elems[i], elems[j]) {
					return false
				}
			}
		}
		return true
	})
}
