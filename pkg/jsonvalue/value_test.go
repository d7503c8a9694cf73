package jsonvalue

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "null", Null.String())
	assert.Equal(t, "integer", Integer.String())
	assert.Equal(t, "number", Float.String())
	assert.Equal(t, "object", Object.String())
}

func TestDeepEqualsScalars(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"null null", NewNull(), NewNull(), true},
		{"true true", NewBoolean(true), NewBoolean(true), true},
		{"true false", NewBoolean(true), NewBoolean(false), false},
		{"int int equal", NewInteger(42), NewInteger(42), true},
		{"int int unequal", NewInteger(42), NewInteger(43), false},
		{"float float equal", NewFloat(1.5), NewFloat(1.5), true},
		{"integer and float stay distinct", NewInteger(1), NewFloat(1.0), false},
		{"string equal", NewString("a"), NewString("a"), true},
		{"string unequal", NewString("a"), NewString("b"), false},
		{"kind mismatch", NewString("1"), NewInteger(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeepEquals(tt.a, tt.b))
			// symmetry
			assert.Equal(t, tt.want, DeepEquals(tt.b, tt.a))
		})
	}
}

func TestDeepEqualsBigIntegers(t *testing.T) {
	big1, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	big2, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	assert.True(t, DeepEquals(NewBigInteger(big1), NewBigInteger(big2)))
	assert.False(t, DeepEquals(NewBigInteger(big1), NewInteger(1)))
}

func TestDeepEqualsArrays(t *testing.T) {
	a := NewArray(NewInteger(1), NewString("x"))
	b := NewArray(NewInteger(1), NewString("x"))
	c := NewArray(NewString("x"), NewInteger(1))

	assert.True(t, DeepEquals(a, b))
	assert.False(t, DeepEquals(a, c), "arrays compare positionally")
	assert.False(t, DeepEquals(a, NewArray(NewInteger(1))))
}

func TestDeepEqualsObjects(t *testing.T) {
	a := NewObject().Set("x", NewInteger(1)).Set("y", NewInteger(2))
	b := NewObject().Set("y", NewInteger(2)).Set("x", NewInteger(1))
	c := NewObject().Set("x", NewInteger(1)).Set("y", NewInteger(3))

	assert.True(t, DeepEquals(a, b), "member order does not affect equality")
	assert.False(t, DeepEquals(a, c))
	assert.False(t, DeepEquals(a, NewObject().Set("x", NewInteger(1))))
}

func TestDeepEqualsProperties(t *testing.T) {
	values := []*Value{
		NewNull(),
		NewBoolean(true),
		NewInteger(7),
		NewFloat(7),
		NewString("7"),
		NewArray(NewInteger(7)),
		NewObject().Set("n", NewInteger(7)),
	}

	// reflexivity
	for _, v := range values {
		assert.True(t, DeepEquals(v, v))
	}

	// transitivity over equal copies
	a := NewObject().Set("k", NewArray(NewInteger(1), NewFloat(2)))
	b := NewObject().Set("k", NewArray(NewInteger(1), NewFloat(2)))
	c := NewObject().Set("k", NewArray(NewInteger(1), NewFloat(2)))
	require.True(t, DeepEquals(a, b))
	require.True(t, DeepEquals(b, c))
	assert.True(t, DeepEquals(a, c))
}

func TestObjectOrderAndUniqueness(t *testing.T) {
	obj := NewObject().
		Set("b", NewInteger(1)).
		Set("a", NewInteger(2)).
		Set("b", NewInteger(3))

	assert.Equal(t, []string{"b", "a"}, obj.Keys(), "replacement keeps the original position")
	assert.Equal(t, 2, obj.Len())

	v, ok := obj.TryGet("b")
	require.True(t, ok)
	assert.Equal(t, int64(3), v.Int().Int64())

	assert.True(t, obj.ContainsKey("a"))
	assert.False(t, obj.ContainsKey("c"))
	_, ok = obj.TryGet("c")
	assert.False(t, ok)
}

func TestTextLength(t *testing.T) {
	assert.Equal(t, 0, NewString("").TextLength())
	assert.Equal(t, 3, NewString("abc").TextLength())
	assert.Equal(t, 1, NewString("é").TextLength())
	assert.Equal(t, 1, NewString("🇺🇸").TextLength(), "a flag is one text element")
}

func TestArrayAccess(t *testing.T) {
	arr := NewArray(NewString("x"), NewString("y"))
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, "y", arr.Index(1).Str())
}

func TestAccessorMismatchPanics(t *testing.T) {
	v := NewString("hello")

	defer func() {
		r := recover()
		require.NotNil(t, r)
		mismatch, ok := r.(*TypeMismatchError)
		require.True(t, ok)
		assert.Equal(t, Boolean, mismatch.Want)
		assert.Equal(t, String, mismatch.Got)
		assert.Contains(t, mismatch.Error(), "boolean")
	}()
	v.Bool()
}

func TestFromConversions(t *testing.T) {
	v, err := From(map[string]any{"a": []any{1, 2.5, "x", nil, true}})
	require.NoError(t, err)
	require.Equal(t, Object, v.Kind())

	arr, ok := v.TryGet("a")
	require.True(t, ok)
	require.Equal(t, Array, arr.Kind())
	assert.Equal(t, Integer, arr.Index(0).Kind())
	assert.Equal(t, Float, arr.Index(1).Kind())
	assert.Equal(t, String, arr.Index(2).Kind())
	assert.Equal(t, Null, arr.Index(3).Kind())
	assert.Equal(t, Boolean, arr.Index(4).Kind())

	_, err = From(struct{}{})
	assert.Error(t, err)
}
