package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{`null`, Null},
		{`true`, Boolean},
		{`false`, Boolean},
		{`1`, Integer},
		{`-7`, Integer},
		{`1.0`, Float},
		{`1e3`, Float},
		{`-2.5E-1`, Float},
		{`"hi"`, String},
		{`[]`, Array},
		{`{}`, Object},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestParseDistinguishesIntegerAndFloat(t *testing.T) {
	one, err := Parse([]byte(`1`))
	require.NoError(t, err)
	onePointZero, err := Parse([]byte(`1.0`))
	require.NoError(t, err)

	assert.Equal(t, Integer, one.Kind())
	assert.Equal(t, Float, onePointZero.Kind())
	assert.False(t, DeepEquals(one, onePointZero))
}

func TestParseBigInteger(t *testing.T) {
	v, err := Parse([]byte(`123456789012345678901234567890`))
	require.NoError(t, err)
	require.Equal(t, Integer, v.Kind())
	assert.Equal(t, "123456789012345678901234567890", v.Int().String())

	// survives a serialization round trip
	data, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", string(data))
}

func TestParsePreservesMemberOrder(t *testing.T) {
	v, err := Parse([]byte(`{"z":1,"a":2,"m":3}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, v.Keys())

	data, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":2,"m":3}`, string(data))
}

func TestParseRejectsDuplicateKeys(t *testing.T) {
	_, err := Parse([]byte(`{"a":1,"a":2}`))
	assert.Error(t, err)
}

func TestParseRejectsTrailingData(t *testing.T) {
	_, err := Parse([]byte(`1 2`))
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestParseNested(t *testing.T) {
	v, err := Parse([]byte(`{"items":[{"id":1},{"id":2.0}],"tag":null}`))
	require.NoError(t, err)

	items, ok := v.TryGet("items")
	require.True(t, ok)
	require.Equal(t, 2, items.Len())

	first, ok := items.Index(0).TryGet("id")
	require.True(t, ok)
	assert.Equal(t, Integer, first.Kind())

	second, ok := items.Index(1).TryGet("id")
	require.True(t, ok)
	assert.Equal(t, Float, second.Kind())
}

func TestMarshalRoundTrip(t *testing.T) {
	inputs := []string{
		`null`,
		`[1,2.5,"x",null,{"k":[true,false]}]`,
		`{"a":{"b":{"c":[]}}}`,
		`"A\n"`,
	}
	for _, input := range inputs {
		v, err := Parse([]byte(input))
		require.NoError(t, err)
		data, err := v.MarshalJSON()
		require.NoError(t, err)
		reparsed, err := Parse(data)
		require.NoError(t, err)
		assert.True(t, DeepEquals(v, reparsed), "round trip of %s", input)
	}
}
