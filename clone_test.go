package cogitojson

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneDeepEqual(t *testing.T) {
	schema := mustParseSchema(t, kitchenSinkSchema)

	clone, err := Clone(schema)
	require.NoError(t, err)
	assert.True(t, DeepEquals(schema, clone))
}

func TestCloneSharesNoIdentity(t *testing.T) {
	schema := mustParseSchema(t, `{
		"properties": {"p": {"const": 1}},
		"allOf": [{"type": "object"}],
		"items": {"minimum": 0}
	}`)

	clone, err := Clone(schema)
	require.NoError(t, err)

	assert.NotSame(t, schema, clone)
	assert.NotSame(t, (*schema.Properties)["p"], (*clone.Properties)["p"])
	assert.NotSame(t, schema.AllOf[0], clone.AllOf[0])
	assert.NotSame(t, schema.Items, clone.Items)

	// mutating the clone leaves the original untouched
	f := float64(3)
	clone.AllOf[0].MaxProperties = &f
	assert.Nil(t, schema.AllOf[0].MaxProperties)
}

func TestCloneNil(t *testing.T) {
	_, err := Clone(nil)
	assert.ErrorIs(t, err, ErrNilSchema)
}

func TestCloneBooleanSchema(t *testing.T) {
	clone, err := Clone(FalseSchema())
	require.NoError(t, err)
	require.NotNil(t, clone.Valid)
	assert.False(t, *clone.Valid)
}

func TestMinimizerCloneWithCustomCodec(t *testing.T) {
	schema := mustParseSchema(t, `{"title":"T","allOf":[{"const":"F"}]}`)

	var encoded, decoded int
	m := NewMinimizer().
		WithEncoderJSON(func(v any) ([]byte, error) {
			encoded++
			return sonic.Marshal(v)
		}).
		WithDecoderJSON(func(data []byte, v any) error {
			decoded++
			return sonic.Unmarshal(data, v)
		})

	clone, err := m.Clone(schema)
	require.NoError(t, err)
	assert.True(t, DeepEquals(schema, clone))
	assert.Equal(t, 1, encoded)
	assert.Equal(t, 1, decoded)
}
