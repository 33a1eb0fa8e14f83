package bounded_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/pmalmgren/constgeneric-field-limits/pkg/bounded"
)

func TestField_BSON(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		data, err := bson.Marshal(model{Name: bounded.MustNew[nameLimits]("morethantencharacters")})
		require.NoError(t, err)

		raw := bson.Raw(data)
		assert.Equal(t, "morethantencharacters", raw.Lookup("name").StringValue())

		var out model
		require.NoError(t, bson.Unmarshal(data, &out))
		assert.Equal(t, "morethantencharacters", out.Name.String())
	})

	t.Run("rejects short stored value", func(t *testing.T) {
		t.Parallel()
		data, err := bson.Marshal(bson.D{{Key: "name", Value: "small"}})
		require.NoError(t, err)

		var out model
		err = bson.Unmarshal(data, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shorter than minimum 10")
	})

	t.Run("rejects non string", func(t *testing.T) {
		t.Parallel()
		var f bounded.Field[nameLimits]
		typ, data, err := bson.MarshalValue(int32(42))
		require.NoError(t, err)
		assert.ErrorIs(t, f.UnmarshalBSONValue(byte(typ), data), bounded.ErrNotString)
	})

	t.Run("null leaves field unset", func(t *testing.T) {
		t.Parallel()
		f := bounded.MustNew[nameLimits]("morethantencharacters")
		require.NoError(t, f.UnmarshalBSONValue(byte(bson.TypeNull), nil))
		assert.True(t, f.IsZero())

		typ, _, err := f.MarshalBSONValue()
		require.NoError(t, err)
		assert.Equal(t, byte(bson.TypeNull), typ)
	})
}
