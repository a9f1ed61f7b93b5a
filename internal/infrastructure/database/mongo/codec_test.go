package mongo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type priced struct {
	Price decimal.Decimal `bson:"price"`
}

func TestDecimalCodec(t *testing.T) {
	reg := NewRegistry()

	raw, err := bson.MarshalWithRegistry(reg, priced{Price: decimal.RequireFromString("29.99")})
	require.NoError(t, err)

	// Stored as Decimal128, not as a string or double
	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	_, isDecimal := doc["price"].(primitive.Decimal128)
	assert.True(t, isDecimal)

	var back priced
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &back))
	assert.Equal(t, "29.99", back.Price.StringFixed(2))
}

func TestDecimalCodecReadsLegacyTypes(t *testing.T) {
	reg := NewRegistry()

	for name, value := range map[string]interface{}{
		"double": 24.99,
		"string": "24.99",
	} {
		t.Run(name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"price": value})
			require.NoError(t, err)

			var got priced
			require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &got))
			assert.Equal(t, "24.99", got.Price.StringFixed(2))
		})
	}

	raw, err := bson.Marshal(bson.M{"price": int32(5)})
	require.NoError(t, err)
	var got priced
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &got))
	assert.Equal(t, "5.00", got.Price.StringFixed(2))
}
