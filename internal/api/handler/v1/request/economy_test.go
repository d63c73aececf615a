package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTradeLines(t *testing.T) {
	t.Run("a single object becomes a one-line order", func(t *testing.T) {
		lines, err := ParseTradeLines([]byte(`{"item_code": 101, "count": 2}`))

		require.NoError(t, err)
		assert.Equal(t, []TradeLineRequest{{ItemCode: 101, Count: 2}}, lines)
	})

	t.Run("an array keeps its order", func(t *testing.T) {
		lines, err := ParseTradeLines([]byte(`[{"item_code": 101, "count": 2}, {"item_code": 202, "count": 1}]`))

		require.NoError(t, err)
		assert.Equal(t, []TradeLineRequest{
			{ItemCode: 101, Count: 2},
			{ItemCode: 202, Count: 1},
		}, lines)
	})

	t.Run("an empty array is rejected", func(t *testing.T) {
		_, err := ParseTradeLines([]byte(`[]`))

		assert.Error(t, err)
	})

	t.Run("malformed json is rejected", func(t *testing.T) {
		_, err := ParseTradeLines([]byte(`"just a string"`))

		assert.Error(t, err)
	})

	t.Run("a zero count is rejected", func(t *testing.T) {
		_, err := ParseTradeLines([]byte(`{"item_code": 101, "count": 0}`))

		assert.Error(t, err)
	})

	t.Run("a missing item code is rejected", func(t *testing.T) {
		_, err := ParseTradeLines([]byte(`{"count": 2}`))

		assert.Error(t, err)
	})
}

func TestParseEquipLines(t *testing.T) {
	t.Run("accepts object and array form", func(t *testing.T) {
		single, err := ParseEquipLines([]byte(`{"item_code": 101}`))
		require.NoError(t, err)
		assert.Equal(t, []EquipLineRequest{{ItemCode: 101}}, single)

		many, err := ParseEquipLines([]byte(`[{"item_code": 101}, {"item_code": 202}]`))
		require.NoError(t, err)
		assert.Len(t, many, 2)
	})

	t.Run("rejects an empty array and a missing code", func(t *testing.T) {
		_, err := ParseEquipLines([]byte(`[]`))
		assert.Error(t, err)

		_, err = ParseEquipLines([]byte(`{}`))
		assert.Error(t, err)
	})
}
