package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Catalog{
		101: {Code: 101, Name: "Short Sword", Price: 1000, Power: 5},
		202: {Code: 202, Name: "Leather Cap", Price: 250, Health: 10},
		303: {Code: 303, Name: "Potion", Price: 75},
	}
}

func testState(money int) CharacterState {
	return CharacterState{
		Character: Character{
			ID:        1,
			AccountID: 1,
			Name:      "tester",
			Money:     money,
			Health:    StartingHealth,
			Power:     StartingPower,
		},
	}
}

func TestCharacterState_Buy(t *testing.T) {
	t.Run("a multi-line order debits once and every receipt carries the final balance", func(t *testing.T) {
		st := testState(10000)

		receipts, err := st.Buy(testCatalog(), []TradeLine{
			{ItemCode: 101, Count: 2},
			{ItemCode: 303, Count: 4},
		})

		require.NoError(t, err)
		require.Len(t, receipts, 2)

		wantBalance := 10000 - 2*1000 - 4*75
		assert.Equal(t, TradeReceipt{ItemName: "Short Sword", Amount: 2000, Balance: wantBalance}, receipts[0])
		assert.Equal(t, TradeReceipt{ItemName: "Potion", Amount: 300, Balance: wantBalance}, receipts[1])
		assert.Equal(t, wantBalance, st.Character.Money)
		assert.Equal(t, Stacks{{ItemCode: 101, Count: 2}, {ItemCode: 303, Count: 4}}, st.Inventory)
	})

	t.Run("an unaffordable order leaves the state untouched", func(t *testing.T) {
		st := testState(1999)

		_, err := st.Buy(testCatalog(), []TradeLine{
			{ItemCode: 101, Count: 1},
			{ItemCode: 101, Count: 1},
		})

		require.ErrorIs(t, err, ErrInsufficientMoney)
		assert.Equal(t, 1999, st.Character.Money)
		assert.Empty(t, st.Inventory)
	})

	t.Run("affordability is judged against the starting balance, not line by line", func(t *testing.T) {
		// Each line alone is affordable, but the order as a whole is not.
		st := testState(1500)

		_, err := st.Buy(testCatalog(), []TradeLine{
			{ItemCode: 101, Count: 1},
			{ItemCode: 101, Count: 1},
		})

		require.ErrorIs(t, err, ErrInsufficientMoney)
		assert.Equal(t, 1500, st.Character.Money)
	})

	t.Run("an unknown item code fails the whole order before any debit", func(t *testing.T) {
		st := testState(10000)

		_, err := st.Buy(testCatalog(), []TradeLine{
			{ItemCode: 101, Count: 1},
			{ItemCode: 999, Count: 1},
		})

		require.ErrorIs(t, err, ErrItemNotFound)
		assert.Equal(t, 10000, st.Character.Money)
		assert.Empty(t, st.Inventory)
	})

	t.Run("a non-positive count fails the whole order", func(t *testing.T) {
		st := testState(10000)

		_, err := st.Buy(testCatalog(), []TradeLine{
			{ItemCode: 101, Count: 0},
		})

		require.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, 10000, st.Character.Money)
	})
}

func TestCharacterState_Sell(t *testing.T) {
	t.Run("credits 60% of the catalog price rounded per line", func(t *testing.T) {
		st := testState(0)
		st.Inventory = Stacks{
			{ItemCode: 303, Count: 3},
			{ItemCode: 202, Count: 1},
		}

		receipts, err := st.Sell(testCatalog(), []TradeLine{
			{ItemCode: 303, Count: 2}, // 75 * 0.6 = 45 per unit
			{ItemCode: 202, Count: 1}, // 250 * 0.6 = 150
		})

		require.NoError(t, err)
		require.Len(t, receipts, 2)
		assert.Equal(t, TradeReceipt{ItemName: "Potion", Amount: 90, Balance: 90}, receipts[0])
		assert.Equal(t, TradeReceipt{ItemName: "Leather Cap", Amount: 150, Balance: 240}, receipts[1])
		assert.Equal(t, 240, st.Character.Money)
		assert.Equal(t, Stacks{{ItemCode: 303, Count: 1}}, st.Inventory)
	})

	t.Run("rounds the unit sell price before multiplying by the count", func(t *testing.T) {
		catalog := Catalog{7: {Code: 7, Name: "Trinket", Price: 9}} // 9 * 0.6 = 5.4 -> 5 per unit
		st := testState(0)
		st.Inventory = Stacks{{ItemCode: 7, Count: 3}}

		receipts, err := st.Sell(catalog, []TradeLine{{ItemCode: 7, Count: 3}})

		require.NoError(t, err)
		assert.Equal(t, 15, receipts[0].Amount)
	})

	t.Run("selling more than held fails the line", func(t *testing.T) {
		st := testState(0)
		st.Inventory = Stacks{{ItemCode: 303, Count: 1}}

		_, err := st.Sell(testCatalog(), []TradeLine{{ItemCode: 303, Count: 2}})

		require.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 0, st.Character.Money)
	})

	t.Run("selling an unheld item fails", func(t *testing.T) {
		st := testState(0)

		_, err := st.Sell(testCatalog(), []TradeLine{{ItemCode: 101, Count: 1}})

		require.ErrorIs(t, err, ErrInsufficientStock)
	})
}

func TestCharacterState_EquipUnequip(t *testing.T) {
	sword := testCatalog()[101]
	leatherCap := testCatalog()[202]

	t.Run("equip moves the item out of the inventory and applies bonuses", func(t *testing.T) {
		st := testState(0)
		st.Inventory = Stacks{{ItemCode: 101, Count: 2}}

		result, err := st.Equip(sword)

		require.NoError(t, err)
		assert.Equal(t, EquipResult{ItemName: "Short Sword", PowerDelta: 5}, result)
		assert.Equal(t, Stacks{{ItemCode: 101, Count: 1}}, st.Inventory)
		assert.Equal(t, Equipment{101}, st.Equipment)
		assert.Equal(t, StartingPower+5, st.Character.Power)
		assert.Equal(t, StartingHealth, st.Character.Health)
	})

	t.Run("equipping without holding the item fails", func(t *testing.T) {
		st := testState(0)

		_, err := st.Equip(sword)

		require.ErrorIs(t, err, ErrStackNotFound)
	})

	t.Run("equipping the same item twice fails", func(t *testing.T) {
		st := testState(0)
		st.Inventory = Stacks{{ItemCode: 101, Count: 2}}

		_, err := st.Equip(sword)
		require.NoError(t, err)

		_, err = st.Equip(sword)
		require.ErrorIs(t, err, ErrAlreadyEquipped)
		assert.Equal(t, Stacks{{ItemCode: 101, Count: 1}}, st.Inventory)
	})

	t.Run("unequip is the exact inverse of equip", func(t *testing.T) {
		st := testState(0)
		st.Inventory = Stacks{{ItemCode: 101, Count: 1}, {ItemCode: 202, Count: 1}}

		_, err := st.Equip(sword)
		require.NoError(t, err)
		_, err = st.Equip(leatherCap)
		require.NoError(t, err)

		result, err := st.Unequip(sword)

		require.NoError(t, err)
		assert.Equal(t, EquipResult{ItemName: "Short Sword", PowerDelta: -5}, result)
		assert.Equal(t, Equipment{202}, st.Equipment)
		assert.True(t, st.Inventory.Has(101, 1))
		assert.Equal(t, StartingPower, st.Character.Power)
		assert.Equal(t, StartingHealth+10, st.Character.Health)
	})

	t.Run("unequipping an unworn item fails", func(t *testing.T) {
		st := testState(0)

		_, err := st.Unequip(sword)

		require.ErrorIs(t, err, ErrNotEquipped)
	})
}
