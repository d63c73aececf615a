package domain

// CharacterState is the full mutable economy state of one character: the
// ledger (money, stats), the inventory stacks and the equipped items. The
// four trade operations mutate it in memory only; the repository layer is
// responsible for loading it under a lock and persisting it atomically.
type CharacterState struct {
	Character Character
	Inventory Stacks
	Equipment Equipment
}

// TradeLine is one entry of a buy or sell order.
type TradeLine struct {
	ItemCode int
	Count    int
}

// TradeReceipt reports the outcome of one trade line.
type TradeReceipt struct {
	ItemName string
	Amount   int
	Balance  int
}

// EquipResult reports the stat deltas applied by an equip or unequip.
type EquipResult struct {
	ItemName    string
	HealthDelta int
	PowerDelta  int
}

// Buy purchases every line in order as one unit. The affordability check
// runs once against the starting balance using the precomputed total, so
// either the whole order is paid for or nothing changes. Each receipt
// carries the final balance after all debits.
func (st *CharacterState) Buy(catalog Catalog, lines []TradeLine) ([]TradeReceipt, error) {
	total := 0
	for _, line := range lines {
		if line.Count <= 0 {
			return nil, ErrInvalidQuantity
		}
		item, ok := catalog[line.ItemCode]
		if !ok {
			return nil, ErrItemNotFound
		}
		total += item.Price * line.Count
	}

	if st.Character.Money < total {
		return nil, ErrInsufficientMoney
	}
	st.Character.Money -= total

	receipts := make([]TradeReceipt, 0, len(lines))
	for _, line := range lines {
		item := catalog[line.ItemCode]

		updated, err := st.Inventory.Add(line.ItemCode, line.Count)
		if err != nil {
			return nil, err
		}
		st.Inventory = updated

		receipts = append(receipts, TradeReceipt{
			ItemName: item.Name,
			Amount:   item.Price * line.Count,
		})
	}

	for i := range receipts {
		receipts[i].Balance = st.Character.Money
	}

	return receipts, nil
}

// Sell disposes of every line in order as one unit, crediting 60% of the
// catalog price rounded per line. Each line's stock is verified before it
// is touched; a failing line aborts the whole order.
func (st *CharacterState) Sell(catalog Catalog, lines []TradeLine) ([]TradeReceipt, error) {
	receipts := make([]TradeReceipt, 0, len(lines))
	for _, line := range lines {
		if line.Count <= 0 {
			return nil, ErrInvalidQuantity
		}
		item, ok := catalog[line.ItemCode]
		if !ok {
			return nil, ErrItemNotFound
		}

		if !st.Inventory.Has(line.ItemCode, line.Count) {
			return nil, ErrInsufficientStock
		}

		credit := item.SellPrice() * line.Count
		st.Character.Money += credit

		updated, err := st.Inventory.Remove(line.ItemCode, line.Count)
		if err != nil {
			return nil, err
		}
		st.Inventory = updated

		receipts = append(receipts, TradeReceipt{
			ItemName: item.Name,
			Amount:   credit,
			Balance:  st.Character.Money,
		})
	}

	return receipts, nil
}

// Equip moves one unit of item from the inventory onto the character and
// applies its stat bonuses.
func (st *CharacterState) Equip(item Item) (EquipResult, error) {
	if !st.Inventory.Has(item.Code, 1) {
		return EquipResult{}, ErrStackNotFound
	}
	if st.Equipment.Contains(item.Code) {
		return EquipResult{}, ErrAlreadyEquipped
	}

	updated, err := st.Inventory.Remove(item.Code, 1)
	if err != nil {
		return EquipResult{}, err
	}
	st.Inventory = updated

	st.Equipment = append(st.Equipment, item.Code)
	st.Character.Health += item.Health
	st.Character.Power += item.Power

	return EquipResult{
		ItemName:    item.Name,
		HealthDelta: item.Health,
		PowerDelta:  item.Power,
	}, nil
}

// Unequip is the exact inverse of Equip: the item returns to the
// inventory and its bonuses are subtracted.
func (st *CharacterState) Unequip(item Item) (EquipResult, error) {
	if !st.Equipment.Contains(item.Code) {
		return EquipResult{}, ErrNotEquipped
	}

	for i, code := range st.Equipment {
		if code == item.Code {
			st.Equipment = append(st.Equipment[:i], st.Equipment[i+1:]...)
			break
		}
	}

	updated, err := st.Inventory.Add(item.Code, 1)
	if err != nil {
		return EquipResult{}, err
	}
	st.Inventory = updated

	st.Character.Health -= item.Health
	st.Character.Power -= item.Power

	return EquipResult{
		ItemName:    item.Name,
		HealthDelta: -item.Health,
		PowerDelta:  -item.Power,
	}, nil
}
