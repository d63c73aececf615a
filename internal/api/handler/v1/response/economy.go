package response

import (
	"fmt"

	"github.com/yohan-cho/item-simulator/internal/domain"
)

// TradeEntry is one buy/sell line result.
type TradeEntry struct {
	ItemName string `json:"item_name"`
	Amount   int    `json:"amount"`
	Balance  int    `json:"balance"`
}

// EquipEntry is one equip/unequip line result. The deltas are rendered
// signed ("+5", "-3"); the final entry of a batch carries the character's
// post-operation stats.
type EquipEntry struct {
	ItemName  string           `json:"item_name"`
	Health    string           `json:"health"`
	Power     string           `json:"power"`
	Character *CharacterStatus `json:"character,omitempty"`
}

type CharacterStatus struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
	Power  int    `json:"power"`
}

func NewTradeEntries(receipts []domain.TradeReceipt) []TradeEntry {
	entries := make([]TradeEntry, len(receipts))
	for i, receipt := range receipts {
		entries[i] = TradeEntry{
			ItemName: receipt.ItemName,
			Amount:   receipt.Amount,
			Balance:  receipt.Balance,
		}
	}

	return entries
}

func NewEquipEntries(results []domain.EquipResult, character domain.Character) []EquipEntry {
	entries := make([]EquipEntry, len(results))
	for i, result := range results {
		entries[i] = EquipEntry{
			ItemName: result.ItemName,
			Health:   fmt.Sprintf("%+d", result.HealthDelta),
			Power:    fmt.Sprintf("%+d", result.PowerDelta),
		}
	}

	if len(entries) > 0 {
		entries[len(entries)-1].Character = &CharacterStatus{
			Name:   character.Name,
			Health: character.Health,
			Power:  character.Power,
		}
	}

	return entries
}
