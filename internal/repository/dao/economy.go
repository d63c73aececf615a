package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CharacterEconomyState is the persisted economy state of one character:
// the ledger row plus its inventory and equipment rows.
type CharacterEconomyState struct {
	Character Character
	Stacks    []InventoryStack
	Equipped  []EquippedItem
}

type EconomyDAO struct {
	db *gorm.DB
}

func NewEconomyDAO(db *gorm.DB) *EconomyDAO {
	return &EconomyDAO{
		db: db,
	}
}

// WithCharacterState runs fn against the character's economy state inside
// one transaction. The character row is read with SELECT ... FOR UPDATE,
// so concurrent calls for the same character serialize on the row lock
// while different characters never contend. If fn returns an error the
// transaction rolls back and nothing of the state is persisted.
func (d *EconomyDAO) WithCharacterState(ctx context.Context, characterID uint, fn func(state *CharacterEconomyState) error) (CharacterEconomyState, error) {
	var state CharacterEconomyState

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&state.Character, characterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCharacterNotFound
			}

			return err
		}

		if err := tx.Where("character_id = ?", characterID).Order("id").Find(&state.Stacks).Error; err != nil {
			return err
		}
		if err := tx.Where("character_id = ?", characterID).Order("id").Find(&state.Equipped).Error; err != nil {
			return err
		}

		if err := fn(&state); err != nil {
			return err
		}

		return d.saveState(tx, characterID, &state)
	})
	if err != nil {
		return CharacterEconomyState{}, err
	}

	return state, nil
}

// GetCharacterState loads the state without locking, for read-only views.
func (d *EconomyDAO) GetCharacterState(ctx context.Context, characterID uint) (CharacterEconomyState, error) {
	var state CharacterEconomyState

	db := d.db.WithContext(ctx)
	if err := db.First(&state.Character, characterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CharacterEconomyState{}, ErrCharacterNotFound
		}

		return CharacterEconomyState{}, err
	}

	if err := db.Where("character_id = ?", characterID).Order("id").Find(&state.Stacks).Error; err != nil {
		return CharacterEconomyState{}, err
	}
	if err := db.Where("character_id = ?", characterID).Order("id").Find(&state.Equipped).Error; err != nil {
		return CharacterEconomyState{}, err
	}

	return state, nil
}

// saveState writes the whole state back. The inventory and equipment rows
// are replaced wholesale; the surrounding row lock keeps that safe.
func (d *EconomyDAO) saveState(tx *gorm.DB, characterID uint, state *CharacterEconomyState) error {
	updates := map[string]interface{}{
		"money":  state.Character.Money,
		"health": state.Character.Health,
		"power":  state.Character.Power,
	}
	if err := tx.Model(&Character{}).Where("id = ?", characterID).Updates(updates).Error; err != nil {
		return err
	}

	if err := tx.Where("character_id = ?", characterID).Delete(&InventoryStack{}).Error; err != nil {
		return err
	}
	if len(state.Stacks) > 0 {
		rows := make([]InventoryStack, len(state.Stacks))
		for i, stack := range state.Stacks {
			rows[i] = InventoryStack{
				CharacterID: characterID,
				ItemCode:    stack.ItemCode,
				Count:       stack.Count,
			}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		state.Stacks = rows
	}

	if err := tx.Where("character_id = ?", characterID).Delete(&EquippedItem{}).Error; err != nil {
		return err
	}
	if len(state.Equipped) > 0 {
		rows := make([]EquippedItem, len(state.Equipped))
		for i, equipped := range state.Equipped {
			rows[i] = EquippedItem{
				CharacterID: characterID,
				ItemCode:    equipped.ItemCode,
			}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		state.Equipped = rows
	}

	return nil
}
