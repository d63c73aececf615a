package repository

import (
	"context"
	"fmt"

	"github.com/yohan-cho/item-simulator/internal/domain"
	"github.com/yohan-cho/item-simulator/internal/repository/dao"
)

type EconomyDAO interface {
	WithCharacterState(ctx context.Context, characterID uint, fn func(state *dao.CharacterEconomyState) error) (dao.CharacterEconomyState, error)
	GetCharacterState(ctx context.Context, characterID uint) (dao.CharacterEconomyState, error)
}

type EconomyRepository struct {
	dao EconomyDAO
}

func NewEconomyRepository(dao EconomyDAO) *EconomyRepository {
	return &EconomyRepository{
		dao: dao,
	}
}

// WithCharacterState loads the character's economy state under the dao's
// transactional lock, hands the domain view to fn, and persists whatever
// fn left behind. An error from fn aborts without persisting anything.
func (r *EconomyRepository) WithCharacterState(ctx context.Context, characterID uint, fn func(state *domain.CharacterState) error) (domain.CharacterState, error) {
	var result domain.CharacterState

	_, err := r.dao.WithCharacterState(ctx, characterID, func(ds *dao.CharacterEconomyState) error {
		state := stateDaoToDomain(*ds)
		if err := fn(&state); err != nil {
			return err
		}

		*ds = stateDomainToDao(state)
		result = state

		return nil
	})
	if err != nil {
		return domain.CharacterState{}, fmt.Errorf("r.dao.WithCharacterState -> %w", err)
	}

	return result, nil
}

func (r *EconomyRepository) GetCharacterState(ctx context.Context, characterID uint) (domain.CharacterState, error) {
	state, err := r.dao.GetCharacterState(ctx, characterID)
	if err != nil {
		return domain.CharacterState{}, fmt.Errorf("r.dao.GetCharacterState -> %w", err)
	}

	return stateDaoToDomain(state), nil
}

func stateDaoToDomain(s dao.CharacterEconomyState) domain.CharacterState {
	state := domain.CharacterState{
		Character: characterDaoToDomain(s.Character),
	}

	for _, stack := range s.Stacks {
		state.Inventory = append(state.Inventory, domain.Stack{
			ItemCode: stack.ItemCode,
			Count:    stack.Count,
		})
	}
	for _, equipped := range s.Equipped {
		state.Equipment = append(state.Equipment, equipped.ItemCode)
	}

	return state
}

func stateDomainToDao(s domain.CharacterState) dao.CharacterEconomyState {
	state := dao.CharacterEconomyState{
		Character: characterDomainToDao(s.Character),
	}

	for _, stack := range s.Inventory {
		state.Stacks = append(state.Stacks, dao.InventoryStack{
			CharacterID: s.Character.ID,
			ItemCode:    stack.ItemCode,
			Count:       stack.Count,
		})
	}
	for _, code := range s.Equipment {
		state.Equipped = append(state.Equipped, dao.EquippedItem{
			CharacterID: s.Character.ID,
			ItemCode:    code,
		})
	}

	return state
}
