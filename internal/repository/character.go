package repository

import (
	"context"
	"fmt"

	"github.com/yohan-cho/item-simulator/internal/domain"
	"github.com/yohan-cho/item-simulator/internal/repository/dao"
)

var (
	ErrCharacterNotFound   = dao.ErrCharacterNotFound
	ErrCharacterNameExists = dao.ErrCharacterNameExists
)

type CharacterDAO interface {
	Insert(ctx context.Context, character dao.Character) (dao.Character, error)
	FindByID(ctx context.Context, id uint) (dao.Character, error)
	Delete(ctx context.Context, id uint) error
}

type CharacterRepository struct {
	dao CharacterDAO
}

func NewCharacterRepository(dao CharacterDAO) *CharacterRepository {
	return &CharacterRepository{
		dao: dao,
	}
}

func (r *CharacterRepository) Create(ctx context.Context, character domain.Character) (domain.Character, error) {
	created, err := r.dao.Insert(ctx, characterDomainToDao(character))
	if err != nil {
		return domain.Character{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return characterDaoToDomain(created), nil
}

func (r *CharacterRepository) FindByID(ctx context.Context, id uint) (domain.Character, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Character{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return characterDaoToDomain(found), nil
}

func (r *CharacterRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func characterDomainToDao(c domain.Character) dao.Character {
	return dao.Character{
		ID:        c.ID,
		AccountID: c.AccountID,
		Name:      c.Name,
		Money:     c.Money,
		Health:    c.Health,
		Power:     c.Power,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func characterDaoToDomain(c dao.Character) domain.Character {
	return domain.Character{
		ID:        c.ID,
		AccountID: c.AccountID,
		Name:      c.Name,
		Money:     c.Money,
		Health:    c.Health,
		Power:     c.Power,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
