package service

import (
	"context"
	"fmt"

	"github.com/yohan-cho/item-simulator/internal/domain"
	"github.com/yohan-cho/item-simulator/internal/repository"
)

var (
	ErrCharacterNotFound   = repository.ErrCharacterNotFound
	ErrCharacterNameExists = repository.ErrCharacterNameExists
	ErrNotCharacterOwner   = domain.ErrNotCharacterOwner
)

type CharacterRepository interface {
	Create(ctx context.Context, character domain.Character) (domain.Character, error)
	FindByID(ctx context.Context, id uint) (domain.Character, error)
	Delete(ctx context.Context, id uint) error
}

type CharacterService struct {
	repo CharacterRepository
}

func NewCharacterService(repo CharacterRepository) *CharacterService {
	return &CharacterService{
		repo: repo,
	}
}

func (s *CharacterService) CreateCharacter(ctx context.Context, accountID uint, name string) (domain.Character, error) {
	created, err := s.repo.Create(ctx, domain.NewCharacter(accountID, name))
	if err != nil {
		return domain.Character{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CharacterService) GetCharacter(ctx context.Context, id uint) (domain.Character, error) {
	character, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Character{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return character, nil
}

// DeleteCharacter removes a character the caller owns; the inventory and
// equipment cascade with it.
func (s *CharacterService) DeleteCharacter(ctx context.Context, accountID, characterID uint) (domain.Character, error) {
	character, err := s.repo.FindByID(ctx, characterID)
	if err != nil {
		return domain.Character{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !character.IsOwnedBy(accountID) {
		return domain.Character{}, ErrNotCharacterOwner
	}

	if err := s.repo.Delete(ctx, characterID); err != nil {
		return domain.Character{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return character, nil
}
