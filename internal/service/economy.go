package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/yohan-cho/item-simulator/internal/domain"
)

var (
	ErrInvalidQuantity   = domain.ErrInvalidQuantity
	ErrStackNotFound     = domain.ErrStackNotFound
	ErrInsufficientStock = domain.ErrInsufficientStock
	ErrInsufficientMoney = domain.ErrInsufficientMoney
	ErrAlreadyEquipped   = domain.ErrAlreadyEquipped
	ErrNotEquipped       = domain.ErrNotEquipped
)

type EconomyRepository interface {
	WithCharacterState(ctx context.Context, characterID uint, fn func(state *domain.CharacterState) error) (domain.CharacterState, error)
	GetCharacterState(ctx context.Context, characterID uint) (domain.CharacterState, error)
}

// EconomyService is the character economy transaction engine. Every
// operation resolves the catalog up front, then runs its validations and
// mutations as one unit inside the repository's per-character transaction.
type EconomyService struct {
	repo     EconomyRepository
	itemRepo ItemRepository
}

func NewEconomyService(repo EconomyRepository, itemRepo ItemRepository) *EconomyService {
	return &EconomyService{
		repo:     repo,
		itemRepo: itemRepo,
	}
}

func (s *EconomyService) Buy(ctx context.Context, accountID, characterID uint, lines []domain.TradeLine) ([]domain.TradeReceipt, error) {
	catalog, err := s.resolveCatalog(ctx, tradeLineCodes(lines))
	if err != nil {
		return nil, err
	}

	var receipts []domain.TradeReceipt
	_, err = s.repo.WithCharacterState(ctx, characterID, func(state *domain.CharacterState) error {
		if !state.Character.IsOwnedBy(accountID) {
			return domain.ErrNotCharacterOwner
		}

		bought, err := state.Buy(catalog, lines)
		if err != nil {
			return err
		}
		receipts = bought

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("s.repo.WithCharacterState -> %w", err)
	}

	return receipts, nil
}

func (s *EconomyService) Sell(ctx context.Context, accountID, characterID uint, lines []domain.TradeLine) ([]domain.TradeReceipt, error) {
	catalog, err := s.resolveCatalog(ctx, tradeLineCodes(lines))
	if err != nil {
		return nil, err
	}

	var receipts []domain.TradeReceipt
	_, err = s.repo.WithCharacterState(ctx, characterID, func(state *domain.CharacterState) error {
		if !state.Character.IsOwnedBy(accountID) {
			return domain.ErrNotCharacterOwner
		}

		sold, err := state.Sell(catalog, lines)
		if err != nil {
			return err
		}
		receipts = sold

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("s.repo.WithCharacterState -> %w", err)
	}

	return receipts, nil
}

// Equip puts on each item code in order within one transaction and
// returns the applied deltas plus the character's final stats.
func (s *EconomyService) Equip(ctx context.Context, accountID, characterID uint, codes []int) ([]domain.EquipResult, domain.Character, error) {
	catalog, err := s.resolveCatalog(ctx, codes)
	if err != nil {
		return nil, domain.Character{}, err
	}

	var results []domain.EquipResult
	state, err := s.repo.WithCharacterState(ctx, characterID, func(state *domain.CharacterState) error {
		if !state.Character.IsOwnedBy(accountID) {
			return domain.ErrNotCharacterOwner
		}

		for _, code := range codes {
			result, err := state.Equip(catalog[code])
			if err != nil {
				return err
			}
			results = append(results, result)
		}

		return nil
	})
	if err != nil {
		return nil, domain.Character{}, fmt.Errorf("s.repo.WithCharacterState -> %w", err)
	}

	return results, state.Character, nil
}

// Unequip takes off each item code in order within one transaction.
func (s *EconomyService) Unequip(ctx context.Context, accountID, characterID uint, codes []int) ([]domain.EquipResult, domain.Character, error) {
	catalog, err := s.resolveCatalog(ctx, codes)
	if err != nil {
		return nil, domain.Character{}, err
	}

	var results []domain.EquipResult
	state, err := s.repo.WithCharacterState(ctx, characterID, func(state *domain.CharacterState) error {
		if !state.Character.IsOwnedBy(accountID) {
			return domain.ErrNotCharacterOwner
		}

		for _, code := range codes {
			result, err := state.Unequip(catalog[code])
			if err != nil {
				return err
			}
			results = append(results, result)
		}

		return nil
	})
	if err != nil {
		return nil, domain.Character{}, fmt.Errorf("s.repo.WithCharacterState -> %w", err)
	}

	return results, state.Character, nil
}

// PickupMoney credits a random amount of money, 0 to 1000 in steps of 100.
func (s *EconomyService) PickupMoney(ctx context.Context, accountID, characterID uint) (int, domain.Character, error) {
	amount := int(math.Round(rand.Float64()*10)) * 100

	state, err := s.repo.WithCharacterState(ctx, characterID, func(state *domain.CharacterState) error {
		if !state.Character.IsOwnedBy(accountID) {
			return domain.ErrNotCharacterOwner
		}

		state.Character.Money += amount

		return nil
	})
	if err != nil {
		return 0, domain.Character{}, fmt.Errorf("s.repo.WithCharacterState -> %w", err)
	}

	return amount, state.Character, nil
}

// GetInventory lists the caller's own stacks with catalog names resolved.
func (s *EconomyService) GetInventory(ctx context.Context, accountID, characterID uint) ([]domain.InventoryEntry, error) {
	state, err := s.repo.GetCharacterState(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetCharacterState -> %w", err)
	}

	if !state.Character.IsOwnedBy(accountID) {
		return nil, domain.ErrNotCharacterOwner
	}

	codes := make([]int, len(state.Inventory))
	for i, stack := range state.Inventory {
		codes[i] = stack.ItemCode
	}
	catalog, err := s.resolveCatalog(ctx, codes)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.InventoryEntry, len(state.Inventory))
	for i, stack := range state.Inventory {
		entries[i] = domain.InventoryEntry{
			ItemCode: stack.ItemCode,
			ItemName: catalog[stack.ItemCode].Name,
			Count:    stack.Count,
		}
	}

	return entries, nil
}

// GetEquipment lists a character's worn items. The view is public.
func (s *EconomyService) GetEquipment(ctx context.Context, characterID uint) ([]domain.EquipmentEntry, error) {
	state, err := s.repo.GetCharacterState(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetCharacterState -> %w", err)
	}

	catalog, err := s.resolveCatalog(ctx, state.Equipment)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.EquipmentEntry, len(state.Equipment))
	for i, code := range state.Equipment {
		entries[i] = domain.EquipmentEntry{
			ItemCode: code,
			ItemName: catalog[code].Name,
		}
	}

	return entries, nil
}

func (s *EconomyService) resolveCatalog(ctx context.Context, codes []int) (domain.Catalog, error) {
	if len(codes) == 0 {
		return domain.Catalog{}, nil
	}

	catalog, err := s.itemRepo.FindByCodes(ctx, uniqueCodes(codes))
	if err != nil {
		return nil, fmt.Errorf("s.itemRepo.FindByCodes -> %w", err)
	}

	return catalog, nil
}

func tradeLineCodes(lines []domain.TradeLine) []int {
	codes := make([]int, len(lines))
	for i, line := range lines {
		codes[i] = line.ItemCode
	}

	return codes
}

func uniqueCodes(codes []int) []int {
	seen := make(map[int]bool, len(codes))
	unique := make([]int, 0, len(codes))
	for _, code := range codes {
		if !seen[code] {
			seen[code] = true
			unique = append(unique, code)
		}
	}

	return unique
}
