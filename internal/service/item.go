package service

import (
	"context"
	"fmt"

	"github.com/yohan-cho/item-simulator/internal/domain"
	"github.com/yohan-cho/item-simulator/internal/repository"
)

var (
	ErrItemNotFound   = repository.ErrItemNotFound
	ErrItemNameExists = repository.ErrItemNameExists
	ErrItemCodeExists = repository.ErrItemCodeExists
)

type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	FindByCode(ctx context.Context, code int) (domain.Item, error)
	FindByCodes(ctx context.Context, codes []int) (domain.Catalog, error)
	FindAll(ctx context.Context) ([]domain.Item, error)
}

type ItemService struct {
	repo ItemRepository
}

func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{
		repo: repo,
	}
}

// CreateItem adds a definition to the catalog. A zero code lets the store
// assign one.
func (s *ItemService) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ItemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return items, nil
}
