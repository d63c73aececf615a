package repository

import (
	"context"
	"fmt"

	"github.com/yohan-cho/item-simulator/internal/domain"
	"github.com/yohan-cho/item-simulator/internal/repository/dao"
)

var (
	ErrItemNotFound   = dao.ErrItemNotFound
	ErrItemNameExists = dao.ErrItemNameExists
	ErrItemCodeExists = dao.ErrItemCodeExists
)

type ItemDAO interface {
	Insert(ctx context.Context, item dao.Item) (dao.Item, error)
	FindByCode(ctx context.Context, code int) (dao.Item, error)
	FindByCodes(ctx context.Context, codes []int) ([]dao.Item, error)
	FindAll(ctx context.Context) ([]dao.Item, error)
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, dao.Item{
		Code:   item.Code,
		Name:   item.Name,
		Price:  item.Price,
		Health: item.Health,
		Power:  item.Power,
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return itemDaoToDomain(created), nil
}

func (r *ItemRepository) FindByCode(ctx context.Context, code int) (domain.Item, error) {
	found, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByCode -> %w", err)
	}

	return itemDaoToDomain(found), nil
}

// FindByCodes resolves a batch of item codes into a catalog view. Any
// unknown code fails the whole resolution with ErrItemNotFound.
func (r *ItemRepository) FindByCodes(ctx context.Context, codes []int) (domain.Catalog, error) {
	found, err := r.dao.FindByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCodes -> %w", err)
	}

	catalog := make(domain.Catalog, len(found))
	for _, item := range found {
		catalog[item.Code] = itemDaoToDomain(item)
	}

	return catalog, nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	items := make([]domain.Item, len(found))
	for i, item := range found {
		items[i] = itemDaoToDomain(item)
	}

	return items, nil
}

func itemDaoToDomain(i dao.Item) domain.Item {
	return domain.Item{
		Code:      i.Code,
		Name:      i.Name,
		Price:     i.Price,
		Health:    i.Health,
		Power:     i.Power,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
