package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrItemNameExists = errors.New("item name already exists")
	ErrItemCodeExists = errors.New("item code already exists")
)

type Item struct {
	Code int `gorm:"primaryKey;autoIncrement"`

	Name   string `gorm:"unique;not null"`
	Price  int    `gorm:"not null"`
	Health int    `gorm:"not null"`
	Power  int    `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

// Insert creates an item definition. A zero Code lets the store assign
// the next code from the sequence.
func (d *ItemDAO) Insert(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			if strings.Contains(err.Message, `unique constraint "uni_items_name"`) {
				return Item{}, ErrItemNameExists
			}
			if strings.Contains(err.Message, `unique constraint "items_pkey"`) {
				return Item{}, ErrItemCodeExists
			}
		}

		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) FindByCode(ctx context.Context, code int) (Item, error) {
	var item Item

	result := d.db.WithContext(ctx).First(&item, code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

// FindByCodes resolves each code; any unknown code fails the whole lookup.
func (d *ItemDAO) FindByCodes(ctx context.Context, codes []int) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).Where("code IN ?", codes).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	found := make(map[int]bool, len(items))
	for _, item := range items {
		found[item.Code] = true
	}
	for _, code := range codes {
		if !found[code] {
			return nil, ErrItemNotFound
		}
	}

	return items, nil
}

func (d *ItemDAO) FindAll(ctx context.Context) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).Order("code").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}
