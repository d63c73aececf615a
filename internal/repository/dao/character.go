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
	ErrCharacterNotFound   = errors.New("character not found")
	ErrCharacterNameExists = errors.New("character name already exists")
)

type Character struct {
	ID uint `gorm:"primaryKey"`

	AccountID uint    `gorm:"index;not null"`
	Account   Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`

	Name   string `gorm:"unique;not null"`
	Money  int    `gorm:"not null"`
	Health int    `gorm:"not null"`
	Power  int    `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// InventoryStack is one {item code, count} row of a character's inventory.
// The (character, item code) pair is unique; merging is the domain's job.
type InventoryStack struct {
	ID uint `gorm:"primaryKey"`

	CharacterID uint      `gorm:"index:idx_inventory_character_item,unique;not null"`
	Character   Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`

	ItemCode int `gorm:"index:idx_inventory_character_item,unique;not null"`
	Count    int `gorm:"not null"`
}

// EquippedItem is one worn item of a character's equipment list.
type EquippedItem struct {
	ID uint `gorm:"primaryKey"`

	CharacterID uint      `gorm:"index:idx_equipment_character_item,unique;not null"`
	Character   Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`

	ItemCode int `gorm:"index:idx_equipment_character_item,unique;not null"`
}

type CharacterDAO struct {
	db *gorm.DB
}

func NewCharacterDAO(db *gorm.DB) *CharacterDAO {
	return &CharacterDAO{
		db: db,
	}
}

func (d *CharacterDAO) Insert(ctx context.Context, character Character) (Character, error) {
	result := d.db.WithContext(ctx).Create(&character)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_characters_name"`) {
			return Character{}, ErrCharacterNameExists
		}

		return Character{}, result.Error
	}

	return character, nil
}

func (d *CharacterDAO) FindByID(ctx context.Context, id uint) (Character, error) {
	var character Character

	result := d.db.WithContext(ctx).First(&character, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Character{}, ErrCharacterNotFound
		}

		return Character{}, result.Error
	}

	return character, nil
}

// Delete removes the character row; the inventory and equipment rows go
// with it through the ON DELETE CASCADE constraints.
func (d *CharacterDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Character{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCharacterNotFound
	}

	return nil
}
