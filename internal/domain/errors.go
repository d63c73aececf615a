package domain

import "errors"

var (
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrItemNotFound      = errors.New("item not found")
	ErrStackNotFound     = errors.New("item is not in the inventory")
	ErrInsufficientStock = errors.New("not enough items in the inventory")
	ErrInsufficientMoney = errors.New("not enough money")
	ErrAlreadyEquipped   = errors.New("item is already equipped")
	ErrNotEquipped       = errors.New("item is not equipped")
	ErrNotCharacterOwner = errors.New("character does not belong to this account")
)
