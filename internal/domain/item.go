package domain

import (
	"math"
	"time"
)

// SellPriceRate is the fraction of the catalog price credited when an
// item is sold back, rounded to the nearest integer per line.
const SellPriceRate = 0.6

type Item struct {
	Code      int       `json:"item_code"`
	Name      string    `json:"item_name"`
	Price     int       `json:"item_price"`
	Health    int       `json:"health"`
	Power     int       `json:"power"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (i Item) SellPrice() int {
	return int(math.Round(float64(i.Price) * SellPriceRate))
}

// Catalog is an immutable read-only view of item definitions keyed by code.
type Catalog map[int]Item
