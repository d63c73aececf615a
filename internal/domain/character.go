package domain

import "time"

// Baseline stats for a freshly rolled character.
const (
	StartingMoney  = 10000
	StartingHealth = 500
	StartingPower  = 100
)

type Character struct {
	ID        uint      `json:"character_id"`
	AccountID uint      `json:"-"`
	Name      string    `json:"name"`
	Money     int       `json:"money"`
	Health    int       `json:"health"`
	Power     int       `json:"power"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func NewCharacter(accountID uint, name string) Character {
	return Character{
		AccountID: accountID,
		Name:      name,
		Money:     StartingMoney,
		Health:    StartingHealth,
		Power:     StartingPower,
	}
}

func (c *Character) IsOwnedBy(accountID uint) bool {
	return c.AccountID == accountID
}
