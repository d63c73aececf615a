package domain

import "time"

type Account struct {
	ID        uint      `json:"id"`
	LoginID   string    `json:"login_id"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
