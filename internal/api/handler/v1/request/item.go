package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateItemRequest struct {
	ItemCode  int       `json:"item_code"`
	ItemName  string    `json:"item_name"`
	ItemStat  *ItemStat `json:"item_stat"`
	ItemPrice *int      `json:"item_price"`
}

type ItemStat struct {
	Health int `json:"health"`
	Power  int `json:"power"`
}

func (req *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ItemCode, validation.Min(0)),
		validation.Field(&req.ItemName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.ItemStat, validation.NotNil),
		validation.Field(&req.ItemPrice, validation.NotNil, validation.Min(0)),
	)
}
