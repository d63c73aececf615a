package request

import (
	"encoding/json"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	errMalformedBody = errors.New("the request body must be an object or an array of objects")
	errEmptyBody     = errors.New("at least one line is required")
)

// TradeLineRequest is one line of a buy or sell order.
type TradeLineRequest struct {
	ItemCode int `json:"item_code"`
	Count    int `json:"count"`
}

func (req *TradeLineRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ItemCode, validation.Required, validation.Min(1)),
		validation.Field(&req.Count, validation.Required, validation.Min(1)),
	)
}

// EquipLineRequest is one line of an equip or unequip order.
type EquipLineRequest struct {
	ItemCode int `json:"item_code"`
}

func (req *EquipLineRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ItemCode, validation.Required, validation.Min(1)),
	)
}

// ParseTradeLines accepts either a single object or an array and always
// hands back an ordered list, validated line by line.
func ParseTradeLines(data []byte) ([]TradeLineRequest, error) {
	var lines []TradeLineRequest
	if err := json.Unmarshal(data, &lines); err != nil {
		var single TradeLineRequest
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, errMalformedBody
		}
		lines = []TradeLineRequest{single}
	}

	if len(lines) == 0 {
		return nil, errEmptyBody
	}

	for i := range lines {
		if err := lines[i].Validate(); err != nil {
			return nil, err
		}
	}

	return lines, nil
}

// ParseEquipLines is the equip/unequip counterpart of ParseTradeLines.
func ParseEquipLines(data []byte) ([]EquipLineRequest, error) {
	var lines []EquipLineRequest
	if err := json.Unmarshal(data, &lines); err != nil {
		var single EquipLineRequest
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, errMalformedBody
		}
		lines = []EquipLineRequest{single}
	}

	if len(lines) == 0 {
		return nil, errEmptyBody
	}

	for i := range lines {
		if err := lines[i].Validate(); err != nil {
			return nil, err
		}
	}

	return lines, nil
}
