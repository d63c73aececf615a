package response

type CreateItemResponse struct {
	Message string         `json:"message"`
	Data    CreateItemData `json:"data"`
}

type CreateItemData struct {
	ItemCode  int      `json:"item_code"`
	ItemStat  ItemStat `json:"item_stat"`
	ItemPrice int      `json:"item_price"`
}

type ItemStat struct {
	Health int `json:"health"`
	Power  int `json:"power"`
}

type ItemListEntry struct {
	ItemCode  int    `json:"item_code"`
	ItemName  string `json:"item_name"`
	ItemPrice int    `json:"item_price"`
}
