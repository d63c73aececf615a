package domain

// InventoryEntry is one stack of a character's inventory resolved against
// the catalog for display.
type InventoryEntry struct {
	ItemCode int    `json:"item_code"`
	ItemName string `json:"item_name"`
	Count    int    `json:"count"`
}

// EquipmentEntry is one worn item resolved against the catalog.
type EquipmentEntry struct {
	ItemCode int    `json:"item_code"`
	ItemName string `json:"item_name"`
}
