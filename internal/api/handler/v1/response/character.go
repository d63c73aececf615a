package response

type CreateCharacterResponse struct {
	Message string              `json:"message"`
	Data    CreateCharacterData `json:"data"`
}

type CreateCharacterData struct {
	CharacterID uint `json:"character_id"`
}

// CharacterDetailResponse hides the money balance from non-owners.
type CharacterDetailResponse struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
	Power  int    `json:"power"`
	Money  *int   `json:"money,omitempty"`
}

type DeleteCharacterResponse struct {
	Message string `json:"message"`
}

type MoneyPickupResponse struct {
	Message string `json:"message"`
	Amount  int    `json:"amount"`
	Balance int    `json:"balance"`
}
