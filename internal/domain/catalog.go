package domain

// PetCatalogEntry is a static species entry the gacha draws from.
type PetCatalogEntry struct {
	Species string  `json:"species"`
	Name    string  `json:"name"`
	Rarity  Rarity  `json:"rarity"`
	Chance  float64 `json:"chance"` // non-negative draw weight
}
