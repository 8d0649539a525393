package models

// Rarity is derived from the slot an item occupies, never stored on the item.
type Rarity string

const (
	RarityCommon   Rarity = "Common"
	RarityUncommon Rarity = "Uncommon"
	RarityRare     Rarity = "Rare"
)

// Slot is one of the six fixed reward columns on a relic.
type Slot struct {
	Column string
	Rarity Rarity
}

// Slots lists the reward columns in display order.
var Slots = [6]Slot{
	{Column: "common1", Rarity: RarityCommon},
	{Column: "common2", Rarity: RarityCommon},
	{Column: "common3", Rarity: RarityCommon},
	{Column: "uncommon1", Rarity: RarityUncommon},
	{Column: "uncommon2", Rarity: RarityUncommon},
	{Column: "rare", Rarity: RarityRare},
}

// RelicSummary is the id/name projection returned by list and advanced search queries.
type RelicSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RelicDetail is a relic joined with the names of its six slot items, in slot order.
// A nil entry means the slot is empty or references a missing item.
type RelicDetail struct {
	ID    int64
	Name  string
	Items [6]*string
}
