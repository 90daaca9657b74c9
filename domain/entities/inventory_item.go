package entities

import (
	"strings"
	"time"
	"unicode"
)

// ItemType classifies inventory items for display and catalog purposes
type ItemType string

const (
	ItemTypeSecurity   ItemType = "security"
	ItemTypeTool       ItemType = "tool"
	ItemTypeConsumable ItemType = "consumable"
)

// IsValid reports whether the item type is one of the known classifications
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeSecurity, ItemTypeTool, ItemTypeConsumable:
		return true
	}
	return false
}

// InventoryItem is a held quantity of a named item. Rows with zero quantity never exist.
type InventoryItem struct {
	DiscordID int64     `db:"discord_id"`
	GuildID   int64     `db:"guild_id"`
	ItemName  string    `db:"item_name"`
	ItemType  ItemType  `db:"item_type"`
	Quantity  int64     `db:"quantity"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// DisplayName returns the item name in human readable form
func (i *InventoryItem) DisplayName() string {
	return DisplayItemName(i.ItemName)
}

// NormalizeItemName converts free-form input into the stored item key:
// trimmed, lower-cased, with spaces replaced by underscores.
func NormalizeItemName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// DisplayItemName converts a stored item key into title-cased words
func DisplayItemName(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
