package entities

import "time"

// LedgerSnapshot is a point-in-time export of a guild's balances and inventories
type LedgerSnapshot struct {
	GuildID   int64             `json:"guild_id"`
	TakenAt   time.Time         `json:"taken_at"`
	Accounts  []SnapshotAccount `json:"accounts"`
	Inventory []SnapshotItem    `json:"inventory"`
}

// SnapshotAccount is one account row in a snapshot
type SnapshotAccount struct {
	DiscordID int64 `json:"discord_id"`
	Balance   int64 `json:"balance"`
}

// SnapshotItem is one inventory row in a snapshot
type SnapshotItem struct {
	DiscordID int64    `json:"discord_id"`
	ItemName  string   `json:"item_name"`
	ItemType  ItemType `json:"item_type"`
	Quantity  int64    `json:"quantity"`
}
