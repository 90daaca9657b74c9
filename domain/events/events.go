package events

import "megabot/domain/entities"

// EventType represents different types of ledger events
type EventType string

const (
	EventTypeBalanceChange    EventType = "balance_change"
	EventTypeInventoryChange  EventType = "inventory_change"
	EventTypeInventoryCleared EventType = "inventory_cleared"
	EventTypeUserReset        EventType = "user_reset"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BalanceChangeEvent represents a committed balance change
type BalanceChangeEvent struct {
	UserID          int64                    `json:"user_id"`
	GuildID         int64                    `json:"guild_id"`
	OldBalance      int64                    `json:"old_balance"`
	NewBalance      int64                    `json:"new_balance"`
	ChangeAmount    int64                    `json:"change_amount"`
	TransactionType entities.TransactionType `json:"transaction_type"`
	Metadata        map[string]any           `json:"metadata,omitempty"`
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// InventoryChangeEvent represents a change to one inventory entry.
// Delta is positive for grants, negative for uses and removals.
type InventoryChangeEvent struct {
	UserID      int64             `json:"user_id"`
	GuildID     int64             `json:"guild_id"`
	ItemName    string            `json:"item_name"`
	ItemType    entities.ItemType `json:"item_type,omitempty"`
	Delta       int64             `json:"delta"`
	NewQuantity int64             `json:"new_quantity"`
}

func (e InventoryChangeEvent) Type() EventType {
	return EventTypeInventoryChange
}

// InventoryClearedEvent represents the removal of all of a user's inventory entries
type InventoryClearedEvent struct {
	UserID       int64 `json:"user_id"`
	GuildID      int64 `json:"guild_id"`
	ItemsRemoved int64 `json:"items_removed"`
}

func (e InventoryClearedEvent) Type() EventType {
	return EventTypeInventoryCleared
}

// UserResetEvent represents an admin reset of a user's balance and inventory
type UserResetEvent struct {
	UserID       int64 `json:"user_id"`
	GuildID      int64 `json:"guild_id"`
	AdminID      int64 `json:"admin_id"`
	NewBalance   int64 `json:"new_balance"`
	ItemsCleared int64 `json:"items_cleared"`
}

func (e UserResetEvent) Type() EventType {
	return EventTypeUserReset
}
