package interfaces

import (
	"context"

	"megabot/domain/entities"
)

// BalanceAdjustment describes a single balance change and how it is recorded
type BalanceAdjustment struct {
	DiscordID       int64
	Delta           int64
	TransactionType entities.TransactionType
	Metadata        map[string]any
}

// LedgerService owns per-(user, guild) balances and inventories
type LedgerService interface {
	// GetBalance returns the current balance, the starting balance when unset
	GetBalance(ctx context.Context, discordID int64) (int64, error)

	// UpdateBalance applies delta and returns the new balance. No floor is enforced.
	UpdateBalance(ctx context.Context, discordID int64, delta int64) (int64, error)

	// Adjust applies a balance change with an explicit transaction type and metadata
	Adjust(ctx context.Context, adjustment BalanceAdjustment) (int64, error)

	// LockAccount returns the account, creating it if needed, locked for the transaction
	LockAccount(ctx context.Context, discordID int64) (*entities.Account, error)

	GetInventory(ctx context.Context, discordID int64) ([]*entities.InventoryItem, error)
	GetItemQuantity(ctx context.Context, discordID int64, itemName string) (int64, error)

	// AddInventoryItem grants quantity of an item; quantity must be positive
	AddInventoryItem(ctx context.Context, discordID int64, itemName string, itemType entities.ItemType, quantity int64) (int64, error)

	// UseInventoryItem consumes quantity of an item, returning false when not enough is held
	UseInventoryItem(ctx context.Context, discordID int64, itemName string, quantity int64) (bool, error)

	// ConsumeInventoryItem is UseInventoryItem that also returns the quantity left after the decrement
	ConsumeInventoryItem(ctx context.Context, discordID int64, itemName string, quantity int64) (int64, bool, error)

	// RemoveInventoryItem deletes the entry regardless of quantity
	RemoveInventoryItem(ctx context.Context, discordID int64, itemName string) error

	// ClearInventory deletes every entry of the user and returns how many were removed
	ClearInventory(ctx context.Context, discordID int64) (int64, error)

	GetActiveBoosts(ctx context.Context, discordID int64) ([]*entities.ActiveBoost, error)
	GetRobStats(ctx context.Context, discordID int64) (*entities.RobStats, error)

	// GetUserData returns balance, inventory, boosts and rob stats in one read
	GetUserData(ctx context.Context, discordID int64) (*entities.UserData, error)

	// Snapshot exports every account and inventory entry of the guild
	Snapshot(ctx context.Context) (*entities.LedgerSnapshot, error)
}

// BalanceChange reports the balance before and after an admin operation
type BalanceChange struct {
	DiscordID int64
	Previous  int64
	New       int64
}

// ItemGrant reports the result of giving an item
type ItemGrant struct {
	ItemName    string
	ItemType    entities.ItemType
	Quantity    int64
	NewQuantity int64
}

// ItemRemoval reports the result of taking an item
type ItemRemoval struct {
	ItemName string
	Previous int64
	New      int64
}

// UserReset reports the result of resetting a user
type UserReset struct {
	NewBalance   int64
	ItemsCleared int64
}

// BackupResult reports where a ledger snapshot was stored
type BackupResult struct {
	Location     string
	AccountCount int
	ItemCount    int
}

// AdminService implements the owner-only ledger commands
type AdminService interface {
	SetBalance(ctx context.Context, discordID int64, amount int64) (*BalanceChange, error)
	AddBalance(ctx context.Context, discordID int64, amount int64) (*BalanceChange, error)
	RemoveBalance(ctx context.Context, discordID int64, amount int64) (*BalanceChange, error)
	ResetBalance(ctx context.Context, discordID int64) (*BalanceChange, error)

	GiveItem(ctx context.Context, discordID int64, itemName string, quantity int64) (*ItemGrant, error)
	RemoveItem(ctx context.Context, discordID int64, itemName string, quantity int64) (*ItemRemoval, error)
	ClearInventory(ctx context.Context, discordID int64) (int64, error)

	ViewInventory(ctx context.Context, discordID int64) ([]*entities.InventoryItem, error)
	ViewUserData(ctx context.Context, discordID int64) (*entities.UserData, error)

	// ResetUser restores the starting balance and clears the inventory; confirm must be "CONFIRM"
	ResetUser(ctx context.Context, discordID int64, confirm string) (*UserReset, error)

	// Backup exports the guild ledger to the given store
	Backup(ctx context.Context, store SnapshotStore) (*BackupResult, error)
}

// Authorizer decides whether a caller may run admin commands
type Authorizer interface {
	IsAuthorized(discordID int64) bool
}
