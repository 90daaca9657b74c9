package interfaces

import (
	"context"

	"megabot/domain/entities"
	"megabot/domain/events"
)

// AccountRepository defines guild-scoped access to ledger balances
type AccountRepository interface {
	// GetByDiscordID returns the account, or nil when it has never been written
	GetByDiscordID(ctx context.Context, discordID int64) (*entities.Account, error)

	// EnsureForUpdate creates the account with the starting balance if needed and
	// locks the row for the rest of the transaction. created is true on first write.
	EnsureForUpdate(ctx context.Context, discordID int64, startingBalance int64) (account *entities.Account, created bool, err error)

	// AdjustBalance atomically adds delta to the balance, creating the account at
	// startingBalance+delta when absent, and returns the new balance
	AdjustBalance(ctx context.Context, discordID int64, delta int64, startingBalance int64) (int64, error)

	// ListAll returns every account in the guild ordered by Discord ID
	ListAll(ctx context.Context) ([]*entities.Account, error)
}

// InventoryRepository defines guild-scoped access to inventory quantities
type InventoryRepository interface {
	// GetByUser returns all held items ordered by item name
	GetByUser(ctx context.Context, discordID int64) ([]*entities.InventoryItem, error)

	// GetQuantity returns the held quantity, 0 when absent
	GetQuantity(ctx context.Context, discordID int64, itemName string) (int64, error)

	// AddQuantity increments the entry, creating it with itemType when absent, and returns the new quantity
	AddQuantity(ctx context.Context, discordID int64, itemName string, itemType entities.ItemType, quantity int64) (int64, error)

	// DeductQuantity decrements the entry only if at least quantity is held.
	// The row is deleted when it reaches zero. ok is false and nothing changes otherwise.
	DeductQuantity(ctx context.Context, discordID int64, itemName string, quantity int64) (remaining int64, ok bool, err error)

	// Delete removes the entry unconditionally and returns the quantity that was held
	Delete(ctx context.Context, discordID int64, itemName string) (int64, error)

	// DeleteAllByUser removes every entry of the user and returns the number of entries removed
	DeleteAllByUser(ctx context.Context, discordID int64) (int64, error)

	// ListAll returns every inventory entry in the guild
	ListAll(ctx context.Context) ([]*entities.InventoryItem, error)
}

// BoostRepository defines read access to active boosts
type BoostRepository interface {
	// GetActiveByUser returns boosts that have not yet expired
	GetActiveByUser(ctx context.Context, discordID int64) ([]*entities.ActiveBoost, error)
}

// RobStatsRepository defines read access to robbery statistics
type RobStatsRepository interface {
	// GetByUser returns the counters, all zeros when no row exists
	GetByUser(ctx context.Context, discordID int64) (*entities.RobStats, error)
}

// BalanceHistoryRepository defines the interface for balance history tracking
type BalanceHistoryRepository interface {
	// Record creates a new balance history entry
	Record(ctx context.Context, history *entities.BalanceHistory) error

	// GetByUser returns the most recent balance history entries for a user
	GetByUser(ctx context.Context, discordID int64, limit int) ([]*entities.BalanceHistory, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event) error
}

// TransactionalEventPublisher queues events until the surrounding transaction finishes
type TransactionalEventPublisher interface {
	EventPublisher

	// Flush publishes all queued events; called after commit
	Flush(ctx context.Context) error

	// Discard drops all queued events; called on rollback
	Discard()
}

// SnapshotStore persists ledger snapshots outside the database
type SnapshotStore interface {
	// Save stores the snapshot and returns its location
	Save(ctx context.Context, snapshot *entities.LedgerSnapshot) (string, error)
}
