package application

import (
	"context"

	"megabot/domain/interfaces"
)

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and publishes queued events
	Commit() error

	// Rollback rolls back the transaction and discards queued events
	Rollback() error

	// Repository getters
	AccountRepository() interfaces.AccountRepository
	InventoryRepository() interfaces.InventoryRepository
	BoostRepository() interfaces.BoostRepository
	RobStatsRepository() interfaces.RobStatsRepository
	BalanceHistoryRepository() interfaces.BalanceHistoryRepository
	EventBus() interfaces.EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// CreateForGuild creates a new UnitOfWork instance scoped to a specific guild
	CreateForGuild(guildID int64) UnitOfWork
}
