package repository

import (
	"context"
	"errors"
	"fmt"

	"megabot/application"
	"megabot/database"
	"megabot/domain/interfaces"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

// unitOfWork implements the UnitOfWork interface over one pgx transaction
type unitOfWork struct {
	db                     *database.DB
	tx                     pgx.Tx
	ctx                    context.Context
	guildID                int64
	transactionalPublisher interfaces.TransactionalEventPublisher
	accountRepo            interfaces.AccountRepository
	inventoryRepo          interfaces.InventoryRepository
	boostRepo              interfaces.BoostRepository
	robStatsRepo           interfaces.RobStatsRepository
	balanceHistoryRepo     interfaces.BalanceHistoryRepository
}

// UnitOfWorkFactory creates guild-scoped units of work over a connection pool
type UnitOfWorkFactory struct {
	db *database.DB
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		db: db,
	}
}

// CreateForGuildWithPublisher creates a new UnitOfWork that flushes the given publisher on commit
func (f *UnitOfWorkFactory) CreateForGuildWithPublisher(guildID int64, transactionalPublisher interfaces.TransactionalEventPublisher) application.UnitOfWork {
	return &unitOfWork{
		db:                     f.db,
		guildID:                guildID,
		transactionalPublisher: transactionalPublisher,
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	u.accountRepo = NewAccountRepositoryScoped(tx, u.guildID)
	u.inventoryRepo = NewInventoryRepositoryScoped(tx, u.guildID)
	u.boostRepo = NewBoostRepositoryScoped(tx, u.guildID)
	u.robStatsRepo = NewRobStatsRepositoryScoped(tx, u.guildID)
	u.balanceHistoryRepo = NewBalanceHistoryRepositoryScoped(tx, u.guildID)

	return nil
}

// Commit commits the transaction, then flushes pending events
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	err := u.tx.Commit(u.ctx)
	u.tx = nil
	if err != nil {
		if u.transactionalPublisher != nil {
			u.transactionalPublisher.Discard()
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	// Events are best-effort once the data is durable
	if u.transactionalPublisher != nil {
		if err := u.transactionalPublisher.Flush(u.ctx); err != nil {
			log.WithFields(log.Fields{
				"guildID": u.guildID,
				"error":   err,
			}).Error("Failed to flush events after commit")
		}
	}

	return nil
}

// Rollback rolls back the transaction; it is a no-op after Commit
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback(u.ctx)
	u.tx = nil

	if u.transactionalPublisher != nil {
		u.transactionalPublisher.Discard()
	}

	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// AccountRepository returns the account repository for this unit of work
func (u *unitOfWork) AccountRepository() interfaces.AccountRepository {
	if u.accountRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.accountRepo
}

// InventoryRepository returns the inventory repository for this unit of work
func (u *unitOfWork) InventoryRepository() interfaces.InventoryRepository {
	if u.inventoryRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.inventoryRepo
}

// BoostRepository returns the boost repository for this unit of work
func (u *unitOfWork) BoostRepository() interfaces.BoostRepository {
	if u.boostRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.boostRepo
}

// RobStatsRepository returns the rob stats repository for this unit of work
func (u *unitOfWork) RobStatsRepository() interfaces.RobStatsRepository {
	if u.robStatsRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.robStatsRepo
}

// BalanceHistoryRepository returns the balance history repository for this unit of work
func (u *unitOfWork) BalanceHistoryRepository() interfaces.BalanceHistoryRepository {
	if u.balanceHistoryRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.balanceHistoryRepo
}

// EventBus returns the transactional event publisher for this unit of work
func (u *unitOfWork) EventBus() interfaces.EventPublisher {
	if u.transactionalPublisher == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.transactionalPublisher
}
