package services

import (
	"context"
	"fmt"
	"time"

	"megabot/domain/entities"
	"megabot/domain/events"
	"megabot/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// ledgerService implements guild-scoped balance and inventory operations.
// Linearizability per key comes from the row locks taken by the repositories.
type ledgerService struct {
	guildID            int64
	accountRepo        interfaces.AccountRepository
	inventoryRepo      interfaces.InventoryRepository
	boostRepo          interfaces.BoostRepository
	robStatsRepo       interfaces.RobStatsRepository
	balanceHistoryRepo interfaces.BalanceHistoryRepository
	eventPublisher     interfaces.EventPublisher
	startingBalance    int64
}

// NewLedgerService creates a new ledger service for one guild
func NewLedgerService(
	guildID int64,
	accountRepo interfaces.AccountRepository,
	inventoryRepo interfaces.InventoryRepository,
	boostRepo interfaces.BoostRepository,
	robStatsRepo interfaces.RobStatsRepository,
	balanceHistoryRepo interfaces.BalanceHistoryRepository,
	eventPublisher interfaces.EventPublisher,
	startingBalance int64,
) interfaces.LedgerService {
	return &ledgerService{
		guildID:            guildID,
		accountRepo:        accountRepo,
		inventoryRepo:      inventoryRepo,
		boostRepo:          boostRepo,
		robStatsRepo:       robStatsRepo,
		balanceHistoryRepo: balanceHistoryRepo,
		eventPublisher:     eventPublisher,
		startingBalance:    startingBalance,
	}
}

// GetBalance returns the current balance without creating the account
func (s *ledgerService) GetBalance(ctx context.Context, discordID int64) (int64, error) {
	account, err := s.accountRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return s.startingBalance, nil
	}
	return account.Balance, nil
}

// UpdateBalance applies delta as a generic adjustment
func (s *ledgerService) UpdateBalance(ctx context.Context, discordID int64, delta int64) (int64, error) {
	return s.Adjust(ctx, interfaces.BalanceAdjustment{
		DiscordID:       discordID,
		Delta:           delta,
		TransactionType: entities.TransactionTypeAdjustment,
	})
}

// Adjust applies a balance delta in a single upsert statement and records it
func (s *ledgerService) Adjust(ctx context.Context, adjustment interfaces.BalanceAdjustment) (int64, error) {
	if adjustment.Delta == 0 {
		return s.GetBalance(ctx, adjustment.DiscordID)
	}

	newBalance, err := s.accountRepo.AdjustBalance(ctx, adjustment.DiscordID, adjustment.Delta, s.startingBalance)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust balance: %w", err)
	}

	history := &entities.BalanceHistory{
		DiscordID:           adjustment.DiscordID,
		GuildID:             s.guildID,
		BalanceBefore:       newBalance - adjustment.Delta,
		BalanceAfter:        newBalance,
		ChangeAmount:        adjustment.Delta,
		TransactionType:     adjustment.TransactionType,
		TransactionMetadata: adjustment.Metadata,
	}
	if err := s.recordBalanceChange(ctx, history); err != nil {
		return 0, err
	}

	return newBalance, nil
}

// LockAccount locks the account row for the rest of the transaction, creating it if needed
func (s *ledgerService) LockAccount(ctx context.Context, discordID int64) (*entities.Account, error) {
	account, created, err := s.accountRepo.EnsureForUpdate(ctx, discordID, s.startingBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}

	if created {
		history := &entities.BalanceHistory{
			DiscordID:       discordID,
			GuildID:         s.guildID,
			BalanceBefore:   0,
			BalanceAfter:    account.Balance,
			ChangeAmount:    account.Balance,
			TransactionType: entities.TransactionTypeInitial,
		}
		if err := s.recordBalanceChange(ctx, history); err != nil {
			return nil, err
		}
	}

	return account, nil
}

// GetInventory returns all held items ordered by name
func (s *ledgerService) GetInventory(ctx context.Context, discordID int64) ([]*entities.InventoryItem, error) {
	items, err := s.inventoryRepo.GetByUser(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return items, nil
}

// GetItemQuantity returns the held quantity of an item, 0 when absent
func (s *ledgerService) GetItemQuantity(ctx context.Context, discordID int64, itemName string) (int64, error) {
	quantity, err := s.inventoryRepo.GetQuantity(ctx, discordID, itemName)
	if err != nil {
		return 0, fmt.Errorf("failed to get item quantity: %w", err)
	}
	return quantity, nil
}

// AddInventoryItem grants quantity of an item and returns the new held quantity
func (s *ledgerService) AddInventoryItem(ctx context.Context, discordID int64, itemName string, itemType entities.ItemType, quantity int64) (int64, error) {
	if itemName == "" {
		return 0, entities.NewValidationError("item", "item name is required")
	}
	if quantity <= 0 {
		return 0, entities.NewValidationError("quantity", "must be positive")
	}

	newQuantity, err := s.inventoryRepo.AddQuantity(ctx, discordID, itemName, itemType, quantity)
	if err != nil {
		return 0, fmt.Errorf("failed to add inventory item: %w", err)
	}

	s.publish(events.InventoryChangeEvent{
		UserID:      discordID,
		GuildID:     s.guildID,
		ItemName:    itemName,
		ItemType:    itemType,
		Delta:       quantity,
		NewQuantity: newQuantity,
	})

	return newQuantity, nil
}

// UseInventoryItem consumes quantity of an item if enough is held
func (s *ledgerService) UseInventoryItem(ctx context.Context, discordID int64, itemName string, quantity int64) (bool, error) {
	_, ok, err := s.ConsumeInventoryItem(ctx, discordID, itemName, quantity)
	return ok, err
}

// ConsumeInventoryItem consumes quantity of an item and returns what is left
func (s *ledgerService) ConsumeInventoryItem(ctx context.Context, discordID int64, itemName string, quantity int64) (int64, bool, error) {
	if quantity <= 0 {
		return 0, false, entities.NewValidationError("quantity", "must be positive")
	}

	remaining, ok, err := s.inventoryRepo.DeductQuantity(ctx, discordID, itemName, quantity)
	if err != nil {
		return 0, false, fmt.Errorf("failed to use inventory item: %w", err)
	}
	if !ok {
		return 0, false, nil
	}

	s.publish(events.InventoryChangeEvent{
		UserID:      discordID,
		GuildID:     s.guildID,
		ItemName:    itemName,
		Delta:       -quantity,
		NewQuantity: remaining,
	})

	return remaining, true, nil
}

// RemoveInventoryItem deletes the entry regardless of its quantity
func (s *ledgerService) RemoveInventoryItem(ctx context.Context, discordID int64, itemName string) error {
	removed, err := s.inventoryRepo.Delete(ctx, discordID, itemName)
	if err != nil {
		return fmt.Errorf("failed to remove inventory item: %w", err)
	}

	if removed > 0 {
		s.publish(events.InventoryChangeEvent{
			UserID:   discordID,
			GuildID:  s.guildID,
			ItemName: itemName,
			Delta:    -removed,
		})
	}

	return nil
}

// ClearInventory removes every entry of the user in one statement
func (s *ledgerService) ClearInventory(ctx context.Context, discordID int64) (int64, error) {
	count, err := s.inventoryRepo.DeleteAllByUser(ctx, discordID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear inventory: %w", err)
	}

	if count > 0 {
		s.publish(events.InventoryClearedEvent{
			UserID:       discordID,
			GuildID:      s.guildID,
			ItemsRemoved: count,
		})
	}

	return count, nil
}

// GetActiveBoosts returns boosts that have not yet expired
func (s *ledgerService) GetActiveBoosts(ctx context.Context, discordID int64) ([]*entities.ActiveBoost, error) {
	boosts, err := s.boostRepo.GetActiveByUser(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active boosts: %w", err)
	}
	return boosts, nil
}

// GetRobStats returns robbery counters, zeros when absent
func (s *ledgerService) GetRobStats(ctx context.Context, discordID int64) (*entities.RobStats, error) {
	stats, err := s.robStatsRepo.GetByUser(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rob stats: %w", err)
	}
	return stats, nil
}

// GetUserData gathers the full ledger view of a user
func (s *ledgerService) GetUserData(ctx context.Context, discordID int64) (*entities.UserData, error) {
	balance, err := s.GetBalance(ctx, discordID)
	if err != nil {
		return nil, err
	}
	inventory, err := s.GetInventory(ctx, discordID)
	if err != nil {
		return nil, err
	}
	boosts, err := s.GetActiveBoosts(ctx, discordID)
	if err != nil {
		return nil, err
	}
	robStats, err := s.GetRobStats(ctx, discordID)
	if err != nil {
		return nil, err
	}

	return &entities.UserData{
		DiscordID: discordID,
		GuildID:   s.guildID,
		Balance:   balance,
		Inventory: inventory,
		Boosts:    boosts,
		RobStats:  robStats,
	}, nil
}

// Snapshot exports every account and inventory entry in the guild
func (s *ledgerService) Snapshot(ctx context.Context) (*entities.LedgerSnapshot, error) {
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	items, err := s.inventoryRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	snapshot := &entities.LedgerSnapshot{
		GuildID:   s.guildID,
		TakenAt:   time.Now().UTC(),
		Accounts:  make([]entities.SnapshotAccount, 0, len(accounts)),
		Inventory: make([]entities.SnapshotItem, 0, len(items)),
	}
	for _, account := range accounts {
		snapshot.Accounts = append(snapshot.Accounts, entities.SnapshotAccount{
			DiscordID: account.DiscordID,
			Balance:   account.Balance,
		})
	}
	for _, item := range items {
		snapshot.Inventory = append(snapshot.Inventory, entities.SnapshotItem{
			DiscordID: item.DiscordID,
			ItemName:  item.ItemName,
			ItemType:  item.ItemType,
			Quantity:  item.Quantity,
		})
	}

	return snapshot, nil
}

// publish queues an event, logging rather than failing on error
// recordBalanceChange writes the history row of a balance mutation and queues its event.
// The event carries the same metadata as the history row.
func (s *ledgerService) recordBalanceChange(ctx context.Context, history *entities.BalanceHistory) error {
	if err := s.balanceHistoryRepo.Record(ctx, history); err != nil {
		return fmt.Errorf("failed to record balance history: %w", err)
	}

	log.WithFields(log.Fields{
		"userID":          history.DiscordID,
		"guildID":         history.GuildID,
		"balanceBefore":   history.BalanceBefore,
		"balanceAfter":    history.BalanceAfter,
		"transactionType": history.TransactionType,
	}).Debug("Recorded balance change")

	s.publish(events.BalanceChangeEvent{
		UserID:          history.DiscordID,
		GuildID:         history.GuildID,
		OldBalance:      history.BalanceBefore,
		NewBalance:      history.BalanceAfter,
		ChangeAmount:    history.ChangeAmount,
		TransactionType: history.TransactionType,
		Metadata:        history.TransactionMetadata,
	})
	return nil
}

func (s *ledgerService) publish(event events.Event) {
	if err := s.eventPublisher.Publish(event); err != nil {
		log.WithFields(log.Fields{
			"eventType": event.Type(),
			"guildID":   s.guildID,
			"error":     err,
		}).Error("Failed to publish ledger event")
	}
}
