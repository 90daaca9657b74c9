package services

import (
	"context"
	"fmt"

	"megabot/domain/entities"
	"megabot/domain/events"
	"megabot/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// ResetConfirmation is the token an admin must type to reset a user
const ResetConfirmation = "CONFIRM"

// adminService implements the owner-only ledger commands on top of the ledger service.
// All calls of one command share the caller's unit of work.
type adminService struct {
	guildID         int64
	ledger          interfaces.LedgerService
	eventPublisher  interfaces.EventPublisher
	catalog         *entities.ItemCatalog
	startingBalance int64
	actorID         int64
}

// NewAdminService creates an admin service acting on behalf of actorID
func NewAdminService(
	guildID int64,
	ledger interfaces.LedgerService,
	eventPublisher interfaces.EventPublisher,
	catalog *entities.ItemCatalog,
	startingBalance int64,
	actorID int64,
) interfaces.AdminService {
	return &adminService{
		guildID:         guildID,
		ledger:          ledger,
		eventPublisher:  eventPublisher,
		catalog:         catalog,
		startingBalance: startingBalance,
		actorID:         actorID,
	}
}

// SetBalance replaces the balance with amount while holding the row lock
func (s *adminService) SetBalance(ctx context.Context, discordID int64, amount int64) (*interfaces.BalanceChange, error) {
	if amount < 0 {
		return nil, entities.NewValidationError("amount", "must not be negative")
	}

	account, err := s.ledger.LockAccount(ctx, discordID)
	if err != nil {
		return nil, err
	}

	newBalance, err := s.ledger.Adjust(ctx, s.adjustment(discordID, amount-account.Balance, entities.TransactionTypeAdminSet))
	if err != nil {
		return nil, err
	}

	s.logAction("setbalance", discordID, log.Fields{"previous": account.Balance, "new": newBalance})
	return &interfaces.BalanceChange{DiscordID: discordID, Previous: account.Balance, New: newBalance}, nil
}

// AddBalance credits amount in a single atomic statement
func (s *adminService) AddBalance(ctx context.Context, discordID int64, amount int64) (*interfaces.BalanceChange, error) {
	if amount <= 0 {
		return nil, entities.NewValidationError("amount", "must be positive")
	}

	newBalance, err := s.ledger.Adjust(ctx, s.adjustment(discordID, amount, entities.TransactionTypeAdminAdd))
	if err != nil {
		return nil, err
	}

	s.logAction("addbalance", discordID, log.Fields{"amount": amount, "new": newBalance})
	return &interfaces.BalanceChange{DiscordID: discordID, Previous: newBalance - amount, New: newBalance}, nil
}

// RemoveBalance debits amount, refusing to take the balance below zero
func (s *adminService) RemoveBalance(ctx context.Context, discordID int64, amount int64) (*interfaces.BalanceChange, error) {
	if amount <= 0 {
		return nil, entities.NewValidationError("amount", "must be positive")
	}

	account, err := s.ledger.LockAccount(ctx, discordID)
	if err != nil {
		return nil, err
	}
	if amount > account.Balance {
		return nil, &entities.InsufficientBalanceError{Balance: account.Balance, Requested: amount}
	}

	newBalance, err := s.ledger.Adjust(ctx, s.adjustment(discordID, -amount, entities.TransactionTypeAdminRemove))
	if err != nil {
		return nil, err
	}

	s.logAction("removebalance", discordID, log.Fields{"amount": amount, "new": newBalance})
	return &interfaces.BalanceChange{DiscordID: discordID, Previous: account.Balance, New: newBalance}, nil
}

// ResetBalance restores the starting balance
func (s *adminService) ResetBalance(ctx context.Context, discordID int64) (*interfaces.BalanceChange, error) {
	account, err := s.ledger.LockAccount(ctx, discordID)
	if err != nil {
		return nil, err
	}

	newBalance, err := s.ledger.Adjust(ctx, s.adjustment(discordID, s.startingBalance-account.Balance, entities.TransactionTypeAdminReset))
	if err != nil {
		return nil, err
	}

	s.logAction("resetbalance", discordID, log.Fields{"previous": account.Balance, "new": newBalance})
	return &interfaces.BalanceChange{DiscordID: discordID, Previous: account.Balance, New: newBalance}, nil
}

// GiveItem grants quantity of an item classified through the catalog
func (s *adminService) GiveItem(ctx context.Context, discordID int64, itemName string, quantity int64) (*interfaces.ItemGrant, error) {
	itemName = entities.NormalizeItemName(itemName)
	if itemName == "" {
		return nil, entities.NewValidationError("item", "item name is required")
	}
	if quantity <= 0 {
		return nil, entities.NewValidationError("quantity", "must be at least 1")
	}

	itemType := s.catalog.Classify(itemName)
	newQuantity, err := s.ledger.AddInventoryItem(ctx, discordID, itemName, itemType, quantity)
	if err != nil {
		return nil, err
	}

	s.logAction("giveitem", discordID, log.Fields{"item": itemName, "quantity": quantity})
	return &interfaces.ItemGrant{
		ItemName:    itemName,
		ItemType:    itemType,
		Quantity:    quantity,
		NewQuantity: newQuantity,
	}, nil
}

// RemoveItem takes quantity of an item, failing without effect when not enough is held
func (s *adminService) RemoveItem(ctx context.Context, discordID int64, itemName string, quantity int64) (*interfaces.ItemRemoval, error) {
	itemName = entities.NormalizeItemName(itemName)
	if itemName == "" {
		return nil, entities.NewValidationError("item", "item name is required")
	}
	if quantity <= 0 {
		return nil, entities.NewValidationError("quantity", "must be at least 1")
	}

	// Previous and New derive from the decrement itself, not from an earlier read
	remaining, ok, err := s.ledger.ConsumeInventoryItem(ctx, discordID, itemName, quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		have, err := s.ledger.GetItemQuantity(ctx, discordID, itemName)
		if err != nil {
			return nil, err
		}
		return nil, s.insufficientQuantity(ctx, discordID, itemName, have, quantity)
	}

	s.logAction("removeitem", discordID, log.Fields{"item": itemName, "quantity": quantity})
	return &interfaces.ItemRemoval{ItemName: itemName, Previous: remaining + quantity, New: remaining}, nil
}

// ClearInventory removes every inventory entry of the user
func (s *adminService) ClearInventory(ctx context.Context, discordID int64) (int64, error) {
	count, err := s.ledger.ClearInventory(ctx, discordID)
	if err != nil {
		return 0, err
	}

	s.logAction("clearinventory", discordID, log.Fields{"removed": count})
	return count, nil
}

// ViewInventory returns the user's held items
func (s *adminService) ViewInventory(ctx context.Context, discordID int64) ([]*entities.InventoryItem, error) {
	return s.ledger.GetInventory(ctx, discordID)
}

// ViewUserData returns the user's full ledger view
func (s *adminService) ViewUserData(ctx context.Context, discordID int64) (*entities.UserData, error) {
	return s.ledger.GetUserData(ctx, discordID)
}

// ResetUser restores the starting balance and clears the inventory.
// Both steps run in the caller's transaction so neither survives a failure of the other.
func (s *adminService) ResetUser(ctx context.Context, discordID int64, confirm string) (*interfaces.UserReset, error) {
	if confirm != ResetConfirmation {
		return nil, entities.NewValidationError("confirm", "Please type 'CONFIRM' to confirm the reset")
	}

	change, err := s.ResetBalance(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to reset balance: %w", err)
	}
	cleared, err := s.ledger.ClearInventory(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to clear inventory: %w", err)
	}

	event := events.UserResetEvent{
		UserID:       discordID,
		GuildID:      s.guildID,
		AdminID:      s.actorID,
		NewBalance:   change.New,
		ItemsCleared: cleared,
	}
	if err := s.eventPublisher.Publish(event); err != nil {
		log.WithError(err).Error("Failed to publish user reset event")
	}

	log.WithFields(log.Fields{
		"adminID":      s.actorID,
		"guildID":      s.guildID,
		"userID":       discordID,
		"newBalance":   change.New,
		"itemsCleared": cleared,
	}).Warn("Admin reset user data")

	return &interfaces.UserReset{NewBalance: change.New, ItemsCleared: cleared}, nil
}

// Backup exports the guild ledger to the store
func (s *adminService) Backup(ctx context.Context, store interfaces.SnapshotStore) (*interfaces.BackupResult, error) {
	snapshot, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	location, err := store.Save(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	log.WithFields(log.Fields{
		"adminID":  s.actorID,
		"guildID":  snapshot.GuildID,
		"location": location,
		"accounts": len(snapshot.Accounts),
		"items":    len(snapshot.Inventory),
	}).Info("Admin exported ledger backup")

	return &interfaces.BackupResult{
		Location:     location,
		AccountCount: len(snapshot.Accounts),
		ItemCount:    len(snapshot.Inventory),
	}, nil
}

func (s *adminService) adjustment(discordID int64, delta int64, transactionType entities.TransactionType) interfaces.BalanceAdjustment {
	return interfaces.BalanceAdjustment{
		DiscordID:       discordID,
		Delta:           delta,
		TransactionType: transactionType,
		Metadata:        map[string]any{"admin_id": s.actorID},
	}
}

// insufficientQuantity builds the error for a failed removal, with held names close to itemName
func (s *adminService) insufficientQuantity(ctx context.Context, discordID int64, itemName string, have, requested int64) error {
	qtyErr := &entities.InsufficientQuantityError{ItemName: itemName, Have: have, Requested: requested}
	if have > 0 {
		return qtyErr
	}

	inventory, err := s.ledger.GetInventory(ctx, discordID)
	if err != nil {
		return err
	}
	held := make([]string, 0, len(inventory))
	for _, item := range inventory {
		held = append(held, item.ItemName)
	}
	qtyErr.Suggestions = SuggestItemNames(itemName, held)
	return qtyErr
}

func (s *adminService) logAction(command string, discordID int64, fields log.Fields) {
	fields["adminID"] = s.actorID
	fields["guildID"] = s.guildID
	fields["userID"] = discordID
	fields["command"] = command
	log.WithFields(fields).Info("Admin ledger command executed")
}
