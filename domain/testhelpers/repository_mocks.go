package testhelpers

import (
	"context"

	"megabot/domain/entities"
	"megabot/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByDiscordID(ctx context.Context, discordID int64) (*entities.Account, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) EnsureForUpdate(ctx context.Context, discordID int64, startingBalance int64) (*entities.Account, bool, error) {
	args := m.Called(ctx, discordID, startingBalance)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entities.Account), args.Bool(1), args.Error(2)
}

func (m *MockAccountRepository) AdjustBalance(ctx context.Context, discordID int64, delta int64, startingBalance int64) (int64, error) {
	args := m.Called(ctx, discordID, delta, startingBalance)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) ListAll(ctx context.Context) ([]*entities.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Account), args.Error(1)
}

// MockInventoryRepository is a mock implementation of InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) GetByUser(ctx context.Context, discordID int64) ([]*entities.InventoryItem, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) GetQuantity(ctx context.Context, discordID int64, itemName string) (int64, error) {
	args := m.Called(ctx, discordID, itemName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) AddQuantity(ctx context.Context, discordID int64, itemName string, itemType entities.ItemType, quantity int64) (int64, error) {
	args := m.Called(ctx, discordID, itemName, itemType, quantity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) DeductQuantity(ctx context.Context, discordID int64, itemName string, quantity int64) (int64, bool, error) {
	args := m.Called(ctx, discordID, itemName, quantity)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, discordID int64, itemName string) (int64, error) {
	args := m.Called(ctx, discordID, itemName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) DeleteAllByUser(ctx context.Context, discordID int64) (int64, error) {
	args := m.Called(ctx, discordID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) ListAll(ctx context.Context) ([]*entities.InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InventoryItem), args.Error(1)
}

// MockBoostRepository is a mock implementation of BoostRepository
type MockBoostRepository struct {
	mock.Mock
}

func (m *MockBoostRepository) GetActiveByUser(ctx context.Context, discordID int64) ([]*entities.ActiveBoost, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ActiveBoost), args.Error(1)
}

// MockRobStatsRepository is a mock implementation of RobStatsRepository
type MockRobStatsRepository struct {
	mock.Mock
}

func (m *MockRobStatsRepository) GetByUser(ctx context.Context, discordID int64) (*entities.RobStats, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RobStats), args.Error(1)
}

// MockBalanceHistoryRepository is a mock implementation of BalanceHistoryRepository
type MockBalanceHistoryRepository struct {
	mock.Mock
}

func (m *MockBalanceHistoryRepository) Record(ctx context.Context, history *entities.BalanceHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockBalanceHistoryRepository) GetByUser(ctx context.Context, discordID int64, limit int) ([]*entities.BalanceHistory, error) {
	args := m.Called(ctx, discordID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BalanceHistory), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

// MockSnapshotStore is a mock implementation of SnapshotStore
type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Save(ctx context.Context, snapshot *entities.LedgerSnapshot) (string, error) {
	args := m.Called(ctx, snapshot)
	return args.String(0), args.Error(1)
}
