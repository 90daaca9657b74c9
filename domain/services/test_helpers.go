package services

import (
	"testing"

	"megabot/domain/entities"
	"megabot/domain/interfaces"
	"megabot/domain/testhelpers"
)

// Test constants for consistent test data
const (
	TestGuildID         = int64(555555555)
	TestAdminID         = int64(999999)
	TestUserID          = int64(100)
	TestStartingBalance = int64(1000)
)

// TestMocks aggregates all repository mocks for testing
type TestMocks struct {
	AccountRepo        *testhelpers.MockAccountRepository
	InventoryRepo      *testhelpers.MockInventoryRepository
	BoostRepo          *testhelpers.MockBoostRepository
	RobStatsRepo       *testhelpers.MockRobStatsRepository
	BalanceHistoryRepo *testhelpers.MockBalanceHistoryRepository
	EventPublisher     *testhelpers.MockEventPublisher
}

// NewTestMocks creates a new set of mocks
func NewTestMocks() *TestMocks {
	return &TestMocks{
		AccountRepo:        &testhelpers.MockAccountRepository{},
		InventoryRepo:      &testhelpers.MockInventoryRepository{},
		BoostRepo:          &testhelpers.MockBoostRepository{},
		RobStatsRepo:       &testhelpers.MockRobStatsRepository{},
		BalanceHistoryRepo: &testhelpers.MockBalanceHistoryRepository{},
		EventPublisher:     &testhelpers.MockEventPublisher{},
	}
}

// LedgerService builds a ledger service over the mocks
func (m *TestMocks) LedgerService() interfaces.LedgerService {
	return NewLedgerService(
		TestGuildID,
		m.AccountRepo,
		m.InventoryRepo,
		m.BoostRepo,
		m.RobStatsRepo,
		m.BalanceHistoryRepo,
		m.EventPublisher,
		TestStartingBalance,
	)
}

// AdminService builds an admin service over a mock-backed ledger service
func (m *TestMocks) AdminService() interfaces.AdminService {
	return NewAdminService(
		TestGuildID,
		m.LedgerService(),
		m.EventPublisher,
		entities.NewDefaultItemCatalog(),
		TestStartingBalance,
		TestAdminID,
	)
}

// AssertAllExpectations verifies all mock expectations were met
func (m *TestMocks) AssertAllExpectations(t *testing.T) {
	m.AccountRepo.AssertExpectations(t)
	m.InventoryRepo.AssertExpectations(t)
	m.BoostRepo.AssertExpectations(t)
	m.RobStatsRepo.AssertExpectations(t)
	m.BalanceHistoryRepo.AssertExpectations(t)
	m.EventPublisher.AssertExpectations(t)
}
