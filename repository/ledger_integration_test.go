package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"megabot/application"
	"megabot/domain/entities"
	"megabot/domain/events"
	"megabot/domain/interfaces"
	"megabot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminID = int64(999999)

func testSettings() application.LedgerSettings {
	return application.LedgerSettings{
		StartingBalance: testStartBalance,
		Catalog:         entities.NewDefaultItemCatalog(),
	}
}

// inLedger runs fn inside a committed unit of work
func inLedger(t *testing.T, factory *UnitOfWorkFactory, publisher *testutil.RecordingPublisher, fn func(ledger interfaces.LedgerService)) {
	t.Helper()
	ctx := context.Background()

	uow := factory.CreateForGuildWithPublisher(testGuildID, publisher)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	fn(application.NewLedgerService(uow, testGuildID, testSettings()))
	require.NoError(t, uow.Commit())
}

func TestLedger_BalanceArithmetic(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	factory := NewUnitOfWorkFactory(testDB.DB)
	publisher := &testutil.RecordingPublisher{}
	ctx := context.Background()

	t.Run("unset balance reads as starting balance", func(t *testing.T) {
		inLedger(t, factory, publisher, func(ledger interfaces.LedgerService) {
			balance, err := ledger.GetBalance(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, testStartBalance, balance)
		})
	})

	t.Run("update returns new balance and allows negatives", func(t *testing.T) {
		inLedger(t, factory, publisher, func(ledger interfaces.LedgerService) {
			balance, err := ledger.UpdateBalance(ctx, 2, 500)
			require.NoError(t, err)
			assert.Equal(t, int64(1500), balance)

			balance, err = ledger.UpdateBalance(ctx, 2, -2000)
			require.NoError(t, err)
			assert.Equal(t, int64(-500), balance)
		})

		inLedger(t, factory, publisher, func(ledger interfaces.LedgerService) {
			balance, err := ledger.GetBalance(ctx, 2)
			require.NoError(t, err)
			assert.Equal(t, int64(-500), balance)
		})
	})

	t.Run("history records each change", func(t *testing.T) {
		history, err := NewBalanceHistoryRepositoryScoped(testDB.DB.Pool, testGuildID).GetByUser(ctx, 2, 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, int64(1500), history[0].BalanceBefore)
		assert.Equal(t, int64(-500), history[0].BalanceAfter)
	})
}

func TestLedger_ConcurrentAdjustments(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	factory := NewUnitOfWorkFactory(testDB.DB)
	publisher := &testutil.RecordingPublisher{}
	ctx := context.Background()

	const pairs = 20
	var wg sync.WaitGroup
	errs := make(chan error, pairs*2)

	adjust := func(delta int64) {
		defer wg.Done()
		uow := factory.CreateForGuildWithPublisher(testGuildID, publisher)
		if err := uow.Begin(ctx); err != nil {
			errs <- err
			return
		}
		defer uow.Rollback()

		if _, err := application.NewLedgerService(uow, testGuildID, testSettings()).UpdateBalance(ctx, 1, delta); err != nil {
			errs <- err
			return
		}
		errs <- uow.Commit()
	}

	for range pairs {
		wg.Add(2)
		go adjust(5)
		go adjust(-3)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	inLedger(t, factory, publisher, func(ledger interfaces.LedgerService) {
		balance, err := ledger.GetBalance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, testStartBalance+pairs*2, balance, "no update is lost")
	})
}

func TestLedger_InventoryFlow(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	factory := NewUnitOfWorkFactory(testDB.DB)
	publisher := &testutil.RecordingPublisher{}
	ctx := context.Background()

	inLedger(t, factory, publisher, func(ledger interfaces.LedgerService) {
		qty, err := ledger.AddInventoryItem(ctx, 1, "padlock", entities.ItemTypeSecurity, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), qty)

		ok, err := ledger.UseInventoryItem(ctx, 1, "padlock", 5)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = ledger.UseInventoryItem(ctx, 1, "padlock", 3)
		require.NoError(t, err)
		assert.True(t, ok)

		items, err := ledger.GetInventory(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	assert.Equal(t, []events.EventType{
		events.EventTypeInventoryChange,
		events.EventTypeInventoryChange,
	}, publisher.PublishedTypes())
}

func TestAdmin_RemoveBalanceRejectsOverdraw(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	factory := NewUnitOfWorkFactory(testDB.DB)
	ctx := context.Background()

	uow := factory.CreateForGuildWithPublisher(testGuildID, &testutil.RecordingPublisher{})
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	admin := application.NewAdminService(uow, testGuildID, testAdminID, testSettings())

	_, err := admin.RemoveBalance(ctx, 1, 2000)
	var insufficient *entities.InsufficientBalanceError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, testStartBalance, insufficient.Balance)

	change, err := admin.RemoveBalance(ctx, 1, 400)
	require.NoError(t, err)
	assert.Equal(t, int64(600), change.New)
	require.NoError(t, uow.Commit())
}

func TestAdmin_ResetUserIsAtomic(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	factory := NewUnitOfWorkFactory(testDB.DB)
	ctx := context.Background()

	seed := factory.CreateForGuildWithPublisher(testGuildID, &testutil.RecordingPublisher{})
	require.NoError(t, seed.Begin(ctx))
	seedAdmin := application.NewAdminService(seed, testGuildID, testAdminID, testSettings())
	_, err := seedAdmin.SetBalance(ctx, 1, 7777)
	require.NoError(t, err)
	_, err = seedAdmin.GiveItem(ctx, 1, "Padlock", 2)
	require.NoError(t, err)
	_, err = seedAdmin.GiveItem(ctx, 1, "lockpick", 1)
	require.NoError(t, err)
	require.NoError(t, seed.Commit())

	t.Run("rolled back reset leaves everything in place", func(t *testing.T) {
		publisher := &testutil.RecordingPublisher{}
		uow := factory.CreateForGuildWithPublisher(testGuildID, publisher)
		require.NoError(t, uow.Begin(ctx))

		_, err := application.NewAdminService(uow, testGuildID, testAdminID, testSettings()).ResetUser(ctx, 1, "CONFIRM")
		require.NoError(t, err)
		require.NoError(t, uow.Rollback())

		assert.Empty(t, publisher.Published)

		balance, err := NewAccountRepository(testDB.DB, testGuildID).GetByDiscordID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(7777), balance.Balance)
		items, err := NewInventoryRepository(testDB.DB, testGuildID).GetByUser(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("committed reset restores starting state", func(t *testing.T) {
		publisher := &testutil.RecordingPublisher{}
		uow := factory.CreateForGuildWithPublisher(testGuildID, publisher)
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		result, err := application.NewAdminService(uow, testGuildID, testAdminID, testSettings()).ResetUser(ctx, 1, "CONFIRM")
		require.NoError(t, err)
		require.NoError(t, uow.Commit())

		assert.Equal(t, testStartBalance, result.NewBalance)
		assert.Equal(t, int64(2), result.ItemsCleared)
		assert.Contains(t, publisher.PublishedTypes(), events.EventTypeUserReset)

		items, err := NewInventoryRepository(testDB.DB, testGuildID).GetByUser(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestLedger_Snapshot(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	factory := NewUnitOfWorkFactory(testDB.DB)
	publisher := &testutil.RecordingPublisher{}
	ctx := context.Background()

	inLedger(t, factory, publisher, func(ledger interfaces.LedgerService) {
		_, err := ledger.UpdateBalance(ctx, 1, 10)
		require.NoError(t, err)
		_, err = ledger.UpdateBalance(ctx, 2, -10)
		require.NoError(t, err)
		_, err = ledger.AddInventoryItem(ctx, 2, "guard_dog", entities.ItemTypeSecurity, 1)
		require.NoError(t, err)
	})

	inLedger(t, factory, publisher, func(ledger interfaces.LedgerService) {
		snapshot, err := ledger.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, testGuildID, snapshot.GuildID)
		assert.Len(t, snapshot.Accounts, 2)
		assert.Len(t, snapshot.Inventory, 1)
	})
}
