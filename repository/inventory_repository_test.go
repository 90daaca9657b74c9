package repository

import (
	"context"
	"testing"

	"megabot/domain/entities"
	"megabot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryRepository_AddAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewInventoryRepository(testDB.DB, testGuildID)
	ctx := context.Background()

	qty, err := repo.AddQuantity(ctx, 1, "padlock", entities.ItemTypeSecurity, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), qty)

	qty, err = repo.AddQuantity(ctx, 1, "padlock", entities.ItemTypeTool, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), qty)

	_, err = repo.AddQuantity(ctx, 1, "energy_drink", entities.ItemTypeConsumable, 1)
	require.NoError(t, err)

	items, err := repo.GetByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "energy_drink", items[0].ItemName, "ordered by item name")
	assert.Equal(t, "padlock", items[1].ItemName)
	assert.Equal(t, entities.ItemTypeSecurity, items[1].ItemType, "existing entry keeps its type")

	missing, err := repo.GetQuantity(ctx, 1, "guard_dog")
	require.NoError(t, err)
	assert.Zero(t, missing)
}

func TestInventoryRepository_DeductQuantity(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewInventoryRepository(testDB.DB, testGuildID)
	ctx := context.Background()

	_, err := repo.AddQuantity(ctx, 1, "lockpick", entities.ItemTypeTool, 3)
	require.NoError(t, err)

	t.Run("more than held fails without change", func(t *testing.T) {
		_, ok, err := repo.DeductQuantity(ctx, 1, "lockpick", 4)
		require.NoError(t, err)
		assert.False(t, ok)

		qty, err := repo.GetQuantity(ctx, 1, "lockpick")
		require.NoError(t, err)
		assert.Equal(t, int64(3), qty)
	})

	t.Run("partial use leaves the rest", func(t *testing.T) {
		remaining, ok, err := repo.DeductQuantity(ctx, 1, "lockpick", 2)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(1), remaining)
	})

	t.Run("using the last one deletes the row", func(t *testing.T) {
		remaining, ok, err := repo.DeductQuantity(ctx, 1, "lockpick", 1)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Zero(t, remaining)

		var rows int
		err = testDB.DB.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_items WHERE discord_id = 1`).Scan(&rows)
		require.NoError(t, err)
		assert.Zero(t, rows)
	})

	t.Run("absent item fails", func(t *testing.T) {
		_, ok, err := repo.DeductQuantity(ctx, 1, "lockpick", 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestInventoryRepository_Delete(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewInventoryRepository(testDB.DB, testGuildID)
	ctx := context.Background()

	_, err := repo.AddQuantity(ctx, 1, "guard_dog", entities.ItemTypeSecurity, 7)
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, 1, "guard_dog")
	require.NoError(t, err)
	assert.Equal(t, int64(7), removed)

	removed, err = repo.Delete(ctx, 1, "guard_dog")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestInventoryRepository_DeleteAllByUser(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewInventoryRepository(testDB.DB, testGuildID)
	ctx := context.Background()

	for _, name := range []string{"padlock", "lockpick", "briefcase"} {
		_, err := repo.AddQuantity(ctx, 1, name, entities.ItemTypeTool, 2)
		require.NoError(t, err)
	}
	_, err := repo.AddQuantity(ctx, 2, "padlock", entities.ItemTypeSecurity, 1)
	require.NoError(t, err)

	count, err := repo.DeleteAllByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	items, err := repo.GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)

	others, err := repo.GetByUser(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, others, 1, "other users are untouched")

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestInventoryRepository_QuantityCheckConstraint(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	_, err := testDB.DB.Exec(ctx, `
		INSERT INTO inventory_items (discord_id, guild_id, item_name, item_type, quantity)
		VALUES (1, $1, 'padlock', 'security', -1)
	`, testGuildID)
	assert.Error(t, err, "negative quantities are rejected by the schema")
}
