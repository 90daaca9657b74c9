package repository

import (
	"context"
	"errors"
	"fmt"

	"megabot/database"
	"megabot/domain/entities"

	"github.com/jackc/pgx/v5"
)

// InventoryRepository implements the InventoryRepository interface
type InventoryRepository struct {
	q       Queryable
	guildID int64
}

// NewInventoryRepository creates an inventory repository over the pool
func NewInventoryRepository(db *database.DB, guildID int64) *InventoryRepository {
	return &InventoryRepository{q: db.Pool, guildID: guildID}
}

// NewInventoryRepositoryScoped creates an inventory repository with a transaction and guild scope
func NewInventoryRepositoryScoped(tx Queryable, guildID int64) *InventoryRepository {
	return &InventoryRepository{
		q:       tx,
		guildID: guildID,
	}
}

const inventoryColumns = `discord_id, guild_id, item_name, item_type, quantity, created_at, updated_at`

// GetByUser returns all held items of a user ordered by item name
func (r *InventoryRepository) GetByUser(ctx context.Context, discordID int64) ([]*entities.InventoryItem, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory_items
		WHERE discord_id = $1 AND guild_id = $2 AND quantity > 0
		ORDER BY item_name
	`

	rows, err := r.q.Query(ctx, query, discordID, r.guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory for %d in guild %d: %w", discordID, r.guildID, err)
	}
	return collectInventory(rows)
}

// GetQuantity returns the held quantity of an item, 0 when absent
func (r *InventoryRepository) GetQuantity(ctx context.Context, discordID int64, itemName string) (int64, error) {
	query := `
		SELECT quantity
		FROM inventory_items
		WHERE discord_id = $1 AND guild_id = $2 AND item_name = $3
	`

	var quantity int64
	err := r.q.QueryRow(ctx, query, discordID, r.guildID, itemName).Scan(&quantity)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get quantity of %s for %d: %w", itemName, discordID, err)
	}
	return quantity, nil
}

// AddQuantity increments an entry in one upsert; an existing entry keeps its type
func (r *InventoryRepository) AddQuantity(ctx context.Context, discordID int64, itemName string, itemType entities.ItemType, quantity int64) (int64, error) {
	query := `
		INSERT INTO inventory_items (discord_id, guild_id, item_name, item_type, quantity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (discord_id, guild_id, item_name) DO UPDATE
		SET quantity = inventory_items.quantity + EXCLUDED.quantity,
		    updated_at = NOW()
		RETURNING quantity
	`

	var newQuantity int64
	err := r.q.QueryRow(ctx, query, discordID, r.guildID, itemName, itemType, quantity).Scan(&newQuantity)
	if err != nil {
		return 0, fmt.Errorf("failed to add %d %s for %d: %w", quantity, itemName, discordID, err)
	}
	return newQuantity, nil
}

// DeductQuantity decrements an entry only when at least quantity is held.
// The conditional update is the linearization point; an entry left at zero is deleted.
func (r *InventoryRepository) DeductQuantity(ctx context.Context, discordID int64, itemName string, quantity int64) (int64, bool, error) {
	updateQuery := `
		UPDATE inventory_items
		SET quantity = quantity - $4, updated_at = NOW()
		WHERE discord_id = $1 AND guild_id = $2 AND item_name = $3 AND quantity >= $4
		RETURNING quantity
	`

	var remaining int64
	err := r.q.QueryRow(ctx, updateQuery, discordID, r.guildID, itemName, quantity).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to deduct %d %s for %d: %w", quantity, itemName, discordID, err)
	}

	if remaining == 0 {
		deleteQuery := `
			DELETE FROM inventory_items
			WHERE discord_id = $1 AND guild_id = $2 AND item_name = $3 AND quantity = 0
		`
		if _, err := r.q.Exec(ctx, deleteQuery, discordID, r.guildID, itemName); err != nil {
			return 0, false, fmt.Errorf("failed to delete exhausted %s for %d: %w", itemName, discordID, err)
		}
	}

	return remaining, true, nil
}

// Delete removes an entry unconditionally and returns the quantity it held
func (r *InventoryRepository) Delete(ctx context.Context, discordID int64, itemName string) (int64, error) {
	query := `
		DELETE FROM inventory_items
		WHERE discord_id = $1 AND guild_id = $2 AND item_name = $3
		RETURNING quantity
	`

	var removed int64
	err := r.q.QueryRow(ctx, query, discordID, r.guildID, itemName).Scan(&removed)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s for %d: %w", itemName, discordID, err)
	}
	return removed, nil
}

// DeleteAllByUser removes every entry of a user in one statement
func (r *InventoryRepository) DeleteAllByUser(ctx context.Context, discordID int64) (int64, error) {
	query := `
		DELETE FROM inventory_items
		WHERE discord_id = $1 AND guild_id = $2 AND quantity > 0
	`

	tag, err := r.q.Exec(ctx, query, discordID, r.guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear inventory for %d in guild %d: %w", discordID, r.guildID, err)
	}
	return tag.RowsAffected(), nil
}

// ListAll returns every held item in the guild
func (r *InventoryRepository) ListAll(ctx context.Context) ([]*entities.InventoryItem, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory_items
		WHERE guild_id = $1 AND quantity > 0
		ORDER BY discord_id, item_name
	`

	rows, err := r.q.Query(ctx, query, r.guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory in guild %d: %w", r.guildID, err)
	}
	return collectInventory(rows)
}

func collectInventory(rows pgx.Rows) ([]*entities.InventoryItem, error) {
	defer rows.Close()

	var items []*entities.InventoryItem
	for rows.Next() {
		var item entities.InventoryItem
		err := rows.Scan(
			&item.DiscordID,
			&item.GuildID,
			&item.ItemName,
			&item.ItemType,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory: %w", err)
	}
	return items, nil
}
