package repository

import (
	"context"
	"errors"
	"fmt"

	"megabot/database"
	"megabot/domain/entities"

	"github.com/jackc/pgx/v5"
)

// AccountRepository implements the AccountRepository interface
type AccountRepository struct {
	q       Queryable
	guildID int64
}

// NewAccountRepository creates an account repository over the pool
func NewAccountRepository(db *database.DB, guildID int64) *AccountRepository {
	return &AccountRepository{q: db.Pool, guildID: guildID}
}

// NewAccountRepositoryScoped creates an account repository with a transaction and guild scope
func NewAccountRepositoryScoped(tx Queryable, guildID int64) *AccountRepository {
	return &AccountRepository{
		q:       tx,
		guildID: guildID,
	}
}

// GetByDiscordID retrieves an account by Discord ID in the current guild
func (r *AccountRepository) GetByDiscordID(ctx context.Context, discordID int64) (*entities.Account, error) {
	query := `
		SELECT id, discord_id, guild_id, balance, created_at, updated_at
		FROM user_guild_accounts
		WHERE discord_id = $1 AND guild_id = $2
	`

	account, err := scanAccount(r.q.QueryRow(ctx, query, discordID, r.guildID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d in guild %d: %w", discordID, r.guildID, err)
	}
	return account, nil
}

// EnsureForUpdate creates the account if absent and locks its row
func (r *AccountRepository) EnsureForUpdate(ctx context.Context, discordID int64, startingBalance int64) (*entities.Account, bool, error) {
	insertQuery := `
		INSERT INTO user_guild_accounts (discord_id, guild_id, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (discord_id, guild_id) DO NOTHING
	`

	tag, err := r.q.Exec(ctx, insertQuery, discordID, r.guildID, startingBalance)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create account %d in guild %d: %w", discordID, r.guildID, err)
	}
	created := tag.RowsAffected() == 1

	lockQuery := `
		SELECT id, discord_id, guild_id, balance, created_at, updated_at
		FROM user_guild_accounts
		WHERE discord_id = $1 AND guild_id = $2
		FOR UPDATE
	`

	account, err := scanAccount(r.q.QueryRow(ctx, lockQuery, discordID, r.guildID))
	if err != nil {
		return nil, false, fmt.Errorf("failed to lock account %d in guild %d: %w", discordID, r.guildID, err)
	}
	return account, created, nil
}

// AdjustBalance adds delta to the balance in one statement. Concurrent adjustments
// of the same account serialize on the row lock taken by the upsert.
func (r *AccountRepository) AdjustBalance(ctx context.Context, discordID int64, delta int64, startingBalance int64) (int64, error) {
	query := `
		INSERT INTO user_guild_accounts (discord_id, guild_id, balance)
		VALUES ($1, $2, $4::BIGINT + $3::BIGINT)
		ON CONFLICT (discord_id, guild_id) DO UPDATE
		SET balance = user_guild_accounts.balance + $3::BIGINT,
		    updated_at = NOW()
		RETURNING balance
	`

	var balance int64
	if err := r.q.QueryRow(ctx, query, discordID, r.guildID, delta, startingBalance).Scan(&balance); err != nil {
		return 0, fmt.Errorf("failed to adjust balance for %d in guild %d: %w", discordID, r.guildID, err)
	}
	return balance, nil
}

// ListAll returns every account in the guild
func (r *AccountRepository) ListAll(ctx context.Context) ([]*entities.Account, error) {
	query := `
		SELECT id, discord_id, guild_id, balance, created_at, updated_at
		FROM user_guild_accounts
		WHERE guild_id = $1
		ORDER BY discord_id
	`

	rows, err := r.q.Query(ctx, query, r.guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts in guild %d: %w", r.guildID, err)
	}
	defer rows.Close()

	var accounts []*entities.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

func scanAccount(row pgx.Row) (*entities.Account, error) {
	var account entities.Account
	err := row.Scan(
		&account.ID,
		&account.DiscordID,
		&account.GuildID,
		&account.Balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}
