package repository

import (
	"context"
	"fmt"

	"megabot/domain/entities"
)

// BoostRepository implements read access to active boosts
type BoostRepository struct {
	q       Queryable
	guildID int64
}

// NewBoostRepositoryScoped creates a boost repository with a transaction and guild scope
func NewBoostRepositoryScoped(tx Queryable, guildID int64) *BoostRepository {
	return &BoostRepository{
		q:       tx,
		guildID: guildID,
	}
}

// GetActiveByUser returns the user's boosts whose expiry is still in the future
func (r *BoostRepository) GetActiveByUser(ctx context.Context, discordID int64) ([]*entities.ActiveBoost, error) {
	query := `
		SELECT id, discord_id, guild_id, boost_type, multiplier, expires_at
		FROM active_boosts
		WHERE discord_id = $1 AND guild_id = $2 AND expires_at > NOW()
		ORDER BY expires_at
	`

	rows, err := r.q.Query(ctx, query, discordID, r.guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active boosts for %d in guild %d: %w", discordID, r.guildID, err)
	}
	defer rows.Close()

	var boosts []*entities.ActiveBoost
	for rows.Next() {
		var boost entities.ActiveBoost
		if err := rows.Scan(
			&boost.ID,
			&boost.DiscordID,
			&boost.GuildID,
			&boost.BoostType,
			&boost.Multiplier,
			&boost.ExpiresAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan boost: %w", err)
		}
		boosts = append(boosts, &boost)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate boosts: %w", err)
	}
	return boosts, nil
}
