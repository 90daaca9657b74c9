package repository

import (
	"context"
	"errors"
	"fmt"

	"megabot/domain/entities"

	"github.com/jackc/pgx/v5"
)

// RobStatsRepository implements read access to robbery statistics
type RobStatsRepository struct {
	q       Queryable
	guildID int64
}

// NewRobStatsRepositoryScoped creates a rob stats repository with a transaction and guild scope
func NewRobStatsRepositoryScoped(tx Queryable, guildID int64) *RobStatsRepository {
	return &RobStatsRepository{
		q:       tx,
		guildID: guildID,
	}
}

// GetByUser returns the user's counters, all zeros when no row exists
func (r *RobStatsRepository) GetByUser(ctx context.Context, discordID int64) (*entities.RobStats, error) {
	query := `
		SELECT total_attempts, successful, failed, times_robbed
		FROM rob_stats
		WHERE discord_id = $1 AND guild_id = $2
	`

	stats := &entities.RobStats{DiscordID: discordID, GuildID: r.guildID}
	err := r.q.QueryRow(ctx, query, discordID, r.guildID).Scan(
		&stats.TotalAttempts,
		&stats.Successful,
		&stats.Failed,
		&stats.TimesRobbed,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rob stats for %d in guild %d: %w", discordID, r.guildID, err)
	}
	return stats, nil
}
