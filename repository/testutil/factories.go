package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"megabot/domain/entities"
	"megabot/domain/events"

	"github.com/stretchr/testify/require"
)

// SeedBoost inserts a boost expiring after ttl; a negative ttl creates an expired boost
func SeedBoost(t *testing.T, td *TestDatabase, guildID, discordID int64, boostType string, multiplier float64, ttl time.Duration) {
	t.Helper()
	_, err := td.DB.Exec(context.Background(), `
		INSERT INTO active_boosts (discord_id, guild_id, boost_type, multiplier, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`, discordID, guildID, boostType, multiplier, time.Now().Add(ttl))
	require.NoError(t, err)
}

// SeedRobStats inserts robbery counters for a user
func SeedRobStats(t *testing.T, td *TestDatabase, stats entities.RobStats) {
	t.Helper()
	_, err := td.DB.Exec(context.Background(), `
		INSERT INTO rob_stats (discord_id, guild_id, total_attempts, successful, failed, times_robbed)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, stats.DiscordID, stats.GuildID, stats.TotalAttempts, stats.Successful, stats.Failed, stats.TimesRobbed)
	require.NoError(t, err)
}

// RecordingPublisher is a transactional publisher that keeps flushed events in memory
type RecordingPublisher struct {
	mu        sync.Mutex
	pending   []events.Event
	Published []events.Event
	Discards  int
}

func (p *RecordingPublisher) Publish(event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = append(p.pending, event)
	return nil
}

func (p *RecordingPublisher) Flush(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Published = append(p.Published, p.pending...)
	p.pending = nil
	return nil
}

func (p *RecordingPublisher) Discard() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = nil
	p.Discards++
}

// PublishedTypes returns the types of all flushed events in order
func (p *RecordingPublisher) PublishedTypes() []events.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]events.EventType, 0, len(p.Published))
	for _, event := range p.Published {
		types = append(types, event.Type())
	}
	return types
}
