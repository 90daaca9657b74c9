package entities

import "time"

// Account represents a user's ledger account within a single guild
type Account struct {
	ID        int64     `db:"id"`
	DiscordID int64     `db:"discord_id"`
	GuildID   int64     `db:"guild_id"`
	Balance   int64     `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
