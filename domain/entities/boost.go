package entities

import "time"

// ActiveBoost is a temporary multiplier held by a user. It is written by the
// shop and consumed by gameplay; this service only reads it.
type ActiveBoost struct {
	ID         int64     `db:"id"`
	DiscordID  int64     `db:"discord_id"`
	GuildID    int64     `db:"guild_id"`
	BoostType  string    `db:"boost_type"`
	Multiplier float64   `db:"multiplier"`
	ExpiresAt  time.Time `db:"expires_at"`
}

// IsActive reports whether the boost has not yet expired at the given time
func (b *ActiveBoost) IsActive(now time.Time) bool {
	return b.ExpiresAt.After(now)
}
