package entities

// RobStats aggregates a user's robbery history. Absent rows read as all zeros.
type RobStats struct {
	DiscordID     int64 `db:"discord_id"`
	GuildID       int64 `db:"guild_id"`
	TotalAttempts int64 `db:"total_attempts"`
	Successful    int64 `db:"successful"`
	Failed        int64 `db:"failed"`
	TimesRobbed   int64 `db:"times_robbed"`
}

// SuccessRate returns successful attempts as a percentage of total attempts
func (s *RobStats) SuccessRate() float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.Successful) / float64(s.TotalAttempts) * 100
}
