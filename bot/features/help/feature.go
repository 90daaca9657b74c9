// Package help serves the static help, setup, info and dashboard commands.
package help

import (
	"megabot/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Command names
const (
	CommandHelp      = "help"
	CommandSetup     = "setup"
	CommandInfo      = "info"
	CommandDashboard = "dashboard"
)

// Feature handles the help commands
type Feature struct{}

// NewFeature creates a new help feature instance
func NewFeature() *Feature {
	return &Feature{}
}

// Handles reports whether name is a help command
func Handles(name string) bool {
	switch name {
	case CommandHelp, CommandSetup, CommandInfo, CommandDashboard:
		return true
	}
	return false
}

// HandleCommand answers a help command publicly in the channel
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	requester := common.CallerDisplayName(i)

	switch data.Name {
	case CommandHelp:
		if opt, ok := common.OptionMap(data.Options)["category"]; ok {
			common.RespondEmbed(s, i, CategoryEmbed(opt.StringValue(), requester), false)
			return
		}
		common.RespondEmbed(s, i, MainMenuEmbed(requester), false)

	case CommandSetup:
		common.RespondEmbed(s, i, SetupEmbed(requester), false)

	case CommandInfo:
		common.RespondEmbed(s, i, InfoEmbed(sessionStats(s), requester), false)

	case CommandDashboard:
		common.RespondEmbed(s, i, DashboardEmbed(sessionStats(s).AvatarURL, requester), false, DashboardComponents()...)

	default:
		log.WithField("command", data.Name).Warn("Unknown help command")
	}
}

// sessionStats reads guild and member counts from the session state cache
func sessionStats(s *discordgo.Session) BotStats {
	var stats BotStats
	if s == nil || s.State == nil {
		return stats
	}

	s.State.RLock()
	defer s.State.RUnlock()

	stats.Guilds = len(s.State.Guilds)
	for _, guild := range s.State.Guilds {
		stats.Members += guild.MemberCount
	}
	if s.State.User != nil {
		stats.AvatarURL = s.State.User.AvatarURL("")
	}
	return stats
}
