package common

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// ParseUserID converts a Discord user ID string to int64
func ParseUserID(userID string) (int64, error) {
	return strconv.ParseInt(userID, 10, 64)
}

// FormatUserID converts an int64 user ID to string
func FormatUserID(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// GetUserMention returns a Discord mention string for a user
func GetUserMention(userID int64) string {
	return "<@" + FormatUserID(userID) + ">"
}

// Caller returns the user who triggered the interaction, in a guild or a DM
func Caller(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// CallerID returns the numeric ID of the user who triggered the interaction
func CallerID(i *discordgo.InteractionCreate) (int64, error) {
	caller := Caller(i)
	if caller == nil {
		return 0, fmt.Errorf("interaction has no user")
	}
	return ParseUserID(caller.ID)
}

// CallerName returns the account name of the caller
func CallerName(i *discordgo.InteractionCreate) string {
	if caller := Caller(i); caller != nil {
		return caller.Username
	}
	return "Unknown"
}

// CallerDisplayName returns the server nickname, global name or username of the caller
func CallerDisplayName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.Nick != "" {
		return i.Member.Nick
	}
	return DisplayName(Caller(i))
}

// DisplayName returns the global display name of a user, falling back to the username
func DisplayName(user *discordgo.User) string {
	if user == nil {
		return "Unknown"
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// InteractionGuildID returns the guild of the interaction; direct messages map to guild 0
func InteractionGuildID(i *discordgo.InteractionCreate) (int64, error) {
	if i.GuildID == "" {
		return 0, nil
	}
	return strconv.ParseInt(i.GuildID, 10, 64)
}
