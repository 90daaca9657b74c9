package help

import (
	"testing"

	"megabot/bot/common"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainMenuEmbed(t *testing.T) {
	t.Parallel()

	embed := MainMenuEmbed("Alice")
	assert.Equal(t, "🤖 MegaBot Help Menu", embed.Title)
	assert.Equal(t, "Total Commands: 58 | Requested by Alice", embed.Footer.Text)
	require.Len(t, embed.Fields, len(Categories)+1)
	for n, c := range Categories {
		assert.Equal(t, c.Name, embed.Fields[n].Name)
		assert.Equal(t, c.Summary, embed.Fields[n].Value)
	}
	assert.Equal(t, "💡 Quick Start", embed.Fields[len(Categories)].Name)
}

func TestCategoryEmbed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key       string
		title     string
		commands  int
		firstName string
	}{
		{"gaming", "🎮 Gaming Commands", 5, "/steam <profile>"},
		{"tournament", "🏆 Tournament Commands", 7, "/createtournament"},
		{"economy", "💰 Economy Commands", 13, "/balance"},
		{"utility", "🔧 Utility Commands", 7, "/poll <question> <options>"},
		{"study", "📚 Study Commands", 7, "/pomodoro"},
		{"moderation", "🛡️ Moderation Commands", 11, "/kick <member> <reason>"},
		{"fun", "🎉 Fun Commands", 9, "/joke"},
		{"stats", "📊 Stats Commands", 6, "/serverstats"},
	}

	require.Len(t, Categories, len(tests))
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			embed := CategoryEmbed(tt.key, "Alice")
			assert.Equal(t, tt.title, embed.Title)
			assert.Equal(t, "Here are all commands in the "+tt.key+" category:", embed.Description)
			assert.Equal(t, common.ColorHelp, embed.Color)
			assert.Equal(t, "Use /help to see all categories | Requested by Alice", embed.Footer.Text)
			require.Len(t, embed.Fields, tt.commands)
			assert.Equal(t, tt.firstName, embed.Fields[0].Name)
			for _, f := range embed.Fields {
				assert.NotEmpty(t, f.Value)
			}
		})
	}
}

func TestCategoryEmbed_Unknown(t *testing.T) {
	t.Parallel()

	embed := CategoryEmbed("cooking", "Alice")
	assert.Equal(t, "❌ Invalid Category", embed.Title)
	assert.Equal(t, "Please select a valid category from the dropdown!", embed.Description)
	assert.Equal(t, common.ColorInvalid, embed.Color)
	assert.Empty(t, embed.Fields)
}

func TestSetupEmbed(t *testing.T) {
	t.Parallel()

	embed := SetupEmbed("Alice")
	assert.Equal(t, "🔧 MegaBot Setup Wizard", embed.Title)
	assert.Equal(t, "Setup by Alice", embed.Footer.Text)

	var names []string
	for _, f := range embed.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"1️⃣ Create Channels",
		"2️⃣ Set Permissions",
		"3️⃣ Configure Moderation",
		"4️⃣ Economy Setup",
		"5️⃣ Test Commands",
		"✅ You're All Set!",
	}, names)
}

func TestInfoEmbed(t *testing.T) {
	t.Parallel()

	embed := InfoEmbed(BotStats{Guilds: 3, Members: 420, AvatarURL: "https://cdn.example/avatar.png"}, "Alice")
	assert.Equal(t, "ℹ️ About MegaBot", embed.Title)
	assert.Equal(t, "Servers: 3\nUsers: 420\nCommands: 66", embed.Fields[0].Value)
	assert.True(t, embed.Fields[0].Inline)
	assert.Equal(t, "MegaBot v1.0 | Requested by Alice", embed.Footer.Text)
	require.NotNil(t, embed.Thumbnail)
	assert.Equal(t, "https://cdn.example/avatar.png", embed.Thumbnail.URL)

	assert.Nil(t, InfoEmbed(BotStats{}, "Alice").Thumbnail)
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	embed := DashboardEmbed("", "Alice")
	assert.Equal(t, "🌐 MegaBot Web Dashboard", embed.Title)
	assert.Equal(t, "Requested by Alice", embed.Footer.Text)
	assert.Contains(t, embed.Fields[1].Value, DashboardURL)

	components := DashboardComponents()
	require.Len(t, components, 1)
	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 1)
	button, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, discordgo.LinkButton, button.Style)
	assert.Equal(t, DashboardURL, button.URL)
	assert.Equal(t, "Open Dashboard", button.Label)
}

func TestHandles(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"help", "setup", "info", "dashboard"} {
		assert.True(t, Handles(name), name)
	}
	assert.False(t, Handles("setbalance"))
}

func TestSessionStats(t *testing.T) {
	t.Parallel()

	state := discordgo.NewState()
	state.Guilds = []*discordgo.Guild{{ID: "1", MemberCount: 10}, {ID: "2", MemberCount: 32}}
	stats := sessionStats(&discordgo.Session{State: state})
	assert.Equal(t, 2, stats.Guilds)
	assert.Equal(t, 42, stats.Members)

	assert.Equal(t, BotStats{}, sessionStats(nil))
}
