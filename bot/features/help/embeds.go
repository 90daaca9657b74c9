package help

import (
	"fmt"
	"strings"

	"megabot/bot/common"

	"github.com/bwmarrin/discordgo"
)

const (
	// DashboardURL is the public web dashboard
	DashboardURL = "https://megabotdiscord.netlify.app/"

	totalHelpCommands = 58
	totalBotCommands  = 66
	botVersion        = "v1.0"
)

// BotStats is what /info reports about the running bot
type BotStats struct {
	Guilds    int
	Members   int
	AvatarURL string
}

func field(name, value string, inline bool) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: inline}
}

func thumbnail(url string) *discordgo.MessageEmbedThumbnail {
	if url == "" {
		return nil
	}
	return &discordgo.MessageEmbedThumbnail{URL: url}
}

// MainMenuEmbed lists every help category
func MainMenuEmbed(requester string) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(Categories)+1)
	for _, c := range Categories {
		fields = append(fields, field(c.Name, c.Summary, false))
	}
	fields = append(fields, field("💡 Quick Start", strings.Join([]string{
		"Try `/balance` to start your economy journey!",
		"Use `/giveaway` to run server giveaways!",
		"Try `/pomodoro` to start studying!",
	}, "\n"), false))

	return &discordgo.MessageEmbed{
		Title: "🤖 MegaBot Help Menu",
		Description: "Welcome to MegaBot! Here are all available command categories.\n" +
			"Use `/help category:<name>` to see commands in a specific category.",
		Color:  common.ColorInfo,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Total Commands: %d | Requested by %s", totalHelpCommands, requester),
		},
	}
}

// CategoryEmbed lists the commands of one category, or explains that the key is unknown
func CategoryEmbed(key, requester string) *discordgo.MessageEmbed {
	category, ok := FindCategory(key)
	if !ok {
		return &discordgo.MessageEmbed{
			Title:       "❌ Invalid Category",
			Description: "Please select a valid category from the dropdown!",
			Color:       common.ColorInvalid,
		}
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(category.Commands))
	for _, cmd := range category.Commands {
		fields = append(fields, field(cmd.Usage, cmd.Description, false))
	}

	return &discordgo.MessageEmbed{
		Title:       category.Title,
		Description: fmt.Sprintf("Here are all commands in the %s category:", category.Key),
		Color:       common.ColorHelp,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use /help to see all categories | Requested by " + requester,
		},
	}
}

// SetupEmbed walks a server administrator through configuring the bot
func SetupEmbed(requester string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🔧 MegaBot Setup Wizard",
		Description: "Welcome to MegaBot setup! Follow these steps to configure the bot:",
		Color:       common.ColorGold,
		Fields: []*discordgo.MessageEmbedField{
			field("1️⃣ Create Channels", "Create these optional channels:\n"+
				"• `#mod-logs` - For moderation logs\n"+
				"• `#welcome` - For welcome messages\n"+
				"• `#economy` - For economy commands\n"+
				"• `#gaming` - For LFG posts", false),
			field("2️⃣ Set Permissions", "Make sure the bot has these permissions:\n"+
				"✅ Manage Messages\n"+
				"✅ Manage Roles\n"+
				"✅ Kick Members\n"+
				"✅ Ban Members\n"+
				"✅ Send Messages\n"+
				"✅ Embed Links", false),
			field("3️⃣ Configure Moderation", "Use these commands to set up moderation:\n"+
				"• `/slowmode` - Set channel slowmode\n"+
				"• `/lock` - Lock channels when needed", false),
			field("4️⃣ Economy Setup", "The economy system is ready to use!\n"+
				"Users can start with `/balance` and `/daily`", false),
			field("5️⃣ Test Commands", "Try these commands to test:\n"+
				"• `/help` - View all commands\n"+
				"• `/serverinfo` - View server info\n"+
				"• `/poll` - Create a test poll", false),
			field("✅ You're All Set!", "Your bot is now configured! Use `/help` to see all available commands.\n"+
				"Need help? Check the documentation or contact support.", false),
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Setup by " + requester},
	}
}

// InfoEmbed describes the bot and its reach
func InfoEmbed(stats BotStats, requester string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "ℹ️ About MegaBot",
		Description: "A comprehensive Discord bot with economy, gaming, sports, utility tools, and more!",
		Color:       common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			field("📊 Statistics", fmt.Sprintf("Servers: %d\nUsers: %d\nCommands: %d",
				stats.Guilds, stats.Members, totalBotCommands), true),
			field("🔧 Features", strings.Join([]string{
				"• 💰 Economy System",
				"• 🎮 Gaming Integration",
				"• ⚽ Sports Betting",
				"• 📚 Study Tools",
				"• 🛡️ Moderation Tools",
			}, "\n"), true),
			field("🔗 Links", "[Discord Developer Portal](https://discord.com/developers/applications/)", false),
		},
		Thumbnail: thumbnail(stats.AvatarURL),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("MegaBot %s | Requested by %s", botVersion, requester),
		},
	}
}

// DashboardEmbed links to the web dashboard
func DashboardEmbed(avatarURL, requester string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🌐 MegaBot Web Dashboard",
		Description: "Access the interactive web dashboard to explore all bot features, commands, and statistics!",
		Color:       common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			field("📊 Dashboard Features", strings.Join([]string{
				"• 📋 Complete command list with details",
				"• 📈 Real-time bot statistics",
				"• 🎮 Feature overview and categories",
				"• 📱 Responsive mobile-friendly design",
				"• 🔍 Interactive command explorer",
			}, "\n"), false),
			field("🔗 Access Dashboard", fmt.Sprintf("**[Click here to open dashboard](%s)**", DashboardURL), false),
			field("💡 Tip", "Bookmark the dashboard for quick access to command documentation and bot stats!", false),
		},
		Thumbnail: thumbnail(avatarURL),
		Footer:    &discordgo.MessageEmbedFooter{Text: "Requested by " + requester},
	}
}

// DashboardComponents is the link button row sent with the dashboard embed
func DashboardComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label: "Open Dashboard",
					Style: discordgo.LinkButton,
					URL:   DashboardURL,
					Emoji: &discordgo.ComponentEmoji{Name: "🌐"},
				},
			},
		},
	}
}
