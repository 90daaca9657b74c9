package bot

import (
	"fmt"

	"megabot/bot/features/admin"
	"megabot/bot/features/help"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

var (
	minQuantity             = float64(1)
	minAmount               = float64(0)
	administratorPermission = int64(discordgo.PermissionAdministrator)
)

func userOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: description,
		Required:    true,
	}
}

func amountOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "amount",
		Description: description,
		Required:    true,
		MinValue:    &minAmount,
	}
}

func itemOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "item",
		Description:  "Item name",
		Required:     true,
		Autocomplete: true,
	}
}

func quantityOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "quantity",
		Description: description,
		MinValue:    &minQuantity,
	}
}

// adminCommands returns the owner-only command definitions
func adminCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        admin.CommandAdminPanel,
			Description: "[ADMIN ONLY] View admin panel",
		},
		{
			Name:        admin.CommandSetBalance,
			Description: "[ADMIN ONLY] Set a user's balance",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to modify"), amountOption("New balance amount")},
		},
		{
			Name:        admin.CommandAddBalance,
			Description: "[ADMIN ONLY] Add money to a user",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to give money to"), amountOption("Amount to add")},
		},
		{
			Name:        admin.CommandRemoveBalance,
			Description: "[ADMIN ONLY] Remove money from a user",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to remove money from"), amountOption("Amount to remove")},
		},
		{
			Name:        admin.CommandResetBalance,
			Description: "[ADMIN ONLY] Reset user's balance to starting amount",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to reset")},
		},
		{
			Name:        admin.CommandGiveItem,
			Description: "[ADMIN ONLY] Give an item to a user",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("User to give item to"),
				itemOption(),
				quantityOption("Amount to give"),
			},
		},
		{
			Name:        admin.CommandRemoveItem,
			Description: "[ADMIN ONLY] Remove an item from a user",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("User to remove item from"),
				itemOption(),
				quantityOption("Amount to remove"),
			},
		},
		{
			Name:        admin.CommandClearInventory,
			Description: "[ADMIN ONLY] Clear user's entire inventory",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to clear inventory")},
		},
		{
			Name:        admin.CommandViewInventory,
			Description: "[ADMIN ONLY] View any user's inventory",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to view")},
		},
		{
			Name:        admin.CommandViewUserData,
			Description: "[ADMIN ONLY] View complete user data",
			Options:     []*discordgo.ApplicationCommandOption{userOption("User to view")},
		},
		{
			Name:        admin.CommandResetUser,
			Description: "[ADMIN ONLY] Complete user data reset",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("User to reset"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "confirm",
					Description: "Type 'CONFIRM' to proceed",
					Required:    true,
				},
			},
		},
		{
			Name:        admin.CommandBackup,
			Description: "[ADMIN ONLY] Export this server's ledger to storage",
		},
	}
}

// helpCommands returns the public help command definitions
func helpCommands() []*discordgo.ApplicationCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(help.Categories))
	for _, c := range help.Categories {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: c.Name, Value: c.Key})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        help.CommandHelp,
			Description: "Display all available commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "category",
					Description: "Choose a specific category to view",
					Choices:     choices,
				},
			},
		},
		{
			Name:                     help.CommandSetup,
			Description:              "Setup the bot for your server",
			DefaultMemberPermissions: &administratorPermission,
		},
		{
			Name:        help.CommandInfo,
			Description: "Get information about the bot",
		},
		{
			Name:        help.CommandDashboard,
			Description: "Get the link to the web dashboard",
		},
	}
}

// Commands returns every slash command the bot serves
func Commands() []*discordgo.ApplicationCommand {
	return append(adminCommands(), helpCommands()...)
}

// registerCommands replaces the registered slash commands with the current set,
// in the configured guild or globally when no guild is set
func (b *Bot) registerCommands() error {
	commands := Commands()
	registered, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, commands)
	if err != nil {
		return fmt.Errorf("cannot register commands: %w", err)
	}

	log.WithFields(log.Fields{
		"count":   len(registered),
		"guildID": b.config.GuildID,
	}).Info("Registered slash commands")
	return nil
}
