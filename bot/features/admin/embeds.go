package admin

import (
	"fmt"
	"strconv"
	"strings"

	"megabot/bot/common"
	"megabot/domain/entities"
	"megabot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// maxListedItems is how many inventory entries viewuserdata lists before summarizing
const maxListedItems = 10

func adminFooter(adminName string, extra ...string) *discordgo.MessageEmbedFooter {
	parts := append([]string{"Admin: " + adminName}, extra...)
	return &discordgo.MessageEmbedFooter{Text: strings.Join(parts, " • ")}
}

func successEmbed(adminName, title, description string, fields ...*discordgo.MessageEmbedField) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       common.ColorSuccess,
		Fields:      fields,
		Footer:      adminFooter(adminName),
	}
}

func inlineField(name, value string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: true}
}

func blockField(name, value string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: false}
}

func balanceFields(change *interfaces.BalanceChange) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		inlineField("Previous Balance", common.FormatCurrency(change.Previous)),
		inlineField("New Balance", common.FormatCurrency(change.New)),
	}
}

// adminPanelEmbed lists the admin commands
func adminPanelEmbed(adminName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🔐 Admin Panel",
		Description: "Bot Administration Commands",
		Color:       common.ColorAdmin,
		Fields: []*discordgo.MessageEmbedField{
			blockField("💰 Economy Management", strings.Join([]string{
				"`/setbalance <user> <amount>` - Set user's balance",
				"`/addbalance <user> <amount>` - Add money to user",
				"`/removebalance <user> <amount>` - Remove money from user",
				"`/resetbalance <user>` - Reset user's balance to starting amount",
			}, "\n")),
			blockField("🎒 Inventory Management", strings.Join([]string{
				"`/giveitem <user> <item> <quantity>` - Give item to user",
				"`/removeitem <user> <item> <quantity>` - Remove item from user",
				"`/clearinventory <user>` - Clear user's entire inventory",
				"`/viewinventory <user>` - View any user's inventory",
			}, "\n")),
			blockField("📊 Data Management", strings.Join([]string{
				"`/viewuserdata <user>` - View complete user data",
				"`/resetuser <user> <confirm>` - Complete user data reset",
				"`/backup` - Export this server's ledger to storage",
			}, "\n")),
		},
		Footer: adminFooter(adminName, "Only you can see this"),
	}
}

func balanceSetEmbed(adminName string, t *target, change *interfaces.BalanceChange) *discordgo.MessageEmbed {
	return successEmbed(adminName, "✅ Balance Updated",
		fmt.Sprintf("Successfully set **%s**'s balance", t.DisplayName),
		balanceFields(change)...)
}

func moneyAddedEmbed(adminName string, t *target, amount int64, change *interfaces.BalanceChange) *discordgo.MessageEmbed {
	return successEmbed(adminName, "✅ Money Added",
		fmt.Sprintf("Added **%s** to **%s**", common.FormatCurrency(amount), t.DisplayName),
		balanceFields(change)...)
}

func moneyRemovedEmbed(adminName string, t *target, amount int64, change *interfaces.BalanceChange) *discordgo.MessageEmbed {
	return successEmbed(adminName, "✅ Money Removed",
		fmt.Sprintf("Removed **%s** from **%s**", common.FormatCurrency(amount), t.DisplayName),
		balanceFields(change)...)
}

func balanceResetEmbed(adminName string, t *target, change *interfaces.BalanceChange) *discordgo.MessageEmbed {
	return successEmbed(adminName, "✅ Balance Reset",
		fmt.Sprintf("Reset **%s**'s balance to starting amount", t.DisplayName),
		balanceFields(change)...)
}

func itemGivenEmbed(adminName string, t *target, grant *interfaces.ItemGrant) *discordgo.MessageEmbed {
	return successEmbed(adminName, "✅ Item Given",
		fmt.Sprintf("Gave **%dx %s** to **%s**", grant.Quantity, entities.DisplayItemName(grant.ItemName), t.DisplayName),
		inlineField("Item Type", entities.DisplayItemName(string(grant.ItemType))),
		inlineField("Quantity", strconv.FormatInt(grant.Quantity, 10)),
	)
}

func itemRemovedEmbed(adminName string, t *target, quantity int64, removal *interfaces.ItemRemoval) *discordgo.MessageEmbed {
	return successEmbed(adminName, "✅ Item Removed",
		fmt.Sprintf("Removed **%dx %s** from **%s**", quantity, entities.DisplayItemName(removal.ItemName), t.DisplayName),
		inlineField("Previous Quantity", strconv.FormatInt(removal.Previous, 10)),
		inlineField("New Quantity", strconv.FormatInt(removal.New, 10)),
	)
}

func inventoryClearedEmbed(adminName string, t *target, removed int64) *discordgo.MessageEmbed {
	return successEmbed(adminName, "✅ Inventory Cleared",
		fmt.Sprintf("Cleared **%s**'s entire inventory", t.DisplayName),
		inlineField("Items Removed", strconv.FormatInt(removed, 10)),
	)
}

// inventoryGroups defines the order and decoration of item types in inventory views
var inventoryGroups = []struct {
	itemType entities.ItemType
	title    string
	icon     string
}{
	{entities.ItemTypeSecurity, "🔒 Security Items", "🛡️"},
	{entities.ItemTypeTool, "🛠️ Tools", "🔧"},
	{entities.ItemTypeConsumable, "💊 Consumables", "✨"},
}

// inventoryEmbed shows a user's inventory grouped by item type
func inventoryEmbed(adminName string, t *target, items []*entities.InventoryItem) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("🔍 Admin View: %s's Inventory", t.DisplayName),
		Color:  common.ColorAdmin,
		Footer: adminFooter(adminName),
	}

	if len(items) == 0 {
		embed.Description = "Inventory is empty."
		return embed
	}

	for _, group := range inventoryGroups {
		var lines []string
		for _, item := range items {
			if item.ItemType == group.itemType {
				lines = append(lines, fmt.Sprintf("%s **%s** x%d", group.icon, item.DisplayName(), item.Quantity))
			}
		}
		if len(lines) > 0 {
			embed.Fields = append(embed.Fields, blockField(group.title, common.TruncateLines(lines, common.MaxEmbedFieldLength)))
		}
	}

	return embed
}

// userDataEmbed shows balance, inventory, boosts and rob statistics of a user
func userDataEmbed(adminName string, t *target, data *entities.UserData) *discordgo.MessageEmbed {
	stats := data.RobStats
	if stats == nil {
		stats = &entities.RobStats{}
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🔍 Complete User Data: %s", t.DisplayName),
		Color: common.ColorAdmin,
		Fields: []*discordgo.MessageEmbedField{
			inlineField("💰 Balance", common.FormatCurrency(data.Balance)),
			inlineField("🎒 Items", strconv.Itoa(len(data.Inventory))),
			inlineField("✨ Active Boosts", strconv.Itoa(len(data.Boosts))),
			blockField("📊 Rob Statistics", fmt.Sprintf(
				"Total Attempts: %d\nSuccessful: %d\nFailed: %d\nTimes Robbed: %d",
				stats.TotalAttempts, stats.Successful, stats.Failed, stats.TimesRobbed,
			)),
		},
		Footer: adminFooter(adminName, fmt.Sprintf("User ID: %d", t.ID)),
	}

	if len(data.Inventory) > 0 {
		listed := data.Inventory
		if len(listed) > maxListedItems {
			listed = listed[:maxListedItems]
		}
		lines := make([]string, 0, len(listed)+1)
		for _, item := range listed {
			lines = append(lines, common.FormatQuantity(item.DisplayName(), item.Quantity))
		}
		if more := len(data.Inventory) - maxListedItems; more > 0 {
			lines = append(lines, fmt.Sprintf("... and %d more", more))
		}
		embed.Fields = append(embed.Fields, blockField("🎒 Inventory Items", strings.Join(lines, "\n")))
	}

	return embed
}

func userResetEmbed(adminName string, t *target, reset *interfaces.UserReset) *discordgo.MessageEmbed {
	return successEmbed(adminName, "✅ User Reset Complete",
		fmt.Sprintf("Completely reset **%s**'s data", t.DisplayName),
		inlineField("Balance", "Reset to "+common.FormatCurrency(reset.NewBalance)),
		inlineField("Inventory", fmt.Sprintf("Cleared %d items", reset.ItemsCleared)),
		blockField("⚠️ Warning", "This action cannot be undone!"),
	)
}

func backupEmbed(adminName string, result *interfaces.BackupResult) *discordgo.MessageEmbed {
	return successEmbed(adminName, "✅ Backup Created",
		"Exported this server's ledger snapshot",
		blockField("Location", "`"+result.Location+"`"),
		inlineField("Accounts", strconv.Itoa(result.AccountCount)),
		inlineField("Inventory Entries", strconv.Itoa(result.ItemCount)),
	)
}
