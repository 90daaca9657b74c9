package admin

import (
	"context"
	"fmt"

	"megabot/application"
	"megabot/bot/common"
	"megabot/domain/entities"
	"megabot/domain/interfaces"
	"megabot/domain/services"
	"megabot/infrastructure/observability"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleCommand authorizes, runs and answers one admin command, returning its metrics outcome
func (f *Feature) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) string {
	data := i.ApplicationCommandData()

	req, embed, err := f.run(i, data)
	if err != nil {
		if req == nil {
			req = &request{command: data.Name}
		}
		botErr := toBotError(err, req)
		common.HandleError(s, i, botErr)
		return outcomeOf(botErr)
	}

	common.RespondEmbed(s, i, embed, true)
	return observability.OutcomeSuccess
}

// run authorizes the caller and executes the command; it never touches the session
func (f *Feature) run(i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) (*request, *discordgo.MessageEmbed, error) {
	actorID, err := common.CallerID(i)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to identify caller: %w", err)
	}

	if !f.authorizer.IsAuthorized(actorID) {
		log.WithFields(log.Fields{
			"userID":  actorID,
			"command": data.Name,
		}).Warn("Unauthorized admin command attempt")
		return nil, nil, &entities.AuthorizationError{DiscordID: actorID, Action: data.Name}
	}

	req, err := parseRequest(data)
	if err != nil {
		return nil, nil, err
	}

	guildID, err := common.InteractionGuildID(i)
	if err != nil {
		return req, nil, fmt.Errorf("failed to parse guild ID %q: %w", i.GuildID, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	embed, err := f.execute(ctx, guildID, actorID, common.CallerName(i), req)
	return req, embed, err
}

// execute runs the command's ledger calls in one unit of work and renders the reply
func (f *Feature) execute(ctx context.Context, guildID, actorID int64, adminName string, req *request) (*discordgo.MessageEmbed, error) {
	if req.command == CommandAdminPanel {
		return adminPanelEmbed(adminName), nil
	}
	if req.command == CommandBackup && f.snapshotStore == nil {
		return nil, common.NewUserError("Backups are not configured for this bot.", "backup requested without a snapshot store")
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	admin := application.NewAdminService(uow, guildID, actorID, f.settings)
	embed, err := f.dispatch(ctx, admin, adminName, req)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	f.recordLedgerMetrics(req.command)
	return embed, nil
}

// dispatch calls the admin service operation for the command
func (f *Feature) dispatch(ctx context.Context, admin interfaces.AdminService, adminName string, req *request) (*discordgo.MessageEmbed, error) {
	switch req.command {
	case CommandSetBalance:
		change, err := admin.SetBalance(ctx, req.target.ID, req.amount)
		if err != nil {
			return nil, err
		}
		return balanceSetEmbed(adminName, req.target, change), nil

	case CommandAddBalance:
		change, err := admin.AddBalance(ctx, req.target.ID, req.amount)
		if err != nil {
			return nil, err
		}
		return moneyAddedEmbed(adminName, req.target, req.amount, change), nil

	case CommandRemoveBalance:
		change, err := admin.RemoveBalance(ctx, req.target.ID, req.amount)
		if err != nil {
			return nil, err
		}
		return moneyRemovedEmbed(adminName, req.target, req.amount, change), nil

	case CommandResetBalance:
		change, err := admin.ResetBalance(ctx, req.target.ID)
		if err != nil {
			return nil, err
		}
		return balanceResetEmbed(adminName, req.target, change), nil

	case CommandGiveItem:
		grant, err := admin.GiveItem(ctx, req.target.ID, req.item, req.quantity)
		if err != nil {
			return nil, err
		}
		return itemGivenEmbed(adminName, req.target, grant), nil

	case CommandRemoveItem:
		removal, err := admin.RemoveItem(ctx, req.target.ID, req.item, req.quantity)
		if err != nil {
			return nil, err
		}
		return itemRemovedEmbed(adminName, req.target, req.quantity, removal), nil

	case CommandClearInventory:
		removed, err := admin.ClearInventory(ctx, req.target.ID)
		if err != nil {
			return nil, err
		}
		return inventoryClearedEmbed(adminName, req.target, removed), nil

	case CommandViewInventory:
		items, err := admin.ViewInventory(ctx, req.target.ID)
		if err != nil {
			return nil, err
		}
		return inventoryEmbed(adminName, req.target, items), nil

	case CommandViewUserData:
		data, err := admin.ViewUserData(ctx, req.target.ID)
		if err != nil {
			return nil, err
		}
		return userDataEmbed(adminName, req.target, data), nil

	case CommandResetUser:
		reset, err := admin.ResetUser(ctx, req.target.ID, req.confirm)
		if err != nil {
			return nil, err
		}
		return userResetEmbed(adminName, req.target, reset), nil

	case CommandBackup:
		result, err := admin.Backup(ctx, f.snapshotStore)
		if err != nil {
			return nil, err
		}
		return backupEmbed(adminName, result), nil

	default:
		return nil, fmt.Errorf("unknown admin command %q", req.command)
	}
}

// recordLedgerMetrics counts the committed ledger change of a command
func (f *Feature) recordLedgerMetrics(command string) {
	switch command {
	case CommandSetBalance:
		f.metrics.RecordBalanceAdjustment(string(entities.TransactionTypeAdminSet))
	case CommandAddBalance:
		f.metrics.RecordBalanceAdjustment(string(entities.TransactionTypeAdminAdd))
	case CommandRemoveBalance:
		f.metrics.RecordBalanceAdjustment(string(entities.TransactionTypeAdminRemove))
	case CommandResetBalance:
		f.metrics.RecordBalanceAdjustment(string(entities.TransactionTypeAdminReset))
	case CommandGiveItem:
		f.metrics.RecordInventoryOperation(observability.InventoryOperationGive)
	case CommandRemoveItem:
		f.metrics.RecordInventoryOperation(observability.InventoryOperationRemove)
	case CommandClearInventory:
		f.metrics.RecordInventoryOperation(observability.InventoryOperationClear)
	case CommandResetUser:
		f.metrics.RecordBalanceAdjustment(string(entities.TransactionTypeAdminReset))
		f.metrics.RecordInventoryOperation(observability.InventoryOperationClear)
	}
}

// HandleAutocomplete offers item names for the item option of giveitem and removeitem
func (f *Feature) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	actorID, err := common.CallerID(i)
	if err != nil || !f.authorizer.IsAuthorized(actorID) {
		common.RespondAutocomplete(s, i, nil, entities.DisplayItemName)
		return
	}

	var query string
	for _, opt := range data.Options {
		if opt.Focused && opt.Name == "item" {
			query = opt.StringValue()
		}
	}

	names := f.catalogNames()
	if data.Name == CommandRemoveItem {
		if held, err := f.heldItemNames(i, data); err != nil {
			log.WithError(err).Warn("Failed to load inventory for autocomplete")
		} else if len(held) > 0 {
			names = held
		}
	}

	common.RespondAutocomplete(s, i, services.RankItemNames(query, names, services.MaxAutocompleteChoices), entities.DisplayItemName)
}

func (f *Feature) catalogNames() []string {
	if f.settings.Catalog == nil {
		return nil
	}
	return f.settings.Catalog.Names()
}

// heldItemNames returns the item names held by the user option of the interaction
func (f *Feature) heldItemNames(i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) ([]string, error) {
	opt, ok := common.OptionMap(data.Options)["user"]
	if !ok {
		return nil, nil
	}
	t, err := resolveTarget(data.Resolved, opt.Value)
	if err != nil {
		return nil, err
	}
	guildID, err := common.InteractionGuildID(i)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	items, err := application.NewLedgerService(uow, guildID, f.settings).GetInventory(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.ItemName)
	}
	return names, nil
}
