package admin

import (
	"fmt"

	"megabot/bot/common"

	"github.com/bwmarrin/discordgo"
)

// target is the user an admin command acts on
type target struct {
	ID          int64
	Username    string
	DisplayName string
}

// request is a parsed admin command invocation
type request struct {
	command  string
	target   *target
	amount   int64
	item     string
	quantity int64
	confirm  string
}

// commandsWithoutTarget do not take a user option
var commandsWithoutTarget = map[string]bool{
	CommandAdminPanel: true,
	CommandBackup:     true,
}

// parseRequest reads the options of an admin command
func parseRequest(data discordgo.ApplicationCommandInteractionData) (*request, error) {
	req := &request{
		command:  data.Name,
		quantity: 1,
	}

	options := common.OptionMap(data.Options)
	if opt, ok := options["user"]; ok {
		t, err := resolveTarget(data.Resolved, opt.Value)
		if err != nil {
			return nil, err
		}
		req.target = t
	} else if !commandsWithoutTarget[data.Name] {
		return nil, common.NewUserError("Please specify a user!", fmt.Sprintf("/%s invoked without a user", data.Name))
	}

	if opt, ok := options["amount"]; ok {
		req.amount = opt.IntValue()
	}
	if opt, ok := options["item"]; ok {
		req.item = opt.StringValue()
	}
	if opt, ok := options["quantity"]; ok {
		req.quantity = opt.IntValue()
	}
	if opt, ok := options["confirm"]; ok {
		req.confirm = opt.StringValue()
	}

	return req, nil
}

// resolveTarget builds the target from the resolved user and member data of the interaction
func resolveTarget(resolved *discordgo.ApplicationCommandInteractionDataResolved, value any) (*target, error) {
	userID, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("user option has unexpected type %T", value)
	}
	id, err := common.ParseUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse target user ID %q: %w", userID, err)
	}

	t := &target{ID: id, Username: userID, DisplayName: common.GetUserMention(id)}
	if resolved == nil {
		return t, nil
	}
	if user, ok := resolved.Users[userID]; ok && user != nil {
		t.Username = user.Username
		t.DisplayName = common.DisplayName(user)
	}
	if member, ok := resolved.Members[userID]; ok && member != nil && member.Nick != "" {
		t.DisplayName = member.Nick
	}
	return t, nil
}
