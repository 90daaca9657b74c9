package admin

import (
	"errors"
	"fmt"
	"strings"

	"megabot/bot/common"
	"megabot/domain/entities"
	"megabot/infrastructure/observability"
)

// PermissionDeniedMessage is shown to every caller that fails authorization
const PermissionDeniedMessage = "You don't have permission to use this command! This is an admin-only command."

// toBotError maps a command failure to the message the admin sees
func toBotError(err error, req *request) *common.BotError {
	var (
		botErr      *common.BotError
		authErr     *entities.AuthorizationError
		validation  *entities.ValidationError
		quantityErr *entities.InsufficientQuantityError
		balanceErr  *entities.InsufficientBalanceError
	)

	switch {
	case errors.As(err, &botErr):
		return botErr

	case errors.As(err, &authErr):
		return common.NewUserError(PermissionDeniedMessage, authErr.Error())

	case errors.As(err, &validation):
		return common.NewUserError(validationMessage(validation), validation.Error())

	case errors.As(err, &quantityErr):
		msg := fmt.Sprintf("%s only has %dx %s!", targetName(req), quantityErr.Have, entities.DisplayItemName(quantityErr.ItemName))
		if len(quantityErr.Suggestions) > 0 {
			names := make([]string, 0, len(quantityErr.Suggestions))
			for _, name := range quantityErr.Suggestions {
				names = append(names, "**"+entities.DisplayItemName(name)+"**")
			}
			msg += fmt.Sprintf(" Did you mean %s?", strings.Join(names, " or "))
		}
		return common.NewUserError(msg, quantityErr.Error())

	case errors.As(err, &balanceErr):
		msg := fmt.Sprintf("%s only has %s! Cannot remove %s.",
			targetName(req), common.FormatCurrency(balanceErr.Balance), common.FormatCurrency(balanceErr.Requested))
		return common.NewUserError(msg, balanceErr.Error())

	default:
		return common.NewSystemError(err, fmt.Sprintf("Admin command /%s failed", req.command))
	}
}

// validationMessage phrases a rejected input the way admins see it
func validationMessage(err *entities.ValidationError) string {
	switch err.Field {
	case "amount":
		if strings.Contains(err.Message, "negative") {
			return "Amount cannot be negative!"
		}
		return "Amount must be positive!"
	case "quantity":
		return "Quantity must be positive!"
	case "item":
		return "Please specify an item!"
	case "confirm":
		return "Please type 'CONFIRM' to proceed with full reset!"
	default:
		return err.Error()
	}
}

// outcomeOf classifies a failure for metrics
func outcomeOf(botErr *common.BotError) string {
	if botErr.UserMessage == PermissionDeniedMessage {
		return observability.OutcomeDenied
	}
	if botErr.IsUserError() {
		return observability.OutcomeRejected
	}
	return observability.OutcomeError
}

func targetName(req *request) string {
	if req == nil || req.target == nil {
		return "User"
	}
	return req.target.DisplayName
}
