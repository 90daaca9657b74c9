package entities

import (
	"fmt"
	"strings"
)

// ValidationError reports input that was rejected before any state change
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InsufficientQuantityError reports an attempt to use more of an item than is held
type InsufficientQuantityError struct {
	ItemName    string
	Have        int64
	Requested   int64
	Suggestions []string // Held item names close to ItemName
}

func (e *InsufficientQuantityError) Error() string {
	msg := fmt.Sprintf("insufficient quantity of %s: have %d, requested %d", e.ItemName, e.Have, e.Requested)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// InsufficientBalanceError reports a removal that exceeds the current balance
type InsufficientBalanceError struct {
	Balance   int64
	Requested int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %d, requested %d", e.Balance, e.Requested)
}

// AuthorizationError reports a caller that is not permitted to run a command
type AuthorizationError struct {
	DiscordID int64
	Action    string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %d is not authorized to %s", e.DiscordID, e.Action)
}
