package common

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// GenericErrorMessage is shown for every error that is not a user error
const GenericErrorMessage = "Something went wrong. Please try again later."

// BotError represents a structured error with user-facing and internal messages
type BotError struct {
	UserMessage string // Message shown to Discord user
	LogMessage  string // Internal message for logging
	Ephemeral   bool   // Whether the error message should be ephemeral
	Err         error  // Underlying error
	Context     any    // Additional context for logging
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// IsUserError reports whether the error was caused by the caller rather than the system
func (e *BotError) IsUserError() bool {
	return e.Err == nil
}

// NewUserError creates an error for user-caused issues (validation, insufficient funds, etc)
func NewUserError(userMessage string, logMessage string) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  logMessage,
		Ephemeral:   true,
	}
}

// NewSystemError creates an error for system issues (database, unexpected state, etc)
func NewSystemError(err error, logMessage string) *BotError {
	return &BotError{
		UserMessage: GenericErrorMessage,
		LogMessage:  logMessage,
		Ephemeral:   true,
		Err:         err,
	}
}

// RespondWithError sends an error message as an ephemeral interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: FormatErrorMessage(message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// FormatErrorMessage prefixes a user-facing error message
func FormatErrorMessage(message string) string {
	return fmt.Sprintf("❌ %s", message)
}

// HandleError logs err and responds with its user message. Anything that is not
// a *BotError user error gets the generic message so internals never reach the user.
func HandleError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	fields := log.Fields{
		"command": commandName(i),
		"error":   err.Error(),
	}
	if caller := Caller(i); caller != nil {
		fields["user_id"] = caller.ID
	}

	var botErr *BotError
	if errors.As(err, &botErr) {
		fields["user_message"] = botErr.UserMessage
		if botErr.Context != nil {
			fields["context"] = botErr.Context
		}
		if botErr.IsUserError() {
			log.WithFields(fields).Debug(botErr.LogMessage)
		} else {
			log.WithFields(fields).Error(botErr.LogMessage)
		}
		RespondWithError(s, i, botErr.UserMessage)
		return
	}

	log.WithFields(fields).Error("Unexpected error in bot command")
	RespondWithError(s, i, GenericErrorMessage)
}

func commandName(i *discordgo.InteractionCreate) string {
	if i.Type != discordgo.InteractionApplicationCommand && i.Type != discordgo.InteractionApplicationCommandAutocomplete {
		return ""
	}
	return i.ApplicationCommandData().Name
}
