package bot

import (
	"fmt"
	"time"

	"megabot/application"
	"megabot/bot/features/admin"
	"megabot/bot/features/help"
	"megabot/domain/interfaces"
	"megabot/infrastructure/observability"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token          string
	GuildID        string // Empty registers commands globally
	CommandTimeout time.Duration
}

// Dependencies are the services the features run on
type Dependencies struct {
	UnitOfWorkFactory application.UnitOfWorkFactory
	Settings          application.LedgerSettings
	Authorizer        interfaces.Authorizer
	SnapshotStore     interfaces.SnapshotStore // nil disables /backup
	Metrics           *observability.MetricsProvider
}

// Bot manages the Discord session and the feature modules
type Bot struct {
	config  Config
	session *discordgo.Session

	admin *admin.Feature
	help  *help.Feature
}

// New creates the session, opens the gateway and registers the slash commands
func New(config Config, deps Dependencies) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:  config,
		session: dg,
		admin: admin.NewFeature(
			deps.UnitOfWorkFactory,
			deps.Settings,
			deps.Authorizer,
			deps.SnapshotStore,
			deps.Metrics,
			config.CommandTimeout,
		),
		help: help.NewFeature(),
	}

	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleAutocomplete)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.WithFields(log.Fields{
		"user":   r.User.Username,
		"guilds": len(r.Guilds),
	}).Info("Bot is ready")
}

// handleCommands routes slash commands to the feature that owns them
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	switch {
	case admin.Handles(name):
		b.admin.HandleCommand(s, i)
	case help.Handles(name):
		b.help.HandleCommand(s, i)
	default:
		log.WithField("command", name).Warn("Received unknown command")
	}
}

// handleAutocomplete routes autocomplete requests for item options
func (b *Bot) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommandAutocomplete {
		return
	}

	switch i.ApplicationCommandData().Name {
	case admin.CommandGiveItem, admin.CommandRemoveItem:
		b.admin.HandleAutocomplete(s, i)
	}
}
