package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"megabot/bot"
	"megabot/database"
	"megabot/domain/interfaces"
	"megabot/domain/services"
	"megabot/infrastructure"
	"megabot/infrastructure/backup"
	"megabot/infrastructure/observability"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var skipMigrations bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Discord bot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd.Context())
	},
}

func init() {
	runCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations at startup")
}

// runBot starts every component, blocks until SIGINT or SIGTERM, then shuts down in reverse order
func runBot(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cleanup shutdownStack
	defer cleanup.run()

	log.WithField("environment", cfg.Environment).Info("Starting megabot...")

	if err := observability.InitializeGlobalMetrics(ctx, cfg); err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	cleanup.push("metrics", func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return observability.ShutdownGlobalMetrics(shutdownCtx)
	})
	metrics := observability.GetMetrics()

	if !skipMigrations {
		log.Info("Applying database migrations...")
		if err := database.MigrateUp(cfg.GetDatabaseURL()); err != nil {
			return err
		}
	}

	publisher, natsClient, err := connectEventPublisher(ctx, metrics)
	if err != nil {
		return err
	}
	if natsClient != nil {
		cleanup.push("NATS connection", natsClient.Close)
	}

	l, err := openLedger(ctx, publisher)
	if err != nil {
		return err
	}
	cleanup.push("database pool", func() error {
		l.Close()
		return nil
	})

	var snapshotStore interfaces.SnapshotStore
	if cfg.BackupEnabled() {
		store, err := backup.NewS3SnapshotStore(ctx, cfg.BackupS3Bucket, cfg.BackupS3Prefix, cfg.BackupS3Region, cfg.BackupS3Endpoint)
		if err != nil {
			return fmt.Errorf("failed to configure backups: %w", err)
		}
		snapshotStore = store
		log.WithField("bucket", cfg.BackupS3Bucket).Info("Ledger backups enabled")
	}

	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(
		bot.Config{
			Token:          cfg.DiscordToken,
			GuildID:        cfg.GuildID,
			CommandTimeout: cfg.CommandTimeout,
		},
		bot.Dependencies{
			UnitOfWorkFactory: l.uowFactory,
			Settings:          l.settings,
			Authorizer:        services.NewStaticAdminPolicy(cfg.AdminDiscordIDs),
			SnapshotStore:     snapshotStore,
			Metrics:           metrics,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	cleanup.push("Discord connection", discordBot.Close)

	log.WithField("admins", len(cfg.AdminDiscordIDs)).Info("Bot is running")
	<-ctx.Done()
	log.Info("Received shutdown signal, shutting down gracefully...")
	return nil
}

type shutdownStep struct {
	name string
	fn   func() error
}

// shutdownStack releases acquired resources in reverse order of acquisition
type shutdownStack struct {
	steps []shutdownStep
}

func (s *shutdownStack) push(name string, fn func() error) {
	s.steps = append(s.steps, shutdownStep{name: name, fn: fn})
}

// run closes every step even when an earlier one fails
func (s *shutdownStack) run() {
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		if err := step.fn(); err != nil {
			log.WithError(err).WithField("component", step.name).Error("Error during shutdown")
		}
	}
	s.steps = nil
	log.Info("Shutdown complete")
}

// connectEventPublisher returns a JetStream publisher when NATS is configured and a no-op publisher otherwise
func connectEventPublisher(ctx context.Context, metrics *observability.MetricsProvider) (interfaces.EventPublisher, *infrastructure.NATSClient, error) {
	if cfg.NATSServers == "" {
		log.Info("NATS_SERVERS not set, ledger events will not be published")
		return infrastructure.NewNoopEventPublisher(), nil, nil
	}

	client := infrastructure.NewNATSClient(cfg.NATSServers)
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Connect(connectCtx); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	publisher := infrastructure.NewNATSEventPublisher(client, infrastructure.NewEventSubjectMapper(), metrics)
	if err := publisher.EnsureLedgerEventStream(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to ensure ledger event stream: %w", err)
	}
	return publisher, client, nil
}
