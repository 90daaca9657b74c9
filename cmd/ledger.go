package cmd

import (
	"context"
	"fmt"

	"megabot/application"
	"megabot/database"
	"megabot/domain/interfaces"
	"megabot/infrastructure"

	log "github.com/sirupsen/logrus"
)

// ledger is the storage stack shared by the bot and the maintenance commands
type ledger struct {
	db         *database.DB
	uowFactory application.UnitOfWorkFactory
	settings   application.LedgerSettings
}

// openLedger connects to PostgreSQL and loads the item catalog.
// Committed events go to publisher.
func openLedger(ctx context.Context, publisher interfaces.EventPublisher) (*ledger, error) {
	catalog, err := infrastructure.LoadItemCatalog(cfg.ItemCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load item catalog: %w", err)
	}

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established successfully")

	return &ledger{
		db:         db,
		uowFactory: infrastructure.NewUnitOfWorkFactory(db, publisher),
		settings: application.LedgerSettings{
			StartingBalance: cfg.StartingBalance,
			Catalog:         catalog,
		},
	}, nil
}

func (l *ledger) Close() {
	l.db.Close()
}
