package application

import (
	"megabot/domain/entities"
	"megabot/domain/interfaces"
	"megabot/domain/services"
)

// LedgerSettings carries the economy configuration shared by every unit of work
type LedgerSettings struct {
	StartingBalance int64
	Catalog         *entities.ItemCatalog
}

// NewLedgerService builds a ledger service over the repositories of a started unit of work
func NewLedgerService(uow UnitOfWork, guildID int64, settings LedgerSettings) interfaces.LedgerService {
	return services.NewLedgerService(
		guildID,
		uow.AccountRepository(),
		uow.InventoryRepository(),
		uow.BoostRepository(),
		uow.RobStatsRepository(),
		uow.BalanceHistoryRepository(),
		uow.EventBus(),
		settings.StartingBalance,
	)
}

// NewAdminService builds an admin service acting for actorID over a started unit of work
func NewAdminService(uow UnitOfWork, guildID int64, actorID int64, settings LedgerSettings) interfaces.AdminService {
	return services.NewAdminService(
		guildID,
		NewLedgerService(uow, guildID, settings),
		uow.EventBus(),
		settings.Catalog,
		settings.StartingBalance,
		actorID,
	)
}
