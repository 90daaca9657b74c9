package infrastructure

import (
	"megabot/application"
	"megabot/database"
	"megabot/domain/interfaces"
	"megabot/repository"
)

// UnitOfWorkFactory implements application.UnitOfWorkFactory. Every unit of work it
// creates gets its own transactional publisher over the shared event publisher.
type UnitOfWorkFactory struct {
	repoFactory interface {
		CreateForGuildWithPublisher(guildID int64, transactionalPublisher interfaces.TransactionalEventPublisher) application.UnitOfWork
	}
	eventPublisher interfaces.EventPublisher
}

// NewUnitOfWorkFactory creates a new UnitOfWorkFactory
func NewUnitOfWorkFactory(db *database.DB, eventPublisher interfaces.EventPublisher) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		repoFactory:    repository.NewUnitOfWorkFactory(db),
		eventPublisher: eventPublisher,
	}
}

// CreateForGuild creates a new UnitOfWork with a transactional event publisher
func (f *UnitOfWorkFactory) CreateForGuild(guildID int64) application.UnitOfWork {
	return f.repoFactory.CreateForGuildWithPublisher(guildID, NewNATSTransactionalPublisher(f.eventPublisher))
}
