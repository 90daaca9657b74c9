package infrastructure

import (
	"fmt"

	"megabot/domain/events"
)

// LedgerEventStream is the JetStream stream that carries ledger events
const LedgerEventStream = "ledger_events"

var subjectsByEventType = map[events.EventType]string{
	events.EventTypeBalanceChange:    "ledger.balance_changed",
	events.EventTypeInventoryChange:  "ledger.inventory_changed",
	events.EventTypeInventoryCleared: "ledger.inventory_cleared",
	events.EventTypeUserReset:        "ledger.user_reset",
}

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	if subject, ok := subjectsByEventType[event.Type()]; ok {
		return subject
	}
	return fmt.Sprintf("ledger.unknown.%s", event.Type())
}

// MapSubjectToEventType converts a NATS subject back to an event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) events.EventType {
	for eventType, s := range subjectsByEventType {
		if s == subject {
			return eventType
		}
	}
	return events.EventType(subject)
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		"ledger.balance_changed",
		"ledger.inventory_changed",
		"ledger.inventory_cleared",
		"ledger.user_reset",
	}
}
