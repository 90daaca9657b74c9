package infrastructure

import (
	"megabot/domain/events"

	log "github.com/sirupsen/logrus"
)

// NoopEventPublisher drops every event. Used when NATS is not configured.
type NoopEventPublisher struct{}

// NewNoopEventPublisher creates a new no-op event publisher
func NewNoopEventPublisher() *NoopEventPublisher {
	return &NoopEventPublisher{}
}

// Publish does nothing with the event
func (n *NoopEventPublisher) Publish(event events.Event) error {
	log.WithField("eventType", event.Type()).Trace("Event publishing disabled, dropping event")
	return nil
}
