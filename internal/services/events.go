package services

import (
	"log"

	"tasklist/pkg/rabbitmq"
)

// EventPublisher receives domain events after successful writes.
type EventPublisher interface {
	PublishEvent(event rabbitmq.Event) error
}

// publish logs and drops delivery failures.
func publish(p EventPublisher, eventType string, userID, entityID uint) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(rabbitmq.NewEvent(eventType, userID, entityID)); err != nil {
		log.Printf("Warning: failed to publish %s event for user %d: %v", eventType, userID, err)
	}
}
