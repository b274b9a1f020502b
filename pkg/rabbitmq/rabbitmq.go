package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"
)

// EventQueue is the durable queue task events are published to.
const EventQueue = "task_events"

// Event is a domain event emitted after a successful write.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	UserID     uint      `json:"userId"`
	EntityID   uint      `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType string, userID, entityID uint) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}

// DecodeEvent parses a message body produced by PublishEvent.
func DecodeEvent(body []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return Event{}, fmt.Errorf("failed to decode event: %w", err)
	}
	if event.Type == "" {
		return Event{}, fmt.Errorf("event without type")
	}
	return event, nil
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares EventQueue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declare(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	log.Printf("RabbitMQ client connected and %s declared.", EventQueue)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

func declare(ch *amqp.Channel) error {
	_, err := ch.QueueDeclare(
		EventQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", EventQueue, err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing RabbitMQ client: %v", errs)
	}
	return nil
}

// PublishEvent publishes event as persistent JSON on EventQueue.
func (c *Client) PublishEvent(event Event) error {
	if c == nil || c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.Publish(
		"",         // default exchange
		EventQueue, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.ID,
			Type:         event.Type,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

// ConsumeEvents delivers every message on EventQueue to handler in a
// background goroutine. Messages are acked on success; undecodable ones are
// dropped and handler failures are requeued.
func (c *Client) ConsumeEvents(handler func(Event) error) error {
	if c == nil || c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}
	if err := declare(c.channel); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		EventQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			event, err := DecodeEvent(msg.Body)
			if err != nil {
				log.Printf("Dropping message %d: %v", msg.DeliveryTag, err)
				_ = msg.Nack(false, false)
				continue
			}
			if err := handler(event); err != nil {
				log.Printf("Error processing %s event %s: %v", event.Type, event.ID, err)
				if nackErr := msg.Nack(false, true); nackErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, nackErr)
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				log.Printf("Error acking message %d: %v", msg.DeliveryTag, ackErr)
			}
		}
	}()

	return nil
}

// LogEvent is the default consumer handler.
func LogEvent(event Event) error {
	log.Printf("Event %s: user=%d entity=%d at %s", event.Type, event.UserID, event.EntityID, event.OccurredAt.Format(time.RFC3339))
	return nil
}
