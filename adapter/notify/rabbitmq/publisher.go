package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/peerbank/banking-backend/domain"
)

// AlarmEvent is the wire format of one published notification
type AlarmEvent struct {
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"` // ISO 8601
}

// Publisher implements domain.Notifier over RabbitMQ. Messages are routed
// through a durable topic exchange with the routing key "alarm.<task-type>";
// delivery is best-effort from the ledger's point of view, the caller decides
// what to do with a returned error.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher connects to RabbitMQ and declares the alarm exchange
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Notify publishes the alarm message for the given user
func (p *Publisher) Notify(ctx context.Context, userID uuid.UUID, message domain.AlarmMessage) error {
	event := AlarmEvent{
		UserID:    userID.String(),
		Status:    string(message.Status),
		Type:      string(message.Type),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alarm event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		RoutingKey(message.Type),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish alarm event: %w", err)
	}
	return nil
}

// RoutingKey returns the topic routing key for a task type, e.g. "alarm.deposit"
func RoutingKey(taskType domain.TaskType) string {
	return "alarm." + strings.ToLower(string(taskType))
}

// Close closes the channel and the connection
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return fmt.Errorf("failed to close channel: %w", err)
	}
	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}
