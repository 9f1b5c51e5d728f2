// Package amqp publishes delivery status changes to RabbitMQ.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"driverapp/internal/devbackend/domain/delivery"
	"driverapp/internal/devbackend/ports"
	"driverapp/internal/pkg/errs"
)

// DefaultQueue receives every StatusChanged event when no queue is configured.
const DefaultQueue = "order.status.changed"

var _ ports.EventPublisher = &Publisher{}

// Publisher owns one broker connection and a channel that is reopened on demand.
type Publisher struct {
	conn   *amqp.Connection
	queue  string
	logger *slog.Logger

	mu sync.Mutex
	ch *amqp.Channel
}

// NewPublisher dials url and declares queue as durable.
func NewPublisher(url, queue string, logger *slog.Logger) (*Publisher, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("url")
	}
	if queue == "" {
		queue = DefaultQueue
	}
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	p := &Publisher{
		conn:   conn,
		queue:  queue,
		logger: logger.With("component", "amqp-publisher", "queue", queue),
	}
	if _, err = p.channel(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return p, nil
}

// Queue returns the name of the queue events are routed to.
func (p *Publisher) Queue() string {
	return p.queue
}

// PublishStatusChanged sends event as a persistent JSON message through the
// default exchange.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event delivery.StatusChanged) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Type:         "StatusChanged",
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish order %d: %w", event.OrderID, err)
	}

	p.logger.Debug("status change published", "order_id", event.OrderID, "status", event.Status)
	return nil
}

// Close shuts the channel and the connection down.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil && !p.ch.IsClosed() {
		_ = p.ch.Close()
	}
	return p.conn.Close()
}

// channel returns the open channel, reopening it after a broker-side close.
// Callers other than the constructor hold mu.
func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if p.conn.IsClosed() {
		return nil, amqp.ErrClosed
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err = ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	p.ch = ch
	return ch, nil
}
