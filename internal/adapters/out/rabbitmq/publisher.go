// Package rabbitmq mirrors order events to a RabbitMQ fanout exchange so that
// processes other than this one can follow the order lifecycle.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ordering/internal/adapters/views"
	"ordering/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// NotificationsExchange is the fanout exchange order events are published to.
	NotificationsExchange = "notifications_fanout"

	// DefaultQueueSize bounds the events waiting to be mirrored.
	DefaultQueueSize = 256

	publishTimeout   = 5 * time.Second
	reconnectBackoff = 5 * time.Second
)

var _ ports.EventPublisher = (*Publisher)(nil)

type session interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type dialFunc func() (session, error)

// Publisher sends every order event as a JSON message. A single worker drains
// a bounded queue so the exchange sees events in publish order; when the
// queue is full the event is dropped and logged. Failures never reach the caller.
type Publisher struct {
	dial     dialFunc
	session  session
	nextDial time.Time

	mu     sync.Mutex
	closed bool
	queue  chan amqp.Publishing
	done   chan struct{}

	logger *slog.Logger
}

// Dial connects to url and declares the notifications exchange. The
// connection is re-established by the worker when the broker drops it.
func Dial(url string, logger *slog.Logger) (*Publisher, error) {
	dial := func() (session, error) { return openSession(url) }

	s, err := dial()
	if err != nil {
		return nil, err
	}
	return newPublisher(s, dial, DefaultQueueSize, logger), nil
}

func newPublisher(s session, dial dialFunc, queueSize int, logger *slog.Logger) *Publisher {
	p := &Publisher{
		dial:    dial,
		session: s,
		queue:   make(chan amqp.Publishing, queueSize),
		done:    make(chan struct{}),
		logger:  logger.With("component", "rabbitmq-mirror"),
	}
	go p.run()
	return p
}

// Publish implements ports.EventPublisher.
func (p *Publisher) Publish(ctx context.Context, event ports.OrderEvent) {
	body, err := json.Marshal(views.NewEvent(event))
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to marshal order event", "event", event.Kind.String(), "error", err)
		return
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Type:         event.Kind.String(),
		DeliveryMode: amqp.Transient,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		p.logger.WarnContext(ctx, "Order event dropped, mirror is closed", "event", event.Kind.String())
		return
	}
	select {
	case p.queue <- msg:
	default:
		p.logger.WarnContext(ctx, "Order event dropped, mirror queue is full",
			"event", event.Kind.String(),
			"capacity", cap(p.queue),
		)
	}
}

func (p *Publisher) run() {
	defer close(p.done)

	for msg := range p.queue {
		if err := p.send(msg); err != nil {
			p.logger.Error("Failed to publish order event",
				"exchange", NotificationsExchange,
				"event", msg.Type,
				"error", err,
			)
			continue
		}
		p.logger.Debug("Order event published", "event", msg.Type, "size", len(msg.Body))
	}
}

// send publishes msg, redialing once when the session turns out to be closed.
func (p *Publisher) send(msg amqp.Publishing) error {
	if p.session.IsClosed() {
		if err := p.reconnect(); err != nil {
			return err
		}
	}

	err := p.publish(msg)
	if err == nil || !p.session.IsClosed() {
		return err
	}
	if rerr := p.reconnect(); rerr != nil {
		return errors.Join(err, rerr)
	}
	return p.publish(msg)
}

func (p *Publisher) publish(msg amqp.Publishing) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	return p.session.PublishWithContext(ctx, NotificationsExchange, "", false, false, msg)
}

func (p *Publisher) reconnect() error {
	if now := time.Now(); now.Before(p.nextDial) {
		return fmt.Errorf("reconnect to RabbitMQ postponed until %s", p.nextDial.Format(time.RFC3339))
	}

	_ = p.session.Close()

	s, err := p.dial()
	if err != nil {
		p.nextDial = time.Now().Add(reconnectBackoff)
		return fmt.Errorf("failed to reconnect: %w", err)
	}
	p.session = s
	p.nextDial = time.Time{}

	p.logger.Info("Reconnected to RabbitMQ", "exchange", NotificationsExchange)
	return nil
}

// Close stops accepting events, waits for the queued ones to be sent and
// closes the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
	return p.session.Close()
}

type amqpSession struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func openSession(url string) (*amqpSession, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		NotificationsExchange, // name
		"fanout",              // type
		true,                  // durable
		false,                 // auto-deleted
		false,                 // internal
		false,                 // no-wait
		nil,                   // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare %s exchange: %w", NotificationsExchange, err)
	}

	return &amqpSession{conn: conn, channel: ch}, nil
}

func (s *amqpSession) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return s.channel.PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}

func (s *amqpSession) IsClosed() bool {
	return s.conn.IsClosed() || s.channel.IsClosed()
}

func (s *amqpSession) Close() error {
	if s.conn.IsClosed() {
		return nil
	}
	_ = s.channel.Close()
	return s.conn.Close()
}
