package notify

import (
	"context"
	"encoding/json"

	"fulfillment-core/internal/pkg/config"
	"fulfillment-core/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Event is the downstream notification emitted after a reconcile run
// reaches a terminal outcome.
type Event struct {
	TransactionID string `json:"transaction_id"`
	Outcome       string `json:"outcome"`
	OccurredAt    string `json:"occurred_at"`
}

// Publisher pushes fulfillment events to a durable AMQP queue for
// downstream consumers (receipts, analytics). Delivery is best effort
// from the caller's point of view; the queue itself is durable.
type Publisher struct {
	channel *amqp.Channel
	queue   string
}

func NewPublisher(cfg config.AMQPConfig) (*Publisher, func(), error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to amqp broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open amqp channel")
	}

	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, errs.Wrap(err, "failed to declare amqp queue")
	}

	cleanup := func() {
		ch.Close()
		conn.Close()
	}
	return &Publisher{channel: ch, queue: cfg.Queue}, cleanup, nil
}

func (p *Publisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode event")
	}
	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish event")
	}
	return nil
}

// NopPublisher is used when AMQP is disabled. Events are dropped.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
