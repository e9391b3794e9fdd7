package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/streadway/amqp"
)

// QueueName is the durable queue catalog events are published to.
const QueueName = "catalog_events"

// Event names.
const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
	CatalogSeeded  = "catalog.seeded"
)

// Event is the JSON body of every message on QueueName.
type Event struct {
	Name       string    `json:"event"`
	ProductID  string    `json:"product_id,omitempty"`
	Count      int       `json:"count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent stamps an event with the current time.
func NewEvent(name, productID string, count int) Event {
	return Event{Name: name, ProductID: productID, Count: count, OccurredAt: time.Now().UTC()}
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *slog.Logger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares QueueName.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declareQueue(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", QueueName, err)
	}

	logger.Info("rabbitmq client connected", slog.String("queue", QueueName))

	return &Client{
		conn:    conn,
		channel: ch,
		logger:  logger,
	}, nil
}

func declareQueue(ch *amqp.Channel) (amqp.Queue, error) {
	return ch.QueueDeclare(
		QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
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
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishEvent publishes event to QueueName as a persistent JSON message.
func (c *Client) PublishEvent(ctx context.Context, event Event) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.Publish(
		"",        // default exchange
		QueueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.DebugContext(ctx, "event published", slog.String("event", event.Name), slog.String("product_id", event.ProductID))
	return nil
}

// ConsumeEvents starts a goroutine that decodes every message on QueueName
// and passes it to handler. Messages are acked when handler returns nil and
// rejected without requeue when the body is not a valid Event.
func (c *Client) ConsumeEvents(handler func(Event) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := declareQueue(c.channel)
	if err != nil {
		return fmt.Errorf("failed to declare queue for consuming: %w", err)
	}

	msgs, err := c.channel.Consume(
		queue.Name,
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
			c.handleDelivery(msg, handler)
		}
	}()

	return nil
}

func (c *Client) handleDelivery(msg amqp.Delivery, handler func(Event) error) {
	var event Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		c.logger.Warn("dropping malformed event", slog.Uint64("delivery_tag", msg.DeliveryTag), slog.Any("error", err))
		if nackErr := msg.Nack(false, false); nackErr != nil {
			c.logger.Error("nack failed", slog.Uint64("delivery_tag", msg.DeliveryTag), slog.Any("error", nackErr))
		}
		return
	}

	if err := handler(event); err != nil {
		c.logger.Error("event handler failed", slog.Uint64("delivery_tag", msg.DeliveryTag), slog.Any("error", err))
		if nackErr := msg.Nack(false, true); nackErr != nil {
			c.logger.Error("nack failed", slog.Uint64("delivery_tag", msg.DeliveryTag), slog.Any("error", nackErr))
		}
		return
	}
	if ackErr := msg.Ack(false); ackErr != nil {
		c.logger.Error("ack failed", slog.Uint64("delivery_tag", msg.DeliveryTag), slog.Any("error", ackErr))
	}
}
