package rabbitmq

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/streadway/amqp"

	"favorites/internal/models"
	"favorites/pkg/logger"
)

// FavoriteQueue is the durable queue favorite events are delivered to.
const FavoriteQueue = "favorite_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares FavoriteQueue.
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

	if _, err := declareFavoriteQueue(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info().Str("queue", FavoriteQueue).Msg("RabbitMQ client connected")

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

func declareFavoriteQueue(ch *amqp.Channel) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		FavoriteQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return q, fmt.Errorf("failed to declare %s: %w", FavoriteQueue, err)
	}
	return q, nil
}

// Close closes the RabbitMQ connection and channel.
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
	return errors.Join(errs...)
}

// Publish sends a persistent JSON message to exchange with routingKey.
func (c *Client) Publish(exchange, routingKey string, body []byte) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	err := c.channel.Publish(exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishFavoriteEvent publishes event to FavoriteQueue through the default
// exchange. The event's routing key travels in the message type.
func (c *Client) PublishFavoriteEvent(event models.FavoriteEvent) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal favorite event: %w", err)
	}

	err = c.channel.Publish("", FavoriteQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Type:         event.RoutingKey(),
		MessageId:    event.ID,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to publish favorite event: %w", err)
	}

	logger.Debug().Str("event_id", event.ID).Str("type", event.RoutingKey()).Msg("favorite event sent")
	return nil
}

// ConsumeFavoriteEvents starts a goroutine that decodes every delivery on
// FavoriteQueue and hands it to handler. Deliveries are acked when handler
// returns nil. Undecodable messages are dropped, handler failures requeued.
func (c *Client) ConsumeFavoriteEvents(handler func(models.FavoriteEvent) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := declareFavoriteQueue(c.channel)
	if err != nil {
		return err
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
			handleDelivery(msg, handler)
		}
	}()

	return nil
}

// acknowledger is the subset of amqp.Delivery used to settle a message.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func handleDelivery(msg amqp.Delivery, handler func(models.FavoriteEvent) error) {
	settle(&msg, msg.DeliveryTag, msg.Body, handler)
}

func settle(ack acknowledger, tag uint64, body []byte, handler func(models.FavoriteEvent) error) {
	var event models.FavoriteEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Error().Err(err).Uint64("delivery_tag", tag).Msg("dropping malformed favorite event")
		if nackErr := ack.Nack(false, false); nackErr != nil {
			logger.Error().Err(nackErr).Uint64("delivery_tag", tag).Msg("error nacking message")
		}
		return
	}

	if err := handler(event); err != nil {
		logger.Error().Err(err).Uint64("delivery_tag", tag).Msg("error processing favorite event")
		if nackErr := ack.Nack(false, true); nackErr != nil {
			logger.Error().Err(nackErr).Uint64("delivery_tag", tag).Msg("error nacking message")
		}
		return
	}

	if ackErr := ack.Ack(false); ackErr != nil {
		logger.Error().Err(ackErr).Uint64("delivery_tag", tag).Msg("error acking message")
	}
}
