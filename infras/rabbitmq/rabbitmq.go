package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"careerday/config"
	"careerday/shared/timezone"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

type Publisher interface {
	// Publish sends value as JSON to the configured exchange with key as routing key.
	Publish(ctx context.Context, key string, value any) error
	Close() error
}

type publisherImpl struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// New dials the broker and declares a durable topic exchange.
func New(cfg *config.Config) (Publisher, error) {
	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to RabbitMQ")

		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		log.Error().Err(err).Msg("failed to open RabbitMQ channel")

		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if err = ch.ExchangeDeclare(cfg.RabbitMQ.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		log.Error().Err(err).Msg("failed to declare exchange")

		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.RabbitMQ.Exchange, err)
	}

	log.Info().Str("exchange", cfg.RabbitMQ.Exchange).Msg("RabbitMQ publisher initialized")

	return &publisherImpl{
		conn:     conn,
		channel:  ch,
		exchange: cfg.RabbitMQ.Exchange,
	}, nil
}

func (p *publisherImpl) Publish(ctx context.Context, key string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    timezone.Now(),
		Body:         body,
	})
	if err != nil {
		log.Error().Err(err).Str("exchange", p.exchange).Msg("failed to publish message to RabbitMQ")

		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Debug().Str("exchange", p.exchange).Str("routing_key", key).Msg("message published")

	return nil
}

func (p *publisherImpl) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
	}

	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("failed to close RabbitMQ connection: %w", err)
		}
	}

	log.Info().Msg("RabbitMQ connection closed")

	return nil
}
