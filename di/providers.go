package di

import (
	"fmt"

	"careerday/config"
	"careerday/infras/kafka"
	"careerday/infras/rabbitmq"
	notificationService "careerday/internal/domains/notification/service"
	"careerday/shared/constant"

	"github.com/rs/zerolog/log"
)

// provideSink picks the broker committed notifications are forwarded to.
func provideSink(cfg *config.Config) (notificationService.Sink, func(), error) {
	switch cfg.Notification.Sink {
	case constant.NotificationSinkKafka:
		client := kafka.New(cfg)

		return client, closer("kafka", client.Close), nil
	case constant.NotificationSinkRabbitMQ:
		publisher, err := rabbitmq.New(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create rabbitmq sink: %w", err)
		}

		return publisher, closer("rabbitmq", publisher.Close), nil
	case constant.NotificationSinkNone, constant.Empty:
		return notificationService.NopSink{}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown notification sink %q", cfg.Notification.Sink)
	}
}

func closer(name string, fn func() error) func() {
	return func() {
		if err := fn(); err != nil {
			log.Error().Err(err).Str("sink", name).Msg("failed to close notification sink")
		}
	}
}
