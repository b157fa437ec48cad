package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"careerday/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// Options maps the primary node settings onto the client options.
func Options(node config.RedisNode) *goRedis.Options {
	return &goRedis.Options{
		Addr:     net.JoinHostPort(node.Host, node.Port),
		Password: node.Password,
		DB:       node.DB,
	}
}

// New connects to the primary and fails when it does not answer a PING.
// The returned cleanup closes the client.
func New(cfg *config.Config) (*goRedis.Client, func(), error) {
	node := cfg.Cache.Redis.Primary
	client := goRedis.NewClient(Options(node))

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, nil, fmt.Errorf("ping redis at %s: %w", net.JoinHostPort(node.Host, node.Port), err)
	}

	log.Info().Str("host", node.Host).Str("port", node.Port).Int("db", node.DB).Msg("Connected to Redis")

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed closing Redis client")
		}
	}

	return client, cleanup, nil
}
