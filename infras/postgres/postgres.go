package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"careerday/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName      = "postgres"
	maxIdleConns    = 10
	maxOpenConns    = 10
	connMaxIdleTime = 5 * time.Minute
)

// Connection splits traffic between a read replica and the primary.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New dials both pools. The returned cleanup closes them.
func New(cfg *config.Config) (*Connection, func(), error) {
	pg := cfg.DB.Postgres
	wait := time.Duration(pg.RetryWaitTime) * time.Second

	write, err := connect(context.Background(), "write", DSN(pg.Write, DatabaseName(cfg, pg.Write.Name)), pg.MaxRetry, wait)
	if err != nil {
		return nil, nil, err
	}

	read, err := connect(context.Background(), "read", DSN(pg.Read, DatabaseName(cfg, pg.Read.Name)), pg.MaxRetry, wait)
	if err != nil {
		_ = write.Close()

		return nil, nil, err
	}

	conn := &Connection{Read: read, Write: write}

	return conn, conn.Close, nil
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	return errors.Join(c.Read.PingContext(ctx), c.Write.PingContext(ctx))
}

func (c *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("pool", name).Msg("Failed closing database pool")
		}
	}
}

// DatabaseName applies the configured prefix, used to isolate test databases.
func DatabaseName(cfg *config.Config, name string) string {
	return cfg.DB.Postgres.Prefix + name
}

// DSN renders a postgres URL for node. Credentials are escaped.
func DSN(node config.PostgresNode, dbName string) string {
	query := url.Values{}
	if node.SSLMode != "" {
		query.Set("sslmode", node.SSLMode)
	}

	if node.Timezone != "" {
		query.Set("timezone", node.Timezone)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(node.Username, node.Password),
		Host:     net.JoinHostPort(node.Host, node.Port),
		Path:     "/" + dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(ctx context.Context, pool, dsn string, maxRetry int, wait time.Duration) (*sqlx.DB, error) {
	var lastErr error

	for attempt := 1; attempt <= max(1, maxRetry); attempt++ {
		db, err := sqlx.ConnectContext(ctx, driverName, dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)
			db.SetConnMaxIdleTime(connMaxIdleTime)

			log.Info().Str("pool", pool).Int("attempt", attempt).Msg("Connected to database")

			return db, nil
		}

		lastErr = err

		log.Warn().Err(err).Str("pool", pool).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(wait)
	}

	return nil, fmt.Errorf("connect %s pool: %w", pool, lastErr)
}
