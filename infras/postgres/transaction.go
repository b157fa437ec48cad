package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"careerday/config"
	"careerday/infras/otel"
	"careerday/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	txRetryBaseWait = 10 * time.Millisecond
	lockQuery       = "SELECT pg_advisory_xact_lock(hashtext($1))"
)

var ErrTxRetriesExhausted = errors.New("transaction retries exhausted")

// TxFunc is the body of a transaction. It may run more than once when the
// database reports a serialization failure, so it must re-read everything it decides on.
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

type Transactor interface {
	WithTransaction(ctx context.Context, fn TxFunc) error
	// Lock takes a transaction scoped advisory lock on key.
	Lock(ctx context.Context, tx *sqlx.Tx, key string) error
}

type transactorImpl struct {
	db       *Connection
	otel     otel.Otel
	maxRetry int
}

func NewTransactor(db *Connection, cfg *config.Config, otl otel.Otel) Transactor {
	maxRetry := cfg.DB.Postgres.TxMaxRetry
	if maxRetry <= 0 {
		maxRetry = 1
	}

	return &transactorImpl{
		db:       db,
		otel:     otl,
		maxRetry: maxRetry,
	}
}

func (t *transactorImpl) WithTransaction(ctx context.Context, fn TxFunc) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelTransactionScopeName, constant.OtelTransactionScopeName+".WithTransaction")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for attempt := 1; attempt <= t.maxRetry; attempt++ {
		err = t.run(ctx, fn)
		if err == nil {
			scope.SetAttribute("tx.attempts", attempt)

			return nil
		}

		if !IsRetryable(err) {
			return err
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("transaction conflict, retrying")

		select {
		case <-ctx.Done():
			return fmt.Errorf("transaction aborted: %w", ctx.Err())
		case <-time.After(time.Duration(attempt) * txRetryBaseWait):
		}
	}

	log.Error().Err(err).Int("max_retry", t.maxRetry).Msg("transaction retries exhausted")

	return fmt.Errorf("%w: %w", ErrTxRetriesExhausted, err)
}

func (t *transactorImpl) run(ctx context.Context, fn TxFunc) (err error) {
	tx, err := t.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (t *transactorImpl) Lock(ctx context.Context, tx *sqlx.Tx, key string) error {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelTransactionScopeName, constant.OtelTransactionScopeName+".Lock")
	defer scope.End()

	scope.SetAttribute("lock.key", key)

	if _, err := tx.ExecContext(ctx, lockQuery, key); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	return nil
}

// IsRetryable reports whether err is a serialization failure or deadlock.
func IsRetryable(err error) bool {
	return hasCode(err, constant.PqErrorCodeSerializationFailure) || hasCode(err, constant.PqErrorCodeDeadlockDetected)
}

func IsUniqueViolation(err error) bool {
	return hasCode(err, constant.PqErrorCodeUniqueViolation)
}

func IsFkViolation(err error) bool {
	return hasCode(err, constant.PqErrorCodeFkViolation)
}

func hasCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}

	return false
}
