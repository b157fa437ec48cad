package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"careerday/infras/otel"
	"careerday/infras/postgres"
	"careerday/internal/domains/interview/model"
	"careerday/shared/constant"
	"careerday/shared/logger"

	"github.com/jmoiron/sqlx"
)

const (
	getForUpdateQuery = `SELECT id, booking_id, status, start_time, end_time, created_at, modified_at, created_by, modified_by
		FROM interview_sessions WHERE booking_id = $1 FOR UPDATE`
	upsertQuery = `INSERT INTO interview_sessions
		(id, booking_id, status, start_time, end_time, created_at, modified_at, created_by, modified_by)
		VALUES (:id, :booking_id, :status, :start_time, :end_time, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (booking_id) DO UPDATE SET
			status = EXCLUDED.status,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by`
)

type Session interface {
	// GetForUpdateTx locks the session of bookingID. A missing session returns the zero value.
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (model.Session, error)
	UpsertTx(ctx context.Context, sqltx *sqlx.Tx, session model.Session) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Session {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (model.Session, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".interview.GetForUpdateTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, getForUpdateQuery)

	var session model.Session

	err := sqltx.GetContext(ctx, &session, getForUpdateQuery, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return session, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return session, fmt.Errorf("failed to lock interview session: %w", err)
	}

	return session, nil
}

func (r *repositoryImpl) UpsertTx(ctx context.Context, sqltx *sqlx.Tx, session model.Session) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".interview.UpsertTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, upsertQuery)

	if _, err := sqltx.NamedExecContext(ctx, upsertQuery, session); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to save interview session: %w", err)
	}

	return nil
}
