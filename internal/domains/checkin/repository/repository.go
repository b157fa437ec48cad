package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"careerday/infras/otel"
	"careerday/infras/postgres"
	"careerday/internal/domains/checkin/model"
	"careerday/shared"
	"careerday/shared/constant"
	gDto "careerday/shared/dto"
	"careerday/shared/logger"
	gRepo "careerday/shared/repository"

	"github.com/jmoiron/sqlx"
)

const deleteQuery = `DELETE FROM checkins WHERE event_id = $1 AND attendee = $2 RETURNING id`

type Checkin interface {
	// ToggleTx removes the check-in when present, otherwise records it. It reports the resulting state.
	ToggleTx(ctx context.Context, sqltx *sqlx.Tx, checkin model.Checkin) (bool, error)
	Exists(ctx context.Context, eventID, attendee string) (bool, error)
	List(ctx context.Context, eventID string) ([]model.Checkin, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Checkin]
	insertQuery string
	otel        otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Checkin {
	repo := gRepo.NewRepository[model.Checkin](model.EntityName, model.TableName, model.FieldID, db, otel)

	return &repositoryImpl{
		Repository:  repo,
		insertQuery: repo.InsertQuery("ON CONFLICT (event_id, attendee) DO NOTHING"),
		otel:        otel,
	}
}

func (r *repositoryImpl) ToggleTx(ctx context.Context, sqltx *sqlx.Tx, checkin model.Checkin) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".checkin.ToggleTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, deleteQuery)

	var id string

	err := sqltx.GetContext(ctx, &id, deleteQuery, checkin.EventID, checkin.Attendee)
	if err == nil {
		return false, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to delete checkin: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, r.insertQuery)

	if _, err = sqltx.NamedExecContext(ctx, r.insertQuery, checkin); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to insert checkin: %w", err)
	}

	return true, nil
}

func (r *repositoryImpl) Exists(ctx context.Context, eventID, attendee string) (bool, error) {
	return r.Exist(ctx, shared.FilterEq(model.TableName, model.FieldEventID, eventID, model.FieldAttendee, attendee)) //nolint:wrapcheck
}

func (r *repositoryImpl) List(ctx context.Context, eventID string) ([]model.Checkin, error) {
	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	return r.GetAll(ctx, params, shared.FilterEq(model.TableName, model.FieldEventID, eventID)) //nolint:wrapcheck
}
