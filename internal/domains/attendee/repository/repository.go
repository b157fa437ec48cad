package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"careerday/infras/otel"
	"careerday/infras/postgres"
	"careerday/internal/domains/attendee/model"
	"careerday/shared"
	"careerday/shared/constant"
	"careerday/shared/logger"
	gRepo "careerday/shared/repository"

	"github.com/jmoiron/sqlx"
)

const upsertQuery = `INSERT INTO attendee_profiles (attendee, reference, modified_at)
	VALUES (:attendee, :reference, :modified_at)
	ON CONFLICT (attendee) DO UPDATE SET reference = EXCLUDED.reference, modified_at = EXCLUDED.modified_at`

type Attendee interface {
	Find(ctx context.Context, attendee string) (model.Profile, error)
	FindTx(ctx context.Context, sqltx *sqlx.Tx, attendee string) (model.Profile, error)
	Upsert(ctx context.Context, profile model.Profile) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Profile]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Attendee {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Profile](model.EntityName, model.TableName, model.FieldAttendee, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Find(ctx context.Context, attendee string) (model.Profile, error) {
	return r.Get(ctx, shared.FilterEq(model.TableName, model.FieldAttendee, attendee)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindTx(ctx context.Context, sqltx *sqlx.Tx, attendee string) (model.Profile, error) {
	return r.GetTx(ctx, sqltx, shared.FilterEq(model.TableName, model.FieldAttendee, attendee)) //nolint:wrapcheck
}

func (r *repositoryImpl) Upsert(ctx context.Context, profile model.Profile) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".attendee.Upsert")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, upsertQuery)

	if _, err := r.db.Write.NamedExecContext(ctx, upsertQuery, profile); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert attendee profile: %w", err)
	}

	return nil
}
