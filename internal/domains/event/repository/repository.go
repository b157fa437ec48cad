package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"careerday/infras/otel"
	"careerday/infras/postgres"
	"careerday/internal/domains/event/model"
	"careerday/shared"
	"careerday/shared/constant"
	gDto "careerday/shared/dto"
	"careerday/shared/logger"
	gRepo "careerday/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	deactivateAllQuery = `UPDATE events SET is_active = FALSE, modified_at = NOW(), modified_by = $1 WHERE is_active`
	activateQuery      = `UPDATE events SET is_active = TRUE, modified_at = NOW(), modified_by = $1 WHERE id = $2`
	attachQuery        = `INSERT INTO event_companies (event_id, company_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	detachQuery        = `DELETE FROM event_companies WHERE event_id = $1 AND company_id = $2`
	hasCompanyQuery    = `SELECT EXISTS(SELECT 1 FROM event_companies WHERE event_id = $1 AND company_id = $2)`
)

type Event interface {
	Insert(ctx context.Context, model model.Event) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Event, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Event, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Event, error)
	Active(ctx context.Context) (model.Event, error)
	ActiveTx(ctx context.Context, sqltx *sqlx.Tx) (model.Event, error)
	ActivateTx(ctx context.Context, sqltx *sqlx.Tx, id, user string) (bool, error)
	AttachCompany(ctx context.Context, eventID, companyID string) error
	DetachCompany(ctx context.Context, eventID, companyID string) (bool, error)
	HasCompanyTx(ctx context.Context, sqltx *sqlx.Tx, eventID, companyID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Event]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Event {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Event](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func activeFilter() gDto.FilterGroup {
	return shared.FilterEq(model.TableName, model.FieldIsActive, true)
}

func (r *repositoryImpl) Active(ctx context.Context) (model.Event, error) {
	return r.Get(ctx, activeFilter()) //nolint:wrapcheck
}

func (r *repositoryImpl) ActiveTx(ctx context.Context, sqltx *sqlx.Tx) (model.Event, error) {
	return r.GetTx(ctx, sqltx, activeFilter()) //nolint:wrapcheck
}

// ActivateTx makes id the only active event. It reports false when id does not exist.
func (r *repositoryImpl) ActivateTx(ctx context.Context, sqltx *sqlx.Tx, id, user string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.ActivateTx")
	defer scope.End()

	if _, err := sqltx.ExecContext(ctx, deactivateAllQuery, user); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to deactivate events: %w", err)
	}

	res, err := sqltx.ExecContext(ctx, activateQuery, user, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to activate event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

func (r *repositoryImpl) AttachCompany(ctx context.Context, eventID, companyID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.AttachCompany")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, attachQuery)

	if _, err := r.db.Write.ExecContext(ctx, attachQuery, eventID, companyID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to attach company to event: %w", err)
	}

	return nil
}

func (r *repositoryImpl) DetachCompany(ctx context.Context, eventID, companyID string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.DetachCompany")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, detachQuery)

	res, err := r.db.Write.ExecContext(ctx, detachQuery, eventID, companyID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to detach company from event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *repositoryImpl) HasCompanyTx(ctx context.Context, sqltx *sqlx.Tx, eventID, companyID string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.HasCompanyTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, hasCompanyQuery)

	exist := false
	if err := sqltx.GetContext(ctx, &exist, hasCompanyQuery, eventID, companyID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check event company: %w", err)
	}

	return exist, nil
}
