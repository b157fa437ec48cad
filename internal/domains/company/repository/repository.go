package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"careerday/infras/otel"
	"careerday/infras/postgres"
	"careerday/internal/domains/company/model"
	"careerday/shared/constant"
	gDto "careerday/shared/dto"
	"careerday/shared/logger"
	gRepo "careerday/shared/repository"
)

const (
	listByEventQuery = `SELECT c.id, c.name, c.slug, c.description, c.created_at, c.modified_at, c.created_by, c.modified_by
		FROM companies c
		JOIN event_companies ec ON ec.company_id = c.id
		WHERE ec.event_id = $1
		ORDER BY c.name`
)

type Company interface {
	Insert(ctx context.Context, model model.Company) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Company, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Company, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListByEvent(ctx context.Context, eventID string) ([]model.Company, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Company]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Company {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Company](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) ListByEvent(ctx context.Context, eventID string) ([]model.Company, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".company.ListByEvent")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, listByEventQuery)

	companies := []model.Company{}
	if err := r.db.Read.SelectContext(ctx, &companies, listByEventQuery, eventID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list companies by event: %w", err)
	}

	return companies, nil
}
