package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"careerday/infras/otel"
	"careerday/infras/postgres"
	"careerday/internal/domains/notification/model"
	"careerday/shared"
	"careerday/shared/constant"
	gDto "careerday/shared/dto"
	"careerday/shared/logger"
	gRepo "careerday/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	updateMessageQuery = `UPDATE notifications SET message = $2, created_at = $3 WHERE id = $1 AND read_at IS NULL`
	markReadQuery      = `UPDATE notifications SET read_at = $2 WHERE id = $1 AND read_at IS NULL`
)

type Notification interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, notification model.Notification) error
	// FindUnreadTx returns the unread notification sharing key's identity, zero when there is none.
	FindUnreadTx(ctx context.Context, sqltx *sqlx.Tx, key model.Notification) (model.Notification, error)
	UpdateMessageTx(ctx context.Context, sqltx *sqlx.Tx, id, message string, at time.Time) error
	ListUnread(ctx context.Context, eventID, attendee string) ([]model.Notification, error)
	Find(ctx context.Context, id string) (model.Notification, error)
	MarkRead(ctx context.Context, id string, at time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Notification]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Notification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Notification](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func unread(filter gDto.FilterGroup) gDto.FilterGroup {
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldReadAt,
		Operator: gDto.FilterIsNull,
		Table:    model.TableName,
	})

	return filter
}

func (r *repositoryImpl) FindUnreadTx(ctx context.Context, sqltx *sqlx.Tx, key model.Notification) (model.Notification, error) {
	filter := shared.FilterEq(model.TableName,
		model.FieldEventID, key.EventID,
		model.FieldCompanyID, key.CompanyID,
		model.FieldAttendee, key.Attendee,
		model.FieldSlotFrom, key.SlotFrom,
		model.FieldKind, key.Kind,
	)

	return r.GetTx(ctx, sqltx, unread(filter)) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateMessageTx(ctx context.Context, sqltx *sqlx.Tx, id, message string, at time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".notification.UpdateMessageTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, updateMessageQuery)

	if _, err := sqltx.ExecContext(ctx, updateMessageQuery, id, message, at); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update notification: %w", err)
	}

	return nil
}

func (r *repositoryImpl) ListUnread(ctx context.Context, eventID, attendee string) ([]model.Notification, error) {
	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldCreatedAt, SortDir: gDto.SortDirDesc}
	filter := shared.FilterEq(model.TableName, model.FieldEventID, eventID, model.FieldAttendee, attendee)

	return r.GetAll(ctx, params, unread(filter)) //nolint:wrapcheck
}

func (r *repositoryImpl) Find(ctx context.Context, id string) (model.Notification, error) {
	return r.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

// MarkRead stamps read_at once. It reports false when the row was already read.
func (r *repositoryImpl) MarkRead(ctx context.Context, id string, at time.Time) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".notification.MarkRead")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, markReadQuery)

	res, err := r.db.Write.ExecContext(ctx, markReadQuery, id, at)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}
