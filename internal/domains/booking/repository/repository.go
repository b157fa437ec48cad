package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"careerday/infras/otel"
	"careerday/infras/postgres"
	"careerday/internal/domains/booking/model"
	"careerday/shared"
	"careerday/shared/constant"
	gDto "careerday/shared/dto"
	"careerday/shared/logger"
	gRepo "careerday/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	getForUpdateQuery = `SELECT id, event_id, company_id, attendee, slot, reference_link, attendee_ref, cancelled_at,
		created_at, modified_at, created_by, modified_by
		FROM bookings WHERE id = $1 FOR UPDATE`
	cancelQuery = `UPDATE bookings SET cancelled_at = $2, modified_at = $2, modified_by = $3
		WHERE id = $1 AND cancelled_at IS NULL`
)

var bySlot = gDto.QueryParams{SortBy: model.TableName + "." + model.FieldSlot, SortDir: gDto.SortDirAsc}

type Booking interface {
	ListLiveByAttendeeTx(ctx context.Context, sqltx *sqlx.Tx, eventID, attendee string) ([]model.Booking, error)
	GetLiveBySlotTx(ctx context.Context, sqltx *sqlx.Tx, eventID, companyID, slot string) (model.Booking, error)
	InsertIfFreeTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) (bool, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Booking, error)
	CancelTx(ctx context.Context, sqltx *sqlx.Tx, id string, at time.Time, user string) error
	CurrentTx(ctx context.Context, sqltx *sqlx.Tx, eventID, companyID string) (model.CompanyBooking, error)
	ListByAttendee(ctx context.Context, eventID, attendee string) ([]model.AttendeeBooking, error)
	ListByCompany(ctx context.Context, eventID, companyID string) ([]model.CompanyBooking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	attendeeView gRepo.Repository[model.AttendeeBooking]
	companyView  gRepo.Repository[model.CompanyBooking]
	insertQuery  string
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	repo := gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel)

	return &repositoryImpl{
		Repository:   repo,
		attendeeView: gRepo.NewRepository[model.AttendeeBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
		companyView:  gRepo.NewRepository[model.CompanyBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
		insertQuery:  repo.InsertQuery("ON CONFLICT (event_id, company_id, slot) WHERE cancelled_at IS NULL DO NOTHING RETURNING id"),
		db:           db,
		otel:         otel,
	}
}

func liveFilter(pairs ...any) gDto.FilterGroup {
	filter := shared.FilterEq(model.TableName, pairs...)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldCancelledAt,
		Operator: gDto.FilterIsNull,
		Table:    model.TableName,
	})

	return filter
}

func (r *repositoryImpl) ListLiveByAttendeeTx(ctx context.Context, sqltx *sqlx.Tx, eventID, attendee string) ([]model.Booking, error) {
	return r.GetAllTx(ctx, sqltx, bySlot, liveFilter(model.FieldEventID, eventID, model.FieldAttendee, attendee)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetLiveBySlotTx(ctx context.Context, sqltx *sqlx.Tx, eventID, companyID, slot string) (model.Booking, error) {
	filter := liveFilter(model.FieldEventID, eventID, model.FieldCompanyID, companyID, model.FieldSlot, slot)

	return r.GetTx(ctx, sqltx, filter) //nolint:wrapcheck
}

// InsertIfFreeTx inserts booking unless a live booking already holds its company slot.
// It reports false, without error, when the slot was taken.
func (r *repositoryImpl) InsertIfFreeTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertIfFreeTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, r.insertQuery)

	stmt, err := sqltx.PrepareNamedContext(ctx, r.insertQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare booking insert: %w", err)
	}
	defer stmt.Close()

	var id string

	err = stmt.GetContext(ctx, &id, booking)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to insert booking: %w", err)
	}

	return true, nil
}

// GetForUpdateTx locks the booking row for the rest of the transaction.
func (r *repositoryImpl) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetForUpdateTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, getForUpdateQuery)

	var booking model.Booking

	err := sqltx.GetContext(ctx, &booking, getForUpdateQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return booking, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	return booking, nil
}

func (r *repositoryImpl) CancelTx(ctx context.Context, sqltx *sqlx.Tx, id string, at time.Time, user string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CancelTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, cancelQuery)

	if _, err := sqltx.ExecContext(ctx, cancelQuery, id, at, user); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	return nil
}

// CurrentTx returns the first live booking, in slot order, whose session has not reached a terminal state.
func (r *repositoryImpl) CurrentTx(ctx context.Context, sqltx *sqlx.Tx, eventID, companyID string) (model.CompanyBooking, error) {
	filter := liveFilter(model.FieldEventID, eventID, model.FieldCompanyID, companyID)
	filter.Filters = append(filter.Filters, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterIsNull, Table: model.SessionTableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorIn, Table: model.SessionTableName, Value: []string{"pending", "active"}},
		},
	})

	params := bySlot
	params.Limit = 1

	bookings, err := r.companyView.GetAllTx(ctx, sqltx, params, filter)
	if err != nil {
		return model.CompanyBooking{}, err //nolint:wrapcheck
	}

	if len(bookings) == 0 {
		return model.CompanyBooking{}, nil
	}

	return bookings[0], nil
}

func (r *repositoryImpl) ListByAttendee(ctx context.Context, eventID, attendee string) ([]model.AttendeeBooking, error) {
	return r.attendeeView.GetAll(ctx, bySlot, liveFilter(model.FieldEventID, eventID, model.FieldAttendee, attendee)) //nolint:wrapcheck
}

func (r *repositoryImpl) ListByCompany(ctx context.Context, eventID, companyID string) ([]model.CompanyBooking, error) {
	return r.companyView.GetAll(ctx, bySlot, liveFilter(model.FieldEventID, eventID, model.FieldCompanyID, companyID)) //nolint:wrapcheck
}
