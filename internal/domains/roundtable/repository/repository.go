package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"careerday/infras/otel"
	"careerday/infras/postgres"
	"careerday/internal/domains/roundtable/model"
	"careerday/shared"
	"careerday/shared/constant"
	gDto "careerday/shared/dto"
	"careerday/shared/logger"
	gRepo "careerday/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	loadsQuery = `SELECT rt.id, rt.name, rt.room, rt.capacity, COUNT(b.id) AS booked
		FROM round_tables rt
		LEFT JOIN round_table_bookings b ON b.round_table_id = rt.id
		WHERE rt.event_id = $1
		GROUP BY rt.id, rt.name, rt.room, rt.capacity
		ORDER BY rt.name`
	setAttendedQuery = `UPDATE round_table_bookings SET attended = $2 WHERE id = $1`
)

type queryer interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type RoundTable interface {
	Insert(ctx context.Context, table model.RoundTable) error
	Find(ctx context.Context, id string) (model.RoundTable, error)
	Loads(ctx context.Context, eventID string) ([]model.TableLoad, error)
	// LoadsTx reads every table of the event with its booking count inside the transaction.
	LoadsTx(ctx context.Context, sqltx *sqlx.Tx, eventID string) ([]model.TableLoad, error)
	FindBookingTx(ctx context.Context, sqltx *sqlx.Tx, eventID, attendee string) (model.Booking, error)
	// InsertBookingTx reports false, without error, when the attendee already sits at that table.
	InsertBookingTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) (bool, error)
	Roster(ctx context.Context, tableID string) ([]model.Booking, error)
	SetAttended(ctx context.Context, bookingID string, attended bool) (bool, error)
	ListByAttendee(ctx context.Context, eventID, attendee string) ([]model.AttendeeTable, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoundTable]
	bookings     gRepo.Repository[model.Booking]
	attendeeView gRepo.Repository[model.AttendeeTable]
	insertQuery  string
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoundTable {
	bookings := gRepo.NewRepository[model.Booking](model.BookingEntity, model.BookingTableName, model.FieldID, db, otel)

	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.RoundTable](model.EntityName, model.TableName, model.FieldID, db, otel),
		bookings:     bookings,
		attendeeView: gRepo.NewRepository[model.AttendeeTable](model.BookingEntity, model.BookingTableName, model.FieldID, db, otel),
		insertQuery:  bookings.InsertQuery("ON CONFLICT (event_id, round_table_id, attendee) DO NOTHING RETURNING id"),
		db:           db,
		otel:         otel,
	}
}

func (r *repositoryImpl) Find(ctx context.Context, id string) (model.RoundTable, error) {
	return r.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) loads(ctx context.Context, q queryer, eventID string) ([]model.TableLoad, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".round_table.loads")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, loadsQuery)

	loads := []model.TableLoad{}

	if err := q.SelectContext(ctx, &loads, loadsQuery, eventID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to load round tables: %w", err)
	}

	return loads, nil
}

func (r *repositoryImpl) Loads(ctx context.Context, eventID string) ([]model.TableLoad, error) {
	return r.loads(ctx, r.db.Read, eventID)
}

func (r *repositoryImpl) LoadsTx(ctx context.Context, sqltx *sqlx.Tx, eventID string) ([]model.TableLoad, error) {
	return r.loads(ctx, sqltx, eventID)
}

func (r *repositoryImpl) FindBookingTx(ctx context.Context, sqltx *sqlx.Tx, eventID, attendee string) (model.Booking, error) {
	filter := shared.FilterEq(model.BookingTableName, model.FieldEventID, eventID, model.FieldAttendee, attendee)

	return r.bookings.GetTx(ctx, sqltx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertBookingTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".round_table.InsertBookingTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, r.insertQuery)

	stmt, err := sqltx.PrepareNamedContext(ctx, r.insertQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare round table booking insert: %w", err)
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

		return false, fmt.Errorf("failed to insert round table booking: %w", err)
	}

	return true, nil
}

func (r *repositoryImpl) Roster(ctx context.Context, tableID string) ([]model.Booking, error) {
	params := gDto.QueryParams{SortBy: model.BookingTableName + "." + model.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	return r.bookings.GetAll(ctx, params, shared.FilterEq(model.BookingTableName, model.FieldRoundTableID, tableID)) //nolint:wrapcheck
}

func (r *repositoryImpl) SetAttended(ctx context.Context, bookingID string, attended bool) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".round_table.SetAttended")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, setAttendedQuery)

	res, err := r.db.Write.ExecContext(ctx, setAttendedQuery, bookingID, attended)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update attendance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *repositoryImpl) ListByAttendee(ctx context.Context, eventID, attendee string) ([]model.AttendeeTable, error) {
	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldName, SortDir: gDto.SortDirAsc}
	filter := shared.FilterEq(model.BookingTableName, model.FieldEventID, eventID, model.FieldAttendee, attendee)

	return r.attendeeView.GetAll(ctx, params, filter) //nolint:wrapcheck
}
