package service

import (
	"context"
	"fmt"
	"net/http"

	"careerday/config"
	"careerday/infras/otel"
	"careerday/infras/postgres"
	attendeeRepo "careerday/internal/domains/attendee/repository"
	eventRepo "careerday/internal/domains/event/repository"
	"careerday/internal/domains/roundtable/model"
	"careerday/internal/domains/roundtable/model/dto"
	"careerday/internal/domains/roundtable/repository"
	"careerday/shared/clock"
	"careerday/shared/constant"
	"careerday/shared/failure"
	"careerday/shared/identity"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type RoundTable interface {
	Book(ctx context.Context, actor identity.Actor, req dto.BookRoundTableRequest) (dto.BookRoundTableResult, error)
	ListForAttendee(ctx context.Context, actor identity.Actor, eventID, attendee string) ([]dto.AttendeeRoundTable, error)
	List(ctx context.Context, eventID string) (dto.RoundTablesResponse, error)
	Create(ctx context.Context, actor identity.Actor, eventID string, req dto.CreateRoundTableRequest) (dto.RoundTableResponse, error)
	Roster(ctx context.Context, tableID string) ([]dto.RosterEntry, error)
	MarkAttended(ctx context.Context, bookingID string, req dto.MarkAttendedRequest) error
}

type serviceImpl struct {
	repo            repository.RoundTable
	eventRepo       eventRepo.Event
	attendeeRepo    attendeeRepo.Attendee
	tx              postgres.Transactor
	clock           clock.Clock
	otel            otel.Otel
	defaultCapacity int
}

func New(
	repo repository.RoundTable,
	eventRepo eventRepo.Event,
	attendeeRepo attendeeRepo.Attendee,
	tx postgres.Transactor,
	clock clock.Clock,
	cfg *config.Config,
	otel otel.Otel,
) RoundTable {
	return &serviceImpl{
		repo:            repo,
		eventRepo:       eventRepo,
		attendeeRepo:    attendeeRepo,
		tx:              tx,
		clock:           clock,
		otel:            otel,
		defaultCapacity: cfg.RoundTable.DefaultCapacity,
	}
}

// LockKey serializes every round-table admission of one event.
func LockKey(eventID string) string {
	return "roundtable:" + eventID
}

func (s *serviceImpl) Book(ctx context.Context, actor identity.Actor, req dto.BookRoundTableRequest) (res dto.BookRoundTableResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".round_table.Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	attendee, err := actor.OnBehalfOf(req.Attendee)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var txErr error

		res, txErr = s.book(ctx, tx, req, attendee.String())

		return txErr
	})
	if err != nil {
		if failure.GetCode(err) < http.StatusInternalServerError {
			return res, err
		}

		log.Error().Err(err).Str("table_id", req.TableID).Msg("failed to book round table")

		return res, fmt.Errorf("failed to book round table: %w", err)
	}

	scope.SetAttribute("round_table.outcome", string(res.Outcome))

	return res, nil
}

func (s *serviceImpl) book(ctx context.Context, tx *sqlx.Tx, req dto.BookRoundTableRequest, attendee string) (dto.BookRoundTableResult, error) {
	res := dto.BookRoundTableResult{TableID: req.TableID}

	event, err := s.eventRepo.ActiveTx(ctx, tx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if event.ID == constant.Empty || event.ID != req.EventID {
		return res, failure.Declined(failure.ReasonEventNotActive, "event is not open") // nolint:wrapcheck
	}

	if err = s.tx.Lock(ctx, tx, LockKey(req.EventID)); err != nil {
		return res, err //nolint:wrapcheck
	}

	loads, err := s.repo.LoadsTx(ctx, tx, req.EventID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	decision := model.Admit(loads, req.TableID)
	if !decision.Found {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.Phase = decision.Phase
	res.Cap = decision.Cap

	held, err := s.repo.FindBookingTx(ctx, tx, req.EventID, attendee)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if held.ID != constant.Empty {
		res.BookingID = held.ID

		if held.RoundTableID == req.TableID {
			res.Outcome = model.OutcomeAlreadyBooked
			res.Message = "You already hold a seat at this table."

			return res, nil
		}

		res.Outcome = model.OutcomeAlreadyHoldsTable
		res.Message = "You already hold a seat at another round table."

		return res, nil
	}

	if !decision.Admitted {
		res.Outcome = model.OutcomeTableFull
		res.Message = fmt.Sprintf("This table is full for phase %d (%d of %d seats taken).", decision.Phase, decision.Booked, decision.Cap)

		return res, nil
	}

	attendeeRef := req.AttendeeRef
	if attendeeRef == constant.Empty {
		profile, err := s.attendeeRepo.FindTx(ctx, tx, attendee)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		attendeeRef = profile.Reference
	}

	booking := req.ToModel(attendee, attendeeRef, s.clock.Now())

	inserted, err := s.repo.InsertBookingTx(ctx, tx, booking)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !inserted {
		res.Outcome = model.OutcomeAlreadyBooked
		res.Message = "You already hold a seat at this table."

		return res, nil
	}

	res.Outcome = model.OutcomeBooked
	res.BookingID = booking.ID
	res.Message = "Round table booked."

	return res, nil
}

func (s *serviceImpl) ListForAttendee(ctx context.Context, actor identity.Actor, eventID, attendee string) (res []dto.AttendeeRoundTable, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".round_table.ListForAttendee")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	who, err := actor.OnBehalfOf(attendee)
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	tables, err := s.repo.ListByAttendee(ctx, eventID, who.String())
	if err != nil {
		log.Error().Err(err).Msg("failed to list attendee round tables")

		return nil, fmt.Errorf("failed to list attendee round tables: %w", err)
	}

	return dto.FromAttendeeTables(tables), nil
}

func (s *serviceImpl) List(ctx context.Context, eventID string) (res dto.RoundTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".round_table.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	loads, err := s.repo.Loads(ctx, eventID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list round tables")

		return res, fmt.Errorf("failed to list round tables: %w", err)
	}

	return dto.FromLoads(loads), nil
}

func (s *serviceImpl) Create(ctx context.Context, actor identity.Actor, eventID string, req dto.CreateRoundTableRequest) (res dto.RoundTableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".round_table.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	table := req.ToModel(eventID, s.defaultCapacity, s.clock.Now(), actor.Subject)
	if table.Capacity <= 0 {
		return res, failure.BadRequestFromString("capacity must be positive") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, table); err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.Conflict("a round table with this name already exists") // nolint:wrapcheck
		}

		if postgres.IsFkViolation(err) {
			return res, failure.NotFound("event not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create round table")

		return res, fmt.Errorf("failed to create round table: %w", err)
	}

	res.FromModel(table)

	return res, nil
}

func (s *serviceImpl) Roster(ctx context.Context, tableID string) (res []dto.RosterEntry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".round_table.Roster")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	table, err := s.repo.Find(ctx, tableID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get round table")

		return nil, fmt.Errorf("failed to get round table: %w", err)
	}

	if table.ID == constant.Empty {
		return nil, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	bookings, err := s.repo.Roster(ctx, tableID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get round table roster")

		return nil, fmt.Errorf("failed to get round table roster: %w", err)
	}

	return dto.FromRoster(bookings), nil
}

func (s *serviceImpl) MarkAttended(ctx context.Context, bookingID string, req dto.MarkAttendedRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".round_table.MarkAttended")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	updated, err := s.repo.SetAttended(ctx, bookingID, req.Attended)
	if err != nil {
		log.Error().Err(err).Msg("failed to update attendance")

		return fmt.Errorf("failed to update attendance: %w", err)
	}

	if !updated {
		return failure.NotFound(model.BookingEntity) // nolint:wrapcheck
	}

	return nil
}
