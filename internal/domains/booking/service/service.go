package service

import (
	"context"
	"fmt"
	"time"

	"careerday/config"
	"careerday/infras/otel"
	"careerday/infras/postgres"
	attendeeRepo "careerday/internal/domains/attendee/repository"
	"careerday/internal/domains/booking/model"
	"careerday/internal/domains/booking/model/dto"
	"careerday/internal/domains/booking/repository"
	eventModel "careerday/internal/domains/event/model"
	eventRepo "careerday/internal/domains/event/repository"
	"careerday/internal/schedule"
	"careerday/shared/clock"
	"careerday/shared/constant"
	"careerday/shared/failure"
	"careerday/shared/identity"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Book(ctx context.Context, actor identity.Actor, req dto.BookRequest) (dto.BookResult, error)
	Cancel(ctx context.Context, actor identity.Actor, req dto.CancelRequest) error
	ListForAttendee(ctx context.Context, actor identity.Actor, eventID, attendee string) ([]dto.AttendeeBookingResponse, error)
	ListForCompany(ctx context.Context, actor identity.Actor, eventID, companyID string) ([]dto.CompanyBookingResponse, error)
	Availability(ctx context.Context, actor identity.Actor, eventID, companyID, attendee string) ([]dto.SlotAvailability, error)
}

type serviceImpl struct {
	repo         repository.Booking
	eventRepo    eventRepo.Event
	attendeeRepo attendeeRepo.Attendee
	tx           postgres.Transactor
	calendar     *schedule.Calendar
	clock        clock.Clock
	otel         otel.Otel
	cancelBuffer time.Duration
	cutover      *time.Time
}

func New(
	repo repository.Booking,
	eventRepo eventRepo.Event,
	attendeeRepo attendeeRepo.Attendee,
	tx postgres.Transactor,
	calendar *schedule.Calendar,
	clock clock.Clock,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	svc := &serviceImpl{
		repo:         repo,
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
		tx:           tx,
		calendar:     calendar,
		clock:        clock,
		otel:         otel,
		cancelBuffer: time.Duration(cfg.Schedule.CancelBufferMinutes) * time.Minute,
	}

	if cfg.Schedule.CancelCutover != constant.Empty {
		cutover, err := time.Parse(time.RFC3339, cfg.Schedule.CancelCutover)
		if err != nil {
			log.Warn().Err(err).Str("cutover", cfg.Schedule.CancelCutover).Msg("ignoring unparsable cancellation cutover")
		} else {
			svc.cutover = &cutover
		}
	}

	return svc
}

// LockKey is the advisory lock guarding the slots one attendee holds in one event.
func LockKey(eventID, attendee string) string {
	return "booking:" + eventID + ":" + attendee
}

func (s *serviceImpl) Book(ctx context.Context, actor identity.Actor, req dto.BookRequest) (res dto.BookResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	attendee, err := actor.OnBehalfOf(req.Attendee)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.calendar.Validate(req.Slot); err != nil {
		return res, failure.BadRequestWithReason(failure.ReasonInvalidSlot, err.Error()) // nolint:wrapcheck
	}

	now := s.clock.Now()

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var txErr error

		res, txErr = s.book(ctx, tx, req, attendee.String(), actor.Subject, now)

		return txErr
	})
	if err != nil {
		if failure.GetCode(err) < 500 {
			return res, err
		}

		log.Error().Err(err).Str("event_id", req.EventID).Str("slot", req.Slot).Msg("failed to book slot")

		return res, fmt.Errorf("failed to book slot: %w", err)
	}

	scope.SetAttribute("booking.outcome", string(res.Outcome))

	return res, nil
}

// book decides and writes inside one transaction. It may run several times.
func (s *serviceImpl) book(ctx context.Context, tx *sqlx.Tx, req dto.BookRequest, attendee, user string, now time.Time) (dto.BookResult, error) {
	res := dto.BookResult{Slot: req.Slot, CompanyID: req.CompanyID}

	if _, err := s.requireActiveEvent(ctx, tx, req.EventID); err != nil {
		return res, err
	}

	attached, err := s.eventRepo.HasCompanyTx(ctx, tx, req.EventID, req.CompanyID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !attached {
		return res, failure.NotFound("company is not part of this event") // nolint:wrapcheck
	}

	if err = s.tx.Lock(ctx, tx, LockKey(req.EventID, attendee)); err != nil {
		return res, err //nolint:wrapcheck
	}

	held, err := s.repo.ListLiveByAttendeeTx(ctx, tx, req.EventID, attendee)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	for _, b := range held {
		if b.CompanyID == req.CompanyID && b.Slot == req.Slot {
			res.Outcome = model.OutcomeAlreadyBooked
			res.BookingID = b.ID
			res.Message = "You already hold this slot."

			return res, nil
		}
	}

	occupant, err := s.repo.GetLiveBySlotTx(ctx, tx, req.EventID, req.CompanyID, req.Slot)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if occupant.Live() {
		res.Outcome = model.OutcomeSlotTaken
		res.Message = fmt.Sprintf("Slot %s is already taken.", req.Slot)

		return res, nil
	}

	heldSlots := make([]string, len(held))
	for i, b := range held {
		heldSlots[i] = b.Slot
	}

	conflict, blocked, err := s.calendar.IsBlocked(req.Slot, heldSlots)
	if err != nil {
		return res, failure.BadRequestWithReason(failure.ReasonInvalidSlot, err.Error()) // nolint:wrapcheck
	}

	if blocked {
		res.Outcome = model.OutcomeConflict
		res.ConflictSlot = conflict
		res.Message = fmt.Sprintf("Slot %s is too close to your booking at %s.", req.Slot, conflict)

		for _, b := range held {
			if b.Slot == conflict {
				res.ConflictCompanyID = b.CompanyID

				break
			}
		}

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

	booking := req.ToModel(attendee, attendeeRef, user, now)

	inserted, err := s.repo.InsertIfFreeTx(ctx, tx, booking)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !inserted {
		res.Outcome = model.OutcomeSlotTaken
		res.Message = fmt.Sprintf("Slot %s is already taken.", req.Slot)

		return res, nil
	}

	res.Outcome = model.OutcomeBooked
	res.BookingID = booking.ID
	res.Message = fmt.Sprintf("Booking confirmed for %s.", req.Slot)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, actor identity.Actor, req dto.CancelRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	attendee, err := actor.OnBehalfOf(req.Attendee)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.calendar.Validate(req.Slot); err != nil {
		return failure.BadRequestWithReason(failure.ReasonInvalidSlot, err.Error()) // nolint:wrapcheck
	}

	now := s.clock.Now()

	if s.cutover != nil && !now.Before(*s.cutover) {
		return failure.Declined(failure.ReasonCancellationClosed, "cancellations are closed") // nolint:wrapcheck
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		event, txErr := s.requireActiveEvent(ctx, tx, req.EventID)
		if txErr != nil {
			return txErr
		}

		if txErr = s.tx.Lock(ctx, tx, LockKey(req.EventID, attendee.String())); txErr != nil {
			return txErr //nolint:wrapcheck
		}

		booking, txErr := s.repo.GetLiveBySlotTx(ctx, tx, req.EventID, req.CompanyID, req.Slot)
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}

		if !booking.Live() || booking.Attendee != attendee.String() {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		start, txErr := s.calendar.Start(event.Day(now.Location()), booking.Slot)
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}

		if start.Sub(now) <= s.cancelBuffer {
			return failure.Declined(failure.ReasonTooLateToCancel, //nolint:wrapcheck
				fmt.Sprintf("bookings can only be cancelled more than %d minutes before the slot", int(s.cancelBuffer/time.Minute)))
		}

		return s.repo.CancelTx(ctx, tx, booking.ID, now, actor.Subject) //nolint:wrapcheck
	})
	if err != nil {
		if failure.GetCode(err) < 500 {
			return err
		}

		log.Error().Err(err).Str("event_id", req.EventID).Str("slot", req.Slot).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) ListForAttendee(ctx context.Context, actor identity.Actor, eventID, attendee string) (res []dto.AttendeeBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListForAttendee")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	who, err := actor.OnBehalfOf(attendee)
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	bookings, err := s.repo.ListByAttendee(ctx, eventID, who.String())
	if err != nil {
		log.Error().Err(err).Msg("failed to list attendee bookings")

		return nil, fmt.Errorf("failed to list attendee bookings: %w", err)
	}

	return dto.FromAttendeeModels(bookings), nil
}

func (s *serviceImpl) ListForCompany(ctx context.Context, actor identity.Actor, eventID, companyID string) (res []dto.CompanyBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListForCompany")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !actor.CanOperateCompany(companyID) {
		return nil, failure.ResourceRestrictedError
	}

	bookings, err := s.repo.ListByCompany(ctx, eventID, companyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list company bookings")

		return nil, fmt.Errorf("failed to list company bookings: %w", err)
	}

	return dto.FromCompanyModels(bookings), nil
}

func (s *serviceImpl) Availability(ctx context.Context, actor identity.Actor, eventID, companyID, attendee string) (res []dto.SlotAvailability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	who, err := actor.OnBehalfOf(attendee)
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	companyBookings, err := s.repo.ListByCompany(ctx, eventID, companyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list company bookings")

		return nil, fmt.Errorf("failed to list company bookings: %w", err)
	}

	mine, err := s.repo.ListByAttendee(ctx, eventID, who.String())
	if err != nil {
		log.Error().Err(err).Msg("failed to list attendee bookings")

		return nil, fmt.Errorf("failed to list attendee bookings: %w", err)
	}

	holders := make(map[string]string, len(companyBookings))
	for _, b := range companyBookings {
		holders[b.Slot] = b.Attendee
	}

	mySlots := make([]string, len(mine))
	for i, b := range mine {
		mySlots[i] = b.Slot
	}

	slots := s.calendar.Slots()
	res = make([]dto.SlotAvailability, len(slots))

	for i, slot := range slots {
		res[i] = dto.SlotAvailability{Slot: slot, State: model.SlotAvailable}

		if holder, ok := holders[slot]; ok {
			res[i].State = model.SlotTaken
			if holder == who.String() {
				res[i].State = model.SlotMine
			}

			continue
		}

		if _, blocked, _ := s.calendar.IsBlocked(slot, mySlots); blocked {
			res[i].State = model.SlotBlocked
		}
	}

	return res, nil
}

func (s *serviceImpl) requireActiveEvent(ctx context.Context, tx *sqlx.Tx, eventID string) (eventModel.Event, error) {
	event, err := s.eventRepo.ActiveTx(ctx, tx)
	if err != nil {
		return event, err //nolint:wrapcheck
	}

	if event.ID == constant.Empty || event.ID != eventID {
		return event, failure.Declined(failure.ReasonEventNotActive, "event is not open") // nolint:wrapcheck
	}

	return event, nil
}
