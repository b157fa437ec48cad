package service

import (
	"context"
	"fmt"

	"careerday/infras/otel"
	"careerday/infras/postgres"
	bookingDto "careerday/internal/domains/booking/model/dto"
	bookingRepo "careerday/internal/domains/booking/repository"
	eventModel "careerday/internal/domains/event/model"
	eventRepo "careerday/internal/domains/event/repository"
	"careerday/internal/domains/interview/model"
	"careerday/internal/domains/interview/model/dto"
	"careerday/internal/domains/interview/repository"
	notificationModel "careerday/internal/domains/notification/model"
	notificationService "careerday/internal/domains/notification/service"
	"careerday/shared"
	"careerday/shared/clock"
	"careerday/shared/constant"
	"careerday/shared/failure"
	"careerday/shared/identity"
	gModel "careerday/shared/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Interview interface {
	Start(ctx context.Context, op identity.Actor, bookingID string) (dto.TransitionResponse, error)
	End(ctx context.Context, op identity.Actor, bookingID string) (dto.TransitionResponse, error)
	Cancel(ctx context.Context, op identity.Actor, bookingID string) (dto.TransitionResponse, error)
	NoShow(ctx context.Context, op identity.Actor, bookingID string) (dto.TransitionResponse, error)
	Current(ctx context.Context, op identity.Actor, eventID, companyID string) (dto.CurrentInterview, error)
}

type serviceImpl struct {
	repo        repository.Session
	bookingRepo bookingRepo.Booking
	eventRepo   eventRepo.Event
	notifier    notificationService.Notification
	tx          postgres.Transactor
	clock       clock.Clock
	otel        otel.Otel
}

func New(
	repo repository.Session,
	bookingRepo bookingRepo.Booking,
	eventRepo eventRepo.Event,
	notifier notificationService.Notification,
	tx postgres.Transactor,
	clock clock.Clock,
	otel otel.Otel,
) Interview {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		notifier:    notifier,
		tx:          tx,
		clock:       clock,
		otel:        otel,
	}
}

func (s *serviceImpl) Start(ctx context.Context, op identity.Actor, bookingID string) (dto.TransitionResponse, error) {
	return s.transition(ctx, op, bookingID, model.ActionStart)
}

func (s *serviceImpl) End(ctx context.Context, op identity.Actor, bookingID string) (dto.TransitionResponse, error) {
	return s.transition(ctx, op, bookingID, model.ActionEnd)
}

func (s *serviceImpl) Cancel(ctx context.Context, op identity.Actor, bookingID string) (dto.TransitionResponse, error) {
	return s.transition(ctx, op, bookingID, model.ActionCancel)
}

func (s *serviceImpl) NoShow(ctx context.Context, op identity.Actor, bookingID string) (dto.TransitionResponse, error) {
	return s.transition(ctx, op, bookingID, model.ActionNoShow)
}

func (s *serviceImpl) transition(ctx context.Context, op identity.Actor, bookingID string, action model.Action) (res dto.TransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".interview."+string(action))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var created []notificationModel.Notification

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		created = nil
		res = dto.TransitionResponse{BookingID: bookingID}

		booking, txErr := s.bookingRepo.GetForUpdateTx(ctx, tx, bookingID)
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}

		if !booking.Live() {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if !op.CanOperateCompany(booking.CompanyID) {
			return failure.ResourceRestrictedError
		}

		session, txErr := s.repo.GetForUpdateTx(ctx, tx, bookingID)
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}

		next, applied := model.Transition(session.Status, action)
		if !applied {
			if session.Status == constant.Empty {
				session.Status = model.StatusPending
			}

			res.FromModel(session)
			res.BookingID = bookingID

			return nil
		}

		now := s.clock.Now()

		if session.ID == constant.Empty {
			session = model.Session{
				ID:        uuid.NewString(),
				BookingID: bookingID,
				Metadata:  gModel.NewMetadata(now, op.Subject),
			}
		}

		session.Apply(action, next, now, op.Subject)

		if txErr = s.repo.UpsertTx(ctx, tx, session); txErr != nil {
			return txErr //nolint:wrapcheck
		}

		res.FromModel(session)
		res.Applied = true

		switch action {
		case model.ActionEnd:
			event, txErr := s.eventRepo.GetTx(ctx, tx, shared.FilterByID(booking.EventID, eventModel.FieldID, eventModel.TableName))
			if txErr != nil {
				return txErr //nolint:wrapcheck
			}

			created, txErr = s.notifier.NotifyEarlyFinish(ctx, tx, event.Day(now.Location()), booking, now)
			if txErr != nil {
				return txErr //nolint:wrapcheck
			}
		case model.ActionCancel:
			created, txErr = s.notifier.NotifyCancelledPrev(ctx, tx, booking)
			if txErr != nil {
				return txErr //nolint:wrapcheck
			}
		case model.ActionStart, model.ActionNoShow:
		}

		return nil
	})
	if err != nil {
		if failure.GetCode(err) < 500 {
			return res, err
		}

		log.Error().Err(err).Str("booking_id", bookingID).Str("action", string(action)).Msg("failed to apply interview action")

		return res, fmt.Errorf("failed to apply interview action: %w", err)
	}

	res.Notified = len(created)
	s.notifier.Publish(ctx, created...)

	return res, nil
}

// Current returns the first live booking in slot order whose interview has not finished.
// Each call also re-evaluates whether the next attendee should hear that it is running late.
func (s *serviceImpl) Current(ctx context.Context, op identity.Actor, eventID, companyID string) (res dto.CurrentInterview, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".interview.Current")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !op.CanOperateCompany(companyID) {
		return res, failure.ResourceRestrictedError
	}

	var created []notificationModel.Notification

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		created = nil
		res = dto.CurrentInterview{}

		current, txErr := s.bookingRepo.CurrentTx(ctx, tx, eventID, companyID)
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}

		if current.ID == constant.Empty {
			return nil
		}

		booking := &bookingDto.CompanyBookingResponse{}
		booking.FromModel(current)
		res.Booking = booking

		event, txErr := s.eventRepo.GetTx(ctx, tx, shared.FilterByID(eventID, eventModel.FieldID, eventModel.TableName))
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}

		if event.ID == constant.Empty {
			return failure.NotFound("event not found") // nolint:wrapcheck
		}

		now := s.clock.Now()

		created, txErr = s.notifier.UpsertRunningLate(ctx, tx, event.Day(now.Location()), current.Booking(), now)

		return txErr //nolint:wrapcheck
	})
	if err != nil {
		if failure.GetCode(err) < 500 {
			return res, err
		}

		log.Error().Err(err).Str("company_id", companyID).Msg("failed to get current interview")

		return res, fmt.Errorf("failed to get current interview: %w", err)
	}

	res.Notified = len(created)
	s.notifier.Publish(ctx, created...)

	return res, nil
}
