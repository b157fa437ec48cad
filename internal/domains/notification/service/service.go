package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"careerday/config"
	"careerday/infras/otel"
	"careerday/infras/postgres"
	bookingModel "careerday/internal/domains/booking/model"
	bookingRepo "careerday/internal/domains/booking/repository"
	"careerday/internal/domains/notification/model"
	"careerday/internal/domains/notification/model/dto"
	"careerday/internal/domains/notification/repository"
	"careerday/internal/schedule"
	"careerday/shared/clock"
	"careerday/shared/constant"
	"careerday/shared/failure"
	"careerday/shared/identity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	earlyFinishMessage   = "The previous slot (%s) ended early. You may come now."
	cancelledPrevMessage = "The previous slot (%s) was cancelled. You may come now."
	runningLateMessage   = "The previous slot (%s) is running %d min late."
)

// Sink receives committed notifications. Delivery is best effort.
type Sink interface {
	Publish(ctx context.Context, key string, value any) error
}

// NopSink drops everything.
type NopSink struct{}

func (NopSink) Publish(context.Context, string, any) error {
	return nil
}

type Notification interface {
	NotifyEarlyFinish(ctx context.Context, tx *sqlx.Tx, day time.Time, booking bookingModel.Booking, endedAt time.Time) ([]model.Notification, error)
	NotifyCancelledPrev(ctx context.Context, tx *sqlx.Tx, booking bookingModel.Booking) ([]model.Notification, error)
	UpsertRunningLate(ctx context.Context, tx *sqlx.Tx, day time.Time, booking bookingModel.Booking, now time.Time) ([]model.Notification, error)
	Unread(ctx context.Context, actor identity.Actor, eventID, attendee string) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, actor identity.Actor, id string) error
	Publish(ctx context.Context, notifications ...model.Notification)
}

type serviceImpl struct {
	repo        repository.Notification
	bookingRepo bookingRepo.Booking
	tx          postgres.Transactor
	calendar    *schedule.Calendar
	sink        Sink
	clock       clock.Clock
	otel        otel.Otel
	cooldown    time.Duration
}

func New(
	repo repository.Notification,
	bookingRepo bookingRepo.Booking,
	tx postgres.Transactor,
	calendar *schedule.Calendar,
	sink Sink,
	clock clock.Clock,
	cfg *config.Config,
	otel otel.Otel,
) Notification {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		tx:          tx,
		calendar:    calendar,
		sink:        sink,
		clock:       clock,
		otel:        otel,
		cooldown:    time.Duration(cfg.Schedule.RunningLateCooldownSeconds) * time.Second,
	}
}

// nextOccupant returns the live booking of the slot that follows booking at the same company.
func (s *serviceImpl) nextOccupant(ctx context.Context, tx *sqlx.Tx, booking bookingModel.Booking) (bookingModel.Booking, error) {
	next, err := s.calendar.Next(booking.Slot)
	if err != nil {
		return bookingModel.Booking{}, err //nolint:wrapcheck
	}

	return s.bookingRepo.GetLiveBySlotTx(ctx, tx, booking.EventID, booking.CompanyID, next) //nolint:wrapcheck
}

func (s *serviceImpl) notifyNext(
	ctx context.Context,
	tx *sqlx.Tx,
	booking bookingModel.Booking,
	kind model.Kind,
	message string,
) ([]model.Notification, error) {
	next, err := s.nextOccupant(ctx, tx, booking)
	if err != nil {
		return nil, err
	}

	if !next.Live() {
		return nil, nil
	}

	notification := model.Notification{
		ID:        uuid.NewString(),
		EventID:   booking.EventID,
		CompanyID: booking.CompanyID,
		Attendee:  next.Attendee,
		SlotFrom:  booking.Slot,
		Kind:      kind,
		Message:   message,
		CreatedAt: s.clock.Now(),
	}

	if err = s.repo.InsertTx(ctx, tx, notification); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return []model.Notification{notification}, nil
}

func (s *serviceImpl) NotifyEarlyFinish(
	ctx context.Context,
	tx *sqlx.Tx,
	day time.Time,
	booking bookingModel.Booking,
	endedAt time.Time,
) (res []model.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.NotifyEarlyFinish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	slotEnd, err := s.calendar.End(day, booking.Slot)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if !endedAt.Before(slotEnd) {
		return nil, nil
	}

	return s.notifyNext(ctx, tx, booking, model.KindEarlyFinish, fmt.Sprintf(earlyFinishMessage, booking.Slot))
}

func (s *serviceImpl) NotifyCancelledPrev(ctx context.Context, tx *sqlx.Tx, booking bookingModel.Booking) (res []model.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.NotifyCancelledPrev")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.notifyNext(ctx, tx, booking, model.KindCancelledPrev, fmt.Sprintf(cancelledPrevMessage, booking.Slot))
}

// UpsertRunningLate keeps at most one unread running-late notice per slot and next attendee.
// The message is refreshed when the minute count changes or the notice is older than the cooldown.
func (s *serviceImpl) UpsertRunningLate(
	ctx context.Context,
	tx *sqlx.Tx,
	day time.Time,
	booking bookingModel.Booking,
	now time.Time,
) (res []model.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.UpsertRunningLate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	slotEnd, err := s.calendar.End(day, booking.Slot)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if !now.After(slotEnd) {
		return nil, nil
	}

	next, err := s.nextOccupant(ctx, tx, booking)
	if err != nil {
		return nil, err
	}

	if !next.Live() {
		return nil, nil
	}

	minutes := max(1, int(now.Sub(slotEnd)/time.Minute))

	notification := model.Notification{
		EventID:   booking.EventID,
		CompanyID: booking.CompanyID,
		Attendee:  next.Attendee,
		SlotFrom:  booking.Slot,
		Kind:      model.KindRunningLate,
		Message:   fmt.Sprintf(runningLateMessage, booking.Slot, minutes),
		CreatedAt: now,
	}

	if err = s.tx.Lock(ctx, tx, notification.Key()); err != nil {
		return nil, err //nolint:wrapcheck
	}

	existing, err := s.repo.FindUnreadTx(ctx, tx, notification)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if existing.ID == constant.Empty {
		notification.ID = uuid.NewString()

		if err = s.repo.InsertTx(ctx, tx, notification); err != nil {
			return nil, err //nolint:wrapcheck
		}

		return []model.Notification{notification}, nil
	}

	if existing.Message == notification.Message && now.Sub(existing.CreatedAt) < s.cooldown {
		return nil, nil
	}

	if err = s.repo.UpdateMessageTx(ctx, tx, existing.ID, notification.Message, now); err != nil {
		return nil, err //nolint:wrapcheck
	}

	notification.ID = existing.ID

	return []model.Notification{notification}, nil
}

func (s *serviceImpl) Unread(ctx context.Context, actor identity.Actor, eventID, attendee string) (res []dto.NotificationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Unread")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	who, err := actor.OnBehalfOf(attendee)
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	notifications, err := s.repo.ListUnread(ctx, eventID, who.String())
	if err != nil {
		log.Error().Err(err).Msg("failed to list unread notifications")

		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}

	return dto.FromModels(notifications), nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, actor identity.Actor, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.MarkRead")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	notification, err := s.repo.Find(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == constant.Empty {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if !actor.IsOrganizer() && notification.Attendee != actor.Attendee.String() {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if notification.ReadAt != nil {
		return nil
	}

	if _, err = s.repo.MarkRead(ctx, id, s.clock.Now()); err != nil {
		log.Error().Err(err).Msg("failed to mark notification read")

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

// Publish hands notifications to the sink without blocking the caller.
func (s *serviceImpl) Publish(ctx context.Context, notifications ...model.Notification) {
	if len(notifications) == 0 {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		for _, n := range notifications {
			if err := s.sink.Publish(c, n.Attendee, n); err != nil {
				log.Warn().Err(err).Str("notification_id", n.ID).Msg("failed to publish notification")
			}
		}
	}()
}
