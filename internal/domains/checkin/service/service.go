package service

import (
	"context"
	"fmt"
	"net/http"

	"careerday/infras/otel"
	"careerday/infras/postgres"
	"careerday/internal/domains/checkin/model"
	"careerday/internal/domains/checkin/model/dto"
	"careerday/internal/domains/checkin/repository"
	eventRepo "careerday/internal/domains/event/repository"
	"careerday/shared/clock"
	"careerday/shared/constant"
	"careerday/shared/failure"
	"careerday/shared/identity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Checkin interface {
	Toggle(ctx context.Context, actor identity.Actor, eventID string, req dto.ToggleRequest) (dto.ToggleResponse, error)
	IsCheckedIn(ctx context.Context, actor identity.Actor, eventID, attendee string) (dto.StatusResponse, error)
	List(ctx context.Context, eventID string) ([]dto.CheckinResponse, error)
}

type serviceImpl struct {
	repo      repository.Checkin
	eventRepo eventRepo.Event
	tx        postgres.Transactor
	clock     clock.Clock
	otel      otel.Otel
}

func New(repo repository.Checkin, eventRepo eventRepo.Event, tx postgres.Transactor, clock clock.Clock, otel otel.Otel) Checkin {
	return &serviceImpl{
		repo:      repo,
		eventRepo: eventRepo,
		tx:        tx,
		clock:     clock,
		otel:      otel,
	}
}

func (s *serviceImpl) Toggle(ctx context.Context, actor identity.Actor, eventID string, req dto.ToggleRequest) (res dto.ToggleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.Toggle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	attendee, err := actor.OnBehalfOf(req.Attendee)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	checkin := model.Checkin{
		ID:        uuid.NewString(),
		EventID:   eventID,
		Attendee:  attendee.String(),
		CreatedAt: s.clock.Now(),
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		event, err := s.eventRepo.ActiveTx(ctx, tx)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if event.ID == constant.Empty || event.ID != eventID {
			return failure.Declined(failure.ReasonEventNotActive, "event is not open") // nolint:wrapcheck
		}

		checkedIn, err := s.repo.ToggleTx(ctx, tx, checkin)
		if err != nil {
			return err //nolint:wrapcheck
		}

		res.CheckedIn = checkedIn

		return nil
	})
	if err != nil {
		if failure.GetCode(err) < http.StatusInternalServerError {
			return res, err
		}

		log.Error().Err(err).Str("event_id", eventID).Msg("failed to toggle checkin")

		return res, fmt.Errorf("failed to toggle checkin: %w", err)
	}

	res.Attendee = checkin.Attendee

	return res, nil
}

func (s *serviceImpl) IsCheckedIn(ctx context.Context, actor identity.Actor, eventID, attendee string) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.IsCheckedIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	who, err := actor.OnBehalfOf(attendee)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	exists, err := s.repo.Exists(ctx, eventID, who.String())
	if err != nil {
		log.Error().Err(err).Msg("failed to read checkin")

		return res, fmt.Errorf("failed to read checkin: %w", err)
	}

	res.Attendee = who.String()
	res.CheckedIn = exists

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, eventID string) (res []dto.CheckinResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkins, err := s.repo.List(ctx, eventID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list checkins")

		return nil, fmt.Errorf("failed to list checkins: %w", err)
	}

	return dto.FromModels(checkins), nil
}
