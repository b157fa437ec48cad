package service

import (
	"context"
	"fmt"

	"careerday/infras/otel"
	"careerday/internal/domains/attendee/model"
	"careerday/internal/domains/attendee/model/dto"
	"careerday/internal/domains/attendee/repository"
	"careerday/shared/clock"
	"careerday/shared/constant"
	"careerday/shared/failure"
	"careerday/shared/identity"

	"github.com/rs/zerolog/log"
)

type Attendee interface {
	Get(ctx context.Context, actor identity.Actor) (dto.ProfileResponse, error)
	SetReference(ctx context.Context, actor identity.Actor, req dto.SetReferenceRequest) (dto.ProfileResponse, error)
}

type serviceImpl struct {
	repo  repository.Attendee
	clock clock.Clock
	otel  otel.Otel
}

func New(repo repository.Attendee, clock clock.Clock, otel otel.Otel) Attendee {
	return &serviceImpl{
		repo:  repo,
		clock: clock,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, actor identity.Actor) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".attendee.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if actor.Attendee == constant.Empty {
		return res, failure.Forbidden(identity.ErrNoAttendee.Error()) // nolint:wrapcheck
	}

	profile, err := s.repo.Find(ctx, actor.Attendee.String())
	if err != nil {
		log.Error().Err(err).Msg("failed to get attendee profile")

		return res, fmt.Errorf("failed to get attendee profile: %w", err)
	}

	profile.Attendee = actor.Attendee.String()
	res.FromModel(profile)

	return res, nil
}

func (s *serviceImpl) SetReference(ctx context.Context, actor identity.Actor, req dto.SetReferenceRequest) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".attendee.SetReference")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if actor.Attendee == constant.Empty {
		return res, failure.Forbidden(identity.ErrNoAttendee.Error()) // nolint:wrapcheck
	}

	profile := model.Profile{
		Attendee:   actor.Attendee.String(),
		Reference:  req.Reference,
		ModifiedAt: s.clock.Now(),
	}

	if err = s.repo.Upsert(ctx, profile); err != nil {
		log.Error().Err(err).Msg("failed to save attendee reference")

		return res, fmt.Errorf("failed to save attendee reference: %w", err)
	}

	res.FromModel(profile)

	return res, nil
}
