package service

import (
	"context"
	"fmt"
	"net/http"

	"careerday/config"
	"careerday/infras/otel"
	"careerday/infras/postgres"
	"careerday/internal/domains/event/model"
	"careerday/internal/domains/event/model/dto"
	"careerday/internal/domains/event/repository"
	"careerday/shared"
	"careerday/shared/cache"
	"careerday/shared/constant"
	gDto "careerday/shared/dto"
	"careerday/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllEvent = "event:gets"
	cacheCountEvent  = "event:count"
)

type Event interface {
	Create(ctx context.Context, req dto.CreateEventRequest) (dto.EventResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetEventsResponse, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	Active(ctx context.Context) (dto.EventResponse, error)
	Activate(ctx context.Context, id string) error
	AttachCompany(ctx context.Context, eventID string, req dto.AttachCompanyRequest) error
	DetachCompany(ctx context.Context, eventID, companyID string) error
}

type serviceImpl struct {
	repo  repository.Event
	tx    postgres.Transactor
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Event, tx postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Event {
	return &serviceImpl{
		repo:  repo,
		tx:    tx,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	event, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, event); err != nil {
		log.Error().Err(err).Msg("failed to create event")

		return res, fmt.Errorf("failed to create event: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.InvalidateCaches(c, s.cache, cacheCountEvent)
	}()

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEvent, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	if req.SortBy == constant.Empty {
		req.SortBy, req.SortDir = model.TableName+"."+model.FieldDate, gDto.SortDirDesc
	}

	events, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get events")

		return res, fmt.Errorf("failed to get events: %w", err)
	}

	res.FromModels(events, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save events to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return res, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		return res, failure.NotFound("event not found") // nolint:wrapcheck
	}

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) Active(ctx context.Context) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Active")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, constant.CachePrefixActiveEvent, &res); err == nil {
		return res, nil
	}

	event, err := s.repo.Active(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active event")

		return res, fmt.Errorf("failed to get active event: %w", err)
	}

	if event.ID == constant.Empty {
		return res, failure.NotFound("no active event") // nolint:wrapcheck
	}

	res.FromModel(event)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, constant.CachePrefixActiveEvent, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save active event to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Activate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Activate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		found, txErr := s.repo.ActivateTx(ctx, tx, id, user)
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}

		if !found {
			return failure.NotFound("event not found") // nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		if failure.GetCode(err) == http.StatusNotFound {
			return err
		}

		log.Error().Err(err).Str("event_id", id).Msg("failed to activate event")

		return fmt.Errorf("failed to activate event: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, constant.CachePrefixActiveEvent); err != nil {
			log.Error().Err(err).Msg("failed to delete active event from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
	}()

	return nil
}

func (s *serviceImpl) AttachCompany(ctx context.Context, eventID string, req dto.AttachCompanyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.AttachCompany")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.AttachCompany(ctx, eventID, req.CompanyID); err != nil {
		if postgres.IsFkViolation(err) {
			return failure.NotFound("event or company not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to attach company")

		return fmt.Errorf("failed to attach company: %w", err)
	}

	s.invalidateCompanies(ctx, eventID)

	return nil
}

func (s *serviceImpl) DetachCompany(ctx context.Context, eventID, companyID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.DetachCompany")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	removed, err := s.repo.DetachCompany(ctx, eventID, companyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to detach company")

		return fmt.Errorf("failed to detach company: %w", err)
	}

	if !removed {
		return failure.NotFound("company is not part of this event") // nolint:wrapcheck
	}

	s.invalidateCompanies(ctx, eventID)

	return nil
}

func (s *serviceImpl) invalidateCompanies(ctx context.Context, eventID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(constant.CachePrefixEventCompanies, eventID)); err != nil {
			log.Error().Err(err).Msg("failed to delete event companies from cache")
		}
	}()
}
