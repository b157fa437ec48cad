package service

import (
	"context"
	"fmt"

	"careerday/config"
	"careerday/infras/otel"
	"careerday/infras/postgres"
	"careerday/internal/domains/company/model"
	"careerday/internal/domains/company/model/dto"
	"careerday/internal/domains/company/repository"
	"careerday/shared"
	"careerday/shared/cache"
	"careerday/shared/constant"
	gDto "careerday/shared/dto"
	"careerday/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCompany    = "company:get"
	cacheGetAllCompany = "company:gets"
	cacheCountCompany  = "company:count"
)

type Company interface {
	Create(ctx context.Context, req dto.CreateCompanyRequest) (dto.CompanyResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCompaniesResponse, error)
	Get(ctx context.Context, id string) (dto.CompanyResponse, error)
	Update(ctx context.Context, req dto.UpdateCompanyRequest, id string) error
	Delete(ctx context.Context, id string) error
	ListByEvent(ctx context.Context, eventID string) ([]dto.EventCompanyResponse, error)
}

type serviceImpl struct {
	repo  repository.Company
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Company, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Company {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCompanyRequest) (res dto.CompanyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	company := req.ToModel(user)

	if company.Slug == constant.Empty {
		return res, failure.BadRequestFromString("company name must contain letters or digits") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, shared.FilterEq(model.TableName, model.FieldSlug, company.Slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if company exists")

		return res, fmt.Errorf("failed to check if company exists: %w", err)
	}

	if exist {
		return res, failure.Conflict("company already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, company); err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.Conflict("company already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create company")

		return res, fmt.Errorf("failed to create company: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCompany)
		shared.InvalidateCaches(c, s.cache, cacheCountCompany)
	}()

	res.FromModel(company)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCompaniesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCompany, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for companies")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get companies")

		return res, fmt.Errorf("failed to get companies: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save companies to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCompany, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count companies")

		return res, fmt.Errorf("failed to count companies: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save company count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CompanyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetCompany, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	company, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get company")

		return res, fmt.Errorf("failed to get company: %w", err)
	}

	if company.ID == constant.Empty {
		return res, failure.NotFound("company not found") // nolint:wrapcheck
	}

	res.FromModel(company)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save company to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCompanyRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if req == (dto.UpdateCompanyRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if company exists")

		return fmt.Errorf("failed to check if company exists: %w", err)
	}

	if !exist {
		return failure.NotFound("company not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		if postgres.IsUniqueViolation(err) {
			return failure.Conflict("another company already uses this name") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update company")

		return fmt.Errorf("failed to update company: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if company exists")

		return fmt.Errorf("failed to check if company exists: %w", err)
	}

	if !exist {
		return failure.NotFound("company not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		if postgres.IsFkViolation(err) {
			return failure.Conflict("company still has bookings or event registrations") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete company")

		return fmt.Errorf("failed to delete company: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) ListByEvent(ctx context.Context, eventID string) (res []dto.EventCompanyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.ListByEvent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CachePrefixEventCompanies, eventID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	models, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		log.Error().Err(err).Str("event_id", eventID).Msg("failed to list event companies")

		return nil, fmt.Errorf("failed to list event companies: %w", err)
	}

	res = dto.FromEventModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event companies to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCompany, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete company from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCompany)
		shared.InvalidateCaches(c, s.cache, cacheCountCompany)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixEventCompanies)
	}()
}
