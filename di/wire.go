//go:build wireinject
// +build wireinject

package di

import (
	"careerday/config"
	"careerday/infras/jwt"
	"careerday/infras/otel"
	"careerday/infras/postgres"
	"careerday/infras/redis"
	"careerday/internal/schedule"
	"careerday/permissions"
	"careerday/shared/cache"
	"careerday/shared/clock"
	"careerday/transport/http"
	"careerday/transport/http/middleware"
	"careerday/transport/http/router"

	attendeeRepository "careerday/internal/domains/attendee/repository"
	attendeeService "careerday/internal/domains/attendee/service"
	bookingRepository "careerday/internal/domains/booking/repository"
	bookingService "careerday/internal/domains/booking/service"
	checkinRepository "careerday/internal/domains/checkin/repository"
	checkinService "careerday/internal/domains/checkin/service"
	companyRepository "careerday/internal/domains/company/repository"
	companyService "careerday/internal/domains/company/service"
	eventRepository "careerday/internal/domains/event/repository"
	eventService "careerday/internal/domains/event/service"
	interviewRepository "careerday/internal/domains/interview/repository"
	interviewService "careerday/internal/domains/interview/service"
	notificationRepository "careerday/internal/domains/notification/repository"
	notificationService "careerday/internal/domains/notification/service"
	roundTableRepository "careerday/internal/domains/roundtable/repository"
	roundTableService "careerday/internal/domains/roundtable/service"

	attendeeHandler "careerday/internal/handlers/attendee"
	bookingHandler "careerday/internal/handlers/booking"
	checkinHandler "careerday/internal/handlers/checkin"
	companyHandler "careerday/internal/handlers/company"
	eventHandler "careerday/internal/handlers/event"
	interviewHandler "careerday/internal/handlers/interview"
	notificationHandler "careerday/internal/handlers/notification"
	roundTableHandler "careerday/internal/handlers/roundtable"
	scheduleHandler "careerday/internal/handlers/schedule"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	provideSink,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.New,
	schedule.NewFromConfig,
)

var repositories = wire.NewSet(
	eventRepository.New,
	companyRepository.New,
	attendeeRepository.New,
	bookingRepository.New,
	interviewRepository.New,
	notificationRepository.New,
	roundTableRepository.New,
	checkinRepository.New,
)

var domains = wire.NewSet(
	repositories,
	eventService.New,
	companyService.New,
	attendeeService.New,
	bookingService.New,
	notificationService.New,
	interviewService.New,
	roundTableService.New,
	checkinService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	scheduleHandler.New,
	eventHandler.New,
	companyHandler.New,
	attendeeHandler.New,
	bookingHandler.New,
	interviewHandler.New,
	notificationHandler.New,
	roundTableHandler.New,
	checkinHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil, nil
}
