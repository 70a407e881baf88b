//go:build wireinject
// +build wireinject

package di

import (
	"haven/config"
	"haven/infras/jwt"
	"haven/infras/kafka"
	"haven/infras/otel"
	"haven/infras/postgres"
	"haven/infras/redis"
	"haven/infras/s3"
	"haven/infras/scheduler"
	"haven/internal/jobs"
	"haven/permissions"
	"haven/shared/cache"
	"haven/transport/http"
	"haven/transport/http/middleware"
	"haven/transport/http/router"

	adminRepository "haven/internal/domains/admin/repository"
	adminService "haven/internal/domains/admin/service"
	authService "haven/internal/domains/auth/service"
	dashboardService "haven/internal/domains/dashboard/service"
	eventRepository "haven/internal/domains/event/repository"
	eventService "haven/internal/domains/event/service"
	footerRepository "haven/internal/domains/footer/repository"
	footerService "haven/internal/domains/footer/service"
	galleryRepository "haven/internal/domains/gallery/repository"
	galleryService "haven/internal/domains/gallery/service"
	healthService "haven/internal/domains/health/service"
	inquiryRepository "haven/internal/domains/inquiry/repository"
	inquiryService "haven/internal/domains/inquiry/service"
	mediaService "haven/internal/domains/media/service"
	newsletterRepository "haven/internal/domains/newsletter/repository"
	newsletterService "haven/internal/domains/newsletter/service"
	permissionRepository "haven/internal/domains/permission/repository"
	permissionService "haven/internal/domains/permission/service"
	siteService "haven/internal/domains/site/service"
	testimonialRepository "haven/internal/domains/testimonial/repository"
	testimonialService "haven/internal/domains/testimonial/service"

	adminHandler "haven/internal/handlers/admin"
	authHandler "haven/internal/handlers/auth"
	dashboardHandler "haven/internal/handlers/dashboard"
	eventHandler "haven/internal/handlers/event"
	footerHandler "haven/internal/handlers/footer"
	galleryHandler "haven/internal/handlers/gallery"
	healthHandler "haven/internal/handlers/health"
	inquiryHandler "haven/internal/handlers/inquiry"
	newsletterHandler "haven/internal/handlers/newsletter"
	permissionHandler "haven/internal/handlers/permission"
	siteHandler "haven/internal/handlers/site"
	testimonialHandler "haven/internal/handlers/testimonial"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	scheduler.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var accessDomain = wire.NewSet(
	adminRepository.New,
	adminService.New,
	permissionRepository.New,
	permissionService.New,
	authService.New,
)

var contentDomain = wire.NewSet(
	mediaService.New,
	galleryRepository.New,
	galleryService.New,
	eventRepository.New,
	eventService.New,
	testimonialRepository.New,
	testimonialService.New,
	footerRepository.New,
	footerService.New,
)

var leadDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
	newsletterRepository.New,
	newsletterService.New,
)

var overviewDomain = wire.NewSet(
	dashboardService.New,
	siteService.New,
	healthService.New,
)

var domains = wire.NewSet(
	accessDomain,
	contentDomain,
	leadDomain,
	overviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	adminHandler.New,
	permissionHandler.New,
	galleryHandler.New,
	eventHandler.New,
	testimonialHandler.New,
	inquiryHandler.New,
	newsletterHandler.New,
	footerHandler.New,
	dashboardHandler.New,
	siteHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *Application {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		jobs.New,
		wire.Struct(new(Application), "*"),
	)

	return nil
}
