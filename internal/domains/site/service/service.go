package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"haven/config"
	"haven/infras/otel"
	eventService "haven/internal/domains/event/service"
	footerService "haven/internal/domains/footer/service"
	galleryService "haven/internal/domains/gallery/service"
	"haven/internal/domains/site/model/dto"
	testimonialService "haven/internal/domains/testimonial/service"
	"haven/shared"
	"haven/shared/cache"
	"haven/shared/constant"

	"github.com/rs/zerolog/log"
)

var cacheSite = shared.BuildCacheKey(constant.CachePrefixSite, "landing")

type Site interface {
	Get(ctx context.Context) (dto.SiteResponse, error)
	Warm(ctx context.Context) error
}

type serviceImpl struct {
	gallery     galleryService.Gallery
	event       eventService.Event
	testimonial testimonialService.Testimonial
	footer      footerService.Footer
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	gallery galleryService.Gallery,
	event eventService.Event,
	testimonial testimonialService.Testimonial,
	footer footerService.Footer,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Site {
	return &serviceImpl{
		gallery:     gallery,
		event:       event,
		testimonial: testimonial,
		footer:      footer,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SiteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheSite, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheSite).Msg("cache hit for site")

		return res, nil
	}

	res, err = s.build(ctx)
	if err != nil {
		return res, err
	}

	go s.save(context.WithoutCancel(ctx), res)

	return res, nil
}

// Warm rebuilds the landing payload and stores it, whether or not a cached copy exists.
func (s *serviceImpl) Warm(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Warm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err := s.build(ctx)
	if err != nil {
		return err
	}

	s.save(ctx, res)

	return nil
}

func (s *serviceImpl) build(ctx context.Context) (res dto.SiteResponse, err error) {
	if res.HeroImages, err = s.gallery.HeroImages(ctx); err != nil {
		log.Error().Err(err).Msg("failed to get hero images")

		return res, err
	}

	if res.Gallery, err = s.gallery.PublicImages(ctx); err != nil {
		log.Error().Err(err).Msg("failed to get gallery images")

		return res, err
	}

	if res.Events, err = s.event.Upcoming(ctx); err != nil {
		log.Error().Err(err).Msg("failed to get upcoming events")

		return res, err
	}

	if res.Testimonials, err = s.testimonial.Public(ctx); err != nil {
		log.Error().Err(err).Msg("failed to get testimonials")

		return res, err
	}

	if res.Experiences, err = s.gallery.Experiences(ctx); err != nil {
		log.Error().Err(err).Msg("failed to get experiences")

		return res, err
	}

	if res.Footer, err = s.footer.Public(ctx); err != nil {
		log.Error().Err(err).Msg("failed to get footer")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, value dto.SiteResponse) {
	if err := s.cache.Save(ctx, cacheSite, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", cacheSite).Msg("failed to save site cache")
	}
}
