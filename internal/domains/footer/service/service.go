package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"haven/config"
	"haven/infras/otel"
	"haven/internal/domains/footer/model"
	"haven/internal/domains/footer/model/dto"
	"haven/internal/domains/footer/repository"
	"haven/shared"
	"haven/shared/cache"
	"haven/shared/constant"
	"haven/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFooter    = "footer:get"
	cachePublicFooter = "footer:public"
)

type Footer interface {
	Get(ctx context.Context) (dto.FooterResponse, error)
	Update(ctx context.Context, req dto.UpdateFooterRequest) error
	Public(ctx context.Context) (dto.PublicFooter, error)
}

type serviceImpl struct {
	repo  repository.Footer
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Footer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Footer {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Get returns the stored footer row. Before the first save the defaults are returned.
func (s *serviceImpl) Get(ctx context.Context) (res dto.FooterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetFooter, &res)
	if err == nil {
		return res, nil
	}

	footer, err := s.load(ctx)
	if err != nil {
		return res, err
	}

	if footer.ID == constant.Empty {
		footer = model.Defaults()
	}

	res.FromModel(footer)

	go s.save(context.WithoutCancel(ctx), cacheGetFooter, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFooterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	footer := req.ToModel(user, timezone.Now())

	if err = s.repo.Upsert(ctx, footer, []string{model.FieldID}, model.EditableFields); err != nil {
		log.Error().Err(err).Msg("failed to save footer settings")

		return fmt.Errorf("failed to save footer settings: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx))

	return nil
}

// Public returns the footer with every empty field replaced by its default.
func (s *serviceImpl) Public(ctx context.Context) (res dto.PublicFooter, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Public")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cachePublicFooter, &res)
	if err == nil {
		return res, nil
	}

	footer, err := s.load(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(footer.WithDefaults())

	go s.save(context.WithoutCancel(ctx), cachePublicFooter, res)

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context) (model.FooterSettings, error) {
	footer, err := s.repo.Get(ctx, shared.FilterByID(model.SingletonID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get footer settings")

		return footer, fmt.Errorf("failed to get footer settings: %w", err)
	}

	return footer, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save footer cache")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	for _, key := range []string{cacheGetFooter, cachePublicFooter} {
		if err := s.cache.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to delete footer cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixSite)
}
