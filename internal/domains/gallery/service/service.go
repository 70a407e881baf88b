package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"haven/config"
	"haven/infras/otel"
	"haven/internal/domains/gallery/model"
	"haven/internal/domains/gallery/model/dto"
	"haven/internal/domains/gallery/repository"
	mediaDto "haven/internal/domains/media/model/dto"
	mediaService "haven/internal/domains/media/service"
	"haven/shared"
	"haven/shared/cache"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGallery    = "gallery:get"
	cacheGetAllGallery = "gallery:get_all"
	cacheCountGallery  = "gallery:count"
	cachePublicGallery = "gallery:public"
)

type Gallery interface {
	Create(ctx context.Context, req dto.CreateGalleryImageRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGalleryImagesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.GalleryImageResponse, error)
	Update(ctx context.Context, req dto.UpdateGalleryImageRequest, id string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.GalleryStatsResponse, error)
	UploadImage(ctx context.Context, req mediaDto.UploadImageRequest) (mediaDto.UploadImageResponse, error)

	HeroImages(ctx context.Context) ([]string, error)
	PublicImages(ctx context.Context) ([]dto.PublicImage, error)
	Experiences(ctx context.Context) ([]dto.Experience, error)
}

type serviceImpl struct {
	repo  repository.Gallery
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	media mediaService.Media
}

func New(repo repository.Gallery, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, media mediaService.Media) Gallery {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		media: media,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGalleryImageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	lastOrder, err := s.repo.Max(ctx, model.FieldDisplayOrder, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get last gallery display order")

		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, lastOrder+1)); err != nil {
		return err
	}

	go s.invalidate(context.WithoutCancel(ctx), constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGalleryImagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGallery, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery images")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count gallery images")

		return res, err
	}

	images, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery images")

		return res, err
	}

	res.FromModels(images, total, req.Limit)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGallery, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count gallery images")

		return total, err
	}

	go s.save(context.WithoutCancel(ctx), cacheKey, total)

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetGallery, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery image")

		return res, nil
	}

	image, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery image")

		return res, fmt.Errorf("failed to get gallery image: %w", err)
	}

	if image.ID == constant.Empty {
		return res, failure.NotFound("gallery image not found")
	}

	res.FromModel(image)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGalleryImageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldImageURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery image")

		return fmt.Errorf("failed to get gallery image: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Msg("gallery image not found")

		return failure.NotFound("gallery image not found")
	}

	if err = s.repo.Update(ctx, req.Fields(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update gallery image")

		return fmt.Errorf("failed to update gallery image: %w", err)
	}

	replaced := req.ImageURL != constant.Empty && req.ImageURL != current.ImageURL

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)

		if !replaced {
			return
		}

		if err := s.media.DeleteImages(c, model.EntityName, current.ImageURL); err != nil {
			log.Error().Err(err).Msg("failed to delete replaced gallery image from storage")
		}
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	image, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery image for deletion")

		return fmt.Errorf("failed to get gallery image: %w", err)
	}

	if image.ID == constant.Empty {
		log.Error().Msg("gallery image not found")

		return failure.NotFound("gallery image not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete gallery image")

		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)

		if err := s.media.DeleteImages(c, model.EntityName, image.ImageURL); err != nil {
			log.Error().Err(err).Msg("failed to delete gallery image from storage")
		}
	}()

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.GalleryStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Total, err = s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count gallery images")

		return res, err
	}

	res.Active, err = s.repo.Count(ctx, activeFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to count active gallery images")

		return res, err
	}

	res.Inactive = res.Total - res.Active

	return res, nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req mediaDto.UploadImageRequest) (res mediaDto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.media.UploadImage(ctx, model.EntityName, req) //nolint:wrapcheck
}

// HeroImages returns the active hero image URLs, or the configured defaults when none are set.
func (s *serviceImpl) HeroImages(ctx context.Context) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HeroImages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cachePublicGallery, "hero")

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	filter := activeFilter()
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldShowInHero,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	})

	images, err := s.repo.GetAll(ctx, orderedParams(0), filter, model.FieldImageURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hero images")

		return nil, err
	}

	res = make([]string, 0, len(images))
	for _, image := range images {
		res = append(res, image.ImageURL)
	}

	if len(res) == 0 {
		res = s.defaultHeroImages()
	}

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) PublicImages(ctx context.Context) (res []dto.PublicImage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PublicImages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cachePublicGallery, "images")

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	filter := activeFilter()
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldShowInGallery,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	})

	images, err := s.repo.GetAll(ctx, orderedParams(model.PublicGalleryLimit), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get public gallery images")

		return nil, err
	}

	res = make([]dto.PublicImage, len(images))
	for i, image := range images {
		res[i].FromModel(image)
	}

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

// Experiences returns the experience cards, each showing its tagged image when one is active.
func (s *serviceImpl) Experiences(ctx context.Context) (res []dto.Experience, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Experiences")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cachePublicGallery, "experiences")

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	filter := activeFilter()
	filter.Filters = append(filter.Filters,
		gDto.Filter{
			Field:    model.FieldTag,
			Operator: gDto.FilterIsNotNull,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldTag,
			Operator: gDto.FilterOperatorIn,
			Value:    model.ExperienceTags,
			Table:    model.TableName,
		},
	)

	tagged, err := s.repo.GetAll(ctx, orderedParams(0), filter, model.FieldTag, model.FieldImageURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to get experience images")

		return nil, err
	}

	res = dto.ApplyTaggedImages(dto.DefaultExperiences(), tagged)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) defaultHeroImages() []string {
	if len(s.cfg.App.Site.DefaultHeroImages) > 0 {
		return s.cfg.App.Site.DefaultHeroImages
	}

	return model.DefaultHeroImages
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save gallery cache")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if id != constant.Empty {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetGallery, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete gallery image cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllGallery)
	shared.InvalidateCaches(ctx, s.cache, cacheCountGallery)
	shared.InvalidateCaches(ctx, s.cache, cachePublicGallery)
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixSite)
}

func activeFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}
}

func orderedParams(limit int) gDto.QueryParams {
	return gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldDisplayOrder,
		SortDir: gDto.SortDirAsc,
	}
}
