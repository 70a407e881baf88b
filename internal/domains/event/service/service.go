package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"haven/config"
	"haven/infras/otel"
	"haven/internal/domains/event/model"
	"haven/internal/domains/event/model/dto"
	"haven/internal/domains/event/repository"
	mediaDto "haven/internal/domains/media/model/dto"
	mediaService "haven/internal/domains/media/service"
	"haven/shared"
	"haven/shared/cache"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/failure"
	"haven/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetEvent    = "event:get"
	cacheGetAllEvent = "event:get_all"
	cacheCountEvent  = "event:count"
	cacheUpcoming    = "event:upcoming"
)

type Event interface {
	Create(ctx context.Context, req dto.CreateEventRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	Update(ctx context.Context, req dto.UpdateEventRequest, id string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.EventStatsResponse, error)
	UploadFlier(ctx context.Context, req mediaDto.UploadImageRequest) (mediaDto.UploadImageResponse, error)
	Upcoming(ctx context.Context) ([]dto.PublicEvent, error)
}

type serviceImpl struct {
	repo  repository.Event
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	media mediaService.Media
}

func New(repo repository.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, media mediaService.Media) Event {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		media: media,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	lastOrder, err := s.repo.Max(ctx, model.FieldDisplayOrder, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get last event display order")

		return err
	}

	event, err := req.ToModel(user, lastOrder+1, s.cfg.App.Site.DefaultPaymentURL)
	if err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, event); err != nil {
		return err
	}

	go s.invalidate(context.WithoutCancel(ctx), constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEvent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for events")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, err
	}

	events, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get events")

		return res, err
	}

	res.FromModels(events, total, req.Limit)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEvent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for event count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return total, err
	}

	go s.save(context.WithoutCancel(ctx), cacheKey, total)

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetEvent, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for event")

		return res, nil
	}

	event, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return res, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		return res, failure.NotFound("event not found")
	}

	res.FromModel(event)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = req.Normalize(); err != nil {
		return err
	}

	current, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldFlierURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return fmt.Errorf("failed to get event: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Msg("event not found")

		return failure.NotFound("event not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update event")

		return fmt.Errorf("failed to update event: %w", err)
	}

	replaced := req.FlierURL != constant.Empty && req.FlierURL != current.FlierURL

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)

		if !replaced {
			return
		}

		if err := s.media.DeleteImages(c, model.EntityName, current.FlierURL); err != nil {
			log.Error().Err(err).Msg("failed to delete replaced event flier from storage")
		}
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	event, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldFlierURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event for deletion")

		return fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		log.Error().Msg("event not found")

		return failure.NotFound("event not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete event")

		return fmt.Errorf("failed to delete event: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)

		if err := s.media.DeleteImages(c, model.EntityName, event.FlierURL); err != nil {
			log.Error().Err(err).Msg("failed to delete event flier from storage")
		}
	}()

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.EventStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Total, err = s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, err
	}

	res.Active, err = s.repo.Count(ctx, activeFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to count active events")

		return res, err
	}

	res.Upcoming, err = s.repo.Count(ctx, upcomingFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to count upcoming events")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) UploadFlier(ctx context.Context, req mediaDto.UploadImageRequest) (res mediaDto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadFlier")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.media.UploadImage(ctx, model.EntityName, req) //nolint:wrapcheck
}

// Upcoming returns the next active events from today onwards, soonest first.
func (s *serviceImpl) Upcoming(ctx context.Context) (res []dto.PublicEvent, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upcoming")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheUpcoming, timezone.Now().Format(constant.DateOnly))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	params := gDto.QueryParams{
		Limit:   model.UpcomingLimit,
		SortBy:  model.FieldEventDate,
		SortDir: gDto.SortDirAsc,
	}

	events, err := s.repo.GetAll(ctx, params, upcomingFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get upcoming events")

		return nil, err
	}

	res = make([]dto.PublicEvent, len(events))
	for i, event := range events {
		res[i].FromModel(event)
	}

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save event cache")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if id != constant.Empty {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetEvent, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete event cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllEvent)
	shared.InvalidateCaches(ctx, s.cache, cacheCountEvent)
	shared.InvalidateCaches(ctx, s.cache, cacheUpcoming)
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

func upcomingFilter() gDto.FilterGroup {
	filter := activeFilter()
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldEventDate,
		Operator: gDto.FilterOperatorGreaterEq,
		Value:    timezone.Now().Format(constant.DateOnly),
		Table:    model.TableName,
	})

	return filter
}
