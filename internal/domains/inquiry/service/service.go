package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"haven/config"
	"haven/infras/kafka"
	"haven/infras/otel"
	"haven/internal/domains/inquiry/model"
	"haven/internal/domains/inquiry/model/dto"
	"haven/internal/domains/inquiry/repository"
	"haven/shared"
	"haven/shared/cache"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetInquiry    = "inquiry:get"
	cacheGetAllInquiry = "inquiry:get_all"
	cacheCountInquiry  = "inquiry:count"
)

type Inquiry interface {
	Submit(ctx context.Context, req dto.CreateInquiryRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInquiriesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.InquiryResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateInquiryStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.InquiryStatsResponse, error)
}

type serviceImpl struct {
	repo  repository.Inquiry
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Inquiry, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Inquiry {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		kafka: kafka,
	}
}

// Submit stores a contact form entry as a new inquiry and announces it on the message bus.
func (s *serviceImpl) Submit(ctx context.Context, req dto.CreateInquiryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Normalize(s.cfg.App.Site.PhoneRegion); err != nil {
		return err
	}

	inquiry := req.ToModel(constant.ContextGuest)

	if err = s.repo.Insert(ctx, inquiry); err != nil {
		log.Error().Err(err).Msg("failed to save inquiry")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, constant.Empty)

		event := dto.InquiryCreatedEvent{}
		event.FromModel(inquiry)

		err := s.kafka.SendMessages(c, s.cfg.External.Kafka.Topics.InquiryCreated, kafka.Message{Key: inquiry.ID, Value: event})
		if err != nil {
			log.Error().Err(err).Str("inquiry", inquiry.ID).Msg("failed to publish inquiry created event")
		}
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInquiriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInquiry, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiries")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inquiries")

		return res, err
	}

	inquiries, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiries")

		return res, err
	}

	res.FromModels(inquiries, total, req.Limit)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountInquiry, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiry count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inquiries")

		return total, err
	}

	go s.save(context.WithoutCancel(ctx), cacheKey, total)

	return total, nil
}

// Get returns the inquiry. Opening a new inquiry marks it as read.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetInquiry, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil && res.Status != model.StatusNew {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiry")

		return res, nil
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	inquiry, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiry")

		return res, fmt.Errorf("failed to get inquiry: %w", err)
	}

	if inquiry.ID == constant.Empty {
		return res, failure.NotFound("inquiry not found")
	}

	if inquiry.Status == model.StatusNew {
		user, _ := ctx.Value(constant.ContextKeyUserID).(string)
		fields := shared.TransformFields(dto.UpdateInquiryStatusRequest{Status: model.StatusRead}, user)

		if err = s.repo.Update(ctx, fields, filter); err != nil {
			log.Error().Err(err).Msg("failed to mark inquiry as read")

			return res, fmt.Errorf("failed to mark inquiry as read: %w", err)
		}

		inquiry.Status = model.StatusRead

		go s.invalidate(context.WithoutCancel(ctx), constant.Empty)
	}

	res.FromModel(inquiry)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateInquiryStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check inquiry existence")

		return err
	}

	if !exist {
		log.Error().Msg("inquiry not found")

		return failure.NotFound("inquiry not found")
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update inquiry status")

		return fmt.Errorf("failed to update inquiry status: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check inquiry existence")

		return err
	}

	if !exist {
		log.Error().Msg("inquiry not found")

		return failure.NotFound("inquiry not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete inquiry")

		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.InquiryStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for _, status := range model.Statuses {
		count, err := s.repo.Count(ctx, StatusFilter(status))
		if err != nil {
			log.Error().Err(err).Str("status", status).Msg("failed to count inquiries")

			return res, err
		}

		res.Set(status, count)
		res.Total += count
	}

	return res, nil
}

// StatusFilter matches inquiries in the given status.
func StatusFilter(status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save inquiry cache")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if id != constant.Empty {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetInquiry, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete inquiry cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllInquiry)
	shared.InvalidateCaches(ctx, s.cache, cacheCountInquiry)
}
