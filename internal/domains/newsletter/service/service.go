package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"haven/config"
	"haven/infras/kafka"
	"haven/infras/otel"
	"haven/internal/domains/newsletter/model"
	"haven/internal/domains/newsletter/model/dto"
	"haven/internal/domains/newsletter/repository"
	"haven/shared"
	"haven/shared/cache"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/failure"
	"haven/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllNewsletter = "newsletter:get_all"
	cacheCountNewsletter  = "newsletter:count"
)

type Newsletter interface {
	Subscribe(ctx context.Context, req dto.SubscribeRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSignupsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context) (dto.ExportResponse, error)
}

type serviceImpl struct {
	repo  repository.Newsletter
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Newsletter, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Newsletter {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		kafka: kafka,
	}
}

func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscribeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subscribe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()
	signup := req.ToModel(constant.ContextGuest)

	if err = s.repo.Insert(ctx, signup); err != nil {
		if shared.IsUniqueViolation(err) {
			return failure.Conflict("this email is already subscribed")
		}

		log.Error().Err(err).Msg("failed to save newsletter signup")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c)

		event := dto.SubscribedEvent{}
		event.FromModel(signup)

		err := s.kafka.SendMessages(c, s.cfg.External.Kafka.Topics.NewsletterSubscribed, kafka.Message{Key: signup.ID, Value: event})
		if err != nil {
			log.Error().Err(err).Str("signup", signup.ID).Msg("failed to publish newsletter subscribed event")
		}
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSignupsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllNewsletter, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for newsletter signups")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count newsletter signups")

		return res, err
	}

	signups, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get newsletter signups")

		return res, err
	}

	res.FromModels(signups, total, req.Limit)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountNewsletter, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count newsletter signups")

		return total, err
	}

	go s.save(context.WithoutCancel(ctx), cacheKey, total)

	return total, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check newsletter signup existence")

		return err
	}

	if !exist {
		return failure.NotFound("newsletter signup not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete newsletter signup")

		return fmt.Errorf("failed to delete newsletter signup: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx))

	return nil
}

// Export renders every signup, newest first, as a CSV attachment named after today's date.
func (s *serviceImpl) Export(ctx context.Context) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	signups, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{}, model.FieldEmail, constant.FieldCreatedAt)
	if err != nil {
		log.Error().Err(err).Msg("failed to get newsletter signups for export")

		return res, err
	}

	if len(signups) == 0 {
		return res, failure.NotFound("no emails to export")
	}

	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err = writer.Write(model.ExportHeader); err != nil {
		return res, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, signup := range signups {
		row := []string{signup.Email, timezone.Format(signup.CreatedAt, model.SignupDateLayout)}
		if err = writer.Write(row); err != nil {
			return res, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()

	if err = writer.Error(); err != nil {
		return res, fmt.Errorf("failed to flush csv: %w", err)
	}

	res.FileName = model.ExportFilePrefix + timezone.Format(timezone.Now(), constant.DateOnly) + model.ExportFileExt
	res.Content = buf.Bytes()

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save newsletter cache")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllNewsletter)
	shared.InvalidateCaches(ctx, s.cache, cacheCountNewsletter)
}
