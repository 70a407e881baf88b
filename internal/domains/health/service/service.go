package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"haven/infras/otel"
	galleryRepo "haven/internal/domains/gallery/repository"
	"haven/internal/domains/health/model/dto"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Health interface {
	Check(ctx context.Context) (dto.HealthResponse, error)
}

type serviceImpl struct {
	gallery galleryRepo.Gallery
	otel    otel.Otel
}

func New(gallery galleryRepo.Gallery, otel otel.Otel) Health {
	return &serviceImpl{
		gallery: gallery,
		otel:    otel,
	}
}

// Check runs a cheap count against the database. It always fills the response so callers can
// render the failure body alongside the error.
func (s *serviceImpl) Check(ctx context.Context) (res dto.HealthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	count, err := s.gallery.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("health check query failed")

		res.Failed(err, timezone.Now())

		return res, err
	}

	res.Healthy(count, timezone.Now())

	return res, nil
}
