package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"haven/infras/otel"
	"haven/internal/domains/dashboard/model/dto"
	galleryService "haven/internal/domains/gallery/service"
	inquiryService "haven/internal/domains/inquiry/service"
	testimonialModel "haven/internal/domains/testimonial/model"
	testimonialService "haven/internal/domains/testimonial/service"
	"haven/shared/constant"
	gDto "haven/shared/dto"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Stats(ctx context.Context) (dto.DashboardStatsResponse, error)
}

type serviceImpl struct {
	inquiry     inquiryService.Inquiry
	gallery     galleryService.Gallery
	testimonial testimonialService.Testimonial
	otel        otel.Otel
}

func New(
	inquiry inquiryService.Inquiry,
	gallery galleryService.Gallery,
	testimonial testimonialService.Testimonial,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		inquiry:     inquiry,
		gallery:     gallery,
		testimonial: testimonial,
		otel:        otel,
	}
}

// Stats gathers the overview counters from the owning services so their caches are reused.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.DashboardStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	inquiries, err := s.inquiry.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiry stats")

		return res, err
	}

	images, err := s.gallery.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery stats")

		return res, err
	}

	activeTestimonials, err := s.testimonial.Count(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    testimonialModel.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    testimonialModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count active testimonials")

		return res, err
	}

	res.TotalInquiries = inquiries.Total
	res.NewInquiries = inquiries.New
	res.ActiveImages = images.Active
	res.ActiveTestimonials = activeTestimonials

	return res, nil
}
