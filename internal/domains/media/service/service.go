package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"haven/config"
	"haven/infras/otel"
	"haven/infras/s3"
	"haven/internal/domains/media/model/dto"
	"haven/shared/constant"
	"haven/shared/failure"
	"haven/shared/media"
	"haven/shared/validator"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const bytesPerMB = 1 << 20

var (
	ErrDeleteImages = errors.New("failed to delete images from storage")
)

// Media stores site imagery in the object store under a per-resource directory.
type Media interface {
	UploadImage(ctx context.Context, directory string, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	DeleteImages(ctx context.Context, directory string, urls ...string) error
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(cfg *config.Config, otel otel.Otel, s3 s3.S3) Media {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

func (s *serviceImpl) UploadImage(ctx context.Context, directory string, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Image == nil || req.ImageFile == nil {
		return res, failure.BadRequestFromString("image file is required")
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	contentType := req.Image.Header.Get(constant.RequestHeaderContentType)

	maxBytes := int64(s.cfg.App.Upload.MaxSizeMB * bytesPerMB)
	if maxBytes > 0 && req.Image.Size > maxBytes {
		return res, failure.BadRequestFromString(fmt.Sprintf("image must be smaller than %gMB", s.cfg.App.Upload.MaxSizeMB))
	}

	data, err := io.ReadAll(req.ImageFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to read uploaded file")

		return res, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	data, err = media.Downscale(data, contentType, s.cfg.App.Upload.MaxImageWidth)
	if err != nil {
		log.Error().Err(err).Str("file", req.Image.Filename).Msg("failed to process image")

		return res, failure.BadRequestFromString("image could not be processed")
	}

	objectName := media.ObjectName(uuid.NewString(), req.Image.Filename)

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, directory, objectName, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	res.FromModel(url, objectName)

	return res, nil
}

// DeleteImages removes objects this bucket produced. URLs pointing elsewhere are skipped.
func (s *serviceImpl) DeleteImages(ctx context.Context, directory string, urls ...string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName := s.cfg.External.S3.BucketName

	var deleteErrors []error

	for _, imageURL := range urls {
		objectName := s.s3.GetObjectNameFromURL(bucketName, directory, imageURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", imageURL).Msg("image is not stored in the bucket, skipping")

			continue
		}

		if err := s.s3.DeleteFile(ctx, bucketName, directory, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
			deleteErrors = append(deleteErrors, err)
		}
	}

	if len(deleteErrors) > 0 {
		return fmt.Errorf("%w: %d images", ErrDeleteImages, len(deleteErrors))
	}

	return nil
}
