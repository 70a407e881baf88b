package service_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"haven/config"
	"haven/infras/otel/mocks"
	s3Mocks "haven/infras/s3/mocks"
	"haven/internal/domains/media/model/dto"
	"haven/internal/domains/media/service"
	"haven/shared/failure"
)

type memoryFile struct {
	*bytes.Reader
}

func (memoryFile) Close() error { return nil }

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	return buf.Bytes()
}

func uploadRequest(name, contentType string, data []byte) dto.UploadImageRequest {
	header := &multipart.FileHeader{
		Filename: name,
		Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
		Size:     int64(len(data)),
	}

	return dto.UploadImageRequest{
		Image:     header,
		ImageFile: memoryFile{bytes.NewReader(data)},
	}
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "haven"
	cfg.App.Upload.MaxSizeMB = 1
	cfg.App.Upload.MaxImageWidth = 1920

	return cfg
}

func TestMediaService_UploadImage(t *testing.T) {
	data := pngBytes(t, 20, 10)

	tests := []struct {
		name      string
		req       dto.UploadImageRequest
		setupMock func(m *s3Mocks.MockS3)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "uploads png",
			req:  uploadRequest("Sunset.PNG", "image/png", data),
			setupMock: func(m *s3Mocks.MockS3) {
				m.EXPECT().
					UploadFileBytes(gomock.Any(), "haven", "gallery", gomock.Any(), "image/png", data).
					DoAndReturn(func(_ context.Context, _, _, fileName, _ string, _ []byte) (string, error) {
						assert.True(t, strings.HasSuffix(fileName, ".png"))

						return "https://cdn.example.com/gallery/" + fileName, nil
					})
			},
		},
		{
			name:      "rejects non image",
			req:       uploadRequest("notes.pdf", "application/pdf", []byte("%PDF")),
			setupMock: func(_ *s3Mocks.MockS3) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:      "rejects oversized file",
			req:       uploadRequest("huge.jpg", "image/jpeg", make([]byte, 2<<20)),
			setupMock: func(_ *s3Mocks.MockS3) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:      "rejects missing file",
			req:       dto.UploadImageRequest{},
			setupMock: func(_ *s3Mocks.MockS3) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "storage error",
			req:  uploadRequest("a.png", "image/png", data),
			setupMock: func(m *s3Mocks.MockS3) {
				m.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 down"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockS3 := s3Mocks.NewMockS3(ctrl)
			tt.setupMock(mockS3)

			svc := service.New(newConfig(), mocks.NewOtel(), mockS3)

			res, err := svc.UploadImage(context.Background(), "gallery", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Contains(t, res.URL, res.FileName)
		})
	}
}

func TestMediaService_DeleteImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	svc := service.New(newConfig(), mocks.NewOtel(), mockS3)

	mockS3.EXPECT().
		GetObjectNameFromURL("haven", "events", "https://cdn.example.com/events/a.jpg").
		Return("a.jpg")
	mockS3.EXPECT().
		GetObjectNameFromURL("haven", "events", "/bespoke-events.jpg").
		Return("")
	mockS3.EXPECT().
		DeleteFile(gomock.Any(), "haven", "events", "a.jpg").
		Return(nil)

	err := svc.DeleteImages(context.Background(), "events", "https://cdn.example.com/events/a.jpg", "/bespoke-events.jpg")
	assert.NoError(t, err)

	mockS3.EXPECT().
		GetObjectNameFromURL(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("b.jpg")
	mockS3.EXPECT().
		DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("s3 down"))

	err = svc.DeleteImages(context.Background(), "events", "https://cdn.example.com/events/b.jpg")
	assert.ErrorIs(t, err, service.ErrDeleteImages)
}
