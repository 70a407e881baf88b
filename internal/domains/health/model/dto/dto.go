package dto

import (
	"haven/shared/constant"
	"time"
)

type HealthResponse struct {
	Status             string `json:"status"`
	Message            string `json:"message"`
	Timestamp          string `json:"timestamp"`
	Database           string `json:"database"`
	GalleryImagesCount *int   `json:"gallery_images_count,omitempty"`
	Error              string `json:"error,omitempty"`
}

func (r *HealthResponse) Healthy(count int, now time.Time) {
	r.Status = constant.HealthStatusHealthy
	r.Message = constant.HealthMessageHealthy
	r.Timestamp = now.Format(constant.DateFormat)
	r.Database = constant.HealthDBConnected
	r.GalleryImagesCount = &count
}

func (r *HealthResponse) Failed(err error, now time.Time) {
	r.Status = constant.HealthStatusError
	r.Message = constant.HealthMessageDBFailed
	r.Timestamp = now.Format(constant.DateFormat)
	r.Database = constant.HealthDBDisconnected
	r.Error = err.Error()
}
