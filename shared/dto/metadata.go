package dto

import (
	"haven/shared/constant"
	"haven/shared/model"
	"haven/shared/timezone"
	"time"
)

// Metadata is the audit block attached to every admin-facing record. Unset timestamps, as on
// records that were never saved, are rendered empty.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(source model.Metadata) {
	m.CreatedAt = formatStamp(source.CreatedAt)
	m.ModifiedAt = formatStamp(source.ModifiedAt)
	m.CreatedBy = source.CreatedBy
	m.ModifiedBy = source.ModifiedBy
}

func formatStamp(stamp time.Time) string {
	if stamp.IsZero() {
		return ""
	}

	return timezone.Format(stamp, constant.DateFormat)
}
