package dto_test

import (
	"testing"

	"haven/internal/domains/gallery/model"
	"haven/internal/domains/gallery/model/dto"
	gModel "haven/shared/model"
	"haven/shared/timezone"
	"haven/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestCreateGalleryImageRequest_ToModel(t *testing.T) {
	hero := true

	req := dto.CreateGalleryImageRequest{
		ImageURL:   "https://cdn.example.com/gallery/a.jpg",
		ShowInHero: &hero,
	}

	userID := "test-user-id"
	image := req.ToModel(userID, 4)

	assert.NotEmpty(t, image.ID, "expected ID to be generated")
	assert.Equal(t, req.ImageURL, image.ImageURL)
	assert.Equal(t, model.DefaultCategory, image.Category)
	assert.True(t, image.ShowInHero)
	assert.True(t, image.ShowInGallery)
	assert.True(t, image.IsActive)
	assert.Equal(t, 4, image.DisplayOrder)
	assert.Equal(t, userID, image.CreatedBy)
	assert.Equal(t, userID, image.ModifiedBy)
	assert.False(t, image.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateGalleryImageRequest_ToModelKeepsCategory(t *testing.T) {
	hidden := false

	req := dto.CreateGalleryImageRequest{
		ImageURL:      "https://cdn.example.com/gallery/b.jpg",
		Category:      "events",
		ShowInGallery: &hidden,
	}

	image := req.ToModel("user", 1)

	assert.Equal(t, "events", image.Category)
	assert.False(t, image.ShowInGallery)
	assert.False(t, image.ShowInHero)
}

func TestGalleryImageResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	caption := "Sunset"
	imageModel := model.GalleryImage{
		ID:           "test-id",
		ImageURL:     "https://cdn.example.com/gallery/a.jpg",
		Caption:      &caption,
		Category:     model.DefaultCategory,
		IsActive:     true,
		DisplayOrder: 2,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.GalleryImageResponse
	response.FromModel(imageModel)

	assert.Equal(t, imageModel.ID, response.ID)
	assert.Equal(t, imageModel.ImageURL, response.ImageURL)
	assert.Equal(t, "Sunset", *response.Caption)
	assert.Equal(t, 2, response.DisplayOrder)
	assert.Equal(t, "test-user", response.CreatedBy)
}

func TestGetGalleryImagesResponse_FromModels(t *testing.T) {
	models := []model.GalleryImage{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	var response dto.GetGalleryImagesResponse
	response.FromModels(models, 3, 2)

	assert.Len(t, response.Images, 3)
	assert.Equal(t, 3, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
}

func TestApplyTaggedImages(t *testing.T) {
	camping := model.TagPremiumCamping
	events := model.TagBespokeEvents

	tagged := []model.GalleryImage{
		{ImageURL: "https://cdn.example.com/gallery/camp-1.jpg", Tag: &camping},
		{ImageURL: "https://cdn.example.com/gallery/camp-2.jpg", Tag: &camping},
		{ImageURL: "https://cdn.example.com/gallery/rave.jpg", Tag: &events},
		{ImageURL: "https://cdn.example.com/gallery/untagged.jpg"},
	}

	experiences := dto.ApplyTaggedImages(dto.DefaultExperiences(), tagged)

	assert.Len(t, experiences, 4)
	assert.Equal(t, "https://cdn.example.com/gallery/camp-1.jpg", experiences[0].Image)
	assert.Equal(t, "/adventure-activities.jpg", experiences[1].Image)
	assert.Equal(t, "https://cdn.example.com/gallery/rave.jpg", experiences[2].Image)
	assert.Equal(t, "/curated-networking.jpg", experiences[3].Image)
}

func TestUpdateGalleryImageRequest_Validation(t *testing.T) {
	tag := func(value string) *string { return &value }

	tests := []struct {
		name    string
		req     dto.UpdateGalleryImageRequest
		wantErr bool
	}{
		{name: "known tag", req: dto.UpdateGalleryImageRequest{Tag: tag(model.TagBespokeEvents)}},
		{name: "empty tag clears", req: dto.UpdateGalleryImageRequest{Tag: tag("")}},
		{name: "empty caption clears", req: dto.UpdateGalleryImageRequest{Caption: tag("")}},
		{name: "unknown tag", req: dto.UpdateGalleryImageRequest{Tag: tag("karaoke")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateGalleryImageRequest_Fields(t *testing.T) {
	empty := ""
	caption := "Golden hour"

	fields := dto.UpdateGalleryImageRequest{Caption: &caption, Tag: &empty}.Fields("admin-1")

	assert.Equal(t, &caption, fields[model.FieldCaption])
	assert.Contains(t, fields, model.FieldTag)
	assert.Nil(t, fields[model.FieldTag])
	assert.NotContains(t, fields, model.FieldImageURL)
	assert.Equal(t, "admin-1", fields["modified_by"])
}
