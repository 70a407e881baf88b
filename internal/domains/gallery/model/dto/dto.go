package dto

import (
	"haven/internal/domains/gallery/model"
	"haven/shared"
	gDto "haven/shared/dto"
	gModel "haven/shared/model"
	"haven/shared/timezone"

	"github.com/google/uuid"
)

type CreateGalleryImageRequest struct {
	ImageURL      string  `json:"image_url"       validate:"required,url"`
	Caption       *string `json:"caption"         validate:"omitempty,max=255"`
	Category      string  `json:"category"        validate:"omitempty,max=50"`
	Tag           *string `json:"tag"             validate:"omitempty,oneof=premium-camping adventure-activities bespoke-events curated-networking"`
	ShowInHero    *bool   `json:"show_in_hero"`
	ShowInGallery *bool   `json:"show_in_gallery"`
}

// ToModel builds an active image placed after the current last one.
func (c *CreateGalleryImageRequest) ToModel(user string, displayOrder int) model.GalleryImage {
	category := c.Category
	if category == "" {
		category = model.DefaultCategory
	}

	showInGallery := true
	if c.ShowInGallery != nil {
		showInGallery = *c.ShowInGallery
	}

	return model.GalleryImage{
		ID:            uuid.NewString(),
		ImageURL:      c.ImageURL,
		Caption:       c.Caption,
		Category:      category,
		Tag:           c.Tag,
		ShowInHero:    c.ShowInHero != nil && *c.ShowInHero,
		ShowInGallery: showInGallery,
		IsActive:      true,
		DisplayOrder:  displayOrder,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateGalleryImageRequest struct {
	ImageURL      string  `db:"image_url"       json:"image_url"       validate:"omitempty,url"`
	Caption       *string `db:"caption"         json:"caption"         validate:"omitempty,max=255"`
	Category      string  `db:"category"        json:"category"        validate:"omitempty,max=50"`
	Tag           *string `db:"tag"             json:"tag"             validate:"omitempty,oneof='' premium-camping adventure-activities bespoke-events curated-networking"`
	ShowInHero    *bool   `db:"show_in_hero"    json:"show_in_hero"`
	ShowInGallery *bool   `db:"show_in_gallery" json:"show_in_gallery"`
	IsActive      *bool   `db:"is_active"       json:"is_active"`
	DisplayOrder  *int    `db:"display_order"   json:"display_order"   validate:"omitempty,gte=0"`
}

// Fields returns the columns to update. An empty caption or tag clears the column.
func (u UpdateGalleryImageRequest) Fields(user string) map[string]any {
	fields := shared.TransformFields(u, user)

	for _, column := range []string{model.FieldCaption, model.FieldTag} {
		if value, ok := fields[column].(*string); ok && *value == "" {
			fields[column] = nil
		}
	}

	return fields
}

type GalleryImageResponse struct {
	ID            string  `json:"id"`
	ImageURL      string  `json:"image_url"`
	Caption       *string `json:"caption"`
	Category      string  `json:"category"`
	Tag           *string `json:"tag"`
	ShowInHero    bool    `json:"show_in_hero"`
	ShowInGallery bool    `json:"show_in_gallery"`
	IsActive      bool    `json:"is_active"`
	DisplayOrder  int     `json:"display_order"`
	gDto.Metadata
}

func (r *GalleryImageResponse) FromModel(model model.GalleryImage) {
	r.ID = model.ID
	r.ImageURL = model.ImageURL
	r.Caption = model.Caption
	r.Category = model.Category
	r.Tag = model.Tag
	r.ShowInHero = model.ShowInHero
	r.ShowInGallery = model.ShowInGallery
	r.IsActive = model.IsActive
	r.DisplayOrder = model.DisplayOrder
	r.Metadata.FromModel(model.Metadata)
}

type GetGalleryImagesResponse struct {
	Images    []GalleryImageResponse `json:"images"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetGalleryImagesResponse) FromModels(models []model.GalleryImage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Images = make([]GalleryImageResponse, len(models))
	for i, m := range models {
		r.Images[i].FromModel(m)
	}
}

type GalleryStatsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// PublicImage is the trimmed shape served to site visitors.
type PublicImage struct {
	ID       string  `json:"id"`
	ImageURL string  `json:"image_url"`
	Caption  *string `json:"caption"`
	Category string  `json:"category"`
}

func (p *PublicImage) FromModel(model model.GalleryImage) {
	p.ID = model.ID
	p.ImageURL = model.ImageURL
	p.Caption = model.Caption
	p.Category = model.Category
}

type Experience struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Tag         string `json:"tag"`
}

// DefaultExperiences returns the fixed experience cards with their bundled artwork.
func DefaultExperiences() []Experience {
	return []Experience{
		{
			Title:       "Premium Camping",
			Description: "Experience our eco-tourism camping site with proper beds, duvets and blankets in premium tents. Wake up to stunning island views and the sound of waves. Comfort meets nature in the perfect balance.",
			Image:       "/premium-camping.jpg",
			Tag:         model.TagPremiumCamping,
		},
		{
			Title:       "Adventure Activities",
			Description: "Island exploration, water sports, sunset sessions, quad bike rides, paint & sip, board games, meditation, journaling, and more. Every day brings new experiences.",
			Image:       "/adventure-activities.jpg",
			Tag:         model.TagAdventureActivities,
		},
		{
			Title:       "Bespoke Events",
			Description: "From corporate retreats to themed celebrations, raves to intimate gatherings. We coordinate unforgettable experiences tailored to your vision.",
			Image:       "/bespoke-events.jpg",
			Tag:         model.TagBespokeEvents,
		},
		{
			Title:       "Curated Networking",
			Description: "Join 600-1000+ monthly guests who return for the community. Connect with professionals, creatives, and explorers. Build relationships that last beyond your stay.",
			Image:       "/curated-networking.jpg",
			Tag:         model.TagCuratedNetworking,
		},
	}
}

// ApplyTaggedImages swaps each card's artwork for the first tagged image matching its tag.
func ApplyTaggedImages(experiences []Experience, tagged []model.GalleryImage) []Experience {
	byTag := map[string]string{}

	for _, image := range tagged {
		if image.Tag == nil {
			continue
		}

		if _, ok := byTag[*image.Tag]; !ok {
			byTag[*image.Tag] = image.ImageURL
		}
	}

	for i := range experiences {
		if url, ok := byTag[experiences[i].Tag]; ok {
			experiences[i].Image = url
		}
	}

	return experiences
}
