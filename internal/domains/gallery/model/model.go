package model

import "haven/shared/model"

const (
	TableName  = "gallery_images"
	EntityName = "gallery"

	FieldID            = "id"
	FieldImageURL      = "image_url"
	FieldCaption       = "caption"
	FieldCategory      = "category"
	FieldTag           = "tag"
	FieldShowInHero    = "show_in_hero"
	FieldShowInGallery = "show_in_gallery"
	FieldIsActive      = "is_active"
	FieldDisplayOrder  = "display_order"

	DefaultCategory = "general"
)

// Experience card tags. An image carrying one of these replaces the card's default artwork.
const (
	TagPremiumCamping      = "premium-camping"
	TagAdventureActivities = "adventure-activities"
	TagBespokeEvents       = "bespoke-events"
	TagCuratedNetworking   = "curated-networking"
)

var ExperienceTags = []string{TagPremiumCamping, TagAdventureActivities, TagBespokeEvents, TagCuratedNetworking}

type GalleryImage struct {
	ID            string  `db:"id"`
	ImageURL      string  `db:"image_url"`
	Caption       *string `db:"caption"`
	Category      string  `db:"category"`
	Tag           *string `db:"tag"`
	ShowInHero    bool    `db:"show_in_hero"`
	ShowInGallery bool    `db:"show_in_gallery"`
	IsActive      bool    `db:"is_active"`
	DisplayOrder  int     `db:"display_order"`
	model.Metadata
}

// DefaultHeroImages are served when no active hero image is configured.
var DefaultHeroImages = []string{"/IMG_8277.JPG", "/IMG_8282.JPG", "/IMG_8285.JPG"}

const PublicGalleryLimit = 12
