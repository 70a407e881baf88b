package dto

import (
	eventDto "haven/internal/domains/event/model/dto"
	footerDto "haven/internal/domains/footer/model/dto"
	galleryDto "haven/internal/domains/gallery/model/dto"
	testimonialDto "haven/internal/domains/testimonial/model/dto"
)

// SiteResponse is everything the public landing page needs in one payload.
type SiteResponse struct {
	HeroImages   []string                           `json:"hero_images"`
	Gallery      []galleryDto.PublicImage           `json:"gallery"`
	Events       []eventDto.PublicEvent             `json:"events"`
	Testimonials []testimonialDto.PublicTestimonial `json:"testimonials"`
	Experiences  []galleryDto.Experience            `json:"experiences"`
	Footer       footerDto.PublicFooter             `json:"footer"`
}
