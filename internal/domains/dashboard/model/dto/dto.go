package dto

type DashboardStatsResponse struct {
	TotalInquiries     int `json:"total_inquiries"`
	NewInquiries       int `json:"new_inquiries"`
	ActiveImages       int `json:"active_images"`
	ActiveTestimonials int `json:"active_testimonials"`
}
