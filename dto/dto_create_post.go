package dto

// ===== Request =====
type CreatePostDTO struct {
	Type         string   `json:"type,omitempty"          example:"post"`
	Title        string   `json:"title"                   validate:"required" example:"How to prepare for GATE CS?"`
	Excerpt      string   `json:"excerpt,omitempty"       example:"Share your tips and resources."`
	Content      string   `json:"content,omitempty"       example:"Let's discuss strategies and materials."`
	Category     string   `json:"category,omitempty"      example:"Study Tips"`
	Tags         []string `json:"tags,omitempty"          example:"gate,cs"`
	Image        string   `json:"image,omitempty"`
	DocumentURL  string   `json:"document_url,omitempty"`
	JobLink      string   `json:"job_link,omitempty"`
	ReferralInfo string   `json:"referral_info,omitempty"`
}

// ===== Error Response =====
type ErrorResponse struct {
	Detail string `json:"detail" example:"Post not found"`
}
