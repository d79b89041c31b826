package dto

type LikeRequestDTO struct {
	UserID   string `json:"user_id"   example:"user1"`
	UserName string `json:"user_name" example:"John Doe"`
}

type LikeResponse struct {
	Liked     bool `json:"liked"      example:"true"`
	LikeCount int  `json:"like_count" example:"13"`
}
