package dto

type CreateCommentDTO struct {
	UserID   string `json:"user_id"   example:"user3"`
	UserName string `json:"user_name" example:"Mike Johnson"`
	Text     string `json:"text"      validate:"required,min=1,max=2000" example:"Great post!"`
}
