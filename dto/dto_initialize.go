package dto

type InitializeResponse struct {
	Message string `json:"message" example:"Posts initialized successfully"`
	Count   int64  `json:"count"   example:"5"`
}

type UploadResponse struct {
	URL string `json:"url" example:"/uploads/cat.png"`
}
