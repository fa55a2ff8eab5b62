package dto

type CreateEducationRequest struct {
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	Content     string `json:"content" validate:"required"`
	Language    string `json:"language"`
	VideoURL    string `json:"videoUrl"`
	ImageURL    string `json:"imageUrl"`
}

type UpdateEducationRequest struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Language    *string `json:"language"`
	VideoURL    *string `json:"videoUrl"`
	ImageURL    *string `json:"imageUrl"`
}
