package dto

type GenerateImagesRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	ImageURL  string `json:"image_url" binding:"required"`
	Bucket    string `json:"bucket"`
	KeyPrefix string `json:"key_prefix"`
}

type GenerateImagesResponse struct {
	URLs  []string `json:"urls"`
	Texts []string `json:"texts"`
}
