package dto

type GenerateVideoRequest struct {
	SegmentPrompts []string `json:"segment_prompts" binding:"required,min=1"`
	ImagePrompts   []string `json:"image_prompts"`
	ImageURLs      []string `json:"image_urls"`
	Bucket         string   `json:"bucket"`
	KeyPrefix      string   `json:"key_prefix"`
	PollInterval   int      `json:"poll_interval"`
	MaxRetries     *int     `json:"max_retries"`
}

type GenerateVideoResponse struct {
	URL string `json:"url"`
}
