package generate

// Request represents the request body for image generation
type Request struct {
	// empty or whitespace-only prompts are rejected by the pipeline
	// with a dedicated error code, so no binding requirement here
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt"`
	ModelID        string  `json:"model_id" binding:"required"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	GuidanceScale  float64 `json:"guidance_scale"`
	Steps          int     `json:"steps"`
	Seed           *int64  `json:"seed"` // omitted or -1 = provider chooses
	SessionID      string  `json:"session_id"`
}

// Response represents a successful generation
type Response struct {
	ImageBase64    string `json:"image_base64"`
	ElapsedMs      int64  `json:"elapsed_ms"`
	ModelID        string `json:"model_id"`
	SessionID      string `json:"session_id"`
	QuotaRemaining int    `json:"quota_remaining"`
}
