package gallery

import "time"

// EntryView is one retained generation as presented to the UI layer
type EntryView struct {
	Index       int       `json:"index"`
	Prompt      string    `json:"prompt"`
	ModelID     string    `json:"model_id"`
	CreatedAt   time.Time `json:"created_at"`
	ImageBase64 string    `json:"image_base64"`
}

// Response lists the session's retained generations newest-first
type Response struct {
	Entries  []EntryView `json:"entries"`
	Capacity int         `json:"capacity"`
}
