package sessions

import "time"

// CreateResponse is returned when a new session is opened
type CreateResponse struct {
	SessionID       string    `json:"session_id"`
	QuotaLimit      int       `json:"quota_limit"`
	QuotaRemaining  int       `json:"quota_remaining"`
	GalleryCapacity int       `json:"gallery_capacity"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// StatusResponse describes a session's current state
type StatusResponse struct {
	SessionID      string    `json:"session_id"`
	Authenticated  bool      `json:"authenticated"`
	Identity       string    `json:"identity,omitempty"`
	QuotaLimit     int       `json:"quota_limit"`
	QuotaRemaining int       `json:"quota_remaining"`
	GalleryCount   int       `json:"gallery_count"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// MessageResponse carries a simple status message
type MessageResponse struct {
	Message string `json:"message"`
}
