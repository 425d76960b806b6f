package auth

// AuthResponse is returned after a completed OAuth flow
type AuthResponse struct {
	Token    string `json:"token"`
	Identity string `json:"identity"`
}

// MeResponse describes the authenticated caller
type MeResponse struct {
	Identity string `json:"identity"`
}

// MessageResponse carries a simple status message
type MessageResponse struct {
	Message string `json:"message"`
}
