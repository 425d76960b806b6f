package transcribe

// Response carries the recognized prompt text
type Response struct {
	Text string `json:"text"`
}
