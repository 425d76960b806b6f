package transcribe

import "context"

// Transcriber turns recorded audio into prompt text. It is an opaque
// external collaborator: the orchestration core only consumes the text
// it produces.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}
