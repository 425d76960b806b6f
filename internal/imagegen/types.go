package imagegen

import "context"

// Request describes a single image generation. Width and height are
// passed through unmodified within the model's declared bounds. A seed
// of -1 means the provider chooses; optional parameters left at their
// zero value are omitted from the wire payload.
type Request struct {
	Prompt         string
	NegativePrompt string
	ModelID        string
	Width          int
	Height         int
	GuidanceScale  float64
	Steps          int
	Seed           int64
}

// Strategy is one way of producing image bytes for a request. A
// strategy either returns the bytes or fails with a reason; it is the
// chain's job to decide what to try next.
type Strategy interface {
	// identifies the strategy in failure reports and logs
	Name() string

	Attempt(ctx context.Context, req Request) ([]byte, error)
}
