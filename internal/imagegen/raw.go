package imagegen

import (
	"context"
	"net/http"
)

// RawClient is the unauthenticated raw-HTTP fallback for the same
// selected model: the same wire shape as the primary client minus the
// Authorization header. It only ever reaches public models, which makes
// it a useful last resort when the configured token is rejected.
type RawClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRawClient() *RawClient {
	return &RawClient{
		baseURL:    hubInferenceBaseURL,
		httpClient: hubHTTPClient,
	}
}

// overrides the inference endpoint, for tests
func (c *RawClient) WithBaseURL(baseURL string) *RawClient {
	c.baseURL = baseURL
	return c
}

func (c *RawClient) Name() string {
	return "raw-http"
}

func (c *RawClient) Attempt(ctx context.Context, req Request) ([]byte, error) {
	return postGenerate(ctx, c.httpClient, c.Name(), c.baseURL, "", req)
}
