package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	hubInferenceBaseURL = "https://api-inference.huggingface.co/models"

	// per-attempt ceiling; exceeding it fails the candidate, not the chain
	attemptTimeout = 30 * time.Second
)

// shared HTTP client for hub inference calls
// reuses connection pool and timeout configuration
var hubHTTPClient = &http.Client{
	Timeout: attemptTimeout,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for hub inference calls (5 requests/second with burst capacity of 2)
var hubRateLimiter = rate.NewLimiter(5, 2)

type generatePayload struct {
	Inputs     string              `json:"inputs"`
	Parameters *generateParameters `json:"parameters,omitempty"`
	Options    generateOptions     `json:"options"`
}

type generateParameters struct {
	NegativePrompt    string  `json:"negative_prompt,omitempty"`
	Width             int     `json:"width,omitempty"`
	Height            int     `json:"height,omitempty"`
	GuidanceScale     float64 `json:"guidance_scale,omitempty"`
	NumInferenceSteps int     `json:"num_inference_steps,omitempty"`
	Seed              *int64  `json:"seed,omitempty"`
}

type generateOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// InferenceClient is the primary strategy: an authenticated call
// against the hub inference endpoint using the configured token.
type InferenceClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewInferenceClient(token string) *InferenceClient {
	return &InferenceClient{
		baseURL:    hubInferenceBaseURL,
		token:      token,
		httpClient: hubHTTPClient,
	}
}

// overrides the inference endpoint, for tests
func (c *InferenceClient) WithBaseURL(baseURL string) *InferenceClient {
	c.baseURL = baseURL
	return c
}

func (c *InferenceClient) Name() string {
	return "inference-client"
}

func (c *InferenceClient) Attempt(ctx context.Context, req Request) ([]byte, error) {
	return postGenerate(ctx, c.httpClient, c.Name(), c.baseURL, c.token, req)
}

// builds the wire payload; optional parameters stay omitted when unset,
// and seed -1 means the provider chooses
func buildPayload(req Request) generatePayload {
	params := generateParameters{
		NegativePrompt:    req.NegativePrompt,
		Width:             req.Width,
		Height:            req.Height,
		GuidanceScale:     req.GuidanceScale,
		NumInferenceSteps: req.Steps,
	}

	if req.Seed >= 0 {
		seed := req.Seed
		params.Seed = &seed
	}

	payload := generatePayload{
		Inputs:  req.Prompt,
		Options: generateOptions{WaitForModel: true},
	}

	if params != (generateParameters{}) {
		payload.Parameters = &params
	}

	return payload
}

// issues one generation call and classifies the outcome: image bytes on
// success, AccessRequiredError on 401/403, ProviderError otherwise
func postGenerate(ctx context.Context, client *http.Client, strategy, baseURL, token string, req Request) ([]byte, error) {
	jsonData, err := json.Marshal(buildPayload(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", baseURL, req.ModelID)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	// rate limiting
	if err := hubRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, &ProviderError{Strategy: strategy, Message: err.Error()}
	}

	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Strategy: strategy, Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &AccessRequiredError{ModelID: req.ModelID}
	case resp.StatusCode != http.StatusOK:
		return nil, &ProviderError{
			Strategy:   strategy,
			StatusCode: resp.StatusCode,
			Message:    providerMessage(body),
		}
	}

	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		return nil, &ProviderError{
			Strategy:   strategy,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("expected image bytes, got %s", resp.Header.Get("Content-Type")),
		}
	}

	if len(body) == 0 {
		return nil, &ProviderError{Strategy: strategy, StatusCode: resp.StatusCode, Message: "empty image response"}
	}

	return body, nil
}

// extracts the provider's error message from a JSON error body,
// falling back to the raw body
func providerMessage(body []byte) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}

	return msg
}
