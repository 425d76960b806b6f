package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	whisperInferenceURL = "https://api-inference.huggingface.co/models"
	defaultWhisperModel = "openai/whisper-large-v3"
)

// shared HTTP client for transcription calls
var whisperHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

type WhisperConfig struct {
	Token string
	Model string // e.g., "openai/whisper-large-v3"
}

// WhisperClient transcribes audio through the hub's hosted Whisper
// models.
type WhisperClient struct {
	config     WhisperConfig
	baseURL    string
	httpClient *http.Client
}

func NewWhisperClient(config WhisperConfig) *WhisperClient {
	if config.Model == "" {
		config.Model = defaultWhisperModel
	}

	return &WhisperClient{
		config:     config,
		baseURL:    whisperInferenceURL,
		httpClient: whisperHTTPClient,
	}
}

// overrides the inference endpoint, for tests
func (c *WhisperClient) WithBaseURL(baseURL string) *WhisperClient {
	c.baseURL = baseURL
	return c
}

func (c *WhisperClient) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("no audio provided")
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, c.config.Model)

	if language != "" {
		url = fmt.Sprintf("%s?language=%s", url, language)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/octet-stream")

	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return "", fmt.Errorf("transcription request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var transcription transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&transcription); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	text := strings.TrimSpace(transcription.Text)
	if text == "" {
		return "", fmt.Errorf("no speech recognized")
	}

	return text, nil
}
