package transcribe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscribe_Success(t *testing.T) {
	var gotAuth string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body) //nolint:errcheck

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":" a red fox in the snow "}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewWhisperClient(WhisperConfig{Token: "hf_test"}).WithBaseURL(server.URL)

	text, err := client.Transcribe(context.Background(), []byte("audio-bytes"), "")

	require.NoError(t, err)
	assert.Equal(t, "a red fox in the snow", text, "transcription text is trimmed")
	assert.Equal(t, "Bearer hf_test", gotAuth)
	assert.Equal(t, []byte("audio-bytes"), gotBody)
}

func TestTranscribe_EmptyAudio(t *testing.T) {
	client := NewWhisperClient(WhisperConfig{})

	_, err := client.Transcribe(context.Background(), nil, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no audio")
}

func TestTranscribe_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"Model is currently loading"}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewWhisperClient(WhisperConfig{}).WithBaseURL(server.URL)

	_, err := client.Transcribe(context.Background(), []byte("audio"), "en")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestTranscribe_NoSpeech(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"text":"  "}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewWhisperClient(WhisperConfig{}).WithBaseURL(server.URL)

	_, err := client.Transcribe(context.Background(), []byte("audio"), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no speech recognized")
}

func TestNewWhisperClient_DefaultModel(t *testing.T) {
	client := NewWhisperClient(WhisperConfig{})
	assert.Equal(t, defaultWhisperModel, client.config.Model)
}
