package imagegen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload_SeedOmittedWhenRandom(t *testing.T) {
	payload := buildPayload(Request{Prompt: "a blue whale", Width: 768, Height: 768, Seed: -1})

	require.NotNil(t, payload.Parameters)
	assert.Nil(t, payload.Parameters.Seed, "seed -1 means the provider chooses")
	assert.Equal(t, 768, payload.Parameters.Width)
}

func TestBuildPayload_ExplicitSeedCarried(t *testing.T) {
	payload := buildPayload(Request{Prompt: "a blue whale", Seed: 42})

	require.NotNil(t, payload.Parameters)
	require.NotNil(t, payload.Parameters.Seed)
	assert.Equal(t, int64(42), *payload.Parameters.Seed)
}

func TestBuildPayload_BareRequestHasNoParameters(t *testing.T) {
	payload := buildPayload(Request{Prompt: "a blue whale", Seed: -1})

	assert.Nil(t, payload.Parameters, "parameters block is omitted when everything is a default")
	assert.Equal(t, "a blue whale", payload.Inputs)
	assert.True(t, payload.Options.WaitForModel)
}

func TestInferenceClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	var gotBody generatePayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes")) //nolint:errcheck
	}))
	defer server.Close()

	client := NewInferenceClient("hf_test_token").WithBaseURL(server.URL)

	imageBytes, err := client.Attempt(context.Background(), Request{
		Prompt:         "a red fox",
		NegativePrompt: "blurry",
		ModelID:        "stabilityai/stable-diffusion-2",
		Width:          768,
		Height:         768,
		Seed:           -1,
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), imageBytes)
	assert.Equal(t, "Bearer hf_test_token", gotAuth)
	assert.Equal(t, "a red fox", gotBody.Inputs)
	require.NotNil(t, gotBody.Parameters)
	assert.Equal(t, "blurry", gotBody.Parameters.NegativePrompt)
}

func TestRawClient_SendsNoAuthorization(t *testing.T) {
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg-bytes")) //nolint:errcheck
	}))
	defer server.Close()

	client := NewRawClient().WithBaseURL(server.URL)

	imageBytes, err := client.Attempt(context.Background(), Request{
		Prompt:  "a red fox",
		ModelID: "stabilityai/stable-diffusion-2",
		Seed:    -1,
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), imageBytes)
	assert.Empty(t, gotAuth)
}

func TestPostGenerate_ForbiddenBecomesAccessRequired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"Access to this model is restricted"}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewInferenceClient("hf_test_token").WithBaseURL(server.URL)

	_, err := client.Attempt(context.Background(), Request{
		Prompt:  "a red fox",
		ModelID: "black-forest-labs/FLUX.1-dev",
		Seed:    -1,
	})

	var accessErr *AccessRequiredError
	require.ErrorAs(t, err, &accessErr)
	assert.Equal(t, "black-forest-labs/FLUX.1-dev", accessErr.ModelID)
}

func TestPostGenerate_NonOKBecomesProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"Model is currently loading","estimated_time":20.0}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewRawClient().WithBaseURL(server.URL)

	_, err := client.Attempt(context.Background(), Request{
		Prompt:  "a red fox",
		ModelID: "stabilityai/stable-diffusion-2",
		Seed:    -1,
	})

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusServiceUnavailable, provErr.StatusCode)
	assert.Contains(t, provErr.Message, "Model is currently loading")
}

func TestPostGenerate_NonImageBodyRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"unexpected":"shape"}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewRawClient().WithBaseURL(server.URL)

	_, err := client.Attempt(context.Background(), Request{
		Prompt:  "a red fox",
		ModelID: "stabilityai/stable-diffusion-2",
		Seed:    -1,
	})

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Contains(t, provErr.Message, "expected image bytes")
}
