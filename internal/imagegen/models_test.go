package imagegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	registry := NewRegistry()

	model, ok := registry.Get("stabilityai/stable-diffusion-2")
	require.True(t, ok)
	assert.False(t, model.Gated)
	assert.Equal(t, 768, model.DefaultWidth)

	model, ok = registry.Get("black-forest-labs/FLUX.1-dev")
	require.True(t, ok)
	assert.True(t, model.Gated)

	_, ok = registry.Get("nonexistent/model")
	assert.False(t, ok)
}

func TestRegistry_ListPreservesOrder(t *testing.T) {
	models := NewRegistry().List()

	require.NotEmpty(t, models)
	assert.Equal(t, "stabilityai/stable-diffusion-2", models[0].ID)
}

func TestValidateRequest_Bounds(t *testing.T) {
	model, ok := NewRegistry().Get("stabilityai/stable-diffusion-2")
	require.True(t, ok)

	tests := []struct {
		name    string
		req     Request
		wantErr string
	}{
		{"defaults accepted", Request{Prompt: "x", Seed: -1}, ""},
		{"valid explicit params", Request{Prompt: "x", Width: 768, Height: 512, GuidanceScale: 7.5, Steps: 50, Seed: 42}, ""},
		{"width too small", Request{Prompt: "x", Width: 128, Seed: -1}, "width 128 out of range"},
		{"width too large", Request{Prompt: "x", Width: 2048, Seed: -1}, "width 2048 out of range"},
		{"height not multiple of 8", Request{Prompt: "x", Height: 513, Seed: -1}, "must be a multiple of 8"},
		{"guidance too low", Request{Prompt: "x", GuidanceScale: 0.5, Seed: -1}, "guidance scale"},
		{"guidance too high", Request{Prompt: "x", GuidanceScale: 25, Seed: -1}, "guidance scale"},
		{"steps too high", Request{Prompt: "x", Steps: 500, Seed: -1}, "steps 500 out of range"},
		{"seed below sentinel", Request{Prompt: "x", Seed: -2}, "seed must be -1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := model.ValidateRequest(tc.req)

			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestValidateRequest_ModelSpecificMaxDimension(t *testing.T) {
	xl, ok := NewRegistry().Get("stabilityai/stable-diffusion-xl-base-1.0")
	require.True(t, ok)

	sd2, ok := NewRegistry().Get("stabilityai/stable-diffusion-2")
	require.True(t, ok)

	req := Request{Prompt: "x", Width: 1536, Height: 1536, Seed: -1}

	assert.NoError(t, xl.ValidateRequest(req))
	assert.Error(t, sd2.ValidateRequest(req), "1536 exceeds SD2's declared maximum")
}
