package imagegen

import "fmt"

// parameter bounds shared by the hosted diffusion models
const (
	minDimension     = 256
	maxDimension     = 1536
	dimensionStep    = 8
	minGuidanceScale = 1.0
	maxGuidanceScale = 20.0
	minSteps         = 1
	maxSteps         = 100
)

// Model describes one entry in the fixed set of selectable models.
// Gated models require an access grant on the hub; attempting them
// without a credential is rejected before any network call.
type Model struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	Gated         bool   `json:"gated"`
	DefaultWidth  int    `json:"default_width"`
	DefaultHeight int    `json:"default_height"`
	MaxDimension  int    `json:"max_dimension"`
}

// Registry holds the enumerated model set and answers capability
// lookups by model id.
type Registry struct {
	models []Model
	byID   map[string]Model
}

// the fixed model set offered to the UI layer
var defaultModels = []Model{
	{
		ID:            "stabilityai/stable-diffusion-2",
		DisplayName:   "Stable Diffusion 2",
		DefaultWidth:  768,
		DefaultHeight: 768,
		MaxDimension:  1024,
	},
	{
		ID:            "stabilityai/stable-diffusion-xl-base-1.0",
		DisplayName:   "Stable Diffusion XL",
		DefaultWidth:  1024,
		DefaultHeight: 1024,
		MaxDimension:  1536,
	},
	{
		ID:            "stable-diffusion-v1-5/stable-diffusion-v1-5",
		DisplayName:   "Stable Diffusion 1.5",
		DefaultWidth:  512,
		DefaultHeight: 512,
		MaxDimension:  1024,
	},
	{
		ID:            "stabilityai/stable-diffusion-3-medium-diffusers",
		DisplayName:   "Stable Diffusion 3 Medium",
		Gated:         true,
		DefaultWidth:  1024,
		DefaultHeight: 1024,
		MaxDimension:  1536,
	},
	{
		ID:            "black-forest-labs/FLUX.1-dev",
		DisplayName:   "FLUX.1 dev",
		Gated:         true,
		DefaultWidth:  1024,
		DefaultHeight: 1024,
		MaxDimension:  1536,
	},
}

func NewRegistry() *Registry {
	return NewRegistryWithModels(defaultModels)
}

func NewRegistryWithModels(models []Model) *Registry {
	byID := make(map[string]Model, len(models))
	for _, m := range models {
		byID[m.ID] = m
	}

	return &Registry{models: models, byID: byID}
}

func (r *Registry) Get(id string) (Model, bool) {
	m, ok := r.byID[id]
	return m, ok
}

// List returns the model set in declaration order.
func (r *Registry) List() []Model {
	out := make([]Model, len(r.models))
	copy(out, r.models)
	return out
}

// ValidateRequest checks the request parameters against the model's
// declared bounds. Zero values for optional parameters are accepted and
// mean "provider default".
func (m Model) ValidateRequest(req Request) error {
	maxDim := m.MaxDimension
	if maxDim == 0 {
		maxDim = maxDimension
	}

	if err := validateDimension("width", req.Width, maxDim); err != nil {
		return err
	}

	if err := validateDimension("height", req.Height, maxDim); err != nil {
		return err
	}

	if req.GuidanceScale != 0 && (req.GuidanceScale < minGuidanceScale || req.GuidanceScale > maxGuidanceScale) {
		return fmt.Errorf("guidance scale %.1f out of range [%.1f, %.1f]", req.GuidanceScale, minGuidanceScale, maxGuidanceScale)
	}

	if req.Steps != 0 && (req.Steps < minSteps || req.Steps > maxSteps) {
		return fmt.Errorf("steps %d out of range [%d, %d]", req.Steps, minSteps, maxSteps)
	}

	if req.Seed < -1 {
		return fmt.Errorf("seed must be -1 (random) or a non-negative value, got %d", req.Seed)
	}

	return nil
}

func validateDimension(name string, value, maxDim int) error {
	if value == 0 {
		return nil
	}

	if value < minDimension || value > maxDim {
		return fmt.Errorf("%s %d out of range [%d, %d]", name, value, minDimension, maxDim)
	}

	if value%dimensionStep != 0 {
		return fmt.Errorf("%s %d must be a multiple of %d", name, value, dimensionStep)
	}

	return nil
}
