package imagegen

import (
	"context"
	"time"

	"codeberg.org/pixelrave/server/internal/logger"
)

// Chain tries an ordered list of strategies until one produces image
// bytes. Order is the contract: the first success wins, a failed
// candidate is never retried, and the terminal failure surfaces the
// most specific underlying reason.
type Chain struct {
	registry       *Registry
	hasCredential  bool
	attemptTimeout time.Duration
}

func NewChain(registry *Registry, hasCredential bool) *Chain {
	return &Chain{
		registry:       registry,
		hasCredential:  hasCredential,
		attemptTimeout: attemptTimeout,
	}
}

// overrides the per-attempt ceiling, for tests
func (c *Chain) WithAttemptTimeout(d time.Duration) *Chain {
	c.attemptTimeout = d
	return c
}

// Generate runs the candidates strictly in the order supplied. A gated
// model with no credential configured short-circuits with
// AccessRequiredError before any candidate is invoked.
func (c *Chain) Generate(ctx context.Context, req Request, candidates []Strategy) ([]byte, []AttemptFailure, error) {
	if model, ok := c.registry.Get(req.ModelID); ok && model.Gated && !c.hasCredential {
		return nil, nil, &AccessRequiredError{ModelID: req.ModelID}
	}

	var failures []AttemptFailure

	for _, candidate := range candidates {
		imageBytes, err := c.attempt(ctx, candidate, req)
		if err == nil {
			return imageBytes, failures, nil
		}

		logger.Warn("generation candidate failed",
			"strategy", candidate.Name(),
			"model_id", req.ModelID,
			"error", err,
		)

		failures = append(failures, AttemptFailure{Strategy: candidate.Name(), Err: err})
	}

	if len(failures) == 0 {
		return nil, nil, &ProviderError{Strategy: "chain", Message: "no candidates configured"}
	}

	return nil, failures, &ExhaustedError{Failures: failures}
}

// runs one candidate under the per-attempt timeout
func (c *Chain) attempt(ctx context.Context, candidate Strategy, req Request) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	return candidate.Attempt(attemptCtx, req)
}

// DefaultCandidates returns the standard order for a model: the
// authenticated inference client first when a token is configured, then
// the raw unauthenticated fallback.
func DefaultCandidates(token string) []Strategy {
	if token == "" {
		return []Strategy{NewRawClient()}
	}

	return []Strategy{NewInferenceClient(token), NewRawClient()}
}
