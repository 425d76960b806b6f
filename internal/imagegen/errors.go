package imagegen

import (
	"errors"
	"fmt"
	"strings"
)

// AccessRequiredError means the selected model requires elevated access
// and no valid credential is configured. It is not retryable by the
// system itself; the caller renders remediation guidance distinct from
// generic provider failures.
type AccessRequiredError struct {
	ModelID string
}

func (e *AccessRequiredError) Error() string {
	return fmt.Sprintf("model %s requires elevated access and no credential is configured", e.ModelID)
}

// ProviderError is a transient failure from one provider attempt:
// network error, timeout, or a non-2xx response. StatusCode is 0 when
// the request never reached the provider.
type ProviderError struct {
	Strategy   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: provider returned status %d: %s", e.Strategy, e.StatusCode, e.Message)
	}

	return fmt.Sprintf("%s: %s", e.Strategy, e.Message)
}

// AttemptFailure records why one candidate in the chain failed.
type AttemptFailure struct {
	Strategy string
	Err      error
}

// ExhaustedError is the terminal failure after every candidate in the
// chain has been tried. Unwrap surfaces the most specific underlying
// error: access-required takes precedence over generic provider errors.
type ExhaustedError struct {
	Failures []AttemptFailure
}

func (e *ExhaustedError) Error() string {
	reasons := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		reasons = append(reasons, f.Err.Error())
	}

	return fmt.Sprintf("all %d candidates failed: %s", len(e.Failures), strings.Join(reasons, "; "))
}

func (e *ExhaustedError) Unwrap() error {
	if len(e.Failures) == 0 {
		return nil
	}

	var accessErr *AccessRequiredError
	for _, f := range e.Failures {
		if errors.As(f.Err, &accessErr) {
			return f.Err
		}
	}

	return e.Failures[len(e.Failures)-1].Err
}
