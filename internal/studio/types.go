package studio

import "time"

// Outcome classifies what happened to a submitted generation.
type Outcome int

const (
	// the chain produced an image and the gallery was updated
	OutcomeGenerated Outcome = iota

	// the trimmed prompt was empty; nothing was consumed
	OutcomeRejectedEmpty

	// the daily quota was exhausted; no provider was attempted
	OutcomeRejectedQuota

	// every candidate failed, or access to the model is not configured
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGenerated:
		return "generated"
	case OutcomeRejectedEmpty:
		return "rejected_empty"
	case OutcomeRejectedQuota:
		return "rejected_quota"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the normalized outcome returned to the caller. Err is set
// only for OutcomeFailed and always carries the specific underlying
// reason; it is never swallowed.
type Result struct {
	Outcome        Outcome
	ImageBytes     []byte
	Elapsed        time.Duration
	QuotaRemaining int
	Err            error
}
