package studio

import (
	"context"
	"strings"
	"time"

	"codeberg.org/pixelrave/server/internal/gallery"
	"codeberg.org/pixelrave/server/internal/imagegen"
	"codeberg.org/pixelrave/server/internal/logger"
	"codeberg.org/pixelrave/server/internal/quota"
	"codeberg.org/pixelrave/server/internal/sessions"
)

// CandidateFunc produces the ordered provider strategies to try for a
// model id. Order is significant: the first success wins.
type CandidateFunc func(modelID string) []imagegen.Strategy

// Studio ties the orchestration core together: it validates input,
// charges the session's daily quota, drives the provider chain, and
// records successes into the session's gallery.
type Studio struct {
	tracker    *quota.Tracker
	chain      *imagegen.Chain
	candidates CandidateFunc
}

func New(tracker *quota.Tracker, chain *imagegen.Chain, candidates CandidateFunc) *Studio {
	return &Studio{
		tracker:    tracker,
		chain:      chain,
		candidates: candidates,
	}
}

// Submit runs one full generation pipeline against the session's
// state. The quota is consumed exactly once per submitted action,
// regardless of how many candidates are tried and regardless of the
// final outcome; an empty prompt or a denied quota consumes nothing
// provider-side. The caller must hold the session's pipeline lock.
func (s *Studio) Submit(ctx context.Context, session *sessions.Session, req imagegen.Request) *Result {
	req.Prompt = strings.TrimSpace(req.Prompt)

	if req.Prompt == "" {
		return &Result{
			Outcome:        OutcomeRejectedEmpty,
			QuotaRemaining: s.tracker.Remaining(&session.Quota),
		}
	}

	consume := s.tracker.TryConsume(&session.Quota)
	if !consume.Allowed {
		logger.Info("generation rejected, daily quota exhausted",
			"session_id", session.ID,
			"limit", session.Quota.Limit,
		)

		return &Result{Outcome: OutcomeRejectedQuota, QuotaRemaining: 0}
	}

	start := time.Now()
	imageBytes, failures, err := s.chain.Generate(ctx, req, s.candidates(req.ModelID))
	elapsed := time.Since(start)

	if err != nil {
		logger.Warn("generation failed",
			"session_id", session.ID,
			"model_id", req.ModelID,
			"candidates_tried", len(failures),
			"elapsed", elapsed,
			"error", err,
		)

		return &Result{
			Outcome:        OutcomeFailed,
			Elapsed:        elapsed,
			QuotaRemaining: consume.Remaining,
			Err:            err,
		}
	}

	session.Gallery.Record(gallery.Entry{
		ImageBytes: imageBytes,
		Prompt:     req.Prompt,
		ModelID:    req.ModelID,
		CreatedAt:  time.Now().UTC(),
	})

	logger.Info("image generated",
		"session_id", session.ID,
		"model_id", req.ModelID,
		"bytes", len(imageBytes),
		"fallbacks_used", len(failures),
		"elapsed", elapsed,
	)

	return &Result{
		Outcome:        OutcomeGenerated,
		ImageBytes:     imageBytes,
		Elapsed:        elapsed,
		QuotaRemaining: consume.Remaining,
	}
}
