package generate

import (
	"context"
	"encoding/base64"
	stderrors "errors"
	"net/http"

	"codeberg.org/pixelrave/server/internal/auth"
	"codeberg.org/pixelrave/server/internal/errors"
	"codeberg.org/pixelrave/server/internal/imagegen"
	"codeberg.org/pixelrave/server/internal/logger"
	"codeberg.org/pixelrave/server/internal/sessions"
	"codeberg.org/pixelrave/server/internal/studio"
	"github.com/gin-gonic/gin"
)

// Generator runs one full generation pipeline against a session.
type Generator interface {
	Submit(ctx context.Context, session *sessions.Session, req imagegen.Request) *studio.Result
}

// creates a handler for image generation
func Handler(generator Generator, sessionMgr *sessions.Manager, registry *imagegen.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		model, ok := registry.Get(req.ModelID)
		if !ok {
			errors.BadRequest(c, "unknown model: "+req.ModelID, nil)
			return
		}

		genReq := imagegen.Request{
			Prompt:         req.Prompt,
			NegativePrompt: req.NegativePrompt,
			ModelID:        req.ModelID,
			Width:          req.Width,
			Height:         req.Height,
			GuidanceScale:  req.GuidanceScale,
			Steps:          req.Steps,
			Seed:           -1,
		}

		if req.Seed != nil {
			genReq.Seed = *req.Seed
		}

		if err := model.ValidateRequest(genReq); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// resolve the session: reuse when a valid one is supplied,
		// otherwise start a fresh one
		session, exists := sessionMgr.GetSession(req.SessionID)

		if !exists {
			var err error

			session, err = sessionMgr.CreateSession()
			if err != nil {
				errors.InternalError(c, "failed to create session", err)
				return
			}
		}

		// absorb identity from the optional auth middleware
		if identity, ok := auth.GetIdentity(c); ok && !session.AuthState().Authenticated {
			if err := sessionMgr.SetAuth(session.ID, identity); err != nil {
				logger.Warn("failed to attach identity to session",
					"session_id", session.ID,
					"error", err,
				)
			}
		}

		// one pipeline per session at a time
		session.Lock()
		result := generator.Submit(c.Request.Context(), session, genReq)
		session.Unlock()

		if err := sessionMgr.Touch(session.ID); err != nil {
			logger.Warn("failed to touch session", "session_id", session.ID, "error", err)
		}

		switch result.Outcome {
		case studio.OutcomeRejectedEmpty:
			errors.EmptyPrompt(c)

		case studio.OutcomeRejectedQuota:
			errors.QuotaExceeded(c)

		case studio.OutcomeFailed:
			var accessErr *imagegen.AccessRequiredError

			if stderrors.As(result.Err, &accessErr) {
				errors.AccessRequired(c, accessErr.ModelID)
			} else {
				errors.GenerationFailed(c, result.Err)
			}

		case studio.OutcomeGenerated:
			c.JSON(http.StatusOK, Response{
				ImageBase64:    base64.StdEncoding.EncodeToString(result.ImageBytes),
				ElapsedMs:      result.Elapsed.Milliseconds(),
				ModelID:        req.ModelID,
				SessionID:      session.ID, // return session ID so the client can keep its gallery
				QuotaRemaining: result.QuotaRemaining,
			})
		}
	}
}
