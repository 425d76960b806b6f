package generate

import (
	"codeberg.org/pixelrave/server/internal/auth"
	"codeberg.org/pixelrave/server/internal/imagegen"
	"codeberg.org/pixelrave/server/internal/logger"
	"codeberg.org/pixelrave/server/internal/sessions"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// per-IP transport limit for the generate endpoint, distinct from the
// per-session daily quota
const generateRateLimit = "30-M"

// registers image generation routes
func RegisterRoutes(router *gin.RouterGroup, generator Generator, sessionMgr *sessions.Manager, registry *imagegen.Registry) {
	router.POST("/generate",
		rateLimitMiddleware(),
		auth.OptionalAuthMiddleware(),
		Handler(generator, sessionMgr, registry),
	)
}

// builds the per-IP rate limiting middleware backed by an in-memory store
func rateLimitMiddleware() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(generateRateLimit)
	if err != nil {
		logger.FatalErr(err, "invalid rate limit format", "rate", generateRateLimit)
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
