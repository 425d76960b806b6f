package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// Response reports service liveness
type Response struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// reports liveness and uptime since process start
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:        "ok",
		Service:       "pixelrave",
		UptimeSeconds: int64(time.Since(startedAt).Seconds()),
	})
}

// responds with pong for connectivity checks
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
