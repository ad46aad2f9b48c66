package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"psychoai/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "psychoai"
)

type healthResp struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Service   string            `json:"service"`
	StartedAt response.DateTime `json:"started_at"`
	UptimeSec int64             `json:"uptime_sec"`
}

func (srv *HTTPServer) newHealthResp(status string) healthResp {
	return healthResp{
		Status:    status,
		Version:   HealthVersion,
		Service:   ServiceName,
		StartedAt: response.DateTime(srv.startedAt),
		UptimeSec: int64(time.Since(srv.startedAt).Seconds()),
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("healthy"))
}

// readyCheck returns ready once routes are registered.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("alive"))
}
