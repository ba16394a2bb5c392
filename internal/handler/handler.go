package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/racha-stats-service/internal/service"
)

// Register mounts all public routes on the given engine.
// metrics may be nil, in which case /metrics is not exposed.
func Register(r *gin.Engine, repo Pinger, standingsSvc service.StandingsService, metrics http.Handler) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewStandingsHandler(standingsSvc).Register(api)
	}
}
