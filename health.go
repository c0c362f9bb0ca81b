package main

import (
	"context"
	"log"
	"net/http"

	"github.com/devifai-2026/feauage-backend-sub001/config"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/gin-gonic/gin"
)

type pingFunc func(ctx context.Context) error

// healthHandler answers 503 as soon as any backing store fails its ping.
func healthHandler(checks map[string]pingFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		results := gin.H{}
		healthy := true
		for name, ping := range checks {
			if err := ping(ctx); err != nil {
				log.Printf("[healthz] %s: %v", name, err)
				results[name] = err.Error()
				healthy = false
				continue
			}
			results[name] = "ok"
		}

		if !healthy {
			resp := models.ErrorResponse(c, "Dependency unavailable")
			resp.Data = results
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", results))
	}
}
