package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/devifai-2026/feauage-backend-sub001/config"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps URL segments to resource types
var pathToResourceType = map[string]string{
	"targets":    models.ResourceTypeTarget,
	"set-target": models.ResourceTypeTarget,
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	http.MethodPost:   "created",
	http.MethodPatch:  "updated",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

// ResourceFetcher loads the current state of a resource for the before/after snapshot.
// It returns nil when the resource cannot be loaded.
type ResourceFetcher func(ctx context.Context, resourceType, resourceID string) any

// GormResourceFetcher reads targets through gorm
func GormResourceFetcher(db *gorm.DB) ResourceFetcher {
	return func(ctx context.Context, resourceType, resourceID string) any {
		if db == nil || resourceType != models.ResourceTypeTarget {
			return nil
		}
		var target models.Target
		if err := db.WithContext(ctx).First(&target, "id = ?", resourceID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[activity-logging] failed to fetch target %s: %v", resourceID, err)
			}
			return nil
		}
		return target
	}
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware records every mutating admin request.
// Must be used AFTER AdminAuthMiddleware (which sets userID and userRole).
func ActivityLoggingMiddleware(fetch ResourceFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		actorID, ok := GetUserIDFromContext(c)
		if !ok {
			log.Printf("[activity-logging] warning: user info not in context")
			c.Next()
			return
		}
		actorRole, _ := GetUserRoleFromContext(c)

		resourceType := extractResourceType(c.Request.URL.Path)
		if resourceType == "" {
			c.Next()
			return
		}
		action := actionFor(c.Request.Method, c.Request.URL.Path, resourceType)
		if action == "" {
			log.Printf("[activity-logging] unknown HTTP method: %s", c.Request.Method)
			c.Next()
			return
		}

		resourceID := c.Param("id")

		var before any
		if c.Request.Method != http.MethodPost && resourceID != "" {
			ctx, cancel := config.WithTimeout()
			before = fetch(ctx, resourceType, resourceID)
			cancel()
		}

		c.Next()

		statusCode := c.Writer.Status()
		req := services.LogActivityRequest{
			ActorID:      actorID,
			ActorRole:    actorRole,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			StatusCode:   statusCode,
			Context:      c,
		}

		if statusCode >= 200 && statusCode < 300 {
			var after any
			if c.Request.Method != http.MethodDelete {
				if id := createdID(c, resourceID); id != "" {
					req.ResourceID = id
					ctx, cancel := config.WithTimeout()
					after = fetch(ctx, resourceType, id)
					cancel()
				}
			}
			req.Changes = services.CreateChanges(before, after)
			req.Status = models.StatusSuccess
			log.Printf("[activity-logging] success: %s by %s", action, actorID)
		} else {
			req.Status = models.StatusFailed
			req.ErrorMessage = "Request failed with status " + http.StatusText(statusCode)
			log.Printf("[activity-logging] failed: %s by %s - status %d", action, actorID, statusCode)
		}

		services.LogActivity(req)
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// extractResourceType walks the path backwards to the first known resource segment
// e.g., "/api/v1/targets/0192.../archive" → "target"
func extractResourceType(path string) string {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if isIDParam(parts[i]) {
			continue
		}
		if resourceType, exists := pathToResourceType[parts[i]]; exists {
			return resourceType
		}
	}
	return ""
}

// actionFor picks the audit action, e.g. PATCH /targets/:id/archive → archived_target
func actionFor(method, path, resourceType string) string {
	switch {
	case strings.HasSuffix(path, "/archive"):
		return models.ActionArchiveTarget
	case strings.HasSuffix(path, "/set-target"):
		return models.ActionSetMonthlyTarget
	}
	verb := methodToActionVerb[method]
	if verb == "" {
		return ""
	}
	return verb + "_" + resourceType
}

// createdID prefers the id a handler published with c.Set("createdResourceID", ...)
func createdID(c *gin.Context, fallback string) string {
	if id := c.GetString("createdResourceID"); id != "" {
		return id
	}
	return fallback
}

// isIDParam checks if a path segment is an ID parameter
func isIDParam(segment string) bool {
	if segment == ":id" || segment == "" {
		return true
	}
	_, err := uuid.Parse(segment)
	return err == nil
}
