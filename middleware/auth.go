package middleware

import (
	"log"
	"net/http"
	"slices"
	"strings"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserID    = "userID"
	ctxUserEmail = "userEmail"
	ctxUserRole  = "userRole"
)

// AdminAuthMiddleware validates the JWT from the admin_token cookie or the
// Authorization header and only lets admin and superadmin roles through
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.FailResponse(c, "Unauthorized - no token provided"))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.FailResponse(c, "Unauthorized - invalid token format"))
				return
			}
			token = parts[1]
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.FailResponse(c, "Unauthorized - invalid token"))
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			log.Printf("[auth] malformed user id in token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.FailResponse(c, "Unauthorized - invalid token"))
			return
		}

		if !slices.Contains(models.AdminRoles, claims.Role) {
			log.Printf("[auth] role %q denied on %s", claims.Role, c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, models.FailResponse(c, "Forbidden - admin access required"))
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxUserEmail, claims.Email)
		c.Set(ctxUserRole, claims.Role)

		c.Next()
	}
}

func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	return c.GetString(ctxUserRole), c.GetString(ctxUserRole) != ""
}

func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	return c.GetString(ctxUserEmail), c.GetString(ctxUserEmail) != ""
}
