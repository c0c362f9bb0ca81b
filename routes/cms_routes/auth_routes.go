package cms_routes

import (
	"github.com/devifai-2026/feauage-backend-sub001/controllers/cms/auth_controller"
	"github.com/devifai-2026/feauage-backend-sub001/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers login (public) and logout (authenticated)
func SetupAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	auth.POST("/login", auth_controller.AdminLogin)
	auth.POST("/logout", middleware.AdminAuthMiddleware(), auth_controller.AdminLogout)
}
