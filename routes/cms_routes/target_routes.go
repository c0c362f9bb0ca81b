package cms_routes

import (
	"github.com/devifai-2026/feauage-backend-sub001/controllers/cms/target_controller"
	"github.com/gin-gonic/gin"
)

// SetupTargetRoutes expects rg to already carry admin auth and activity logging
func SetupTargetRoutes(rg *gin.RouterGroup) {
	targets := rg.Group("/targets")

	targets.POST("", target_controller.CreateTarget)
	targets.GET("", target_controller.GetTargets)

	// static segments before :id
	targets.GET("/current", target_controller.GetCurrentTargets)
	targets.GET("/stats", target_controller.GetTargetStats)

	targets.GET("/:id", target_controller.GetTargetByID)
	targets.PATCH("/:id", target_controller.UpdateTarget)
	targets.DELETE("/:id", target_controller.DeleteTarget)
	targets.PATCH("/:id/archive", target_controller.ArchiveTarget)
}
