package cms_routes

import (
	"github.com/devifai-2026/feauage-backend-sub001/controllers/cms/dashboard_controller"
	"github.com/gin-gonic/gin"
)

// SetupDashboardRoutes expects rg to already carry admin auth and activity logging
func SetupDashboardRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")

	dashboard.GET("/stats", dashboard_controller.GetDashboardStats)
	dashboard.GET("/revenue-overview", dashboard_controller.GetRevenueOverview)
	dashboard.GET("/user-growth-progress", dashboard_controller.GetUserGrowthProgress)
	dashboard.POST("/set-target", dashboard_controller.SetMonthlyTarget)
	dashboard.GET("/monthly-target", dashboard_controller.GetMonthlyTarget)
}
