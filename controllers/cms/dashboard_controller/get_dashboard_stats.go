package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/devifai-2026/feauage-backend-sub001/config"
	"github.com/devifai-2026/feauage-backend-sub001/middleware"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/gin-gonic/gin"
)

// GetDashboardStats godoc
// @Summary Get dashboard stats
// @Description Stat cards with month-over-month growth, the Jan..Dec revenue chart, six months of target vs actual, four complete weeks of user growth, recent orders and users, performance metrics and current targets. Failed sections are zeroed and listed in degraded.
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardStats}
// @Failure 401 {object} models.ApiResponse
// @Router /dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	log.Printf("[admin.dashboard-stats] start")

	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	stats := dashboardService.Stats(ctx, userID)
	if len(stats.Degraded) > 0 {
		log.Printf("[admin.dashboard-stats] degraded sections=%v", stats.Degraded)
	}

	log.Printf("[admin.dashboard-stats] respond 200")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats retrieved successfully", stats))
}
