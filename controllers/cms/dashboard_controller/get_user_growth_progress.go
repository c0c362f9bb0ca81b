package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/devifai-2026/feauage-backend-sub001/config"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/utils"
	"github.com/gin-gonic/gin"
)

// GetUserGrowthProgress godoc
// @Summary Get weekly user growth
// @Description New users, orders, sessions and conversion per complete Monday-Sunday week. The current week is never included.
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param period query string false "Window" Enums(4weeks, 8weeks, 12weeks) default(4weeks)
// @Success 200 {object} models.ApiResponse{data=models.UserGrowthProgress}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/user-growth-progress [get]
func GetUserGrowthProgress(c *gin.Context) {
	const tag = "admin.dashboard-user-growth"
	period := c.Query("period")
	log.Printf("[%s] start period=%q", tag, period)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	progress, err := dashboardService.UserGrowthProgress(ctx, period)
	if err != nil {
		utils.RespondError(c, tag, err)
		return
	}

	log.Printf("[%s] respond 200 weeks=%d", tag, len(progress.Weeks))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "User growth progress retrieved successfully", progress))
}
