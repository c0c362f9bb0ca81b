package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/devifai-2026/feauage-backend-sub001/config"
	"github.com/devifai-2026/feauage-backend-sub001/middleware"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/utils"
	"github.com/gin-gonic/gin"
)

// GetRevenueOverview godoc
// @Summary Get revenue overview
// @Description Monthly revenue, order counts and prorated revenue targets for the chosen window, with growth against the preceding window
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param period query string false "Window" Enums(3months, 6months, yearly) default(6months)
// @Success 200 {object} models.ApiResponse{data=models.RevenueOverview}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/revenue-overview [get]
func GetRevenueOverview(c *gin.Context) {
	const tag = "admin.dashboard-revenue-overview"
	period := c.Query("period")
	log.Printf("[%s] start period=%q", tag, period)

	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	overview, err := dashboardService.RevenueOverview(ctx, userID, period)
	if err != nil {
		utils.RespondError(c, tag, err)
		return
	}

	log.Printf("[%s] respond 200 buckets=%d", tag, len(overview.Buckets))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Revenue overview retrieved successfully", overview))
}
