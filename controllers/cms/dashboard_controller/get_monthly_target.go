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

// GetMonthlyTarget godoc
// @Summary Get this month's target
// @Description The current IST month's target of the given type with its live value. target is null when none is set.
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param targetType query string false "Target type" Enums(revenue, orders, users, conversion) default(revenue)
// @Success 200 {object} models.ApiResponse{data=models.MonthlyTargetResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/monthly-target [get]
func GetMonthlyTarget(c *gin.Context) {
	const tag = "admin.dashboard-monthly-target"
	targetType := c.Query("targetType")
	log.Printf("[%s] start targetType=%q", tag, targetType)

	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	resp, err := targetService.MonthlyTarget(ctx, userID, targetType)
	if err != nil {
		utils.RespondError(c, tag, err)
		return
	}

	log.Printf("[%s] respond 200 current=%.2f", tag, resp.CurrentValue)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly target retrieved successfully", resp))
}
