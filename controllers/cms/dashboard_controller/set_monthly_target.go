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

// SetMonthlyTarget godoc
// @Summary Set this month's target
// @Description Creates or updates the monthly target of the given type for the current IST month
// @Tags Admin - Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SetMonthlyTargetRequest true "Target value and optional type"
// @Success 200 {object} models.ApiResponse{data=models.Target} "Updated"
// @Success 201 {object} models.ApiResponse{data=models.Target} "Created"
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/set-target [post]
func SetMonthlyTarget(c *gin.Context) {
	const tag = "admin.dashboard-set-target"
	log.Printf("[%s] start", tag)

	var req models.SetMonthlyTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, tag, err)
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	target, created, err := targetService.SetMonthlyTarget(ctx, userID, req)
	if err != nil {
		utils.RespondError(c, tag, err)
		return
	}
	c.Set("createdResourceID", target.ID.String())

	if created {
		log.Printf("[%s] respond 201 id=%s", tag, target.ID)
		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Monthly target created successfully", target))
		return
	}
	log.Printf("[%s] respond 200 id=%s", tag, target.ID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly target updated successfully", target))
}
