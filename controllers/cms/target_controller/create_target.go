package target_controller

import (
	"log"
	"net/http"

	"github.com/devifai-2026/feauage-backend-sub001/config"
	"github.com/devifai-2026/feauage-backend-sub001/middleware"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/utils"
	"github.com/gin-gonic/gin"
)

// CreateTarget godoc
// @Summary Create a target
// @Description Creates a revenue, orders, users or conversion target. endDate is derived from period unless period is custom. An overlapping live target of the same type is a conflict.
// @Tags Admin - Targets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateTargetRequest true "Target"
// @Success 201 {object} models.ApiResponse{data=models.Target}
// @Failure 400 {object} models.ApiResponse "Invalid input or overlapping target"
// @Failure 500 {object} models.ApiResponse
// @Router /targets [post]
func CreateTarget(c *gin.Context) {
	const tag = "admin.targets-create"
	log.Printf("[%s] start", tag)

	var req models.CreateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, tag, err)
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	target, err := targetService.Create(ctx, userID, req)
	if err != nil {
		utils.RespondError(c, tag, err)
		return
	}
	c.Set("createdResourceID", target.ID.String())

	log.Printf("[%s] respond 201 id=%s", tag, target.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Target created successfully", target))
}
