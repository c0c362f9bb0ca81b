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

// UpdateTarget godoc
// @Summary Update a target
// @Description Partial update. Completed targets can only be archived; status may only be set to completed or archived.
// @Tags Admin - Targets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Target ID"
// @Param request body models.UpdateTargetRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Target}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /targets/{id} [patch]
func UpdateTarget(c *gin.Context) {
	const tag = "admin.targets-update"
	id, ok := parseTargetID(c, tag)
	if !ok {
		return
	}
	log.Printf("[%s] start id=%s", tag, id)

	var req models.UpdateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, tag, err)
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	target, err := targetService.Update(ctx, userID, id, req)
	if err != nil {
		utils.RespondError(c, tag, err)
		return
	}

	log.Printf("[%s] respond 200 id=%s status=%s", tag, id, target.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Target updated successfully", target))
}
