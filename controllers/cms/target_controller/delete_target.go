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

// DeleteTarget godoc
// @Summary Delete a target
// @Tags Admin - Targets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Target ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /targets/{id} [delete]
func DeleteTarget(c *gin.Context) {
	const tag = "admin.targets-delete"
	id, ok := parseTargetID(c, tag)
	if !ok {
		return
	}
	log.Printf("[%s] start id=%s", tag, id)

	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if err := targetService.Delete(ctx, userID, id); err != nil {
		utils.RespondError(c, tag, err)
		return
	}

	log.Printf("[%s] respond 200 id=%s", tag, id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Target deleted successfully", gin.H{"id": id}))
}
