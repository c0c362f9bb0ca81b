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

// GetTargetStats godoc
// @Summary Get target stats
// @Description Counts per status and type, average progress and completion rate
// @Tags Admin - Targets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.TargetStats}
// @Failure 500 {object} models.ApiResponse
// @Router /targets/stats [get]
func GetTargetStats(c *gin.Context) {
	const tag = "admin.targets-stats"
	log.Printf("[%s] start", tag)

	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	stats, err := targetService.Stats(ctx, userID)
	if err != nil {
		utils.RespondError(c, tag, err)
		return
	}

	log.Printf("[%s] respond 200 total=%d", tag, stats.Total)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Target stats retrieved successfully", stats))
}
