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

// GetCurrentTargets godoc
// @Summary Get current targets
// @Description Active targets whose range contains now, with live progress
// @Tags Admin - Targets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Target}
// @Failure 500 {object} models.ApiResponse
// @Router /targets/current [get]
func GetCurrentTargets(c *gin.Context) {
	const tag = "admin.targets-current"
	log.Printf("[%s] start", tag)

	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	targets, err := targetService.Current(ctx, userID)
	if err != nil {
		utils.RespondError(c, tag, err)
		return
	}
	if targets == nil {
		targets = []models.Target{}
	}

	log.Printf("[%s] respond 200 count=%d", tag, len(targets))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Current targets retrieved successfully", targets))
}
