package target_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/devifai-2026/feauage-backend-sub001/config"
	"github.com/devifai-2026/feauage-backend-sub001/middleware"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/utils"
	"github.com/gin-gonic/gin"
)

// GetTargets godoc
// @Summary List targets
// @Description Paginated targets of the caller, newest period first. Returned targets are reconciled against live data.
// @Tags Admin - Targets
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param targetType query string false "Filter by type" Enums(revenue, orders, users, conversion)
// @Param period query string false "Filter by period" Enums(daily, weekly, monthly, quarterly, half-yearly, yearly, custom)
// @Param status query string false "Filter by status" Enums(not-started, active, in-progress, completed, failed, archived)
// @Param isActive query bool false "Filter by active flag"
// @Success 200 {object} models.ApiResponse{data=[]models.Target}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /targets [get]
func GetTargets(c *gin.Context) {
	const tag = "admin.targets-list"
	log.Printf("[%s] start", tag)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := models.TargetFilter{
		TargetType: c.Query("targetType"),
		Period:     c.Query("period"),
		Status:     c.Query("status"),
		Page:       page,
		Limit:      limit,
	}
	if raw := c.Query("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.BadRequest(c, tag, err)
			return
		}
		filter.IsActive = &active
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	targets, total, err := targetService.List(ctx, userID, filter)
	if err != nil {
		utils.RespondError(c, tag, err)
		return
	}
	if targets == nil {
		targets = []models.Target{}
	}

	log.Printf("[%s] respond 200 count=%d total=%d", tag, len(targets), total)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Targets retrieved successfully", targets, models.NewPagination(page, limit, total)))
}
