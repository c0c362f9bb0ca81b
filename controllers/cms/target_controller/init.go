package target_controller

import (
	"log"
	"net/http"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services/reporting"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var targetService *reporting.TargetService

// Init wires the target service used by every handler in this package
func Init(targets *reporting.TargetService) {
	targetService = targets
}

// parseTargetID reads :id and answers 400 itself when it is not a UUID
func parseTargetID(c *gin.Context, tag string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Printf("[%s] invalid id=%q", tag, c.Param("id"))
		c.JSON(http.StatusBadRequest, models.FailResponse(c, "Invalid target ID"))
		return uuid.Nil, false
	}
	return id, true
}
