package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/devifai-2026/feauage-backend-sub001/config"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services/reporting"
	"github.com/gin-gonic/gin"
)

// RespondError maps service errors onto the response envelope.
// Validation and conflict errors are 400, missing entities 404, everything else 500.
func RespondError(c *gin.Context, tag string, err error) {
	var (
		validation *reporting.ValidationError
		conflict   *reporting.ConflictError
		notFound   *reporting.NotFoundError
	)

	switch {
	case errors.As(err, &validation):
		log.Printf("[%s] validation err=%v", tag, err)
		c.JSON(http.StatusBadRequest, models.FailResponse(c, validation.Error()))
	case errors.As(err, &conflict):
		log.Printf("[%s] conflict err=%v", tag, err)
		c.JSON(http.StatusBadRequest, models.FailResponse(c, conflict.Error()))
	case errors.As(err, &notFound):
		log.Printf("[%s] not found err=%v", tag, err)
		c.JSON(http.StatusNotFound, models.FailResponse(c, notFound.Error()))
	default:
		log.Printf("[%s] ERROR err=%v", tag, err)
		message := "Internal server error"
		if !config.IsProduction() {
			message = message + ": " + err.Error()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, message))
	}
}

// BadRequest answers a request whose body or query could not be bound
func BadRequest(c *gin.Context, tag string, err error) {
	log.Printf("[%s] invalid request err=%v", tag, err)
	c.JSON(http.StatusBadRequest, models.FailResponse(c, "Invalid request: "+err.Error()))
}
