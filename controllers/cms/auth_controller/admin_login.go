package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/devifai-2026/feauage-backend-sub001/config"
	"github.com/devifai-2026/feauage-backend-sub001/middleware"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services"
	"github.com/devifai-2026/feauage-backend-sub001/utils"
	"github.com/gin-gonic/gin"
)

// AdminLogin godoc
// @Summary Login as admin
// @Description Authenticate an admin or superadmin with email and password. Returns a JWT and sets the admin_token cookie.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.LoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Disabled account or not an admin"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/login [post]
func AdminLogin(c *gin.Context) {
	const tag = "admin.login"
	log.Printf("[%s] attempt", tag)

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, tag, err)
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	resp, err := services.GetAdminAuthService().Login(ctx, req)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Printf("[%s] invalid credentials: %s", tag, req.Email)
		c.JSON(http.StatusBadRequest, models.FailResponse(c, "Invalid email or password"))
		return
	case errors.Is(err, services.ErrAccountDisabled), errors.Is(err, services.ErrNotAdmin):
		log.Printf("[%s] denied: %s err=%v", tag, req.Email, err)
		c.JSON(http.StatusForbidden, models.FailResponse(c, "Access denied"))
		return
	case err != nil:
		log.Printf("[%s] ERROR err=%v", tag, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", resp.Token, 24*60*60, "/", "", config.IsProduction(), true)

	services.LogActivity(services.LogActivityRequest{
		ActorID:      resp.User.ID,
		ActorRole:    resp.Role,
		Action:       models.ActionAdminLogin,
		ResourceType: models.ResourceTypeAdmin,
		ResourceID:   resp.User.ID.String(),
		StatusCode:   http.StatusOK,
		Status:       models.StatusSuccess,
		Context:      c,
	})

	log.Printf("[%s] success: %s (%s)", tag, resp.User.Email, resp.User.ID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", resp))
}

// AdminLogout godoc
// @Summary Logout
// @Description Clears the admin_token cookie
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", "", -1, "/", "", config.IsProduction(), true)
	email, _ := middleware.GetUserEmailFromContext(c)
	log.Printf("[admin.logout] cookie cleared email=%s", email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
