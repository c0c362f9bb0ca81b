package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devifai-2026/feauage-backend-sub001/middleware"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, services.InitJWTService("middleware-test-secret"))

	r := gin.New()
	r.GET("/dashboard/stats", middleware.AdminAuthMiddleware(), func(c *gin.Context) {
		id, ok := middleware.GetUserIDFromContext(c)
		role, _ := middleware.GetUserRoleFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok, "role": role})
	})
	return r
}

func TestAdminAuthMiddleware(t *testing.T) {
	r := authRouter(t)
	adminID := uuid.Must(uuid.NewV7())

	adminToken, err := services.GenerateAdminJWT(adminID.String(), "ops@feauage.in", models.RoleAdmin)
	require.NoError(t, err)
	customerToken, err := services.GenerateAdminJWT(uuid.NewString(), "buyer@example.com", models.RoleCustomer)
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		cookie   string
		wantCode int
	}{
		{"no token", "", "", http.StatusUnauthorized},
		{"not bearer", "Token " + adminToken, "", http.StatusUnauthorized},
		{"garbage", "Bearer not.a.jwt", "", http.StatusUnauthorized},
		{"customer role", "Bearer " + customerToken, "", http.StatusForbidden},
		{"admin header", "Bearer " + adminToken, "", http.StatusOK},
		{"admin cookie", "", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "admin_token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				var resp models.ApiResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, models.ResponseStatusFail, resp.Status)
				return
			}

			var body struct {
				ID   uuid.UUID `json:"id"`
				OK   bool      `json:"ok"`
				Role string    `json:"role"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, adminID, body.ID)
			assert.True(t, body.OK)
			assert.Equal(t, models.RoleAdmin, body.Role)
		})
	}
}
