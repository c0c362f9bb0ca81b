package dashboard_controller_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/controllers/cms/dashboard_controller"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services/reporting"
	"github.com/devifai-2026/feauage-backend-sub001/testdata/mockreporting"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardControllerTestSuite struct {
	suite.Suite
	orders   *mockreporting.OrderReader
	users    *mockreporting.UserReader
	sessions *mockreporting.SessionReader
	store    *mockreporting.TargetStore
	router   *gin.Engine
	userID   uuid.UUID
}

func TestDashboardControllerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardControllerTestSuite))
}

func (s *DashboardControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.orders = new(mockreporting.OrderReader)
	s.users = new(mockreporting.UserReader)
	s.sessions = new(mockreporting.SessionReader)
	s.store = new(mockreporting.TargetStore)
	s.userID = uuid.Must(uuid.NewV7())

	agg := reporting.NewAggregator(s.orders, s.users, s.sessions)
	targets := reporting.NewTargetService(s.store, agg)
	targets.Now = func() time.Time { return time.Date(2026, time.October, 14, 12, 0, 0, 0, reporting.IST) }
	dashboard_controller.Init(reporting.NewDashboardService(agg, targets), targets)

	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		c.Set("userID", s.userID)
		c.Next()
	})
	s.router.GET("/dashboard/stats", dashboard_controller.GetDashboardStats)
	s.router.GET("/dashboard/revenue-overview", dashboard_controller.GetRevenueOverview)
	s.router.GET("/dashboard/user-growth-progress", dashboard_controller.GetUserGrowthProgress)
	s.router.POST("/dashboard/set-target", dashboard_controller.SetMonthlyTarget)
	s.router.GET("/dashboard/monthly-target", dashboard_controller.GetMonthlyTarget)
}

func (s *DashboardControllerTestSuite) TearDownTest() {
	s.orders.AssertExpectations(s.T())
	s.store.AssertExpectations(s.T())
}

func (s *DashboardControllerTestSuite) do(method, path string, body any) (*httptest.ResponseRecorder, models.ApiResponse) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp models.ApiResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func (s *DashboardControllerTestSuite) TestRevenueOverviewRejectsUnknownPeriod() {
	w, resp := s.do(http.MethodGet, "/dashboard/revenue-overview?period=2years", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(models.ResponseStatusFail, resp.Status)
	s.Contains(resp.Message, "period")
}

func (s *DashboardControllerTestSuite) TestUserGrowthRejectsUnknownPeriod() {
	w, resp := s.do(http.MethodGet, "/dashboard/user-growth-progress?period=3weeks", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(models.ResponseStatusFail, resp.Status)
}

func (s *DashboardControllerTestSuite) TestRevenueOverviewStoreFailureIs500() {
	s.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(0.0, errors.New("pool closed"))
	s.orders.On("CountOrders", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil).Maybe()
	s.store.On("FindInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	w, resp := s.do(http.MethodGet, "/dashboard/revenue-overview", nil)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal(models.ResponseStatusError, resp.Status)
}

func (s *DashboardControllerTestSuite) TestStatsDegradesInsteadOfFailing() {
	fail := errors.New("pool closed")
	s.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(0.0, fail)
	s.orders.On("CountOrders", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), fail)
	s.orders.On("CountDistinctCustomers", mock.Anything, mock.Anything).Return(int64(0), fail)
	s.orders.On("RecentOrders", mock.Anything, mock.Anything).Return(nil, fail)
	s.users.On("CountNewUsers", mock.Anything, mock.Anything).Return(int64(0), fail)
	s.users.On("RecentUsers", mock.Anything, mock.Anything).Return(nil, fail)
	s.sessions.On("SessionStats", mock.Anything, mock.Anything).Return(models.SessionStats{}, fail)
	s.sessions.On("CountSessions", mock.Anything, mock.Anything).Return(int64(0), fail)
	s.store.On("FindInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, fail)
	s.store.On("FindActiveAt", mock.Anything, mock.Anything, mock.Anything).Return(nil, fail)

	w, resp := s.do(http.MethodGet, "/dashboard/stats", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal(models.ResponseStatusSuccess, resp.Status)
	data, ok := resp.Data.(map[string]any)
	s.Require().True(ok)
	s.NotEmpty(data["degraded"])
}

func (s *DashboardControllerTestSuite) TestSetTargetRequiresValue() {
	w, resp := s.do(http.MethodPost, "/dashboard/set-target", map[string]any{"targetType": "revenue"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(models.ResponseStatusFail, resp.Status)
}

func (s *DashboardControllerTestSuite) TestMonthlyTargetRejectsUnknownType() {
	w, resp := s.do(http.MethodGet, "/dashboard/monthly-target?targetType=profit", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(models.ResponseStatusFail, resp.Status)
}
