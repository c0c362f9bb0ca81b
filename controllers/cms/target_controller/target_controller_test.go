package target_controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/controllers/cms/target_controller"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services/reporting"
	"github.com/devifai-2026/feauage-backend-sub001/testdata/mockreporting"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TargetControllerTestSuite struct {
	suite.Suite
	orders *mockreporting.OrderReader
	store  *mockreporting.TargetStore
	router *gin.Engine
	userID uuid.UUID
}

func TestTargetControllerTestSuite(t *testing.T) {
	suite.Run(t, new(TargetControllerTestSuite))
}

func (s *TargetControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.orders = new(mockreporting.OrderReader)
	s.store = new(mockreporting.TargetStore)
	s.userID = uuid.Must(uuid.NewV7())

	agg := reporting.NewAggregator(s.orders, new(mockreporting.UserReader), new(mockreporting.SessionReader))
	targets := reporting.NewTargetService(s.store, agg)
	targets.Now = func() time.Time { return time.Date(2026, time.October, 14, 12, 0, 0, 0, reporting.IST) }
	target_controller.Init(targets)

	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		c.Set("userID", s.userID)
		c.Next()
	})
	s.router.POST("/targets", target_controller.CreateTarget)
	s.router.GET("/targets", target_controller.GetTargets)
	s.router.GET("/targets/:id", target_controller.GetTargetByID)
	s.router.DELETE("/targets/:id", target_controller.DeleteTarget)
	s.router.PATCH("/targets/:id/archive", target_controller.ArchiveTarget)
}

func (s *TargetControllerTestSuite) TearDownTest() {
	s.orders.AssertExpectations(s.T())
	s.store.AssertExpectations(s.T())
}

func (s *TargetControllerTestSuite) do(method, path string, body any) (*httptest.ResponseRecorder, models.ApiResponse) {
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

func (s *TargetControllerTestSuite) TestInvalidIDIs400() {
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w, resp := s.do(method, "/targets/not-a-uuid", nil)

		s.Equal(http.StatusBadRequest, w.Code, method)
		s.Equal("Invalid target ID", resp.Message, method)
	}
}

func (s *TargetControllerTestSuite) TestMissingTargetIs404() {
	id := uuid.Must(uuid.NewV7())
	s.store.On("Get", mock.Anything, s.userID, id).Return(nil, &reporting.NotFoundError{Entity: "target", ID: id.String()})

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/targets/" + id.String()},
		{http.MethodDelete, "/targets/" + id.String()},
		{http.MethodPatch, "/targets/" + id.String() + "/archive"},
	} {
		w, resp := s.do(req.method, req.path, nil)

		s.Equal(http.StatusNotFound, w.Code, req.path)
		s.Equal(models.ResponseStatusFail, resp.Status, req.path)
	}
}

func (s *TargetControllerTestSuite) TestCreateMissingFieldsIs400() {
	w, resp := s.do(http.MethodPost, "/targets", map[string]any{"targetType": "revenue"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(resp.Message, "Invalid request")
}

func (s *TargetControllerTestSuite) TestCreateOverlappingActiveTargetIs400() {
	start := time.Date(2026, time.October, 1, 0, 0, 0, 0, reporting.IST)
	end := start.AddDate(0, 1, 0)
	existing := models.Target{
		ID:           uuid.Must(uuid.NewV7()),
		UserID:       s.userID,
		TargetType:   models.TargetTypeRevenue,
		Period:       models.TargetPeriodMonthly,
		StartDate:    start,
		EndDate:      end,
		TargetValue:  100000,
		CurrentValue: 25000,
		Progress:     25,
		Status:       models.TargetStatusActive,
		IsActive:     true,
	}
	s.store.On("FindOverlapping", mock.Anything, s.userID, models.TargetTypeRevenue, mock.Anything, mock.Anything, uuid.Nil).
		Return([]models.Target{existing}, nil)
	s.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(25000.0, nil)

	w, resp := s.do(http.MethodPost, "/targets", map[string]any{
		"targetType":  "revenue",
		"period":      "monthly",
		"startDate":   start.Format(time.RFC3339),
		"targetValue": 50000,
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(models.ResponseStatusFail, resp.Status)
	s.Contains(resp.Message, existing.ID.String())
}

func (s *TargetControllerTestSuite) TestListPaginates() {
	s.store.On("List", mock.Anything, s.userID, mock.MatchedBy(func(f models.TargetFilter) bool {
		return f.Page == 2 && f.Limit == 5 && f.TargetType == models.TargetTypeRevenue
	})).Return([]models.Target{}, int64(12), nil)

	w, resp := s.do(http.MethodGet, "/targets?page=2&limit=5&targetType=revenue", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Require().NotNil(resp.Meta)
	s.Equal(3, resp.Meta.TotalPages)
	s.Equal(12, resp.Meta.Total)
}

func (s *TargetControllerTestSuite) TestListRejectsUnknownStatus() {
	w, resp := s.do(http.MethodGet, "/targets?status=paused", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(resp.Message, "status")
}

func (s *TargetControllerTestSuite) TestListRejectsBadActiveFlag() {
	w, _ := s.do(http.MethodGet, "/targets?isActive=maybe", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}
