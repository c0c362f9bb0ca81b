package reporting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services/reporting"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TargetServiceTestSuite struct {
	suite.Suite
	f      *fixture
	ctx    context.Context
	userID uuid.UUID
}

func TestTargetServiceSuite(t *testing.T) {
	suite.Run(t, new(TargetServiceTestSuite))
}

func (s *TargetServiceTestSuite) SetupTest() {
	s.f = newFixture()
	s.ctx = context.Background()
	s.userID = uuid.Must(uuid.NewV7())
}

func (s *TargetServiceTestSuite) TearDownTest() {
	s.f.store.AssertExpectations(s.T())
}

func october() (time.Time, time.Time) {
	return ist(2026, time.October, 1, 0, 0), ist(2026, time.November, 1, 0, 0)
}

func (s *TargetServiceTestSuite) revenueTarget(status string, value, current float64) models.Target {
	start, end := october()
	return models.Target{
		ID:           uuid.Must(uuid.NewV7()),
		UserID:       s.userID,
		TargetType:   models.TargetTypeRevenue,
		Period:       models.TargetPeriodMonthly,
		StartDate:    start,
		EndDate:      end,
		TargetValue:  value,
		CurrentValue: current,
		Progress:     reporting.Progress(current, value),
		Status:       status,
		IsActive:     true,
	}
}

func (s *TargetServiceTestSuite) createRequest() models.CreateTargetRequest {
	start, _ := october()
	return models.CreateTargetRequest{
		TargetType:  models.TargetTypeRevenue,
		Period:      models.TargetPeriodMonthly,
		StartDate:   &start,
		TargetValue: 100000,
	}
}

// ════════════════════════════════════════════════════════════
// Create
// ════════════════════════════════════════════════════════════

func (s *TargetServiceTestSuite) TestCreateConflictsWithActiveOverlap() {
	existing := s.revenueTarget(models.TargetStatusActive, 50000, 1000)
	start, end := october()

	s.f.store.On("FindOverlapping", mock.Anything, s.userID, models.TargetTypeRevenue, start, end, uuid.Nil).
		Return([]models.Target{existing}, nil)
	s.f.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(1000.0, nil)

	_, err := s.f.targets.Create(s.ctx, s.userID, s.createRequest())

	var conflict *reporting.ConflictError
	s.Require().True(errors.As(err, &conflict), "got %v", err)
	s.f.store.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	s.f.store.AssertNotCalled(s.T(), "Deactivate", mock.Anything, mock.Anything)
}

func (s *TargetServiceTestSuite) TestCreateDeactivatesFinishedOverlap() {
	done := s.revenueTarget(models.TargetStatusCompleted, 50000, 50000)
	start, end := october()

	s.f.store.On("FindOverlapping", mock.Anything, s.userID, models.TargetTypeRevenue, start, end, uuid.Nil).
		Return([]models.Target{done}, nil)
	s.f.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(50000.0, nil)
	s.f.store.On("Deactivate", mock.Anything, []uuid.UUID{done.ID}).Return(nil)
	s.f.store.On("Create", mock.Anything, mock.AnythingOfType("*models.Target")).Return(nil)

	t, err := s.f.targets.Create(s.ctx, s.userID, s.createRequest())

	s.Require().NoError(err)
	s.Equal(models.TargetStatusActive, t.Status)
	s.Equal(50000.0, t.CurrentValue)
	s.Equal(50, t.Progress)
	s.True(t.IsActive)
	s.True(t.EndDate.Equal(end))
	s.NotNil(t.LastCalculatedAt)
}

func (s *TargetServiceTestSuite) TestCreateInFutureIsNotStarted() {
	start := ist(2026, time.November, 1, 0, 0)
	end := ist(2026, time.December, 1, 0, 0)
	req := s.createRequest()
	req.StartDate = &start

	s.f.store.On("FindOverlapping", mock.Anything, s.userID, models.TargetTypeRevenue, start, end, uuid.Nil).Return(nil, nil)
	s.f.store.On("Create", mock.Anything, mock.Anything).Return(nil)

	t, err := s.f.targets.Create(s.ctx, s.userID, req)

	s.Require().NoError(err)
	s.Equal(models.TargetStatusNotStarted, t.Status)
	s.Equal(0, t.Progress)
}

func (s *TargetServiceTestSuite) TestCreateValidation() {
	start, _ := october()
	before := start.Add(-time.Hour)

	tests := []struct {
		name  string
		req   models.CreateTargetRequest
		field string
	}{
		{"zero value", models.CreateTargetRequest{TargetType: "revenue", Period: "monthly", TargetValue: 0}, "targetValue"},
		{"negative value", models.CreateTargetRequest{TargetType: "revenue", Period: "monthly", TargetValue: -10}, "targetValue"},
		{"unknown type", models.CreateTargetRequest{TargetType: "visits", Period: "monthly", TargetValue: 10}, "targetType"},
		{"unknown period", models.CreateTargetRequest{TargetType: "revenue", Period: "hourly", TargetValue: 10}, "period"},
		{"custom without end", models.CreateTargetRequest{TargetType: "revenue", Period: "custom", StartDate: &start, TargetValue: 10}, "endDate"},
		{"end before start", models.CreateTargetRequest{TargetType: "revenue", Period: "custom", StartDate: &start, EndDate: &before, TargetValue: 10}, "endDate"},
		{"end equals start", models.CreateTargetRequest{TargetType: "revenue", Period: "custom", StartDate: &start, EndDate: &start, TargetValue: 10}, "endDate"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.f.targets.Create(s.ctx, s.userID, tt.req)
			var verr *reporting.ValidationError
			s.Require().True(errors.As(err, &verr), "got %v", err)
			s.Equal(tt.field, verr.Field)
		})
	}
}

// ════════════════════════════════════════════════════════════
// Reconcile
// ════════════════════════════════════════════════════════════

func (s *TargetServiceTestSuite) TestReconcileQuarterProgressStaysActive() {
	t := s.revenueTarget(models.TargetStatusActive, 100000, 0)
	s.f.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(25000.0, nil)
	s.f.store.On("SaveProgress", mock.Anything, &t).Return(nil).Once()

	s.Require().NoError(s.f.targets.Reconcile(s.ctx, &t))

	s.Equal(25000.0, t.CurrentValue)
	s.Equal(25, t.Progress)
	s.Equal(models.TargetStatusActive, t.Status)
}

func (s *TargetServiceTestSuite) TestReconcileUnchangedDoesNotWrite() {
	t := s.revenueTarget(models.TargetStatusActive, 100000, 25000)
	s.f.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(25000.0, nil)

	s.Require().NoError(s.f.targets.Reconcile(s.ctx, &t))

	s.f.store.AssertNotCalled(s.T(), "SaveProgress", mock.Anything, mock.Anything)
}

func (s *TargetServiceTestSuite) TestReconcileCompletesAtFullProgress() {
	t := s.revenueTarget(models.TargetStatusInProgress, 100000, 40000)
	s.f.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(120000.0, nil)
	s.f.store.On("SaveProgress", mock.Anything, mock.Anything).Return(nil)

	s.Require().NoError(s.f.targets.Reconcile(s.ctx, &t))

	s.Equal(100, t.Progress)
	s.Equal(models.TargetStatusCompleted, t.Status)
}

func (s *TargetServiceTestSuite) TestReconcileNeverLeavesCompleted() {
	t := s.revenueTarget(models.TargetStatusCompleted, 100000, 100000)
	s.f.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(30000.0, nil)
	s.f.store.On("SaveProgress", mock.Anything, mock.Anything).Return(nil)

	s.Require().NoError(s.f.targets.Reconcile(s.ctx, &t))

	s.Equal(30, t.Progress)
	s.Equal(models.TargetStatusCompleted, t.Status)
}

func (s *TargetServiceTestSuite) TestReconcileSkipsArchived() {
	t := s.revenueTarget(models.TargetStatusArchived, 100000, 0)

	s.Require().NoError(s.f.targets.Reconcile(s.ctx, &t))

	s.f.orders.AssertNotCalled(s.T(), "SumRevenue", mock.Anything, mock.Anything)
}

func (s *TargetServiceTestSuite) TestReconcileEndedTargetFails() {
	t := s.revenueTarget(models.TargetStatusActive, 100000, 0)
	t.StartDate = ist(2026, time.September, 1, 0, 0)
	t.EndDate = ist(2026, time.October, 1, 0, 0)
	s.f.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(60000.0, nil)
	s.f.store.On("SaveProgress", mock.Anything, mock.Anything).Return(nil)

	s.Require().NoError(s.f.targets.Reconcile(s.ctx, &t))

	s.Equal(models.TargetStatusFailed, t.Status)
	s.Equal(60, t.Progress)
}

// ════════════════════════════════════════════════════════════
// Update / Archive / Delete
// ════════════════════════════════════════════════════════════

func (s *TargetServiceTestSuite) TestUpdateCompletedIsRejected() {
	t := s.revenueTarget(models.TargetStatusCompleted, 100000, 100000)
	s.f.store.On("Get", mock.Anything, s.userID, t.ID).Return(&t, nil)
	value := 200000.0

	_, err := s.f.targets.Update(s.ctx, s.userID, t.ID, models.UpdateTargetRequest{TargetValue: &value})

	var verr *reporting.ValidationError
	s.True(errors.As(err, &verr))
	s.f.store.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
}

func (s *TargetServiceTestSuite) TestUpdateCompletedMayBeArchived() {
	t := s.revenueTarget(models.TargetStatusCompleted, 100000, 100000)
	s.f.store.On("Get", mock.Anything, s.userID, t.ID).Return(&t, nil)
	s.f.store.On("Save", mock.Anything, &t).Return(nil)
	archived := models.TargetStatusArchived

	got, err := s.f.targets.Update(s.ctx, s.userID, t.ID, models.UpdateTargetRequest{Status: &archived})

	s.Require().NoError(err)
	s.Equal(models.TargetStatusArchived, got.Status)
	s.False(got.IsActive)
}

func (s *TargetServiceTestSuite) TestUpdateOverlapExcludesItself() {
	t := s.revenueTarget(models.TargetStatusActive, 100000, 0)
	other := s.revenueTarget(models.TargetStatusActive, 5000, 0)
	newEnd := ist(2026, time.December, 1, 0, 0)

	s.f.store.On("Get", mock.Anything, s.userID, t.ID).Return(&t, nil)
	s.f.store.On("FindOverlapping", mock.Anything, s.userID, models.TargetTypeRevenue, t.StartDate, newEnd, t.ID).
		Return([]models.Target{other}, nil)
	s.f.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(0.0, nil)

	_, err := s.f.targets.Update(s.ctx, s.userID, t.ID, models.UpdateTargetRequest{EndDate: &newEnd})

	var conflict *reporting.ConflictError
	s.True(errors.As(err, &conflict), "got %v", err)
}

func (s *TargetServiceTestSuite) TestUpdateValueRecomputesProgress() {
	t := s.revenueTarget(models.TargetStatusActive, 100000, 25000)
	s.f.store.On("Get", mock.Anything, s.userID, t.ID).Return(&t, nil)
	s.f.store.On("Save", mock.Anything, mock.Anything).Return(nil)
	s.f.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(25000.0, nil)
	value := 50000.0

	got, err := s.f.targets.Update(s.ctx, s.userID, t.ID, models.UpdateTargetRequest{TargetValue: &value})

	s.Require().NoError(err)
	s.Equal(50, got.Progress)
	s.Equal(models.TargetStatusActive, got.Status)
}

func (s *TargetServiceTestSuite) TestUpdateRejectsDerivedStatus() {
	t := s.revenueTarget(models.TargetStatusActive, 100000, 0)
	s.f.store.On("Get", mock.Anything, s.userID, t.ID).Return(&t, nil)
	failed := models.TargetStatusFailed

	_, err := s.f.targets.Update(s.ctx, s.userID, t.ID, models.UpdateTargetRequest{Status: &failed})

	var verr *reporting.ValidationError
	s.True(errors.As(err, &verr))
}

func (s *TargetServiceTestSuite) TestArchiveFromAnyStatus() {
	for _, status := range models.TargetStatuses {
		s.Run(status, func() {
			t := s.revenueTarget(status, 100, 0)
			s.f.store.On("Get", mock.Anything, s.userID, t.ID).Return(&t, nil).Once()
			s.f.store.On("Save", mock.Anything, &t).Return(nil).Once()

			got, err := s.f.targets.Archive(s.ctx, s.userID, t.ID)

			s.Require().NoError(err)
			s.Equal(models.TargetStatusArchived, got.Status)
			s.False(got.IsActive)
		})
	}
}

func (s *TargetServiceTestSuite) TestDeleteMissingIsNotFound() {
	id := uuid.Must(uuid.NewV7())
	s.f.store.On("Get", mock.Anything, s.userID, id).Return(nil, &reporting.NotFoundError{Entity: "target", ID: id.String()})

	err := s.f.targets.Delete(s.ctx, s.userID, id)

	var nf *reporting.NotFoundError
	s.True(errors.As(err, &nf))
	s.f.store.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

// ════════════════════════════════════════════════════════════
// Stats / monthly
// ════════════════════════════════════════════════════════════

func (s *TargetServiceTestSuite) TestStats() {
	completed := s.revenueTarget(models.TargetStatusCompleted, 100, 100)
	active := s.revenueTarget(models.TargetStatusActive, 100, 50)
	stale := s.revenueTarget(models.TargetStatusActive, 100, 30)
	stale.TargetType = models.TargetTypeOrders
	stale.EndDate = ist(2026, time.October, 5, 0, 0)
	archived := s.revenueTarget(models.TargetStatusArchived, 100, 0)
	archived.IsActive = false

	s.f.store.On("List", mock.Anything, s.userID, models.TargetFilter{}).
		Return([]models.Target{completed, active, stale, archived}, int64(4), nil)

	stats, err := s.f.targets.Stats(s.ctx, s.userID)

	s.Require().NoError(err)
	s.Equal(4, stats.Total)
	s.Equal(3, stats.Active)
	s.Equal(1, stats.ByStatus[models.TargetStatusCompleted])
	s.Equal(1, stats.ByStatus[models.TargetStatusActive])
	s.Equal(1, stats.ByStatus[models.TargetStatusFailed])
	s.Equal(1, stats.ByStatus[models.TargetStatusArchived])
	s.Equal(3, stats.ByType[models.TargetTypeRevenue])
	s.Equal(1, stats.ByType[models.TargetTypeOrders])
	s.Equal(45.0, stats.AverageProgress)
	s.Equal(25.0, stats.CompletionRate)
}

func (s *TargetServiceTestSuite) TestMonthlyTargetWithoutTargetReturnsLiveValue() {
	start, end := october()
	s.f.store.On("FindOverlapping", mock.Anything, s.userID, models.TargetTypeRevenue, start, end, uuid.Nil).Return(nil, nil)
	s.f.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(4200.0, nil)

	resp, err := s.f.targets.MonthlyTarget(s.ctx, s.userID, "")

	s.Require().NoError(err)
	s.Nil(resp.Target)
	s.Equal(4200.0, resp.CurrentValue)
	s.Equal("Oct 2026", resp.PeriodLabel)
}

func (s *TargetServiceTestSuite) TestSetMonthlyTargetCreatesWhenMissing() {
	start, end := october()
	s.f.store.On("FindOverlapping", mock.Anything, s.userID, models.TargetTypeRevenue, start, end, uuid.Nil).Return(nil, nil)
	s.f.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(0.0, nil)
	s.f.store.On("Create", mock.Anything, mock.Anything).Return(nil)

	t, created, err := s.f.targets.SetMonthlyTarget(s.ctx, s.userID, models.SetMonthlyTargetRequest{TargetValue: 250000})

	s.Require().NoError(err)
	s.True(created)
	s.Equal(models.TargetPeriodMonthly, t.Period)
	s.True(t.StartDate.Equal(start))
	s.True(t.EndDate.Equal(end))
	s.Equal("revenue target for Oct 2026", t.Description)
}

func (s *TargetServiceTestSuite) TestSetMonthlyTargetUpdatesExisting() {
	existing := s.revenueTarget(models.TargetStatusActive, 100000, 0)
	start, end := october()
	s.f.store.On("FindOverlapping", mock.Anything, s.userID, models.TargetTypeRevenue, start, end, uuid.Nil).
		Return([]models.Target{existing}, nil)
	s.f.store.On("Get", mock.Anything, s.userID, existing.ID).Return(&existing, nil)
	s.f.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(50000.0, nil)
	s.f.store.On("Save", mock.Anything, mock.Anything).Return(nil)

	t, created, err := s.f.targets.SetMonthlyTarget(s.ctx, s.userID, models.SetMonthlyTargetRequest{TargetValue: 200000, Description: "festive push"})

	s.Require().NoError(err)
	s.False(created)
	s.Equal(200000.0, t.TargetValue)
	s.Equal(25, t.Progress)
	s.Equal("festive push", t.Description)
}

func (s *TargetServiceTestSuite) TestSetMonthlyTargetSupersedesCompletedTarget() {
	met := s.revenueTarget(models.TargetStatusCompleted, 10000, 10000)
	start, end := october()
	s.f.store.On("FindOverlapping", mock.Anything, s.userID, models.TargetTypeRevenue, start, end, uuid.Nil).
		Return([]models.Target{met}, nil)
	s.f.orders.On("SumRevenue", mock.Anything, mock.Anything).Return(10000.0, nil)
	s.f.store.On("Deactivate", mock.Anything, []uuid.UUID{met.ID}).Return(nil)
	s.f.store.On("Create", mock.Anything, mock.Anything).Return(nil)

	t, created, err := s.f.targets.SetMonthlyTarget(s.ctx, s.userID, models.SetMonthlyTargetRequest{TargetValue: 20000})

	s.Require().NoError(err)
	s.True(created)
	s.NotEqual(met.ID, t.ID)
	s.Equal(20000.0, t.TargetValue)
	s.Equal(50, t.Progress)
	s.Equal(models.TargetStatusActive, t.Status)
	s.f.store.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything, mock.Anything)
}
