package mockreporting

import (
	"context"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services/reporting"
	"github.com/google/uuid"

	"github.com/stretchr/testify/mock"
)

type TargetStore struct {
	mock.Mock
}

var _ reporting.TargetStore = &TargetStore{}

func targets(v any) []models.Target {
	t, _ := v.([]models.Target)
	return t
}

func (m *TargetStore) Create(ctx context.Context, t *models.Target) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TargetStore) Get(ctx context.Context, userID, id uuid.UUID) (*models.Target, error) {
	args := m.Called(ctx, userID, id)
	t, _ := args.Get(0).(*models.Target)
	return t, args.Error(1)
}

func (m *TargetStore) List(ctx context.Context, userID uuid.UUID, filter models.TargetFilter) ([]models.Target, int64, error) {
	args := m.Called(ctx, userID, filter)
	return targets(args.Get(0)), args.Get(1).(int64), args.Error(2)
}

func (m *TargetStore) FindOverlapping(ctx context.Context, userID uuid.UUID, targetType string, start, end time.Time, excludeID uuid.UUID) ([]models.Target, error) {
	args := m.Called(ctx, userID, targetType, start, end, excludeID)
	return targets(args.Get(0)), args.Error(1)
}

func (m *TargetStore) FindActiveAt(ctx context.Context, userID uuid.UUID, at time.Time) ([]models.Target, error) {
	args := m.Called(ctx, userID, at)
	return targets(args.Get(0)), args.Error(1)
}

func (m *TargetStore) FindInRange(ctx context.Context, userID uuid.UUID, targetType string, start, end time.Time) ([]models.Target, error) {
	args := m.Called(ctx, userID, targetType, start, end)
	return targets(args.Get(0)), args.Error(1)
}

func (m *TargetStore) Save(ctx context.Context, t *models.Target) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TargetStore) SaveProgress(ctx context.Context, t *models.Target) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TargetStore) Deactivate(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *TargetStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
