package mockreporting

import (
	"context"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services/reporting"

	"github.com/stretchr/testify/mock"
)

type OrderReader struct {
	mock.Mock
}

// Interface compliance check
var _ reporting.OrderReader = &OrderReader{}

func (m *OrderReader) SumRevenue(ctx context.Context, r reporting.Bucket) (float64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(float64), args.Error(1)
}

func (m *OrderReader) CountOrders(ctx context.Context, r reporting.Bucket, statuses []string) (int64, error) {
	args := m.Called(ctx, r, statuses)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderReader) CountDistinctCustomers(ctx context.Context, r reporting.Bucket) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderReader) RecentOrders(ctx context.Context, limit int) ([]models.RecentOrder, error) {
	args := m.Called(ctx, limit)
	orders, _ := args.Get(0).([]models.RecentOrder)
	return orders, args.Error(1)
}

type UserReader struct {
	mock.Mock
}

var _ reporting.UserReader = &UserReader{}

func (m *UserReader) CountNewUsers(ctx context.Context, r reporting.Bucket) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserReader) RecentUsers(ctx context.Context, limit int) ([]models.RecentUser, error) {
	args := m.Called(ctx, limit)
	users, _ := args.Get(0).([]models.RecentUser)
	return users, args.Error(1)
}

type SessionReader struct {
	mock.Mock
}

var _ reporting.SessionReader = &SessionReader{}

func (m *SessionReader) CountSessions(ctx context.Context, r reporting.Bucket) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SessionReader) SessionStats(ctx context.Context, r reporting.Bucket) (models.SessionStats, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(models.SessionStats), args.Error(1)
}
