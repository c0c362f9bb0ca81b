package mockservices

import (
	"context"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services"

	"github.com/stretchr/testify/mock"
)

type ActivityLogRepository struct {
	mock.Mock
}

// Interface compliance check
var _ services.ActivityLogRepository = &ActivityLogRepository{}

func (m *ActivityLogRepository) CreateBatch(ctx context.Context, logs []models.ActivityLog) error {
	args := m.Called(ctx, logs)
	return args.Error(0)
}
