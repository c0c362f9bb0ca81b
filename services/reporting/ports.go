package reporting

import (
	"context"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/google/uuid"
)

// OrderReader reduces the orders table over a time range
type OrderReader interface {
	// SumRevenue is the sum of delivered order totals
	SumRevenue(ctx context.Context, r Bucket) (float64, error)
	// CountOrders counts orders in range; an empty status set counts every order
	CountOrders(ctx context.Context, r Bucket, statuses []string) (int64, error)
	// CountDistinctCustomers counts customers with a delivered order in range
	CountDistinctCustomers(ctx context.Context, r Bucket) (int64, error)
	RecentOrders(ctx context.Context, limit int) ([]models.RecentOrder, error)
}

// UserReader never counts admin roles
type UserReader interface {
	CountNewUsers(ctx context.Context, r Bucket) (int64, error)
	RecentUsers(ctx context.Context, limit int) ([]models.RecentUser, error)
}

// SessionReader reduces storefront analytics events
type SessionReader interface {
	// CountSessions counts distinct session ids among page views
	CountSessions(ctx context.Context, r Bucket) (int64, error)
	SessionStats(ctx context.Context, r Bucket) (models.SessionStats, error)
}

type TargetStore interface {
	Create(ctx context.Context, t *models.Target) error
	// Get returns a *NotFoundError when the target does not exist for that owner
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Target, error)
	// List pages through an owner's targets; Limit <= 0 returns all of them
	List(ctx context.Context, userID uuid.UUID, filter models.TargetFilter) ([]models.Target, int64, error)
	// FindOverlapping returns active targets of a type overlapping [start, end), skipping excludeID
	FindOverlapping(ctx context.Context, userID uuid.UUID, targetType string, start, end time.Time, excludeID uuid.UUID) ([]models.Target, error)
	// FindActiveAt returns active targets whose range contains at
	FindActiveAt(ctx context.Context, userID uuid.UUID, at time.Time) ([]models.Target, error)
	// FindInRange returns non-archived targets of a type overlapping [start, end), active or not
	FindInRange(ctx context.Context, userID uuid.UUID, targetType string, start, end time.Time) ([]models.Target, error)
	Save(ctx context.Context, t *models.Target) error
	SaveProgress(ctx context.Context, t *models.Target) error
	Deactivate(ctx context.Context, ids []uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
