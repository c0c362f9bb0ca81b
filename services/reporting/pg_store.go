package reporting

import (
	"context"
	"fmt"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

// ════════════════════════════════════════════════════════════
// Orders (pgx)
// ════════════════════════════════════════════════════════════

type PgOrderReader struct {
	pool *pgxpool.Pool
}

func NewPgOrderReader(pool *pgxpool.Pool) *PgOrderReader {
	return &PgOrderReader{pool: pool}
}

var _ OrderReader = (*PgOrderReader)(nil)

func (r *PgOrderReader) SumRevenue(ctx context.Context, b Bucket) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount), 0)::float8
		FROM orders
		WHERE status = $1 AND created_at >= $2 AND created_at < $3
	`, models.OrderStatusDelivered, b.Start, b.End).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("query revenue: %w", err)
	}
	return total, nil
}

func (r *PgOrderReader) CountOrders(ctx context.Context, b Bucket, statuses []string) (int64, error) {
	var (
		count int64
		err   error
	)
	if len(statuses) == 0 {
		err = r.pool.QueryRow(ctx, `
			SELECT COUNT(*) FROM orders
			WHERE created_at >= $1 AND created_at < $2
		`, b.Start, b.End).Scan(&count)
	} else {
		err = r.pool.QueryRow(ctx, `
			SELECT COUNT(*) FROM orders
			WHERE created_at >= $1 AND created_at < $2 AND status = ANY($3)
		`, b.Start, b.End, statuses).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("query order count: %w", err)
	}
	return count, nil
}

func (r *PgOrderReader) CountDistinctCustomers(ctx context.Context, b Bucket) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(DISTINCT user_id) FROM orders
		WHERE status = $1 AND created_at >= $2 AND created_at < $3
	`, models.OrderStatusDelivered, b.Start, b.End).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("query distinct customers: %w", err)
	}
	return count, nil
}

func (r *PgOrderReader) RecentOrders(ctx context.Context, limit int) ([]models.RecentOrder, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.id, o.order_number, COALESCE(u.name, ''), COALESCE(u.email, ''),
		       o.total_amount::float8, o.status, o.payment_status, o.created_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent orders: %w", err)
	}

	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RecentOrder, error) {
		var o models.RecentOrder
		err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail,
			&o.TotalAmount, &o.Status, &o.PaymentStatus, &o.CreatedAt)
		return o, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan recent orders: %w", err)
	}
	return orders, nil
}

// ════════════════════════════════════════════════════════════
// Users (gorm)
// ════════════════════════════════════════════════════════════

type GormUserReader struct {
	db *gorm.DB
}

func NewGormUserReader(db *gorm.DB) *GormUserReader {
	return &GormUserReader{db: db}
}

var _ UserReader = (*GormUserReader)(nil)

func (r *GormUserReader) customers(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role NOT IN ?", models.AdminRoles)
}

func (r *GormUserReader) CountNewUsers(ctx context.Context, b Bucket) (int64, error) {
	var count int64
	if err := r.customers(ctx).
		Where("created_at >= ? AND created_at < ?", b.Start, b.End).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count new users: %w", err)
	}
	return count, nil
}

func (r *GormUserReader) RecentUsers(ctx context.Context, limit int) ([]models.RecentUser, error) {
	var users []models.RecentUser
	if err := r.customers(ctx).
		Select("id, name, email, created_at").
		Order("created_at DESC").
		Limit(limit).
		Scan(&users).Error; err != nil {
		return nil, fmt.Errorf("recent users: %w", err)
	}
	return users, nil
}
