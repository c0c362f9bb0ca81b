package reporting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/models"
)

// Aggregator computes per-bucket scalar metrics. It holds no mutable state.
type Aggregator struct {
	Orders   OrderReader
	Users    UserReader
	Sessions SessionReader
}

func NewAggregator(orders OrderReader, users UserReader, sessions SessionReader) *Aggregator {
	return &Aggregator{Orders: orders, Users: users, Sessions: sessions}
}

// perBucket runs fn for every bucket concurrently and returns results in bucket order.
// The first error wins; the other slots are discarded.
func perBucket[T any](ctx context.Context, buckets []Bucket, fn func(context.Context, Bucket) (T, error)) ([]T, error) {
	out := make([]T, len(buckets))
	errs := make([]error, len(buckets))

	var wg sync.WaitGroup
	for i, b := range buckets {
		wg.Add(1)
		go func(i int, b Bucket) {
			defer wg.Done()
			out[i], errs[i] = fn(ctx, b)
		}(i, b)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("bucket %s: %w", buckets[i].Label, err)
		}
	}
	return out, nil
}

func (a *Aggregator) Revenue(ctx context.Context, r Bucket) (float64, error) {
	v, err := a.Orders.SumRevenue(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("sum revenue: %w", err)
	}
	return Money(v), nil
}

func (a *Aggregator) OrderCount(ctx context.Context, r Bucket, statuses ...string) (int64, error) {
	n, err := a.Orders.CountOrders(ctx, r, statuses)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (a *Aggregator) NewUsers(ctx context.Context, r Bucket) (int64, error) {
	n, err := a.Users.CountNewUsers(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("count new users: %w", err)
	}
	return n, nil
}

func (a *Aggregator) UniqueSessions(ctx context.Context, r Bucket) (int64, error) {
	n, err := a.Sessions.CountSessions(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

// Conversion is orders / sessions * 100 for the range, 0 without sessions
func (a *Aggregator) Conversion(ctx context.Context, r Bucket) (float64, error) {
	var (
		wg                 sync.WaitGroup
		orders, sessions   int64
		ordersErr, sessErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		orders, ordersErr = a.OrderCount(ctx, r)
	}()
	go func() {
		defer wg.Done()
		sessions, sessErr = a.UniqueSessions(ctx, r)
	}()
	wg.Wait()

	if ordersErr != nil {
		return 0, ordersErr
	}
	if sessErr != nil {
		return 0, sessErr
	}
	return ConversionRate(orders, sessions), nil
}

func (a *Aggregator) RevenueSeries(ctx context.Context, buckets []Bucket) ([]float64, error) {
	return perBucket(ctx, buckets, a.Revenue)
}

func (a *Aggregator) OrderSeries(ctx context.Context, buckets []Bucket, statuses ...string) ([]int64, error) {
	return perBucket(ctx, buckets, func(ctx context.Context, b Bucket) (int64, error) {
		return a.OrderCount(ctx, b, statuses...)
	})
}

func (a *Aggregator) NewUserSeries(ctx context.Context, buckets []Bucket) ([]int64, error) {
	return perBucket(ctx, buckets, a.NewUsers)
}

func (a *Aggregator) SessionSeries(ctx context.Context, buckets []Bucket) ([]int64, error) {
	return perBucket(ctx, buckets, a.UniqueSessions)
}

// WeeklyGrowth fills one row per bucket with new users, orders, sessions and conversion
func (a *Aggregator) WeeklyGrowth(ctx context.Context, buckets []Bucket) ([]models.WeeklyGrowthPoint, error) {
	return perBucket(ctx, buckets, func(ctx context.Context, b Bucket) (models.WeeklyGrowthPoint, error) {
		point := models.WeeklyGrowthPoint{Label: b.Label, Start: b.Start, End: b.End}

		var (
			wg                           sync.WaitGroup
			usersErr, ordersErr, sessErr error
		)
		wg.Add(3)
		go func() {
			defer wg.Done()
			point.NewUsers, usersErr = a.NewUsers(ctx, b)
		}()
		go func() {
			defer wg.Done()
			point.Orders, ordersErr = a.OrderCount(ctx, b)
		}()
		go func() {
			defer wg.Done()
			point.Sessions, sessErr = a.UniqueSessions(ctx, b)
		}()
		wg.Wait()

		for _, err := range []error{usersErr, ordersErr, sessErr} {
			if err != nil {
				return point, err
			}
		}
		point.ConversionRate = ConversionRate(point.Orders, point.Sessions)
		return point, nil
	})
}

// Actual is the live value of a target metric over [start, min(end, now))
func (a *Aggregator) Actual(ctx context.Context, targetType string, start, end, now time.Time) (float64, error) {
	if now.Before(end) {
		end = now
	}
	if !start.Before(end) {
		return 0, nil
	}
	r := Bucket{Start: start, End: end}

	switch targetType {
	case models.TargetTypeRevenue:
		return a.Revenue(ctx, r)
	case models.TargetTypeOrders:
		n, err := a.OrderCount(ctx, r, models.CountableOrderStatuses...)
		return float64(n), err
	case models.TargetTypeUsers:
		n, err := a.NewUsers(ctx, r)
		return float64(n), err
	case models.TargetTypeConversion:
		return a.Conversion(ctx, r)
	default:
		return 0, invalid("targetType", "unknown target type %q", targetType)
	}
}
