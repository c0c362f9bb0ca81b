package reporting

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/google/uuid"
)

const (
	recentLimit       = 5
	targetVsActualLen = 6
	dashboardWeeks    = 4
)

// Dashboard section names, reported back in DashboardStats.Degraded
const (
	SectionRevenue        = "revenue"
	SectionOrders         = "orders"
	SectionDelivered      = "deliveredOrders"
	SectionCustomers      = "customers"
	SectionNewUsers       = "newUsers"
	SectionSessions       = "sessions"
	SectionMonthlyRevenue = "monthlyRevenue"
	SectionMonthlyTargets = "monthlyTargets"
	SectionTargetVsActual = "targetVsActual"
	SectionUserGrowth     = "userGrowth"
	SectionRecentOrders   = "recentOrders"
	SectionRecentUsers    = "recentUsers"
	SectionCurrentTargets = "currentTargets"
)

type DashboardService struct {
	agg     *Aggregator
	targets *TargetService
	store   TargetStore
}

func NewDashboardService(agg *Aggregator, targets *TargetService) *DashboardService {
	return &DashboardService{agg: agg, targets: targets, store: targets.store}
}

// section is one independent sub-aggregation. zero restores its outputs when run fails.
type section struct {
	name string
	run  func(ctx context.Context) error
	zero func()
}

// runSections fans every section out and returns the names of those that failed,
// in declaration order. Failures never propagate.
func runSections(ctx context.Context, sections []section) []string {
	errs := make([]error, len(sections))

	var wg sync.WaitGroup
	for i, s := range sections {
		wg.Add(1)
		go func(i int, s section) {
			defer wg.Done()
			started := time.Now()
			errs[i] = s.run(ctx)
			observeSection(s.name, time.Since(started).Seconds(), errs[i] != nil)
		}(i, s)
	}
	wg.Wait()

	var degraded []string
	for i, err := range errs {
		if err == nil {
			continue
		}
		log.Printf("[reporting.dashboard] ERROR section=%s degraded to zero err=%v", sections[i].name, err)
		if sections[i].zero != nil {
			sections[i].zero()
		}
		degraded = append(degraded, sections[i].name)
	}
	return degraded
}

// ════════════════════════════════════════════════════════════
// Stats
// ════════════════════════════════════════════════════════════

type cardInputs struct {
	revenue, prevRevenue     float64
	orders, prevOrders       int64
	delivered, prevDelivered int64
	customers                int64
	newUsers, prevNewUsers   int64
	sessions                 models.SessionStats
	prevSessions             int64
}

// Stats assembles the full dashboard. Each section degrades to its zero value on
// failure, so the result is always usable.
func (d *DashboardService) Stats(ctx context.Context, userID uuid.UUID) *models.DashboardStats {
	now := d.targets.now()
	cur, prev := CurrentMonth(now), PreviousMonth(now)
	year := YearBuckets(now)
	lastSix := MonthBuckets(now, targetVsActualLen)
	weeks := WeekBuckets(now, dashboardWeeks)

	var (
		in             cardInputs
		yearRevenue    []float64
		yearTargets    []models.Target
		sixRevenue     []float64
		sixTargets     []models.Target
		userGrowth     []models.WeeklyGrowthPoint
		recentOrders   []models.RecentOrder
		recentUsers    []models.RecentUser
		currentTargets []models.Target
	)

	pair := func(fn func(context.Context, Bucket) (int64, error), a, b *int64) func(context.Context) error {
		return func(ctx context.Context) error {
			var err error
			if *a, err = fn(ctx, cur); err != nil {
				return err
			}
			*b, err = fn(ctx, prev)
			return err
		}
	}

	sections := []section{
		{
			name: SectionRevenue,
			run: func(ctx context.Context) error {
				var err error
				if in.revenue, err = d.agg.Revenue(ctx, cur); err != nil {
					return err
				}
				in.prevRevenue, err = d.agg.Revenue(ctx, prev)
				return err
			},
			zero: func() { in.revenue, in.prevRevenue = 0, 0 },
		},
		{
			name: SectionOrders,
			run: pair(func(ctx context.Context, b Bucket) (int64, error) {
				return d.agg.OrderCount(ctx, b)
			}, &in.orders, &in.prevOrders),
			zero: func() { in.orders, in.prevOrders = 0, 0 },
		},
		{
			name: SectionDelivered,
			run: pair(func(ctx context.Context, b Bucket) (int64, error) {
				return d.agg.OrderCount(ctx, b, models.OrderStatusDelivered)
			}, &in.delivered, &in.prevDelivered),
			zero: func() { in.delivered, in.prevDelivered = 0, 0 },
		},
		{
			name: SectionCustomers,
			run: func(ctx context.Context) error {
				var err error
				in.customers, err = d.agg.Orders.CountDistinctCustomers(ctx, cur)
				return err
			},
			zero: func() { in.customers = 0 },
		},
		{
			name: SectionNewUsers,
			run:  pair(d.agg.NewUsers, &in.newUsers, &in.prevNewUsers),
			zero: func() { in.newUsers, in.prevNewUsers = 0, 0 },
		},
		{
			name: SectionSessions,
			run: func(ctx context.Context) error {
				var err error
				if in.sessions, err = d.agg.Sessions.SessionStats(ctx, cur); err != nil {
					return err
				}
				in.prevSessions, err = d.agg.UniqueSessions(ctx, prev)
				return err
			},
			zero: func() { in.sessions, in.prevSessions = models.SessionStats{}, 0 },
		},
		{
			name: SectionMonthlyRevenue,
			run: func(ctx context.Context) (err error) {
				yearRevenue, err = d.agg.RevenueSeries(ctx, year)
				return err
			},
			zero: func() { yearRevenue = make([]float64, len(year)) },
		},
		{
			name: SectionMonthlyTargets,
			run: func(ctx context.Context) (err error) {
				yearTargets, err = d.store.FindInRange(ctx, userID, models.TargetTypeRevenue, year[0].Start, year[len(year)-1].End)
				return err
			},
			zero: func() { yearTargets = nil },
		},
		{
			name: SectionTargetVsActual,
			run: func(ctx context.Context) error {
				var (
					wg                 sync.WaitGroup
					revErr, targetsErr error
				)
				wg.Add(2)
				go func() {
					defer wg.Done()
					sixRevenue, revErr = d.agg.RevenueSeries(ctx, lastSix)
				}()
				go func() {
					defer wg.Done()
					sixTargets, targetsErr = d.store.FindInRange(ctx, userID, models.TargetTypeRevenue, lastSix[0].Start, lastSix[len(lastSix)-1].End)
				}()
				wg.Wait()
				if revErr != nil {
					return revErr
				}
				return targetsErr
			},
			zero: func() { sixRevenue, sixTargets = make([]float64, len(lastSix)), nil },
		},
		{
			name: SectionUserGrowth,
			run: func(ctx context.Context) (err error) {
				userGrowth, err = d.agg.WeeklyGrowth(ctx, weeks)
				return err
			},
			zero: func() { userGrowth = zeroWeeks(weeks) },
		},
		{
			name: SectionRecentOrders,
			run: func(ctx context.Context) (err error) {
				recentOrders, err = d.agg.Orders.RecentOrders(ctx, recentLimit)
				return err
			},
			zero: func() { recentOrders = []models.RecentOrder{} },
		},
		{
			name: SectionRecentUsers,
			run: func(ctx context.Context) (err error) {
				recentUsers, err = d.agg.Users.RecentUsers(ctx, recentLimit)
				return err
			},
			zero: func() { recentUsers = []models.RecentUser{} },
		},
		{
			name: SectionCurrentTargets,
			run: func(ctx context.Context) (err error) {
				currentTargets, err = d.targets.Current(ctx, userID)
				return err
			},
			zero: func() { currentTargets = []models.Target{} },
		},
	}

	degraded := runSections(ctx, sections)

	out := &models.DashboardStats{
		Stats:          statCards(in),
		MonthlyRevenue: make([]models.MonthlyRevenuePoint, len(year)),
		TargetVsActual: make([]models.TargetVsActualPoint, len(lastSix)),
		UserGrowth:     userGrowth,
		RecentOrders:   nonNil(recentOrders),
		RecentUsers:    nonNil(recentUsers),
		Performance:    performance(in),
		CurrentTargets: nonNil(currentTargets),
		Degraded:       degraded,
		GeneratedAt:    now,
	}
	for i, b := range year {
		out.MonthlyRevenue[i] = models.MonthlyRevenuePoint{
			Month:       b.Label,
			MonthNumber: i + 1,
			Revenue:     yearRevenue[i],
			Target:      targetForBucket(yearTargets, b),
		}
	}
	for i, b := range lastSix {
		target := targetForBucket(sixTargets, b)
		out.TargetVsActual[i] = models.TargetVsActualPoint{
			Label:       b.Label,
			Target:      target,
			Actual:      sixRevenue[i],
			Achievement: Percentage(sixRevenue[i], target),
		}
	}
	return out
}

func statCards(in cardInputs) models.DashboardStatCards {
	card := func(cur, prev float64) models.StatCard {
		return models.StatCard{Value: cur, Previous: prev, Growth: Growth(prev, cur)}
	}
	conversion := ConversionRate(in.orders, in.sessions.Sessions)
	prevConversion := ConversionRate(in.prevOrders, in.prevSessions)
	aov := AverageOrderValue(in.revenue, in.delivered)
	prevAOV := AverageOrderValue(in.prevRevenue, in.prevDelivered)

	return models.DashboardStatCards{
		TotalRevenue:      card(in.revenue, in.prevRevenue),
		TotalOrders:       card(float64(in.orders), float64(in.prevOrders)),
		NewUsers:          card(float64(in.newUsers), float64(in.prevNewUsers)),
		TotalSessions:     card(float64(in.sessions.Sessions), float64(in.prevSessions)),
		ConversionRate:    card(conversion, prevConversion),
		AverageOrderValue: card(aov, prevAOV),
	}
}

func performance(in cardInputs) models.PerformanceMetrics {
	return models.PerformanceMetrics{
		ConversionRate:     ConversionRate(in.orders, in.sessions.Sessions),
		BounceRate:         Percentage(float64(in.sessions.BouncedSessions), float64(in.sessions.Sessions)),
		AvgSessionDuration: Round1(in.sessions.AvgSessionDuration),
		FulfillmentRate:    Percentage(float64(in.delivered), float64(in.orders)),
		RevenuePerUser:     RevenuePerUser(in.revenue, in.customers),
		TotalSessions:      in.sessions.Sessions,
	}
}

func zeroWeeks(weeks []Bucket) []models.WeeklyGrowthPoint {
	out := make([]models.WeeklyGrowthPoint, len(weeks))
	for i, b := range weeks {
		out[i] = models.WeeklyGrowthPoint{Label: b.Label, Start: b.Start, End: b.End}
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ════════════════════════════════════════════════════════════
// Revenue overview / user growth
// ════════════════════════════════════════════════════════════

// RevenueOverview propagates every aggregation error; only Stats degrades
func (d *DashboardService) RevenueOverview(ctx context.Context, userID uuid.UUID, period string) (*models.RevenueOverview, error) {
	now := d.targets.now()
	period, buckets, err := RevenueWindow(now, period)
	if err != nil {
		return nil, err
	}
	baseline := revenueBaseline(now, period, buckets)

	var (
		wg                                     sync.WaitGroup
		revenue                                []float64
		orders                                 []int64
		targets                                []models.Target
		previous                               float64
		revErr, ordersErr, targetsErr, prevErr error
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		revenue, revErr = d.agg.RevenueSeries(ctx, buckets)
	}()
	go func() {
		defer wg.Done()
		orders, ordersErr = d.agg.OrderSeries(ctx, buckets)
	}()
	go func() {
		defer wg.Done()
		targets, targetsErr = d.store.FindInRange(ctx, userID, models.TargetTypeRevenue, buckets[0].Start, buckets[len(buckets)-1].End)
	}()
	go func() {
		defer wg.Done()
		previous, prevErr = d.agg.Revenue(ctx, baseline)
	}()
	wg.Wait()

	for _, err := range []error{revErr, ordersErr, targetsErr, prevErr} {
		if err != nil {
			return nil, fmt.Errorf("revenue overview %s: %w", period, err)
		}
	}

	out := &models.RevenueOverview{
		Period:          period,
		Buckets:         make([]models.RevenueBucket, len(buckets)),
		PreviousRevenue: previous,
	}
	for i, b := range buckets {
		target := targetForBucket(targets, b)
		out.Buckets[i] = models.RevenueBucket{
			Label:   b.Label,
			Start:   b.Start,
			End:     b.End,
			Revenue: revenue[i],
			Orders:  orders[i],
			Target:  target,
		}
		out.TotalRevenue += revenue[i]
		out.TotalOrders += orders[i]
		out.TotalTarget += target
	}
	out.TotalRevenue = Money(out.TotalRevenue)
	out.TotalTarget = Money(out.TotalTarget)
	out.RevenueGrowth = Growth(previous, out.TotalRevenue)
	out.Achievement = Percentage(out.TotalRevenue, out.TotalTarget)
	return out, nil
}

// UserGrowthProgress compares the last complete week against the one before it
func (d *DashboardService) UserGrowthProgress(ctx context.Context, period string) (*models.UserGrowthProgress, error) {
	period, weeks, err := GrowthWindow(d.targets.now(), period)
	if err != nil {
		return nil, err
	}

	points, err := d.agg.WeeklyGrowth(ctx, weeks)
	if err != nil {
		return nil, fmt.Errorf("user growth %s: %w", period, err)
	}

	out := &models.UserGrowthProgress{Period: period, Weeks: points}
	for _, p := range points {
		out.TotalNewUsers += p.NewUsers
		out.TotalOrders += p.Orders
		out.TotalSessions += p.Sessions
	}
	out.AvgConversionRate = ConversionRate(out.TotalOrders, out.TotalSessions)
	if n := len(points); n >= 2 {
		out.UserGrowth = Growth(float64(points[n-2].NewUsers), float64(points[n-1].NewUsers))
	}
	return out, nil
}
