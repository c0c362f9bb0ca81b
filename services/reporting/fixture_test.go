package reporting_test

import (
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/services/reporting"
	"github.com/devifai-2026/feauage-backend-sub001/testdata/mockreporting"
	"github.com/stretchr/testify/mock"
)

// Wednesday
var testNow = ist(2026, time.October, 14, 12, 0)

type fixture struct {
	orders   *mockreporting.OrderReader
	users    *mockreporting.UserReader
	sessions *mockreporting.SessionReader
	store    *mockreporting.TargetStore

	agg     *reporting.Aggregator
	targets *reporting.TargetService
	dash    *reporting.DashboardService
}

func newFixture() *fixture {
	f := &fixture{
		orders:   new(mockreporting.OrderReader),
		users:    new(mockreporting.UserReader),
		sessions: new(mockreporting.SessionReader),
		store:    new(mockreporting.TargetStore),
	}
	f.agg = reporting.NewAggregator(f.orders, f.users, f.sessions)
	f.targets = reporting.NewTargetService(f.store, f.agg)
	f.targets.Now = func() time.Time { return testNow }
	f.dash = reporting.NewDashboardService(f.agg, f.targets)
	return f
}

func startsAt(t time.Time) any {
	return mock.MatchedBy(func(b reporting.Bucket) bool { return b.Start.Equal(t) })
}
