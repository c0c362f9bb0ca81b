package reporting

import (
	"fmt"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/models"
)

// IST anchors every calendar bucket
var IST = time.FixedZone("IST", 5*3600+30*60)

// Bucket is the half-open range [Start, End)
type Bucket struct {
	Label string
	Start time.Time
	End   time.Time
}

func (b Bucket) Contains(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// Overlaps reports whether the two half-open ranges share any instant
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

const (
	RevenuePeriod3Months = "3months"
	RevenuePeriod6Months = "6months"
	RevenuePeriodYearly  = "yearly"

	GrowthPeriod4Weeks  = "4weeks"
	GrowthPeriod8Weeks  = "8weeks"
	GrowthPeriod12Weeks = "12weeks"
)

var (
	revenueWindows = map[string]int{RevenuePeriod3Months: 3, RevenuePeriod6Months: 6, RevenuePeriodYearly: 12}
	growthWindows  = map[string]int{GrowthPeriod4Weeks: 4, GrowthPeriod8Weeks: 8, GrowthPeriod12Weeks: 12}
)

func startOfDay(t time.Time) time.Time {
	t = t.In(IST)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, IST)
}

// monthBucket returns the calendar month offset months away from now's month.
// time.Date normalises month 0 to December of the previous year.
func monthBucket(now time.Time, offset int, withYear bool) Bucket {
	now = now.In(IST)
	start := time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, IST)
	label := start.Format("Jan")
	if withYear {
		label = start.Format("Jan 2006")
	}
	return Bucket{Label: label, Start: start, End: start.AddDate(0, 1, 0)}
}

// MonthBuckets returns the last n calendar months including the current one, oldest first
func MonthBuckets(now time.Time, n int) []Bucket {
	buckets := make([]Bucket, 0, n)
	crossesYear := int(now.In(IST).Month()) < n
	for i := n - 1; i >= 0; i-- {
		buckets = append(buckets, monthBucket(now, -i, crossesYear))
	}
	return buckets
}

// YearBuckets returns Jan..Dec of now's IST year
func YearBuckets(now time.Time) []Bucket {
	year := now.In(IST).Year()
	buckets := make([]Bucket, 12)
	for m := 0; m < 12; m++ {
		start := time.Date(year, time.January+time.Month(m), 1, 0, 0, 0, 0, IST)
		buckets[m] = Bucket{Label: start.Format("Jan"), Start: start, End: start.AddDate(0, 1, 0)}
	}
	return buckets
}

// WeekBuckets returns n complete Monday-Sunday weeks, oldest first. The week
// containing now is never included, even when now is a Sunday.
func WeekBuckets(now time.Time, n int) []Bucket {
	today := startOfDay(now)
	sinceMonday := (int(today.Weekday()) + 6) % 7
	currentMonday := today.AddDate(0, 0, -sinceMonday)

	buckets := make([]Bucket, 0, n)
	for i := n; i >= 1; i-- {
		start := currentMonday.AddDate(0, 0, -7*i)
		end := start.AddDate(0, 0, 7)
		sunday := end.AddDate(0, 0, -1)
		buckets = append(buckets, Bucket{
			Label: fmt.Sprintf("%s - %s", start.Format("Jan 2"), sunday.Format("Jan 2")),
			Start: start,
			End:   end,
		})
	}
	return buckets
}

func CurrentMonth(now time.Time) Bucket {
	return monthBucket(now, 0, true)
}

func PreviousMonth(now time.Time) Bucket {
	return monthBucket(now, -1, true)
}

// RevenueWindow resolves a revenue-overview period; "" means 6months
func RevenueWindow(now time.Time, period string) (string, []Bucket, error) {
	if period == "" {
		period = RevenuePeriod6Months
	}
	n, ok := revenueWindows[period]
	if !ok {
		return "", nil, invalid("period", "must be one of 3months, 6months, yearly")
	}
	if period == RevenuePeriodYearly {
		return period, YearBuckets(now), nil
	}
	return period, MonthBuckets(now, n), nil
}

// GrowthWindow resolves a user-growth period; "" means 4weeks
func GrowthWindow(now time.Time, period string) (string, []Bucket, error) {
	if period == "" {
		period = GrowthPeriod4Weeks
	}
	n, ok := growthWindows[period]
	if !ok {
		return "", nil, invalid("period", "must be one of 4weeks, 8weeks, 12weeks")
	}
	return period, WeekBuckets(now, n), nil
}

// PeriodEnd derives a target's end date from its period. Custom periods have no default.
func PeriodEnd(period string, start time.Time) (time.Time, error) {
	switch period {
	case models.TargetPeriodDaily:
		return start.AddDate(0, 0, 1), nil
	case models.TargetPeriodWeekly:
		return start.AddDate(0, 0, 7), nil
	case models.TargetPeriodMonthly:
		return start.AddDate(0, 1, 0), nil
	case models.TargetPeriodQuarterly:
		return start.AddDate(0, 3, 0), nil
	case models.TargetPeriodHalfYearly:
		return start.AddDate(0, 6, 0), nil
	case models.TargetPeriodYearly:
		return start.AddDate(1, 0, 0), nil
	case models.TargetPeriodCustom:
		return time.Time{}, invalid("endDate", "is required for custom periods")
	default:
		return time.Time{}, invalid("period", "unknown period %q", period)
	}
}

// revenueBaseline is the window growth is measured against. Month windows compare
// against the same number of months right before them. Yearly compares Jan 1..now
// against the same span of the previous year.
func revenueBaseline(now time.Time, period string, buckets []Bucket) Bucket {
	if period == RevenuePeriodYearly {
		yearStart := buckets[0].Start
		return Bucket{
			Label: yearStart.AddDate(-1, 0, 0).Format("2006"),
			Start: yearStart.AddDate(-1, 0, 0),
			End:   now.In(IST).AddDate(-1, 0, 0),
		}
	}
	n := len(buckets)
	return Bucket{Start: buckets[0].Start.AddDate(0, -n, 0), End: buckets[0].Start}
}
