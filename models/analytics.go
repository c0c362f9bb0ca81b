package models

import "time"

const (
	EventPageView  = "page_view"
	EventClick     = "click"
	EventAddToCart = "add_to_cart"
	EventCheckout  = "checkout"
)

// AnalyticsEvent is a storefront interaction stored in MongoDB
type AnalyticsEvent struct {
	SessionID string    `json:"sessionId" bson:"session_id"`
	UserID    string    `json:"userId,omitempty" bson:"user_id,omitempty"`
	Type      string    `json:"type" bson:"type"`
	Path      string    `json:"path,omitempty" bson:"path,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// SessionStats summarises the page-view sessions of a range
type SessionStats struct {
	Sessions           int64   `json:"sessions"`
	BouncedSessions    int64   `json:"bouncedSessions"`
	AvgSessionDuration float64 `json:"avgSessionDuration"` // seconds
}

// ════════════════════════════════════════════════════════════
// Dashboard
// ════════════════════════════════════════════════════════════

// StatCard is one headline number with its month-over-month growth
type StatCard struct {
	Value    float64 `json:"value"`
	Previous float64 `json:"previous"`
	Growth   float64 `json:"growth"`
}

type DashboardStatCards struct {
	TotalRevenue      StatCard `json:"totalRevenue"`
	TotalOrders       StatCard `json:"totalOrders"`
	NewUsers          StatCard `json:"newUsers"`
	TotalSessions     StatCard `json:"totalSessions"`
	ConversionRate    StatCard `json:"conversionRate"`
	AverageOrderValue StatCard `json:"averageOrderValue"`
}

type MonthlyRevenuePoint struct {
	Month       string  `json:"month"`
	MonthNumber int     `json:"monthNumber"`
	Revenue     float64 `json:"revenue"`
	Target      float64 `json:"target"`
}

type TargetVsActualPoint struct {
	Label       string  `json:"label"`
	Target      float64 `json:"target"`
	Actual      float64 `json:"actual"`
	Achievement float64 `json:"achievement"`
}

type WeeklyGrowthPoint struct {
	Label          string    `json:"label"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	NewUsers       int64     `json:"newUsers"`
	Orders         int64     `json:"orders"`
	Sessions       int64     `json:"sessions"`
	ConversionRate float64   `json:"conversionRate"`
}

type PerformanceMetrics struct {
	ConversionRate     float64 `json:"conversionRate"`
	BounceRate         float64 `json:"bounceRate"`
	AvgSessionDuration float64 `json:"avgSessionDuration"`
	FulfillmentRate    float64 `json:"fulfillmentRate"`
	RevenuePerUser     float64 `json:"revenuePerUser"`
	TotalSessions      int64   `json:"totalSessions"`
}

type DashboardStats struct {
	Stats          DashboardStatCards    `json:"stats"`
	MonthlyRevenue []MonthlyRevenuePoint `json:"monthlyRevenue"`
	TargetVsActual []TargetVsActualPoint `json:"targetVsActual"`
	UserGrowth     []WeeklyGrowthPoint   `json:"userGrowth"`
	RecentOrders   []RecentOrder         `json:"recentOrders"`
	RecentUsers    []RecentUser          `json:"recentUsers"`
	Performance    PerformanceMetrics    `json:"performance"`
	CurrentTargets []Target              `json:"currentTargets"`
	Degraded       []string              `json:"degraded,omitempty"`
	GeneratedAt    time.Time             `json:"generatedAt"`
}

// ════════════════════════════════════════════════════════════
// Revenue overview / user growth
// ════════════════════════════════════════════════════════════

type RevenueBucket struct {
	Label   string    `json:"label"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Revenue float64   `json:"revenue"`
	Orders  int64     `json:"orders"`
	Target  float64   `json:"target"`
}

type RevenueOverview struct {
	Period          string          `json:"period"`
	Buckets         []RevenueBucket `json:"buckets"`
	TotalRevenue    float64         `json:"totalRevenue"`
	TotalOrders     int64           `json:"totalOrders"`
	TotalTarget     float64         `json:"totalTarget"`
	PreviousRevenue float64         `json:"previousRevenue"`
	RevenueGrowth   float64         `json:"revenueGrowth"`
	Achievement     float64         `json:"achievement"`
}

type UserGrowthProgress struct {
	Period            string              `json:"period"`
	Weeks             []WeeklyGrowthPoint `json:"weeks"`
	TotalNewUsers     int64               `json:"totalNewUsers"`
	TotalOrders       int64               `json:"totalOrders"`
	TotalSessions     int64               `json:"totalSessions"`
	AvgConversionRate float64             `json:"avgConversionRate"`
	UserGrowth        float64             `json:"userGrowth"`
}
