package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TargetTypeRevenue    = "revenue"
	TargetTypeOrders     = "orders"
	TargetTypeUsers      = "users"
	TargetTypeConversion = "conversion"

	TargetPeriodDaily      = "daily"
	TargetPeriodWeekly     = "weekly"
	TargetPeriodMonthly    = "monthly"
	TargetPeriodQuarterly  = "quarterly"
	TargetPeriodHalfYearly = "half-yearly"
	TargetPeriodYearly     = "yearly"
	TargetPeriodCustom     = "custom"

	TargetStatusNotStarted = "not-started"
	TargetStatusActive     = "active"
	TargetStatusInProgress = "in-progress"
	TargetStatusCompleted  = "completed"
	TargetStatusFailed     = "failed"
	TargetStatusArchived   = "archived"
)

var (
	TargetTypes    = []string{TargetTypeRevenue, TargetTypeOrders, TargetTypeUsers, TargetTypeConversion}
	TargetPeriods  = []string{TargetPeriodDaily, TargetPeriodWeekly, TargetPeriodMonthly, TargetPeriodQuarterly, TargetPeriodHalfYearly, TargetPeriodYearly, TargetPeriodCustom}
	TargetStatuses = []string{TargetStatusNotStarted, TargetStatusActive, TargetStatusInProgress, TargetStatusCompleted, TargetStatusFailed, TargetStatusArchived}
)

// Target is a goal for one metric over a date range, owned by an admin user
type Target struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index:idx_targets_owner_type,priority:1"`
	TargetType       string     `json:"targetType" gorm:"type:varchar(20);not null;index:idx_targets_owner_type,priority:2"`
	Period           string     `json:"period" gorm:"type:varchar(20);not null"`
	StartDate        time.Time  `json:"startDate" gorm:"not null;index"`
	EndDate          time.Time  `json:"endDate" gorm:"not null;index"`
	TargetValue      float64    `json:"targetValue" gorm:"not null"`
	CurrentValue     float64    `json:"currentValue" gorm:"default:0"`
	Progress         int        `json:"progress" gorm:"default:0"`
	Status           string     `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	IsActive         bool       `json:"isActive" gorm:"column:is_active;not null;default:true;index"`
	Description      string     `json:"description" gorm:"type:text"`
	LastCalculatedAt *time.Time `json:"lastCalculatedAt,omitempty" gorm:"column:last_calculated_at"`
	CreatedAt        time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Target) TableName() string {
	return "targets"
}

// BeforeCreate hook - auto-generate UUID v7
func (t *Target) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// Request/Response Models
// ════════════════════════════════════════════════════════════

type CreateTargetRequest struct {
	TargetType  string     `json:"targetType" binding:"required" example:"revenue"`
	Period      string     `json:"period" binding:"required" example:"monthly"`
	StartDate   *time.Time `json:"startDate" example:"2026-10-01T00:00:00+05:30"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	TargetValue float64    `json:"targetValue" binding:"required" example:"100000"`
	Description string     `json:"description,omitempty"`
}

// UpdateTargetRequest is a partial patch; nil fields are left untouched
type UpdateTargetRequest struct {
	TargetValue *float64   `json:"targetValue,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

type SetMonthlyTargetRequest struct {
	TargetType  string  `json:"targetType" example:"revenue"`
	TargetValue float64 `json:"targetValue" binding:"required" example:"250000"`
	Description string  `json:"description,omitempty"`
}

// TargetFilter drives GET /targets
type TargetFilter struct {
	TargetType string
	Period     string
	Status     string
	IsActive   *bool
	Page       int
	Limit      int
}

type TargetStats struct {
	Total           int            `json:"total"`
	Active          int            `json:"active"`
	ByStatus        map[string]int `json:"byStatus"`
	ByType          map[string]int `json:"byType"`
	AverageProgress float64        `json:"averageProgress"`
	CompletionRate  float64        `json:"completionRate"`
}

type MonthlyTargetResponse struct {
	TargetType   string    `json:"targetType"`
	PeriodLabel  string    `json:"periodLabel"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	CurrentValue float64   `json:"currentValue"`
	Target       *Target   `json:"target"`
}
