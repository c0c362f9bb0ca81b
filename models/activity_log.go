package models

import (
	"time"

	"github.com/google/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog is one audited admin action against a target (or a login)
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	ActorID      uuid.UUID      `json:"actor_id" gorm:"type:uuid;not null;index:idx_activity_actor_date,sort:desc"`
	ActorRole    string         `json:"actor_role" gorm:"type:varchar(20)"`
	Action       string         `json:"action" gorm:"not null;index"`                                             // created_target, archived_target, logged_in
	ResourceType string         `json:"resource_type" gorm:"not null;index:idx_activity_resource_date,sort:desc"` // target, admin
	ResourceID   string         `json:"resource_id" gorm:"index"`
	Method       string         `json:"method" gorm:"type:varchar(10)"`
	Path         string         `json:"path"`
	StatusCode   int            `json:"status_code"`
	Changes      datatypes.JSON `json:"changes" gorm:"type:jsonb"` // {before: {...}, after: {...}}
	Status       string         `json:"status" gorm:"not null"`    // success, failed
	ErrorMessage string         `json:"error_message"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_actor_date,sort:desc;index:idx_activity_resource_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ════════════════════════════════════════════════════════════
// Action Constants
// ════════════════════════════════════════════════════════════

const (
	ActionCreateTarget     = "created_target"
	ActionUpdateTarget     = "updated_target"
	ActionArchiveTarget    = "archived_target"
	ActionDeleteTarget     = "deleted_target"
	ActionSetMonthlyTarget = "set_monthly_target"
	ActionAdminLogin       = "logged_in"

	ResourceTypeTarget = "target"
	ResourceTypeAdmin  = "admin"

	StatusSuccess = "success"
	StatusFailed  = "failed"
)
