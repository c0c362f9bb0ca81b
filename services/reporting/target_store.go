package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTargetStore persists targets in postgres
type GormTargetStore struct {
	db *gorm.DB
}

func NewGormTargetStore(db *gorm.DB) *GormTargetStore {
	return &GormTargetStore{db: db}
}

var _ TargetStore = (*GormTargetStore)(nil)

func (s *GormTargetStore) owned(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Target{}).Where("user_id = ?", userID)
}

func (s *GormTargetStore) Create(ctx context.Context, t *models.Target) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *GormTargetStore) Get(ctx context.Context, userID, id uuid.UUID) (*models.Target, error) {
	var t models.Target
	err := s.owned(ctx, userID).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "target", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *GormTargetStore) List(ctx context.Context, userID uuid.UUID, f models.TargetFilter) ([]models.Target, int64, error) {
	q := s.owned(ctx, userID)
	if f.TargetType != "" {
		q = q.Where("target_type = ?", f.TargetType)
	}
	if f.Period != "" {
		q = q.Where("period = ?", f.Period)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("start_date DESC, created_at DESC")
	if f.Limit > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * f.Limit).Limit(f.Limit)
	}

	var targets []models.Target
	if err := q.Find(&targets).Error; err != nil {
		return nil, 0, err
	}
	return targets, total, nil
}

func (s *GormTargetStore) FindOverlapping(ctx context.Context, userID uuid.UUID, targetType string, start, end time.Time, excludeID uuid.UUID) ([]models.Target, error) {
	q := s.owned(ctx, userID).
		Where("target_type = ? AND is_active = ?", targetType, true).
		Where("start_date < ? AND end_date > ?", end, start)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}

	var targets []models.Target
	if err := q.Order("start_date").Find(&targets).Error; err != nil {
		return nil, err
	}
	return targets, nil
}

func (s *GormTargetStore) FindActiveAt(ctx context.Context, userID uuid.UUID, at time.Time) ([]models.Target, error) {
	var targets []models.Target
	err := s.owned(ctx, userID).
		Where("is_active = ? AND start_date <= ? AND end_date > ?", true, at, at).
		Order("end_date").
		Find(&targets).Error
	return targets, err
}

// FindInRange skips archived and superseded (deactivated) targets
func (s *GormTargetStore) FindInRange(ctx context.Context, userID uuid.UUID, targetType string, start, end time.Time) ([]models.Target, error) {
	var targets []models.Target
	err := s.owned(ctx, userID).
		Where("target_type = ? AND is_active = ? AND status <> ?", targetType, true, models.TargetStatusArchived).
		Where("start_date < ? AND end_date > ?", end, start).
		Order("start_date").
		Find(&targets).Error
	return targets, err
}

func (s *GormTargetStore) Save(ctx context.Context, t *models.Target) error {
	return s.db.WithContext(ctx).Save(t).Error
}

// SaveProgress writes only the reconciled columns
func (s *GormTargetStore) SaveProgress(ctx context.Context, t *models.Target) error {
	return s.db.WithContext(ctx).
		Model(&models.Target{}).
		Where("id = ?", t.ID).
		Updates(map[string]any{
			"current_value":      t.CurrentValue,
			"progress":           t.Progress,
			"status":             t.Status,
			"last_calculated_at": t.LastCalculatedAt,
		}).Error
}

func (s *GormTargetStore) Deactivate(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.Target{}).
		Where("id IN ?", ids).
		Update("is_active", false).Error
}

func (s *GormTargetStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&models.Target{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "target", ID: id.String()}
	}
	return nil
}
