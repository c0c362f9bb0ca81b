package reporting

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/google/uuid"
)

// TargetService owns the target lifecycle and keeps currentValue/progress/status
// in line with live actuals. Concurrent reconciles of one target race; last write wins.
type TargetService struct {
	store TargetStore
	agg   *Aggregator
	Now   func() time.Time
}

func NewTargetService(store TargetStore, agg *Aggregator) *TargetService {
	return &TargetService{store: store, agg: agg, Now: time.Now}
}

func (s *TargetService) now() time.Time {
	return s.Now().In(IST)
}

// ════════════════════════════════════════════════════════════
// Status rules
// ════════════════════════════════════════════════════════════

// blocking statuses occupy their (owner, type, range) slot
func isBlocking(status string) bool {
	switch status {
	case models.TargetStatusNotStarted, models.TargetStatusActive, models.TargetStatusInProgress:
		return true
	}
	return false
}

func initialStatus(start, now time.Time) string {
	if start.After(now) {
		return models.TargetStatusNotStarted
	}
	return models.TargetStatusActive
}

// nextStatus never moves a target out of completed or archived
func nextStatus(current string, progress int, start, end, now time.Time) string {
	switch current {
	case models.TargetStatusArchived, models.TargetStatusCompleted:
		return current
	}
	if progress >= 100 {
		return models.TargetStatusCompleted
	}
	if !now.Before(end) {
		return models.TargetStatusFailed
	}
	if current == models.TargetStatusNotStarted && (progress > 0 || !now.Before(start)) {
		return models.TargetStatusInProgress
	}
	return current
}

func validateType(targetType string) error {
	if !slices.Contains(models.TargetTypes, targetType) {
		return invalid("targetType", "must be one of revenue, orders, users, conversion")
	}
	return nil
}

func validatePeriod(period string) error {
	if !slices.Contains(models.TargetPeriods, period) {
		return invalid("period", "must be one of daily, weekly, monthly, quarterly, half-yearly, yearly, custom")
	}
	return nil
}

func validateRange(start, end time.Time) error {
	if !start.Before(end) {
		return invalid("endDate", "must be after startDate")
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// Reconcile
// ════════════════════════════════════════════════════════════

// refresh recomputes the live fields in memory and reports whether any changed
func (s *TargetService) refresh(ctx context.Context, t *models.Target, now time.Time) (bool, error) {
	if t.Status == models.TargetStatusArchived {
		return false, nil
	}
	actual, err := s.agg.Actual(ctx, t.TargetType, t.StartDate, t.EndDate, now)
	if err != nil {
		return false, fmt.Errorf("actual for target %s: %w", t.ID, err)
	}
	progress := Progress(actual, t.TargetValue)
	status := nextStatus(t.Status, progress, t.StartDate, t.EndDate, now)

	if actual == t.CurrentValue && progress == t.Progress && status == t.Status {
		return false, nil
	}
	t.CurrentValue = actual
	t.Progress = progress
	t.Status = status
	t.LastCalculatedAt = &now
	return true, nil
}

// Reconcile refreshes t and persists it when the live values moved
func (s *TargetService) Reconcile(ctx context.Context, t *models.Target) error {
	changed, err := s.refresh(ctx, t, s.now())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := s.store.SaveProgress(ctx, t); err != nil {
		return fmt.Errorf("save progress for target %s: %w", t.ID, err)
	}
	log.Printf("[reporting.targets] reconciled id=%s current=%.2f progress=%d status=%s", t.ID, t.CurrentValue, t.Progress, t.Status)
	return nil
}

// reconcileAll refreshes targets in place concurrently. Failures are logged and the
// stored values kept; the first error is returned.
func (s *TargetService) reconcileAll(ctx context.Context, targets []models.Target) error {
	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	for i := range targets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Reconcile(ctx, &targets[i])
		}(i)
	}
	wg.Wait()

	var first error
	for _, err := range errs {
		if err == nil {
			continue
		}
		log.Printf("[reporting.targets] ERROR reconcile err=%v", err)
		if first == nil {
			first = err
		}
	}
	return first
}

// ════════════════════════════════════════════════════════════
// Create / Update / Archive / Delete
// ════════════════════════════════════════════════════════════

// claimRange rejects the range when a blocking target of the same type already
// overlaps it and deactivates overlapping finished targets otherwise
func (s *TargetService) claimRange(ctx context.Context, userID uuid.UUID, targetType string, start, end time.Time, excludeID uuid.UUID) error {
	overlapping, err := s.store.FindOverlapping(ctx, userID, targetType, start, end, excludeID)
	if err != nil {
		return fmt.Errorf("find overlapping targets: %w", err)
	}

	var finished []uuid.UUID
	for i := range overlapping {
		o := &overlapping[i]
		if err := s.Reconcile(ctx, o); err != nil {
			return err
		}
		if isBlocking(o.Status) {
			return &ConflictError{Reason: fmt.Sprintf(
				"a %s %s target (%s) already covers %s to %s",
				o.Status, o.TargetType, o.ID,
				o.StartDate.In(IST).Format(time.DateOnly), o.EndDate.In(IST).Format(time.DateOnly),
			)}
		}
		finished = append(finished, o.ID)
	}

	if len(finished) > 0 {
		if err := s.store.Deactivate(ctx, finished); err != nil {
			return fmt.Errorf("deactivate finished targets: %w", err)
		}
		log.Printf("[reporting.targets] deactivated %d finished target(s) type=%s", len(finished), targetType)
	}
	return nil
}

func (s *TargetService) Create(ctx context.Context, userID uuid.UUID, req models.CreateTargetRequest) (*models.Target, error) {
	if err := validateType(req.TargetType); err != nil {
		return nil, err
	}
	if err := validatePeriod(req.Period); err != nil {
		return nil, err
	}
	if req.TargetValue <= 0 {
		return nil, invalid("targetValue", "must be greater than 0")
	}

	now := s.now()
	start := startOfDay(now)
	if req.StartDate != nil {
		start = req.StartDate.In(IST)
	}

	var end time.Time
	if req.EndDate != nil {
		end = req.EndDate.In(IST)
	} else {
		derived, err := PeriodEnd(req.Period, start)
		if err != nil {
			return nil, err
		}
		end = derived
	}
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	if err := s.claimRange(ctx, userID, req.TargetType, start, end, uuid.Nil); err != nil {
		return nil, err
	}

	t := &models.Target{
		UserID:      userID,
		TargetType:  req.TargetType,
		Period:      req.Period,
		StartDate:   start,
		EndDate:     end,
		TargetValue: req.TargetValue,
		Status:      initialStatus(start, now),
		IsActive:    true,
		Description: req.Description,
	}
	if _, err := s.refresh(ctx, t, now); err != nil {
		return nil, err
	}
	if t.LastCalculatedAt == nil {
		t.LastCalculatedAt = &now
	}

	if err := s.store.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create target: %w", err)
	}
	log.Printf("[reporting.targets] created id=%s type=%s period=%s status=%s", t.ID, t.TargetType, t.Period, t.Status)
	return t, nil
}

func onlyArchives(req models.UpdateTargetRequest) bool {
	return req.Status != nil && *req.Status == models.TargetStatusArchived &&
		req.TargetValue == nil && req.StartDate == nil && req.EndDate == nil && req.Description == nil
}

func (s *TargetService) Update(ctx context.Context, userID, id uuid.UUID, req models.UpdateTargetRequest) (*models.Target, error) {
	t, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if onlyArchives(req) {
		return s.archive(ctx, t)
	}
	if t.Status == models.TargetStatusCompleted {
		return nil, invalid("status", "completed targets can only be archived")
	}
	if t.Status == models.TargetStatusArchived {
		return nil, invalid("status", "archived targets cannot be modified")
	}

	if req.TargetValue != nil {
		if *req.TargetValue <= 0 {
			return nil, invalid("targetValue", "must be greater than 0")
		}
		t.TargetValue = *req.TargetValue
	}
	if req.Description != nil {
		t.Description = *req.Description
	}

	now := s.now()
	if req.StartDate != nil || req.EndDate != nil {
		start, end := t.StartDate, t.EndDate
		if req.StartDate != nil {
			start = req.StartDate.In(IST)
		}
		if req.EndDate != nil {
			end = req.EndDate.In(IST)
		}
		if err := validateRange(start, end); err != nil {
			return nil, err
		}
		if err := s.claimRange(ctx, userID, t.TargetType, start, end, t.ID); err != nil {
			return nil, err
		}
		t.StartDate, t.EndDate = start, end
		if t.Status == models.TargetStatusFailed && now.Before(end) {
			t.Status = initialStatus(start, now)
		}
	}

	if req.Status != nil {
		switch *req.Status {
		case models.TargetStatusCompleted:
			t.Status = models.TargetStatusCompleted
		case models.TargetStatusArchived:
			t.Status = models.TargetStatusArchived
			t.IsActive = false
		default:
			return nil, invalid("status", "can only be set to completed or archived")
		}
	}

	if _, err := s.refresh(ctx, t, now); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("save target: %w", err)
	}
	log.Printf("[reporting.targets] updated id=%s status=%s progress=%d", t.ID, t.Status, t.Progress)
	return t, nil
}

func (s *TargetService) archive(ctx context.Context, t *models.Target) (*models.Target, error) {
	t.Status = models.TargetStatusArchived
	t.IsActive = false
	if err := s.store.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("archive target: %w", err)
	}
	log.Printf("[reporting.targets] archived id=%s", t.ID)
	return t, nil
}

// Archive works from every status
func (s *TargetService) Archive(ctx context.Context, userID, id uuid.UUID) (*models.Target, error) {
	t, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.archive(ctx, t)
}

func (s *TargetService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.store.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete target: %w", err)
	}
	log.Printf("[reporting.targets] deleted id=%s", id)
	return nil
}

// ════════════════════════════════════════════════════════════
// Reads
// ════════════════════════════════════════════════════════════

func (s *TargetService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Target, error) {
	t, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.Reconcile(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List reconciles the page it returns; a failed reconcile keeps the stored values
func (s *TargetService) List(ctx context.Context, userID uuid.UUID, filter models.TargetFilter) ([]models.Target, int64, error) {
	if filter.TargetType != "" {
		if err := validateType(filter.TargetType); err != nil {
			return nil, 0, err
		}
	}
	if filter.Period != "" {
		if err := validatePeriod(filter.Period); err != nil {
			return nil, 0, err
		}
	}
	if filter.Status != "" && !slices.Contains(models.TargetStatuses, filter.Status) {
		return nil, 0, invalid("status", "unknown status %q", filter.Status)
	}

	targets, total, err := s.store.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list targets: %w", err)
	}
	_ = s.reconcileAll(ctx, targets)
	return targets, total, nil
}

// Current returns reconciled active targets whose range contains now
func (s *TargetService) Current(ctx context.Context, userID uuid.UUID) ([]models.Target, error) {
	targets, err := s.store.FindActiveAt(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("find current targets: %w", err)
	}
	_ = s.reconcileAll(ctx, targets)
	return targets, nil
}

// Stats counts stored targets. Statuses are refreshed against the clock only,
// without recomputing actuals.
func (s *TargetService) Stats(ctx context.Context, userID uuid.UUID) (models.TargetStats, error) {
	targets, _, err := s.store.List(ctx, userID, models.TargetFilter{})
	if err != nil {
		return models.TargetStats{}, fmt.Errorf("list targets: %w", err)
	}

	now := s.now()
	stats := models.TargetStats{
		Total:    len(targets),
		ByStatus: make(map[string]int, len(models.TargetStatuses)),
		ByType:   make(map[string]int, len(models.TargetTypes)),
	}
	for _, st := range models.TargetStatuses {
		stats.ByStatus[st] = 0
	}
	for _, tt := range models.TargetTypes {
		stats.ByType[tt] = 0
	}

	var progressSum int
	for _, t := range targets {
		status := nextStatus(t.Status, t.Progress, t.StartDate, t.EndDate, now)
		stats.ByStatus[status]++
		stats.ByType[t.TargetType]++
		if t.IsActive {
			stats.Active++
		}
		progressSum += t.Progress
	}
	stats.AverageProgress = Round1(SafeDivide(float64(progressSum), float64(len(targets))))
	stats.CompletionRate = Percentage(float64(stats.ByStatus[models.TargetStatusCompleted]), float64(len(targets)))
	return stats, nil
}

// ════════════════════════════════════════════════════════════
// Monthly target
// ════════════════════════════════════════════════════════════

func (s *TargetService) findMonthly(ctx context.Context, userID uuid.UUID, targetType string, month Bucket) (*models.Target, error) {
	overlapping, err := s.store.FindOverlapping(ctx, userID, targetType, month.Start, month.End, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("find monthly target: %w", err)
	}
	for i := range overlapping {
		t := overlapping[i]
		if t.Period == models.TargetPeriodMonthly && t.StartDate.Equal(month.Start) {
			return &t, nil
		}
	}
	return nil, nil
}

// SetMonthlyTarget upserts the current IST month's monthly target for a type
func (s *TargetService) SetMonthlyTarget(ctx context.Context, userID uuid.UUID, req models.SetMonthlyTargetRequest) (*models.Target, bool, error) {
	if req.TargetType == "" {
		req.TargetType = models.TargetTypeRevenue
	}
	if err := validateType(req.TargetType); err != nil {
		return nil, false, err
	}
	if req.TargetValue <= 0 {
		return nil, false, invalid("targetValue", "must be greater than 0")
	}

	month := CurrentMonth(s.now())
	existing, err := s.findMonthly(ctx, userID, req.TargetType, month)
	if err != nil {
		return nil, false, err
	}

	// a finished month target is superseded through the create contract
	if existing != nil && isBlocking(existing.Status) {
		patch := models.UpdateTargetRequest{TargetValue: &req.TargetValue}
		if req.Description != "" {
			patch.Description = &req.Description
		}
		t, err := s.Update(ctx, userID, existing.ID, patch)
		return t, false, err
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("%s target for %s", req.TargetType, month.Label)
	}
	t, err := s.Create(ctx, userID, models.CreateTargetRequest{
		TargetType:  req.TargetType,
		Period:      models.TargetPeriodMonthly,
		StartDate:   &month.Start,
		EndDate:     &month.End,
		TargetValue: req.TargetValue,
		Description: description,
	})
	return t, true, err
}

// MonthlyTarget returns the live actual for the current month even when no target is set
func (s *TargetService) MonthlyTarget(ctx context.Context, userID uuid.UUID, targetType string) (models.MonthlyTargetResponse, error) {
	if targetType == "" {
		targetType = models.TargetTypeRevenue
	}
	if err := validateType(targetType); err != nil {
		return models.MonthlyTargetResponse{}, err
	}

	now := s.now()
	month := CurrentMonth(now)
	resp := models.MonthlyTargetResponse{
		TargetType:  targetType,
		PeriodLabel: month.Label,
		StartDate:   month.Start,
		EndDate:     month.End,
	}

	t, err := s.findMonthly(ctx, userID, targetType, month)
	if err != nil {
		return resp, err
	}
	if t != nil {
		if err := s.Reconcile(ctx, t); err != nil {
			return resp, err
		}
		resp.Target = t
		resp.CurrentValue = t.CurrentValue
		return resp, nil
	}

	actual, err := s.agg.Actual(ctx, targetType, month.Start, month.End, now)
	if err != nil {
		return resp, err
	}
	resp.CurrentValue = actual
	return resp, nil
}

// targetForBucket spreads each target's value across its range and returns the
// share falling inside b
func targetForBucket(targets []models.Target, b Bucket) float64 {
	var total float64
	for _, t := range targets {
		if !Overlaps(t.StartDate, t.EndDate, b.Start, b.End) {
			continue
		}
		span := t.EndDate.Sub(t.StartDate)
		if span <= 0 {
			continue
		}
		from, to := t.StartDate, t.EndDate
		if b.Start.After(from) {
			from = b.Start
		}
		if b.End.Before(to) {
			to = b.End
		}
		total += t.TargetValue * float64(to.Sub(from)) / float64(span)
	}
	return Money(total)
}
