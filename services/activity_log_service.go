package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogRepository persists activity log batches
type ActivityLogRepository interface {
	CreateBatch(ctx context.Context, logs []models.ActivityLog) error
}

type gormActivityLogRepository struct {
	db *gorm.DB
}

func NewGormActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &gormActivityLogRepository{db: db}
}

func (r *gormActivityLogRepository) CreateBatch(ctx context.Context, logs []models.ActivityLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(logs, len(logs)).Error
}

// ════════════════════════════════════════════════════════════
// Batch Worker
// ════════════════════════════════════════════════════════════

// ActivityLogWorker buffers activity logs and writes them in batches, either
// when batchSize entries are queued or every flushInterval
type ActivityLogWorker struct {
	repo          ActivityLogRepository
	queue         chan models.ActivityLog
	batchSize     int
	flushInterval time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewActivityLogWorker(repo ActivityLogRepository, bufferSize, batchSize int, interval time.Duration) *ActivityLogWorker {
	w := &ActivityLogWorker{
		repo:          repo,
		queue:         make(chan models.ActivityLog, bufferSize),
		batchSize:     batchSize,
		flushInterval: interval,
	}
	w.wg.Add(1)
	go w.loop()
	return w
}

// Enqueue never blocks the request path. A full buffer or a stopped worker drops the entry.
func (w *ActivityLogWorker) Enqueue(entry models.ActivityLog) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		log.Printf("[activity-log] WARN worker stopped, dropping action=%s", entry.Action)
		return false
	}
	select {
	case w.queue <- entry:
		return true
	default:
		log.Printf("[activity-log] WARN buffer full, dropping action=%s", entry.Action)
		return false
	}
}

// Shutdown stops accepting entries and blocks until the queue is flushed
func (w *ActivityLogWorker) Shutdown() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.queue)
	w.mu.Unlock()

	w.wg.Wait()
	log.Printf("[activity-log] worker stopped")
}

func (w *ActivityLogWorker) loop() {
	defer w.wg.Done()

	var batch []models.ActivityLog
	ticker := time.NewTicker(w.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case entry, ok := <-w.queue:
			if !ok {
				if len(batch) > 0 {
					w.flush(batch)
				}
				return
			}
			batch = append(batch, entry)
			if len(batch) >= w.batchSize {
				w.flush(batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(batch)
				batch = nil
			}
		}
	}
}

func (w *ActivityLogWorker) flush(batch []models.ActivityLog) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := w.repo.CreateBatch(ctx, batch); err != nil {
		log.Printf("[activity-log] ERROR flush size=%d err=%v", len(batch), err)
		return
	}
	log.Printf("[activity-log] flushed %d entries", len(batch))
}

// ════════════════════════════════════════════════════════════
// Logging API
// ════════════════════════════════════════════════════════════

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	ActorID      uuid.UUID
	ActorRole    string
	Action       string // ActionCreateTarget, ActionArchiveTarget, ...
	ResourceType string
	ResourceID   string
	Changes      map[string]interface{} // {before: {...}, after: {...}}
	StatusCode   int
	Status       string // StatusSuccess or StatusFailed
	ErrorMessage string
	Context      *gin.Context // For IP, User-Agent, method and path
}

var activityLogWorker *ActivityLogWorker

// InitActivityLogWorker starts the global worker used by LogActivity
func InitActivityLogWorker(repo ActivityLogRepository, bufferSize, batchSize int, interval time.Duration) *ActivityLogWorker {
	activityLogWorker = NewActivityLogWorker(repo, bufferSize, batchSize, interval)
	return activityLogWorker
}

// ShutdownActivityLogWorker flushes pending entries; safe without a running worker
func ShutdownActivityLogWorker() {
	if activityLogWorker != nil {
		activityLogWorker.Shutdown()
	}
}

// BuildActivityLog turns a request into a storable entry
func BuildActivityLog(req LogActivityRequest) models.ActivityLog {
	entry := models.ActivityLog{
		ActorID:      req.ActorID,
		ActorRole:    req.ActorRole,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		StatusCode:   req.StatusCode,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
	}
	if entry.Status == "" {
		entry.Status = models.StatusSuccess
	}

	if req.Changes != nil {
		data, err := json.Marshal(req.Changes)
		if err != nil {
			log.Printf("[activity-log] failed to marshal changes: %v", err)
			data = []byte("{}")
		}
		entry.Changes = data
	}

	if c := req.Context; c != nil {
		entry.IPAddress = c.ClientIP()
		entry.UserAgent = c.GetHeader("User-Agent")
		if c.Request != nil {
			entry.Method = c.Request.Method
			entry.Path = c.Request.URL.Path
		}
	}
	return entry
}

// LogActivity queues an admin action for the background writer. Logging never
// fails the request that triggered it.
func LogActivity(req LogActivityRequest) {
	if req.ActorID == uuid.Nil {
		log.Printf("[activity-log] warning: ActorID is nil for action %s", req.Action)
		return
	}
	if activityLogWorker == nil {
		log.Printf("[activity-log] warning: worker not started, dropping action=%s", req.Action)
		return
	}
	activityLogWorker.Enqueue(BuildActivityLog(req))
}

// CreateChanges builds the before/after payload stored with a log entry
func CreateChanges(before, after interface{}) map[string]interface{} {
	return map[string]interface{}{
		"before": before,
		"after":  after,
	}
}
