package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// AuditRetentionQueue is the backlite queue name of PruneAuditTrailTask.
const AuditRetentionQueue = "cleanup_audit_events"

const defaultRetentionDays = 30

// AuditPruner deletes audit events older than a retention window.
// *audit.Service implements it.
type AuditPruner interface {
	DeleteOldEvents(retention time.Duration) (int64, error)
}

// PruneAuditTrailTask drops audit events older than RetentionDays.
type PruneAuditTrailTask struct {
	RetentionDays int    `json:"retention_days"`
	Trigger       string `json:"trigger"` // "schedule" or "manual"
}

func (t PruneAuditTrailTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        AuditRetentionQueue,
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration: 24 * time.Hour,
			Data:     &backlite.RetainData{OnlyFailed: true},
		},
	}
}

func (t PruneAuditTrailTask) retention() time.Duration {
	days := t.RetentionDays
	if days <= 0 {
		days = defaultRetentionDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// PruneAuditTrail is the queue processor for PruneAuditTrailTask.
func PruneAuditTrail(pruner AuditPruner) backlite.QueueProcessor[PruneAuditTrailTask] {
	return func(ctx context.Context, task PruneAuditTrailTask) error {
		if pruner == nil {
			return fmt.Errorf("audit pruner not configured")
		}

		deleted, err := pruner.DeleteOldEvents(task.retention())
		if err != nil {
			return fmt.Errorf("prune audit trail: %w", err)
		}

		log.Printf("[TASK] Pruned %d audit events older than %s (%s)", deleted, task.retention(), task.Trigger)
		return nil
	}
}

func NewAuditRetentionQueue(pruner AuditPruner) backlite.Queue {
	return backlite.NewQueue(PruneAuditTrail(pruner))
}
