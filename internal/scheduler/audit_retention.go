package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"

	"github.com/mrlokans/studygroups/internal/tasks"
)

var scheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateSchedule checks a five-field cron expression.
func ValidateSchedule(schedule string) error {
	_, err := scheduleParser.Parse(schedule)
	return err
}

// Enqueuer hands tasks to the background queue. *tasks.Client implements it.
type Enqueuer interface {
	Enqueue(tasks ...backlite.Task) ([]string, error)
}

// AuditRetentionScheduler periodically enqueues audit trail pruning.
type AuditRetentionScheduler struct {
	queue         Enqueuer
	schedule      string
	retentionDays int

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewAuditRetentionScheduler(queue Enqueuer, schedule string, retentionDays int) *AuditRetentionScheduler {
	return &AuditRetentionScheduler{
		queue:         queue,
		schedule:      schedule,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithParser(scheduleParser)),
	}
}

// Start registers the cron job. The scheduler stops when ctx is cancelled.
func (s *AuditRetentionScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.enqueue("schedule")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule audit retention job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Audit retention scheduler: started with schedule '%s', keeping %d days. Next run: %v",
		s.schedule, s.retentionDays, s.nextRunLocked())

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running job and removes the schedule.
func (s *AuditRetentionScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	<-s.cron.Stop().Done()
	s.cron.Remove(s.entryID)

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Printf("Audit retention scheduler: stopped")
}

// RunNow enqueues a pruning task immediately.
func (s *AuditRetentionScheduler) RunNow() error {
	return s.enqueue("manual")
}

func (s *AuditRetentionScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns when the next task will be enqueued, or nil when stopped.
func (s *AuditRetentionScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	return s.nextRunLocked()
}

func (s *AuditRetentionScheduler) nextRunLocked() *time.Time {
	entry := s.cron.Entry(s.entryID)
	if !entry.Valid() {
		return nil
	}
	next := entry.Schedule.Next(time.Now())
	return &next
}

func (s *AuditRetentionScheduler) enqueue(trigger string) error {
	ids, err := s.queue.Enqueue(tasks.PruneAuditTrailTask{
		RetentionDays: s.retentionDays,
		Trigger:       trigger,
	})
	if err != nil {
		log.Printf("Audit retention scheduler: failed to enqueue task: %v", err)
		return fmt.Errorf("enqueue audit retention task: %w", err)
	}
	log.Printf("Audit retention scheduler: enqueued task %v (%s)", ids, trigger)
	return nil
}
