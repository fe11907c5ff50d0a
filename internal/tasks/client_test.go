package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "tasks.db")

	client, err := NewClient(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNewClient(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "queue.db")
	cfg := DefaultConfig()
	cfg.DBPath = dbPath

	client, err := NewClient(cfg)
	require.NoError(t, err)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "tasks database should be created")
	assert.NoError(t, client.Close())
}

func TestNewClient_EmptyPath(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestClientStartStop(t *testing.T) {
	client := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client.Start(ctx)
	client.Start(ctx)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()

	assert.True(t, client.Stop(stopCtx), "stop should succeed gracefully")
	assert.True(t, client.Stop(stopCtx), "second stop is a no-op")
}

type recordingPruner struct {
	mu    sync.Mutex
	calls []time.Duration
	done  chan struct{}
	err   error
}

func newRecordingPruner() *recordingPruner {
	return &recordingPruner{done: make(chan struct{}, 1)}
}

func (p *recordingPruner) DeleteOldEvents(retention time.Duration) (int64, error) {
	p.mu.Lock()
	p.calls = append(p.calls, retention)
	p.mu.Unlock()
	p.done <- struct{}{}
	return 3, p.err
}

func TestAuditRetentionQueue_ProcessesTask(t *testing.T) {
	client := newTestClient(t)
	pruner := newRecordingPruner()
	client.Register(NewAuditRetentionQueue(pruner))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client.Start(ctx)
	defer client.Stop(context.Background())

	ids, err := client.Enqueue(PruneAuditTrailTask{RetentionDays: 7, Trigger: "schedule"})
	require.NoError(t, err)
	assert.Len(t, ids, 1)

	select {
	case <-pruner.done:
	case <-time.After(5 * time.Second):
		t.Fatal("task was not executed within timeout")
	}

	pruner.mu.Lock()
	defer pruner.mu.Unlock()
	assert.Equal(t, []time.Duration{7 * 24 * time.Hour}, pruner.calls)
}

func TestPruneAuditTrail(t *testing.T) {
	t.Run("defaults retention", func(t *testing.T) {
		pruner := newRecordingPruner()
		err := PruneAuditTrail(pruner)(context.Background(), PruneAuditTrailTask{})
		require.NoError(t, err)
		assert.Equal(t, []time.Duration{30 * 24 * time.Hour}, pruner.calls)
	})

	t.Run("wraps pruner error", func(t *testing.T) {
		pruner := newRecordingPruner()
		pruner.err = errors.New("disk full")
		err := PruneAuditTrail(pruner)(context.Background(), PruneAuditTrailTask{RetentionDays: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("nil pruner", func(t *testing.T) {
		err := PruneAuditTrail(nil)(context.Background(), PruneAuditTrailTask{})
		assert.Error(t, err)
	})
}

func TestPruneAuditTrailTaskConfig(t *testing.T) {
	cfg := PruneAuditTrailTask{}.Config()

	assert.Equal(t, AuditRetentionQueue, cfg.Name)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
	assert.NotEmpty(t, cfg.DBPath)
}

var _ backlite.Task = PruneAuditTrailTask{}
