// Package sweeper runs the background control loops: heartbeat liveness,
// stuck-task reclamation, and retention GC.
package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/taskfleet/taskfleet/pkg/config"
	"github.com/taskfleet/taskfleet/pkg/metrics"
	"github.com/taskfleet/taskfleet/pkg/services"
)

// Service owns the three periodic sweeps. Each loop runs on its own interval
// and is independently cancellable; all operations are idempotent and safe
// to run from multiple replicas since the store serializes the mutations.
type Service struct {
	cfg              *config.Config
	taskService      *services.TaskService
	agentService     *services.AgentService
	retentionService *services.RetentionService

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService creates a new sweeper service
func NewService(
	cfg *config.Config,
	taskService *services.TaskService,
	agentService *services.AgentService,
	retentionService *services.RetentionService,
) *Service {
	return &Service{
		cfg:              cfg,
		taskService:      taskService,
		agentService:     agentService,
		retentionService: retentionService,
	}
}

// Start launches the background loops
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(3)
	go s.loop(ctx, "heartbeat", s.cfg.Sweep.HeartbeatInterval, s.sweepHeartbeats)
	go s.loop(ctx, "stuck", s.cfg.Sweep.StuckInterval, s.sweepStuckTasks)
	go s.loop(ctx, "retention", s.cfg.Sweep.GCInterval, s.sweepRetention)

	slog.Info("Sweeper started",
		"heartbeat_interval", s.cfg.Sweep.HeartbeatInterval,
		"stuck_interval", s.cfg.Sweep.StuckInterval,
		"gc_interval", s.cfg.Sweep.GCInterval)
}

// Stop signals the loops to exit and waits for in-flight sweeps to finish.
// It is safe to call Stop before Start and multiple times.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	slog.Info("Sweeper stopped")
}

func (s *Service) loop(ctx context.Context, name string, interval time.Duration, sweep func(context.Context)) {
	defer s.wg.Done()

	s.runSweep(ctx, sweep)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Sweep loop exiting", "sweep", name)
			return
		case <-ticker.C:
			s.runSweep(ctx, sweep)
		}
	}
}

// runSweep bounds one sweep pass with the command timeout. Work cut off by
// the deadline resumes on the next tick; every sweep is batched and
// idempotent, so partial passes are safe.
func (s *Service) runSweep(ctx context.Context, sweep func(context.Context)) {
	if s.cfg.DBCommandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.DBCommandTimeout)
		defer cancel()
	}
	sweep(ctx)
}

// sweepHeartbeats marks agents with stale heartbeats offline. Their running
// tasks stay put; the stuck sweep reclaims by time-in-state, which keeps
// flapping heartbeats from bouncing tasks between agents.
func (s *Service) sweepHeartbeats(ctx context.Context) {
	count, err := s.agentService.MarkStaleOffline(ctx, s.cfg.Sweep.OfflineThreshold)
	if err != nil {
		slog.Error("Heartbeat sweep failed", "error", err)
		return
	}
	if count > 0 {
		metrics.AgentsMarkedOffline.Add(float64(count))
		slog.Info("Heartbeat sweep marked agents offline", "count", count)
	}
}

func (s *Service) sweepStuckTasks(ctx context.Context) {
	result, err := s.taskService.ReclaimStuckTasks(ctx)
	if err != nil {
		slog.Error("Stuck sweep failed", "error", err)
		return
	}
	if result.Reclaimed > 0 {
		metrics.TasksReclaimed.Add(float64(result.Reclaimed))
		slog.Info("Stuck sweep reclaimed tasks", "count", result.Reclaimed)
	}
	if result.Failed > 0 {
		metrics.TasksTimedOut.Add(float64(result.Failed))
		slog.Warn("Stuck sweep failed exhausted tasks", "count", result.Failed)
	}
}

func (s *Service) sweepRetention(ctx context.Context) {
	keys, err := s.retentionService.PurgeExpiredIdempotencyKeys(ctx)
	if err != nil {
		slog.Error("Retention: idempotency purge failed", "error", err)
	} else if keys > 0 {
		metrics.RowsPurged.Add(float64(keys))
		slog.Info("Retention: purged expired idempotency keys", "count", keys)
	}

	rows, err := s.retentionService.PurgeSoftDeleted(ctx)
	if err != nil {
		slog.Error("Retention: soft-delete purge failed", "error", err)
		return
	}
	if rows > 0 {
		metrics.RowsPurged.Add(float64(rows))
		slog.Info("Retention: purged soft-deleted rows", "count", rows)
	}
}
