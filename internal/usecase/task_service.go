package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/task"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/id"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/metrics"
)

const (
	defaultTaskWorkers     = 4
	defaultTaskTimeout     = 5 * time.Minute
	defaultTaskMaxAttempts = 1
)

// TaskFunc is the body of an async task. The returned map becomes the task
// result.
type TaskFunc func(ctx context.Context) (map[string]any, error)

type TaskConfig struct {
	Workers      int
	Timeout      time.Duration
	MaxAttempts  int
	RetryBackoff time.Duration
}

// TaskService runs sync work in the background and records its state so
// callers can poll it.
type TaskService struct {
	repo    task.Repository
	ids     id.Generator
	pool    *ants.Pool
	cfg     TaskConfig
	now     func() time.Time
	logger  *logging.Logger
	metrics *metrics.Metrics

	running sync.WaitGroup
}

func NewTaskService(
	repo task.Repository,
	ids id.Generator,
	cfg TaskConfig,
	logger *logging.Logger,
	m *metrics.Metrics,
) (*TaskService, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultTaskWorkers
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTaskTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultTaskMaxAttempts
	}
	if cfg.RetryBackoff < 0 {
		cfg.RetryBackoff = 0
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("create task worker pool: %w", err)
	}

	return &TaskService{
		repo:    repo,
		ids:     ids,
		pool:    pool,
		cfg:     cfg,
		now:     time.Now,
		logger:  logger,
		metrics: m,
	}, nil
}

func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	if now != nil {
		s.now = now
	}
	return s
}

// Submit records a PENDING task and schedules fn on the worker pool. The
// task keeps running after ctx is cancelled.
func (s *TaskService) Submit(ctx context.Context, name string, payload map[string]any, fn TaskFunc) (task.Task, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TaskService.Submit")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return task.Task{}, fmt.Errorf("%w: task name and body are required", ErrInvalidInput)
	}

	taskID, err := s.ids.NewID()
	if err != nil {
		return task.Task{}, fmt.Errorf("generate task id: %w", err)
	}

	now := s.now().UTC()
	item := task.Task{
		ID:        taskID,
		Name:      name,
		State:     task.StatePending,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return task.Task{}, fmt.Errorf("create task name=%s: %w", name, err)
	}

	runCtx := context.WithoutCancel(ctx)
	s.running.Add(1)
	if err := s.pool.Submit(func() {
		defer s.running.Done()
		s.run(runCtx, item, fn)
	}); err != nil {
		s.running.Done()
		s.finish(runCtx, item, nil, err)
		return task.Task{}, fmt.Errorf("%w: schedule task name=%s: %v", ErrDependencyUnavailable, name, err)
	}

	s.logger.InfoContext(ctx, "task submitted", "task_id", item.ID, "name", name)
	return item, nil
}

func (s *TaskService) Get(ctx context.Context, taskID string) (task.Task, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TaskService.Get")
	defer span.End()

	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return task.Task{}, fmt.Errorf("%w: task id is required", ErrInvalidInput)
	}

	item, found, err := s.repo.Get(ctx, taskID)
	if err != nil {
		return task.Task{}, fmt.Errorf("get task id=%s: %w", taskID, err)
	}
	if !found {
		return task.Task{}, fmt.Errorf("%w: task id=%s", ErrNotFound, taskID)
	}
	return item, nil
}

// Close waits for in-flight tasks and releases the pool.
func (s *TaskService) Close() {
	s.running.Wait()
	s.pool.Release()
}

func (s *TaskService) run(ctx context.Context, item task.Task, fn TaskFunc) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	for attempt := 1; ; attempt++ {
		item.State = task.StateStarted
		item.Attempts = attempt
		item.UpdatedAt = s.now().UTC()
		s.save(ctx, item)

		result, err := fn(ctx)
		if err == nil {
			s.finish(ctx, item, result, nil)
			return
		}
		if !IsTransient(err) || attempt >= s.cfg.MaxAttempts {
			s.finish(ctx, item, nil, err)
			return
		}

		wait := s.cfg.RetryBackoff * time.Duration(attempt)
		if after, ok := RetryAfter(err); ok && after > wait {
			wait = after
		}
		item.State = task.StateRetry
		item.ErrorMessage = err.Error()
		item.UpdatedAt = s.now().UTC()
		s.save(ctx, item)
		s.logger.WarnContext(ctx, "task attempt failed, retrying",
			"task_id", item.ID,
			"name", item.Name,
			"attempt", attempt,
			"wait", wait,
			"error", err,
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.finish(ctx, item, nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, ctx.Err()))
			return
		case <-timer.C:
		}
	}
}

func (s *TaskService) finish(ctx context.Context, item task.Task, result map[string]any, runErr error) {
	finishedAt := s.now().UTC()
	item.UpdatedAt = finishedAt
	item.FinishedAt = &finishedAt
	if runErr != nil {
		item.State = task.StateFailure
		item.ErrorMessage = runErr.Error()
		item.Result = nil
	} else {
		item.State = task.StateSuccess
		item.ErrorMessage = ""
		item.Result = result
	}

	// The timeout may have fired already; the final state is still written.
	s.save(context.WithoutCancel(ctx), item)
	s.metrics.TaskFinished(item.Name, string(item.State))

	if runErr != nil {
		s.logger.ErrorContext(ctx, "task failed", "task_id", item.ID, "name", item.Name, "attempts", item.Attempts, "error", runErr)
		return
	}
	s.logger.InfoContext(ctx, "task finished", "task_id", item.ID, "name", item.Name, "attempts", item.Attempts)
}

func (s *TaskService) save(ctx context.Context, item task.Task) {
	if err := s.repo.Update(ctx, item); err != nil {
		s.logger.ErrorContext(ctx, "update task state failed", "task_id", item.ID, "state", item.State, "error", err)
	}
}
