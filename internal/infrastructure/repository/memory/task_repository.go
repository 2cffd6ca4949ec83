package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/storage"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/task"
)

type TaskRepository struct {
	mu    sync.RWMutex
	items map[string]task.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{items: make(map[string]task.Task)}
}

func (r *TaskRepository) Create(_ context.Context, item task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("insert task id=%s: %w", item.ID, storage.ErrDuplicateKey)
	}
	r.items[item.ID] = cloneTask(item)
	return nil
}

func (r *TaskRepository) Update(_ context.Context, item task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[item.ID]
	if !ok {
		return fmt.Errorf("update task id=%s: no rows affected", item.ID)
	}
	current.State = item.State
	current.Result = item.Result
	current.ErrorMessage = item.ErrorMessage
	current.Attempts = item.Attempts
	current.UpdatedAt = item.UpdatedAt
	current.FinishedAt = item.FinishedAt
	r.items[item.ID] = cloneTask(current)
	return nil
}

func (r *TaskRepository) Get(_ context.Context, id string) (task.Task, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return task.Task{}, false, nil
	}
	return cloneTask(item), true, nil
}

func cloneTask(t task.Task) task.Task {
	copied := t
	copied.Payload = maps.Clone(t.Payload)
	copied.Result = maps.Clone(t.Result)
	if t.FinishedAt != nil {
		v := *t.FinishedAt
		copied.FinishedAt = &v
	}
	return copied
}
