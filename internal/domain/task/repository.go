package task

import "context"

type Repository interface {
	Create(ctx context.Context, item Task) error
	// Update overwrites the mutable status fields of an existing task.
	Update(ctx context.Context, item Task) error
	Get(ctx context.Context, id string) (Task, bool, error)
}
