package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/task"
	qb "github.com/riskibarqy/lol-stats-sync/internal/platform/querybuilder"
)

type TaskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, item task.Task) error {
	if strings.TrimSpace(item.ID) == "" {
		return fmt.Errorf("task id is required")
	}

	row, err := newSyncTaskTableModel(item)
	if err != nil {
		return err
	}
	query, args, err := qb.InsertModel("sync_tasks", row, "")
	if err != nil {
		return fmt.Errorf("build insert task query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapWriteError(fmt.Sprintf("insert task id=%s", item.ID), err)
	}
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, item task.Task) error {
	row, err := newSyncTaskTableModel(item)
	if err != nil {
		return err
	}
	query, args, err := qb.Update("sync_tasks").
		Set("state", row.State).
		Set("result", row.Result).
		Set("error_message", row.ErrorMessage).
		Set("attempts", row.Attempts).
		Set("updated_at", row.UpdatedAt).
		Set("finished_at", row.FinishedAt).
		Where(qb.Eq("id", row.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update task query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update task id=%s: %w", item.ID, err)
	}
	return nil
}

func (r *TaskRepository) Get(ctx context.Context, id string) (task.Task, bool, error) {
	query, args, err := qb.Select(syncTaskColumns...).From("sync_tasks").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return task.Task{}, false, fmt.Errorf("build get task query: %w", err)
	}

	var row syncTaskTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return task.Task{}, false, nil
		}
		return task.Task{}, false, fmt.Errorf("get task id=%s: %w", id, err)
	}

	out, err := row.toDomain()
	if err != nil {
		return task.Task{}, false, err
	}
	return out, true, nil
}

func newSyncTaskTableModel(item task.Task) (syncTaskTableModel, error) {
	payload, err := marshalJSONObject(item.Payload)
	if err != nil {
		return syncTaskTableModel{}, fmt.Errorf("marshal task payload: %w", err)
	}
	result, err := marshalJSONObject(item.Result)
	if err != nil {
		return syncTaskTableModel{}, fmt.Errorf("marshal task result: %w", err)
	}

	createdAt := item.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := item.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return syncTaskTableModel{
		ID:           item.ID,
		Name:         item.Name,
		State:        string(item.State),
		Payload:      payload,
		Result:       result,
		ErrorMessage: item.ErrorMessage,
		Attempts:     item.Attempts,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
		FinishedAt:   item.FinishedAt,
	}, nil
}

func (m syncTaskTableModel) toDomain() (task.Task, error) {
	out := task.Task{
		ID:           m.ID,
		Name:         m.Name,
		State:        task.State(m.State),
		ErrorMessage: m.ErrorMessage,
		Attempts:     m.Attempts,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		FinishedAt:   m.FinishedAt,
	}
	if err := unmarshalJSONObject(m.Payload, &out.Payload); err != nil {
		return task.Task{}, fmt.Errorf("decode task payload id=%s: %w", m.ID, err)
	}
	if err := unmarshalJSONObject(m.Result, &out.Result); err != nil {
		return task.Task{}, fmt.Errorf("decode task result id=%s: %w", m.ID, err)
	}
	return out, nil
}

func marshalJSONObject(value map[string]any) (string, error) {
	if len(value) == 0 {
		return "{}", nil
	}
	return sonic.MarshalString(value)
}

func unmarshalJSONObject(raw string, dst *map[string]any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "{}" || raw == "null" {
		return nil
	}
	return sonic.UnmarshalString(raw, dst)
}
