package store

import (
	"context"
	"errors"

	"github.com/zeeshanarif5173/mywms-sub000/internal/core/domain"
	"github.com/zeeshanarif5173/mywms-sub000/internal/core/ports"
)

// TaskRepository adapts a ListStore to the full-list task contract the engine
// expects. An unwritten key reads as an empty list.
type TaskRepository struct {
	store ports.ListStore
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(store ports.ListStore) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) LoadAll(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := r.store.Read(ctx, KeyTasks, &tasks); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []domain.Task{}, nil
		}
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (r *TaskRepository) ReplaceAll(ctx context.Context, tasks []domain.Task) error {
	return r.store.Write(ctx, KeyTasks, tasks)
}
