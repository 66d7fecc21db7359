// Package usecase implements the business logic for task operations.
package usecase

import (
	"context"

	"task_backend/internal/feature/tasks/domain/entity"
)

// TaskRepository abstracts the persistence layer for task data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TaskRepository interface {
	// Create persists a new task. Status and creation time are assigned by the store layer.
	Create(ctx context.Context, task *entity.Task) error

	// ListByUser returns every task owned by the given user, in store order.
	ListByUser(ctx context.Context, userID uint) ([]entity.Task, error)
}

// TaskUsecase provides business logic for task operations.
type TaskUsecase struct {
	repo TaskRepository
}

// NewTaskUsecase creates a new TaskUsecase with the given repository.
func NewTaskUsecase(r TaskRepository) *TaskUsecase {
	return &TaskUsecase{repo: r}
}

// CreateTask creates a task owned by userID. The title is assumed to be
// validated at the transport layer; description may be empty.
func (u *TaskUsecase) CreateTask(ctx context.Context, userID uint, title, description string) error {
	task := &entity.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      entity.StatusPending,
	}
	return u.repo.Create(ctx, task)
}

// ListTasks returns the tasks owned by userID. A user only ever sees
// their own tasks.
func (u *TaskUsecase) ListTasks(ctx context.Context, userID uint) ([]entity.Task, error) {
	return u.repo.ListByUser(ctx, userID)
}
