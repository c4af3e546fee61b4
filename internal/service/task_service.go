package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskhive/internal/model"
	"taskhive/internal/repository"
)

// CreateTaskInput carries data for a new task. Status is optional and
// defaults to todo.
type CreateTaskInput struct {
	Title  string
	Status string
}

// UpdateTaskInput carries a partial update; nil fields keep their prior
// value.
type UpdateTaskInput struct {
	Title  *string
	Status *string
}

// TaskService wraps task business logic. The owner id always comes from the
// authenticated request context, never from the caller's payload.
type TaskService struct {
	tasks *repository.TaskRepository
}

func NewTaskService(tasks *repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) List(ctx context.Context, ownerID string) ([]model.Task, error) {
	return s.tasks.ListByOwner(ctx, ownerID)
}

func (s *TaskService) Create(ctx context.Context, ownerID string, input CreateTaskInput) (*model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	status := input.Status
	if status == "" {
		status = model.StatusTodo
	} else if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	task := model.Task{UserID: ownerID, Title: title, Status: status}
	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, input UpdateTaskInput) (*model.Task, error) {
	if input.Title == nil && input.Status == nil {
		return nil, ErrEmptyUpdate
	}

	updates := make(map[string]any, 2)
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		updates["title"] = title
	}
	if input.Status != nil {
		if !model.ValidStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *input.Status
	}

	task, err := s.tasks.Update(ctx, ownerID, taskID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if err := s.tasks.Delete(ctx, ownerID, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}
