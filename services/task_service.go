package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"nutriplan/models"
	"nutriplan/repository"
)

// TaskInput is the body of a task creation request.
type TaskInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        models.TaskType `json:"type"`
	DueDate     *string         `json:"dueDate"`
}

// TaskService defines the interface for managing a user's daily tasks.
type TaskService interface {
	ListTasks(ctx context.Context, userID string, dueDate *string) ([]models.Task, error)
	CreateTask(ctx context.Context, userID string, in TaskInput) (*models.Task, error)
	SetTaskCompletion(ctx context.Context, userID string, taskID uint, completed bool) (*models.Task, error)
	DeleteTask(ctx context.Context, userID string, taskID uint) error
}

type taskService struct {
	taskRepo repository.TaskRepository
	now      func() time.Time
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo, now: time.Now}
}

func (s *taskService) ListTasks(ctx context.Context, userID string, dueDate *string) ([]models.Task, error) {
	if dueDate != nil {
		if _, err := time.Parse(time.DateOnly, *dueDate); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	tasks, err := s.taskRepo.ListTasks(ctx, userID, dueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for userID %s: %w", userID, err)
	}
	return tasks, nil
}

func (s *taskService) CreateTask(ctx context.Context, userID string, in TaskInput) (*models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	taskType := models.TaskType(strings.ToLower(string(in.Type)))
	if !taskType.IsValid() {
		return nil, fmt.Errorf("%w: type must be one of meal, exercise, water, supplement, custom", ErrInvalidInput)
	}
	var dueDate *string
	if in.DueDate != nil && *in.DueDate != "" {
		if _, err := time.Parse(time.DateOnly, *in.DueDate); err != nil {
			return nil, fmt.Errorf("%w: dueDate must be YYYY-MM-DD", ErrInvalidInput)
		}
		d := *in.DueDate
		dueDate = &d
	}

	task := &models.Task{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Type:        taskType,
		DueDate:     dueDate,
	}
	if err := s.taskRepo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task for userID %s: %w", userID, err)
	}
	return task, nil
}

// ownedTask loads a task and checks it belongs to userID.
func (s *taskService) ownedTask(ctx context.Context, userID string, taskID uint) (*models.Task, error) {
	task, err := s.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task ID %d: %w", taskID, err)
	}
	if task == nil {
		return nil, fmt.Errorf("%w: task %d", ErrNotFound, taskID)
	}
	if task.UserID != userID {
		log.Printf("WARN: [TaskService] Unauthorized attempt by userID '%s' to modify taskID %d (belongs to userID '%s').", userID, taskID, task.UserID)
		return nil, fmt.Errorf("%w: task %d", ErrForbidden, taskID)
	}
	return task, nil
}

func (s *taskService) SetTaskCompletion(ctx context.Context, userID string, taskID uint, completed bool) (*models.Task, error) {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if task.Completed == completed {
		log.Printf("INFO: [TaskService] TaskID %d already has completed=%t. No action taken.", taskID, completed)
		return task, nil
	}

	task.Completed = completed
	task.CompletedAt = nil
	if completed {
		now := s.now()
		task.CompletedAt = &now
	}
	if err := s.taskRepo.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task ID %d: %w", taskID, err)
	}
	log.Printf("INFO: [TaskService] TaskID %d marked completed=%t for userID '%s'.", taskID, completed, userID)
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, userID string, taskID uint) error {
	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}
	if err := s.taskRepo.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task ID %d: %w", taskID, err)
	}
	return nil
}
