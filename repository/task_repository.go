package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"nutriplan/models"

	"gorm.io/gorm"
)

// TaskRepository defines the interface for interacting with user tasks.
type TaskRepository interface {
	CreateTask(ctx context.Context, task *models.Task) error
	GetTaskByID(ctx context.Context, taskID uint) (*models.Task, error)
	// ListTasks returns the user's tasks in creation order, optionally only
	// those due on dueDate.
	ListTasks(ctx context.Context, userID string, dueDate *string) ([]models.Task, error)
	// ListTasksInRange returns tasks due within [startDate, endDate], plus
	// undated tasks created within the same days.
	ListTasksInRange(ctx context.Context, userID, startDate, endDate string) ([]models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, taskID uint) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) CreateTask(ctx context.Context, task *models.Task) error {
	if task == nil {
		log.Printf("ERROR: [TaskRepository] CreateTask: task cannot be nil")
		return errors.New("task cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		log.Printf("ERROR: [TaskRepository] Failed to create task '%s' for userID %s: %v", task.Title, task.UserID, err)
		return fmt.Errorf("failed to create task '%s' for userID %s: %w", task.Title, task.UserID, err)
	}
	log.Printf("INFO: [TaskRepository] Successfully created task ID %d ('%s') for userID %s.", task.ID, task.Title, task.UserID)
	return nil
}

// GetTaskByID retrieves a single task by its ID.
func (r *taskRepository) GetTaskByID(ctx context.Context, taskID uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).First(&task, taskID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("INFO: [TaskRepository] Task with ID %d not found.", taskID)
			return nil, nil // Not found
		}
		log.Printf("ERROR: [TaskRepository] Failed to retrieve task ID %d: %v", taskID, err)
		return nil, fmt.Errorf("failed to retrieve task ID %d: %w", taskID, err)
	}
	return &task, nil
}

func (r *taskRepository) ListTasks(ctx context.Context, userID string, dueDate *string) ([]models.Task, error) {
	var tasks []models.Task
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if dueDate != nil {
		q = q.Where("due_date = ?", *dueDate)
	}
	if err := q.Order("created_at asc, id asc").Find(&tasks).Error; err != nil {
		log.Printf("ERROR: [TaskRepository] Failed to retrieve tasks for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to retrieve tasks for userID %s: %w", userID, err)
	}
	return tasks, nil
}

func (r *taskRepository) ListTasksInRange(ctx context.Context, userID, startDate, endDate string) ([]models.Task, error) {
	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	var tasks []models.Task
	err = r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("(due_date >= ? AND due_date <= ?) OR (due_date IS NULL AND created_at >= ? AND created_at < ?)",
			startDate, endDate, start, end.AddDate(0, 0, 1)).
		Order("created_at asc, id asc").
		Find(&tasks).Error
	if err != nil {
		log.Printf("ERROR: [TaskRepository] Failed to retrieve tasks in range for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to retrieve tasks in range for userID %s: %w", userID, err)
	}
	return tasks, nil
}

// UpdateTask updates an existing task.
func (r *taskRepository) UpdateTask(ctx context.Context, task *models.Task) error {
	if task == nil {
		log.Printf("ERROR: [TaskRepository] UpdateTask: task cannot be nil")
		return errors.New("task cannot be nil")
	}
	if task.ID == 0 {
		log.Printf("ERROR: [TaskRepository] UpdateTask: task ID must be provided for update")
		return errors.New("task ID must be provided for update")
	}
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		log.Printf("ERROR: [TaskRepository] Failed to update task ID %d ('%s'): %v", task.ID, task.Title, err)
		return fmt.Errorf("failed to update task ID %d: %w", task.ID, err)
	}
	log.Printf("INFO: [TaskRepository] Successfully updated task ID %d ('%s').", task.ID, task.Title)
	return nil
}

// DeleteTask soft-deletes a task by its ID.
func (r *taskRepository) DeleteTask(ctx context.Context, taskID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Task{}, taskID).Error; err != nil {
		log.Printf("ERROR: [TaskRepository] Failed to delete task ID %d: %v", taskID, err)
		return fmt.Errorf("failed to delete task ID %d: %w", taskID, err)
	}
	log.Printf("INFO: [TaskRepository] Successfully soft-deleted task ID %d.", taskID)
	return nil
}
