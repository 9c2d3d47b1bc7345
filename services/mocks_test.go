package services

import (
	"context"
	"time"

	"nutriplan/models"

	"github.com/stretchr/testify/mock"
)

// MockMealPlanRepository is a mock type for the MealPlanRepository interface
type MockMealPlanRepository struct {
	mock.Mock
}

func (m *MockMealPlanRepository) ReplacePlanForDate(ctx context.Context, plan *models.MealPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockMealPlanRepository) CreatePlan(ctx context.Context, plan *models.MealPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockMealPlanRepository) GetPlanByID(ctx context.Context, planID uint) (*models.MealPlan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) ListPlansByUser(ctx context.Context, userID, startDate, endDate string) ([]models.MealPlan, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) PlannedDates(ctx context.Context, userID string, dates []string) (map[string]bool, error) {
	args := m.Called(ctx, userID, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockMealPlanRepository) GetMealByID(ctx context.Context, mealID uint) (*models.Meal, error) {
	args := m.Called(ctx, mealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealPlanRepository) SetMealCompletion(ctx context.Context, mealID uint, completed bool, completedAt *time.Time) error {
	args := m.Called(ctx, mealID, completed, completedAt)
	return args.Error(0)
}

// MockProfileRepository is a mock type for the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTaskRepository is a mock type for the TaskRepository interface
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) CreateTask(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetTaskByID(ctx context.Context, taskID uint) (*models.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) ListTasks(ctx context.Context, userID string, dueDate *string) ([]models.Task, error) {
	args := m.Called(ctx, userID, dueDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) ListTasksInRange(ctx context.Context, userID, startDate, endDate string) ([]models.Task, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, taskID uint) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

// MockProgressRepository is a mock type for the ProgressRepository interface
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) UpsertProgress(ctx context.Context, entry *models.UserProgress) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockProgressRepository) GetProgressByDate(ctx context.Context, userID, date string) (*models.UserProgress, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) ListProgress(ctx context.Context, userID, startDate, endDate string) ([]models.UserProgress, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserProgress), args.Error(1)
}

// MockNewsRepository is a mock type for the NewsRepository interface
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) ListNews(ctx context.Context, category string, limit int) ([]models.HealthNews, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HealthNews), args.Error(1)
}

func (m *MockNewsRepository) CreateNews(ctx context.Context, article *models.HealthNews) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockNewsRepository) CreateNewsBatch(ctx context.Context, articles []models.HealthNews) error {
	args := m.Called(ctx, articles)
	return args.Error(0)
}

func (m *MockNewsRepository) CountNews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
