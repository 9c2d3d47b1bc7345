package services

import (
	"context"
	"testing"
	"time"

	"nutriplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTaskService(repo *MockTaskRepository) *taskService {
	svc := NewTaskService(repo).(*taskService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("valid task", func(t *testing.T) {
		repo := new(MockTaskRepository)
		due := "2025-03-30"
		repo.On("CreateTask", ctx, mock.MatchedBy(func(task *models.Task) bool {
			return task.UserID == "u1" && task.Title == "Drink 8 glasses" && task.Type == models.TaskTypeWater && *task.DueDate == due
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Task).ID = 5
		}).Return(nil).Once()

		task, err := newTestTaskService(repo).CreateTask(ctx, "u1", TaskInput{Title: "  Drink 8 glasses ", Type: "WATER", DueDate: &due})

		require.NoError(t, err)
		assert.Equal(t, uint(5), task.ID)
		repo.AssertExpectations(t)
	})

	t.Run("empty due date is stored as none", func(t *testing.T) {
		repo := new(MockTaskRepository)
		empty := ""
		repo.On("CreateTask", ctx, mock.MatchedBy(func(task *models.Task) bool { return task.DueDate == nil })).Return(nil).Once()

		_, err := newTestTaskService(repo).CreateTask(ctx, "u1", TaskInput{Title: "Stretch", Type: models.TaskTypeExercise, DueDate: &empty})
		require.NoError(t, err)
	})

	for name, in := range map[string]TaskInput{
		"missing title": {Type: models.TaskTypeCustom},
		"unknown type":  {Title: "Nap", Type: "sleep"},
		"bad due date":  {Title: "Nap", Type: models.TaskTypeCustom, DueDate: ptr("tomorrow")},
	} {
		t.Run("rejects "+name, func(t *testing.T) {
			repo := new(MockTaskRepository)
			_, err := newTestTaskService(repo).CreateTask(ctx, "u1", in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
		})
	}
}

func TestTaskService_SetTaskCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("owner completes and reopens", func(t *testing.T) {
		repo := new(MockTaskRepository)
		task := &models.Task{ID: 1, UserID: "u1", Title: "Walk", Type: models.TaskTypeExercise}
		repo.On("GetTaskByID", ctx, uint(1)).Return(task, nil)
		repo.On("UpdateTask", ctx, task).Return(nil).Twice()
		svc := newTestTaskService(repo)

		got, err := svc.SetTaskCompletion(ctx, "u1", 1, true)
		require.NoError(t, err)
		assert.True(t, got.Completed)
		require.NotNil(t, got.CompletedAt)
		assert.True(t, got.CompletedAt.Equal(fixedNow))

		got, err = svc.SetTaskCompletion(ctx, "u1", 1, false)
		require.NoError(t, err)
		assert.False(t, got.Completed)
		assert.Nil(t, got.CompletedAt)
		repo.AssertExpectations(t)
	})

	t.Run("no-op when already in requested state", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("GetTaskByID", ctx, uint(2)).Return(&models.Task{ID: 2, UserID: "u1", Completed: true}, nil).Once()

		_, err := newTestTaskService(repo).SetTaskCompletion(ctx, "u1", 2, true)
		require.NoError(t, err)
		repo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("GetTaskByID", ctx, uint(3)).Return(&models.Task{ID: 3, UserID: "u2"}, nil).Once()

		_, err := newTestTaskService(repo).SetTaskCompletion(ctx, "u1", 3, true)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTaskRepository)
	repo.On("GetTaskByID", ctx, uint(1)).Return(&models.Task{ID: 1, UserID: "u1"}, nil).Once()
	repo.On("DeleteTask", ctx, uint(1)).Return(nil).Once()
	repo.On("GetTaskByID", ctx, uint(404)).Return(nil, nil).Once()
	svc := newTestTaskService(repo)

	require.NoError(t, svc.DeleteTask(ctx, "u1", 1))
	assert.ErrorIs(t, svc.DeleteTask(ctx, "u1", 404), ErrNotFound)
	repo.AssertExpectations(t)
}

func ptr[T any](v T) *T { return &v }
