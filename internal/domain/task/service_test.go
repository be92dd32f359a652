package task_test

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/labdesk/internal/domain/task"
	"github.com/ganot/labdesk/internal/repository"
	"github.com/ganot/labdesk/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTaskService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := task.NewService(&mocks.TaskRepository{}, nil)

	_, err := svc.Create(ctx, "tenant1", task.CreateRequest{Title: ""})
	require.ErrorIs(t, err, task.ErrInvalidInput)

	_, err = svc.Create(ctx, "tenant1", task.CreateRequest{Title: "X", Priority: "urgent"})
	require.ErrorIs(t, err, task.ErrInvalidInput)
}

func TestTaskService_CreateDefaults(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TaskRepository{}
	repo.On("Create", ctx, "tenant1", mock.Anything).Return(nil)

	svc := task.NewService(repo, nil)
	tk, err := svc.Create(ctx, "tenant1", task.CreateRequest{Title: "Recruit cohort"})
	require.NoError(t, err)
	require.NotEmpty(t, tk.ID)
	require.Equal(t, task.StatusTodo, tk.Status)
	require.Equal(t, task.PriorityMedium, tk.Priority)
	require.Nil(t, tk.UpdatedAt)
}

func TestTaskService_CreateUnknownProject(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TaskRepository{}
	repo.On("Create", ctx, "tenant1", mock.Anything).Return(repository.ErrForeignKeyViolation)

	svc := task.NewService(repo, nil)
	projectID := "ghost"
	_, err := svc.Create(ctx, "tenant1", task.CreateRequest{Title: "X", ProjectID: &projectID})
	require.ErrorIs(t, err, task.ErrInvalidInput)
}

func TestTaskService_GetNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TaskRepository{}
	repo.On("Get", ctx, "tenant1", "ghost").Return((*task.Task)(nil), repository.ErrNotFound)

	svc := task.NewService(repo, nil)
	_, err := svc.Get(ctx, "tenant1", "ghost")
	require.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestTaskService_CompleteStampsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	completed := time.Now()

	repo := &mocks.TaskRepository{}
	repo.On("UpdateStatus", ctx, "tenant1", "t1", task.StatusCompleted, mock.MatchedBy(func(ts *time.Time) bool {
		return ts != nil
	})).Return(nil)
	repo.On("Get", ctx, "tenant1", "t1").Return(&task.Task{
		ID:        "t1",
		Title:     "Recruit cohort",
		Status:    task.StatusCompleted,
		UpdatedAt: &completed,
	}, nil)

	svc := task.NewService(repo, nil)
	tk, err := svc.UpdateStatus(ctx, "tenant1", "t1", task.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, task.StatusCompleted, tk.Status)
	require.NotNil(t, tk.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestTaskService_NonCompletionLeavesStamp(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TaskRepository{}
	repo.On("UpdateStatus", ctx, "tenant1", "t1", task.StatusInProgress, (*time.Time)(nil)).Return(nil)
	repo.On("Get", ctx, "tenant1", "t1").Return(&task.Task{
		ID:     "t1",
		Title:  "Recruit cohort",
		Status: task.StatusInProgress,
	}, nil)

	svc := task.NewService(repo, nil)
	tk, err := svc.UpdateStatus(ctx, "tenant1", "t1", task.StatusInProgress)
	require.NoError(t, err)
	require.Nil(t, tk.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestTaskService_UpdateStatusValidation(t *testing.T) {
	ctx := context.Background()
	svc := task.NewService(&mocks.TaskRepository{}, nil)

	_, err := svc.UpdateStatus(ctx, "tenant1", "t1", "done")
	require.ErrorIs(t, err, task.ErrInvalidInput)
}

func TestTaskService_UpdateStatusNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TaskRepository{}
	repo.On("UpdateStatus", ctx, "tenant1", "ghost", task.StatusTodo, (*time.Time)(nil)).Return(repository.ErrNotFound)

	svc := task.NewService(repo, nil)
	_, err := svc.UpdateStatus(ctx, "tenant1", "ghost", task.StatusTodo)
	require.ErrorIs(t, err, task.ErrTaskNotFound)
}
