package project_test

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/labdesk/internal/domain/project"
	"github.com/ganot/labdesk/internal/repository"
	"github.com/ganot/labdesk/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := project.NewService(&mocks.ProjectRepository{}, nil)

	_, err := svc.Create(ctx, "tenant1", project.CreateRequest{Title: "  "})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(ctx, "tenant1", project.CreateRequest{Title: "X", Status: ptr(project.Status("paused"))})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(ctx, "tenant1", project.CreateRequest{Title: "X", Classification: ptr(project.Classification("weird"))})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_CreateDefaults(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, "tenant1", mock.Anything).Return(nil)

	svc := project.NewService(repo, nil)
	proj, err := svc.Create(ctx, "tenant1", project.CreateRequest{Title: "Neuro Study"})
	require.NoError(t, err)
	require.NotEmpty(t, proj.ID)
	require.Equal(t, "tenant1", proj.TenantID)
	require.Nil(t, proj.Status)
	require.Nil(t, proj.Classification)
	require.False(t, proj.CreatedAt.IsZero())
	require.Nil(t, proj.LastStatusChange)
}

func TestProjectService_GetNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "tenant1", "ghost").Return((*project.Project)(nil), repository.ErrNotFound)

	svc := project.NewService(repo, nil)
	_, err := svc.Get(ctx, "tenant1", "ghost")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	changed := time.Now()

	repo := &mocks.ProjectRepository{}
	repo.On("UpdateStatus", ctx, "tenant1", "p1", project.StatusOnHold, mock.Anything).Return(nil)
	repo.On("Get", ctx, "tenant1", "p1").Return(&project.Project{
		ID:               "p1",
		Title:            "Neuro Study",
		Status:           ptr(project.StatusOnHold),
		LastStatusChange: &changed,
	}, nil)

	svc := project.NewService(repo, nil)
	proj, err := svc.UpdateStatus(ctx, "tenant1", "p1", project.StatusOnHold)
	require.NoError(t, err)
	require.Equal(t, project.StatusOnHold, *proj.Status)
	require.NotNil(t, proj.LastStatusChange)
}

func TestProjectService_UpdateStatusValidation(t *testing.T) {
	ctx := context.Background()
	svc := project.NewService(&mocks.ProjectRepository{}, nil)

	_, err := svc.UpdateStatus(ctx, "tenant1", "p1", "paused")
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_UpdateStatusNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("UpdateStatus", ctx, "tenant1", "ghost", project.StatusActive, mock.Anything).Return(repository.ErrNotFound)

	svc := project.NewService(repo, nil)
	_, err := svc.UpdateStatus(ctx, "tenant1", "ghost", project.StatusActive)
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}
