package mocks

import (
	"context"
	"time"

	"github.com/ganot/labdesk/internal/domain/people"
	"github.com/ganot/labdesk/internal/domain/project"
	"github.com/ganot/labdesk/internal/domain/task"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, tenantID string, proj *project.Project) error {
	args := m.Called(ctx, tenantID, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, tenantID, id string) (*project.Project, error) {
	args := m.Called(ctx, tenantID, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context, tenantID string) ([]project.Project, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) UpdateStatus(ctx context.Context, tenantID, id string, status project.Status, changedAt time.Time) error {
	args := m.Called(ctx, tenantID, id, status, changedAt)
	return args.Error(0)
}

// TaskRepository is a mock for repository.TaskRepository.
type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) Create(ctx context.Context, tenantID string, t *task.Task) error {
	args := m.Called(ctx, tenantID, t)
	return args.Error(0)
}

func (m *TaskRepository) Get(ctx context.Context, tenantID, id string) (*task.Task, error) {
	args := m.Called(ctx, tenantID, id)
	if t, ok := args.Get(0).(*task.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskRepository) List(ctx context.Context, tenantID string) ([]task.Task, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]task.Task); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskRepository) UpdateStatus(ctx context.Context, tenantID, id string, status task.Status, completedAt *time.Time) error {
	args := m.Called(ctx, tenantID, id, status, completedAt)
	return args.Error(0)
}

// PeopleRepository is a mock for repository.PeopleRepository.
type PeopleRepository struct {
	mock.Mock
}

func (m *PeopleRepository) CreatePerson(ctx context.Context, tenantID string, p *people.SourcePerson) error {
	args := m.Called(ctx, tenantID, p)
	return args.Error(0)
}

func (m *PeopleRepository) GetPerson(ctx context.Context, tenantID, id string) (*people.SourcePerson, error) {
	args := m.Called(ctx, tenantID, id)
	if p, ok := args.Get(0).(*people.SourcePerson); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PeopleRepository) ListLeads(ctx context.Context, tenantID string) ([]people.SourcePerson, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]people.SourcePerson); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PeopleRepository) ListMembers(ctx context.Context, tenantID string) ([]people.SourcePerson, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]people.SourcePerson); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PeopleRepository) AddMembership(ctx context.Context, tenantID, projectID, personID string, role people.Role) error {
	args := m.Called(ctx, tenantID, projectID, personID, role)
	return args.Error(0)
}

func (m *PeopleRepository) CreateDepartment(ctx context.Context, tenantID string, d *people.Department) error {
	args := m.Called(ctx, tenantID, d)
	return args.Error(0)
}

func (m *PeopleRepository) ListDepartments(ctx context.Context, tenantID string) ([]people.Department, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]people.Department); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
