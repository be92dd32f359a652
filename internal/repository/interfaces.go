package repository

import (
	"context"
	"time"

	"github.com/ganot/labdesk/internal/domain/people"
	"github.com/ganot/labdesk/internal/domain/project"
	"github.com/ganot/labdesk/internal/domain/task"
)

// ProjectRepository manages project persistence
type ProjectRepository interface {
	Create(ctx context.Context, tenantID string, proj *project.Project) error
	Get(ctx context.Context, tenantID, id string) (*project.Project, error)
	List(ctx context.Context, tenantID string) ([]project.Project, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status project.Status, changedAt time.Time) error
}

// TaskRepository manages task persistence
type TaskRepository interface {
	Create(ctx context.Context, tenantID string, t *task.Task) error
	Get(ctx context.Context, tenantID, id string) (*task.Task, error)
	List(ctx context.Context, tenantID string) ([]task.Task, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status task.Status, completedAt *time.Time) error
}

// PeopleRepository manages people, departments, and membership persistence
type PeopleRepository interface {
	CreatePerson(ctx context.Context, tenantID string, p *people.SourcePerson) error
	GetPerson(ctx context.Context, tenantID, id string) (*people.SourcePerson, error)
	ListLeads(ctx context.Context, tenantID string) ([]people.SourcePerson, error)
	ListMembers(ctx context.Context, tenantID string) ([]people.SourcePerson, error)
	AddMembership(ctx context.Context, tenantID, projectID, personID string, role people.Role) error
	CreateDepartment(ctx context.Context, tenantID string, d *people.Department) error
	ListDepartments(ctx context.Context, tenantID string) ([]people.Department, error)
}
