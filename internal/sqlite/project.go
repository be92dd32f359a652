package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ganot/labdesk/internal/domain/project"
	"github.com/ganot/labdesk/internal/repository"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, tenantID string, proj *project.Project) error {
	query := `
		INSERT INTO projects (id, tenant_id, title, status, classification, open_to_participants, start_date, created_at, last_status_change)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		proj.ID,
		tenantID,
		proj.Title,
		statusValue(proj.Status),
		classificationValue(proj.Classification),
		proj.OpenToParticipants,
		nullableTime(proj.StartDate),
		proj.CreatedAt,
		nullableTime(proj.LastStatusChange),
	)

	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, tenantID, id string) (*project.Project, error) {
	query := `
		SELECT id, tenant_id, title, status, classification, open_to_participants, start_date, created_at, last_status_change
		FROM projects
		WHERE id = ? AND tenant_id = ?
	`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query, id, tenantID))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return proj, nil
}

// List returns all projects for a tenant, newest first
func (r *ProjectRepository) List(ctx context.Context, tenantID string) ([]project.Project, error) {
	query := `
		SELECT id, tenant_id, title, status, classification, open_to_participants, start_date, created_at, last_status_change
		FROM projects
		WHERE tenant_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *proj)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// UpdateStatus sets the project status and records the change instant
func (r *ProjectRepository) UpdateStatus(ctx context.Context, tenantID, id string, status project.Status, changedAt time.Time) error {
	query := `
		UPDATE projects
		SET status = ?, last_status_change = ?
		WHERE id = ? AND tenant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, string(status), changedAt, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to update project status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var proj project.Project
	var status, classification sql.NullString
	var startDate, lastStatusChange sql.NullTime

	err := row.Scan(
		&proj.ID,
		&proj.TenantID,
		&proj.Title,
		&status,
		&classification,
		&proj.OpenToParticipants,
		&startDate,
		&proj.CreatedAt,
		&lastStatusChange,
	)
	if err != nil {
		return nil, err
	}

	if status.Valid {
		s := project.Status(status.String)
		proj.Status = &s
	}
	if classification.Valid {
		c := project.Classification(classification.String)
		proj.Classification = &c
	}
	if startDate.Valid {
		t := startDate.Time
		proj.StartDate = &t
	}
	if lastStatusChange.Valid {
		t := lastStatusChange.Time
		proj.LastStatusChange = &t
	}

	return &proj, nil
}

func statusValue(s *project.Status) any {
	if s == nil {
		return nil
	}
	return string(*s)
}

func classificationValue(c *project.Classification) any {
	if c == nil {
		return nil
	}
	return string(*c)
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
