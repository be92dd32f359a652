package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ganot/labdesk/internal/domain/task"
	"github.com/ganot/labdesk/internal/repository"
)

// TaskRepository implements repository.TaskRepository for SQLite
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, tenantID string, t *task.Task) error {
	query := `
		INSERT INTO tasks (id, tenant_id, title, project_id, status, priority, due_date, created_at, updated_at, assigned_to)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		tenantID,
		t.Title,
		t.ProjectID,
		string(t.Status),
		string(t.Priority),
		nullableTime(t.DueDate),
		t.CreatedAt,
		nullableTime(t.UpdatedAt),
		t.AssignedTo,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// Get retrieves a task by ID
func (r *TaskRepository) Get(ctx context.Context, tenantID, id string) (*task.Task, error) {
	query := `
		SELECT id, tenant_id, title, project_id, status, priority, due_date, created_at, updated_at, assigned_to
		FROM tasks
		WHERE id = ? AND tenant_id = ?
	`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id, tenantID))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// List returns all tasks for a tenant, newest first
func (r *TaskRepository) List(ctx context.Context, tenantID string) ([]task.Task, error) {
	query := `
		SELECT id, tenant_id, title, project_id, status, priority, due_date, created_at, updated_at, assigned_to
		FROM tasks
		WHERE tenant_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// UpdateStatus sets the task status; completedAt stamps updated_at when the
// task transitions to completed
func (r *TaskRepository) UpdateStatus(ctx context.Context, tenantID, id string, status task.Status, completedAt *time.Time) error {
	query := `
		UPDATE tasks
		SET status = ?, updated_at = COALESCE(?, updated_at)
		WHERE id = ? AND tenant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, string(status), nullableTime(completedAt), id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
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

func scanTask(row rowScanner) (*task.Task, error) {
	var t task.Task
	var projectID, assignedTo sql.NullString
	var dueDate, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.TenantID,
		&t.Title,
		&projectID,
		&t.Status,
		&t.Priority,
		&dueDate,
		&t.CreatedAt,
		&updatedAt,
		&assignedTo,
	)
	if err != nil {
		return nil, err
	}

	if projectID.Valid {
		t.ProjectID = &projectID.String
	}
	if assignedTo.Valid {
		t.AssignedTo = &assignedTo.String
	}
	if dueDate.Valid {
		d := dueDate.Time
		t.DueDate = &d
	}
	if updatedAt.Valid {
		u := updatedAt.Time
		t.UpdatedAt = &u
	}

	return &t, nil
}
