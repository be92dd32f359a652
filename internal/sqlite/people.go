package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ganot/labdesk/internal/domain/people"
	"github.com/ganot/labdesk/internal/repository"
)

// PeopleRepository implements repository.PeopleRepository for SQLite
type PeopleRepository struct {
	db *DB
}

// NewPeopleRepository creates a new PeopleRepository
func NewPeopleRepository(db *DB) *PeopleRepository {
	return &PeopleRepository{db: db}
}

// CreatePerson creates a new person
func (r *PeopleRepository) CreatePerson(ctx context.Context, tenantID string, p *people.SourcePerson) error {
	query := `
		INSERT INTO people (id, tenant_id, name, email, department_id)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, p.ID, tenantID, p.Name, p.Email, p.DepartmentID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create person: %w", err)
	}

	return nil
}

// GetPerson retrieves a person by ID, without project associations
func (r *PeopleRepository) GetPerson(ctx context.Context, tenantID, id string) (*people.SourcePerson, error) {
	query := `
		SELECT id, name, email, department_id
		FROM people
		WHERE id = ? AND tenant_id = ?
	`

	var p people.SourcePerson
	var departmentID sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, tenantID).Scan(&p.ID, &p.Name, &p.Email, &departmentID)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	if departmentID.Valid {
		p.DepartmentID = &departmentID.String
	}

	return &p, nil
}

// ListLeads returns every person holding a lead membership, with their
// embedded project lists limited to lead projects and role-tagged lead
func (r *PeopleRepository) ListLeads(ctx context.Context, tenantID string) ([]people.SourcePerson, error) {
	query := `
		SELECT pe.id, pe.name, pe.email, pe.department_id, pr.id, pr.title, pm.role, pr.status
		FROM people pe
		JOIN project_members pm ON pm.person_id = pe.id AND pm.role = 'lead'
		JOIN projects pr ON pr.id = pm.project_id
		WHERE pe.tenant_id = ?
		ORDER BY pe.id, pr.created_at
	`

	return r.queryPeopleWithProjects(ctx, query, tenantID)
}

// ListMembers returns every person with all their project associations,
// roles defaulted to participant for the merge
func (r *PeopleRepository) ListMembers(ctx context.Context, tenantID string) ([]people.SourcePerson, error) {
	query := `
		SELECT pe.id, pe.name, pe.email, pe.department_id, pr.id, pr.title, 'participant', pr.status
		FROM people pe
		LEFT JOIN project_members pm ON pm.person_id = pe.id
		LEFT JOIN projects pr ON pr.id = pm.project_id
		WHERE pe.tenant_id = ?
		ORDER BY pe.id, pr.created_at
	`

	return r.queryPeopleWithProjects(ctx, query, tenantID)
}

func (r *PeopleRepository) queryPeopleWithProjects(ctx context.Context, query, tenantID string) ([]people.SourcePerson, error) {
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var result []people.SourcePerson
	index := make(map[string]int)

	for rows.Next() {
		var id, name, email string
		var departmentID, projectID, projectTitle, role, projectStatus sql.NullString

		if err := rows.Scan(&id, &name, &email, &departmentID, &projectID, &projectTitle, &role, &projectStatus); err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}

		i, ok := index[id]
		if !ok {
			p := people.SourcePerson{ID: id, Name: name, Email: email}
			if departmentID.Valid {
				p.DepartmentID = &departmentID.String
			}
			i = len(result)
			index[id] = i
			result = append(result, p)
		}

		if projectID.Valid {
			result[i].Projects = append(result[i].Projects, people.ProjectRef{
				ProjectID: projectID.String,
				Title:     projectTitle.String,
				Role:      people.Role(role.String),
				Status:    projectStatus.String,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating people rows: %w", err)
	}

	return result, nil
}

// AddMembership associates a person with a project under a role
func (r *PeopleRepository) AddMembership(ctx context.Context, tenantID, projectID, personID string, role people.Role) error {
	// Scope the insert to the tenant's own rows; the subqueries come back
	// empty for foreign ids and trip the NOT NULL constraints.
	query := `
		INSERT INTO project_members (project_id, person_id, role)
		SELECT p.id, pe.id, ?
		FROM projects p, people pe
		WHERE p.id = ? AND p.tenant_id = ? AND pe.id = ? AND pe.tenant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, string(role), projectID, tenantID, personID, tenantID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to add membership: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrForeignKeyViolation
	}

	return nil
}
