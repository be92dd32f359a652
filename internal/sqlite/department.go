package sqlite

import (
	"context"
	"fmt"

	"github.com/ganot/labdesk/internal/domain/people"
)

// CreateDepartment creates a new department
func (r *PeopleRepository) CreateDepartment(ctx context.Context, tenantID string, d *people.Department) error {
	query := `INSERT INTO departments (id, tenant_id, name) VALUES (?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, d.ID, tenantID, d.Name); err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}

	return nil
}

// ListDepartments returns all departments for a tenant, sorted by name
func (r *PeopleRepository) ListDepartments(ctx context.Context, tenantID string) ([]people.Department, error) {
	query := `
		SELECT id, tenant_id, name
		FROM departments
		WHERE tenant_id = ?
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []people.Department
	for rows.Next() {
		var d people.Department
		if err := rows.Scan(&d.ID, &d.TenantID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}
