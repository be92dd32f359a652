package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"departments",
		"people",
		"projects",
		"project_members",
		"tasks",
		"api_keys",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestProjectsTableConstraints verifies the projects status and
// classification checks
func TestProjectsTableConstraints(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO projects (id, tenant_id, title, status, classification, created_at) VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		"p1", "tenant1", "Neuro Study", "active", "clinical")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO projects (id, tenant_id, title, status, created_at) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		"p2", "tenant1", "Bad Status", "paused")
	require.Error(t, err, "should fail with invalid status")

	_, err = db.ExecContext(ctx,
		`INSERT INTO projects (id, tenant_id, title, classification, created_at) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		"p3", "tenant1", "Bad Class", "weird")
	require.Error(t, err, "should fail with invalid classification")
}

// TestMembershipConstraints verifies project_members keys and role check
func TestMembershipConstraints(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO projects (id, tenant_id, title, created_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		"p1", "tenant1", "Neuro Study")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		`INSERT INTO people (id, tenant_id, name, email) VALUES (?, ?, ?, ?)`,
		"u1", "tenant1", "Ada", "ada@lab.test")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO project_members (project_id, person_id, role) VALUES (?, ?, ?)`,
		"p1", "u1", "lead")
	require.NoError(t, err)

	// Duplicate pair violates the primary key
	_, err = db.ExecContext(ctx,
		`INSERT INTO project_members (project_id, person_id, role) VALUES (?, ?, ?)`,
		"p1", "u1", "participant")
	require.Error(t, err, "duplicate membership should fail")

	// Unknown role violates the check constraint
	_, err = db.ExecContext(ctx,
		`INSERT INTO project_members (project_id, person_id, role) VALUES (?, ?, ?)`,
		"p1", "u1", "owner")
	require.Error(t, err, "invalid role should fail")

	// Unknown person violates the foreign key
	_, err = db.ExecContext(ctx,
		`INSERT INTO project_members (project_id, person_id, role) VALUES (?, ?, ?)`,
		"p1", "ghost", "lead")
	require.Error(t, err, "unknown person should fail")
}

// TestTasksTableConstraints verifies the tasks status and priority checks
func TestTasksTableConstraints(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO tasks (id, tenant_id, title, status, priority, created_at) VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		"t1", "tenant1", "Recruit cohort", "todo", "high")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO tasks (id, tenant_id, title, status, priority, created_at) VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		"t2", "tenant1", "Bad", "done", "high")
	require.Error(t, err, "should fail with invalid status")

	_, err = db.ExecContext(ctx,
		`INSERT INTO tasks (id, tenant_id, title, status, priority, created_at) VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		"t3", "tenant1", "Bad", "todo", "urgent")
	require.Error(t, err, "should fail with invalid priority")
}
