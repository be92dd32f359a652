package report

import (
	"github.com/ganot/labdesk/internal/domain/project"
	"github.com/ganot/labdesk/internal/domain/task"
)

// ActivityOptions is the facet state for the activity report. Zero values
// leave the corresponding facet unset.
type ActivityOptions struct {
	Window    int
	Search    string
	Kind      Kind
	ProjectID string
}

// RosterOptions is the facet state for the people roster report.
type RosterOptions struct {
	Search       string
	DepartmentID string
	LeadsOnly    bool
}

// ProjectOptions is the facet state for the project report.
type ProjectOptions struct {
	Search         string
	Status         project.Status
	Classification project.Classification
	OpenOnly       bool
}

// TaskOptions is the facet state for the task report.
type TaskOptions struct {
	Search    string
	Status    task.Status
	Priority  task.Priority
	ProjectID string
}
