package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/ganot/labdesk/internal/domain/people"
	"github.com/ganot/labdesk/internal/export"
)

// ExportActivity renders the filtered activity timeline as a CSV download.
func (s *Service) ExportActivity(ctx context.Context, tenantID string, opts ActivityOptions) (*export.File, error) {
	rep, err := s.Activity(ctx, tenantID, opts)
	if err != nil {
		return nil, err
	}

	columns := []export.Column{
		{Key: "date", Header: "Date"},
		{Key: "type", Header: "Type"},
		{Key: "title", Header: "Title"},
		{Key: "description", Header: "Description"},
		{Key: "project", Header: "Project"},
	}
	rows := make([]export.Row, 0, len(rep.Items))
	for _, item := range rep.Items {
		rows = append(rows, export.Row{
			"date":        item.Timestamp,
			"type":        string(item.Kind),
			"title":       item.Title,
			"description": item.Description,
			"project":     item.ProjectTitle,
		})
	}

	return export.NewFile("activity-report", s.Now(), columns, rows)
}

// ExportRoster renders the filtered people roster as a CSV download.
func (s *Service) ExportRoster(ctx context.Context, tenantID string, opts RosterOptions) (*export.File, error) {
	roster, err := s.Roster(ctx, tenantID, opts)
	if err != nil {
		return nil, err
	}

	columns := []export.Column{
		{Key: "name", Header: "Name"},
		{Key: "email", Header: "Email"},
		{Key: "role", Header: "Role"},
		{Key: "projects", Header: "Projects"},
	}
	rows := make([]export.Row, 0, len(roster))
	for _, person := range roster {
		role := "Participant"
		if person.IsLead {
			role = "Lead"
		}
		rows = append(rows, export.Row{
			"name":     person.Name,
			"email":    person.Email,
			"role":     role,
			"projects": formatProjectRefs(person.Projects),
		})
	}

	return export.NewFile("people-report", s.Now(), columns, rows)
}

// ExportProjects renders the filtered project report as a CSV download.
func (s *Service) ExportProjects(ctx context.Context, tenantID string, opts ProjectOptions) (*export.File, error) {
	projects, err := s.Projects(ctx, tenantID, opts)
	if err != nil {
		return nil, err
	}

	columns := []export.Column{
		{Key: "title", Header: "Title"},
		{Key: "status", Header: "Status"},
		{Key: "classification", Header: "Classification"},
		{Key: "open", Header: "Open to Participants"},
		{Key: "start_date", Header: "Start Date"},
		{Key: "created_at", Header: "Created"},
	}
	rows := make([]export.Row, 0, len(projects))
	for _, p := range projects {
		row := export.Row{
			"title":      p.Title,
			"open":       p.OpenToParticipants,
			"start_date": p.StartDate,
			"created_at": p.CreatedAt,
		}
		if p.Status != nil {
			row["status"] = string(*p.Status)
		}
		if p.Classification != nil {
			row["classification"] = string(*p.Classification)
		}
		rows = append(rows, row)
	}

	return export.NewFile("projects-report", s.Now(), columns, rows)
}

// ExportTasks renders the filtered task report as a CSV download.
func (s *Service) ExportTasks(ctx context.Context, tenantID string, opts TaskOptions) (*export.File, error) {
	tasks, err := s.Tasks(ctx, tenantID, opts)
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	titles := make(map[string]string, len(projects))
	for _, p := range projects {
		titles[p.ID] = p.Title
	}

	columns := []export.Column{
		{Key: "title", Header: "Title"},
		{Key: "project", Header: "Project"},
		{Key: "status", Header: "Status"},
		{Key: "priority", Header: "Priority"},
		{Key: "due_date", Header: "Due Date"},
		{Key: "created_at", Header: "Created"},
	}
	rows := make([]export.Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, export.Row{
			"title":      t.Title,
			"project":    lookupTitle(titles, t.ProjectID),
			"status":     string(t.Status),
			"priority":   string(t.Priority),
			"due_date":   t.DueDate,
			"created_at": t.CreatedAt,
		})
	}

	return export.NewFile("tasks-report", s.Now(), columns, rows)
}

func formatProjectRefs(refs []people.ProjectRef) string {
	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		parts = append(parts, fmt.Sprintf("%s (%s)", ref.Title, ref.Role))
	}
	return strings.Join(parts, "; ")
}
