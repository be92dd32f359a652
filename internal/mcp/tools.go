package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/ganot/labdesk/internal/domain/people"
	"github.com/ganot/labdesk/internal/domain/report"
	"github.com/ganot/labdesk/internal/export"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ReportService defines report operations needed by MCP.
type ReportService interface {
	Activity(ctx context.Context, tenantID string, opts report.ActivityOptions) (*report.ActivityReport, error)
	Roster(ctx context.Context, tenantID string, opts report.RosterOptions) ([]people.Person, error)
	ExportActivity(ctx context.Context, tenantID string, opts report.ActivityOptions) (*export.File, error)
	ExportRoster(ctx context.Context, tenantID string, opts report.RosterOptions) (*export.File, error)
	ExportProjects(ctx context.Context, tenantID string, opts report.ProjectOptions) (*export.File, error)
	ExportTasks(ctx context.Context, tenantID string, opts report.TaskOptions) (*export.File, error)
}

func registerTools(server *sdkmcp.Server, reports ReportService) {
	sdkmcp.AddTool(server, activityReportTool(), activityReportHandler(reports))
	sdkmcp.AddTool(server, rosterReportTool(), rosterReportHandler(reports))
	sdkmcp.AddTool(server, exportReportTool(), exportReportHandler(reports))
}

// ActivityReportInput is the MCP tool input for the activity report.
type ActivityReportInput struct {
	Window    int    `json:"window,omitempty" jsonschema:"report window in days (7, 14, 30, or 90; default 30)"`
	Search    string `json:"search,omitempty" jsonschema:"free-text filter over titles and descriptions"`
	Kind      string `json:"kind,omitempty" jsonschema:"activity kind filter (project_created, project_status_changed, task_created, task_completed)"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"limit to one project"`
}

// ActivityItemResult is one activity event in the tool output.
type ActivityItemResult struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ProjectID    string `json:"project_id,omitempty"`
	ProjectTitle string `json:"project_title,omitempty"`
	Timestamp    string `json:"timestamp" jsonschema:"RFC3339 event instant"`
	Icon         string `json:"icon"`
}

// ActivityGroupResult is one calendar-day bucket in the tool output.
type ActivityGroupResult struct {
	Label string               `json:"label"`
	Items []ActivityItemResult `json:"items"`
}

// ActivityReportResult is the MCP tool output for the activity report.
type ActivityReportResult struct {
	Window int                   `json:"window"`
	Cutoff string                `json:"cutoff" jsonschema:"RFC3339 inclusive lower bound of the window"`
	Groups []ActivityGroupResult `json:"groups"`
}

func activityReportTool() *sdkmcp.Tool {
	return &sdkmcp.Tool{
		Name:        "activity_report",
		Description: "Windowed activity timeline synthesized from project and task snapshots, grouped by calendar day",
	}
}

func activityReportHandler(reports ReportService) sdkmcp.ToolHandlerFor[ActivityReportInput, ActivityReportResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input ActivityReportInput) (*sdkmcp.CallToolResult, ActivityReportResult, error) {
		rep, err := reports.Activity(ctx, getTenantID(ctx), report.ActivityOptions{
			Window:    input.Window,
			Search:    input.Search,
			Kind:      report.Kind(input.Kind),
			ProjectID: input.ProjectID,
		})
		if err != nil {
			return nil, ActivityReportResult{}, fmt.Errorf("activity report failed: %w", err)
		}

		result := ActivityReportResult{
			Window: rep.Window,
			Cutoff: rep.Cutoff.Format(time.RFC3339),
			Groups: make([]ActivityGroupResult, 0, len(rep.Groups)),
		}
		for _, group := range rep.Groups {
			items := make([]ActivityItemResult, 0, len(group.Items))
			for _, item := range group.Items {
				items = append(items, toItemResult(item))
			}
			result.Groups = append(result.Groups, ActivityGroupResult{Label: group.Label, Items: items})
		}
		return nil, result, nil
	}
}

// RosterReportInput is the MCP tool input for the people roster.
type RosterReportInput struct {
	Search       string `json:"search,omitempty" jsonschema:"free-text filter over names and emails"`
	DepartmentID string `json:"department_id,omitempty" jsonschema:"limit to one department"`
	LeadsOnly    bool   `json:"leads_only,omitempty" jsonschema:"only people appearing in the leads source"`
}

// RosterProjectResult is one project association in the tool output.
type RosterProjectResult struct {
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Role      string `json:"role"`
	Status    string `json:"status,omitempty"`
}

// RosterPersonResult is one merged roster entry in the tool output.
type RosterPersonResult struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	DepartmentID string                `json:"department_id,omitempty"`
	IsLead       bool                  `json:"is_lead"`
	Projects     []RosterProjectResult `json:"projects"`
}

// RosterReportResult is the MCP tool output for the people roster.
type RosterReportResult struct {
	People []RosterPersonResult `json:"people"`
}

func rosterReportTool() *sdkmcp.Tool {
	return &sdkmcp.Tool{
		Name:        "roster_report",
		Description: "Merged, deduplicated people roster across the leads and participants sources",
	}
}

func rosterReportHandler(reports ReportService) sdkmcp.ToolHandlerFor[RosterReportInput, RosterReportResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input RosterReportInput) (*sdkmcp.CallToolResult, RosterReportResult, error) {
		roster, err := reports.Roster(ctx, getTenantID(ctx), report.RosterOptions{
			Search:       input.Search,
			DepartmentID: input.DepartmentID,
			LeadsOnly:    input.LeadsOnly,
		})
		if err != nil {
			return nil, RosterReportResult{}, fmt.Errorf("roster report failed: %w", err)
		}

		result := RosterReportResult{People: make([]RosterPersonResult, 0, len(roster))}
		for _, person := range roster {
			entry := RosterPersonResult{
				ID:       person.ID,
				Name:     person.Name,
				Email:    person.Email,
				IsLead:   person.IsLead,
				Projects: make([]RosterProjectResult, 0, len(person.Projects)),
			}
			if person.DepartmentID != nil {
				entry.DepartmentID = *person.DepartmentID
			}
			for _, ref := range person.Projects {
				entry.Projects = append(entry.Projects, RosterProjectResult{
					ProjectID: ref.ProjectID,
					Title:     ref.Title,
					Role:      string(ref.Role),
					Status:    ref.Status,
				})
			}
			result.People = append(result.People, entry)
		}
		return nil, result, nil
	}
}

// ExportReportInput is the MCP tool input for CSV export.
type ExportReportInput struct {
	Report    string `json:"report" jsonschema:"which report to export: activity, people, projects, or tasks"`
	Window    int    `json:"window,omitempty" jsonschema:"activity window in days (activity report only)"`
	Search    string `json:"search,omitempty" jsonschema:"free-text filter"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"limit to one project (activity and tasks)"`
}

// ExportReportResult is the MCP tool output for CSV export.
type ExportReportResult struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     string `json:"content" jsonschema:"the CSV text payload"`
}

func exportReportTool() *sdkmcp.Tool {
	return &sdkmcp.Tool{
		Name:        "export_report",
		Description: "Render a filtered report view as a CSV download payload",
	}
}

func exportReportHandler(reports ReportService) sdkmcp.ToolHandlerFor[ExportReportInput, ExportReportResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input ExportReportInput) (*sdkmcp.CallToolResult, ExportReportResult, error) {
		tenantID := getTenantID(ctx)

		var file *export.File
		var err error
		switch input.Report {
		case "activity":
			file, err = reports.ExportActivity(ctx, tenantID, report.ActivityOptions{
				Window:    input.Window,
				Search:    input.Search,
				ProjectID: input.ProjectID,
			})
		case "people":
			file, err = reports.ExportRoster(ctx, tenantID, report.RosterOptions{Search: input.Search})
		case "projects":
			file, err = reports.ExportProjects(ctx, tenantID, report.ProjectOptions{Search: input.Search})
		case "tasks":
			file, err = reports.ExportTasks(ctx, tenantID, report.TaskOptions{
				Search:    input.Search,
				ProjectID: input.ProjectID,
			})
		default:
			return nil, ExportReportResult{}, fmt.Errorf("unknown report %q (use activity, people, projects, or tasks)", input.Report)
		}
		if err != nil {
			return nil, ExportReportResult{}, fmt.Errorf("export failed: %w", err)
		}

		return nil, ExportReportResult{
			Filename:    file.Name,
			ContentType: file.ContentType,
			Content:     string(file.Data),
		}, nil
	}
}

func toItemResult(item report.Item) ActivityItemResult {
	result := ActivityItemResult{
		ID:           item.ID,
		Kind:         string(item.Kind),
		Title:        item.Title,
		Description:  item.Description,
		ProjectTitle: item.ProjectTitle,
		Timestamp:    item.Timestamp.Format(time.RFC3339),
		Icon:         item.Icon,
	}
	if item.ProjectID != nil {
		result.ProjectID = *item.ProjectID
	}
	return result
}
