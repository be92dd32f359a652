package report_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/ganot/labdesk/internal/domain/people"
	"github.com/ganot/labdesk/internal/domain/project"
	"github.com/ganot/labdesk/internal/domain/report"
	"github.com/ganot/labdesk/internal/domain/task"
	"github.com/ganot/labdesk/internal/export"
	"github.com/ganot/labdesk/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportActivity(t *testing.T) {
	ctx := context.Background()

	svc := newTestService(t, []project.Project{
		{ID: "p1", Title: "Neuro Study", CreatedAt: testNow.AddDate(0, 0, -2)},
	}, nil)

	file, err := svc.ExportActivity(ctx, "tenant1", report.ActivityOptions{})
	require.NoError(t, err)
	require.Equal(t, "activity-report-2025-06-15.csv", file.Name)
	require.Equal(t, export.ContentType, file.ContentType)

	records := parseCSV(t, file.Data)
	require.Len(t, records, 2)
	require.Equal(t, []string{"Date", "Type", "Title", "Description", "Project"}, records[0])
	require.Equal(t, "project_created", records[1][1])
	require.Equal(t, "Neuro Study", records[1][2])
}

func TestExportActivityNoRows(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil, nil)

	_, err := svc.ExportActivity(ctx, "tenant1", report.ActivityOptions{})
	require.ErrorIs(t, err, export.ErrNoRows)
}

func TestExportRoster(t *testing.T) {
	ctx := context.Background()

	leads := []people.SourcePerson{{
		ID: "u1", Name: "Ada", Email: "ada@lab.test",
		Projects: []people.ProjectRef{{ProjectID: "p1", Title: "Neuro Study", Role: people.RoleLead}},
	}}
	members := []people.SourcePerson{
		{ID: "u2", Name: "Grace", Email: "grace@lab.test"},
	}

	peopleRepo := &mocks.PeopleRepository{}
	peopleRepo.On("ListLeads", ctx, "tenant1").Return(leads, nil)
	peopleRepo.On("ListMembers", ctx, "tenant1").Return(members, nil)

	svc := report.NewService(&mocks.ProjectRepository{}, &mocks.TaskRepository{}, peopleRepo, nil)
	svc.Now = func() time.Time { return testNow }

	file, err := svc.ExportRoster(ctx, "tenant1", report.RosterOptions{})
	require.NoError(t, err)
	require.Equal(t, "people-report-2025-06-15.csv", file.Name)

	records := parseCSV(t, file.Data)
	require.Len(t, records, 3)
	require.Equal(t, []string{"Name", "Email", "Role", "Projects"}, records[0])
	require.Equal(t, []string{"Ada", "ada@lab.test", "Lead", "Neuro Study (lead)"}, records[1])
	require.Equal(t, []string{"Grace", "grace@lab.test", "Participant", ""}, records[2])
}

func TestExportProjects(t *testing.T) {
	ctx := context.Background()

	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, []project.Project{{
		ID:             "p1",
		Title:          "Neuro Study",
		Status:         ptr(project.StatusActive),
		Classification: ptr(project.ClassificationClinical),
		StartDate:      &start,
		CreatedAt:      testNow.AddDate(0, 0, -2),
	}}, nil)

	file, err := svc.ExportProjects(ctx, "tenant1", report.ProjectOptions{})
	require.NoError(t, err)
	require.Equal(t, "projects-report-2025-06-15.csv", file.Name)

	records := parseCSV(t, file.Data)
	require.Len(t, records, 2)
	require.Equal(t, "active", records[1][1])
	require.Equal(t, "clinical", records[1][2])
	require.Equal(t, "2025-05-01T00:00:00Z", records[1][4])
}

func TestExportTasksResolvesProjectTitles(t *testing.T) {
	ctx := context.Background()

	svc := newTestService(t, []project.Project{
		{ID: "p1", Title: "Neuro Study", CreatedAt: testNow.AddDate(0, 0, -300)},
	}, []task.Task{
		{ID: "t1", Title: "Recruit cohort", ProjectID: ptr("p1"), Status: task.StatusTodo, Priority: task.PriorityHigh, CreatedAt: testNow},
		{ID: "t2", Title: "Loose end", Status: task.StatusTodo, Priority: task.PriorityLow, CreatedAt: testNow},
	})

	file, err := svc.ExportTasks(ctx, "tenant1", report.TaskOptions{})
	require.NoError(t, err)
	require.Equal(t, "tasks-report-2025-06-15.csv", file.Name)

	records := parseCSV(t, file.Data)
	require.Len(t, records, 3)

	byTitle := make(map[string][]string)
	for _, rec := range records[1:] {
		byTitle[rec[0]] = rec
	}
	require.Equal(t, "Neuro Study", byTitle["Recruit cohort"][1])
	require.Equal(t, "", byTitle["Loose end"][1])
}
