package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ganot/labdesk/internal/domain/project"
	"github.com/ganot/labdesk/internal/domain/report"
	"github.com/ganot/labdesk/internal/domain/task"
	"github.com/ganot/labdesk/internal/export"
)

func (s *Server) handleActivityReport(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	opts, err := activityOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep, err := s.services.Reports.Activity(r.Context(), tenantID, opts)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleActivityExport(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	opts, err := activityOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, err := s.services.Reports.ExportActivity(r.Context(), tenantID, opts)
	s.writeExport(w, file, err)
}

func (s *Server) handleRosterReport(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	roster, err := s.services.Reports.Roster(r.Context(), tenantID, rosterOptions(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

func (s *Server) handleRosterExport(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	file, err := s.services.Reports.ExportRoster(r.Context(), tenantID, rosterOptions(r))
	s.writeExport(w, file, err)
}

func (s *Server) handleProjectReport(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	projects, err := s.services.Reports.Projects(r.Context(), tenantID, projectOptions(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleProjectExport(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	file, err := s.services.Reports.ExportProjects(r.Context(), tenantID, projectOptions(r))
	s.writeExport(w, file, err)
}

func (s *Server) handleTaskReport(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	tasks, err := s.services.Reports.Tasks(r.Context(), tenantID, taskOptions(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleTaskExport(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	file, err := s.services.Reports.ExportTasks(r.Context(), tenantID, taskOptions(r))
	s.writeExport(w, file, err)
}

// writeExport streams a CSV download. An empty result set is an explicit
// no-data response, not an empty file.
func (s *Server) writeExport(w http.ResponseWriter, file *export.File, err error) {
	if errors.Is(err, export.ErrNoRows) {
		writeError(w, http.StatusNotFound, "no data to export")
		return
	}
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}

func activityOptions(r *http.Request) (report.ActivityOptions, error) {
	opts := report.ActivityOptions{
		Search:    r.URL.Query().Get("search"),
		Kind:      report.Kind(r.URL.Query().Get("kind")),
		ProjectID: r.URL.Query().Get("project_id"),
	}
	if raw := r.URL.Query().Get("window"); raw != "" {
		window, err := strconv.Atoi(raw)
		if err != nil {
			return opts, fmt.Errorf("invalid window %q", raw)
		}
		opts.Window = window
	}
	return opts, nil
}

func rosterOptions(r *http.Request) report.RosterOptions {
	return report.RosterOptions{
		Search:       r.URL.Query().Get("search"),
		DepartmentID: r.URL.Query().Get("department_id"),
		LeadsOnly:    r.URL.Query().Get("leads_only") == "true",
	}
}

func projectOptions(r *http.Request) report.ProjectOptions {
	return report.ProjectOptions{
		Search:         r.URL.Query().Get("search"),
		Status:         project.Status(r.URL.Query().Get("status")),
		Classification: project.Classification(r.URL.Query().Get("classification")),
		OpenOnly:       r.URL.Query().Get("open") == "true",
	}
}

func taskOptions(r *http.Request) report.TaskOptions {
	return report.TaskOptions{
		Search:    r.URL.Query().Get("search"),
		Status:    task.Status(r.URL.Query().Get("status")),
		Priority:  task.Priority(r.URL.Query().Get("priority")),
		ProjectID: r.URL.Query().Get("project_id"),
	}
}
