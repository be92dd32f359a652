package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ganot/labdesk/internal/domain/people"
	"github.com/ganot/labdesk/internal/domain/project"
	"github.com/ganot/labdesk/internal/domain/report"
	"github.com/ganot/labdesk/internal/domain/task"
	"github.com/go-chi/chi/v5"
)

// Services groups the domain services the HTTP API dispatches to.
type Services struct {
	Projects *project.Service
	Tasks    *task.Service
	People   *people.Service
	Reports  *report.Service
}

// Server wires HTTP handlers.
type Server struct {
	services Services
	logger   *slog.Logger
}

// NewServer creates the HTTP router with middleware.
func NewServer(services Services, authMiddleware func(http.Handler) http.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	srv := &Server{services: services, logger: logger}

	r.Get("/health", srv.handleHealth)

	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}

		r.Route("/api", func(r chi.Router) {
			r.Post("/projects", srv.handleCreateProject)
			r.Get("/projects", srv.handleListProjects)
			r.Get("/projects/{id}", srv.handleGetProject)
			r.Put("/projects/{id}/status", srv.handleUpdateProjectStatus)

			r.Post("/tasks", srv.handleCreateTask)
			r.Get("/tasks", srv.handleListTasks)
			r.Get("/tasks/{id}", srv.handleGetTask)
			r.Put("/tasks/{id}/status", srv.handleUpdateTaskStatus)

			r.Post("/people", srv.handleCreatePerson)
			r.Get("/people", srv.handleListPeople)
			r.Post("/projects/{id}/members", srv.handleAddMembership)

			r.Post("/departments", srv.handleCreateDepartment)
			r.Get("/departments", srv.handleListDepartments)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/activity", srv.handleActivityReport)
				r.Get("/activity/export", srv.handleActivityExport)
				r.Get("/people", srv.handleRosterReport)
				r.Get("/people/export", srv.handleRosterExport)
				r.Get("/projects", srv.handleProjectReport)
				r.Get("/projects/export", srv.handleProjectExport)
				r.Get("/tasks", srv.handleTaskReport)
				r.Get("/tasks/export", srv.handleTaskExport)
			})
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type createProjectRequest struct {
	Title              string     `json:"title"`
	Status             *string    `json:"status,omitempty"`
	Classification     *string    `json:"classification,omitempty"`
	OpenToParticipants bool       `json:"open_to_participants"`
	StartDate          *time.Time `json:"start_date,omitempty"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	proj, err := s.services.Projects.Create(r.Context(), tenantID, project.CreateRequest{
		Title:              req.Title,
		Status:             statusPtr(req.Status),
		Classification:     classificationPtr(req.Classification),
		OpenToParticipants: req.OpenToParticipants,
		StartDate:          req.StartDate,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, proj)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	projects, err := s.services.Projects.List(r.Context(), tenantID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	proj, err := s.services.Projects.Get(r.Context(), tenantID, chi.URLParam(r, "id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleUpdateProjectStatus(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	proj, err := s.services.Projects.UpdateStatus(r.Context(), tenantID, chi.URLParam(r, "id"), project.Status(req.Status))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

type createTaskRequest struct {
	Title      string     `json:"title"`
	ProjectID  *string    `json:"project_id,omitempty"`
	Priority   string     `json:"priority,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	AssignedTo *string    `json:"assigned_to,omitempty"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := s.services.Tasks.Create(r.Context(), tenantID, task.CreateRequest{
		Title:      req.Title,
		ProjectID:  req.ProjectID,
		Priority:   task.Priority(req.Priority),
		DueDate:    req.DueDate,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	tasks, err := s.services.Tasks.List(r.Context(), tenantID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	t, err := s.services.Tasks.Get(r.Context(), tenantID, chi.URLParam(r, "id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := s.services.Tasks.UpdateStatus(r.Context(), tenantID, chi.URLParam(r, "id"), task.Status(req.Status))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

type createPersonRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	DepartmentID *string `json:"department_id,omitempty"`
}

func (s *Server) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	var req createPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := s.services.People.CreatePerson(r.Context(), tenantID, people.CreatePersonRequest{
		Name:         req.Name,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListPeople(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	roster, err := s.services.People.Roster(r.Context(), tenantID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

func (s *Server) handleAddMembership(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	var req struct {
		PersonID string `json:"person_id"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.services.People.AddMembership(r.Context(), tenantID, chi.URLParam(r, "id"), req.PersonID, people.Role(req.Role))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := s.services.People.CreateDepartment(r.Context(), tenantID, people.CreateDepartmentRequest{Name: req.Name})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenant(w, r)
	if !ok {
		return
	}

	departments, err := s.services.People.ListDepartments(r.Context(), tenantID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, departments)
}

func tenant(w http.ResponseWriter, r *http.Request) (string, bool) {
	tenantID, ok := TenantFromContext(r.Context())
	if !ok || tenantID == "" {
		http.Error(w, "missing tenant", http.StatusUnauthorized)
		return "", false
	}
	return tenantID, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, people.ErrPersonNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, task.ErrInvalidInput),
		errors.Is(err, people.ErrInvalidInput),
		errors.Is(err, report.ErrInvalidWindow):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, people.ErrDuplicateMembership):
		writeError(w, http.StatusConflict, err.Error())
	default:
		if s.logger != nil {
			s.logger.Error("request failed", "error", err)
		}
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func statusPtr(s *string) *project.Status {
	if s == nil {
		return nil
	}
	v := project.Status(*s)
	return &v
}

func classificationPtr(s *string) *project.Classification {
	if s == nil {
		return nil
	}
	v := project.Classification(*s)
	return &v
}
