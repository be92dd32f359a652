package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	repository "github.com/ganot/labdesk/internal/repository/repoerrors"
	"github.com/google/uuid"
)

// Service handles task operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new task service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines task creation inputs.
type CreateRequest struct {
	ID         string
	Title      string
	ProjectID  *string
	Priority   Priority
	DueDate    *time.Time
	AssignedTo *string
}

// Create creates a new task in the todo state.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}

	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !ValidPriority(priority) {
		return nil, ErrInvalidInput
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	t := &Task{
		ID:         id,
		TenantID:   tenantID,
		Title:      req.Title,
		ProjectID:  req.ProjectID,
		Status:     StatusTodo,
		Priority:   priority,
		DueDate:    req.DueDate,
		CreatedAt:  time.Now(),
		AssignedTo: req.AssignedTo,
	}

	if err := s.repo.Create(ctx, tenantID, t); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrInvalidInput
		}
		return nil, fmt.Errorf("creating task: %w", err)
	}

	return t, nil
}

// Get fetches a task by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Task, error) {
	t, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return t, nil
}

// List returns all tasks for a tenant.
func (s *Service) List(ctx context.Context, tenantID string) ([]Task, error) {
	return s.repo.List(ctx, tenantID)
}

// UpdateStatus transitions a task. Completion stamps UpdatedAt so the
// activity report can tell a real completion from an untouched record.
func (s *Service) UpdateStatus(ctx context.Context, tenantID, id string, status Status) (*Task, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidInput
	}

	var completedAt *time.Time
	if status == StatusCompleted {
		now := time.Now()
		completedAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, tenantID, id, status, completedAt); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("updating task status: %w", err)
	}

	return s.Get(ctx, tenantID, id)
}
