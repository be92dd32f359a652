package project

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

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	ID                 string
	Title              string
	Status             *Status
	Classification     *Classification
	OpenToParticipants bool
	StartDate          *time.Time
}

// Create creates a new project.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}
	if req.Status != nil && !ValidStatus(*req.Status) {
		return nil, ErrInvalidInput
	}
	if req.Classification != nil && !ValidClassification(*req.Classification) {
		return nil, ErrInvalidInput
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	proj := &Project{
		ID:                 id,
		TenantID:           tenantID,
		Title:              req.Title,
		Status:             req.Status,
		Classification:     req.Classification,
		OpenToParticipants: req.OpenToParticipants,
		StartDate:          req.StartDate,
		CreatedAt:          time.Now(),
	}

	if err := s.repo.Create(ctx, tenantID, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return proj, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns all projects for a tenant.
func (s *Service) List(ctx context.Context, tenantID string) ([]Project, error) {
	return s.repo.List(ctx, tenantID)
}

// UpdateStatus transitions a project to a new status and records the change
// instant so the activity report can surface it.
func (s *Service) UpdateStatus(ctx context.Context, tenantID, id string, status Status) (*Project, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidInput
	}

	changedAt := time.Now()
	if err := s.repo.UpdateStatus(ctx, tenantID, id, status, changedAt); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project status: %w", err)
	}

	return s.Get(ctx, tenantID, id)
}
