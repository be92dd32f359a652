package people

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	repository "github.com/ganot/labdesk/internal/repository/repoerrors"
	"github.com/google/uuid"
)

// Service handles people, department, and membership operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new people service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreatePersonRequest defines person creation inputs.
type CreatePersonRequest struct {
	ID           string
	Name         string
	Email        string
	DepartmentID *string
}

// CreatePerson creates a new person.
func (s *Service) CreatePerson(ctx context.Context, tenantID string, req CreatePersonRequest) (*SourcePerson, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, ErrInvalidInput
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	p := &SourcePerson{
		ID:           id,
		Name:         req.Name,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
	}

	if err := s.repo.CreatePerson(ctx, tenantID, p); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrInvalidInput
		}
		return nil, fmt.Errorf("creating person: %w", err)
	}

	return p, nil
}

// GetPerson fetches a person by ID.
func (s *Service) GetPerson(ctx context.Context, tenantID, id string) (*SourcePerson, error) {
	p, err := s.repo.GetPerson(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("getting person: %w", err)
	}
	return p, nil
}

// AddMembership associates a person with a project under a role.
func (s *Service) AddMembership(ctx context.Context, tenantID, projectID, personID string, role Role) error {
	if projectID == "" || personID == "" || !ValidRole(role) {
		return ErrInvalidInput
	}

	err := s.repo.AddMembership(ctx, tenantID, projectID, personID, role)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrConflict):
		return ErrDuplicateMembership
	case errors.Is(err, repository.ErrForeignKeyViolation):
		return ErrInvalidInput
	default:
		return fmt.Errorf("adding membership: %w", err)
	}
}

// Roster fetches both person sources and merges them into the deduplicated
// roster. The merge itself is pure; the service only supplies snapshots.
func (s *Service) Roster(ctx context.Context, tenantID string) ([]Person, error) {
	leads, err := s.repo.ListLeads(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	participants, err := s.repo.ListMembers(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	return Merge(leads, participants), nil
}

// CreateDepartmentRequest defines department creation inputs.
type CreateDepartmentRequest struct {
	ID   string
	Name string
}

// CreateDepartment creates a new department.
func (s *Service) CreateDepartment(ctx context.Context, tenantID string, req CreateDepartmentRequest) (*Department, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	d := &Department{ID: id, TenantID: tenantID, Name: req.Name}
	if err := s.repo.CreateDepartment(ctx, tenantID, d); err != nil {
		return nil, fmt.Errorf("creating department: %w", err)
	}
	return d, nil
}

// ListDepartments returns all departments for a tenant.
func (s *Service) ListDepartments(ctx context.Context, tenantID string) ([]Department, error) {
	return s.repo.ListDepartments(ctx, tenantID)
}
