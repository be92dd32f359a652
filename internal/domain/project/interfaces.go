package project

import (
	"context"
	"time"
)

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, tenantID string, proj *Project) error
	Get(ctx context.Context, tenantID, id string) (*Project, error)
	List(ctx context.Context, tenantID string) ([]Project, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status Status, changedAt time.Time) error
}
