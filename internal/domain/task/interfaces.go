package task

import (
	"context"
	"time"
)

// Repository provides persistence for tasks.
type Repository interface {
	Create(ctx context.Context, tenantID string, t *Task) error
	Get(ctx context.Context, tenantID, id string) (*Task, error)
	List(ctx context.Context, tenantID string) ([]Task, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status Status, completedAt *time.Time) error
}
