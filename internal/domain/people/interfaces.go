package people

import "context"

// Repository provides persistence for people, departments, and memberships.
type Repository interface {
	CreatePerson(ctx context.Context, tenantID string, p *SourcePerson) error
	GetPerson(ctx context.Context, tenantID, id string) (*SourcePerson, error)
	// ListLeads returns every person holding a lead membership, with the
	// embedded project list limited to their lead projects.
	ListLeads(ctx context.Context, tenantID string) ([]SourcePerson, error)
	// ListMembers returns every person with all their project associations,
	// roles defaulted to participant.
	ListMembers(ctx context.Context, tenantID string) ([]SourcePerson, error)
	AddMembership(ctx context.Context, tenantID, projectID, personID string, role Role) error
	CreateDepartment(ctx context.Context, tenantID string, d *Department) error
	ListDepartments(ctx context.Context, tenantID string) ([]Department, error)
}
