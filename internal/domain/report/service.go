package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ganot/labdesk/internal/domain/people"
	"github.com/ganot/labdesk/internal/domain/project"
	"github.com/ganot/labdesk/internal/domain/task"
)

// ProjectSource supplies project snapshots for reporting.
type ProjectSource interface {
	List(ctx context.Context, tenantID string) ([]project.Project, error)
}

// TaskSource supplies task snapshots for reporting.
type TaskSource interface {
	List(ctx context.Context, tenantID string) ([]task.Task, error)
}

// PeopleSource supplies the two person collections the roster merges.
type PeopleSource interface {
	ListLeads(ctx context.Context, tenantID string) ([]people.SourcePerson, error)
	ListMembers(ctx context.Context, tenantID string) ([]people.SourcePerson, error)
}

// Service computes the reporting views. Every view is a pure function of the
// snapshots its sources return; the service holds no derived state.
type Service struct {
	projects ProjectSource
	tasks    TaskSource
	people   PeopleSource
	logger   *slog.Logger

	// Now is the clock used for windowing and export filenames.
	// Overridable in tests.
	Now func() time.Time
}

// NewService creates a new report service.
func NewService(projects ProjectSource, tasks TaskSource, peopleSource PeopleSource, logger *slog.Logger) *Service {
	return &Service{
		projects: projects,
		tasks:    tasks,
		people:   peopleSource,
		logger:   logger,
		Now:      time.Now,
	}
}

// ActivityReport is the windowed, filtered, day-grouped activity view.
type ActivityReport struct {
	Window int        `json:"window"`
	Cutoff time.Time  `json:"cutoff"`
	Items  []Item     `json:"items"`
	Groups []DayGroup `json:"groups"`
}

// Activity synthesizes the activity timeline from the current project and
// task snapshots, applies the facet filters, and groups the result by day.
func (s *Service) Activity(ctx context.Context, tenantID string, opts ActivityOptions) (*ActivityReport, error) {
	window := opts.Window
	if window == 0 {
		window = DefaultWindow
	}
	if !ValidWindow(window) {
		return nil, ErrInvalidWindow
	}

	projects, err := s.projects.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	tasks, err := s.tasks.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	cutoff := Cutoff(s.Now(), window)
	items := Synthesize(projects, tasks, cutoff)
	items = Apply(items,
		Text(opts.Search, func(it Item) []string {
			return []string{it.Title, it.Description, it.ProjectTitle}
		}),
		If(opts.Kind != "", func(it Item) bool { return it.Kind == opts.Kind }),
		If(opts.ProjectID != "", func(it Item) bool {
			return it.ProjectID != nil && *it.ProjectID == opts.ProjectID
		}),
	)

	return &ActivityReport{
		Window: window,
		Cutoff: cutoff,
		Items:  items,
		Groups: GroupByDay(items),
	}, nil
}

// Roster merges the lead and participant sources and applies roster facets.
func (s *Service) Roster(ctx context.Context, tenantID string, opts RosterOptions) ([]people.Person, error) {
	leads, err := s.people.ListLeads(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	participants, err := s.people.ListMembers(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}

	roster := people.Merge(leads, participants)
	return Apply(roster,
		Text(opts.Search, func(p people.Person) []string {
			return []string{p.Name, p.Email}
		}),
		If(opts.DepartmentID != "", func(p people.Person) bool {
			return p.DepartmentID != nil && *p.DepartmentID == opts.DepartmentID
		}),
		If(opts.LeadsOnly, func(p people.Person) bool { return p.IsLead }),
	), nil
}

// Projects returns the filtered project report view.
func (s *Service) Projects(ctx context.Context, tenantID string, opts ProjectOptions) ([]project.Project, error) {
	projects, err := s.projects.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	return Apply(projects,
		Text(opts.Search, func(p project.Project) []string { return []string{p.Title} }),
		If(opts.Status != "", func(p project.Project) bool {
			return p.Status != nil && *p.Status == opts.Status
		}),
		If(opts.Classification != "", func(p project.Project) bool {
			return p.Classification != nil && *p.Classification == opts.Classification
		}),
		If(opts.OpenOnly, func(p project.Project) bool { return p.OpenToParticipants }),
	), nil
}

// Tasks returns the filtered task report view.
func (s *Service) Tasks(ctx context.Context, tenantID string, opts TaskOptions) ([]task.Task, error) {
	tasks, err := s.tasks.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	return Apply(tasks,
		Text(opts.Search, func(t task.Task) []string { return []string{t.Title} }),
		If(opts.Status != "", func(t task.Task) bool { return t.Status == opts.Status }),
		If(opts.Priority != "", func(t task.Task) bool { return t.Priority == opts.Priority }),
		If(opts.ProjectID != "", func(t task.Task) bool {
			return t.ProjectID != nil && *t.ProjectID == opts.ProjectID
		}),
	), nil
}
