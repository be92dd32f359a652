package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/ganot/labdesk/internal/domain/project"
	"github.com/ganot/labdesk/internal/domain/task"
)

// Kind identifies the event type of a synthesized activity item.
type Kind string

const (
	KindProjectCreated       Kind = "project_created"
	KindProjectStatusChanged Kind = "project_status_changed"
	KindTaskCreated          Kind = "task_created"
	KindTaskCompleted        Kind = "task_completed"
)

// ValidKind reports whether k is a known activity kind.
func ValidKind(k Kind) bool {
	switch k {
	case KindProjectCreated, KindProjectStatusChanged, KindTaskCreated, KindTaskCompleted:
		return true
	}
	return false
}

// Icon returns the presentation tag for an activity kind.
func (k Kind) Icon() string {
	switch k {
	case KindProjectCreated:
		return "folder-plus"
	case KindProjectStatusChanged:
		return "refresh-cw"
	case KindTaskCreated:
		return "plus-circle"
	case KindTaskCompleted:
		return "check-circle"
	default:
		return "activity"
	}
}

// Item is one synthesized activity event. Items are built fresh on every
// synthesis pass and never mutated.
type Item struct {
	ID           string    `json:"id"`
	Kind         Kind      `json:"kind"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ProjectID    *string   `json:"project_id,omitempty"`
	ProjectTitle string    `json:"project_title,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Icon         string    `json:"icon"`
}

// Synthesize derives the flat activity sequence from project and task
// snapshots. Every emitted item has Timestamp >= cutoff. Records with a
// missing timestamp simply fail the cutoff test; they are excluded, never an
// error. A task whose project_id doesn't resolve keeps an empty ProjectTitle.
func Synthesize(projects []project.Project, tasks []task.Task, cutoff time.Time) []Item {
	titles := make(map[string]string, len(projects))
	for _, p := range projects {
		titles[p.ID] = p.Title
	}

	var items []Item

	for _, p := range projects {
		projectID := p.ID
		if inWindow(p.CreatedAt, cutoff) {
			items = append(items, Item{
				ID:           fmt.Sprintf("%s-%s", KindProjectCreated, p.ID),
				Kind:         KindProjectCreated,
				Title:        p.Title,
				Description:  "New project created",
				ProjectID:    &projectID,
				ProjectTitle: p.Title,
				Timestamp:    p.CreatedAt,
				Icon:         KindProjectCreated.Icon(),
			})
		}
		// A status change stamp that merely mirrors creation time carries no
		// information; only strictly-later changes are events.
		if p.LastStatusChange != nil && inWindow(*p.LastStatusChange, cutoff) && p.LastStatusChange.After(p.CreatedAt) {
			description := "Project status changed"
			if p.Status != nil {
				description = fmt.Sprintf("Status changed to %s", *p.Status)
			}
			items = append(items, Item{
				ID:           fmt.Sprintf("%s-%s", KindProjectStatusChanged, p.ID),
				Kind:         KindProjectStatusChanged,
				Title:        p.Title,
				Description:  description,
				ProjectID:    &projectID,
				ProjectTitle: p.Title,
				Timestamp:    *p.LastStatusChange,
				Icon:         KindProjectStatusChanged.Icon(),
			})
		}
	}

	for _, t := range tasks {
		if inWindow(t.CreatedAt, cutoff) {
			items = append(items, Item{
				ID:           fmt.Sprintf("%s-%s", KindTaskCreated, t.ID),
				Kind:         KindTaskCreated,
				Title:        t.Title,
				Description:  "New task added",
				ProjectID:    t.ProjectID,
				ProjectTitle: lookupTitle(titles, t.ProjectID),
				Timestamp:    t.CreatedAt,
				Icon:         KindTaskCreated.Icon(),
			})
		}
		if t.Status == task.StatusCompleted && t.UpdatedAt != nil && inWindow(*t.UpdatedAt, cutoff) {
			items = append(items, Item{
				ID:           fmt.Sprintf("%s-%s", KindTaskCompleted, t.ID),
				Kind:         KindTaskCompleted,
				Title:        t.Title,
				Description:  "Task completed",
				ProjectID:    t.ProjectID,
				ProjectTitle: lookupTitle(titles, t.ProjectID),
				Timestamp:    *t.UpdatedAt,
				Icon:         KindTaskCompleted.Icon(),
			})
		}
	}

	sortItems(items)
	return items
}

func inWindow(ts, cutoff time.Time) bool {
	return !ts.IsZero() && !ts.Before(cutoff)
}

func lookupTitle(titles map[string]string, projectID *string) string {
	if projectID == nil {
		return ""
	}
	return titles[*projectID]
}

// sortItems orders newest first. Equal timestamps fall back to kind then id
// so repeated synthesis of the same snapshot yields the same sequence.
func sortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Timestamp.Equal(items[j].Timestamp) {
			return items[i].Timestamp.After(items[j].Timestamp)
		}
		if items[i].Kind != items[j].Kind {
			return items[i].Kind < items[j].Kind
		}
		return items[i].ID < items[j].ID
	})
}
