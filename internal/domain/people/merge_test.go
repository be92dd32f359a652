package people_test

import (
	"testing"

	"github.com/ganot/labdesk/internal/domain/people"
	"github.com/stretchr/testify/require"
)

func TestMergeDeduplicatesPeople(t *testing.T) {
	leads := []people.SourcePerson{{
		ID: "u1", Name: "Ada", Email: "ada@lab.test",
		Projects: []people.ProjectRef{{ProjectID: "p1", Title: "Neuro Study", Role: people.RoleLead}},
	}}
	participants := []people.SourcePerson{
		{
			ID: "u1", Name: "Ada", Email: "ada@lab.test",
			Projects: []people.ProjectRef{
				{ProjectID: "p1", Title: "Neuro Study", Role: people.RoleParticipant},
				{ProjectID: "p2", Title: "Gene Therapy", Role: people.RoleParticipant},
			},
		},
		{ID: "u2", Name: "Grace", Email: "grace@lab.test"},
	}

	roster := people.Merge(leads, participants)
	require.Len(t, roster, 2)

	ada := roster[0]
	require.Equal(t, "Ada", ada.Name)
	require.True(t, ada.IsLead)
	require.Len(t, ada.Projects, 2)

	// The leads source saw p1 first, so its role wins over the participant
	// association for the same project.
	require.Equal(t, "p1", ada.Projects[0].ProjectID)
	require.Equal(t, people.RoleLead, ada.Projects[0].Role)
	require.Equal(t, "p2", ada.Projects[1].ProjectID)
	require.Equal(t, people.RoleParticipant, ada.Projects[1].Role)

	grace := roster[1]
	require.False(t, grace.IsLead)
	require.Empty(t, grace.Projects)
}

func TestMergeLeadFlagFromLeadsSource(t *testing.T) {
	leads := []people.SourcePerson{{ID: "u1", Name: "Ada", Email: "ada@lab.test"}}
	participants := []people.SourcePerson{
		{ID: "u1", Name: "Ada", Email: "ada@lab.test"},
		{ID: "u2", Name: "Grace", Email: "grace@lab.test"},
	}

	roster := people.Merge(leads, participants)
	require.Len(t, roster, 2)
	require.True(t, roster[0].IsLead)
	require.False(t, roster[1].IsLead)
}

func TestMergeDefaultsMissingRoles(t *testing.T) {
	leads := []people.SourcePerson{{
		ID: "u1", Name: "Ada", Email: "ada@lab.test",
		Projects: []people.ProjectRef{{ProjectID: "p1", Title: "Neuro Study"}},
	}}
	participants := []people.SourcePerson{{
		ID: "u2", Name: "Grace", Email: "grace@lab.test",
		Projects: []people.ProjectRef{{ProjectID: "p2", Title: "Gene Therapy"}},
	}}

	roster := people.Merge(leads, participants)
	require.Equal(t, people.RoleLead, roster[0].Projects[0].Role)
	require.Equal(t, people.RoleParticipant, roster[1].Projects[0].Role)
}

func TestMergeSortsByName(t *testing.T) {
	participants := []people.SourcePerson{
		{ID: "u1", Name: "Zoe", Email: "zoe@lab.test"},
		{ID: "u2", Name: "ada", Email: "ada@lab.test"},
		{ID: "u3", Name: "Émile", Email: "emile@lab.test"},
	}

	roster := people.Merge(nil, participants)
	require.Len(t, roster, 3)

	// Locale-aware order ignores case and folds accents next to their base
	// letters instead of sorting them after z.
	require.Equal(t, "ada", roster[0].Name)
	require.Equal(t, "Émile", roster[1].Name)
	require.Equal(t, "Zoe", roster[2].Name)
}

func TestMergeIsIdempotent(t *testing.T) {
	leads := []people.SourcePerson{{
		ID: "u1", Name: "Ada", Email: "ada@lab.test",
		Projects: []people.ProjectRef{{ProjectID: "p1", Title: "Neuro Study", Role: people.RoleLead}},
	}}
	participants := []people.SourcePerson{{
		ID: "u2", Name: "Grace", Email: "grace@lab.test",
	}}

	first := people.Merge(leads, participants)
	second := people.Merge(leads, participants)
	require.Equal(t, first, second)
}

func TestMergeEmptySources(t *testing.T) {
	require.Empty(t, people.Merge(nil, nil))

	roster := people.Merge(nil, []people.SourcePerson{{ID: "u1", Name: "Ada", Email: "ada@lab.test"}})
	require.Len(t, roster, 1)
	require.False(t, roster[0].IsLead)
}

func TestValidRole(t *testing.T) {
	require.True(t, people.ValidRole(people.RoleLead))
	require.True(t, people.ValidRole(people.RoleParticipant))
	require.False(t, people.ValidRole(""))
	require.False(t, people.ValidRole("owner"))
}
