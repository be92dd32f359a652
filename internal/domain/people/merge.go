package people

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type mergeEntry struct {
	person   Person
	projects map[string]struct{}
}

// Merge unifies the leads and participants sources into one deduplicated
// roster. Leads are inserted first and their project entries are
// authoritative: a participant association for a project the person already
// leads is discarded rather than downgrading the role. New people coming from
// the participants source still get IsLead from lead-id-set membership, and
// project lists keep insertion order. The result is sorted ascending by
// display name with a locale-aware comparison.
func Merge(leads, participants []SourcePerson) []Person {
	index := make(map[string]*mergeEntry, len(leads)+len(participants))
	order := make([]string, 0, len(leads)+len(participants))

	leadIDs := make(map[string]struct{}, len(leads))
	for _, lead := range leads {
		leadIDs[lead.ID] = struct{}{}
	}

	insert := func(src SourcePerson, isLead bool, defaultRole Role) {
		entry, ok := index[src.ID]
		if !ok {
			entry = &mergeEntry{
				person: Person{
					SourcePerson: SourcePerson{
						ID:           src.ID,
						Name:         src.Name,
						Email:        src.Email,
						DepartmentID: src.DepartmentID,
					},
					IsLead: isLead,
				},
				projects: make(map[string]struct{}, len(src.Projects)),
			}
			index[src.ID] = entry
			order = append(order, src.ID)
		}
		for _, ref := range src.Projects {
			if _, seen := entry.projects[ref.ProjectID]; seen {
				continue
			}
			entry.projects[ref.ProjectID] = struct{}{}
			if ref.Role == "" {
				ref.Role = defaultRole
			}
			entry.person.Projects = append(entry.person.Projects, ref)
		}
	}

	for _, lead := range leads {
		insert(lead, true, RoleLead)
	}
	for _, participant := range participants {
		_, isLead := leadIDs[participant.ID]
		insert(participant, isLead, RoleParticipant)
	}

	roster := make([]Person, 0, len(order))
	for _, id := range order {
		roster = append(roster, index[id].person)
	}

	coll := collate.New(language.English)
	sort.SliceStable(roster, func(i, j int) bool {
		return coll.CompareString(roster[i].Name, roster[j].Name) < 0
	})

	return roster
}
