package people

// Role tags a person's association with one project.
type Role string

const (
	RoleLead        Role = "lead"
	RoleParticipant Role = "participant"
)

// ValidRole reports whether r is a known membership role.
func ValidRole(r Role) bool {
	return r == RoleLead || r == RoleParticipant
}

// ProjectRef is one project association carried by a roster entry.
type ProjectRef struct {
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Role      Role   `json:"role"`
	Status    string `json:"status,omitempty"`
}

// SourcePerson is a person as supplied by one of the two roster sources
// (leads or participants), with its embedded project list.
type SourcePerson struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	DepartmentID *string      `json:"department_id,omitempty"`
	Projects     []ProjectRef `json:"projects"`
}

// Person is one merged roster entry. Projects contains no two entries with
// the same ProjectID; IsLead is true when the id appeared in the leads source.
type Person struct {
	SourcePerson
	IsLead bool `json:"is_lead"`
}

// Department groups people for reporting facets.
type Department struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
}
