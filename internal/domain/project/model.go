package project

import "time"

// Status represents the lifecycle status of a project
type Status string

const (
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// ValidStatus reports whether s is a known project status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusOnHold, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Classification buckets projects by research type
type Classification string

const (
	ClassificationBasic    Classification = "basic"
	ClassificationApplied  Classification = "applied"
	ClassificationClinical Classification = "clinical"
)

// ValidClassification reports whether c is a known classification.
func ValidClassification(c Classification) bool {
	switch c {
	case ClassificationBasic, ClassificationApplied, ClassificationClinical:
		return true
	}
	return false
}

// Project is a read-only snapshot of a research project. LastStatusChange is
// meaningful only when strictly later than CreatedAt; a value that merely
// mirrors creation time carries no status-change information.
type Project struct {
	ID                 string          `json:"id"`
	TenantID           string          `json:"tenant_id"`
	Title              string          `json:"title"`
	Status             *Status         `json:"status,omitempty"`
	Classification     *Classification `json:"classification,omitempty"`
	OpenToParticipants bool            `json:"open_to_participants"`
	StartDate          *time.Time      `json:"start_date,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	LastStatusChange   *time.Time      `json:"last_status_change,omitempty"`
}
