package jobs

import "time"

// Status tracks where a job sits in the user's pipeline.
type Status string

const (
	StatusNew      Status = "new"
	StatusSaved    Status = "saved"
	StatusMatched  Status = "matched"
	StatusApplied  Status = "applied"
	StatusRejected Status = "rejected"
)

// ValidStatus reports whether s is a known pipeline status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusSaved, StatusMatched, StatusApplied, StatusRejected:
		return true
	default:
		return false
	}
}

type Job struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	URL         string    `json:"url,omitempty"`
	Source      string    `json:"source,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
