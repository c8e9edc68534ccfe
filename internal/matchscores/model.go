package matchscores

import (
	"encoding/json"
	"time"
)

// MatchScore records the outcome of analyzing one resume against one job.
// Report holds the full skill-gap report as JSON.
type MatchScore struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	JobID           string          `json:"jobId"`
	ResumeID        string          `json:"resumeId"`
	SimilarityScore float64         `json:"similarityScore"`
	Report          json.RawMessage `json:"report,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
