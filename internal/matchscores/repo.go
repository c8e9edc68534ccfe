package matchscores

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("match score not found")

type Repo interface {
	// Upsert replaces any existing score for the same (job, resume) pair.
	Upsert(ctx context.Context, score MatchScore) error
	GetByJobAndResume(ctx context.Context, userID, jobID, resumeID string) (MatchScore, error)
	ListByJob(ctx context.Context, userID, jobID string) ([]MatchScore, error)
}
