package matchscores

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu     sync.RWMutex
	scores map[string]MatchScore // keyed by jobID + "/" + resumeID
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{scores: make(map[string]MatchScore)}
}

func pairKey(jobID, resumeID string) string {
	return jobID + "/" + resumeID
}

func (r *MemoryRepo) Upsert(ctx context.Context, score MatchScore) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey(score.JobID, score.ResumeID)
	now := time.Now().UTC()
	if existing, ok := r.scores[key]; ok {
		score.ID = existing.ID
		score.CreatedAt = existing.CreatedAt
	} else {
		score.CreatedAt = now
	}
	score.UpdatedAt = now
	r.scores[key] = score
	return nil
}

func (r *MemoryRepo) GetByJobAndResume(ctx context.Context, userID, jobID, resumeID string) (MatchScore, error) {
	if err := ctx.Err(); err != nil {
		return MatchScore{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	score, ok := r.scores[pairKey(jobID, resumeID)]
	if !ok || score.UserID != userID {
		return MatchScore{}, ErrNotFound
	}
	return score, nil
}

func (r *MemoryRepo) ListByJob(ctx context.Context, userID, jobID string) ([]MatchScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]MatchScore, 0)
	for _, score := range r.scores {
		if score.UserID == userID && score.JobID == jobID {
			out = append(out, score)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}
