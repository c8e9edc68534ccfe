package jobs

import "context"

type Repo interface {
	Create(ctx context.Context, job Job) error
	GetByID(ctx context.Context, userID, jobID string) (Job, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Job, error)
	UpdateStatus(ctx context.Context, userID, jobID string, status Status) error
	Delete(ctx context.Context, userID, jobID string) error
}
