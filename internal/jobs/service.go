package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// CreateInput carries the fields a caller may set on a new job.
type CreateInput struct {
	Title       string
	Company     string
	Description string
	Location    string
	URL         string
	Source      string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Job, error) {
	if strings.TrimSpace(userID) == "" {
		return Job{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Title) == "" {
		return Job{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Company) == "" {
		return Job{}, fmt.Errorf("%w: company is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Description) == "" {
		return Job{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	job := Job{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Description: in.Description,
		Location:    strings.TrimSpace(in.Location),
		URL:         strings.TrimSpace(in.URL),
		Source:      strings.TrimSpace(in.Source),
		Status:      StatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

func (s *Service) Get(ctx context.Context, userID, jobID string) (Job, error) {
	if strings.TrimSpace(jobID) == "" {
		return Job{}, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID, jobID)
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Job, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) UpdateStatus(ctx context.Context, userID, jobID string, status Status) error {
	if !ValidStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return s.Repo.UpdateStatus(ctx, userID, jobID, status)
}

func (s *Service) Delete(ctx context.Context, userID, jobID string) error {
	if strings.TrimSpace(jobID) == "" {
		return fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, userID, jobID)
}
