package resumes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobmatch-backend/internal/extract"
	"jobmatch-backend/internal/shared/storage/object"
	"jobmatch-backend/internal/shared/telemetry"
)

// Service orchestrates resume upload: persist the file, extract its text,
// record the row.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

func NewService(repo Repo, store object.ObjectStore) *Service {
	return &Service{Repo: repo, Store: store}
}

// Upload stores the file, extracts plain text, and creates the resume record.
func (s *Service) Upload(ctx context.Context, userID, fileName string, body io.Reader) (Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return Resume{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(fileName) == "" {
		return Resume{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	// Buffer once so the same bytes feed both storage and extraction.
	raw, err := io.ReadAll(body)
	if err != nil {
		return Resume{}, fmt.Errorf("read upload: %w", err)
	}
	if len(raw) == 0 {
		return Resume{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(raw))
	if err != nil {
		return Resume{}, fmt.Errorf("store resume: %w", err)
	}

	text, err := extract.ExtractTextFromBytes(ctx, raw, mimeType, fileName)
	if err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrNoText, err)
	}
	if strings.TrimSpace(text) == "" {
		return Resume{}, ErrNoText
	}

	resume := Resume{
		ID:            uuid.NewString(),
		UserID:        userID,
		FileName:      fileName,
		StorageKey:    storageKey,
		ExtractedText: text,
		UploadDate:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}

	telemetry.Info("resumes.uploaded", map[string]any{
		"resume_id":  resume.ID,
		"mime_type":  mimeType,
		"size_bytes": size,
		"text_chars": len(text),
	})
	return resume, nil
}

func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	if strings.TrimSpace(resumeID) == "" {
		return Resume{}, fmt.Errorf("%w: resume id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID, resumeID)
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	if strings.TrimSpace(resumeID) == "" {
		return fmt.Errorf("%w: resume id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, userID, resumeID)
}
