package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"jobmatch-backend/internal/extraction"
	"jobmatch-backend/internal/jobs"
	"jobmatch-backend/internal/llm"
	"jobmatch-backend/internal/matchscores"
	"jobmatch-backend/internal/resumes"
	"jobmatch-backend/internal/similarity"
)

// scriptedLLM returns one payload for resume prompts and another for job
// prompts, and a constant embedding for every text.
type scriptedLLM struct {
	resumeJSON  string
	jobJSON     string
	completeErr error
	embedErr    error
}

func (f *scriptedLLM) Complete(ctx context.Context, messages []llm.Message) (json.RawMessage, error) {
	if f.completeErr != nil {
		return nil, f.completeErr
	}
	for _, m := range messages {
		if strings.Contains(m.Content, "Resume text:") {
			return json.RawMessage(f.resumeJSON), nil
		}
	}
	return json.RawMessage(f.jobJSON), nil
}

func (f *scriptedLLM) Embed(ctx context.Context, text string) ([]float64, error) {
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	return []float64{1, 0, 0}, nil
}

func newTestService(t *testing.T, client llm.Client) (*Service, string, string, matchscores.Repo) {
	t.Helper()
	ctx := context.Background()

	jobRepo := jobs.NewMemoryRepo()
	jobSvc := jobs.NewService(jobRepo)
	job, err := jobSvc.Create(ctx, "user-1", jobs.CreateInput{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "Go and PostgreSQL required",
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	resumeRepo := resumes.NewMemoryRepo()
	resumeSvc := resumes.NewService(resumeRepo, nil)
	resume := resumes.Resume{
		ID:            "resume-1",
		UserID:        "user-1",
		FileName:      "resume.pdf",
		ExtractedText: "Go developer with Postgres experience",
	}
	if err := resumeRepo.Create(ctx, resume); err != nil {
		t.Fatalf("create resume: %v", err)
	}

	scores := matchscores.NewMemoryRepo()
	svc := NewService(jobSvc, resumeSvc, extraction.NewExtractor(client), similarity.NewScorer(client), scores)
	return svc, job.ID, resume.ID, scores
}

const resumePayload = `{
	"technical_skills": [
		{"name": "go", "level": "advanced", "years_experience": 4, "evidence": "built services"},
		{"name": "postgresql", "level": "intermediate", "years_experience": 3, "evidence": "schema design"}
	]
}`

const jobPayload = `{
	"required_skills": [
		{"name": "go", "level": "intermediate", "importance": "critical"},
		{"name": "postgresql", "level": "intermediate", "importance": "high"}
	]
}`

func TestRunFullMatch(t *testing.T) {
	client := &scriptedLLM{resumeJSON: resumePayload, jobJSON: jobPayload}
	svc, jobID, resumeID, scores := newTestService(t, client)

	result, err := svc.Run(context.Background(), "user-1", jobID, resumeID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Report.OverallMatchPercentage != 100.0 {
		t.Fatalf("expected 100%% match, got %v", result.Report.OverallMatchPercentage)
	}
	// cosine 1.0 and full coverage blend to 100.
	if result.SimilarityScore != 100.0 {
		t.Fatalf("expected similarity 100, got %v", result.SimilarityScore)
	}

	stored, err := scores.GetByJobAndResume(context.Background(), "user-1", jobID, resumeID)
	if err != nil {
		t.Fatalf("stored score: %v", err)
	}
	if stored.SimilarityScore != 100.0 {
		t.Fatalf("stored score mismatch: %v", stored.SimilarityScore)
	}
	if len(stored.Report) == 0 {
		t.Fatal("stored report is empty")
	}

	// The job moves to matched after a successful run.
	job, err := svc.Jobs.Get(context.Background(), "user-1", jobID)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if job.Status != jobs.StatusMatched {
		t.Fatalf("expected status matched, got %s", job.Status)
	}
}

func TestRunEmbeddingFailureFallsBack(t *testing.T) {
	client := &scriptedLLM{resumeJSON: resumePayload, jobJSON: jobPayload, embedErr: errors.New("embeddings down")}
	svc, jobID, resumeID, _ := newTestService(t, client)

	result, err := svc.Run(context.Background(), "user-1", jobID, resumeID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.SimilarityScore != result.Report.OverallMatchPercentage {
		t.Fatalf("expected fallback to match percentage, got %v", result.SimilarityScore)
	}
}

func TestRunExtractionFailure(t *testing.T) {
	client := &scriptedLLM{completeErr: errors.New("provider down")}
	svc, jobID, resumeID, _ := newTestService(t, client)

	_, err := svc.Run(context.Background(), "user-1", jobID, resumeID)
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestRunUnknownJob(t *testing.T) {
	client := &scriptedLLM{resumeJSON: resumePayload, jobJSON: jobPayload}
	svc, _, resumeID, _ := newTestService(t, client)

	_, err := svc.Run(context.Background(), "user-1", "missing-job", resumeID)
	if !errors.Is(err, jobs.ErrNotFound) {
		t.Fatalf("expected jobs.ErrNotFound, got %v", err)
	}
}

func TestRunEmptyExtraction(t *testing.T) {
	client := &scriptedLLM{resumeJSON: `{}`, jobJSON: jobPayload}
	svc, jobID, resumeID, _ := newTestService(t, client)

	_, err := svc.Run(context.Background(), "user-1", jobID, resumeID)
	if err == nil {
		t.Fatal("expected error for empty resume extraction")
	}
}
