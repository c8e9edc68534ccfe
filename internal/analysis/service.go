// Package analysis orchestrates the full skill-gap pipeline: load the
// resume and job, extract both skill sets, run the gap analyzer, score
// similarity, and persist the outcome.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobmatch-backend/internal/extraction"
	"jobmatch-backend/internal/jobs"
	"jobmatch-backend/internal/matchscores"
	"jobmatch-backend/internal/resumes"
	"jobmatch-backend/internal/shared/metrics"
	"jobmatch-backend/internal/shared/telemetry"
	"jobmatch-backend/internal/similarity"
	"jobmatch-backend/internal/skillgap"
)

// ErrExtractionFailed wraps provider failures during skill extraction.
var ErrExtractionFailed = errors.New("skill extraction failed")

// Service runs skill-gap analyses.
type Service struct {
	Jobs      *jobs.Service
	Resumes   *resumes.Service
	Extractor *extraction.Extractor
	Scorer    *similarity.Scorer
	Scores    matchscores.Repo
}

func NewService(jobSvc *jobs.Service, resumeSvc *resumes.Service, extractor *extraction.Extractor, scorer *similarity.Scorer, scores matchscores.Repo) *Service {
	return &Service{
		Jobs:      jobSvc,
		Resumes:   resumeSvc,
		Extractor: extractor,
		Scorer:    scorer,
		Scores:    scores,
	}
}

// Result is the outcome of one analysis run.
type Result struct {
	JobID           string               `json:"jobId"`
	ResumeID        string               `json:"resumeId"`
	SimilarityScore float64              `json:"similarityScore"`
	Report          skillgap.MatchReport `json:"report"`
}

// Run analyzes one resume against one job and persists the match score.
func (s *Service) Run(ctx context.Context, userID, jobID, resumeID string) (Result, error) {
	metrics.IncAnalysisStarted()
	start := time.Now()

	result, err := s.run(ctx, userID, jobID, resumeID)
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncAnalysisFailed()
		return Result{}, err
	}
	metrics.IncAnalysisCompleted()
	return result, nil
}

func (s *Service) run(ctx context.Context, userID, jobID, resumeID string) (Result, error) {
	job, err := s.Jobs.Get(ctx, userID, jobID)
	if err != nil {
		return Result{}, err
	}
	resume, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		return Result{}, err
	}

	resumeData, err := s.Extractor.ExtractResumeSkills(ctx, resume.ExtractedText)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	jobData, err := s.Extractor.ExtractJobRequirements(ctx, job.Title, job.Description)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	report, err := skillgap.AnalyzeSkillGap(resumeData, jobData, job.Title)
	if err != nil {
		return Result{}, err
	}
	if report.MatchSummary == skillgap.DegradedReport().MatchSummary {
		metrics.IncAnalysisDegraded()
	}

	score, err := s.Scorer.Score(ctx, resume.ExtractedText, job.Description, report.OverallMatchPercentage)
	if err != nil {
		// Embeddings are an enrichment; the skill match alone still scores.
		telemetry.Warn("analysis.similarity_unavailable", map[string]any{
			"job_id": jobID,
			"error":  err.Error(),
		})
		score = report.OverallMatchPercentage
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return Result{}, fmt.Errorf("encode report: %w", err)
	}
	if err := s.Scores.Upsert(ctx, matchscores.MatchScore{
		ID:              uuid.NewString(),
		UserID:          userID,
		JobID:           jobID,
		ResumeID:        resumeID,
		SimilarityScore: score,
		Report:          reportJSON,
	}); err != nil {
		return Result{}, fmt.Errorf("persist match score: %w", err)
	}

	if err := s.Jobs.UpdateStatus(ctx, userID, jobID, jobs.StatusMatched); err != nil {
		telemetry.Warn("analysis.status_update_failed", map[string]any{
			"job_id": jobID,
			"error":  err.Error(),
		})
	}

	telemetry.Info("analysis.completed", map[string]any{
		"job_id":           jobID,
		"resume_id":        resumeID,
		"match_percentage": report.OverallMatchPercentage,
		"similarity_score": score,
	})

	return Result{
		JobID:           jobID,
		ResumeID:        resumeID,
		SimilarityScore: score,
		Report:          report,
	}, nil
}
