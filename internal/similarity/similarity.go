// Package similarity computes resume-to-job compatibility scores by blending
// embedding cosine similarity with skill-match coverage.
package similarity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"jobmatch-backend/internal/llm"
)

// Weights for the hybrid score. Embedding similarity dominates; skill
// coverage keeps the score honest when the texts read alike but the
// skills do not line up.
const (
	embeddingWeight = 0.7
	coverageWeight  = 0.3
)

// ErrEmptyVector is returned when either embedding has no components.
var ErrEmptyVector = errors.New("empty embedding vector")

// Scorer computes hybrid similarity scores using a provider for embeddings.
type Scorer struct {
	client llm.Client
}

// NewScorer constructs a Scorer.
func NewScorer(client llm.Client) *Scorer {
	return &Scorer{client: client}
}

// Score embeds both texts and blends cosine similarity with the skill match
// percentage (0-100). The result is a percentage in [0, 100].
func (s *Scorer) Score(ctx context.Context, resumeText, jobText string, matchPct float64) (float64, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return 0, errors.New("similarity requires both resume and job text")
	}

	resumeVec, err := s.client.Embed(ctx, resumeText)
	if err != nil {
		return 0, fmt.Errorf("embed resume: %w", err)
	}
	jobVec, err := s.client.Embed(ctx, jobText)
	if err != nil {
		return 0, fmt.Errorf("embed job: %w", err)
	}

	cos, err := CosineSimilarity(resumeVec, jobVec)
	if err != nil {
		return 0, err
	}
	return HybridScore(cos, matchPct), nil
}

// CosineSimilarity returns the cosine of the angle between two vectors,
// clamped to [0, 1] so antipodal noise cannot produce negative scores.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyVector
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector length mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, ErrEmptyVector
	}
	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if cos < 0 {
		cos = 0
	}
	if cos > 1 {
		cos = 1
	}
	return cos, nil
}

// HybridScore blends cosine similarity (0-1) with the skill match
// percentage (0-100) into a single percentage.
func HybridScore(cosine, matchPct float64) float64 {
	if matchPct < 0 {
		matchPct = 0
	}
	if matchPct > 100 {
		matchPct = 100
	}
	score := (embeddingWeight*cosine + coverageWeight*(matchPct/100)) * 100
	return math.Round(score*10) / 10
}
