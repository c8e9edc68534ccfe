// Package extraction turns unstructured resume and job text into the
// structured skill data the gap analyzer consumes, using an LLM provider.
package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"jobmatch-backend/internal/llm"
	"jobmatch-backend/internal/skillgap"
)

// ErrEmptyText is returned when there is no text to extract from.
var ErrEmptyText = errors.New("no text to extract skills from")

// Extractor runs skill extraction prompts against an LLM client.
type Extractor struct {
	client llm.Client
}

// NewExtractor constructs an Extractor.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// ExtractResumeSkills extracts structured skills from resume text.
func (e *Extractor) ExtractResumeSkills(ctx context.Context, resumeText string) (skillgap.ResumeSkillData, error) {
	var out skillgap.ResumeSkillData
	if strings.TrimSpace(resumeText) == "" {
		return out, ErrEmptyText
	}

	raw, err := e.client.Complete(ctx, buildResumeMessages(resumeText))
	if err != nil {
		return out, fmt.Errorf("resume skill extraction: %w", err)
	}
	if err := decodeInto(raw, &out); err != nil {
		return out, fmt.Errorf("resume skill extraction: %w", err)
	}
	return out, nil
}

// ExtractJobRequirements extracts structured requirements from a job posting.
func (e *Extractor) ExtractJobRequirements(ctx context.Context, jobTitle, jobDescription string) (skillgap.JobSkillData, error) {
	var out skillgap.JobSkillData
	if strings.TrimSpace(jobDescription) == "" {
		return out, ErrEmptyText
	}

	raw, err := e.client.Complete(ctx, buildJobMessages(jobTitle, jobDescription))
	if err != nil {
		return out, fmt.Errorf("job requirement extraction: %w", err)
	}
	if err := decodeInto(raw, &out); err != nil {
		return out, fmt.Errorf("job requirement extraction: %w", err)
	}
	return out, nil
}

func decodeInto(raw json.RawMessage, dst any) error {
	clean, err := sanitizeJSON(string(raw))
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(clean), dst); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	return nil
}
